package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/gotrialbalance/internal/adapter/http/dto"
	"github.com/iho/gotrialbalance/internal/infrastructure/config"
	"github.com/iho/gotrialbalance/internal/infrastructure/logger"
	"github.com/iho/gotrialbalance/internal/infrastructure/postgres"
)

var (
	baseURL    string
	timeout    time.Duration
	jsonOutput bool
)

// Swapped in tests.
var (
	migrateUp   = postgres.RunMigrations
	migrateDown = postgres.RunMigrationsDown
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gotrialbalance-cli",
		Short:         "Trial balance CLI tool",
		Long:          `A command line interface for computing trial balances and managing exchange rates through the API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the trial balance API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	rootCmd.AddCommand(balanceCmd(), reconcileCmd(), ratesCmd(), migrateCmd())
	return rootCmd
}

func balanceCmd() *cobra.Command {
	req := &dto.TrialBalanceRequest{}

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Compute a trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dto.Validate(req); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			var resp dto.TrialBalanceResponse
			raw, err := doJSON(http.MethodPost, "/api/v1/trial-balances", req, "", &resp)
			if err != nil {
				return err
			}
			if jsonOutput {
				printRaw(cmd.OutOrStdout(), raw)
				return nil
			}
			printBalance(cmd.OutOrStdout(), &resp)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.AccountsChart, "chart", "", "Accounts chart UID")
	f.StringVar(&req.BalanceType, "type", "TrialBalance", "Balance type")
	f.StringVar(&req.BalancesFilter, "filter", "", "Balances filter (AllAccounts, WithCurrentBalance, ...)")
	f.StringVar(&req.FromDate, "from", "", "Period start (YYYY-MM-DD)")
	f.StringVar(&req.ToDate, "to", "", "Period end (YYYY-MM-DD)")
	f.StringVar(&req.ComparisonFromDate, "compare-from", "", "Comparison period start")
	f.StringVar(&req.ComparisonToDate, "compare-to", "", "Comparison period end")
	f.StringSliceVar(&req.Ledgers, "ledger", nil, "Ledger UIDs")
	f.StringSliceVar(&req.Currencies, "currency", nil, "Currency codes")
	f.StringVar(&req.FromAccount, "from-account", "", "First account of the range")
	f.StringVar(&req.ToAccount, "to-account", "", "Last account of the range")
	f.IntVar(&req.Level, "level", 0, "Deepest account level to report")
	f.StringVar(&req.TargetCurrency, "target-currency", "", "Currency to value balances into")
	f.StringVar(&req.ExchangeRateType, "rate-type", "", "Exchange rate type")
	f.StringVar(&req.ExchangeRateDate, "rate-date", "", "Exchange rate date")
	f.BoolVar(&req.ValuateBalances, "valuate", false, "Value balances into the target currency")
	f.BoolVar(&req.ConsolidateBalancesToTargetCurrency, "consolidate", false, "Consolidate balances to the target currency")
	f.BoolVar(&req.UseDefaultValuation, "default-valuation", false, "Use the official rate at period end")
	f.BoolVar(&req.ShowCascadeBalances, "cascade", false, "Break balances down by ledger")
	f.BoolVar(&req.WithSectorization, "sectorize", false, "Report sector totals")
	f.BoolVar(&req.WithSubledgerAccount, "subledger", false, "Report subledger accounts")
	f.BoolVar(&req.ReportValuedEffect, "valued-effect", false, "Report the valuation effect column")
	_ = cmd.MarkFlagRequired("chart")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func reconcileCmd() *cobra.Command {
	var chart, balanceType, from, to string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Check that a trial balance reconciles",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			params.Set("accounts_chart", chart)
			params.Set("balance_type", balanceType)
			params.Set("from_date", from)
			params.Set("to_date", to)

			var resp dto.ReconciliationResponse
			raw, err := doJSON(http.MethodGet, "/api/v1/trial-balances/reconciliation?"+params.Encode(), nil, "", &resp)
			if err != nil {
				return err
			}
			if jsonOutput {
				printRaw(cmd.OutOrStdout(), raw)
			} else {
				printReconciliation(cmd.OutOrStdout(), &resp)
			}
			if !resp.IsReconciled {
				return fmt.Errorf("balance does not reconcile: %s", resp.FailedCheck)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&chart, "chart", "", "Accounts chart UID")
	cmd.Flags().StringVar(&balanceType, "type", "TrialBalance", "Balance type")
	cmd.Flags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("chart")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func ratesCmd() *cobra.Command {
	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Exchange rate operations",
	}

	var rateType, date string
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "List the rates of a type on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			params.Set("type", rateType)
			params.Set("date", date)

			var rates []dto.ExchangeRateResponse
			raw, err := doJSON(http.MethodGet, "/api/v1/exchange-rates?"+params.Encode(), nil, "", &rates)
			if err != nil {
				return err
			}
			if jsonOutput {
				printRaw(cmd.OutOrStdout(), raw)
				return nil
			}
			printRates(cmd.OutOrStdout(), rates)
			return nil
		},
	}
	getCmd.Flags().StringVar(&rateType, "type", "FIX", "Exchange rate type")
	getCmd.Flags().StringVar(&date, "date", "", "Rate date (YYYY-MM-DD)")
	_ = getCmd.MarkFlagRequired("date")

	var setType, setDate, idempotencyKey string
	setCmd := &cobra.Command{
		Use:   "set FROM TO VALUE [FROM TO VALUE...]",
		Short: "Store exchange rates",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%3 != 0 {
				return fmt.Errorf("expected FROM TO VALUE triples, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.SaveRatesRequest{Date: setDate, RateType: setType}
			for i := 0; i < len(args); i += 3 {
				value, err := decimal.NewFromString(args[i+2])
				if err != nil {
					return fmt.Errorf("invalid rate value %q: %w", args[i+2], err)
				}
				req.Rates = append(req.Rates, dto.RateItem{FromCurrency: args[i], ToCurrency: args[i+1], Value: value})
			}
			if err := dto.Validate(&req); err != nil {
				return fmt.Errorf("invalid rates: %w", err)
			}

			var saved []dto.ExchangeRateResponse
			raw, err := doJSON(http.MethodPost, "/api/v1/exchange-rates", req, idempotencyKey, &saved)
			if err != nil {
				return err
			}
			if jsonOutput {
				printRaw(cmd.OutOrStdout(), raw)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d rates\n", len(saved))
			printRates(cmd.OutOrStdout(), saved)
			return nil
		},
	}
	setCmd.Flags().StringVar(&setType, "type", "FIX", "Exchange rate type")
	setCmd.Flags().StringVar(&setDate, "date", "", "Rate date (YYYY-MM-DD)")
	setCmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency-Key header value")
	_ = setCmd.MarkFlagRequired("date")

	ratesCmd.AddCommand(getCmd, setCmd)
	return ratesCmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema migrations (uses DATABASE_URL)",
	}

	run := func(fn func(string, zerolog.Logger) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console", Output: cmd.ErrOrStderr()})
			return fn(cfg.DatabaseURL, log)
		}
	}

	cmd.AddCommand(
		&cobra.Command{Use: "up", Short: "Apply all pending migrations", RunE: run(migrateUp)},
		&cobra.Command{Use: "down", Short: "Roll back the last migration", RunE: run(migrateDown)},
	)
	return cmd
}

// doJSON sends body as JSON and decodes a 2xx answer into out. It returns the
// raw response body.
func doJSON(method, path string, body any, idempotencyKey string, out any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	// Reconciliation answers 409 with a regular body.
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusConflict {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return raw, fmt.Errorf("%s (status %d): %s", apiErr.Error, resp.StatusCode, apiErr.Message)
		}
		return raw, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(raw), 200))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return raw, fmt.Errorf("failed to parse response: %w", err)
	}
	return raw, nil
}

func printRaw(w io.Writer, raw []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		w.Write(raw)
		return
	}
	buf.WriteByte('\n')
	w.Write(buf.Bytes())
}

func printBalance(w io.Writer, tb *dto.TrialBalanceResponse) {
	fmt.Fprintf(w, "%s %s %s..%s", tb.AccountsChart, tb.BalanceType, tb.FromDate, tb.ToDate)
	if tb.TargetCurrency != "" {
		fmt.Fprintf(w, " in %s", tb.TargetCurrency)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "TYPE\tACCOUNT\tNAME\tSECTOR\tCUR\tINITIAL\tDEBIT\tCREDIT\tCURRENT\t")
	for _, e := range tb.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			e.ItemType, e.AccountNumber, truncate(e.AccountName, 30), e.SectorCode, e.CurrencyCode,
			e.InitialBalance.StringFixed(2), e.Debit.StringFixed(2), e.Credit.StringFixed(2), e.CurrentBalance.StringFixed(2))
	}
	tw.Flush()

	fmt.Fprintf(w, "Debtor %s  Creditor %s  Consolidated %s\n",
		tb.Reconciliation.DebtorTotal.StringFixed(2),
		tb.Reconciliation.CreditorTotal.StringFixed(2),
		tb.Reconciliation.Consolidated.StringFixed(2))
}

func printReconciliation(w io.Writer, r *dto.ReconciliationResponse) {
	if r.IsReconciled {
		fmt.Fprintf(w, "Reconciliation PASSED\n")
	} else {
		fmt.Fprintf(w, "Reconciliation FAILED: %s\n", r.FailedCheck)
	}
	fmt.Fprintf(w, "Chart: %s %s..%s\n", r.AccountsChart, r.FromDate, r.ToDate)
	fmt.Fprintf(w, "Consolidated: %s\n", r.Consolidated.StringFixed(2))
	fmt.Fprintf(w, "Difference: %s\n", r.Difference.StringFixed(2))
}

func printRates(w io.Writer, rates []dto.ExchangeRateResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tFROM\tTO\tVALUE")
	for _, r := range rates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Date, r.RateType, r.FromCurrency, r.ToCurrency, r.Value)
	}
	tw.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
