package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Balance metrics
	BalancesComputed *prometheus.CounterVec
	BalanceDuration  *prometheus.HistogramVec
	BalanceErrors    *prometheus.CounterVec
	BalanceRows      *prometheus.HistogramVec
	StageDuration    *prometheus.HistogramVec
	Reconciliations  *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Exchange rate metrics
	RatesSaved   prometheus.Counter
	RateLookups  *prometheus.CounterVec
	MissingRates *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates the metrics on a specific registerer.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BalancesComputed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_balances_computed_total",
				Help: "Total number of trial balances computed by balance type and source",
			},
			[]string{"balance_type", "source"},
		),
		BalanceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trialbalance_balance_duration_seconds",
				Help:    "Duration of trial balance computations",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"balance_type"},
		),
		BalanceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_balance_errors_total",
				Help: "Total number of failed trial balance computations by error kind",
			},
			[]string{"kind"},
		),
		BalanceRows: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trialbalance_balance_rows",
				Help:    "Number of rows in computed trial balances",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
			[]string{"balance_type"},
		),
		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trialbalance_stage_duration_seconds",
				Help:    "Duration of each balance computation stage",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		Reconciliations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_reconciliations_total",
				Help: "Total reconciliation checks by outcome",
			},
			[]string{"outcome"},
		),

		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_cache_hits_total",
				Help: "Total cache hits by cache",
			},
			[]string{"cache"},
		),
		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_cache_misses_total",
				Help: "Total cache misses by cache",
			},
			[]string{"cache"},
		),

		RatesSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "trialbalance_exchange_rates_saved_total",
			Help: "Total exchange rates saved",
		}),
		RateLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_exchange_rate_lookups_total",
				Help: "Total exchange rate lookups by resolution",
			},
			[]string{"resolution"},
		),
		MissingRates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_missing_exchange_rates_total",
				Help: "Total exchange rate lookups that found no rate",
			},
			[]string{"rate_type"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trialbalance_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		DBQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trialbalance_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
