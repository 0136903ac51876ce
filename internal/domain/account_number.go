package domain

import "strings"

// DefaultAccountDelimiter separates the segments of a hierarchical account number.
const DefaultAccountDelimiter = "."

// AccountSegments splits an account number into its hierarchy segments.
func AccountSegments(number, delimiter string) []string {
	if number == "" {
		return nil
	}
	if delimiter == "" {
		delimiter = DefaultAccountDelimiter
	}
	return strings.Split(number, delimiter)
}

// AccountLevel returns the depth of an account number: `1` is level 1,
// `1.01.02` is level 3.
func AccountLevel(number, delimiter string) int {
	return len(AccountSegments(number, delimiter))
}

// ParentAccountNumber strips the trailing segment. Top level accounts have no parent.
func ParentAccountNumber(number, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultAccountDelimiter
	}
	idx := strings.LastIndex(number, delimiter)
	if idx <= 0 {
		return ""
	}
	return number[:idx]
}

// TopLevelAccountNumber returns the first segment of the account number.
func TopLevelAccountNumber(number, delimiter string) string {
	segments := AccountSegments(number, delimiter)
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}

// IsDescendantAccount reports whether number sits strictly below ancestor.
// `1.010` is not a descendant of `1.01`.
func IsDescendantAccount(number, ancestor, delimiter string) bool {
	if delimiter == "" {
		delimiter = DefaultAccountDelimiter
	}
	if ancestor == "" || len(number) <= len(ancestor) {
		return false
	}
	return strings.HasPrefix(number, ancestor+delimiter)
}

// CompareAccountNumbers orders account numbers segment by segment, comparing
// numeric segments by value so that `1.2` sorts before `1.10`. Parents sort
// before their descendants.
func CompareAccountNumbers(a, b, delimiter string) int {
	if a == b {
		return 0
	}
	sa := AccountSegments(a, delimiter)
	sb := AccountSegments(b, delimiter)
	for i := 0; i < len(sa) && i < len(sb); i++ {
		if c := compareSegment(sa[i], sb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(sa) < len(sb):
		return -1
	case len(sa) > len(sb):
		return 1
	}
	return strings.Compare(a, b)
}

func compareSegment(a, b string) int {
	if isDigits(a) && isDigits(b) {
		ta := strings.TrimLeft(a, "0")
		tb := strings.TrimLeft(b, "0")
		if len(ta) != len(tb) {
			if len(ta) < len(tb) {
				return -1
			}
			return 1
		}
		if c := strings.Compare(ta, tb); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
