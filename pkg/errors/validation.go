package errors

// ValidateDimensions validates the universe size n and part count k.
// Every problem handed to the checker must satisfy 2 <= k <= n; this is
// the first thing the input protocol enforces, before any table is built.
func ValidateDimensions(n, k int) error {
	if n < 1 {
		return New(ErrCodeInvalidDimensions, "universe size must be positive, got n=%d", n)
	}
	if k < 2 {
		return New(ErrCodeInvalidDimensions, "need at least 2 parts, got k=%d", k)
	}
	if k > n {
		return New(ErrCodeInvalidDimensions, "more parts than points, got n=%d k=%d", n, k)
	}
	return nil
}

// ValidatePoint validates that p is a point of the universe {1,...,n}.
func ValidatePoint(p, n int) error {
	if p < 1 || p > n {
		return New(ErrCodeInvalidInput, "point %d outside universe 1..%d", p, n)
	}
	return nil
}

// Output formats accepted by the search-tree export.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidateTreeFormat validates a search-tree output format string.
func ValidateTreeFormat(format string) error {
	switch format {
	case FormatDOT, FormatSVG:
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported tree format %q (want %s or %s)", format, FormatDOT, FormatSVG)
}
