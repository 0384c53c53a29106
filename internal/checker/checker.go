package checker

import (
	"math"
	"strconv"
	"strings"
)

// Options configures how expected and actual example output are compared.
type Options struct {
	NormalizeWhitespace bool    // Treat any run of whitespace as a single space
	Ellipsis            bool    // "..." in expected output matches any substring
	FloatTolerant       bool    // Permit small floating-point differences
	RelTol              float64 // Relative float tolerance
	AbsTol              float64 // Absolute float tolerance
}

// Default returns the baseline comparison settings used for per-module
// example execution: normalized whitespace plus the ellipsis wildcard.
func Default() Options {
	return Options{
		NormalizeWhitespace: true,
		Ellipsis:            true,
	}
}

// FloatTolerant returns the settings used for README example execution:
// the defaults plus tolerance for minor float representation drift.
func FloatTolerant() Options {
	opts := Default()
	opts.FloatTolerant = true
	opts.RelTol = 1e-3
	opts.AbsTol = 1e-5
	return opts
}

// Match reports whether actual output matches expected output under the
// given options. Comparison is literal text equality after normalization;
// the ellipsis wildcard and float tolerance are fallbacks tried in order.
func Match(want, got string, opts Options) bool {
	want = normalize(want, opts)
	got = normalize(got, opts)

	if want == got {
		return true
	}
	if opts.Ellipsis && strings.Contains(want, "...") && matchEllipsis(want, got) {
		return true
	}
	if opts.FloatTolerant && floatsClose(want, got, opts.RelTol, opts.AbsTol) {
		return true
	}
	return false
}

func normalize(s string, opts Options) string {
	if opts.NormalizeWhitespace {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.TrimRight(s, "\n")
}

// matchEllipsis matches got against want where "..." stands for any
// substring. Literal segments must appear in order; the first and last
// segments are anchored unless want starts or ends with the wildcard.
func matchEllipsis(want, got string) bool {
	parts := strings.Split(want, "...")
	if len(parts) == 1 {
		return want == got
	}

	if first := parts[0]; first != "" {
		if !strings.HasPrefix(got, first) {
			return false
		}
		got = got[len(first):]
	}
	if last := parts[len(parts)-1]; last != "" {
		if !strings.HasSuffix(got, last) {
			return false
		}
		got = got[:len(got)-len(last)]
	}

	for _, mid := range parts[1 : len(parts)-1] {
		if mid == "" {
			continue
		}
		idx := strings.Index(got, mid)
		if idx < 0 {
			return false
		}
		got = got[idx+len(mid):]
	}
	return true
}

// floatsClose extracts every float from both strings and compares them
// pairwise. Both sides must contain the same, non-zero number of floats:
// output with no numbers at all never matches through this fallback.
func floatsClose(want, got string, relTol, absTol float64) bool {
	wantFloats := extractFloats(want)
	gotFloats := extractFloats(got)

	if len(wantFloats) == 0 || len(wantFloats) != len(gotFloats) {
		return false
	}
	for i := range wantFloats {
		if !isClose(wantFloats[i], gotFloats[i], relTol, absTol) {
			return false
		}
	}
	return true
}

func extractFloats(s string) []float64 {
	var floats []float64
	for _, tok := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			floats = append(floats, f)
		}
	}
	return floats
}

func isClose(a, b, relTol, absTol float64) bool {
	diff := math.Abs(a - b)
	return diff <= math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol)
}
