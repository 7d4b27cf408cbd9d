package validate

import (
	"math"
	"regexp"
	"strings"
)

// YYYY-MM-DD shape only; month/day ranges are not checked.
var reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func Date(s string) bool {
	return reDate.MatchString(s)
}

// MaxInt is the magnitude ParseInt saturates at. Keeping it at 32 bits means
// (n-1)*size page offsets never overflow.
const MaxInt = math.MaxInt32

// ParseInt reads a leading base-10 integer the way a lenient query parser
// does: surrounding spaces and trailing junk are ignored ("12abc" -> 12).
// Values beyond MaxInt saturate instead of failing.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if n < MaxInt {
			n = min(n*10+int(r-'0'), MaxInt)
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// PageParam validates page_size / page_number: required and > 0.
func PageParam(s string) (int, bool) {
	n, ok := ParseInt(s)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// Brands splits a comma-separated list, trimming entries and dropping empties.
func Brands(csv string) []string {
	if csv == "" {
		return nil
	}
	var out []string
	for _, b := range strings.Split(csv, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// ID validates a path identifier (product ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 128
}
