package option

import (
	"strconv"
	"strings"
)

// rangePattern returns a regular expression without anchors or capturing
// groups that matches exactly the base-10 integers in [lo, hi] written
// without leading zeros or a plus sign. Negative numbers have a leading -.
func rangePattern(lo, hi int64) string {
	if lo > hi {
		return `[^\s\S]`
	}
	var alts []string
	if lo < 0 {
		// Magnitudes of the negative part. lo > MinInt64 for all callers.
		nlo := uint64(1)
		if hi < 0 {
			nlo = uint64(-hi)
		}
		alts = append(alts, "-"+group(lengths(nlo, uint64(-lo))))
	}
	if hi >= 0 {
		alts = append(alts, lengths(uint64(max(lo, 0)), uint64(hi))...)
	}
	return strings.Join(alts, "|")
}

// lengths splits [lo, hi] into runs of numbers with the same digit count and
// returns the alternatives matching each run, shortest first.
func lengths(lo, hi uint64) []string {
	var alts []string
	for lo <= hi {
		top := hi
		if p := pow10(len(strconv.FormatUint(lo, 10))); p-1 < top {
			top = p - 1
		}
		alts = append(alts, sameLength(strconv.FormatUint(lo, 10), strconv.FormatUint(top, 10))...)
		if top == hi {
			break
		}
		lo = top + 1
	}
	return alts
}

// sameLength returns alternatives matching the digit strings between a and b
// inclusive. a and b have the same length and a <= b.
func sameLength(a, b string) []string {
	if a == b {
		return []string{a}
	}
	if len(a) == 1 {
		return []string{class(a[0], b[0])}
	}
	if a[0] == b[0] {
		return []string{a[:1] + group(sameLength(a[1:], b[1:]))}
	}
	n := len(a) - 1
	first, last := a[0], b[0]
	var alts, tail []string
	if strings.Trim(a[1:], "0") != "" {
		// a's leading digit only covers part of its decade.
		alts = append(alts, a[:1]+group(sameLength(a[1:], strings.Repeat("9", n))))
		first++
	}
	if strings.Trim(b[1:], "9") != "" {
		tail = append(tail, b[:1]+group(sameLength(strings.Repeat("0", n), b[1:])))
		last--
	}
	if first <= last {
		alts = append(alts, class(first, last)+digits(n))
	}
	return append(alts, tail...)
}

// group joins alternatives into a single non-capturing unit.
func group(alts []string) string {
	if len(alts) == 1 {
		return alts[0]
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

func class(lo, hi byte) string {
	switch {
	case lo == hi:
		return string(lo)
	case lo == '0' && hi == '9':
		return `\d`
	default:
		return "[" + string(lo) + "-" + string(hi) + "]"
	}
}

func digits(n int) string {
	if n == 1 {
		return `\d`
	}
	return `\d{` + strconv.Itoa(n) + `}`
}

func pow10(n int) uint64 {
	r := uint64(1)
	for range n {
		r *= 10
	}
	return r
}
