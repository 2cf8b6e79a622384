package word

import (
	"fmt"
	"strconv"
)

// DateToWord formats year, month, day as "YYYY-MM-DD" (zero-padded,
// four-digit year) and encodes the result as a short-string Word.
// Range validation only: year must be in [0, 9999], month in [1, 12],
// day in [1, 31]. Calendar correctness beyond that range check (e.g.
// day 31 in a 30-day month) is not enforced, matching the source this
// format was ported from.
func DateToWord(year int32, month, day int) (Word, error) {
	var w Word
	if year < 0 || year > 9999 {
		return w, fmt.Errorf("word: invalid year %d", year)
	}
	if month < 1 || month > 12 {
		return w, fmt.Errorf("word: invalid month %d", month)
	}
	if day < 1 || day > 31 {
		return w, fmt.Errorf("word: invalid day %d", day)
	}
	return ShortStringToWord(FormatDate(year, month, day))
}

// FormatDate renders year, month, day as "YYYY-MM-DD" without
// validating ranges.
func FormatDate(year int32, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseDate accepts exactly the "YYYY-MM-DD" layout and returns the
// parsed components. ok is false for anything that does not match that
// shape; it is not an error, since callers use ParseDate only to
// disambiguate a non-strict 'b' slot.
func ParseDate(s string) (year int32, month, day int, ok bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, false
	}
	for i := 0; i < len(s); i++ {
		if i != 4 && i != 7 && (s[i] < '0' || s[i] > '9') {
			return 0, 0, 0, false
		}
	}
	y, err := strconv.ParseInt(s[0:4], 10, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	m, err := strconv.Atoi(s[5:7])
	if err != nil {
		return 0, 0, 0, false
	}
	d, err := strconv.Atoi(s[8:10])
	if err != nil {
		return 0, 0, 0, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return 0, 0, 0, false
	}
	return int32(y), m, d, true
}
