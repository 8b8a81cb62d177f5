package dataset

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// looseValue accepts a JSON string or number; scraped exports mix both.
type looseValue string

func (v *looseValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = looseValue(strings.TrimSpace(s))
		return nil
	}
	*v = looseValue(data)
	return nil
}

func (v looseValue) String() string { return string(v) }

// ParsePrice turns a rupiah price such as "Rp239.000" or "Rp 1.250.000" into
// 239000 and 1250000. Dots and commas are thousand separators. For a range
// ("Rp100.000 - Rp150.000") the lower bound is used.
func ParsePrice(s string) int64 {
	if lo, _, ok := strings.Cut(s, "-"); ok {
		s = lo
	}
	return digitsOnly(s)
}

// ParseStock extracts the unit count from values like "12", "Stok: 12" or
// "Sisa 3". Text without digits ("Habis") counts as zero.
func ParseStock(s string) int64 {
	return digitsOnly(s)
}

// ParseRating reads ratings written as "4.9", "4,9" or 4.9.
func ParseRating(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseInt reads integer fields that may arrive as "7", 7 or 7.0.
func ParseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

func digitsOnly(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
