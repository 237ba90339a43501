package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatCoord renders a drawing coordinate in the shortest exact form
// ("99.5", "0", "12.25").
func FormatCoord(v float64) string {
	if v == 0 {
		return "0" // avoid "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRate renders a basal rate with at most three decimals and no
// trailing zeros ("0.875", "2.25", "1").
func FormatRate(rate float64) string {
	return humanize.FtoaWithDigits(rate, 3)
}

// FormatDuration renders a ms duration as "2h05m" or "35m".
func FormatDuration(ms int64) string {
	if ms <= 0 {
		return "0m"
	}
	d := time.Duration(ms) * time.Millisecond
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

// ParseInstant accepts RFC3339 or a bare epoch-ms integer.
func ParseInstant(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty instant")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("parse instant %q: %w", s, err)
	}
	return t.UnixMilli(), nil
}
