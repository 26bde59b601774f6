package util

import (
	"strconv"
	"strings"
)

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// NormalizeSymbol uppercases a trading pair, strips separators, and appends
// the USDT quote when no quote is given (e.g. "atom" -> "ATOMUSDT").
func NormalizeSymbol(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "/", "")
	if s == "" {
		return s
	}
	if !strings.HasSuffix(s, "USDT") {
		s += "USDT"
	}
	return s
}
