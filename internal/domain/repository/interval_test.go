package repository

import "testing"

func TestNormalizeInterval(t *testing.T) {
	cases := map[string]Interval{
		"":    IV15m,
		"1m":  IV1m,
		"4h":  IV4h,
		"1d":  IV1d,
		"7m":  IV15m,
		"1w":  IV15m,
		"15M": IV15m,
	}
	for in, want := range cases {
		if got := NormalizeInterval(in); got != want {
			t.Errorf("NormalizeInterval(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsValidInterval(t *testing.T) {
	if !IsValidInterval(IV30m) {
		t.Error("30m is valid")
	}
	if IsValidInterval(Interval("8h")) {
		t.Error("8h is not supported")
	}
}
