package cli

import (
	"testing"
	"time"

	"nbntrack/internal/pipeline"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{649, "₹649"},
		{1234, "₹1,234"},
		{123456, "₹1,23,456"},
		{12345678, "₹1,23,45,678"},
		{123456.7, "₹1,23,457"},
		{-75, "-₹75"},
		{-123456, "-₹1,23,456"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.in); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	if got, want := FormatDate(d), "05 Sep 2026"; got != want {
		t.Errorf("FormatDate = %q, want %q", got, want)
	}
	if got := FormatDate(time.Time{}); got != "—" {
		t.Errorf("zero date = %q, want dash", got)
	}
}

func TestFormatPercent(t *testing.T) {
	s := pipeline.CategoryShare{Percent: 33.333, Applicable: true}
	if got, want := FormatPercent(s), "33.3%"; got != want {
		t.Errorf("FormatPercent = %q, want %q", got, want)
	}
	if got := FormatPercent(pipeline.CategoryShare{}); got != "—" {
		t.Errorf("inapplicable share = %q, want dash", got)
	}
}

func TestFormatSavings(t *testing.T) {
	cases := []struct {
		in   pipeline.SavingsResult
		want string
	}{
		{pipeline.ClassifySavings(150), "saved ₹150 this month"},
		{pipeline.ClassifySavings(-75), "overspent by ₹75 this month"},
		{pipeline.ClassifySavings(0), "spending unchanged this month"},
	}
	for _, tc := range cases {
		if got := FormatSavings(tc.in); got != tc.want {
			t.Errorf("FormatSavings = %q, want %q", got, tc.want)
		}
	}
}

func TestFormatTags(t *testing.T) {
	if got := FormatTags([]string{"a", "b"}); got != "a, b" {
		t.Errorf("FormatTags = %q", got)
	}
	if got := FormatTags(nil); got != "—" {
		t.Errorf("empty tags = %q, want dash", got)
	}
}
