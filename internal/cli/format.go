// Package cli renders tracker data for terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"nbntrack/internal/model"
	"nbntrack/internal/pipeline"
)

// FormatINR renders an amount in rupees with Indian digit grouping and
// no fraction digits: 123456.7 becomes "₹1,23,457".
func FormatINR(amount float64) string {
	neg := amount < 0
	n := int64(math.Round(math.Abs(amount)))

	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(append(groups, tail), ",")
	}

	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

// FormatDate renders a timestamp as a short day string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02 Jan 2006")
}

// FormatPercent renders a category share, or a dash when no percentage
// applies (zero total spending).
func FormatPercent(s pipeline.CategoryShare) string {
	if !s.Applicable {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", s.Percent)
}

// FormatFrequency renders a billing frequency for list columns.
func FormatFrequency(f model.BillingFrequency) string {
	switch f {
	case model.BillingYearly:
		return "yearly"
	default:
		return "monthly"
	}
}

// FormatTags joins tags for a single list column.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return "—"
	}
	return strings.Join(tags, ", ")
}

// FormatSavings renders the month's savings line.
func FormatSavings(r pipeline.SavingsResult) string {
	switch r.State {
	case pipeline.SavingsSaved:
		return fmt.Sprintf("saved %s this month", FormatINR(r.Magnitude))
	case pipeline.SavingsOverspent:
		return fmt.Sprintf("overspent by %s this month", FormatINR(r.Magnitude))
	default:
		return "spending unchanged this month"
	}
}
