// services/businessday.go
package services

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// The stall trades overnight, so a sale rung up at 01:30 still belongs to the
// previous evening's books. Timestamps before the cutover hour are attributed
// to the previous calendar date. This resolver is the only date rule in the
// codebase; every date comparison goes through it.

var (
	cutoverOnce sync.Once
	cutoverHour int
)

// parseCutoverHour falls back to 6 for an empty or malformed value.
func parseCutoverHour(env string) int {
	if h, err := strconv.Atoi(env); err == nil && h >= 0 && h < 24 {
		return h
	}
	return 6
}

// CutoverHour returns the hour of day at which a new business day starts.
// The env var is read on first use, not at package init, so it still sees
// values loaded from .env by main.
func CutoverHour() int {
	cutoverOnce.Do(func() {
		cutoverHour = parseCutoverHour(os.Getenv("BUSINESS_DAY_CUTOVER_HOUR"))
	})
	return cutoverHour
}

// BusinessDate maps a timestamp to its business date string (YYYY-MM-DD).
func BusinessDate(t time.Time) string {
	return t.Add(-time.Duration(CutoverHour()) * time.Hour).Format("2006-01-02")
}

// Today returns the current business date.
func Today() string {
	return BusinessDate(time.Now())
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidMonth reports whether s is a well-formed YYYY-MM month.
func ValidMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// MonthOf returns the YYYY-MM prefix of a business date.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// MonthDates returns every calendar date of the given month, in order.
func MonthDates(yearMonth string) []string {
	first, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return nil
	}
	var dates []string
	// Anchor at midday so date arithmetic is immune to DST shifts
	d := time.Date(first.Year(), first.Month(), 1, 12, 0, 0, 0, time.UTC)
	for d.Month() == first.Month() {
		dates = append(dates, d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 1)
	}
	return dates
}

// RecentDates returns the n calendar dates ending at (and including) the
// given date, oldest first.
func RecentDates(date string, n int) []string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil || n <= 0 {
		return nil
	}
	anchor := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[n-1-i] = anchor.AddDate(0, 0, -i).Format("2006-01-02")
	}
	return dates
}
