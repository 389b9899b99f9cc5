package domain

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("report period needs a year between 2000 and 9999 and a month between 1 and 12")

// MonthlyStats summarises the applications filed in one calendar month.
// Revenue counts the fees of applications that ended Completed.
type MonthlyStats struct {
	Year         int
	Month        time.Month
	Total        int
	Completed    int
	Pending      int
	Cancelled    int
	Returned     int
	TotalRevenue float64
	AvgFee       float64
}

// MonthRange returns the UTC half-open interval [from, to) covering year/month.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if year < 2000 || year > 9999 || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), nil
}

// Add counts a into the totals. Callers pass only adoptions whose
// application date falls in the month.
func (m *MonthlyStats) Add(a *Adoption) {
	m.Total++
	switch {
	case a.Open():
		m.Pending++
	case a.Status == StatusCompleted:
		m.Completed++
		m.TotalRevenue += a.Fee
	case a.Status == StatusCancelled:
		m.Cancelled++
	case a.Status == StatusReturned:
		m.Returned++
	}
}

// Finish derives AvgFee from the completed applications.
func (m *MonthlyStats) Finish() {
	m.AvgFee = 0
	if m.Completed > 0 {
		m.AvgFee = m.TotalRevenue / float64(m.Completed)
	}
}

// AwaitingDecision reports whether a is an open application staff still has
// to approve or deny. Under the simple policy every open application waits.
func (p Policy) AwaitingDecision(a *Adoption) bool {
	if !a.Open() {
		return false
	}
	if p.approval() {
		return a.ApprovalStatus == ApprovalPending
	}
	return true
}
