package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange(2024, 12)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to)

	for _, tc := range []struct{ year, month int }{{2024, 0}, {2024, 13}, {1999, 5}, {10000, 1}} {
		_, _, err := MonthRange(tc.year, tc.month)
		assert.ErrorIs(t, err, ErrInvalidPeriod, "%d-%d", tc.year, tc.month)
	}
}

func TestMonthlyStatsTally(t *testing.T) {
	stats := MonthlyStats{Year: 2024, Month: time.July}
	for _, a := range []*Adoption{
		{Status: StatusCompleted, Fee: 100},
		{Status: StatusCompleted, Fee: 250},
		{Status: StatusApplied, Fee: 80},
		{Status: StatusPending, Fee: 60},
		{Status: StatusCancelled, Fee: 40},
		{Status: StatusReturned, Fee: 120},
	} {
		stats.Add(a)
	}
	stats.Finish()

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 1, stats.Returned)
	assert.InDelta(t, 350.0, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 175.0, stats.AvgFee, 1e-9)
}

func TestMonthlyStatsEmptyMonth(t *testing.T) {
	stats := MonthlyStats{Year: 2024, Month: time.February}
	stats.Finish()
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.AvgFee)
}

func TestAwaitingDecision(t *testing.T) {
	approval := DefaultPolicy()
	simple := Policy{Variant: VariantSimple}

	assert.True(t, approval.AwaitingDecision(&Adoption{Status: StatusApplied, ApprovalStatus: ApprovalPending}))
	assert.False(t, approval.AwaitingDecision(&Adoption{Status: StatusApplied, ApprovalStatus: ApprovalApproved}))
	assert.False(t, approval.AwaitingDecision(&Adoption{Status: StatusCancelled, ApprovalStatus: ApprovalDenied}))
	assert.True(t, simple.AwaitingDecision(&Adoption{Status: StatusPending}))
	assert.False(t, simple.AwaitingDecision(&Adoption{Status: StatusCompleted}))
}
