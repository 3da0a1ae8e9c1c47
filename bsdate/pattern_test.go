package bsdate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchDate_Wildcards(t *testing.T) {
	d := NewDate(2026, 7, 31, 5) // Friday
	assert.True(t, MatchDate(d, DatePattern{Year: Wildcard, Month: Wildcard, Day: Wildcard, DayOfWeek: Wildcard}))
}

func TestMatchDate_ExactFields(t *testing.T) {
	d := NewDate(2026, 7, 31, 5)
	p := DatePattern{Year: d.YearOffset, Month: 7, Day: 31, DayOfWeek: 5}
	assert.True(t, MatchDate(d, p))

	p.DayOfWeek = 4
	assert.False(t, MatchDate(d, p))
}

// B3: month=13 matches odd months, month=14 matches even months.
func TestMatchDate_MonthParity(t *testing.T) {
	for month := uint8(1); month <= 12; month++ {
		d := NewDate(2026, month, 1, Wildcard)
		odd := MatchDate(d, DatePattern{Year: Wildcard, Month: MonthOdd, Day: Wildcard, DayOfWeek: Wildcard})
		even := MatchDate(d, DatePattern{Year: Wildcard, Month: MonthEven, Day: Wildcard, DayOfWeek: Wildcard})
		assert.Equal(t, month%2 == 1, odd, "month %d odd-match", month)
		assert.Equal(t, month%2 == 0, even, "month %d even-match", month)
	}
}

// B2: day=32 (last day of month) matches Feb 28 in non-leap years and
// Feb 29 in leap years.
func TestMatchDate_LastDayOfMonth(t *testing.T) {
	nonLeap := NewDate(2026, 2, 28, Wildcard)
	assert.True(t, MatchDate(nonLeap, DatePattern{Year: Wildcard, Month: Wildcard, Day: DayLast, DayOfWeek: Wildcard}))

	leap := NewDate(2028, 2, 29, Wildcard)
	assert.True(t, MatchDate(leap, DatePattern{Year: Wildcard, Month: Wildcard, Day: DayLast, DayOfWeek: Wildcard}))

	leapNotLast := NewDate(2028, 2, 28, Wildcard)
	assert.False(t, MatchDate(leapNotLast, DatePattern{Year: Wildcard, Month: Wildcard, Day: DayLast, DayOfWeek: Wildcard}))
}

func TestMatchDate_DayParity(t *testing.T) {
	odd := NewDate(2026, 3, 15, Wildcard)
	even := NewDate(2026, 3, 16, Wildcard)
	assert.True(t, MatchDate(odd, DatePattern{Year: Wildcard, Month: Wildcard, Day: DayOdd, DayOfWeek: Wildcard}))
	assert.False(t, MatchDate(even, DatePattern{Year: Wildcard, Month: Wildcard, Day: DayOdd, DayOfWeek: Wildcard}))
	assert.True(t, MatchDate(even, DatePattern{Year: Wildcard, Month: Wildcard, Day: DayEven, DayOfWeek: Wildcard}))
}

func TestMatchDate_OutOfDomainOctetsAreNonMatchNotError(t *testing.T) {
	d := NewDate(2026, 7, 31, 5)
	assert.False(t, MatchDate(d, DatePattern{Year: Wildcard, Month: 15, Day: Wildcard, DayOfWeek: Wildcard}))
	assert.False(t, MatchDate(d, DatePattern{Year: Wildcard, Month: Wildcard, Day: 40, DayOfWeek: Wildcard}))
	assert.False(t, MatchDate(d, DatePattern{Year: Wildcard, Month: Wildcard, Day: Wildcard, DayOfWeek: 9}))
}

func TestMatchDateRange(t *testing.T) {
	r := NewDateRange(NewDate(2020, 1, 1, Wildcard), NewDate(2020, 12, 31, Wildcard))
	assert.True(t, MatchDateRange(NewDate(2020, 6, 15, 1), r))
	assert.False(t, MatchDateRange(NewDate(2021, 1, 1, 1), r))
	assert.True(t, MatchDateRange(NewDate(2020, 1, 1, 1), r))
	assert.True(t, MatchDateRange(NewDate(2020, 12, 31, 1), r))
}

func TestMatchDateRange_Inverted(t *testing.T) {
	r := NewDateRange(NewDate(2020, 12, 31, Wildcard), NewDate(2020, 1, 1, Wildcard))
	assert.False(t, MatchDateRange(NewDate(2020, 6, 15, 1), r))
}

func TestMatchDateRange_IgnoresDayOfWeek(t *testing.T) {
	r := NewDateRange(NewDate(2020, 1, 1, 3), NewDate(2020, 1, 31, 6))
	assert.True(t, MatchDateRange(NewDate(2020, 1, 15, 2), r))
}
