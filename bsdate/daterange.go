package bsdate

// DateRange is a closed interval of concrete dates. Only the first
// three fields (year, month, day) of Start and End participate in
// matching; the day-of-week field of either endpoint is ignored
// (spec.md §3, §4.1).
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange builds a DateRange from two dates.
func NewDateRange(start, end Date) DateRange {
	return DateRange{Start: start, End: end}
}

// MatchDateRange implements C1's match_date_range: true iff the
// (year, month, day) triple of date lies within [range.Start, range.End]
// inclusive, under lexicographic ordering. An inverted range (Start
// after End) consistently yields false rather than raising (spec.md
// §4.1 "Error conditions").
func MatchDateRange(date Date, r DateRange) bool {
	if r.Start.Compare(r.End) > 0 {
		return false
	}
	return date.Compare(r.Start) >= 0 && date.Compare(r.End) <= 0
}

// CoversAllDates is a DateRange wide enough to act as an "always in
// effect" effective period in fixtures and tests.
func CoversAllDates() DateRange {
	return DateRange{
		Start: Date{YearOffset: 0, Month: 1, Day: 1},     // 1900-01-01
		End:   Date{YearOffset: 199, Month: 12, Day: 31}, // 2099-12-31
	}
}
