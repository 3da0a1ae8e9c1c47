package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hjson/hjson-go/v4"

	"github.com/vrtsystems/bacsched/bsdate"
	"github.com/vrtsystems/bacsched/bsmodel"
	"github.com/vrtsystems/bacsched/bsval"
)

// fixture is the on-disk hjson shape for a demo Schedule Object, a
// human-friendly alternative to building bsmodel.ScheduleConfig as a Go
// struct literal — mirrors the teacher's own job.json-via-hjson config
// loading in acron/scheduler.go's LoadJobJSONFiles.
type fixture struct {
	EngineVersion   string                       `json:"engineVersion"`
	Datatype        string                       `json:"datatype"`
	ScheduleDefault interface{}                  `json:"scheduleDefault"`
	EffectivePeriod fixtureDateRange             `json:"effectivePeriod"`
	Weekly          map[string][]fixtureTimeValue `json:"weekly"`
}

type fixtureDateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type fixtureTimeValue struct {
	Time  string      `json:"time"`
	Value interface{} `json:"value"`
}

var weekdayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// LoadFixture decodes an hjson fixture file into a bsmodel.ScheduleConfig.
func LoadFixture(path string) (bsmodel.ScheduleConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return bsmodel.ScheduleConfig{}, fmt.Errorf("reading fixture: %w", err)
	}

	var f fixture
	if err := hjson.Unmarshal(raw, &f); err != nil {
		return bsmodel.ScheduleConfig{}, fmt.Errorf("decoding fixture: %w", err)
	}

	if err := checkFixtureVersion(f.EngineVersion); err != nil {
		return bsmodel.ScheduleConfig{}, err
	}

	datatype, err := parseDatatype(f.Datatype)
	if err != nil {
		return bsmodel.ScheduleConfig{}, err
	}

	scheduleDefault, err := bsval.FromInterface(f.ScheduleDefault, datatype)
	if err != nil {
		return bsmodel.ScheduleConfig{}, fmt.Errorf("scheduleDefault: %w", err)
	}

	effectivePeriod, err := parseDateRange(f.EffectivePeriod)
	if err != nil {
		return bsmodel.ScheduleConfig{}, err
	}

	weekly, err := parseWeekly(f.Weekly, datatype)
	if err != nil {
		return bsmodel.ScheduleConfig{}, err
	}

	return bsmodel.ScheduleConfig{
		EffectivePeriod: effectivePeriod,
		WeeklySchedule:  weekly,
		ScheduleDefault: scheduleDefault,
	}, nil
}

func parseDatatype(s string) (bsval.Datatype, error) {
	dt := bsval.Datatype(strings.ToLower(strings.TrimSpace(s)))
	if !dt.IsValid() {
		return bsval.DATATYPE_NONE, fmt.Errorf("unknown datatype %q", s)
	}
	return dt, nil
}

func parseDateRange(r fixtureDateRange) (bsdate.DateRange, error) {
	start, err := parseDate(r.Start)
	if err != nil {
		return bsdate.DateRange{}, fmt.Errorf("effectivePeriod.start: %w", err)
	}
	end, err := parseDate(r.End)
	if err != nil {
		return bsdate.DateRange{}, fmt.Errorf("effectivePeriod.end: %w", err)
	}
	return bsdate.NewDateRange(start, end), nil
}

// parseDate accepts "YYYY-MM-DD".
func parseDate(s string) (bsdate.Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return bsdate.Date{}, fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return bsdate.Date{}, err
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return bsdate.Date{}, err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return bsdate.Date{}, err
	}
	return bsdate.NewDate(year, uint8(month), uint8(day), bsdate.Wildcard), nil
}

// parseTime accepts "HH:MM:SS".
func parseTime(s string) (bsdate.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return bsdate.Time{}, fmt.Errorf("expected HH:MM:SS, got %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return bsdate.Time{}, err
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return bsdate.Time{}, err
	}
	second, err := strconv.Atoi(parts[2])
	if err != nil {
		return bsdate.Time{}, err
	}
	return bsdate.NewTime(uint8(hour), uint8(minute), uint8(second), 0), nil
}

func parseWeekly(m map[string][]fixtureTimeValue, datatype bsval.Datatype) (*bsmodel.WeeklySchedule, error) {
	if len(m) == 0 {
		return nil, nil
	}

	var weekly bsmodel.WeeklySchedule
	for name, entries := range m {
		dayIndex := -1
		for i, dow := range weekdayNames {
			if strings.EqualFold(dow, name) {
				dayIndex = i
				break
			}
		}
		if dayIndex < 0 {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}

		tvs := make([]bsmodel.TimeValue, 0, len(entries))
		for _, e := range entries {
			t, err := parseTime(e.Time)
			if err != nil {
				return nil, fmt.Errorf("weekly.%s: %w", name, err)
			}
			v, err := bsval.FromInterface(e.Value, datatype)
			if err != nil {
				return nil, fmt.Errorf("weekly.%s: %w", name, err)
			}
			tvs = append(tvs, bsmodel.NewTimeValue(t, v))
		}
		weekly[dayIndex] = bsmodel.DailySchedule{TimeValues: tvs}
	}
	return &weekly, nil
}
