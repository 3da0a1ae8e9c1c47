package main

import (
	"github.com/vrtsystems/bacsched/bsdate"
	"github.com/vrtsystems/bacsched/bsmodel"
	"github.com/vrtsystems/bacsched/bsval"
)

// loadConfig reads an hjson fixture from path, or falls back to a
// built-in example: a thermostat setpoint schedule running business
// hours Monday through Friday, relinquishing to 65F overnight and on
// weekends.
func loadConfig(path string) (bsmodel.ScheduleConfig, error) {
	if path != "" {
		return LoadFixture(path)
	}
	return builtinConfig(), nil
}

func builtinConfig() bsmodel.ScheduleConfig {
	businessHours := bsmodel.DailySchedule{TimeValues: []bsmodel.TimeValue{
		bsmodel.NewTimeValue(bsdate.NewTime(8, 0, 0, 0), bsval.NewInteger(72)),
		bsmodel.NewTimeValue(bsdate.NewTime(18, 0, 0, 0), bsval.Null()),
	}}
	weekend := bsmodel.DailySchedule{}

	weekly := bsmodel.WeeklySchedule{
		businessHours, // Monday
		businessHours, // Tuesday
		businessHours, // Wednesday
		businessHours, // Thursday
		businessHours, // Friday
		weekend,       // Saturday
		weekend,       // Sunday
	}

	return bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.NewDateRange(
			bsdate.NewDate(2026, 1, 1, bsdate.Wildcard),
			bsdate.NewDate(2026, 12, 31, bsdate.Wildcard),
		),
		WeeklySchedule:  &weekly,
		ScheduleDefault: bsval.NewInteger(65),
	}
}
