package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.hjson")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFixture_BasicWeekly(t *testing.T) {
	path := writeFixture(t, `{
		engineVersion: "1.0.0"
		datatype: integer
		scheduleDefault: 65
		effectivePeriod: { start: "2026-01-01", end: "2026-12-31" }
		weekly: {
			monday: [
				{ time: "08:00:00", value: 72 }
				{ time: "18:00:00", value: null }
			]
		}
	}`)

	cfg, err := LoadFixture(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.WeeklySchedule)

	monday, ok := cfg.WeeklySchedule.Day(1)
	require.True(t, ok)
	require.Len(t, monday.TimeValues, 2)

	v, ok := monday.TimeValues[0].Value.Integer()
	assert.True(t, ok)
	assert.Equal(t, int32(72), v)
	assert.True(t, monday.TimeValues[1].Value.IsNull())

	def, ok := cfg.ScheduleDefault.Integer()
	assert.True(t, ok)
	assert.Equal(t, int32(65), def)
}

func TestLoadFixture_UnknownDatatype(t *testing.T) {
	path := writeFixture(t, `{
		datatype: notAType
		scheduleDefault: 1
		effectivePeriod: { start: "2026-01-01", end: "2026-12-31" }
	}`)
	_, err := LoadFixture(path)
	assert.Error(t, err)
}

func TestLoadFixture_UnknownWeekday(t *testing.T) {
	path := writeFixture(t, `{
		datatype: integer
		scheduleDefault: 1
		effectivePeriod: { start: "2026-01-01", end: "2026-12-31" }
		weekly: { funday: [{ time: "08:00:00", value: 1 }] }
	}`)
	_, err := LoadFixture(path)
	assert.Error(t, err)
}

func TestLoadFixture_IncompatibleEngineVersion(t *testing.T) {
	path := writeFixture(t, `{
		engineVersion: "99.0.0"
		datatype: integer
		scheduleDefault: 1
		effectivePeriod: { start: "2026-01-01", end: "2026-12-31" }
	}`)
	_, err := LoadFixture(path)
	assert.Error(t, err)
}
