// Command bsdemo builds a Schedule Object, wires an in-memory Object
// Directory holding a US-federal-holiday Calendar Object, and drives a
// handful of evaluations through a gocron.Scheduler acting as the
// external periodic trigger — exercising the whole evaluation core
// end to end the way acron/croncontrolcentershell.go wires a shell
// harness around the teacher's job runner.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"github.com/vrtsystems/bacsched/bscal"
	"github.com/vrtsystems/bacsched/bsdate"
	"github.com/vrtsystems/bacsched/bslog"
	"github.com/vrtsystems/bacsched/bsmodel"
	"github.com/vrtsystems/bacsched/bssched"
	"github.com/vrtsystems/bacsched/bsval"
)

func main() {
	var (
		fixturePath = flag.String("fixture", "", "path to an hjson Schedule Object fixture (defaults to a built-in example)")
		ticks       = flag.Uint("ticks", 3, "number of evaluation ticks to run before exiting")
		interval    = flag.Duration("interval", 2*time.Second, "interval between evaluation ticks")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		bslog.SetLevel(zerolog.DebugLevel)
	}

	cfg, err := loadConfig(*fixturePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bsdemo:", err)
		os.Exit(1)
	}

	dir := bscal.NewInMemoryObjectDirectory()
	holidaysID := bscal.ObjectIdentifier(uuid.Must(uuid.NewV4()))
	dir.AddCalendarObject(&bscal.CalendarObject{
		ObjectIdentifier: holidaysID,
		DateList:         bscal.USFederalHolidayEntries(),
	})
	cfg.ExceptionSchedule = append(cfg.ExceptionSchedule, bsmodel.SpecialEvent{
		Period:           bsmodel.NewReferencePeriod(holidaysID),
		ListOfTimeValues: []bsmodel.TimeValue{bsmodel.NewTimeValue(bsdate.Midnight(), bsval.NewInteger(0))},
		Priority:         1,
	})

	obj := bssched.NewScheduleObject(cfg, dir)
	bslog.L().Info().Str("reliability", string(obj.Reliability)).Msg("schedule object constructed")

	obj.RegisterObserver(func(event bssched.ChangeEvent) {
		bslog.L().Info().
			Str("property", string(event.Property)).
			Str("newValue", event.NewValue.String()).
			Msg("schedule object changed")
	})

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		fmt.Fprintln(os.Stderr, "bsdemo:", err)
		os.Exit(1)
	}

	var completed atomic.Uint32
	done := make(chan struct{})

	_, err = scheduler.NewJob(
		gocron.DurationJob(*interval),
		gocron.NewTask(func() {
			runTick(obj)
			if completed.Add(1) >= uint32(*ticks) {
				close(done)
			}
		}),
		gocron.WithLimitedRuns(*ticks),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bsdemo:", err)
		os.Exit(1)
	}

	scheduler.Start()
	<-done
	if err := scheduler.Shutdown(); err != nil {
		fmt.Fprintln(os.Stderr, "bsdemo: shutdown:", err)
	}
}

// runTick is the body of the external trigger: fetch the current
// instant from the wall clock, evaluate, and report.
func runTick(obj *bssched.ScheduleObject) {
	clock := bssched.SystemClock{}
	date, now := clock.Now()

	value, inEffect, err := bssched.Evaluate(obj, date, now)
	if err != nil {
		bslog.L().Error().Err(err).Msg("evaluate failed")
		return
	}
	if !inEffect {
		bslog.L().Info().Str("date", date.String()).Str("time", now.String()).Msg("schedule not in effect")
		return
	}

	periodEnd := civilTime(obj.Config.EffectivePeriod.End)
	bslog.L().Info().
		Str("date", date.String()).
		Str("time", now.String()).
		Str("value", value.String()).
		Str("effectivePeriodEnds", bslog.FormatRelative(periodEnd, time.Now().UTC())).
		Msg("evaluated present value")
}

func civilTime(d bsdate.Date) time.Time {
	return time.Date(d.ActualYear(), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
}
