package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"

	"github.com/hajni77/f1-analytics/pkg/cache"
	"github.com/hajni77/f1-analytics/pkg/f1api"
	"github.com/hajni77/f1-analytics/pkg/service"
)

// Warms up the response cache for the current season while rendering a
// paddock-style progress bar per fetch.
func main() {
	baseURL := os.Getenv("F1_BASE_URL")
	if baseURL == "" {
		baseURL = "https://f1api.dev"
	}

	pw := progress.NewWriter()
	pw.SetAutoStop(false)
	pw.SetTrackerLength(34)
	pw.SetMessageWidth(28)
	pw.SetNumTrackersExpected(3)
	pw.SetSortBy(progress.SortByMessage)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsDefault
	pw.Style().Options.Separator = ""
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.ETAOverall = false
	pw.Style().Visibility.Percentage = false
	pw.Style().Visibility.Speed = false
	pw.Style().Visibility.SpeedOverall = false
	pw.Style().Visibility.Time = false
	pw.Style().Visibility.TrackerOverall = false
	pw.Style().Visibility.Value = false
	pw.Style().Chars.BoxLeft = "|"
	pw.Style().Chars.BoxRight = "🏁"
	pw.Style().Chars.Finished = "-"
	pw.Style().Chars.Finished25 = "-"
	pw.Style().Chars.Finished50 = "-"
	pw.Style().Chars.Finished75 = "-"
	pw.Style().Chars.Unfinished = " "

	go pw.Render()

	names := []string{"drivers championship", "constructors championship", "calendar"}
	trackers := map[string]*progress.Tracker{}
	for _, name := range names {
		tracker := &progress.Tracker{Message: name, Total: 100, Units: progress.UnitsDefault}
		pw.AppendTracker(tracker)
		trackers[name] = tracker
	}

	client := f1api.New(baseURL, os.Getenv("F1_API_KEY"))
	svc := service.New(f1api.NewCached(client, cache.New(time.Hour)))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := svc.Warmup(ctx, 0, func(name string) {
		if tracker, ok := trackers[name]; ok {
			tracker.SetValue(100)
			tracker.MarkAsDone()
		}
	})

	time.Sleep(300 * time.Millisecond)
	pw.Stop()

	if err != nil {
		fmt.Println("warmup failed:", err)
		os.Exit(1)
	}
	fmt.Println("cache warmed up")
}
