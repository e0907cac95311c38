// Package progressTracker renders a progress bar of accepted articles
// against the crawl quota.
package progressTracker

import (
	"context"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"

	"newsCrawler/domain/model"
)

type Tracker struct {
	pw      progress.Writer
	tracker *progress.Tracker
	started bool
}

// New creates a tracker for a quota of total articles writing to out.
func New(out io.Writer, total int) *Tracker {
	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetAutoStop(true)
	pw.SetTrackerLength(30)
	pw.SetMessageLength(24)
	pw.SetUpdateFrequency(200 * time.Millisecond)
	pw.SetStyle(progress.StyleDefault)
	pw.Style().Visibility.ETA = true
	pw.Style().Visibility.Value = true
	pw.Style().Options.TimeInProgressPrecision = time.Second

	t := &progress.Tracker{
		Message: "articles accepted",
		Total:   int64(total),
		Units:   progress.UnitsDefault,
	}
	pw.AppendTracker(t)

	return &Tracker{pw: pw, tracker: t}
}

// Start renders in the background until Stop.
func (t *Tracker) Start() {
	t.started = true
	go t.pw.Render()
	for !t.pw.IsRenderInProgress() {
		time.Sleep(time.Millisecond)
	}
}

// Hook is a crawlerPool.ArticleAcceptedHook.
func (t *Tracker) Hook(_ context.Context, n int, _ model.ArticleRecord) {
	t.tracker.SetValue(int64(n))
}

func (t *Tracker) Accepted() int64 {
	return t.tracker.Value()
}

// Stop completes the bar and waits for the final frame to be drawn.
func (t *Tracker) Stop() {
	t.tracker.MarkAsDone()
	if !t.started {
		return
	}
	t.pw.Stop()
	for t.pw.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}
}
