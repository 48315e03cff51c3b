package utils

import (
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/atomic"
)

type ProgressTracker struct {
	mu sync.Mutex

	progress *mpb.Progress

	totalValues atomic.Uint64

	barTotal   *mpb.Bar
	barPerFile []*mpb.Bar

	currentSpeed atomic.String
	isFinished   atomic.Bool
}

func NewProgressTracker(fileSizes []int) *ProgressTracker {
	progress := mpb.New(
		mpb.WithOutput(color.Output),
		mpb.WithWidth(60),
	)
	pgTracker := &ProgressTracker{
		progress:    progress,
		barPerFile:  make([]*mpb.Bar, 0, len(fileSizes)),
		totalValues: atomic.Uint64{},
		isFinished:  atomic.Bool{},
	}

	colorTotal := color.New(color.Bold)
	colorSpeed := color.New(color.FgHiCyan, color.Bold)

	total := 0
	for fileIdx, size := range fileSizes {
		total += size
		bar := progress.AddBar(
			int64(size),
			mpb.PrependDecorators(
				decor.Name(fmt.Sprintf("values.%06d", fileIdx+1)),
			),
			mpb.AppendDecorators(decor.Percentage(decor.WC{W: 5})),
		)
		pgTracker.barPerFile = append(pgTracker.barPerFile, bar)
	}
	pgTracker.barTotal = progress.AddBar(
		int64(total),
		mpb.PrependDecorators(
			decor.Name(colorTotal.Sprint("Total")),
		),
		mpb.AppendDecorators(
			decor.Any(func(s decor.Statistics) string {
				return colorSpeed.Sprintf("%s/s ", pgTracker.currentSpeed.Load())
			}),
			decor.Percentage(decor.WC{W: 5}),
		),
	)

	go pgTracker.speedCalcWorker()

	return pgTracker
}

func (t *ProgressTracker) AddFinished(fileIdx int, values int) {
	t.totalValues.Add(uint64(values))

	t.mu.Lock()
	defer t.mu.Unlock()
	t.barTotal.IncrBy(values)
	t.barPerFile[fileIdx].IncrBy(values)
}

func (t *ProgressTracker) speedCalcWorker() {
	var lastValues uint64 = 0
	var lastTime time.Time = time.Now()

	for {
		time.Sleep(time.Second)

		currentValues := t.totalValues.Load()
		currentTime := time.Now()

		speed := float64(currentValues-lastValues) / currentTime.Sub(lastTime).Seconds()
		t.currentSpeed.Store(humanize.SIWithDigits(speed, 1, ""))

		lastValues = currentValues
		lastTime = currentTime

		if t.isFinished.Load() {
			return
		}
	}
}

func (t *ProgressTracker) Wait() {
	t.progress.Wait()
	t.isFinished.Store(true)
}
