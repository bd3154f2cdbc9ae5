package client

import (
	"context"
	"sync"
	"time"
)

// DayCell is one calendar cell with its logged intake. Placeholder
// cells in a month grid are nil, not zero-valued DayCells.
type DayCell struct {
	Date     time.Time
	AmountOz int
}

// BuildMonthGrid lays the month containing anchor out as a flat,
// Sunday-first sequence: leading nils align day 1 under its weekday
// column, one cell per day carries the logged amount (0 when absent),
// and trailing nils pad the last row. The result length is always a
// multiple of 7; consumers reshape it into rows.
func BuildMonthGrid(anchor time.Time, amounts map[time.Time]int) []*DayCell {
	loc := anchor.Location()
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
	daysInMonth := start.AddDate(0, 1, -1).Day()

	leading := int(start.Weekday())
	cells := make([]*DayCell, leading, leading+daysInMonth)

	for day := 0; day < daysInMonth; day++ {
		date := start.AddDate(0, 0, day)
		cells = append(cells, &DayCell{Date: date, AmountOz: amounts[date]})
	}

	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}

	return cells
}

// MonthResult is one completed history load.
type MonthResult struct {
	Anchor time.Time
	Cells  []*DayCell
	Err    error
}

type monthFetcher func(ctx context.Context, year int, month time.Month) (map[time.Time]int, error)

// MonthLoader fetches month history with stale-completion protection:
// each load cancels the in-flight request and bumps a generation
// counter, and a completion whose generation no longer matches is
// dropped. Without this, a slow fetch for the old month could land
// after the user has already moved on and clobber the newer grid.
type MonthLoader struct {
	mu     sync.Mutex
	fetch  monthFetcher
	apply  func(MonthResult)
	anchor time.Time
	gen    uint64
	cancel context.CancelFunc
}

// NewMonthLoader starts anchored at the month containing start. apply
// receives each non-stale result, on the loader's goroutine.
func NewMonthLoader(start time.Time, fetch monthFetcher, apply func(MonthResult)) *MonthLoader {
	return &MonthLoader{
		fetch:  fetch,
		apply:  apply,
		anchor: firstOfMonth(start),
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (l *MonthLoader) Anchor() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.anchor
}

// ChangeMonth shifts the anchor by whole months (year rollover
// included) and starts a fresh load for the new month. The previous
// grid is not patched; it is replaced when the load completes.
func (l *MonthLoader) ChangeMonth(by int) {
	l.mu.Lock()
	l.anchor = l.anchor.AddDate(0, by, 0)
	l.mu.Unlock()
	l.Load()
}

// Load fetches the anchored month, superseding any in-flight load.
func (l *MonthLoader) Load() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.gen++
	gen := l.gen
	anchor := l.anchor
	l.mu.Unlock()

	go func() {
		defer cancel()
		amounts, err := l.fetch(ctx, anchor.Year(), anchor.Month())

		l.mu.Lock()
		stale := gen != l.gen
		l.mu.Unlock()
		if stale {
			return
		}

		if err != nil {
			l.apply(MonthResult{Anchor: anchor, Err: err})
			return
		}
		l.apply(MonthResult{Anchor: anchor, Cells: BuildMonthGrid(anchor, amounts)})
	}()
}

// Stop cancels any in-flight load and marks it stale, used when the
// user navigates away or signs out.
func (l *MonthLoader) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}
