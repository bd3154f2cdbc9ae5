package client

import (
	"context"
	"time"
)

type dayStore interface {
	GetDay(ctx context.Context) (int, error)
	SetDay(ctx context.Context, amountOz int) error
}

// Tracker is the today screen's working state. The in-memory total is
// authoritative until the next save completes: adds apply locally
// first, then the new cumulative total is written to the server. A
// failed save keeps the optimistic value and records the error; the
// server wins again on the next LoadToday.
type Tracker struct {
	api   dayStore
	store *LocalStore
	goal  int

	currentOz   int
	lastSaveErr error

	// Now is swapped in tests to pin the celebration day.
	Now func() time.Time
}

func NewTracker(api dayStore, store *LocalStore, goalOz int) *Tracker {
	return &Tracker{api: api, store: store, goal: goalOz, Now: time.Now}
}

func (t *Tracker) CurrentOz() int { return t.currentOz }

func (t *Tracker) GoalOz() int { return t.goal }

// LastSaveErr returns the error from the most recent save attempt, nil
// after a success.
func (t *Tracker) LastSaveErr() error { return t.lastSaveErr }

// LoadToday replaces the working value with the server's stored total.
func (t *Tracker) LoadToday(ctx context.Context) error {
	amount, err := t.api.GetDay(ctx)
	if err != nil {
		return err
	}
	t.currentOz = amount
	return nil
}

// Add logs a drink: the amount is added to the running total locally,
// the new total is saved, and the once-per-day celebration fires if
// the goal was just reached. It reports whether to celebrate.
func (t *Tracker) Add(ctx context.Context, amountOz int) bool {
	if amountOz <= 0 {
		return false
	}
	t.currentOz += amountOz
	t.lastSaveErr = t.api.SetDay(ctx, t.currentOz)
	return t.maybeCelebrate()
}

// Reset zeroes today, local and remote.
func (t *Tracker) Reset(ctx context.Context) {
	t.currentOz = 0
	t.lastSaveErr = t.api.SetDay(ctx, 0)
}

// Discard drops the in-memory value without touching the server, used
// on sign-out.
func (t *Tracker) Discard() {
	t.currentOz = 0
	t.lastSaveErr = nil
}

func (t *Tracker) maybeCelebrate() bool {
	if t.goal <= 0 || t.currentOz < t.goal {
		return false
	}
	now := t.Now()
	if t.store != nil {
		if t.store.CelebratedToday(now) {
			return false
		}
		_ = t.store.MarkCelebrated(now)
	}
	return true
}
