package client

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreGoalSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := OpenStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetGoal(75))

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	assert.Equal(t, 75, reopened.Goal())
}

func TestLocalStoreCelebrationDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := OpenStore(path)
	require.NoError(t, err)

	today := time.Date(2026, time.April, 1, 18, 0, 0, 0, time.Local)
	assert.False(t, s.CelebratedToday(today))

	require.NoError(t, s.MarkCelebrated(today))
	assert.True(t, s.CelebratedToday(today))
	assert.True(t, s.CelebratedToday(today.Add(2*time.Hour)), "same calendar day")
	assert.False(t, s.CelebratedToday(today.AddDate(0, 0, 1)), "next day resets")

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	assert.True(t, reopened.CelebratedToday(today))
}
