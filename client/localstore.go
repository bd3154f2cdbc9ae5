package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	appDirName   = "chugcheck"
	storeName    = "state.json"
	dayKeyLayout = "2006-01-02"
)

// LocalStore is the device-local key-value file. It holds only the
// cached daily goal and the last celebration date; everything else
// lives on the server.
type LocalStore struct {
	mu   sync.Mutex
	path string
	data localData
}

type localData struct {
	DailyWaterGoal      int    `json:"dailyWaterGoal"`
	LastCelebrationDate string `json:"lastCelebrationDate,omitempty"`
}

func DefaultStorePath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, storeName), nil
}

func OpenStore(path string) (*LocalStore, error) {
	s := &LocalStore{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read local store: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse local store: %w", err)
	}
	return s, nil
}

func (s *LocalStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *LocalStore) Goal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.DailyWaterGoal
}

func (s *LocalStore) SetGoal(oz int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.DailyWaterGoal = oz
	return s.save()
}

// CelebratedToday reports whether the celebration was already shown on
// now's calendar day.
func (s *LocalStore) CelebratedToday(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.LastCelebrationDate == now.Format(dayKeyLayout)
}

func (s *LocalStore) MarkCelebrated(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.LastCelebrationDate = now.Format(dayKeyLayout)
	return s.save()
}
