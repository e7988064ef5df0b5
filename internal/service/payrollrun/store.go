package payrollrun

import (
	"sync"

	"github.com/meridianhr/console-backend-go/internal/domain/payrollrun"
)

// RunStore holds the in-flight wizard runs. Runs live only in process
// memory; a restart or an explicit cancel discards them, matching the
// console's no-durable-state contract.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]*payrollrun.Run
}

func NewRunStore() *RunStore {
	return &RunStore{runs: make(map[string]*payrollrun.Run)}
}

func (s *RunStore) Put(run *payrollrun.Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
}

func (s *RunStore) Get(runID string) (*payrollrun.Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[runID]
	return run, ok
}

func (s *RunStore) Delete(runID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[runID]; !ok {
		return false
	}
	delete(s.runs, runID)
	return true
}
