// Package model provides the value types shared by every pricefit component.
//
// This package defines the fundamental building blocks of the mileage/price model:
//
//   - Dataset: parallel mileage and price sequences read from the data file
//   - Extrema: the (min, max) pair of one raw sequence, used to (de)normalize
//   - Coefficients: the intercept and slope fitted in normalized space
//   - StateManager: fitted-state tracking for estimators and scalers
//
// Coefficients and Dataset are plain values. They carry no identity beyond
// their contents and are passed read-only between components.
//
// Example usage:
//
//	ds := model.Dataset{Mileage: km, Price: price}
//	if err := ds.Validate(); err != nil {
//		return err
//	}
//	kmExt := model.ExtremaOf(ds.Mileage)
package model

import "sync"

// EstimatorState represents the learning state of a model
type EstimatorState int

const (
	// NotFitted indicates the model is not yet trained
	NotFitted EstimatorState = iota
	// Fitted indicates the model has been trained
	Fitted
)

func (s EstimatorState) String() string {
	if s == Fitted {
		return "fitted"
	}
	return "not fitted"
}

// StateManager tracks whether an estimator has been fitted.
// Estimators hold it by composition rather than embedding.
type StateManager struct {
	mu    sync.RWMutex
	state EstimatorState
}

// NewStateManager returns a StateManager in the NotFitted state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the owner has been fitted with training data.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == Fitted
}

// SetFitted marks the owner as fitted (trained).
//
// This method is called by model implementations after successful training.
// Should only be called by model implementations, not by end users.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Fitted
}

// Reset returns the owner to its initial untrained state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = NotFitted
}

// State returns the current state.
func (s *StateManager) State() EstimatorState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
