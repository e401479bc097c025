package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventScenarioStart EventType = "scenario_start"
	EventScenarioEnd   EventType = "scenario_end"
)

// ScenarioEvent describes the start or end of a single scenario execution.
type ScenarioEvent struct {
	Type     EventType     `json:"type"`
	Scenario string        `json:"scenario"`
	Index    int           `json:"index"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil members are skipped.
type LifecycleHooks struct {
	OnScenarioStart func(context.Context, *ScenarioEvent)
	OnScenarioEnd   func(context.Context, *ScenarioEvent)
}
