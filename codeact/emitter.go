package codeact

import (
	"sync"
	"time"
)

// StepEventKind identifies the type of step event.
type StepEventKind string

const (
	StepEventStart         StepEventKind = "step_start"
	StepEventExitCommand   StepEventKind = "exit_command"
	StepEventModelResponse StepEventKind = "model_response"
	StepEventActionParsed  StepEventKind = "action_parsed"
	StepEventWarning       StepEventKind = "warning"
	StepEventError         StepEventKind = "error"
)

// StepEvent is a typed event emitted by the agent while stepping.
type StepEvent struct {
	Kind      StepEventKind          `json:"kind"`
	Timestamp time.Time              `json:"timestamp"`
	AgentID   string                 `json:"agent_id"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// StepEmitter delivers typed events to the host application via a channel.
type StepEmitter struct {
	agentID string
	ch      chan StepEvent
	closed  bool
	mu      sync.Mutex
}

// NewStepEmitter creates a StepEmitter with a buffered channel.
func NewStepEmitter(agentID string, bufferSize int) *StepEmitter {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &StepEmitter{
		agentID: agentID,
		ch:      make(chan StepEvent, bufferSize),
	}
}

// Emit sends an event to the channel. Events are dropped rather than blocking
// the step, and silently discarded once the emitter is closed.
func (e *StepEmitter) Emit(kind StepEventKind, data map[string]interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	event := StepEvent{
		Kind:      kind,
		Timestamp: time.Now(),
		AgentID:   e.agentID,
		Data:      data,
	}
	select {
	case e.ch <- event:
	default:
	}
}

// Events returns the read-only event channel.
func (e *StepEmitter) Events() <-chan StepEvent {
	return e.ch
}

// Close closes the event channel. Safe to call multiple times.
func (e *StepEmitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.closed {
		e.closed = true
		close(e.ch)
	}
}
