package codeact

import "testing"

func TestStepEmitterDeliversEvents(t *testing.T) {
	e := NewStepEmitter("agent-1", 4)
	e.Emit(StepEventStart, map[string]interface{}{"iteration": 0})
	e.Emit(StepEventActionParsed, nil)

	ev := <-e.Events()
	if ev.Kind != StepEventStart {
		t.Errorf("expected %s, got %s", StepEventStart, ev.Kind)
	}
	if ev.AgentID != "agent-1" {
		t.Errorf("expected agent id to be stamped, got %q", ev.AgentID)
	}
	if ev.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
	if ev.Data["iteration"] != 0 {
		t.Errorf("expected data to pass through, got %v", ev.Data)
	}

	ev = <-e.Events()
	if ev.Kind != StepEventActionParsed {
		t.Errorf("expected %s, got %s", StepEventActionParsed, ev.Kind)
	}
}

func TestStepEmitterDropsWhenFull(t *testing.T) {
	e := NewStepEmitter("a", 1)
	e.Emit(StepEventStart, nil)
	// Buffer is full; this must return immediately instead of blocking.
	e.Emit(StepEventWarning, nil)

	if n := len(e.Events()); n != 1 {
		t.Fatalf("expected 1 buffered event, got %d", n)
	}
	if ev := <-e.Events(); ev.Kind != StepEventStart {
		t.Errorf("expected the oldest event to survive, got %s", ev.Kind)
	}
}

func TestStepEmitterCloseIdempotent(t *testing.T) {
	e := NewStepEmitter("a", 1)
	e.Close()
	e.Close()

	// Emit after close is a silent no-op.
	e.Emit(StepEventStart, nil)
	if _, ok := <-e.Events(); ok {
		t.Error("expected the channel to be closed and empty")
	}
}

func TestStepEmitterDefaultBufferSize(t *testing.T) {
	e := NewStepEmitter("a", 0)
	if cap(e.Events()) != 256 {
		t.Errorf("expected default buffer of 256, got %d", cap(e.Events()))
	}
}
