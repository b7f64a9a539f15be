package codeact

import (
	"strings"
	"testing"

	"github.com/martinemde/codeact/unifiedllm"
)

func testState(events ...Event) *State {
	s := NewState(10)
	s.History = append(s.History, events...)
	return s
}

func TestBuildMessagesSkeleton(t *testing.T) {
	cfg := DefaultConfig()
	msgs := BuildMessages(testState(), cfg)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages for empty history, got %d", len(msgs))
	}
	if msgs[0].Role != unifiedllm.RoleSystem || msgs[0].Content != cfg.SystemMessage {
		t.Error("expected first message to be the system message")
	}
	if msgs[1].Role != unifiedllm.RoleUser || !strings.Contains(msgs[1].Content, "example") {
		t.Error("expected second message to be the in-context example")
	}
}

func TestBuildMessagesReminder(t *testing.T) {
	state := testState(NewMessageAction(SourceUser, "fix the bug", false))
	state.Iteration = 2

	msgs := BuildMessages(state, DefaultConfig())
	last := msgs[len(msgs)-1]
	if last.Role != unifiedllm.RoleUser {
		t.Fatalf("expected last message to be user, got %s", last.Role)
	}
	if !strings.HasPrefix(last.Content, "fix the bug") {
		t.Errorf("expected original content preserved, got %q", last.Content)
	}
	if !strings.HasSuffix(last.Content, "You have 8 turns left to complete the task.") {
		t.Errorf("expected reminder with 8 turns, got %q", last.Content)
	}
}

func TestBuildMessagesExitUntouched(t *testing.T) {
	state := testState(NewMessageAction(SourceUser, "/exit", false))
	msgs := BuildMessages(state, DefaultConfig())
	last := msgs[len(msgs)-1]
	if last.Content != "/exit" {
		t.Errorf("expected /exit message left untouched, got %q", last.Content)
	}
}

func TestBuildMessagesDoesNotMutateState(t *testing.T) {
	state := testState(NewMessageAction(SourceUser, "fix the bug", false))
	BuildMessages(state, DefaultConfig())
	if state.History[0].Message.Content != "fix the bug" {
		t.Errorf("state history was mutated: %q", state.History[0].Message.Content)
	}
}

func TestEventToMessageRoles(t *testing.T) {
	agentCmd := NewRunCommandAction(SourceAgent, "ls", "listing files")
	msg, ok := EventToMessage(agentCmd, DefaultMaxObservationChars)
	if !ok {
		t.Fatal("expected a message for an agent command")
	}
	if msg.Role != unifiedllm.RoleAssistant {
		t.Errorf("expected assistant role, got %s", msg.Role)
	}
	want := "listing files\n" + TagBashOpen + "\nls\n" + TagBashClose
	if msg.Content != want {
		t.Errorf("expected %q, got %q", want, msg.Content)
	}

	userMsg := NewMessageAction(SourceUser, "hello", false)
	msg, ok = EventToMessage(userMsg, DefaultMaxObservationChars)
	if !ok || msg.Role != unifiedllm.RoleUser || msg.Content != "hello" {
		t.Errorf("expected verbatim user message, got ok=%v role=%s content=%q", ok, msg.Role, msg.Content)
	}
}

func TestEventToMessageFinishProducesNothing(t *testing.T) {
	if _, ok := EventToMessage(NewFinishAction(SourceAgent, "done"), DefaultMaxObservationChars); ok {
		t.Error("expected no message for a finish action")
	}
}

func TestEventToMessageCommandOutput(t *testing.T) {
	obs := NewCommandOutputObservation("total 0\n", 3, 1)
	msg, ok := EventToMessage(obs, DefaultMaxObservationChars)
	if !ok {
		t.Fatal("expected a message for command output")
	}
	if msg.Role != unifiedllm.RoleUser {
		t.Errorf("expected user role for observation, got %s", msg.Role)
	}
	if !strings.HasPrefix(msg.Content, "OBSERVATION:\ntotal 0\n") {
		t.Errorf("expected observation prefix, got %q", msg.Content)
	}
	if !strings.HasSuffix(msg.Content, "[Command 3 finished with exit code 1]]") {
		t.Errorf("expected command suffix, got %q", msg.Content)
	}
}

func TestEventToMessageImagePlaceholder(t *testing.T) {
	// A base64 line long enough to blow the truncation budget on its own:
	// replacement must happen first, so the placeholder survives intact and
	// none of the raw data leaks through truncation.
	rawData := strings.Repeat("iVBORw0KGgo", 2000)
	content := "figure saved\n![image](data:image/png;base64," + rawData + ")\ndone"
	msg, ok := EventToMessage(NewCodeOutputObservation(content), DefaultMaxObservationChars)
	if !ok {
		t.Fatal("expected a message for code output")
	}
	if !strings.Contains(msg.Content, base64ImagePlaceholder) {
		t.Error("expected image placeholder in content")
	}
	if strings.Contains(msg.Content, rawData[:100]) {
		t.Error("expected raw base64 data to be absent")
	}
	if strings.Contains(msg.Content, observationTruncationMarker) {
		t.Error("expected no truncation once the image line is replaced")
	}
}

func TestEventToMessageObservationTruncated(t *testing.T) {
	long := strings.Repeat("x", 30000)
	msg, _ := EventToMessage(NewBrowserOutputObservation(long), DefaultMaxObservationChars)
	if !strings.Contains(msg.Content, "Observation truncated") {
		t.Error("expected truncation marker for oversized observation")
	}
}
