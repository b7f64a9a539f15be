package codeact

import (
	"fmt"
	"strings"

	"github.com/martinemde/codeact/unifiedllm"
)

// ExitCommand is the user message that signals termination intent.
const ExitCommand = "/exit"

const observationPrefix = "OBSERVATION:\n"

// Inline base64 images are replaced before truncation so binary data neither
// eats the truncation budget nor gets re-displayed.
const (
	base64ImageMarker      = "![image](data:image/png;base64,"
	base64ImagePlaceholder = "![image](data:image/png;base64, ...) already displayed to user"
)

// actionText renders an action event as prompt text, wrapping executable
// payloads in their delimiter pair. Plain messages pass through verbatim.
func actionText(ev Event) string {
	switch ev.Kind {
	case EventRunCommand:
		return ev.RunCommand.Thought + "\n" + TagBashOpen + "\n" + ev.RunCommand.Command + "\n" + TagBashClose
	case EventRunCode:
		return ev.RunCode.Thought + "\n" + TagIPythonOpen + "\n" + ev.RunCode.Code + "\n" + TagIPythonClose
	case EventBrowseInteractive:
		return ev.BrowseInteractive.Thought + "\n" + TagBrowseOpen + "\n" + ev.BrowseInteractive.BrowserActions + "\n" + TagBrowseClose
	case EventMessage:
		return ev.Message.Content
	}
	return ""
}

// observationText renders an observation event as prompt text with the
// observation prefix and truncation applied.
func observationText(ev Event, maxChars int) string {
	switch ev.Kind {
	case EventCommandOutput:
		o := ev.CommandOutput
		return observationPrefix + TruncateObservation(o.Content, maxChars) +
			fmt.Sprintf("\n[Command %d finished with exit code %d]]", o.CommandID, o.ExitCode)
	case EventCodeOutput:
		content := observationPrefix + ev.CodeOutput.Content
		lines := strings.Split(content, "\n")
		for i, line := range lines {
			if strings.Contains(line, base64ImageMarker) {
				lines[i] = base64ImagePlaceholder
			}
		}
		return TruncateObservation(strings.Join(lines, "\n"), maxChars)
	case EventBrowserOutput:
		return observationPrefix + TruncateObservation(ev.BrowserOutput.Content, maxChars)
	}
	return ""
}

// EventToMessage converts one history event into zero or one role-tagged
// message. Finish actions produce nothing. Observations are always attributed
// to the user; actions follow their source.
func EventToMessage(ev Event, maxChars int) (unifiedllm.Message, bool) {
	switch ev.Kind {
	case EventRunCommand, EventRunCode, EventBrowseInteractive, EventMessage:
		role := unifiedllm.RoleAssistant
		if ev.Source == SourceUser {
			role = unifiedllm.RoleUser
		}
		return unifiedllm.Message{Role: role, Content: actionText(ev)}, true
	case EventCommandOutput, EventCodeOutput, EventBrowserOutput:
		return unifiedllm.Message{Role: unifiedllm.RoleUser, Content: observationText(ev, maxChars)}, true
	}
	return unifiedllm.Message{}, false
}

// BuildMessages assembles the full message list for one model call: the
// static system message, the in-context example, then one message per history
// event that produces one. A turns-remaining reminder is appended to the last
// user message unless that message is exactly ExitCommand, which is left
// untouched so the step controller can short-circuit on it.
//
// The returned slice is an ephemeral view; State is never mutated.
func BuildMessages(state *State, cfg Config) []unifiedllm.Message {
	messages := []unifiedllm.Message{
		{Role: unifiedllm.RoleSystem, Content: cfg.SystemMessage},
		{Role: unifiedllm.RoleUser, Content: cfg.InContextExample},
	}

	for _, ev := range state.History {
		if msg, ok := EventToMessage(ev, cfg.MaxObservationChars); ok {
			messages = append(messages, msg)
		}
	}

	last := lastUserMessageIndex(messages)
	if last < 0 {
		return messages
	}
	if strings.TrimSpace(messages[last].Content) == ExitCommand {
		return messages
	}
	messages[last].Content += fmt.Sprintf(
		"\n\nENVIRONMENT REMINDER: You have %d turns left to complete the task.",
		state.MaxIterations-state.Iteration)
	return messages
}

func lastUserMessageIndex(messages []unifiedllm.Message) int {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == unifiedllm.RoleUser {
			return i
		}
	}
	return -1
}
