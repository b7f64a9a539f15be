package codeact

// EventKind discriminates between event types.
type EventKind string

const (
	// Actions emitted toward the external world.
	EventRunCommand        EventKind = "run_command"
	EventRunCode           EventKind = "run_code"
	EventBrowseInteractive EventKind = "browse_interactive"
	EventMessage           EventKind = "message"
	EventFinish            EventKind = "finish"

	// Observations recorded from the external world.
	EventCommandOutput EventKind = "command_output"
	EventCodeOutput    EventKind = "code_output"
	EventBrowserOutput EventKind = "browser_output"
)

// EventSource attributes an action to its author.
type EventSource string

const (
	SourceUser  EventSource = "user"
	SourceAgent EventSource = "agent"
)

// Event is a single entry in the conversation history: either an action or
// an observation, discriminated by Kind with exactly one payload set.
type Event struct {
	Kind   EventKind   `json:"kind"`
	Source EventSource `json:"source,omitempty"`

	RunCommand        *RunCommandAction        `json:"run_command,omitempty"`
	RunCode           *RunCodeAction           `json:"run_code,omitempty"`
	BrowseInteractive *BrowseInteractiveAction `json:"browse_interactive,omitempty"`
	Message           *MessageAction           `json:"message,omitempty"`
	Finish            *FinishAction            `json:"finish,omitempty"`

	CommandOutput *CommandOutputObservation `json:"command_output,omitempty"`
	CodeOutput    *CodeOutputObservation    `json:"code_output,omitempty"`
	BrowserOutput *BrowserOutputObservation `json:"browser_output,omitempty"`
}

// RunCommandAction instructs the sandbox to run a shell command.
type RunCommandAction struct {
	Thought string `json:"thought,omitempty"`
	Command string `json:"command"`
}

// RunCodeAction instructs the sandbox to run code in the IPython kernel.
type RunCodeAction struct {
	Thought string `json:"thought,omitempty"`
	Code    string `json:"code"`
}

// BrowseInteractiveAction instructs the sandbox to drive the browser.
type BrowseInteractiveAction struct {
	Thought        string `json:"thought,omitempty"`
	BrowserActions string `json:"browser_actions"`
}

// MessageAction is plain conversational text with no structured payload.
type MessageAction struct {
	Content         string `json:"content"`
	WaitForResponse bool   `json:"wait_for_response,omitempty"`
}

// FinishAction ends the interaction.
type FinishAction struct {
	Thought string `json:"thought,omitempty"`
}

// CommandOutputObservation records the result of a RunCommandAction.
type CommandOutputObservation struct {
	Content   string `json:"content"`
	CommandID int    `json:"command_id"`
	ExitCode  int    `json:"exit_code"`
}

// CodeOutputObservation records the result of a RunCodeAction.
type CodeOutputObservation struct {
	Content string `json:"content"`
}

// BrowserOutputObservation records the result of a BrowseInteractiveAction.
type BrowserOutputObservation struct {
	Content string `json:"content"`
}

// NewRunCommandAction creates an Event wrapping a shell command action.
func NewRunCommandAction(source EventSource, command, thought string) Event {
	return Event{
		Kind:       EventRunCommand,
		Source:     source,
		RunCommand: &RunCommandAction{Thought: thought, Command: command},
	}
}

// NewRunCodeAction creates an Event wrapping an IPython code action.
func NewRunCodeAction(source EventSource, code, thought string) Event {
	return Event{
		Kind:    EventRunCode,
		Source:  source,
		RunCode: &RunCodeAction{Thought: thought, Code: code},
	}
}

// NewBrowseInteractiveAction creates an Event wrapping a browser action.
func NewBrowseInteractiveAction(source EventSource, browserActions, thought string) Event {
	return Event{
		Kind:              EventBrowseInteractive,
		Source:            source,
		BrowseInteractive: &BrowseInteractiveAction{Thought: thought, BrowserActions: browserActions},
	}
}

// NewMessageAction creates an Event wrapping a plain message.
func NewMessageAction(source EventSource, content string, waitForResponse bool) Event {
	return Event{
		Kind:    EventMessage,
		Source:  source,
		Message: &MessageAction{Content: content, WaitForResponse: waitForResponse},
	}
}

// NewFinishAction creates an Event that ends the interaction.
func NewFinishAction(source EventSource, thought string) Event {
	return Event{
		Kind:   EventFinish,
		Source: source,
		Finish: &FinishAction{Thought: thought},
	}
}

// NewCommandOutputObservation creates an Event recording shell output.
func NewCommandOutputObservation(content string, commandID, exitCode int) Event {
	return Event{
		Kind:          EventCommandOutput,
		CommandOutput: &CommandOutputObservation{Content: content, CommandID: commandID, ExitCode: exitCode},
	}
}

// NewCodeOutputObservation creates an Event recording IPython output.
func NewCodeOutputObservation(content string) Event {
	return Event{
		Kind:       EventCodeOutput,
		CodeOutput: &CodeOutputObservation{Content: content},
	}
}

// NewBrowserOutputObservation creates an Event recording browser output.
func NewBrowserOutputObservation(content string) Event {
	return Event{
		Kind:          EventBrowserOutput,
		BrowserOutput: &BrowserOutputObservation{Content: content},
	}
}

// IsAction reports whether the event is an agent- or user-authored action.
func (e Event) IsAction() bool {
	switch e.Kind {
	case EventRunCommand, EventRunCode, EventBrowseInteractive, EventMessage, EventFinish:
		return true
	}
	return false
}

// IsObservation reports whether the event records sandbox output.
func (e Event) IsObservation() bool {
	switch e.Kind {
	case EventCommandOutput, EventCodeOutput, EventBrowserOutput:
		return true
	}
	return false
}

// Thought returns the free-text reasoning attached to an action, if any.
func (e Event) Thought() string {
	switch e.Kind {
	case EventRunCommand:
		if e.RunCommand != nil {
			return e.RunCommand.Thought
		}
	case EventRunCode:
		if e.RunCode != nil {
			return e.RunCode.Thought
		}
	case EventBrowseInteractive:
		if e.BrowseInteractive != nil {
			return e.BrowseInteractive.Thought
		}
	case EventFinish:
		if e.Finish != nil {
			return e.Finish.Thought
		}
	}
	return ""
}
