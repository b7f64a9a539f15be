package codeact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/martinemde/codeact/unifiedllm"
)

// ErrMemorySearchUnsupported is returned by Agent.SearchMemory. The CodeAct
// agent carries no long-term memory; callers that need one must not assume an
// empty result means "nothing found".
var ErrMemorySearchUnsupported = errors.New("memory search is not supported by the codeact agent")

// Config holds the immutable configuration for an Agent. The prompt text and
// stop sequences are plain values injected at construction time.
type Config struct {
	Model    string `json:"model,omitempty"`
	Provider string `json:"provider,omitempty"`

	SystemMessage    string `json:"system_message"`
	InContextExample string `json:"in_context_example"`

	// StopSequences halt generation exactly at the end of an executable
	// block; RepairResponse restores the clipped closing tag.
	StopSequences []string `json:"stop_sequences"`

	MaxObservationChars int `json:"max_observation_chars"`

	EnableLoopDetection bool `json:"enable_loop_detection"`
	LoopDetectionWindow int  `json:"loop_detection_window"`

	EventBufferSize int `json:"event_buffer_size"`
}

// DefaultConfig returns the default agent configuration.
func DefaultConfig() Config {
	return Config{
		SystemMessage:    defaultSystemMessage,
		InContextExample: defaultInContextExample,
		StopSequences: []string{
			TagIPythonClose,
			TagBashClose,
			TagBrowseClose,
		},
		MaxObservationChars: DefaultMaxObservationChars,
		EnableLoopDetection: true,
		LoopDetectionWindow: 6,
		EventBufferSize:     256,
	}
}

// Agent performs one step of the CodeAct loop at a time. It holds no
// conversation state of its own; a single State is assumed to be driven by
// one logical sequence of steps.
type Agent struct {
	id      string
	config  Config
	client  *unifiedllm.Client
	emitter *StepEmitter
}

// NewAgent creates an Agent with the given client and optional configuration.
// A nil client uses the module-level default; a nil config uses
// DefaultConfig.
func NewAgent(client *unifiedllm.Client, config *Config) *Agent {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if client == nil {
		client = unifiedllm.GetDefaultClient()
	}

	agentID := uuid.New().String()
	return &Agent{
		id:      agentID,
		config:  cfg,
		client:  client,
		emitter: NewStepEmitter(agentID, cfg.EventBufferSize),
	}
}

// ID returns the agent identifier.
func (a *Agent) ID() string { return a.id }

// Config returns the agent's configuration.
func (a *Agent) Config() Config { return a.config }

// Events returns the step event channel for the host application.
func (a *Agent) Events() <-chan StepEvent {
	return a.emitter.Events()
}

// Close releases the event channel. The agent must not be stepped afterwards.
func (a *Agent) Close() {
	a.emitter.Close()
}

// SearchMemory fails loudly: the CodeAct agent has no memory store.
func (a *Agent) SearchMemory(query string) ([]string, error) {
	return nil, ErrMemorySearchUnsupported
}

// Step performs one step: assemble the prompt from state.History, call the
// model once with greedy decoding and the closing-tag stop sequences, and
// classify the reply into exactly one action event.
//
// Step mutates only state.NumChars. The returned action is not appended to
// the history; that is the caller's responsibility, as is eventually
// appending the matching observation from the sandbox.
func (a *Agent) Step(ctx context.Context, state *State) (Event, error) {
	a.emitter.Emit(StepEventStart, map[string]interface{}{
		"state_id":  state.ID,
		"iteration": state.Iteration,
	})

	messages := BuildMessages(state, a.config)

	// An explicit /exit from the user terminates without a model call.
	if i := lastUserMessageIndex(messages); i >= 0 && strings.TrimSpace(messages[i].Content) == ExitCommand {
		a.emitter.Emit(StepEventExitCommand, nil)
		return NewFinishAction(SourceAgent, ""), nil
	}

	temperature := 0.0
	response, err := a.client.Complete(ctx, unifiedllm.Request{
		Model:         a.config.Model,
		Provider:      a.config.Provider,
		Messages:      messages,
		Temperature:   &temperature,
		StopSequences: a.config.StopSequences,
	})
	if err != nil {
		a.emitter.Emit(StepEventError, map[string]interface{}{"error": err.Error()})
		return Event{}, fmt.Errorf("model completion failed: %w", err)
	}
	if len(response.Choices) == 0 {
		err := fmt.Errorf("model response %s contained no choices", response.ID)
		a.emitter.Emit(StepEventError, map[string]interface{}{"error": err.Error()})
		return Event{}, err
	}

	raw := RepairResponse(response.Choices[0].Message.Content)

	sent := 0
	for _, m := range messages {
		sent += len(m.Content)
	}
	state.NumChars += sent + len(raw)

	a.emitter.Emit(StepEventModelResponse, map[string]interface{}{
		"text": raw,
	})

	action := actionEvent(ParseResponse(raw))
	a.emitter.Emit(StepEventActionParsed, map[string]interface{}{
		"kind": string(action.Kind),
	})

	if a.config.EnableLoopDetection && DetectActionLoop(state.History, a.config.LoopDetectionWindow) {
		a.emitter.Emit(StepEventWarning, map[string]interface{}{
			"message": fmt.Sprintf("the last %d executable actions follow a repeating pattern", a.config.LoopDetectionWindow),
		})
	}

	return action, nil
}

// actionEvent maps the classifier's verdict onto the Event model.
func actionEvent(parsed ParsedAction) Event {
	switch parsed.Kind {
	case ParsedFinish:
		return NewFinishAction(SourceAgent, parsed.Thought)
	case ParsedRunCommand:
		return NewRunCommandAction(SourceAgent, parsed.Command, parsed.Thought)
	case ParsedRunCode:
		return NewRunCodeAction(SourceAgent, parsed.Code, parsed.Thought)
	case ParsedBrowseInteractive:
		return NewBrowseInteractiveAction(SourceAgent, parsed.BrowserActions, parsed.Thought)
	default:
		return NewMessageAction(SourceAgent, parsed.Content, parsed.WaitForResponse)
	}
}
