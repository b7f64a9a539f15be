package codeact

import "github.com/google/uuid"

// State is the caller-owned conversation state driven through the agent one
// step at a time. The agent only reads History; appending the returned action
// and its eventual observation is the caller's responsibility. The single
// counter the agent mutates is NumChars.
type State struct {
	ID            string  `json:"id"`
	History       []Event `json:"history"`
	Iteration     int     `json:"iteration"`
	MaxIterations int     `json:"max_iterations"`

	// NumChars accumulates the characters sent to and received from the
	// model across steps.
	NumChars int `json:"num_chars"`
}

// NewState creates an empty State with a fresh identifier.
func NewState(maxIterations int) *State {
	if maxIterations <= 0 {
		maxIterations = 100
	}
	return &State{
		ID:            uuid.New().String(),
		History:       make([]Event, 0),
		MaxIterations: maxIterations,
	}
}

// CurrentUserIntent returns the content of the most recent user message
// action, or "" if the user has not sent one.
func (s *State) CurrentUserIntent() string {
	for i := len(s.History) - 1; i >= 0; i-- {
		ev := s.History[i]
		if ev.Kind == EventMessage && ev.Source == SourceUser && ev.Message != nil {
			return ev.Message.Content
		}
	}
	return ""
}
