// Package codeact implements a single step of a CodeAct-style coding agent.
//
// Given a caller-owned conversation State, the agent builds a role-tagged
// prompt from the event history, performs one blocking call to a language
// model through the unifiedllm package, and deterministically converts the
// model's free-text reply into exactly one structured action: run a shell
// command, run IPython code, drive a browser, send a message, or finish.
//
// The package does not execute actions. The downstream sandbox runs the
// emitted action and the caller appends both the action and its resulting
// observation back onto the State before the next step.
//
// # Quick Start
//
//	agent := codeact.NewAgent(nil, nil)
//	defer agent.Close()
//
//	state := codeact.NewState(100)
//	state.History = append(state.History,
//	    codeact.NewMessageAction(codeact.SourceUser, "fix the failing test", false))
//
//	action, err := agent.Step(ctx, state)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	state.History = append(state.History, action)
package codeact
