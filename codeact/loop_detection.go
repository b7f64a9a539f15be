package codeact

import (
	"crypto/sha256"
	"fmt"
)

// actionSignature computes a deterministic signature for an executable action
// (kind + hash of payload). Message and finish actions have no signature.
func actionSignature(ev Event) (string, bool) {
	var payload string
	switch ev.Kind {
	case EventRunCommand:
		payload = ev.RunCommand.Command
	case EventRunCode:
		payload = ev.RunCode.Code
	case EventBrowseInteractive:
		payload = ev.BrowseInteractive.BrowserActions
	default:
		return "", false
	}
	h := sha256.Sum256([]byte(payload))
	return fmt.Sprintf("%s:%x", ev.Kind, h[:8]), true
}

// recentActionSignatures extracts signatures from the most recent executable
// agent actions in the history, in chronological order.
func recentActionSignatures(history []Event, count int) []string {
	var sigs []string
	for i := len(history) - 1; i >= 0 && len(sigs) < count; i-- {
		ev := history[i]
		if ev.Source != SourceAgent {
			continue
		}
		if sig, ok := actionSignature(ev); ok {
			sigs = append(sigs, sig)
		}
	}
	for i, j := 0, len(sigs)-1; i < j; i, j = i+1, j-1 {
		sigs[i], sigs[j] = sigs[j], sigs[i]
	}
	return sigs
}

// DetectActionLoop checks whether the last windowSize executable agent
// actions follow a repeating pattern of length 1, 2, or 3. The agent uses
// this to emit a warning event; it never alters the action returned by Step.
func DetectActionLoop(history []Event, windowSize int) bool {
	sigs := recentActionSignatures(history, windowSize)
	if len(sigs) < windowSize {
		return false
	}

	for patternLen := 1; patternLen <= 3; patternLen++ {
		if windowSize%patternLen != 0 {
			continue
		}
		pattern := sigs[:patternLen]
		allMatch := true
		for i := patternLen; i < windowSize; i += patternLen {
			for j := 0; j < patternLen; j++ {
				if sigs[i+j] != pattern[j] {
					allMatch = false
					break
				}
			}
			if !allMatch {
				break
			}
		}
		if allMatch {
			return true
		}
	}

	return false
}
