package codeact

import (
	"regexp"
	"strings"
)

// Delimiter pairs of the tagged mini-language embedded in model output.
// These are exact literal strings; matching is case-sensitive.
const (
	TagBashOpen     = "<execute_bash>"
	TagBashClose    = "</execute_bash>"
	TagIPythonOpen  = "<execute_ipython>"
	TagIPythonClose = "</execute_ipython>"
	TagBrowseOpen   = "<execute_browse>"
	TagBrowseClose  = "</execute_browse>"
	TagFinishOpen   = "<finish>"
	TagFinishClose  = "</finish>"
)

// The bash, ipython, and finish bodies match non-greedily. The browse body is
// greedy on purpose: it assumes at most one browse block per response and
// consumes everything up to the final closing tag, so a browser action that
// itself contains the closing-tag literal still parses as one payload.
var (
	finishPattern  = regexp.MustCompile(`(?s)<finish>.*?</finish>`)
	bashPattern    = regexp.MustCompile(`(?s)<execute_bash>(.*?)</execute_bash>`)
	ipythonPattern = regexp.MustCompile(`(?s)<execute_ipython>(.*?)</execute_ipython>`)
	browsePattern  = regexp.MustCompile(`(?s)<execute_browse>(.*)</execute_browse>`)
)

// repairablePairs are the executable tag kinds whose closing tag doubles as a
// stop sequence, so the model may halt before emitting it.
var repairablePairs = [][2]string{
	{TagBashOpen, TagBashClose},
	{TagIPythonOpen, TagIPythonClose},
	{TagBrowseOpen, TagBrowseClose},
}

// RepairResponse appends the matching closing tag for any executable-action
// opening tag left unterminated in text. Idempotent.
func RepairResponse(text string) string {
	for _, pair := range repairablePairs {
		if strings.Contains(text, pair[0]) && !strings.Contains(text, pair[1]) {
			text += pair[1]
		}
	}
	return text
}

// ParsedActionKind discriminates the classifier's output.
type ParsedActionKind string

const (
	ParsedFinish            ParsedActionKind = "finish"
	ParsedRunCommand        ParsedActionKind = "run_command"
	ParsedRunCode           ParsedActionKind = "run_code"
	ParsedBrowseInteractive ParsedActionKind = "browse_interactive"
	ParsedMessage           ParsedActionKind = "message"
)

// ParsedAction is the classifier's verdict on one model response: exactly one
// action kind plus the extracted thought and payload.
type ParsedAction struct {
	Kind            ParsedActionKind
	Thought         string
	Command         string
	Code            string
	BrowserActions  string
	Content         string
	WaitForResponse bool
}

// ParseResponse classifies raw model output into exactly one action.
// Classification is total: text with no recognized tag pair becomes a plain
// message carrying the input verbatim. Callers should run RepairResponse
// first when the text may have been cut off at a stop sequence.
//
// The thought is recovered by removing the first occurrence of the matched
// tag span from the whole text. If the surrounding prose happens to contain a
// literal copy of that span the wrong occurrence may be removed; responses
// observed in practice do not do this.
func ParseResponse(text string) ParsedAction {
	if span := finishPattern.FindString(text); span != "" {
		return ParsedAction{
			Kind:    ParsedFinish,
			Thought: strings.TrimSpace(strings.Replace(text, span, "", 1)),
		}
	}

	if m := bashPattern.FindStringSubmatch(text); m != nil {
		command := strings.TrimSpace(m[1])
		if command == "exit" {
			return ParsedAction{Kind: ParsedFinish}
		}
		return ParsedAction{
			Kind:    ParsedRunCommand,
			Command: command,
			Thought: strings.TrimSpace(strings.Replace(text, m[0], "", 1)),
		}
	}

	if m := ipythonPattern.FindStringSubmatch(text); m != nil {
		return ParsedAction{
			Kind:    ParsedRunCode,
			Code:    strings.TrimSpace(m[1]),
			Thought: strings.TrimSpace(strings.Replace(text, m[0], "", 1)),
		}
	}

	if m := browsePattern.FindStringSubmatch(text); m != nil {
		return ParsedAction{
			Kind:           ParsedBrowseInteractive,
			BrowserActions: strings.TrimSpace(m[1]),
			Thought:        strings.TrimSpace(strings.Replace(text, m[0], "", 1)),
		}
	}

	// Pure natural language means the model wants to talk to the user.
	return ParsedAction{Kind: ParsedMessage, Content: text, WaitForResponse: true}
}
