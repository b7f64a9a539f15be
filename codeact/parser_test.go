package codeact

import (
	"strings"
	"testing"
)

func TestRepairResponseAppendsClosingTag(t *testing.T) {
	in := "<execute_bash>\nls -la"
	got := RepairResponse(in)
	if !strings.HasSuffix(got, TagBashClose) {
		t.Errorf("expected repaired text to end with %q, got %q", TagBashClose, got)
	}
}

func TestRepairResponseIdempotent(t *testing.T) {
	inputs := []string{
		"<execute_bash>\nls -la",
		"<execute_ipython>\nprint(1)",
		"<execute_browse>\ngoto(\"https://example.com\")",
		"no tags at all",
		"complete <execute_bash>ls</execute_bash> block",
	}
	for _, in := range inputs {
		once := RepairResponse(in)
		twice := RepairResponse(once)
		if once != twice {
			t.Errorf("repair not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestRepairResponseClosesBashBeforeIPython(t *testing.T) {
	// Two unterminated blocks in one reply: the bash closer is appended
	// first, regardless of which opening tag appears first in the text.
	in := "<execute_ipython>\nprint(1)\n<execute_bash>\nls"
	got := RepairResponse(in)
	if !strings.HasSuffix(got, TagBashClose+TagIPythonClose) {
		t.Errorf("expected bash closer before ipython closer, got %q", got)
	}
}

func TestParseResponsePriorityFinishOverCommand(t *testing.T) {
	text := "Done.\n<finish></finish>\n<execute_bash>\nls\n</execute_bash>"
	got := ParseResponse(text)
	if got.Kind != ParsedFinish {
		t.Fatalf("expected finish, got %s", got.Kind)
	}
	if !strings.Contains(got.Thought, "Done.") {
		t.Errorf("expected thought to retain surrounding text, got %q", got.Thought)
	}
}

func TestParseResponseCommand(t *testing.T) {
	text := "Let me list the files first.\n<execute_bash>\nls -la\n</execute_bash>"
	got := ParseResponse(text)
	if got.Kind != ParsedRunCommand {
		t.Fatalf("expected run_command, got %s", got.Kind)
	}
	if got.Command != "ls -la" {
		t.Errorf("expected command %q, got %q", "ls -la", got.Command)
	}
	if got.Thought != "Let me list the files first." {
		t.Errorf("unexpected thought %q", got.Thought)
	}
}

func TestParseResponseExitAlias(t *testing.T) {
	got := ParseResponse("<execute_bash>exit</execute_bash>")
	if got.Kind != ParsedFinish {
		t.Fatalf("expected finish for exit alias, got %s", got.Kind)
	}

	// Whitespace around the command still hits the alias.
	got = ParseResponse("<execute_bash>\n  exit  \n</execute_bash>")
	if got.Kind != ParsedFinish {
		t.Fatalf("expected finish for padded exit alias, got %s", got.Kind)
	}

	// A command merely containing exit does not.
	got = ParseResponse("<execute_bash>exit 1</execute_bash>")
	if got.Kind != ParsedRunCommand || got.Command != "exit 1" {
		t.Fatalf("expected run_command %q, got %s %q", "exit 1", got.Kind, got.Command)
	}
}

func TestParseResponseCode(t *testing.T) {
	text := "Running the check.\n<execute_ipython>\nimport os\nprint(os.getcwd())\n</execute_ipython>"
	got := ParseResponse(text)
	if got.Kind != ParsedRunCode {
		t.Fatalf("expected run_code, got %s", got.Kind)
	}
	if got.Code != "import os\nprint(os.getcwd())" {
		t.Errorf("unexpected code %q", got.Code)
	}
}

func TestParseResponseFallbackVerbatim(t *testing.T) {
	text := "  Could you clarify which file you mean?\n"
	got := ParseResponse(text)
	if got.Kind != ParsedMessage {
		t.Fatalf("expected message, got %s", got.Kind)
	}
	if got.Content != text {
		t.Errorf("expected verbatim content, got %q", got.Content)
	}
	if !got.WaitForResponse {
		t.Error("expected message to await a reply")
	}
}

func TestParseResponseUnterminatedCommand(t *testing.T) {
	got := ParseResponse(RepairResponse("<execute_bash>\nls -la"))
	if got.Kind != ParsedRunCommand {
		t.Fatalf("expected run_command, got %s", got.Kind)
	}
	if got.Command != "ls -la" {
		t.Errorf("expected command %q, got %q", "ls -la", got.Command)
	}
}

func TestParseResponseCommandNonGreedy(t *testing.T) {
	text := "<execute_bash>echo a</execute_bash> then <execute_bash>echo b</execute_bash>"
	got := ParseResponse(text)
	if got.Command != "echo a" {
		t.Errorf("expected shortest span %q, got %q", "echo a", got.Command)
	}
}

// Browse payloads are matched greedily to the final closing tag, so a payload
// containing the closing-tag literal is kept intact. This asymmetry with the
// other tag kinds is deliberate; the test pins it against regressions.
func TestParseResponseBrowseGreedy(t *testing.T) {
	payload := "fill('q', 'what does </execute_browse> mean')\nclick('submit')"
	text := "Searching for the answer.\n<execute_browse>\n" + payload + "\n</execute_browse>"
	got := ParseResponse(text)
	if got.Kind != ParsedBrowseInteractive {
		t.Fatalf("expected browse_interactive, got %s", got.Kind)
	}
	if got.BrowserActions != payload {
		t.Errorf("expected greedy payload %q, got %q", payload, got.BrowserActions)
	}
	if got.Thought != "Searching for the answer." {
		t.Errorf("unexpected thought %q", got.Thought)
	}
}

func TestParseResponseEmptyPayload(t *testing.T) {
	got := ParseResponse("<execute_bash></execute_bash>")
	if got.Kind != ParsedRunCommand {
		t.Fatalf("expected run_command for empty payload, got %s", got.Kind)
	}
	if got.Command != "" {
		t.Errorf("expected empty command, got %q", got.Command)
	}
}

func TestParseResponseCodeBeforeBrowse(t *testing.T) {
	text := "<execute_ipython>x = 1</execute_ipython><execute_browse>goto('a')</execute_browse>"
	got := ParseResponse(text)
	if got.Kind != ParsedRunCode {
		t.Fatalf("expected code to win over browse, got %s", got.Kind)
	}
}
