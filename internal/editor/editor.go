package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when $EDITOR is not set.
const DefaultEditor = "vi"

// FromEnv resolves the editor command line from the environment.
func FromEnv() string {
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	return DefaultEditor
}

// Command builds the editor invocation that opens path positioned at the
// given 1-based line, using the +N line-jump convention. The editor
// setting may carry its own arguments ("code -w", "emacs -nw").
func Command(editorCmd, path string, line int) *exec.Cmd {
	fields := strings.Fields(editorCmd)
	if len(fields) == 0 {
		fields = []string{DefaultEditor}
	}
	args := append(fields[1:], fmt.Sprintf("+%d", line), path)
	return exec.Command(fields[0], args...)
}
