package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Source runs the search command whose stdout feeds the parser.
type Source struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

// Start launches argv as a child process with its stdout piped back to
// the caller. The child's stderr stays attached to the terminal.
func Start(argv []string) (*Source, error) {
	if len(argv) == 0 {
		return nil, errors.New("no command given")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}
	return &Source{cmd: cmd, stdout: stdout}, nil
}

// Output is the child's stdout. Read it to exhaustion before calling Wait.
func (s *Source) Output() io.Reader { return s.stdout }

// Wait reaps the child and reports its exit status. Search tools use the
// status to distinguish "found nothing" (1) from failure, so a non-zero
// status is not an error here; only a failure to wait at all is.
func (s *Source) Wait() (int, error) {
	err := s.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("wait for %s: %w", s.cmd.Path, err)
}
