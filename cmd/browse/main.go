package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/federico-sauter/browse/internal/config"
	"github.com/federico-sauter/browse/internal/editor"
	"github.com/federico-sauter/browse/internal/parse"
	"github.com/federico-sauter/browse/internal/source"
	"github.com/federico-sauter/browse/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

// emptyResultDiagnostic explains an empty match list in terms of the
// child's exit status: 0 means the command ran fine but produced nothing
// in the expected format, 1 means it found nothing. Any other status is
// the child's own failure and gets no diagnostic of ours.
func emptyResultDiagnostic(status int) string {
	switch status {
	case 0:
		return "Unable to parse matches. (Did you forget to specify the '-n' option to grep?)"
	case 1:
		return "No matches."
	}
	return ""
}

func main() {
	sep := flag.String("s", string(parse.DefaultSeparator), "Field separator in the input records")
	tabStop := flag.Int("t", parse.DefaultTabStop, "Spaces per tab in match text")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> [args...]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Runs <command>, parses its path:line:text output (grep -n style)")
		fmt.Fprintln(os.Stderr, "and browses the matches; Enter opens the match in $EDITOR.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("browse", version)
		os.Exit(0)
	}

	argv := flag.Args()
	if len(argv) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if len(*sep) != 1 {
		fmt.Fprintln(os.Stderr, "Error: -s takes a single character")
		os.Exit(2)
	}

	cfg := config.Config{
		Editor:    editor.FromEnv(),
		Separator: (*sep)[0],
		TabStop:   *tabStop,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	src, err := source.Start(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The list is fully materialized before anything is drawn; there is
	// no incremental display.
	matches := parse.New(src.Output(), cfg.Separator, cfg.TabStop).Drain()

	if len(matches) == 0 {
		// Propagate the child's own exit status: 0 means it ran fine
		// but produced nothing parseable, 1 means it found nothing.
		status, err := src.Wait()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read child process exit status: %v\n", err)
			os.Exit(1)
		}
		if diag := emptyResultDiagnostic(status); diag != "" {
			fmt.Fprintln(os.Stderr, diag)
		}
		os.Exit(status)
	}

	// Reap the child so it does not linger as a zombie while the list
	// is on screen.
	go src.Wait()

	p := tea.NewProgram(tui.NewApp(cfg, matches), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if app, ok := final.(tui.App); ok && app.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", app.Err())
		os.Exit(1)
	}
}
