package config

import "fmt"

type Config struct {
	Editor    string
	Separator byte
	TabStop   int
}

func (c Config) Validate() error {
	if c.Editor == "" {
		return fmt.Errorf("editor command is empty (set EDITOR or leave it unset for vi)")
	}
	if c.Separator == '\n' {
		return fmt.Errorf("separator must not be the line terminator")
	}
	if c.TabStop < 1 {
		return fmt.Errorf("tab stop must be at least 1")
	}
	return nil
}
