package model

import (
	"fmt"
	"path/filepath"
)

// Match is one parsed record of search output. The parser finalizes a
// Match once per input line; nothing mutates it afterwards.
type Match struct {
	Path        string
	Line        int
	Label       string
	Description string
}

// NewMatch finalizes a record, deriving the display label from the
// file's base name and line number.
func NewMatch(path string, line int, description string) Match {
	return Match{
		Path:        path,
		Line:        line,
		Label:       fmt.Sprintf("%s [%d]", filepath.Base(path), line),
		Description: description,
	}
}
