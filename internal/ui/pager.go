package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// SourcePager shows the raw association files in the ov pager.
type SourcePager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewSourcePager creates a new source pager
func NewSourcePager() *SourcePager {
	return &SourcePager{}
}

// SetProgram sets the program reference for terminal management
func (p *SourcePager) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowSources pages through the resolved association files, one after
// another with a header per file.
func (p *SourcePager) ShowSources(paths []string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	var content strings.Builder
	for _, path := range paths {
		content.WriteString(fmt.Sprintf("===== %s =====\n", path))
		data, err := os.ReadFile(path)
		if err != nil {
			content.WriteString(fmt.Sprintf("(unreadable: %v)\n\n", err))
			continue
		}
		content.Write(data)
		if !strings.HasSuffix(string(data), "\n") {
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}
	if len(paths) == 0 {
		content.WriteString("No association files were found.\n")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content.String()))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
