package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"xdgmimer/internal/controller"
	"xdgmimer/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Snapshot      controller.View
	SearchInput   string // rendered text input line
	Cursor        int    // cursor in the candidate list
	HandlerCursor int    // cursor in the handler panel
	SourceCount   int
	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title line with the source count right-aligned
	logo := r.styles.Title.Render("xdgmimer")
	sourceNote := r.styles.Dim.Render(fmt.Sprintf("%d source files", state.SourceCount))
	padding := state.Width - lipgloss.Width(logo) - lipgloss.Width(sourceNote)
	if padding > 0 {
		content.WriteString(logo + strings.Repeat(" ", padding) + sourceNote)
	} else {
		content.WriteString(logo)
	}
	content.WriteString("\n")

	// Prompt reflects the interaction mode; a sentinel selection
	// overrides it with the no-match notice in every mode.
	if state.Snapshot.NoMatch {
		content.WriteString(r.styles.NoMatch.Render(state.Snapshot.Prompt))
	} else {
		content.WriteString(r.styles.Prompt.Render(state.Snapshot.Prompt))
	}
	content.WriteString("\n\n")

	content.WriteString(state.SearchInput)
	content.WriteString("\n\n")

	if state.Snapshot.Mode == domain.ModeSearching {
		content.WriteString(r.renderCandidates(state))
	} else {
		content.WriteString(r.renderHandlers(state))
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(state.HelpView)
	}

	return content.String()
}

// renderCandidates renders the narrowed-down mime type list with a
// scrolling window around the cursor.
func (r *Renderer) renderCandidates(state ViewState) string {
	candidates := state.Snapshot.Candidates
	if len(candidates) == 0 {
		return r.styles.Dim.Render("  (no matching mime types)")
	}

	window := state.Height - 10
	if window < 3 {
		window = 3
	}

	start := 0
	if state.Cursor >= window {
		start = state.Cursor - window + 1
	}
	end := start + window
	if end > len(candidates) {
		end = len(candidates)
	}

	lines := make([]string, 0, window+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render("  ↑ more"))
	}
	for i := start; i < end; i++ {
		if i == state.Cursor {
			lines = append(lines, r.styles.Cursor.Render("> "+candidates[i]))
		} else {
			lines = append(lines, "  "+candidates[i])
		}
	}
	if end < len(candidates) {
		lines = append(lines, r.styles.Scroll.Render("  ↓ more"))
	}

	return strings.Join(lines, "\n")
}

// renderHandlers renders the handler panel for the selected mime type,
// marking the live default.
func (r *Renderer) renderHandlers(state ViewState) string {
	snapshot := state.Snapshot
	if snapshot.Selected == "" {
		return r.styles.Dim.Render("  (nothing selected)")
	}

	lines := []string{r.styles.Selected.Render("  " + snapshot.Selected), ""}

	if len(snapshot.Handlers) == 0 {
		lines = append(lines, r.styles.Dim.Render("  (no applications registered)"))
	}

	for i, h := range snapshot.Handlers {
		marker := "  "
		if i == state.HandlerCursor {
			marker = r.styles.Cursor.Render("> ")
		}

		row := marker + h.ID
		if h.IsDefault {
			row += "  " + r.styles.DefaultBadge.Render("(default)")
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}
