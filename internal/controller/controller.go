package controller

import (
	"context"
	"fmt"
	"time"

	"xdgmimer/internal/domain"
	"xdgmimer/internal/handler"
	"xdgmimer/internal/mimedb"
	"xdgmimer/internal/search"
)

// commandTimeout bounds a single registry tool invocation.
const commandTimeout = 10 * time.Second

// State is the controller-owned interaction state. Nothing else may
// mutate it; the store is read-only and the default handler lives in
// the external registry.
type State struct {
	Mode       domain.Mode
	Query      string
	Candidates []string // current search result, store order
	Selected   string   // "" = no selection
	NoMatch    bool     // selection was cleared by the sentinel index
}

// HandlerView is one handler row in the projection.
type HandlerView struct {
	ID        string
	IsDefault bool
}

// View is an immutable snapshot derived from the current state. It is
// recomputed on demand and carries everything the presentation layer
// needs, so rendering never reaches back into the controller.
type View struct {
	Mode       domain.Mode
	Query      string
	Prompt     string
	Candidates []string
	NoMatch    bool
	Selected   string
	Handlers   []HandlerView
}

// Controller consumes interaction events and drives the search engine
// and the default-handler gateway. Events are processed one at a time
// to completion; there is no parallelism and no pending work between
// events.
type Controller struct {
	store    *mimedb.Store
	searcher *search.Service
	gateway  handler.Service
	state    State
}

// New creates a controller in Searching mode with every mime type as a
// candidate.
func New(store *mimedb.Store, gateway handler.Service) *Controller {
	return &Controller{
		store:    store,
		searcher: search.NewService(store),
		gateway:  gateway,
		state: State{
			Mode:       domain.ModeSearching,
			Candidates: store.Keys(),
		},
	}
}

// Handle applies one event to the state. Only SearchQueryChanged
// changes the candidate list; a later query simply replaces the effect
// of an earlier one.
func (c *Controller) Handle(event domain.DomainEvent) {
	switch e := event.(type) {
	case domain.SearchQueryChangedEvent:
		c.state.Mode = domain.ModeSearching
		c.state.Query = e.Query
		c.state.Candidates = c.searcher.Search(e.Query)

	case domain.ItemSelectedEvent:
		c.state.Mode = domain.ModeSelecting
		if e.Index == domain.InvalidIndex || e.Index < 0 || e.Index >= len(c.state.Candidates) {
			c.state.Selected = ""
			c.state.NoMatch = true
			return
		}
		c.state.Selected = c.state.Candidates[e.Index]
		c.state.NoMatch = false

	case domain.DefaultRequestedEvent:
		c.state.Mode = domain.ModeSetting
		if c.state.Selected == "" {
			return
		}
		// The store is never touched here; only the external registry
		// changes, observed on the next Query.
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		c.gateway.SetDefault(ctx, c.state.Selected, e.Handler)
		cancel()
	}
}

// Mode returns the current interaction mode.
func (c *Controller) Mode() domain.Mode {
	return c.state.Mode
}

// View projects the current state. It is referentially pure with
// respect to the state: it emits no events and mutates nothing, which
// is what keeps the update cycle from feeding back into itself. The
// default handler is queried live on every projection that needs it.
func (c *Controller) View() View {
	v := View{
		Mode:    c.state.Mode,
		Query:   c.state.Query,
		NoMatch: c.state.NoMatch,
	}

	switch c.state.Mode {
	case domain.ModeSearching:
		v.Candidates = append([]string(nil), c.state.Candidates...)
		if c.state.Query == "" {
			v.Prompt = "Search for a mime type, or pick one from the list."
		} else {
			v.Prompt = fmt.Sprintf("You searched: %s", c.state.Query)
		}

	default: // Selecting and Setting project the same handler panel
		v.Selected = c.state.Selected
		if record, ok := c.store.Get(c.state.Selected); ok {
			v.Prompt = fmt.Sprintf("Available applications for %q", record.MimeType)

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			current, hasDefault := c.gateway.Query(ctx, record.MimeType)
			cancel()

			v.Handlers = make([]HandlerView, 0, len(record.Handlers))
			for _, id := range record.Handlers {
				v.Handlers = append(v.Handlers, HandlerView{
					ID:        id,
					IsDefault: hasDefault && id == current,
				})
			}
		}
	}

	if c.state.NoMatch {
		v.Prompt = "Your search doesn't match any mime type."
	}

	return v
}
