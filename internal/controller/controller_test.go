package controller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"xdgmimer/internal/domain"
	"xdgmimer/internal/handler"
	"xdgmimer/internal/mimedb"
)

// newFixture builds a controller over a small store and a mock gateway.
func newFixture(t *testing.T) (*Controller, *handler.MockService) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mimeapps.list")
	content := "text/plain=Editor1;Editor2;Editor3;\napplication/pdf=Reader;\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store, err := mimedb.NewStore([]string{path})
	require.NoError(t, err)

	mock := handler.NewMockService()
	return New(store, mock), mock
}

func TestInitialStateIsSearchingWithAllCandidates(t *testing.T) {
	t.Parallel()

	ctrl, _ := newFixture(t)

	v := ctrl.View()
	require.Equal(t, domain.ModeSearching, v.Mode)
	require.Equal(t, []string{"application/pdf", "text/plain"}, v.Candidates)
	require.False(t, v.NoMatch)
	require.NotEmpty(t, v.Prompt, "empty query still shows a prompt")
}

func TestSearchQueryChangedRecomputesCandidates(t *testing.T) {
	t.Parallel()

	ctrl, _ := newFixture(t)

	ctrl.Handle(domain.SearchQueryChangedEvent{Query: "PDF"})
	v := ctrl.View()
	require.Equal(t, domain.ModeSearching, v.Mode)
	require.Equal(t, []string{"application/pdf"}, v.Candidates)
	require.Contains(t, v.Prompt, "PDF")

	// Last write wins: a later query replaces the earlier result.
	ctrl.Handle(domain.SearchQueryChangedEvent{Query: ""})
	require.Equal(t, []string{"application/pdf", "text/plain"}, ctrl.View().Candidates)
}

func TestItemSelectedPicksCandidate(t *testing.T) {
	t.Parallel()

	ctrl, _ := newFixture(t)

	ctrl.Handle(domain.ItemSelectedEvent{Index: 1})
	v := ctrl.View()
	require.Equal(t, domain.ModeSelecting, v.Mode)
	require.Equal(t, "text/plain", v.Selected)
	require.False(t, v.NoMatch)
	require.Len(t, v.Handlers, 3)
}

func TestSentinelSelectionClearsSelection(t *testing.T) {
	t.Parallel()

	ctrl, _ := newFixture(t)

	ctrl.Handle(domain.SearchQueryChangedEvent{Query: "does-not-exist"})
	require.Empty(t, ctrl.View().Candidates)

	ctrl.Handle(domain.ItemSelectedEvent{Index: domain.InvalidIndex})
	v := ctrl.View()
	require.Equal(t, domain.ModeSelecting, v.Mode)
	require.Empty(t, v.Selected)
	require.True(t, v.NoMatch)
	require.Contains(t, v.Prompt, "doesn't match")
}

func TestOutOfRangeSelectionIsNoMatchNotPanic(t *testing.T) {
	t.Parallel()

	ctrl, _ := newFixture(t)

	ctrl.Handle(domain.ItemSelectedEvent{Index: 99})
	v := ctrl.View()
	require.Empty(t, v.Selected)
	require.True(t, v.NoMatch)
}

func TestNoMatchIndicatorPersistsAcrossModes(t *testing.T) {
	t.Parallel()

	ctrl, _ := newFixture(t)

	ctrl.Handle(domain.ItemSelectedEvent{Index: domain.InvalidIndex})
	require.True(t, ctrl.View().NoMatch)

	// Still flagged while searching again, until a valid selection.
	ctrl.Handle(domain.SearchQueryChangedEvent{Query: "text"})
	require.True(t, ctrl.View().NoMatch)

	ctrl.Handle(domain.ItemSelectedEvent{Index: 0})
	require.False(t, ctrl.View().NoMatch)
}

func TestDefaultRequestedSwitchesDefaultLabel(t *testing.T) {
	t.Parallel()

	ctrl, mock := newFixture(t)

	ctrl.Handle(domain.ItemSelectedEvent{Index: 1}) // text/plain

	// No default set yet: nothing is marked.
	for _, h := range ctrl.View().Handlers {
		require.False(t, h.IsDefault)
	}

	ctrl.Handle(domain.DefaultRequestedEvent{Handler: "Editor2"})
	require.Equal(t, domain.ModeSetting, ctrl.Mode())
	require.Equal(t, 1, mock.SetCalls)

	v := ctrl.View()
	require.Equal(t, []HandlerView{
		{ID: "Editor1", IsDefault: false},
		{ID: "Editor2", IsDefault: true},
		{ID: "Editor3", IsDefault: false},
	}, v.Handlers)
}

func TestDefaultRequestedWithoutSelectionIsANoOp(t *testing.T) {
	t.Parallel()

	ctrl, mock := newFixture(t)

	ctrl.Handle(domain.ItemSelectedEvent{Index: domain.InvalidIndex})
	ctrl.Handle(domain.DefaultRequestedEvent{Handler: "Editor1"})

	require.Zero(t, mock.SetCalls, "no selection means the gateway must not be invoked")
}

func TestViewProjectionIsPureAndLive(t *testing.T) {
	t.Parallel()

	ctrl, mock := newFixture(t)
	ctrl.Handle(domain.ItemSelectedEvent{Index: 1})

	first := ctrl.View()
	second := ctrl.View()
	require.Equal(t, first, second, "projection must not mutate state")

	// The default status is queried live on every projection, never
	// cached.
	require.Equal(t, 2, mock.QueryCalls)

	// An external change shows up on the next projection without any
	// event in between.
	mock.Defaults["text/plain"] = "Editor3"
	require.True(t, ctrl.View().Handlers[2].IsDefault)
}

func TestSettingDoesNotMutateStore(t *testing.T) {
	t.Parallel()

	ctrl, _ := newFixture(t)

	ctrl.Handle(domain.ItemSelectedEvent{Index: 1})
	before := ctrl.View().Handlers

	ctrl.Handle(domain.DefaultRequestedEvent{Handler: "Editor2"})

	after := ctrl.View().Handlers
	require.Len(t, after, len(before))
	for i := range after {
		require.Equal(t, before[i].ID, after[i].ID, "handler list is store data and must not change")
	}
}
