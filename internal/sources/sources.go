package sources

import (
	"log"
	"os"
	"path/filepath"

	"xdgmimer/internal/config"
	"xdgmimer/internal/eventbus"
)

// systemCachePath is the distribution-wide association cache.
const systemCachePath = "/usr/share/applications/mimeinfo.cache"

// Resolver supplies the ordered list of readable association files the
// store is built from. Resolution happens once at startup; the store
// never watches for later changes.
type Resolver struct {
	bus           eventbus.EventBus
	extra         []string
	includeSystem bool
}

// NewResolver creates a new source resolver
func NewResolver(bus eventbus.EventBus, cfg *config.Config) *Resolver {
	return &Resolver{
		bus:           bus,
		extra:         cfg.Sources.Extra,
		includeSystem: cfg.Sources.IncludeSystem,
	}
}

// Resolve returns the association files that exist and are readable, in
// ingestion order. An empty result is valid and yields an empty store.
func (r *Resolver) Resolve() []string {
	paths := filter(r.candidates())

	if r.bus != nil {
		r.bus.Publish(eventbus.SourcesResolvedEvent{Paths: paths})
	}

	return paths
}

// candidates returns every location worth probing, ordered user-level
// first, then system, then config extras.
func (r *Resolver) candidates() []string {
	var paths []string

	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "mimeapps.list"))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".local", "share", "applications", "mimeapps.list"))
	}

	if r.includeSystem {
		paths = append(paths, systemCachePath)
	}

	paths = append(paths, r.extra...)
	return paths
}

// filter keeps paths that are regular files we can actually open.
func filter(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			log.Printf("Skipping unreadable source %s: %v", path, err)
			continue
		}
		f.Close()

		kept = append(kept, path)
	}
	return kept
}
