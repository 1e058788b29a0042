package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"xdgmimer/internal/config"
	"xdgmimer/internal/controller"
	"xdgmimer/internal/eventbus"
	"xdgmimer/internal/handler"
	"xdgmimer/internal/mimedb"
	"xdgmimer/internal/sources"
	"xdgmimer/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("xdgmimer.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
		if err != nil {
			fmt.Printf("Error loading config %s: %v\n", configPath, err)
			os.Exit(1)
		}
	} else {
		cfg, err = configSvc.Load()
		if err != nil {
			log.Printf("Error loading config: %v", err)
			cfg = config.DefaultConfig()
		}
	}

	// Create event bus and wire observability subscriptions
	bus := eventbus.New()
	bus.Subscribe(eventbus.EventCommandExecuted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CommandExecutedEvent); ok {
			log.Printf("Command: %s %s %s (handler=%q success=%v %dms)",
				event.Tool, event.Verb, event.MimeType, event.Handler, event.Success, event.Duration)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventSourcesResolved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SourcesResolvedEvent); ok {
			log.Printf("Association sources: %v", event.Paths)
		}
	})

	// Resolve association files and build the store. A source that was
	// declared readable but fails to read is fatal: there is no
	// meaningful session without a store.
	paths := sources.NewResolver(bus, cfg).Resolve()
	store, err := mimedb.NewStore(paths)
	if err != nil {
		fmt.Printf("Error building association store: %v\n", err)
		os.Exit(1)
	}
	bus.Publish(eventbus.StoreBuiltEvent{Types: store.Len(), Sources: len(paths)})
	log.Printf("Store built: %d mime types from %d sources", store.Len(), len(paths))

	// Gateway to the external default-handler registry
	gateway := handler.NewXdgMimeService(bus, cfg.Tool.Name)
	if !gateway.Available() {
		log.Printf("Warning: %s not found in PATH, defaults cannot be queried or set", cfg.Tool.Name)
	}

	// Controller and UI
	ctrl := controller.New(store, gateway)
	uiModel := ui.NewModel(bus, ctrl, cfg, paths)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
