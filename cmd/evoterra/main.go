package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/evoterra/evoterra/internal/historystore"
	"github.com/evoterra/evoterra/internal/sim"
	"github.com/evoterra/evoterra/internal/tui"
)

func main() {
	var (
		help         = flag.Bool("help", false, "Show help message")
		width        = flag.Int("width", 200, "World width in tiles")
		height       = flag.Int("height", 100, "World height in tiles")
		popSize      = flag.Int("pop-size", 40, "Creatures seeded per founding species")
		maxCreatures = flag.Int("max-creatures", 12000, "Population ceiling")
		seed         = flag.Int64("seed", 0, "Random seed (0 picks a seed from the current time)")
		ticks        = flag.Int("ticks", 0, "Run this many ticks headless and exit instead of opening the dashboard")
		dbPath       = flag.String("db", "", "Path to a sqlite file to persist run history into (optional)")
		version      = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *help {
		fmt.Println("evoterra — a deterministic evolving-ecosystem simulator")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  %s [options]\n", os.Args[0])
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Dashboard controls:")
		fmt.Println("  space      pause/resume")
		fmt.Println("  enter      step one tick while paused")
		fmt.Println("  v          cycle view (grid/stats/species/events)")
		fmt.Println("  +/-        speed up/slow down ticks-per-frame")
		fmt.Println("  q          quit")
		return
	}

	if *version {
		fmt.Println("evoterra v0.1.0")
		return
	}

	resolvedSeed := *seed
	if resolvedSeed == 0 {
		resolvedSeed = time.Now().UnixNano()
	}

	cfg := sim.DefaultConfig(uint32(resolvedSeed))
	cfg.WorldWidth = *width
	cfg.WorldHeight = *height
	cfg.CreaturesPerSpecies = *popSize
	cfg.MaxCreatures = *maxCreatures

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("building simulation: %v", err)
	}

	var store *historystore.Store
	if *dbPath != "" {
		var err error
		store, err = historystore.Open(*dbPath)
		if err != nil {
			log.Fatalf("opening history store: %v", err)
		}
		defer store.Close()

		runID := uuid.New().String()
		if err := store.BeginRun(runID, resolvedSeed, cfg.WorldWidth, cfg.WorldHeight); err != nil {
			log.Fatalf("recording run start: %v", err)
		}
	}

	if *ticks > 0 {
		s.Tick(*ticks)
		if store != nil {
			if err := mirrorHistory(store, s); err != nil {
				log.Fatalf("mirroring history: %v", err)
			}
		}
		statsJSON, err := s.GetStatsJSON()
		if err != nil {
			log.Fatalf("marshaling stats: %v", err)
		}
		fmt.Println(string(statsJSON))
		return
	}

	m := tui.New(s)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("running dashboard: %v", err)
	}

	if store != nil {
		if err := mirrorHistory(store, s); err != nil {
			log.Printf("mirroring history: %v", err)
		}
	}
}

// mirrorHistory writes the simulation's final snapshot and every
// recorded event into the history store. The in-memory history.Manager
// remains the only thing the tick loop itself reads; this is a
// best-effort write-behind copy for offline querying.
func mirrorHistory(store *historystore.Store, s *sim.Simulation) error {
	if err := store.RecordSnapshot(s); err != nil {
		return err
	}
	for _, e := range s.History.GetTimeline(0, s.GetTick()) {
		if err := store.RecordEvent(e); err != nil {
			return err
		}
	}
	return nil
}
