package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/andareed/memoria/logging"
	"github.com/andareed/memoria/memorial"
	tea "github.com/charmbracelet/bubbletea"
)

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	zoomFlag := flag.Int("zoom", 0, "initial map zoom (overrides MEMORIA_ZOOM)")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config %v", err)
	}
	if *logFile != "" {
		cfg.DebugLog = *logFile
	}
	if *zoomFlag != 0 {
		cfg.Zoom = *zoomFlag
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Dataset = args[0]
	}

	cleanup, err := logging.SetupLogging(cfg.DebugLog)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("memoria: Started")

	if cfg.Dataset == "" {
		fmt.Println("Usage: memoria [--debug debug.log] [--zoom N] <datos.json|datos.csv>")
		os.Exit(1)
	}

	var program tea.Model
	m, err := start(cfg)
	if err != nil {
		logging.Warnf("startup failed: %v", err)
		program = newFailureModel(err)
	} else {
		program = m
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(program, opts...).Run(); err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// start loads the dataset and builds the model. Any failure here is a startup failure:
// the caller shows the replacement screen instead of a partial map.
func start(cfg Config) (*model, error) {
	ds, err := memorial.LoadFile(cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", cfg.Dataset, err)
	}
	return newModel(cfg, cfg.Dataset, ds)
}
