package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/coursetable/internal/config"
	applogger "github.com/limaJavier/coursetable/internal/logger"
	"github.com/limaJavier/coursetable/pkg/catalog"
	"github.com/limaJavier/coursetable/pkg/export"
	"github.com/limaJavier/coursetable/pkg/planner"
	"go.uber.org/zap"
)

func main() {
	// Define arguments
	configPathPtr := flag.String("config", "", "Path to the configuration file; if empty, ./config.yaml or ./config/config.yaml is used when present")
	catalogPathPtr := flag.String("catalog", "", "Path to the catalog file (JSON or YAML); overrides catalog.path")
	planPathPtr := flag.String("plan", "", "Path to the plan file (JSON or YAML)")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written (.json or .xlsx); if empty, JSON is written into the Standard Output")
	parallelPtr := flag.Bool("parallel", false, "Explore the options of the first course concurrently; overrides search.parallel")
	capPtr := flag.Int("cap", 0, "Maximum number of timetables to return; overrides search.cap when positive")
	flag.Parse()
	planPath := *planPathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if planPath == "" {
		log.Fatal("a plan file must be specified")
	} else if ext := strings.ToLower(filepath.Ext(outFile)); outFile != "" && ext != ".json" && ext != ".xlsx" {
		log.Fatalf("%v is not a valid output file: it must end in .json or .xlsx", outFile)
	}

	cfg, err := config.Load(*configPathPtr)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	if *catalogPathPtr != "" {
		cfg.Catalog.Path = *catalogPathPtr
	}
	if *parallelPtr {
		cfg.Search.Parallel = true
	}
	if *capPtr > 0 {
		cfg.Search.Cap = *capPtr
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	// Extract input
	var offerings catalog.Catalog
	if cfg.Catalog.Path != "" {
		offerings, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("cannot load catalog: %v", err)
		}
	}
	plan, err := planner.LoadPlan(planPath)
	if err != nil {
		log.Fatalf("cannot load plan: %v", err)
	}

	workspace := planner.NewWorkspace(logger)
	if _, err := plan.Apply(workspace, offerings); err != nil {
		log.Fatalf("cannot apply plan: %v", err)
	}

	// Generate timetables
	generator := cfg.Search.Generator()
	ctx, cancel := cfg.Search.Context(context.Background())
	result := workspace.Generate(ctx, generator)
	cancel()

	stats := []zap.Field{
		zap.Int("timetables", len(result.Timetables)),
		zap.Uint64("explored", result.Explored),
		zap.Bool("partial", result.Partial),
	}
	if len(result.Timetables) == 0 {
		logger.Info("no timetable fits the selected courses", stats...)
		logger.Sync()
		os.Exit(20)
	}

	// Verify timetables correctness
	for i, timetable := range result.Timetables {
		if !generator.Verify(timetable) {
			logger.Error("timetable has colliding slots", zap.Int("timetable", i+1))
			logger.Sync()
			os.Exit(15)
		}
	}

	// Build output
	var output []byte
	if strings.ToLower(filepath.Ext(outFile)) == ".xlsx" {
		buffer, err := export.Workbook(result)
		if err != nil {
			log.Fatalf("an error occurred while building the workbook: %v", err)
		}
		output = buffer.Bytes()
	} else {
		output, err = json.Marshal(export.Views(result))
		if err != nil {
			log.Fatalf("an error occurred while building output json: %v", err)
		}
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(output))
	} else {
		err := os.WriteFile(outFile, output, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	logger.Info("timetables written", stats...)
	logger.Sync()
	os.Exit(10)
}
