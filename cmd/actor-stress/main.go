package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/highlander/actor"
)

func main() {
	configPath := flag.String("config", "", "Optional TOML config file.")
	worlds := flag.Int("worlds", 0, "Number of worlds to run (overrides config).")
	spawns := flag.Int("spawns", 0, "Spawns per world (overrides config).")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	if *worlds > 0 {
		cfg.Stress.Worlds = *worlds
	}
	if *spawns > 0 {
		cfg.Stress.Spawns = *spawns
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log.Println("Starting singleton-actor stress test...")

	kinds, spawnable := buildKinds()
	rng := rand.New(rand.NewSource(cfg.Stress.Seed))

	report := &Report{
		Worlds:    cfg.Stress.Worlds,
		Spawns:    cfg.Stress.Spawns,
		Kinds:     len(spawnable),
		PreAttach: cfg.Stress.PreAttach,
	}
	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	preAttach := int(float64(cfg.Stress.Spawns) * cfg.Stress.PreAttach)

	for i := 0; i < cfg.Stress.Worlds; i++ {
		w := actor.NewWorld(fmt.Sprintf("world-%d", i), kinds,
			actor.WithLogger(logger))

		// A slice of spawns lands before the registry exists, so the
		// attach sweep has real work to do.
		spawnStart := time.Now()
		for n := 0; n < preAttach; n++ {
			kind := spawnable[rng.Intn(len(spawnable))]
			w.Spawn(kind.New())
		}

		registry := actor.NewRegistry(logger)
		sweepStart := time.Now()
		registry.Attach(w)
		report.SweepTime.Samples = append(report.SweepTime.Samples, time.Since(sweepStart))

		for n := preAttach; n < cfg.Stress.Spawns; n++ {
			kind := spawnable[rng.Intn(len(spawnable))]
			w.Spawn(kind.New())
		}
		report.SpawnTime.Samples = append(report.SpawnTime.Samples, time.Since(spawnStart))

		stats := registry.Stats()
		report.TotalSpawned += int64(cfg.Stress.Spawns)
		report.Survivors += int64(w.Len())
		report.Claims += stats.Claims
		report.Reclaims += stats.Reclaims
		report.Duplicates += stats.Duplicates
		report.Unmanaged += stats.Unmanaged
	}

	report.TotalTime = time.Since(startTime)
	report.SpawnTime.Finalize()
	report.SweepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Run finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.ErrorLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
