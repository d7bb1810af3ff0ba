package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Worlds    int
	Spawns    int
	Kinds     int
	PreAttach float64

	// Results
	TotalSpawned int64
	Survivors    int64
	Claims       int64
	Reclaims     int64
	Duplicates   int64
	Unmanaged    int64

	TotalTime     time.Duration
	SpawnTime     Stats
	SweepTime     Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Singleton Actor Stress Test Report

## Test Configuration
- **Worlds:** {{.Worlds}}
- **Spawns per World:** {{.Spawns}}
- **Spawnable Kinds:** {{.Kinds}}
- **Pre-Attach Fraction:** {{.PreAttach}}

## Results
- **Total Spawned:** {{.TotalSpawned}}
- **Survivors:** {{.Survivors}}
- **Slot Claims:** {{.Claims}} ({{.Reclaims}} reclaims of stale slots)
- **Duplicates Removed:** {{.Duplicates}}
- **Unmanaged:** {{.Unmanaged}}
- **Total Test Time:** {{.TotalTime}}
- **Spawn Pass (per world):**
  - **Avg:** {{.SpawnTime.Avg}}
  - **Min:** {{.SpawnTime.Min}}
  - **Max:** {{.SpawnTime.Max}}
- **Attach Sweep (per world):**
  - **Avg:** {{.SweepTime.Avg}}
  - **Min:** {{.SweepTime.Min}}
  - **Max:** {{.SweepTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
