package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/mite/ecs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Entities int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	WorldStats     *ecs.WorldStats
	SchedulerStats *ecs.SchedulerStats
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
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
# mite Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}

## Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Time:** {{.TotalTime}}
- **Update Time (min/avg/max):** {{.UpdateTime.Min}} / {{.UpdateTime.Avg}} / {{.UpdateTime.Max}}

## Final World State
- **Live Entities:** {{.WorldStats.EntityCount}}
- **Component Types:** {{.WorldStats.ComponentTypeCount}}
{{- range .WorldStats.ComponentBreakdown}}
  - {{.Type}}: {{.Count}}
{{- end}}

## Systems
{{- range .SchedulerStats.Systems}}
- **{{.Name}}** ran {{.ExecutionCount}} times (min/avg/max {{.MinDuration}} / {{.AvgDuration}} / {{.MaxDuration}})
{{- end}}

## Memory
- **Heap Alloc:** {{.HeapAllocStartMB}} MB -> {{.HeapAllocEndMB}} MB
- **Total Alloc:** {{.TotalAllocMB}} MB
- **GC Cycles:** {{.NumGC}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	data := struct {
		*Report
		HeapAllocStartMB uint64
		HeapAllocEndMB   uint64
		TotalAllocMB     uint64
		NumGC            uint32
	}{
		Report:           r,
		HeapAllocStartMB: r.MemStatsStart.HeapAlloc / 1024 / 1024,
		HeapAllocEndMB:   r.MemStatsEnd.HeapAlloc / 1024 / 1024,
		TotalAllocMB:     r.MemStatsEnd.TotalAlloc / 1024 / 1024,
		NumGC:            r.MemStatsEnd.NumGC - r.MemStatsStart.NumGC,
	}

	return tmpl.Execute(w, data)
}
