package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"standup-lab/contract"
)

var _ contract.Worker = (*TelemetryWorker)(nil)

// TelemetryWorker periodically logs self stats (CPU, RAM, OS status) plus
// the command queue depth, so a stalling meeting run is diagnosable from
// the logs alone.
type TelemetryWorker struct {
	log      *slog.Logger
	interval time.Duration
	queueLen func() int
}

func NewTelemetryWorker(log *slog.Logger, interval time.Duration, queueLen func() int) *TelemetryWorker {
	return &TelemetryWorker{log: log, interval: interval, queueLen: queueLen}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("Meeting telemetry",
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"pid_status", status,
				"queue_size", w.queueLen())
		}
	}
}

// selfStats retrieves technical metrics (memory, CPU, OS status) for the
// given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
