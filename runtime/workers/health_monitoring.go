package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	_ "github.com/shirou/gopsutil"
	"github.com/shirou/gopsutil/process"

	"chatbox-lab/contract"
	"chatbox-lab/observability"
)

// HealthMonitoringWorker logs a periodic health line: process CPU and
// resident memory plus the chat counters. Purely observational.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	stats          *observability.StatsManager
	registry       contract.ISessionRegistry
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(
	log *slog.Logger,
	stats *observability.StatsManager,
	registry contract.ISessionRegistry,
	metricInterval time.Duration,
) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		stats:          stats,
		registry:       registry,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			snapshot := w.stats.Snapshot(w.registry.Count())

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			cpuPercent, err := self.CPUPercent()
			if err != nil {
				w.log.Debug("Error while retrieving process CPU", "err", err)
			}

			w.log.Info("Health",
				"live_sessions", snapshot.LiveSessions,
				"messages_routed", snapshot.MessagesRouted,
				"deliveries_pushed", snapshot.DeliveriesPushed,
				"deliveries_dropped", snapshot.DeliveriesDropped,
				"alloc_mb", memStats.Alloc/(1<<20),
				"num_gc", memStats.NumGC,
				"cpu_percent", cpuPercent,
			)
		}
	}
}
