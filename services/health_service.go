package services

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"blog-api/models"
	"blog-api/repositories"

	"go.uber.org/zap"
)

type HealthService interface {
	Check(ctx context.Context) models.HealthReport
}

type healthService struct {
	gateway   repositories.Gateway
	logger    *zap.Logger
	startedAt time.Time
	now       func() time.Time
}

func NewHealthService(gateway repositories.Gateway, logger *zap.Logger) HealthService {
	return &healthService{
		gateway:   gateway,
		logger:    logger,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

// Check never fails; an unreachable database is reported in the body.
func (s *healthService) Check(ctx context.Context) models.HealthReport {
	start := s.now()

	if err := s.gateway.Ping(ctx); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		return models.HealthReport{
			Status:    "unhealthy",
			Timestamp: start.UTC().Format(time.RFC3339),
			Error:     err.Error(),
		}
	}

	latency := s.now().Sub(start)
	uptime := start.Sub(s.startedAt)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return models.HealthReport{
		Status:    "healthy",
		Timestamp: start.UTC().Format(time.RFC3339),
		Uptime:    formatUptime(uptime),
		Database: &models.DatabaseHealth{
			Status:  "connected",
			Latency: fmt.Sprintf("%dms", latency.Milliseconds()),
		},
		Memory: &models.MemoryHealth{
			HeapUsed:  fmt.Sprintf("%dMB", toMB(mem.HeapAlloc)),
			HeapTotal: fmt.Sprintf("%dMB", toMB(mem.HeapSys)),
		},
	}
}

func formatUptime(d time.Duration) string {
	seconds := int64(d.Seconds())
	return fmt.Sprintf("%d minutes, %d seconds", seconds/60, seconds%60)
}

func toMB(bytes uint64) uint64 {
	return (bytes + 512*1024) / (1024 * 1024)
}
