package services_test

import (
	"context"
	"strings"
	"testing"

	"blog-api/config"
	"blog-api/repositories"
	"blog-api/services"
	"blog-api/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthService_Healthy(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := services.NewHealthService(repositories.NewGateway(db), zap.NewNop())

	report := svc.Check(context.Background())

	assert.Equal(t, "healthy", report.Status)
	assert.NotEmpty(t, report.Timestamp)
	assert.True(t, strings.HasSuffix(report.Uptime, "seconds"))
	require.NotNil(t, report.Database)
	assert.Equal(t, "connected", report.Database.Status)
	assert.True(t, strings.HasSuffix(report.Database.Latency, "ms"))
	require.NotNil(t, report.Memory)
	assert.True(t, strings.HasSuffix(report.Memory.HeapUsed, "MB"))
	assert.Empty(t, report.Error)
}

func TestHealthService_UnhealthyWhenDatabaseClosed(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := services.NewHealthService(repositories.NewGateway(db), zap.NewNop())
	require.NoError(t, config.CloseDatabase(db))

	report := svc.Check(context.Background())

	assert.Equal(t, "unhealthy", report.Status)
	assert.NotEmpty(t, report.Error)
	assert.Nil(t, report.Database)
}
