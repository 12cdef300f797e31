package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-tales/internal/telemetry"
)

func TestSetupNoopWithoutEndpoint(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{Enabled: true, ServiceName: "test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	cfg := telemetry.Config{Endpoint: "http://localhost:4318", Enabled: false, ServiceName: "test"}
	assert.False(t, cfg.Active())

	shutdown, err := telemetry.Setup(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, shutdown(ctx))
}

func TestSetupCreatesProvider(t *testing.T) {
	// non-routable address so nothing is exported
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		Endpoint:    "http://192.0.2.1:4318",
		Enabled:     true,
		ServiceName: "flush-test",
	})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
