package conf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	cfg, err := InitConfig("tests.yml")
	require.NoError(t, err)

	require.Equal(t, "/tmp/txpool-out", cfg.OutputDir)
	require.Equal(t, "logfmt", cfg.Log.Format)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "localhost:9091", cfg.Telemetry.PushAddress)
	require.Equal(t, "txpool-parser-test", cfg.Telemetry.JobName)
	require.True(t, cfg.Telemetry.Enabled())
}

func TestInitConfigDefaults(t *testing.T) {
	cfg, err := InitConfig("")
	require.NoError(t, err)

	require.Equal(t, ".", cfg.OutputDir)
	require.False(t, cfg.Telemetry.Enabled())
}
