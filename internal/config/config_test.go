package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newDefaultViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newDefaultViper(t))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Playout.GridBlockMinutes)
	assert.Equal(t, "06:00", cfg.Playout.BroadcastDayStart)
	assert.Equal(t, int64(30000), cfg.Playout.FrameRateNum)
	assert.Equal(t, int64(1001), cfg.Playout.FrameRateDen)
	assert.Equal(t, "network", cfg.Playout.ChannelType)
	assert.Equal(t, "reject", cfg.Playout.DSTPolicy)
	assert.Equal(t, "authoritative", cfg.Horizon.AuthorityMode)
	assert.Equal(t, ByteSize(8*1024*1024), cfg.Sink.RingBufferMaxBytes)
	assert.Equal(t, 30*time.Second, cfg.Playout.PreloadBudget)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	doc := map[string]any{
		"playout": map[string]any{
			"grid_block_minutes": 15,
			"timezone":           "America/New_York",
			"channel_type":       "movie",
			"dst_policy":         "shrink_one_block",
		},
		"sink": map[string]any{
			"ring_buffer_max_bytes": "16MB",
		},
		"horizon": map[string]any{
			"authority_mode": "shadow",
		},
	}
	data, err := yaml.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "playoutd.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	v := newDefaultViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Playout.GridBlockMinutes)
	assert.Equal(t, "America/New_York", cfg.Playout.Timezone)
	assert.Equal(t, "movie", cfg.Playout.ChannelType)
	assert.Equal(t, "shrink_one_block", cfg.Playout.DSTPolicy)
	assert.Equal(t, ByteSize(16*1024*1024), cfg.Sink.RingBufferMaxBytes)
	assert.Equal(t, "shadow", cfg.Horizon.AuthorityMode)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"grid minutes not on grid", func(c *Config) { c.Playout.GridBlockMinutes = 20 }},
		{"unknown dst policy", func(c *Config) { c.Playout.DSTPolicy = "spring_forward" }},
		{"unknown channel type", func(c *Config) { c.Playout.ChannelType = "radio" }},
		{"unknown aspect policy", func(c *Config) { c.Playout.AspectPolicy = "crop" }},
		{"unknown authority mode", func(c *Config) { c.Horizon.AuthorityMode = "primary" }},
		{"zero frame rate", func(c *Config) { c.Playout.FrameRateNum = 0 }},
		{"negative frame rate den", func(c *Config) { c.Playout.FrameRateDen = -1 }},
		{"ring buffer below minimum", func(c *Config) { c.Sink.RingBufferMaxBytes = 1024 }},
		{"bad day anchor", func(c *Config) { c.Playout.BroadcastDayStart = "6am" }},
		{"unknown database driver", func(c *Config) { c.Database.Driver = "oracle" }},
		{"zero num breaks", func(c *Config) { c.Playout.NumBreaks = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(newDefaultViper(t))
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseDayAnchor(t *testing.T) {
	a, err := ParseDayAnchor("06:30")
	require.NoError(t, err)
	assert.Equal(t, 6, a.Hour())
	assert.Equal(t, 30, a.Minute())

	_, err = ParseDayAnchor("25:00")
	assert.Error(t, err)
	_, err = ParseDayAnchor("")
	assert.Error(t, err)
}

func TestParseByteSize(t *testing.T) {
	b, err := ParseByteSize("64KB")
	require.NoError(t, err)
	assert.Equal(t, ByteSize(64*1024), b)

	b, err = ParseByteSize("8388608")
	require.NoError(t, err)
	assert.Equal(t, ByteSize(8*1024*1024), b)
}
