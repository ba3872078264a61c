// Package config provides configuration management for playoutd using Viper.
// It supports configuration from files, environment variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	defaultServerPort          = 8080
	defaultServerTimeout       = 30 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
	defaultMaxOpenConns        = 25
	defaultMaxIdleConns        = 10
	defaultConnMaxIdleTime     = 30 * time.Minute
	defaultGridBlockMinutes    = 30
	defaultBroadcastDayStart   = "06:00"
	defaultFrameRateNum        = 30000
	defaultFrameRateDen        = 1001
	defaultPreloadBudget       = 30 * time.Second
	defaultFeedAheadHorizon    = 90 * time.Second
	defaultRingBufferMaxBytes  = 8 * 1024 * 1024
	defaultHorizonDepth        = 24 * time.Hour
	defaultHorizonSyncInterval = time.Minute
	defaultNumBreaks           = 3
	defaultFadeDuration        = 500 * time.Millisecond
	defaultStopDeadline        = 2 * time.Second
	defaultSinkDialTimeout     = 10 * time.Second
	defaultSinkCallTimeout     = 5 * time.Second

	// MinRingBufferBytes is the smallest permitted TS ring buffer size.
	MinRingBufferBytes = 64 * 1024
)

// Valid values for enumerated options.
var (
	validGridBlockMinutes = map[int]bool{15: true, 30: true, 60: true}
	validAuthorityModes   = map[string]bool{"legacy": true, "shadow": true, "authoritative": true}
	validAspectPolicies   = map[string]bool{"preserve": true, "stretch": true}
	validChannelTypes     = map[string]bool{"movie": true, "network": true}
	validDSTPolicies      = map[string]bool{"reject": true, "shrink_one_block": true, "expand_one_block": true}
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Sink     SinkConfig     `mapstructure:"sink"`
	Playout  PlayoutConfig  `mapstructure:"playout"`
	Horizon  HorizonConfig  `mapstructure:"horizon"`
}

// ServerConfig holds HTTP server configuration for the read-only API.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite, postgres, mysql
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	LogLevel        string        `mapstructure:"log_level"` // silent, error, warn, info
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, text
	AddSource  bool   `mapstructure:"add_source"`
	TimeFormat string `mapstructure:"time_format"`
}

// SinkConfig holds the AIR sink connection configuration.
type SinkConfig struct {
	// Address is the gRPC address of the AIR rendering engine.
	Address string `mapstructure:"address"`
	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	// CallTimeout bounds unary control RPCs.
	CallTimeout time.Duration `mapstructure:"call_timeout"`
	// RingBufferMaxBytes bounds the TS fan-out ring buffer.
	// Supports human-readable values like "8MB" or raw byte counts.
	RingBufferMaxBytes ByteSize `mapstructure:"ring_buffer_max_bytes"`
}

// PlayoutConfig holds the channel playout options.
// These are daemon-wide defaults; a schedule plan may narrow them per channel.
type PlayoutConfig struct {
	// GridBlockMinutes is the channel grid granularity. One of 15, 30, 60.
	GridBlockMinutes int `mapstructure:"grid_block_minutes"`
	// BroadcastDayStart is the local time-of-day anchor, "HH:MM".
	BroadcastDayStart string `mapstructure:"broadcast_day_start"`
	// Timezone is the channel timezone, e.g. "America/New_York".
	Timezone string `mapstructure:"timezone"`
	// FrameRateNum / FrameRateDen form the rational frame rate, e.g. 30000/1001.
	FrameRateNum int64 `mapstructure:"frame_rate_num"`
	FrameRateDen int64 `mapstructure:"frame_rate_den"`
	// PreloadBudget is the minimum non-recovery runway ahead of the playhead.
	PreloadBudget time.Duration `mapstructure:"preload_budget"`
	// FeedAheadHorizon is how far ahead the scheduler keeps one block queued.
	FeedAheadHorizon time.Duration `mapstructure:"feed_ahead_horizon"`
	// AspectPolicy is "preserve" or "stretch".
	AspectPolicy string `mapstructure:"aspect_policy"`
	// ChannelType drives segmentation: "movie" or "network".
	ChannelType string `mapstructure:"channel_type"`
	// DSTPolicy is "reject", "shrink_one_block", or "expand_one_block".
	DSTPolicy string `mapstructure:"dst_policy"`
	// NumBreaks is the number of mid-content breaks when no chapter markers exist.
	NumBreaks int `mapstructure:"num_breaks"`
	// FadeDuration applies to transitions at computed breakpoints.
	FadeDuration time.Duration `mapstructure:"fade_duration"`
	// StopDeadline bounds ChannelManager.Stop.
	StopDeadline time.Duration `mapstructure:"stop_deadline"`
}

// HorizonConfig holds horizon manager configuration.
type HorizonConfig struct {
	// AuthorityMode is "legacy", "shadow", or "authoritative".
	AuthorityMode string `mapstructure:"authority_mode"`
	// Depth is the target planning depth ahead of the playhead.
	Depth time.Duration `mapstructure:"depth"`
	// SyncInterval is how often the extension loop checks the window.
	SyncInterval time.Duration `mapstructure:"sync_interval"`
	// ExtendSchedule is an optional cron expression for forced daily extension
	// (for example "30 5 * * *" just ahead of the broadcast-day anchor).
	ExtendSchedule string `mapstructure:"extend_schedule"`
	// Retention is how far behind the playhead execution entries are kept.
	Retention time.Duration `mapstructure:"retention"`
}

// SetDefaults sets default values on the provided viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.read_timeout", defaultServerTimeout)
	v.SetDefault("server.write_timeout", defaultServerTimeout)
	v.SetDefault("server.shutdown_timeout", defaultShutdownTimeout)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "playoutd.db")
	v.SetDefault("database.max_open_conns", defaultMaxOpenConns)
	v.SetDefault("database.max_idle_conns", defaultMaxIdleConns)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.conn_max_idle_time", defaultConnMaxIdleTime)
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.add_source", false)

	v.SetDefault("sink.address", "127.0.0.1:9520")
	v.SetDefault("sink.dial_timeout", defaultSinkDialTimeout)
	v.SetDefault("sink.call_timeout", defaultSinkCallTimeout)
	v.SetDefault("sink.ring_buffer_max_bytes", defaultRingBufferMaxBytes)

	v.SetDefault("playout.grid_block_minutes", defaultGridBlockMinutes)
	v.SetDefault("playout.broadcast_day_start", defaultBroadcastDayStart)
	v.SetDefault("playout.timezone", "UTC")
	v.SetDefault("playout.frame_rate_num", defaultFrameRateNum)
	v.SetDefault("playout.frame_rate_den", defaultFrameRateDen)
	v.SetDefault("playout.preload_budget", defaultPreloadBudget)
	v.SetDefault("playout.feed_ahead_horizon", defaultFeedAheadHorizon)
	v.SetDefault("playout.aspect_policy", "preserve")
	v.SetDefault("playout.channel_type", "network")
	v.SetDefault("playout.dst_policy", "reject")
	v.SetDefault("playout.num_breaks", defaultNumBreaks)
	v.SetDefault("playout.fade_duration", defaultFadeDuration)
	v.SetDefault("playout.stop_deadline", defaultStopDeadline)

	v.SetDefault("horizon.authority_mode", "authoritative")
	v.SetDefault("horizon.depth", defaultHorizonDepth)
	v.SetDefault("horizon.sync_interval", defaultHorizonSyncInterval)
	v.SetDefault("horizon.extend_schedule", "")
	v.SetDefault("horizon.retention", defaultHorizonDepth)
}

// Load reads configuration from the provided viper instance into a Config.
// The TextUnmarshaller hook lets string values decode into ByteSize fields
// ("8MB"); the duration and slice hooks restore viper's stock behaviour,
// which passing an explicit hook set replaces.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for invalid or out-of-range values.
// Unknown enum values are rejected rather than defaulted.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		errs = append(errs, fmt.Errorf("database.driver: unknown driver %q", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.dsn: must not be empty"))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d out of range", c.Server.Port))
	}

	if !validGridBlockMinutes[c.Playout.GridBlockMinutes] {
		errs = append(errs, fmt.Errorf("playout.grid_block_minutes: %d not in {15, 30, 60}", c.Playout.GridBlockMinutes))
	}
	if _, err := ParseDayAnchor(c.Playout.BroadcastDayStart); err != nil {
		errs = append(errs, fmt.Errorf("playout.broadcast_day_start: %w", err))
	}
	if c.Playout.FrameRateNum <= 0 || c.Playout.FrameRateDen <= 0 {
		errs = append(errs, fmt.Errorf("playout.frame_rate: %d/%d must be positive",
			c.Playout.FrameRateNum, c.Playout.FrameRateDen))
	}
	if !validAspectPolicies[c.Playout.AspectPolicy] {
		errs = append(errs, fmt.Errorf("playout.aspect_policy: unknown policy %q", c.Playout.AspectPolicy))
	}
	if !validChannelTypes[c.Playout.ChannelType] {
		errs = append(errs, fmt.Errorf("playout.channel_type: unknown type %q", c.Playout.ChannelType))
	}
	if !validDSTPolicies[c.Playout.DSTPolicy] {
		errs = append(errs, fmt.Errorf("playout.dst_policy: unknown policy %q", c.Playout.DSTPolicy))
	}
	if c.Playout.NumBreaks < 1 {
		errs = append(errs, fmt.Errorf("playout.num_breaks: %d must be at least 1", c.Playout.NumBreaks))
	}
	if c.Playout.PreloadBudget <= 0 {
		errs = append(errs, errors.New("playout.preload_budget: must be positive"))
	}
	if c.Playout.FeedAheadHorizon <= 0 {
		errs = append(errs, errors.New("playout.feed_ahead_horizon: must be positive"))
	}

	if !validAuthorityModes[c.Horizon.AuthorityMode] {
		errs = append(errs, fmt.Errorf("horizon.authority_mode: unknown mode %q", c.Horizon.AuthorityMode))
	}
	if c.Horizon.Depth <= 0 {
		errs = append(errs, errors.New("horizon.depth: must be positive"))
	}

	if c.Sink.RingBufferMaxBytes < MinRingBufferBytes {
		errs = append(errs, fmt.Errorf("sink.ring_buffer_max_bytes: %d below minimum %d",
			c.Sink.RingBufferMaxBytes, MinRingBufferBytes))
	}

	return errors.Join(errs...)
}

// DayAnchor is a local time-of-day in minutes since midnight.
type DayAnchor int

// ParseDayAnchor parses an "HH:MM" time-of-day string.
func ParseDayAnchor(s string) (DayAnchor, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time-of-day %q (want HH:MM)", s)
	}
	return DayAnchor(t.Hour()*60 + t.Minute()), nil
}

// Hour returns the anchor hour component.
func (a DayAnchor) Hour() int { return int(a) / 60 }

// Minute returns the anchor minute component.
func (a DayAnchor) Minute() int { return int(a) % 60 }
