package handlers

// HealthResponse is the health check response body.
type HealthResponse struct {
	Status        string         `json:"status" example:"healthy"`
	Timestamp     string         `json:"timestamp"`
	Version       string         `json:"version"`
	Uptime        string         `json:"uptime"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	CPUInfo       CPUInfo        `json:"cpu"`
	Memory        MemoryInfo     `json:"memory"`
	Database      DatabaseHealth `json:"database"`
}

// CPUInfo holds CPU load information.
type CPUInfo struct {
	Cores              int     `json:"cores"`
	Load1Min           float64 `json:"load_1min"`
	Load5Min           float64 `json:"load_5min"`
	Load15Min          float64 `json:"load_15min"`
	LoadPercentage1Min float64 `json:"load_percentage_1min"`
}

// MemoryInfo holds system and process memory usage.
type MemoryInfo struct {
	TotalMemoryMB     float64 `json:"total_memory_mb"`
	UsedMemoryMB      float64 `json:"used_memory_mb"`
	AvailableMemoryMB float64 `json:"available_memory_mb"`
	ProcessRSSMB      float64 `json:"process_rss_mb"`
}

// DatabaseHealth holds database connectivity status.
type DatabaseHealth struct {
	Status             string  `json:"status" example:"ok"`
	ResponseTimeMS     float64 `json:"response_time_ms"`
	ConnectionPoolSize int     `json:"connection_pool_size"`
	ActiveConnections  int     `json:"active_connections"`
	IdleConnections    int     `json:"idle_connections"`
}

// EPGEvent is one programme listing entry.
type EPGEvent struct {
	StartUTCMs int64  `json:"start_utc_ms"`
	EndUTCMs   int64  `json:"end_utc_ms"`
	Title      string `json:"title"`
	Synopsis   string `json:"synopsis,omitempty"`
	AssetURI   string `json:"asset_uri"`
	BlockID    string `json:"block_id"`
}

// EPGResponse is the per-channel programme guide for one broadcast day.
type EPGResponse struct {
	ChannelSlug  string     `json:"channel_slug"`
	BroadcastDay string     `json:"broadcast_day"`
	Locked       bool       `json:"locked"`
	ScheduleHash string     `json:"schedule_hash"`
	Events       []EPGEvent `json:"events"`
}

// WindowEntry is one execution-window entry summary.
type WindowEntry struct {
	BlockID    string `json:"block_id"`
	StartUTCMs int64  `json:"start_utc_ms"`
	EndUTCMs   int64  `json:"end_utc_ms"`
	Segments   int    `json:"segments"`
}

// WindowStatusResponse describes a channel's execution window.
type WindowStatusResponse struct {
	ChannelSlug  string        `json:"channel_slug"`
	Entries      int           `json:"entries"`
	WindowStart  int64         `json:"window_start_utc_ms"`
	WindowEnd    int64         `json:"window_end_utc_ms"`
	DepthAheadMs int64         `json:"depth_ahead_ms"`
	Blocks       []WindowEntry `json:"blocks"`
}

// ChannelStatusResponse describes a channel's runtime state.
type ChannelStatusResponse struct {
	ChannelSlug         string `json:"channel_slug"`
	BoundaryState       string `json:"boundary_state"`
	Viewers             int    `json:"viewers"`
	RunwayMs            int64  `json:"runway_ms"`
	BufferBytes         int64  `json:"buffer_bytes"`
	BufferCapacityBytes int64  `json:"buffer_capacity_bytes"`
	BufferDroppedBytes  int64  `json:"buffer_dropped_bytes"`
}

// ChannelListResponse lists runtime status for all registered channels.
type ChannelListResponse struct {
	Channels []ChannelStatusResponse `json:"channels"`
}
