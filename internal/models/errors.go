package models

import "errors"

// Common validation errors for models.
var (
	// ErrNameRequired indicates a required name field is empty.
	ErrNameRequired = errors.New("name is required")

	// ErrChannelSlugRequired indicates a required channel slug is empty.
	ErrChannelSlugRequired = errors.New("channel_slug is required")

	// ErrAssetURIRequired indicates a required asset URI is empty.
	ErrAssetURIRequired = errors.New("asset_uri is required")

	// ErrBlockIDRequired indicates a required block ID is empty.
	ErrBlockIDRequired = errors.New("block_id is required")

	// ErrBroadcastDayRequired indicates a required broadcast day is empty.
	ErrBroadcastDayRequired = errors.New("broadcast_day is required")

	// ErrProgramRefRequired indicates a program reference without an ID.
	ErrProgramRefRequired = errors.New("program ref is required")

	// ErrInvalidTimeRange indicates end time is not after start time.
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
