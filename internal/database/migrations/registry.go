package migrations

import (
	"gorm.io/gorm"

	"github.com/fernwood/playoutd/internal/models"
)

// AllMigrations returns all registered migrations in order.
func AllMigrations() []Migration {
	return []Migration{
		migration001Schema(),
	}
}

// migration001Schema creates all database tables using GORM AutoMigrate.
func migration001Schema() Migration {
	return Migration{
		Version:     "001",
		Description: "Create all database tables",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				// Editorial intent
				&models.SchedulePlan{},
				&models.Zone{},
				&models.SequenceState{},

				// Asset library
				&models.Asset{},
				&models.AssetMarker{},

				// Compiled artifacts
				&models.CompiledProgramLog{},
				&models.TransmissionLogBlock{},

				// Traffic
				&models.TrafficChannelPolicy{},
				&models.TrafficPlayLog{},

				// Attestation
				&models.OverrideRecord{},
				&models.AsRunBlock{},
				&models.AsRunSegment{},
			)
		},
	}
}
