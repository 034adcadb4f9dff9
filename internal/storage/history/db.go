package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// FileName is the sqlite database name inside the data directory.
const FileName = "history.db"

// IntervalRecord is one finished work or rest interval.
type IntervalRecord struct {
	ID             uint      `gorm:"primaryKey"`
	State          string    `gorm:"not null;index"`
	Cause          string    `gorm:"not null"`
	PlannedSeconds int64     `gorm:"not null;default:0"`
	ActiveSeconds  int64     `gorm:"not null;default:0"`
	StartedAt      time.Time `gorm:"not null;index"`
	EndedAt        time.Time `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// StateSummary aggregates records of one state.
type StateSummary struct {
	State        string
	Intervals    int
	TotalSeconds int64
}

// DB wraps the gorm connection.
type DB struct {
	*gorm.DB
}

// Open connects to the sqlite database at path and migrates the schema.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	db := &DB{conn}
	if err := db.AutoMigrate(&IntervalRecord{}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history schema: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
