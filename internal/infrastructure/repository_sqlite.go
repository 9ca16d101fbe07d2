package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourusername/media-studio-go/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteRunRepository implements domain.RunRepository using SQLite
type SQLiteRunRepository struct {
	db *gorm.DB
}

// NewSQLiteRunRepository creates a new SQLite repository
func NewSQLiteRunRepository(dbPath string) (*SQLiteRunRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&domain.Run{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteRunRepository{db: db}, nil
}

// Create creates a new run record
func (r *SQLiteRunRepository) Create(run *domain.Run) error {
	return r.db.Create(run).Error
}

// Update updates an existing run record
func (r *SQLiteRunRepository) Update(run *domain.Run) error {
	return r.db.Save(run).Error
}

// FindByID finds a run by ID
func (r *SQLiteRunRepository) FindByID(id string) (*domain.Run, error) {
	var run domain.Run
	if err := r.db.First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// FindRecent returns the most recent runs, newest first
func (r *SQLiteRunRepository) FindRecent(limit int) ([]*domain.Run, error) {
	var runs []*domain.Run
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&runs).Error
	return runs, err
}

// Count returns the total number of runs
func (r *SQLiteRunRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Run{}).Count(&count).Error
	return count, err
}

// GetStats returns run statistics grouped by status
func (r *SQLiteRunRepository) GetStats() (*domain.RunStats, error) {
	stats := &domain.RunStats{}

	if err := r.db.Model(&domain.Run{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var counts []struct {
		Status domain.RunStatus
		Count  int64
	}
	if err := r.db.Model(&domain.Run{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	for _, c := range counts {
		switch c.Status {
		case domain.RunQueued:
			stats.Queued = c.Count
		case domain.RunProcessing:
			stats.Processing = c.Count
		case domain.RunCompleted:
			stats.Completed = c.Count
		case domain.RunFailed:
			stats.Failed = c.Count
		}
	}

	return stats, nil
}

// Close closes the underlying database connection
func (r *SQLiteRunRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
