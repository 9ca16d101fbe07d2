package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus represents the current status of a generation run
type RunStatus string

const (
	RunQueued     RunStatus = "queued"
	RunProcessing RunStatus = "processing"
	RunCompleted  RunStatus = "completed"
	RunFailed     RunStatus = "failed"
)

// Run represents one generation invocation recorded in the history database
type Run struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Prompt          string    `json:"prompt" gorm:"not null"`
	ModelID         string    `json:"model_id" gorm:"not null;index"`
	Status          RunStatus `json:"status" gorm:"not null;index"`
	OperationName   string    `json:"operation_name,omitempty"`
	RequestedVideos int       `json:"requested_videos" gorm:"default:1"`
	GeneratedCount  int       `json:"generated_count" gorm:"default:0"`
	DownloadedCount int       `json:"downloaded_count" gorm:"default:0"`
	ErrorMessage    string    `json:"error_message,omitempty"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// NewRun creates a new generation run record
func NewRun(prompt, modelID string, requestedVideos int) *Run {
	return &Run{
		ID:              uuid.New().String(),
		Prompt:          prompt,
		ModelID:         modelID,
		Status:          RunQueued,
		RequestedVideos: requestedVideos,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

// MarkProcessing marks the run as submitted to the generation service
func (r *Run) MarkProcessing(operationName string) {
	r.Status = RunProcessing
	r.OperationName = operationName
	r.UpdatedAt = time.Now()
}

// MarkCompleted marks the run as finished with its result counts
func (r *Run) MarkCompleted(generated, downloaded int) {
	r.Status = RunCompleted
	r.GeneratedCount = generated
	r.DownloadedCount = downloaded
	now := time.Now()
	r.CompletedAt = &now
	r.UpdatedAt = now
}

// MarkFailed marks the run as failed
func (r *Run) MarkFailed(err error) {
	r.Status = RunFailed
	r.ErrorMessage = err.Error()
	r.UpdatedAt = time.Now()
}

// IsTerminal checks if the run reached a final state
func (r *Run) IsTerminal() bool {
	return r.Status == RunCompleted || r.Status == RunFailed
}

// RunStats aggregates run counts by status
type RunStats struct {
	Total      int64 `json:"total"`
	Queued     int64 `json:"queued"`
	Processing int64 `json:"processing"`
	Completed  int64 `json:"completed"`
	Failed     int64 `json:"failed"`
}
