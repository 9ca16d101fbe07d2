package app

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/media-studio-go/internal/domain"
	"go.uber.org/zap"
)

// GenerationService submits video generation requests and polls the
// asynchronous operation until it finishes. The repository is optional; when
// present every run is recorded in the history database.
type GenerationService struct {
	generator domain.VideoGenerator
	repo      domain.RunRepository
	config    *domain.GenerationConfig
	logger    *zap.Logger
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	generator domain.VideoGenerator,
	repo domain.RunRepository,
	config *domain.GenerationConfig,
	logger *zap.Logger,
) *GenerationService {
	return &GenerationService{
		generator: generator,
		repo:      repo,
		config:    config,
		logger:    logger,
	}
}

// GenerateRequest describes one generation invocation at the service level
type GenerateRequest struct {
	Prompt    string
	ModelID   string
	OutputURI string
	Options   domain.GenerationOptions
}

// GenerateResult carries the result URIs and the recorded run
type GenerateResult struct {
	Run         *domain.Run
	MediaURIs   []domain.MediaReference
	Corrections []domain.Correction
}

// Generate validates the request against the model registry, submits it and
// waits for completion. Options outside the model's capabilities are clamped
// and reported as corrections rather than rejected.
func (s *GenerationService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	model, ok := domain.ModelByID(req.ModelID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownModel, req.ModelID)
	}

	opts, corrections, err := domain.ValidateOptions(req.ModelID, req.Options)
	if err != nil {
		return nil, err
	}
	for _, c := range corrections {
		s.logger.Warn("Option not supported by model, corrected",
			zap.String("model", req.ModelID),
			zap.String("option", c.Option),
			zap.String("requested", c.Requested),
			zap.String("applied", c.Applied))
	}

	run := domain.NewRun(req.Prompt, req.ModelID, opts.NumberOfVideos)
	s.recordRun(run, false)

	op, err := s.generator.Generate(ctx, domain.GenerationRequest{
		Prompt:       req.Prompt,
		APIModelName: model.APIModelName,
		OutputURI:    req.OutputURI,
		Options:      opts,
	})
	if err != nil {
		run.MarkFailed(err)
		s.recordRun(run, true)
		return nil, err
	}

	run.MarkProcessing(op.Name)
	s.recordRun(run, true)

	op, err = s.waitForCompletion(ctx, op)
	if err != nil {
		run.MarkFailed(err)
		s.recordRun(run, true)
		return nil, err
	}

	run.MarkCompleted(len(op.MediaURIs), 0)
	s.recordRun(run, true)

	s.logger.Info("Generation completed",
		zap.String("run", run.ID),
		zap.Int("videos", len(op.MediaURIs)))

	return &GenerateResult{
		Run:         run,
		MediaURIs:   op.MediaURIs,
		Corrections: corrections,
	}, nil
}

// waitForCompletion polls the operation until it is done, the poll timeout
// elapses, or the context is cancelled
func (s *GenerationService) waitForCompletion(ctx context.Context, op *domain.Operation) (*domain.Operation, error) {
	interval := s.config.PollInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	deadline := time.Now().Add(s.config.PollTimeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !op.Done {
		if s.config.PollTimeout > 0 && time.Now().After(deadline) {
			return nil, fmt.Errorf("generation timed out after %s (operation %s)", s.config.PollTimeout, op.Name)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		next, err := s.generator.Poll(ctx, op)
		if err != nil {
			return nil, err
		}
		op = next

		s.logger.Debug("Polled generation operation",
			zap.String("operation", op.Name),
			zap.Bool("done", op.Done))
	}

	if op.Err != nil {
		return nil, op.Err
	}
	return op, nil
}

// RecordDownloads updates a run with its downloaded file count
func (s *GenerationService) RecordDownloads(run *domain.Run, downloaded int) {
	if run == nil {
		return
	}
	run.DownloadedCount = downloaded
	s.recordRun(run, true)
}

func (s *GenerationService) recordRun(run *domain.Run, update bool) {
	if s.repo == nil {
		return
	}
	var err error
	if update {
		err = s.repo.Update(run)
	} else {
		err = s.repo.Create(run)
	}
	if err != nil {
		s.logger.Error("Failed to record run", zap.String("run", run.ID), zap.Error(err))
	}
}
