package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/media-studio-go/internal/domain"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// VeoGenerator implements domain.VideoGenerator against the Google GenAI
// video API. Operation handles are kept internally so Poll can refresh them
// by name without leaking SDK types into the domain.
type VeoGenerator struct {
	client *genai.Client
	logger *zap.Logger

	mu  sync.Mutex
	ops map[string]*genai.GenerateVideosOperation
}

// NewVeoGenerator creates a new generator. Client configuration (API key or
// Vertex project/location) comes from the GOOGLE_* environment.
func NewVeoGenerator(ctx context.Context, logger *zap.Logger) (*VeoGenerator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &VeoGenerator{
		client: client,
		logger: logger,
		ops:    make(map[string]*genai.GenerateVideosOperation),
	}, nil
}

// Generate submits a video generation request
func (g *VeoGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Operation, error) {
	config := &genai.GenerateVideosConfig{
		AspectRatio:     req.Options.AspectRatio,
		OutputGCSURI:    req.OutputURI,
		NumberOfVideos:  int32(req.Options.NumberOfVideos),
		DurationSeconds: genai.Ptr(int32(req.Options.DurationSeconds)),
		EnhancePrompt:   req.Options.EnhancePrompt,
	}

	op, err := g.client.Models.GenerateVideos(ctx, req.APIModelName, req.Prompt, nil, config)
	if err != nil {
		return nil, fmt.Errorf("generate videos: %w", err)
	}

	g.mu.Lock()
	g.ops[op.Name] = op
	g.mu.Unlock()

	g.logger.Info("Generation operation started",
		zap.String("operation", op.Name),
		zap.String("model", req.APIModelName))

	return g.toDomain(op), nil
}

// Poll refreshes the operation's status
func (g *VeoGenerator) Poll(ctx context.Context, op *domain.Operation) (*domain.Operation, error) {
	g.mu.Lock()
	raw, ok := g.ops[op.Name]
	g.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown operation: %s", op.Name)
	}

	raw, err := g.client.Operations.GetVideosOperation(ctx, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("poll operation %s: %w", op.Name, err)
	}

	g.mu.Lock()
	g.ops[op.Name] = raw
	if raw.Done {
		delete(g.ops, op.Name)
	}
	g.mu.Unlock()

	return g.toDomain(raw), nil
}

// toDomain maps the SDK operation to the domain handle
func (g *VeoGenerator) toDomain(raw *genai.GenerateVideosOperation) *domain.Operation {
	op := &domain.Operation{
		Name: raw.Name,
		Done: raw.Done,
	}

	if len(raw.Error) > 0 {
		op.Err = fmt.Errorf("generation failed: %v", raw.Error["message"])
		return op
	}

	if raw.Done && raw.Response != nil {
		for _, v := range raw.Response.GeneratedVideos {
			if v.Video != nil && v.Video.URI != "" {
				op.MediaURIs = append(op.MediaURIs, domain.MediaReference(v.Video.URI))
			}
		}
	}

	return op
}
