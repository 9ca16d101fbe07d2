package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/yourusername/media-studio-go/internal/domain"
	"go.uber.org/zap"
)

// Pipeline downloads a batch of remote media references into organized local
// folders. Collaborators are injected so tests can substitute fakes.
type Pipeline struct {
	store        domain.ObjectStore
	fetcher      domain.Fetcher
	signedURLTTL time.Duration
	logger       *zap.Logger
}

// NewPipeline creates a new download pipeline
func NewPipeline(store domain.ObjectStore, fetcher domain.Fetcher, signedURLTTL time.Duration, logger *zap.Logger) *Pipeline {
	if signedURLTTL <= 0 {
		signedURLTTL = time.Hour
	}
	return &Pipeline{
		store:        store,
		fetcher:      fetcher,
		signedURLTTL: signedURLTTL,
		logger:       logger,
	}
}

// PrepareLayout ensures one subdirectory per category exists under baseDir.
// Creation is idempotent; an existing directory is not an error. Failure here
// is fatal to the whole batch.
func PrepareLayout(baseDir string) (domain.DestinationLayout, error) {
	layout := make(domain.DestinationLayout, len(domain.Categories))
	for _, c := range domain.Categories {
		dir := filepath.Join(baseDir, string(c))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: creating %s: %v", domain.ErrFilesystem, dir, err)
		}
		layout[c] = dir
	}
	return layout, nil
}

// Resolve turns a media reference into a directly fetchable URL. Plain URLs
// pass through unchanged; storage URIs are exchanged for a signed URL.
func (p *Pipeline) Resolve(ctx context.Context, ref domain.MediaReference) (string, error) {
	if !ref.IsStorageURI() {
		return string(ref), nil
	}

	bucket, object, err := ref.SplitStorageURI()
	if err != nil {
		return "", err
	}

	return p.store.SignedURL(ctx, bucket, object, p.signedURLTTL)
}

// FetchOptions controls where a batch lands on disk
type FetchOptions struct {
	BaseDir        string
	Layout         domain.DestinationLayout
	OrganizeByType bool
}

// fetchPlan is one reference with its resolved URL and target path
type fetchPlan struct {
	index int
	url   string
	dest  string
}

// FetchAll downloads all references concurrently and returns one outcome per
// reference, in input order. Resolution happens per item before the fetch
// phase; a reference that fails to resolve is recorded as a failed outcome
// and excluded from the fetch set. Individual fetch failures never cancel
// sibling fetches.
func (p *Pipeline) FetchAll(ctx context.Context, refs []domain.MediaReference, opts FetchOptions) []domain.Outcome {
	outcomes := make([]domain.Outcome, len(refs))
	var plans []fetchPlan

	for i, ref := range refs {
		outcomes[i].Reference = ref

		filename := ref.Filename(i + 1)
		var dir string
		if opts.OrganizeByType {
			dir = opts.Layout.Dir(domain.Classify(filepath.Ext(filename)))
		} else {
			dir = opts.BaseDir
		}

		url, err := p.Resolve(ctx, ref)
		if err != nil {
			p.logger.Warn("Failed to resolve reference",
				zap.String("reference", string(ref)),
				zap.Error(err))
			outcomes[i].Err = err
			continue
		}

		plans = append(plans, fetchPlan{
			index: i,
			url:   url,
			dest:  filepath.Join(dir, filename),
		})
	}

	// One goroutine per reference; each writes to a distinct file and a
	// distinct outcome slot, so the join is the only synchronization needed.
	var wg sync.WaitGroup
	for _, plan := range plans {
		wg.Add(1)
		go func(plan fetchPlan) {
			defer wg.Done()
			if err := p.fetcher.Fetch(ctx, plan.url, plan.dest); err != nil {
				p.logger.Warn("Fetch failed",
					zap.String("reference", string(outcomes[plan.index].Reference)),
					zap.Error(err))
				outcomes[plan.index].Err = err
				return
			}
			outcomes[plan.index].LocalPath = plan.dest
			p.logger.Info("Downloaded media",
				zap.String("reference", string(outcomes[plan.index].Reference)),
				zap.String("path", plan.dest))
		}(plan)
	}
	wg.Wait()

	return outcomes
}

// Cleanup deletes the remote copy of every successfully downloaded storage
// reference and returns the number of deletions. Delete failures are logged
// and never affect the reported outcomes.
func (p *Pipeline) Cleanup(ctx context.Context, outcomes []domain.Outcome) int {
	deleted := 0
	for _, o := range outcomes {
		if !o.Succeeded() || !o.Reference.IsStorageURI() {
			continue
		}

		bucket, object, err := o.Reference.SplitStorageURI()
		if err != nil {
			p.logger.Warn("Skipping cleanup of unparseable reference",
				zap.String("reference", string(o.Reference)),
				zap.Error(err))
			continue
		}

		if err := p.store.Delete(ctx, bucket, object); err != nil {
			p.logger.Warn("Failed to delete remote object",
				zap.String("reference", string(o.Reference)),
				zap.Error(err))
			continue
		}
		deleted++
	}
	return deleted
}

// DownloadBatch runs the whole pipeline for a list of references: prepare the
// destination layout, fetch everything concurrently, then optionally delete
// the remote originals. Only layout preparation can fail the call; everything
// downstream is best-effort per item.
func (p *Pipeline) DownloadBatch(ctx context.Context, refs []domain.MediaReference, cfg domain.DownloadConfig) ([]domain.Outcome, error) {
	if err := os.MkdirAll(cfg.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", domain.ErrFilesystem, cfg.BaseDir, err)
	}

	opts := FetchOptions{
		BaseDir:        cfg.BaseDir,
		OrganizeByType: cfg.OrganizeByType,
	}
	if cfg.OrganizeByType {
		layout, err := PrepareLayout(cfg.BaseDir)
		if err != nil {
			return nil, err
		}
		opts.Layout = layout
	}

	outcomes := p.FetchAll(ctx, refs, opts)

	if cfg.CleanupRemote {
		if deleted := p.Cleanup(ctx, outcomes); deleted > 0 {
			p.logger.Info("Cleaned up remote objects", zap.Int("count", deleted))
		}
	}

	return outcomes, nil
}
