package infrastructure

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/media-studio-go/internal/domain"
)

func setupTestRepo(t *testing.T) *SQLiteRunRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := NewSQLiteRunRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRunRepository_CreateAndFind(t *testing.T) {
	repo := setupTestRepo(t)

	run := domain.NewRun("a sunset over mountains", "veo3-001", 2)
	require.NoError(t, repo.Create(run))

	found, err := repo.FindByID(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Prompt, found.Prompt)
	assert.Equal(t, domain.RunQueued, found.Status)
}

func TestSQLiteRunRepository_Update(t *testing.T) {
	repo := setupTestRepo(t)

	run := domain.NewRun("test", "veo3-001", 1)
	require.NoError(t, repo.Create(run))

	run.MarkProcessing("operations/abc")
	run.MarkCompleted(1, 1)
	require.NoError(t, repo.Update(run))

	found, err := repo.FindByID(run.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunCompleted, found.Status)
	assert.Equal(t, 1, found.GeneratedCount)
	assert.NotNil(t, found.CompletedAt)
}

func TestSQLiteRunRepository_FindRecent(t *testing.T) {
	repo := setupTestRepo(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(domain.NewRun("prompt", "veo3-001", 1)))
	}

	runs, err := repo.FindRecent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	all, err := repo.FindRecent(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSQLiteRunRepository_GetStats(t *testing.T) {
	repo := setupTestRepo(t)

	completed := domain.NewRun("a", "veo3-001", 1)
	completed.MarkCompleted(1, 1)
	require.NoError(t, repo.Create(completed))

	failed := domain.NewRun("b", "veo3-001", 1)
	failed.MarkFailed(errors.New("boom"))
	require.NoError(t, repo.Create(failed))

	require.NoError(t, repo.Create(domain.NewRun("c", "veo3-001", 1)))

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Failed)
	assert.Equal(t, int64(1), stats.Queued)
}

func TestSQLiteRunRepository_Count(t *testing.T) {
	repo := setupTestRepo(t)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(domain.NewRun("a", "veo3-001", 1)))

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
