package repositories

import (
	"testing"
	"time"

	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"
)

func TestStatementIndex_SearchAfterFlush(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewStatementIndex(blugeWriter, log)

	base := time.Now().UTC()
	req.NoError(index.Index(statement("alice", "we need to migrate the database to postgresql", base)))
	req.NoError(index.Index(statement("alice", "database queries are slow", base.Add(time.Second))))
	req.NoError(index.Index(statement("bob", "frontend refactoring is going fine", base.Add(2*time.Second))))
	req.NoError(index.Flush())
	time.Sleep(50 * time.Millisecond)

	hits, err := index.Search(ctx, "database", 10)
	req.NoError(err)
	req.Len(hits, 2)
	for _, hit := range hits {
		req.Equal("alice", hit.Speaker)
		req.Contains(hit.Text, "database")
		req.NotEmpty(hit.ID)
	}

	// Case-insensitive analysis
	hits, err = index.Search(ctx, "POSTGRESQL", 10)
	req.NoError(err)
	req.Len(hits, 1)
}

func TestStatementIndex_EmptyQuery(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewStatementIndex(blugeWriter, log)
	hits, err := index.Search(ctx, "   ", 10)
	req.NoError(err)
	req.Empty(hits)
}

func TestStatementIndex_Flush_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewStatementIndex(blugeWriter, log)
	req.NoError(index.Index(statement("alice", "single entry", time.Now().UTC())))
	req.NoError(index.Flush())
	req.NoError(index.Flush())

	hits, err := index.Search(ctx, "single", 10)
	req.NoError(err)
	req.Len(hits, 1)
}
