package repositories

import (
	"context"
	"log/slog"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/index"

	"standup-lab/domain"
)

// StatementIndex maintains a full-text index of recorded statements.
// Writes are batched; call Flush before searching to make pending
// statements visible.
type StatementIndex struct {
	writer *bluge.Writer
	batch  *index.Batch
	log    *slog.Logger
}

// Hit is one search result with its stored fields materialized.
type Hit struct {
	ID      string
	Speaker string
	Text    string
	Score   float64
}

func NewStatementIndex(writer *bluge.Writer, log *slog.Logger) *StatementIndex {
	return &StatementIndex{
		writer: writer,
		batch:  bluge.NewBatch(),
		log:    log,
	}
}

func (i *StatementIndex) Index(statement domain.Statement) error {
	doc := bluge.NewDocument(statement.ID.String()).
		AddField(bluge.NewTextField("speaker", statement.Speaker).StoreValue()).
		AddField(bluge.NewTextField("text", statement.Text).StoreValue())
	i.batch.Update(doc.ID(), doc)
	return nil
}

// Flush commits the pending batch. Idempotent when the batch is empty.
func (i *StatementIndex) Flush() error {
	if err := i.writer.Batch(i.batch); err != nil {
		return err
	}
	i.batch.Reset()
	return nil
}

// Search runs a match query over statement text and returns up to limit
// hits, best score first. An all-space query yields no hits.
func (i *StatementIndex) Search(ctx context.Context, terms string, limit int) ([]Hit, error) {
	terms = strings.TrimSpace(terms)
	if terms == "" {
		return nil, nil
	}

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	query := bluge.NewMatchQuery(terms).SetField("text")
	search := bluge.NewTopNSearch(limit, query)

	dmi, err := reader.Search(ctx, search)
	if err != nil {
		return nil, err
	}

	var hits []Hit
	match, err := dmi.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID = string(value)
			case "speaker":
				hit.Speaker = string(value)
			case "text":
				hit.Text = string(value)
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = dmi.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}
