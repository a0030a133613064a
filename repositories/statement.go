//go:generate go run go.uber.org/mock/mockgen -source=statement.go -destination=../mocks/mock_statement_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"standup-lab/domain"
)

type IStatementRepository interface {
	Store(statement domain.Statement) error
	BySpeaker(speaker string) ([]domain.Statement, error)
	All() ([]domain.Statement, error)
}

type StatementRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewStatementRepository(db *badger.DB, log *slog.Logger, limit *int) StatementRepository {
	return StatementRepository{db: db, log: log, limit: limit}
}

type diskStatement struct {
	ID      string `json:"id"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Lang    string `json:"lang"`
	At      int64  `json:"at"`
}

// Store persists a statement in BadgerDB.
// The key is formatted as "stmt:{speaker}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two statements
//     arrive at the same nanosecond.
func (r StatementRepository) Store(statement domain.Statement) error {
	key := fmt.Sprintf("stmt:%s:%019d:%s",
		statement.Speaker,
		statement.At.UnixNano(),
		statement.ID,
	)
	bytes, err := json.Marshal(fromStatement(statement))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// BySpeaker retrieves one speaker's statements using a prefix scan.
// Thanks to the padded timestamp in the key, statements are naturally
// sorted by time. It stops once the configured limit is reached.
func (r StatementRepository) BySpeaker(speaker string) ([]domain.Statement, error) {
	return r.scan(fmt.Sprintf("stmt:%s:", domain.Normalize(speaker)))
}

// All retrieves every statement of the run, grouped by speaker then time.
func (r StatementRepository) All() ([]domain.Statement, error) {
	return r.scan("stmt:")
}

func (r StatementRepository) scan(prefixStr string) ([]domain.Statement, error) {
	var byteStatements [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if r.limit != nil && len(byteStatements) == *r.limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d statements reached", *r.limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				copied := make([]byte, len(value))
				copy(copied, value)
				byteStatements = append(byteStatements, copied)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var statements []domain.Statement
	for _, b := range byteStatements {
		var disk diskStatement
		if err = json.Unmarshal(b, &disk); err != nil {
			return nil, err
		}
		statement, err := toStatement(disk)
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}
	return statements, nil
}

func fromStatement(statement domain.Statement) diskStatement {
	return diskStatement{
		ID:      statement.ID.String(),
		Speaker: statement.Speaker,
		Text:    statement.Text,
		Lang:    statement.Lang,
		At:      statement.At.UnixNano(),
	}
}

func toStatement(disk diskStatement) (domain.Statement, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Statement{}, err
	}
	return domain.Statement{
		ID:      parsedID,
		Speaker: disk.Speaker,
		Text:    disk.Text,
		Lang:    disk.Lang,
		At:      time.Unix(0, disk.At),
	}, nil
}
