// Inspector for a standup run: dumps stored statements from BadgerDB
// and optionally runs a full-text search over the Bluge index.
// Safe to run while the moderator holds the database lock.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"standup-lab/ai"
	"standup-lab/domain"
	"standup-lab/report"
	"standup-lab/repositories"
)

type diskStatement struct {
	ID      string `json:"id"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Lang    string `json:"lang"`
	At      int64  `json:"at"`
}

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	indexPath := flag.String("index", database.DefaultPath+"-index", "Path to bluge index")
	speaker := flag.String("speaker", "", "Only show this speaker")
	search := flag.String("search", "", "Full-text query over statement text")
	similarity := flag.Bool("report", false, "Agenda similarity report over stored statements")
	limit := flag.Int("limit", 20, "Maximum search hits")
	flag.Parse()

	if *search != "" {
		if err := runSearch(*indexPath, *search, *limit); err != nil {
			log.Fatal("Search failed: ", err)
		}
		return
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	if *similarity {
		if err := runReport(db); err != nil {
			log.Fatal("Report failed: ", err)
		}
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Speaker", "Time", "Lang", "Text"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	prefix := "stmt:"
	if *speaker != "" {
		prefix = fmt.Sprintf("stmt:%s:", strings.ToLower(strings.TrimSpace(*speaker)))
	}

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var disk diskStatement
				if err := json.Unmarshal(v, &disk); err != nil {
					// Au lieu de stopper tout le script, on log l'erreur et on continue
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}

				table.Append([]string{
					string(item.Key()),
					disk.Speaker,
					time.Unix(0, disk.At).Format("15:04:05"),
					disk.Lang,
					disk.Text,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// runReport matches every stored statement against the default agenda,
// the same scoring the moderator uses for its end-of-meeting summary.
func runReport(db *badger.DB) error {
	logger := logs.GetLoggerFromString("warn")
	repo := repositories.NewStatementRepository(db, logger, nil)

	statements, err := repo.All()
	if err != nil {
		return fmt.Errorf("failed to load statements: %w", err)
	}

	classifier := ai.NewClassifier()
	scorer := ai.NewAgendaScorer()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Speaker", "Category", "Score", "Agenda", "Text"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, statement := range statements {
		category, err := classifier.Category(statement.Text)
		if err != nil {
			category = domain.CategoryUnknown
		}
		item, score, err := scorer.BestMatch(statement.Text, report.DefaultAgenda)
		if err != nil {
			return fmt.Errorf("failed to score statement: %w", err)
		}
		table.Append([]string{
			statement.Speaker,
			string(category),
			fmt.Sprintf("%.2f", score),
			item,
			statement.Text,
		})
	}

	table.Render()
	return nil
}

func runSearch(indexPath, terms string, limit int) error {
	reader, err := bluge.OpenReader(bluge.DefaultConfig(indexPath))
	if err != nil {
		return fmt.Errorf("failed to open bluge reader: %w", err)
	}
	defer reader.Close()

	query := bluge.NewMatchQuery(terms).SetField("text")
	dmi, err := reader.Search(context.Background(), bluge.NewTopNSearch(limit, query))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Score", "Speaker", "Text"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	match, err := dmi.Next()
	for err == nil && match != nil {
		var speaker, text string
		if visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "speaker":
				speaker = string(value)
			case "text":
				text = string(value)
			}
			return true
		}); visitErr != nil {
			return visitErr
		}
		table.Append([]string{fmt.Sprintf("%.3f", match.Score), speaker, text})
		match, err = dmi.Next()
	}
	if err != nil {
		return err
	}

	table.Render()
	return nil
}

func openDB(path string) (*badger.DB, error) {
	// Note: BypassLockGuard allows opening if another process (the moderator) holds the lock
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)
	return badger.Open(opts)
}
