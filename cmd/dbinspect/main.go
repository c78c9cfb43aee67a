// Command dbinspect dumps the persisted rating and comment records from a
// RateMyShots database for debugging.
package main

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"

	"github.com/ratemyshots/ratemyshots-server/internal/domain"
)

func main() {
	dbPath := os.Getenv("DATA_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dbPath = filepath.Join(home, "RateMyShots", "data")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	var ratings map[string]int
	if err := readRecord(db, "ratings", &ratings); err != nil {
		fmt.Printf("Ratings record: %v\n", err)
	} else {
		fmt.Printf("Ratings: %d\n", len(ratings))
		for id, v := range ratings {
			fmt.Printf("  %s = %d\n", id, v)
		}
	}
	fmt.Println()

	var comments []domain.Comment
	if err := readRecord(db, "comments", &comments); err != nil {
		fmt.Printf("Comments record: %v\n", err)
	} else {
		fmt.Printf("Comments: %d\n", len(comments))
		for _, c := range comments {
			fmt.Printf("  [%s] %s on %s by %s: %q\n",
				c.Timestamp.Format("2006-01-02 15:04"), c.ID, c.ImageID, c.Author, c.Text)
			if c.OutfitLink != "" {
				fmt.Printf("      link: %s\n", c.OutfitLink)
			}
		}
	}
}

func readRecord(db *badger.DB, key string, dest any) error {
	return db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("not present")
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}
