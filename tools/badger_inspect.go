package main

import (
	"flag"
	"fmt"
	"list-sync/infrastructure/storage"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// Empty prefix scans every namespace written by the repositories
	prefix := flag.String("prefix", "", "Prefix to scan (user:, list:, member:, todo:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "ID", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	prefixes := storage.Prefixes
	if *prefix != "" {
		prefixes = []string{*prefix}
	}

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for _, p := range prefixes {
			prefixBytes := []byte(p)
			for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
				item := it.Item()
				err := item.Value(func(v []byte) error {
					row, err := storage.Describe(string(item.Key()), v)
					if err != nil {
						// Keep scanning, a single corrupt record must not hide the rest
						color.Red.Printf("Error decoding key %s: %v\n", item.Key(), err)
						return nil
					}
					table.Append([]string{row.Key, row.Kind, row.ID, row.Detail})
					rows++
					return nil
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	color.Green.Printf("%d record(s) under %s\n", rows, strings.Join(prefixes, ", "))
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// A crashed writer leaves the value log needing a truncate, which read-only mode refuses
		if strings.Contains(err.Error(), "Log truncate required") {
			color.Yellow.Println("Value log needs truncation, reopening in write mode once")

			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			_ = db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
