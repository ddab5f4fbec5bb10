package storage

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestDescribe_Stored_Records(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	s := seed(t, db)

	// When every stored record is described
	kinds := map[string]int{}
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			row, err := Describe(string(item.Key()), val)
			if err != nil {
				return err
			}
			kinds[row.Kind]++
		}
		return nil
	})

	// Then
	req.NoError(err)
	req.Equal(map[string]int{"USER": 2, "LIST": 1, "MEMBER": 1}, kinds)

	row, err := Describe(string(listKey(s.list.ID.String())), []byte(`{"id":"x","name":"Groceries","ownerId":"0123456789"}`))
	req.NoError(err)
	req.Equal("Groceries (owner 01234567)", row.Detail)
}

func TestDescribe_Corrupt_Record(t *testing.T) {
	req := require.New(t)

	// When
	row, err := Describe("todo:1", []byte("not json"))

	// Then
	req.Error(err)
	req.Equal("RAW", row.Kind)
}
