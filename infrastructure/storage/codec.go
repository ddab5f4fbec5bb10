package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	userPrefix   = "user:"
	listPrefix   = "list:"
	memberPrefix = "member:"
	todoPrefix   = "todo:"
)

func userKey(id string) []byte { return []byte(userPrefix + id) }

func listKey(id string) []byte { return []byte(listPrefix + id) }

// memberKey is formatted as "member:{list_id}:{user_id}" so that a prefix scan
// on "member:{list_id}:" yields the whole membership of a list.
func memberKey(listID, userID string) []byte {
	return []byte(memberPrefix + listID + ":" + userID)
}

func memberListPrefix(listID string) []byte {
	return []byte(memberPrefix + listID + ":")
}

func todoKey(id string) []byte { return []byte(todoPrefix + id) }

// getJSON reads key into v. badger.ErrKeyNotFound is returned untouched so callers
// can translate it into their own not-found error.
func getJSON(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, v); err != nil {
			return fmt.Errorf("unmarshal %s: %w", key, err)
		}
		return nil
	})
}

func setJSON(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set(key, data)
}
