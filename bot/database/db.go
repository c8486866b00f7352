package database

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Opens (or creates) the badger DB the bot persists its debate tracking in.
func Open(name string) (*badger.DB, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	dbDir := filepath.Join(cwd, "db", name)

	opts := badger.DefaultOptions(dbDir)
	opts.ZSTDCompressionLevel = 2
	opts.NumLevelZeroTables = 1
	opts.NumVersionsToKeep = 1
	opts.CompactL0OnClose = true

	return badger.Open(opts)
}

func GetInsensitiveTxn[T any](txn *badger.Txn, key string) (out *T, err error) {
	out = new(T)

	item, err := txn.Get([]byte(strings.ToLower(key)))
	if err != nil {
		return
	}

	val, _ := item.ValueCopy(nil)
	err = json.Unmarshal(val, out)

	return
}

func GetInsensitive[T any](db *badger.DB, key string) (out *T, err error) {
	err = db.View(func(txn *badger.Txn) error {
		out, err = GetInsensitiveTxn[T](txn, key)
		return err
	})

	return
}

// Puts data into the DB at the specified key which is automatically lowercased.
//
// This func is a very simple wrapper around db.Update() and txn.Set().
// If any get call or data manipulation is required prior to txn.Set(), prefer a single transaction via db.Update().
func PutInsensitive(db *badger.DB, key string, data []byte) error {
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(strings.ToLower(key)), data)
	})
}
