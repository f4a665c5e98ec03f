// Package ddbstore is a local DynamoDB table catalog backed by BadgerDB.
// It answers the control plane calls the cloner needs, so schemas can be
// cloned without an AWS account. Items are not stored.
package ddbstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/acksell/ddbclone/dynamodb/schema"
)

// Key format: [tablePrefix][tableName]
// The separator byte (0x00) cannot appear in DynamoDB table names.
const tablePrefix = "table\x00"

// Store is a DynamoDB-compatible table catalog backed by BadgerDB.
type Store struct {
	db  *badger.DB
	now func() time.Time
}

// StoreOptions configures the BadgerDB store.
type StoreOptions struct {
	// Path to the database directory. If empty, uses in-memory mode.
	Path string
	// InMemory forces in-memory mode even if Path is set.
	InMemory bool
	// Logger for BadgerDB. If nil, logging is disabled.
	// Use ZapLogger to route badger logs through zap.
	Logger badger.Logger
}

// tableRecord is the value stored for each table.
type tableRecord struct {
	Table     schema.Table `json:"table"`
	CreatedAt time.Time    `json:"createdAt"`
}

// New opens a BadgerDB-backed table catalog. Seed tables are created if
// they do not exist yet; existing tables with the same name are kept.
func New(opts StoreOptions, seed ...schema.Table) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Path)

	if opts.Path == "" || opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}

	if opts.Logger != nil {
		badgerOpts = badgerOpts.WithLogger(opts.Logger)
	} else {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, t := range seed {
		if err := s.seed(t); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed table %q: %w", t.Name, err)
		}
	}
	return s, nil
}

// Close closes the BadgerDB database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) seed(t schema.Table) error {
	if err := validateTable(t); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(tableKey(t.Name))
		if err == nil {
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		return putRecord(txn, tableRecord{Table: t, CreatedAt: s.now()})
	})
}

func tableKey(name string) []byte {
	return []byte(tablePrefix + name)
}

func tableNameFromKey(key []byte) string {
	return string(key[len(tablePrefix):])
}

func putRecord(txn *badger.Txn, rec tableRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	return txn.Set(tableKey(rec.Table.Name), data)
}

func readRecord(item *badger.Item) (tableRecord, error) {
	var rec tableRecord
	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	if err != nil {
		return tableRecord{}, fmt.Errorf("decode table: %w", err)
	}
	return rec, nil
}
