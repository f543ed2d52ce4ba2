// Package badger persists player instances in an embedded badger database.
package badger

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v3"
	lru "github.com/hashicorp/golang-lru"

	tplog "okinoko-test_player/log"
	"okinoko-test_player/player"
)

// BadgerStore is a player.Store backed by badger with an ARC cache of raw
// values in front of it.
type BadgerStore struct {
	log   tplog.Logger
	db    *badger.DB
	cache *lru.ARCCache
}

var _ player.Store = (*BadgerStore)(nil)

func NewBadgerStore(log tplog.Logger, path string, cacheSize int) (*BadgerStore, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", path, err)
	}

	opts := badger.DefaultOptions(path)
	opts.SyncWrites = true
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	cache, err := lru.NewARC(cacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Debugf("badger store opened: path=%s cache=%d", path, cacheSize)
	return &BadgerStore{
		log:   log,
		db:    db,
		cache: cache,
	}, nil
}

func (b *BadgerStore) Get(key string) ([]byte, bool, error) {
	if v, ok := b.cache.Get(key); ok {
		return append([]byte(nil), v.([]byte)...), true, nil
	}
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		val, err = txnGet(txn, key)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	b.cache.Add(key, append([]byte(nil), val...))
	return val, true, nil
}

func (b *BadgerStore) Put(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return err
	}
	b.cache.Add(key, append([]byte(nil), value...))
	return nil
}

// Update runs fn against a store view bound to one read-write transaction.
// Every write inside fn commits together or not at all.
func (b *BadgerStore) Update(fn func(st player.Store) error) error {
	ts := &txnStore{writes: make(map[string][]byte)}
	err := b.db.Update(func(txn *badger.Txn) error {
		ts.txn = txn
		return fn(ts)
	})
	if err != nil {
		return err
	}
	for k, v := range ts.writes {
		b.cache.Add(k, v)
	}
	return nil
}

func (b *BadgerStore) Close() error {
	b.cache.Purge()
	return b.db.Close()
}

func txnGet(txn *badger.Txn, key string) ([]byte, error) {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

// txnStore is a player.Store scoped to one badger transaction.
type txnStore struct {
	txn    *badger.Txn
	writes map[string][]byte
}

func (t *txnStore) Get(key string) ([]byte, bool, error) {
	val, err := txnGet(t.txn, key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (t *txnStore) Put(key string, value []byte) error {
	v := append([]byte(nil), value...)
	if err := t.txn.Set([]byte(key), v); err != nil {
		return err
	}
	t.writes[key] = v
	return nil
}
