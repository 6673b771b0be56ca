// Package cache stores geometry arrays by name in a badger database.
package cache

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/cache/binary"
	"github.com/omniscale/vgeos/log"
	"github.com/omniscale/vgeos/vector"
)

var ErrNotFound = errors.New("array not found in cache")

var logger = log.New("cache")

const keyPrefix = "array/"

type Cache struct {
	db *badger.DB
}

// Open opens or creates a cache in dir.
func Open(dir string) (*Cache, error) {
	return open(badger.DefaultOptions(dir).WithLogger(nil))
}

func OpenInMemory() (*Cache, error) {
	return open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

func open(opts badger.Options) (*Cache, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening cache %q", opts.Dir)
	}
	return &Cache{db: db}, nil
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}

// Put stores wkbs under name, replacing any previous entry.
func (c *Cache) Put(name string, wkbs [][]byte) error {
	data, err := binary.MarshalWKBList(wkbs)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", name)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), data)
	})
	if err != nil {
		return errors.Wrapf(err, "storing %q", name)
	}
	logger.Printf("[debug] stored %d geometries as %q", len(wkbs), name)
	return nil
}

func (c *Cache) Get(name string) ([][]byte, error) {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", name)
	}
	return binary.UnmarshalWKBList(data)
}

// Delete removes name. Deleting a missing entry is not an error.
func (c *Cache) Delete(name string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(name))
	})
}

// Names returns the names of all stored arrays in key order.
func (c *Cache) Names() ([]string, error) {
	var names []string
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, string(it.Item().Key()[len(keyPrefix):]))
		}
		return nil
	})
	return names, err
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// PutArray stores all elements of a as WKB.
func (c *Cache) PutArray(e *vector.Engine, name string, a *vector.Array) error {
	wkbs, err := e.ToWKB(a)
	if err != nil {
		return err
	}
	return c.Put(name, wkbs)
}

// GetArray loads name into a new owning array.
func (c *Cache) GetArray(e *vector.Engine, name string) (*vector.Array, error) {
	wkbs, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return e.FromWKB(wkbs)
}
