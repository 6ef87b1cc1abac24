package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"

	nightscout "github.com/mrcode/nightscout-go"
)

const entriesBucket = "entries"

// Fixed-width fractional seconds keep keys sorting lexicographically in time
// order, which is what bolt's range cursor needs. RFC3339Nano would trim
// trailing zeros and break that.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

type boltStore struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) a BoltDB-backed store at path.
func OpenBolt(path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &boltStore{db: db}, nil
}

// NewBoltStore wraps an already-open bolt database.
func NewBoltStore(db *bolt.DB) Store {
	return &boltStore{db: db}
}

func (b *boltStore) Put(readings []nightscout.SGV) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(entriesBucket))
		if err != nil {
			return err
		}
		for _, reading := range readings {
			data, err := json.Marshal(reading)
			if err != nil {
				return err
			}
			if err := bucket.Put(readingKey(reading.Date), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *boltStore) Recent(n int) ([]nightscout.SGV, error) {
	var readings []nightscout.SGV

	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(entriesBucket))
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, v := c.Last(); k != nil && len(readings) < n; k, v = c.Prev() {
			var reading nightscout.SGV
			if err := json.Unmarshal(v, &reading); err != nil {
				return err
			}
			readings = append(readings, reading)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (b *boltStore) Range(from, to time.Time) ([]nightscout.SGV, error) {
	var readings []nightscout.SGV

	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(entriesBucket))
		if bucket == nil {
			return nil
		}

		min := readingKey(from)
		max := readingKey(to)

		c := bucket.Cursor()
		for k, v := c.Seek(min); k != nil && string(k) < string(max); k, v = c.Next() {
			var reading nightscout.SGV
			if err := json.Unmarshal(v, &reading); err != nil {
				return err
			}
			readings = append(readings, reading)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (b *boltStore) Close() error {
	return b.db.Close()
}

func readingKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
