package appcache

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

// BoltStore is a bbolt-backed section/key/value store. Each section maps to a
// bucket; records carry the transaction timestamp in an 8-byte little-endian
// prefix.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if needed) the store file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("appcache: open %s: %w", path, err)
	}

	return &BoltStore{db: db}, nil
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Write stores value under (section, key).
func (s *BoltStore) Write(section, key, value string, txTime int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(section))
		if err != nil {
			return err
		}

		return b.Put([]byte(key), encodeRecord(value, txTime))
	})
}

// Delete removes the record under (section, key). Deleting a missing record
// is not an error.
func (s *BoltStore) Delete(section, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(section))
		if b == nil {
			return nil
		}

		return b.Delete([]byte(key))
	})
}

// Read returns the record under (section, key).
func (s *BoltStore) Read(section, key string) (Record, bool) {
	var (
		rec Record
		ok  bool
	)

	_ = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(section))
		if b == nil {
			return nil
		}

		raw := b.Get([]byte(key))
		if raw == nil {
			return nil
		}

		rec, ok = decodeRecord(raw)

		return nil
	})

	return rec, ok
}

func encodeRecord(value string, txTime int64) []byte {
	buf := make([]byte, 8+len(value))
	binary.LittleEndian.PutUint64(buf, uint64(txTime))
	copy(buf[8:], value)

	return buf
}

func decodeRecord(raw []byte) (Record, bool) {
	if len(raw) < 8 {
		return Record{}, false
	}

	return Record{
		Value:     string(raw[8:]),
		Timestamp: int64(binary.LittleEndian.Uint64(raw)),
	}, true
}
