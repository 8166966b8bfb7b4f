// Package seqstore keeps named sequences of magic-incremented values in a
// BoltDB file.
package seqstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"

	"magicinc/internal/magic"

	"go.etcd.io/bbolt"
)

var (
	bucketSequences = []byte("sequences")
)

var (
	ErrNotFound    = errors.New("sequence not found")
	ErrInvalidName = errors.New("invalid sequence name")
)

var db *bbolt.DB

// Sequence is the stored state of one named sequence.
// An empty Value has not been advanced yet.
type Sequence struct {
	Value   string    `json:"value"`
	Updated time.Time `json:"updated"`
	Steps   int64     `json:"steps"`
}

func Open(config Config) {
	if db != nil {
		panic("seqstore: already opened")
	}
	if config.File == "" {
		panic("seqstore: file is required")
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		panic(fmt.Errorf("seqstore: create db dir: %w", err))
	}

	db, err = bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: timeout,
	})
	if err != nil {
		panic(fmt.Errorf("seqstore: open bbolt db: %w", err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSequences)
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", bucketSequences, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		db = nil
		panic(fmt.Errorf("seqstore: initialize buckets: %w", err))
	}
}

func Close() error {
	if db == nil {
		panic("seqstore: not opened")
	}

	err := db.Close()
	db = nil
	if err != nil {
		return fmt.Errorf("seqstore: close bbolt db: %w", err)
	}
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func Closer() io.Closer {
	return closerFunc(Close)
}

// ValidName reports whether name can be used as a sequence name:
// 1 to 64 letters, digits, '_', '-' or '.'.
func ValidName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}

	for _, c := range name {
		if c != '_' && c != '-' && c != '.' && magic.Classify(c) == magic.Other {
			return false
		}
	}
	return true
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("seqstore: must: %w", err))
	}
	return v
}

// update runs f in one read-write transaction over the sequences bucket.
// Either every change f makes is committed or none is.
func update(names []string, f func(b *bbolt.Bucket) error) error {
	if db == nil {
		panic("seqstore: not opened")
	}
	for _, name := range names {
		if !ValidName(name) {
			return fmt.Errorf("seqstore: %q: %w", name, ErrInvalidName)
		}
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSequences)
		if b == nil {
			return fmt.Errorf("seqstore: sequences bucket not found")
		}
		return f(b)
	})
}

func apply(b *bbolt.Bucket, name string, modify func(*Sequence, bool) (*Sequence, error)) error {
	var seq *Sequence
	exists := false

	data := b.Get([]byte(name))
	if data == nil {
		seq = &Sequence{}
	} else {
		err := json.Unmarshal(data, &seq)
		if err != nil {
			return fmt.Errorf("seqstore: unmarshal sequence %q: %w", name, err)
		}
		exists = true
	}

	var err error
	if seq, err = modify(seq, exists); err != nil {
		return fmt.Errorf("seqstore: modify sequence %q: %w", name, err)
	}

	if seq == nil {
		if !exists {
			return nil
		}
		return b.Delete([]byte(name))
	}
	return b.Put([]byte(name), must(json.Marshal(seq)))
}

func modify(name string, modify func(*Sequence, bool) (*Sequence, error)) error {
	return update([]string{name}, func(b *bbolt.Bucket) error {
		return apply(b, name, modify)
	})
}

// Define creates the sequence if it does not exist yet.
// The first Next on a sequence defined with start "" yields "1".
func Define(name, start string) (created bool, err error) {
	err = modify(name, func(seq *Sequence, exists bool) (*Sequence, error) {
		if exists {
			return seq, nil
		}

		created = true
		seq.Value = start
		seq.Updated = time.Now()
		return seq, nil
	})
	return created, err
}

// stepper applies f to an existing sequence and stores the result in value.
func stepper(f func(string) string, value *string) func(*Sequence, bool) (*Sequence, error) {
	return func(seq *Sequence, exists bool) (*Sequence, error) {
		if !exists {
			return nil, ErrNotFound
		}

		seq.Value = f(seq.Value)
		seq.Updated = time.Now()
		seq.Steps++

		*value = seq.Value
		return seq, nil
	}
}

// Next advances the sequence and returns the new value.
func Next(name string) (string, error) {
	var value string
	err := modify(name, stepper(magic.Increment, &value))
	return value, err
}

// NextAll advances every named sequence in one transaction and returns the
// new values in argument order. If any name is unknown or invalid, nothing
// is advanced. A name given twice is advanced twice.
func NextAll(names ...string) ([]string, error) {
	values := make([]string, len(names))
	err := update(names, func(b *bbolt.Bucket) error {
		for i, name := range names {
			if err := apply(b, name, stepper(magic.Increment, &values[i])); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Prev steps the sequence back and returns the new value.
// Floors ("a", "A", "0") stay where they are.
func Prev(name string) (string, error) {
	var value string
	err := modify(name, stepper(magic.Decrement, &value))
	return value, err
}

// Set overwrites the value of an existing sequence.
func Set(name, value string) error {
	return modify(name, func(seq *Sequence, exists bool) (*Sequence, error) {
		if !exists {
			return nil, ErrNotFound
		}

		seq.Value = value
		seq.Updated = time.Now()
		return seq, nil
	})
}

func Delete(name string) error {
	return modify(name, func(seq *Sequence, exists bool) (*Sequence, error) {
		if !exists {
			return nil, ErrNotFound
		}
		return nil, nil
	})
}

func Get(name string) (Sequence, error) {
	if db == nil {
		panic("seqstore: not opened")
	}

	var seq Sequence
	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSequences)
		if b == nil {
			return fmt.Errorf("seqstore: sequences bucket not found")
		}

		data := b.Get([]byte(name))
		if data == nil {
			return fmt.Errorf("seqstore: %q: %w", name, ErrNotFound)
		}

		err := json.Unmarshal(data, &seq)
		if err != nil {
			return fmt.Errorf("seqstore: unmarshal sequence %q: %w", name, err)
		}
		return nil
	})
	return seq, err
}

var errStop = fmt.Errorf("stop iteration")

func All() iter.Seq2[string, Sequence] {
	if db == nil {
		panic("seqstore: not opened")
	}

	return func(yield func(string, Sequence) bool) {
		err := db.View(func(tx *bbolt.Tx) error {
			b := tx.Bucket(bucketSequences)
			if b == nil {
				return fmt.Errorf("seqstore: sequences bucket not found")
			}

			return b.ForEach(func(k, v []byte) error {
				var seq Sequence
				err := json.Unmarshal(v, &seq)
				if err != nil {
					return fmt.Errorf("seqstore: unmarshal sequence %q: %w", k, err)
				}

				if !yield(string(k), seq) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("seqstore: get all sequences: %w", err))
		}
	}
}
