// Package store persists dashboard state as JSON blobs keyed by name,
// plus a SQLite journal for meal logging.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/peterbourgon/diskv/v3"
)

// Store is a keyed JSON blob store on disk. A nil medium makes the
// store a no-op that always hands back defaults, so callers never have
// to branch on storage availability.
type Store struct {
	d *diskv.Diskv
}

// Open creates a store rooted at dir.
func Open(dir string) *Store {
	d := diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 1024 * 1024,
		Transform:    func(string) []string { return []string{} }, // flat layout, key == filename
	})
	return &Store{d: d}
}

// Disabled returns a store with no backing medium. Loads yield
// defaults and saves are dropped with a warning.
func Disabled() *Store {
	return &Store{}
}

// OK reports whether the store has a backing medium.
func (s *Store) OK() bool {
	return s != nil && s.d != nil
}

// envelope wraps every persisted value with its schema version so the
// layout can evolve without renaming keys.
type envelope struct {
	Schema int             `json:"schema"`
	Data   json.RawMessage `json:"data"`
}

// Migration rewrites a value's raw JSON from one schema version to the
// next. Migrations run in order until the key's current version is
// reached.
type Migration func(raw json.RawMessage) (json.RawMessage, error)

// Key names a stored value and its current schema version.
type Key struct {
	Name       string
	Schema     int
	Migrations []Migration // Migrations[i] converts version i+1 to i+2
}

// Load reads the value stored under key, returning def when the key is
// missing, unreadable, or fails to migrate. Corruption is logged and
// swallowed so a bad blob degrades to defaults instead of crashing.
func Load[T any](s *Store, key Key, def T) T {
	if !s.OK() {
		return def
	}
	blob, err := s.d.Read(key.Name)
	if err != nil {
		// Missing keys are the normal first-run case, not an error.
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("store: reading %q: %v", key.Name, err)
		}
		return def
	}

	env, err := decodeEnvelope(blob)
	if err != nil {
		log.Printf("store: %q is corrupt, using defaults: %v", key.Name, err)
		return def
	}

	raw, err := migrate(key, env)
	if err != nil {
		log.Printf("store: migrating %q: %v", key.Name, err)
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("store: decoding %q, using defaults: %v", key.Name, err)
		return def
	}
	return v
}

// Save writes the value under key at the key's current schema version.
func Save[T any](s *Store, key Key, v T) error {
	if !s.OK() {
		log.Printf("store: no medium, dropping write to %q", key.Name)
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key.Name, err)
	}
	blob, err := json.Marshal(envelope{Schema: key.Schema, Data: raw})
	if err != nil {
		return fmt.Errorf("wrapping %q: %w", key.Name, err)
	}
	if err := s.d.Write(key.Name, blob); err != nil {
		return fmt.Errorf("writing %q: %w", key.Name, err)
	}
	return nil
}

// Delete removes the value stored under key. Missing keys are not an
// error.
func (s *Store) Delete(key Key) error {
	if !s.OK() {
		return nil
	}
	if !s.d.Has(key.Name) {
		return nil
	}
	return s.d.Erase(key.Name)
}

// decodeEnvelope parses a stored blob. Blobs written before envelopes
// existed are bare values; they decode as schema 1.
func decodeEnvelope(blob []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err == nil && env.Data != nil {
		return env, nil
	}
	if !json.Valid(blob) {
		return envelope{}, fmt.Errorf("not valid JSON")
	}
	return envelope{Schema: 1, Data: json.RawMessage(blob)}, nil
}

func migrate(key Key, env envelope) (json.RawMessage, error) {
	if env.Schema > key.Schema {
		return nil, fmt.Errorf("schema %d is newer than supported %d", env.Schema, key.Schema)
	}
	raw := env.Data
	for v := env.Schema; v < key.Schema; v++ {
		idx := v - 1
		if idx < 0 || idx >= len(key.Migrations) {
			return nil, fmt.Errorf("no migration from schema %d", v)
		}
		var err error
		raw, err = key.Migrations[idx](raw)
		if err != nil {
			return nil, fmt.Errorf("schema %d to %d: %w", v, v+1, err)
		}
	}
	return raw, nil
}
