// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileKeyValueStore keeps a flat JSON object on disk. The whole object is
// loaded at construction and rewritten on every Set through a temporary file
// and rename, so a crash never leaves a truncated file behind.
type fileKeyValueStore struct {
	path string

	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewFileKeyValueStore opens the key-value file at path. A missing file is an
// empty store.
func NewFileKeyValueStore(path string) (KeyValueStore, error) {
	s := &fileKeyValueStore{
		path:   path,
		values: make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValueStore) Get(key string, dst any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("%w: decode %q: %w", ErrReadingKeyValueStore, key, err)
	}
	return true, nil
}

func (s *fileKeyValueStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", ErrWritingKeyValueStore, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.values[key]
	s.values[key] = raw
	if err = s.persist(); err != nil {
		if existed {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *fileKeyValueStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrReadingKeyValueStore, err)
	}

	if len(data) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("%w: %w", ErrReadingKeyValueStore, err)
	}
	if s.values == nil {
		s.values = make(map[string]json.RawMessage)
	}
	return nil
}

func (s *fileKeyValueStore) persist() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir: %w", ErrWritingKeyValueStore, err)
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingKeyValueStore, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingKeyValueStore, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingKeyValueStore, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingKeyValueStore, err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingKeyValueStore, err)
	}
	return nil
}
