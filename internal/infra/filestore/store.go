// Package filestore persists every collection in one JSON document on disk.
// Writes go through a single lock, so a transaction sees and replaces the
// whole document.
package filestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/newsletter"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/infra/converter"
	"atlas-hotel/internal/usecase/shared"
)

// DefaultLimit caps every collection; the oldest rows fall off first.
const DefaultLimit = 5000

type document struct {
	Bookings   []converter.BookingRecord `json:"bookings"`
	Contacts   []contact.Message         `json:"contacts"`
	Newsletter []newsletter.Subscription `json:"newsletter"`
	Analytics  []analytics.Event         `json:"analytics"`
}

func emptyDocument() *document {
	return &document{
		Bookings:   []converter.BookingRecord{},
		Contacts:   []contact.Message{},
		Newsletter: []newsletter.Subscription{},
		Analytics:  []analytics.Event{},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

type Store struct {
	path  string
	limit int
	mu    sync.RWMutex
}

type Option func(*Store)

func WithLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// Open creates the document, and its directory, when missing.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, limit: DefaultLimit}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, infra.WrapRepoErr("create store directory", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(emptyDocument()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, infra.WrapRepoErr("stat store file", err)
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// read tolerates a missing or corrupt file and returns an empty document then.
func (s *Store) read() (*document, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return emptyDocument(), nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("read store file", err)
	}

	doc := emptyDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		slog.Warn("store file is not valid JSON, starting from an empty document", "path", s.path, "error", err.Error())
		return emptyDocument(), nil
	}
	if doc.Bookings == nil {
		doc.Bookings = []converter.BookingRecord{}
	}
	if doc.Contacts == nil {
		doc.Contacts = []contact.Message{}
	}
	if doc.Newsletter == nil {
		doc.Newsletter = []newsletter.Subscription{}
	}
	if doc.Analytics == nil {
		doc.Analytics = []analytics.Event{}
	}
	return doc, nil
}

// write replaces the file through a rename so readers never see half a document.
func (s *Store) write(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return infra.WrapRepoErr("encode store document", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return infra.WrapRepoErr("create temp store file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return infra.WrapRepoErr("write temp store file", err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapRepoErr("close temp store file", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return infra.WrapRepoErr("replace store file", err)
	}
	return nil
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	tx := &fileTx{doc: doc, limit: s.limit}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if !tx.dirty {
		return nil
	}
	return s.write(doc)
}

func (s *Store) Reads() shared.ReadStore {
	return &readStore{store: s}
}

// snapshot reads the document under the read lock.
func (s *Store) snapshot(ctx context.Context) (*document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// prepend keeps the newest row first and drops rows beyond limit.
func prepend[T any](rows []T, row T, limit int) []T {
	out := make([]T, 0, min(len(rows)+1, limit))
	out = append(out, row)
	for _, r := range rows {
		if len(out) >= limit {
			break
		}
		out = append(out, r)
	}
	return out
}
