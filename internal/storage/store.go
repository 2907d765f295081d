// ABOUTME: Store implements Repository by persisting the whole document in KV slots.
// ABOUTME: Every write is a locked read-modify-write of the document and the settings copy.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/harperreed/lifeos/internal/models"
)

// Slot keys.
const (
	DataKey     = "lifeos_data"
	SettingsKey = "lifeos_settings"
	VersionKey  = "lifeos_version"
)

// SchemaVersion is written under VersionKey on every save.
const SchemaVersion = "1"

var _ Repository = (*Store)(nil)

// Store is a Repository over a KV backend.
type Store struct {
	mu     sync.Mutex
	kv     KV
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes store diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore wraps kv. Without WithLogger, diagnostics are discarded.
func NewStore(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// NewMemoryStore returns a Store over a fresh in-memory backend.
func NewMemoryStore(opts ...Option) *Store {
	return NewStore(NewMemoryKV(), opts...)
}

// Load returns the current document. Missing or malformed data falls back to defaults.
func (s *Store) Load() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Replace overwrites the whole document, settings included.
func (s *Store) Replace(doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// HasData reports whether a document has been saved.
func (s *Store) HasData() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.kv.Get(DataKey)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes every slot, so the next Load returns defaults.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range []string{DataKey, SettingsKey, VersionKey} {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
	}
	s.logger.Debug("store cleared")
	return nil
}

// Settings returns the current settings.
func (s *Store) Settings() (models.Settings, error) {
	doc, err := s.Load()
	if err != nil {
		return models.Settings{}, err
	}
	return doc.Settings, nil
}

// SaveSettings validates and stores settings in both the document and the settings slot.
func (s *Store) SaveSettings(settings models.Settings) error {
	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.update(func(doc *models.Document) error {
		doc.Settings = settings
		return nil
	})
}

// Export returns the document as indented JSON.
func (s *Store) Export() ([]byte, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return EncodeJSON(doc)
}

// Import replaces the document with data. Input that is not a JSON object is
// rejected and the store is left untouched. Keys whose values have the wrong
// shape are imported as defaults and returned in skipped.
func (s *Store) Import(data []byte) (skipped []string, err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("import: expected a JSON object")
	}
	doc, skipped, err := models.DecodeDocument(trimmed)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	if len(skipped) > 0 {
		s.logger.Warn("import: malformed keys replaced with defaults", "keys", skipped)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return skipped, nil
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// update runs fn on the loaded document and saves the result.
func (s *Store) update(fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) load() (*models.Document, error) {
	doc := models.DefaultDocument()

	data, err := s.kv.Get(DataKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
	case err != nil:
		return nil, fmt.Errorf("load document: %w", err)
	default:
		decoded, skipped, err := models.DecodeDocument(data)
		if err != nil {
			s.logger.Warn("stored document is malformed, using defaults", "err", err)
		} else {
			doc = decoded
			if len(skipped) > 0 {
				s.logger.Warn("stored document has malformed keys, using defaults for them", "keys", skipped)
			}
		}
	}

	raw, err := s.kv.Get(SettingsKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
	case err != nil:
		return nil, fmt.Errorf("load settings: %w", err)
	default:
		settings, err := models.DecodeSettings(raw)
		if err != nil {
			s.logger.Warn("stored settings are malformed, using document settings", "err", err)
		} else {
			doc.Settings = settings
		}
	}
	return doc, nil
}

func (s *Store) save(doc *models.Document) error {
	doc.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	settings, err := json.Marshal(doc.Settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	err = s.kv.SetAll(map[string][]byte{
		DataKey:     data,
		SettingsKey: settings,
		VersionKey:  []byte(SchemaVersion),
	})
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	s.logger.Debug("document saved", "bytes", len(data))
	return nil
}
