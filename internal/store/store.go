// Package store implements the document store: a flat key→JSON-value table
// used as the only persistence mechanism. Values are opaque JSON payloads;
// callers deserialize immediately after every read instead of trusting the
// shape implicitly.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
)

// ErrNotFound is returned by Get for an absent key. Absence is a normal
// outcome, distinguishable from a transport failure.
var ErrNotFound = errors.New("store: key not found")

// Store is the contract every other component depends on.
//
// Error asymmetry: ScanByPrefix degrades to an empty result on transport
// failure so list screens render "no records" instead of crashing, while
// Get/Set/Delete propagate failures because callers treat a lost write as a
// data-loss risk.
type Store interface {
	// Get reads the value under key into target. Returns ErrNotFound for an
	// absent key.
	Get(key string, target interface{}) error

	// Set upserts value under key. Full-value overwrite, last writer wins;
	// there is no merge and no concurrency check.
	Set(key string, value interface{}) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// ScanByPrefix returns the raw values of every record whose key starts
	// with prefix, in no guaranteed order. Transport failures yield an empty
	// slice, never an error.
	ScanByPrefix(prefix string) []json.RawMessage
}

// GormStore backs the Store contract with the documents table.
// Every call is a fresh round trip; nothing is cached or memoized.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over an open GORM connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string, target interface{}) error {
	var doc models.Document
	if err := s.db.Where("key = ?", key).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("store: get %q: %w", key, err)
	}
	if err := json.Unmarshal(doc.Value, target); err != nil {
		return fmt.Errorf("store: decode %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	doc := models.Document{Key: key, Value: raw}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) Delete(key string) error {
	// RowsAffected == 0 (absent key) is fine
	if err := s.db.Where("key = ?", key).Delete(&models.Document{}).Error; err != nil {
		return fmt.Errorf("store: delete %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) ScanByPrefix(prefix string) []json.RawMessage {
	var docs []models.Document
	if err := s.db.Where("key LIKE ?", prefix+"%").Find(&docs).Error; err != nil {
		log.Printf("⚠️ Scan %q failed, returning empty set: %v", prefix, err)
		return nil
	}
	values := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		values = append(values, json.RawMessage(doc.Value))
	}
	return values
}

// ScanAll scans a prefix and decodes every record into T. Records that fail
// to decode are skipped with a log line — the store enforces no schema, so a
// malformed payload must not take down the whole listing.
func ScanAll[T any](s Store, prefix string) []T {
	raws := s.ScanByPrefix(prefix)
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			log.Printf("⚠️ Skipping malformed record under %q: %v", prefix, err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// GetCollection reads a singleton-collection key into target, treating an
// absent key as an empty collection.
func GetCollection(s Store, key string, target interface{}) error {
	err := s.Get(key, target)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
