// Package editable provides an in-memory editing session over a GLDF
// document: the product, its embedded assets, bounded undo/redo history
// and modification tracking.
package editable

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/luxkit/gldf/container"
	"github.com/luxkit/gldf/gldf"
)

// Session is an editable GLDF document. The Product field is exposed for
// direct edits; callers that change it are expected to Checkpoint first
// and MarkModified afterwards, mirroring how an editor drives it.
type Session struct {
	// Product is the document being edited.
	Product *gldf.Product

	assets       container.Assets
	history      [][]byte
	historyIndex int
	modified     bool
	originPath   string

	limit int
	codec *container.Codec
	log   *slog.Logger
}

// New returns an empty session holding a minimal fresh product.
func New(cfg Config) *Session {
	return FromProduct(gldf.NewProduct("", ""), cfg)
}

// FromProduct wraps an existing product. No assets are attached.
func FromProduct(p *gldf.Product, cfg Config) *Session {
	cfg.defaults()
	return &Session{
		Product: p,
		assets:  make(container.Assets),
		limit:   cfg.HistoryLimit,
		codec: container.New(
			container.WithLogger(cfg.Logger),
			container.WithCompressionLevel(cfg.CompressionLevel),
		),
		log: cfg.Logger,
	}
}

// Open loads a session from a GLDF container on disk, including all
// embedded assets.
func Open(path string, cfg Config) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("editable: read %s: %w", path, err)
	}
	s, err := FromBuf(data, cfg)
	if err != nil {
		return nil, err
	}
	s.originPath = path
	s.Product.Path = path
	return s, nil
}

// FromBuf loads a session from a GLDF container in memory.
func FromBuf(data []byte, cfg Config) (*Session, error) {
	s := New(cfg)
	p, assets, err := s.codec.Decode(data)
	if err != nil {
		return nil, err
	}
	s.Product = p
	s.assets = assets
	s.log.Debug("session loaded", "assets", len(assets))
	return s, nil
}

// FromJSON loads a session from a product JSON document. Only the
// product data is loaded; no assets are attached.
func FromJSON(data []byte, cfg Config) (*Session, error) {
	p, err := gldf.FromJSON(data)
	if err != nil {
		return nil, err
	}
	return FromProduct(p, cfg), nil
}

// Modified reports whether the session has unsaved changes.
func (s *Session) Modified() bool { return s.modified }

// MarkModified flags the session as having unsaved changes.
func (s *Session) MarkModified() { s.modified = true }

// MarkSaved clears the unsaved-changes flag.
func (s *Session) MarkSaved() { s.modified = false }

// OriginPath returns the path the session was loaded from or last saved
// to, or "" for an in-memory session.
func (s *Session) OriginPath() string { return s.originPath }

// SaveToBuf renders the session as a GLDF container in memory. It does
// not change the modification state.
func (s *Session) SaveToBuf() ([]byte, error) {
	return s.codec.EncodeToBuf(s.Product, s.assets)
}

// SaveToFile writes the session to disk, adopts the path as the new
// origin and clears the modification flag.
func (s *Session) SaveToFile(path string) error {
	data, err := s.SaveToBuf()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("editable: write %s: %w", path, err)
	}
	s.originPath = path
	s.modified = false
	s.log.Debug("session saved", "path", path)
	return nil
}

// Save writes the session back to its origin path.
func (s *Session) Save() error {
	if s.originPath == "" {
		return fmt.Errorf("editable: session has no origin path")
	}
	return s.SaveToFile(s.originPath)
}

// ToJSON exports the product as compact JSON.
func (s *Session) ToJSON() ([]byte, error) { return s.Product.ToJSON() }

// ToPrettyJSON exports the product as indented JSON.
func (s *Session) ToPrettyJSON() ([]byte, error) { return s.Product.ToPrettyJSON() }

// ToXML exports the product as product.xml content.
func (s *Session) ToXML() ([]byte, error) { return s.Product.ToXML() }
