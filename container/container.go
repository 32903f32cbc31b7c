// Package container reads and writes the GLDF ZIP container: product.xml
// plus the embedded binary assets referenced by its file definitions.
package container

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/luxkit/gldf/gldf"
)

var (
	// ErrNotArchive is returned when the input is not a readable ZIP.
	ErrNotArchive = errors.New("container: not a zip archive")

	// ErrMissingProductEntry is returned when the archive has no
	// product.xml entry.
	ErrMissingProductEntry = errors.New("container: product.xml not found")

	// ErrSchemaParse is returned when product.xml does not parse.
	ErrSchemaParse = errors.New("container: invalid product.xml")

	// ErrEntryRead is returned when an archive entry cannot be read.
	ErrEntryRead = errors.New("container: entry read failed")
)

// ProductEntry is the fixed name of the document entry in the archive.
const ProductEntry = "product.xml"

// Assets maps file definition IDs to embedded binary payloads. Archive
// entries that match no file definition are kept under their entry path
// so that decoding is lossless.
type Assets map[string][]byte

// FolderFor returns the archive folder for a content type family.
// Unknown families land in other/.
func FolderFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "ldc"):
		return "ldc"
	case strings.HasPrefix(contentType, "geo"):
		return "geo"
	case strings.HasPrefix(contentType, "image"):
		return "image"
	case strings.HasPrefix(contentType, "document"):
		return "doc"
	case strings.HasPrefix(contentType, "spectrum"):
		return "spectrum"
	case strings.HasPrefix(contentType, "sensor"):
		return "sensor"
	case strings.HasPrefix(contentType, "symbol"):
		return "symbol"
	default:
		return "other"
	}
}

// PathFor returns the archive path of a file definition's payload.
func PathFor(contentType, fileName string) string {
	return FolderFor(contentType) + "/" + fileName
}

// Codec decodes and encodes GLDF containers.
type Codec struct {
	log   *slog.Logger
	level int
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger used for decode and encode debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Codec) {
		if log != nil {
			c.log = log
		}
	}
}

// WithCompressionLevel sets the deflate level used when encoding.
func WithCompressionLevel(level int) Option {
	return func(c *Codec) { c.level = level }
}

// New returns a Codec with default compression and a discarding logger
// unless options say otherwise.
func New(opts ...Option) *Codec {
	c := &Codec{
		log:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		level: flate.DefaultCompression,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decode parses a GLDF container from a byte buffer. It returns the
// product document and the embedded assets keyed by file ID.
func (c *Codec) Decode(data []byte) (*gldf.Product, Assets, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}
	return c.decodeReader(zr)
}

// DecodeFile parses a GLDF container from disk and records the origin
// path on the returned product.
func (c *Codec) DecodeFile(path string) (*gldf.Product, Assets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("container: read %s: %w", path, err)
	}
	p, assets, err := c.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	p.Path = path
	return p, assets, nil
}

func (c *Codec) decodeReader(zr *zip.Reader) (*gldf.Product, Assets, error) {
	var productXML []byte
	for _, f := range zr.File {
		if f.Name == ProductEntry {
			rc, err := f.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s: %v", ErrEntryRead, ProductEntry, err)
			}
			productXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s: %v", ErrEntryRead, ProductEntry, err)
			}
			break
		}
	}
	if productXML == nil {
		return nil, nil, ErrMissingProductEntry
	}

	p, err := gldf.FromXML(productXML)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSchemaParse, err)
	}

	// Entries are keyed by the file ID their definition maps to. Anything
	// the document does not describe stays keyed by its archive path.
	pathToID := make(map[string]string)
	for _, def := range p.GeneralDefinitions.Files.File {
		if !def.IsURL() {
			pathToID[PathFor(def.ContentType, def.FileName)] = def.ID
		}
	}

	assets := make(Assets)
	for _, f := range zr.File {
		if f.Name == ProductEntry || strings.HasSuffix(f.Name, "/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrEntryRead, f.Name, err)
		}
		buf, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrEntryRead, f.Name, err)
		}
		if id, ok := pathToID[f.Name]; ok {
			assets[id] = buf
		} else {
			assets[f.Name] = buf
		}
	}

	c.log.Debug("container decoded",
		"files", len(p.GeneralDefinitions.Files.File),
		"assets", len(assets))
	return p, assets, nil
}

// Encode writes the product and its assets as a GLDF container. Each
// asset is placed at the canonical path for its file definition; assets
// with no matching definition are not written.
func (c *Codec) Encode(w io.Writer, p *gldf.Product, assets Assets) error {
	xmlData, err := p.ToXML()
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	level := c.level
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	entry, err := zw.Create(ProductEntry)
	if err != nil {
		return fmt.Errorf("container: create %s: %w", ProductEntry, err)
	}
	if _, err := entry.Write(xmlData); err != nil {
		return fmt.Errorf("container: write %s: %w", ProductEntry, err)
	}

	// Only assets backing a local file definition are written; keys with
	// no definition are dropped from the output.
	written := 0
	for _, def := range p.GeneralDefinitions.Files.File {
		if def.IsURL() {
			continue
		}
		content, ok := assets[def.ID]
		if !ok {
			c.log.Debug("no payload for file definition", "id", def.ID)
			continue
		}
		path := PathFor(def.ContentType, def.FileName)
		entry, err := zw.Create(path)
		if err != nil {
			return fmt.Errorf("container: create %s: %w", path, err)
		}
		if _, err := entry.Write(content); err != nil {
			return fmt.Errorf("container: write %s: %w", path, err)
		}
		written++
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("container: finalize archive: %w", err)
	}
	c.log.Debug("container encoded", "assets", written, "dropped", len(assets)-written)
	return nil
}

// EncodeToBuf renders the container into a fresh byte buffer.
func (c *Codec) EncodeToBuf(p *gldf.Product, assets Assets) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, p, assets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeFile writes the container to disk.
func (c *Codec) EncodeFile(path string, p *gldf.Product, assets Assets) error {
	data, err := c.EncodeToBuf(p, assets)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("container: write %s: %w", path, err)
	}
	return nil
}

// Decode parses a container with a default codec.
func Decode(data []byte) (*gldf.Product, Assets, error) {
	return New().Decode(data)
}

// DecodeFile parses a container from disk with a default codec.
func DecodeFile(path string) (*gldf.Product, Assets, error) {
	return New().DecodeFile(path)
}
