package gldf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FromXML parses a product.xml payload. A leading UTF-8 byte order mark
// is tolerated; some authoring tools emit one.
func FromXML(data []byte) (*Product, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	var p Product
	if err := xml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("gldf: parse product xml: %w", err)
	}
	return &p, nil
}

// ReadXML parses a product document from r.
func ReadXML(r io.Reader) (*Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gldf: read product xml: %w", err)
	}
	return FromXML(data)
}

// ToXML serializes the product to an indented product.xml payload with
// the standard XML declaration.
func (p *Product) ToXML() ([]byte, error) {
	body, err := xml.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("gldf: encode product xml: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
