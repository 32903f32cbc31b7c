package gldf

import (
	"encoding/json"
	"fmt"
)

// FromJSON parses a product document from its JSON form.
func FromJSON(data []byte) (*Product, error) {
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("gldf: parse product json: %w", err)
	}
	return &p, nil
}

// ToJSON serializes the product to compact JSON.
func (p *Product) ToJSON() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("gldf: encode product json: %w", err)
	}
	return data, nil
}

// ToPrettyJSON serializes the product to indented JSON.
func (p *Product) ToPrettyJSON() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("gldf: encode product json: %w", err)
	}
	return data, nil
}
