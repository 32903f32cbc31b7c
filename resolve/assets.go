package resolve

import (
	"github.com/luxkit/gldf/container"
	"github.com/luxkit/gldf/gldf"
)

// GeometryAsset is a geometry mapping joined with the actual payloads
// from the container, ready for a renderer.
type GeometryAsset struct {
	ModelFileName      string
	ModelContent       []byte
	PhotometryFileName string
	PhotometryContent  []byte
	VariantID          string
}

// HasBoth reports whether model and photometry payloads are present.
func (a *GeometryAsset) HasBoth() bool {
	return a.ModelContent != nil && a.PhotometryContent != nil
}

// PhotometryText returns the photometry payload as text. Distribution
// files (eulumdat, ies) are line-oriented text formats.
func (a *GeometryAsset) PhotometryText() string {
	return string(a.PhotometryContent)
}

// GeometryAssets joins the geometry mappings with the embedded payloads.
// Mappings whose model payload is missing from the container are
// dropped; a missing photometry payload is kept as nil.
func GeometryAssets(p *gldf.Product, assets container.Assets) []GeometryAsset {
	var out []GeometryAsset
	for _, m := range GeometryMappings(p) {
		modelContent := lookupAsset(assets, m.ModelFileID, m.ModelFileName)
		if modelContent == nil {
			continue
		}
		name := m.ModelFileName
		if name == "" {
			name = m.ModelFileID
		}
		out = append(out, GeometryAsset{
			ModelFileName:      name,
			ModelContent:       modelContent,
			PhotometryFileName: m.PhotometryFileName,
			PhotometryContent:  lookupAsset(assets, m.PhotometryFileID, m.PhotometryFileName),
			VariantID:          m.VariantID,
		})
	}
	return out
}

// FirstGeometryAsset returns the first joined geometry asset, if any.
func FirstGeometryAsset(p *gldf.Product, assets container.Assets) (GeometryAsset, bool) {
	all := GeometryAssets(p, assets)
	if len(all) == 0 {
		return GeometryAsset{}, false
	}
	return all[0], true
}

// lookupAsset tries the file ID first and falls back to the archive name
// for entries that never matched a file definition.
func lookupAsset(assets container.Assets, fileID, fileName string) []byte {
	if fileID != "" {
		if data, ok := assets[fileID]; ok {
			return data
		}
	}
	if fileName != "" {
		if data, ok := assets[fileName]; ok {
			return data
		}
	}
	return nil
}
