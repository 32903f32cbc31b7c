// Package validate checks a GLDF product document for schema violations,
// broken references and duplicate IDs. Issues carry stable codes so
// callers can react programmatically, and the walk order is fixed so
// results are deterministic.
package validate

import (
	"fmt"
	"strings"

	"github.com/luxkit/gldf/container"
	"github.com/luxkit/gldf/gldf"
)

// Level grades an issue.
type Level int

const (
	// Error marks a document that must not be published.
	Error Level = iota
	// Warning marks something that likely works but needs attention.
	Warning
	// Info marks a suggestion.
	Info
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Issue is one finding.
type Issue struct {
	// Path locates the problem, e.g. "productDefinitions.variants[0].id".
	Path string `json:"path"`
	// Level grades the finding.
	Level Level `json:"level"`
	// Code identifies the rule, e.g. "FILE_004".
	Code string `json:"code"`
	// Message describes the finding for humans.
	Message string `json:"message"`
}

// Result collects the findings of one validation run, in rule order.
type Result struct {
	Issues []Issue `json:"issues"`
}

func (r *Result) add(level Level, path, code, message string) {
	r.Issues = append(r.Issues, Issue{Path: path, Level: level, Code: code, Message: message})
}

// HasErrors reports whether any Error-level issue was found.
func (r *Result) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Level == Error {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any Warning-level issue was found.
func (r *Result) HasWarnings() bool {
	for _, i := range r.Issues {
		if i.Level == Warning {
			return true
		}
	}
	return false
}

// Valid reports whether the run produced no issues at all.
func (r *Result) Valid() bool { return len(r.Issues) == 0 }

// Errors returns the Error-level issues.
func (r *Result) Errors() []Issue { return r.byLevel(Error) }

// Warnings returns the Warning-level issues.
func (r *Result) Warnings() []Issue { return r.byLevel(Warning) }

func (r *Result) byLevel(level Level) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Level == level {
			out = append(out, i)
		}
	}
	return out
}

// Counts returns the number of errors, warnings and infos.
func (r *Result) Counts() (errors, warnings, infos int) {
	for _, i := range r.Issues {
		switch i.Level {
		case Error:
			errors++
		case Warning:
			warnings++
		case Info:
			infos++
		}
	}
	return
}

// Product runs every rule group against the document. The assets map is
// used to flag file definitions with no embedded payload.
func Product(p *gldf.Product, assets container.Assets) *Result {
	r := &Result{}

	fileIDs := make(map[string]bool)
	for _, f := range p.GeneralDefinitions.Files.File {
		fileIDs[f.ID] = true
	}

	checkHeader(p, r)
	checkFiles(p, assets, r)
	checkPhotometries(p, fileIDs, r)
	checkGeometries(p, fileIDs, r)
	checkLightSources(p, r)
	checkEmitters(p, r)
	checkVariants(p, r)
	checkUniqueness(p, r)
	return r
}

// Structure runs the same rules without asset knowledge, so missing
// payloads are not reported.
func Structure(p *gldf.Product) *Result {
	return Product(p, container.Assets{})
}

func checkHeader(p *gldf.Product, r *Result) {
	h := p.Header
	if h.Author == "" {
		r.add(Error, "header.author", "HEADER_001", "Author is required")
	}
	if h.Manufacturer == "" {
		r.add(Error, "header.manufacturer", "HEADER_002", "Manufacturer is required")
	}
	if h.FormatVersion.Major == 0 && h.FormatVersion.Minor == 0 {
		r.add(Warning, "header.formatVersion", "HEADER_003", "Format version 0.0 may not be valid")
	}
	if h.CreationTimeCode == "" {
		r.add(Info, "header.creationTimeCode", "HEADER_004", "Consider adding a creation time code")
	}
}

// contentTypeFamilies are the first path segments a content type is
// expected to start with.
var contentTypeFamilies = []string{"ldc", "geo", "image", "document", "spectrum", "sensor", "symbol", "other"}

func checkFiles(p *gldf.Product, assets container.Assets, r *Result) {
	for i, f := range p.GeneralDefinitions.Files.File {
		path := fmt.Sprintf("generalDefinitions.files[%d]", i)
		if f.ID == "" {
			r.add(Error, path+".id", "FILE_001", "File ID is required")
		}
		if f.ContentType == "" {
			r.add(Error, path+".contentType", "FILE_002", "Content type is required")
		}
		if f.FileName == "" {
			r.add(Error, path+".fileName", "FILE_003", "File name is required")
		}
		if !f.IsURL() && f.ID != "" {
			if _, ok := assets[f.ID]; !ok {
				r.add(Warning, path, "FILE_004",
					fmt.Sprintf("Embedded file %q not found for file definition %q", f.FileName, f.ID))
			}
		}
		if f.ContentType != "" && !knownContentTypeFamily(f.ContentType) {
			r.add(Warning, path+".contentType", "FILE_005",
				fmt.Sprintf("Unusual content type: %q", f.ContentType))
		}
	}
}

func knownContentTypeFamily(contentType string) bool {
	for _, family := range contentTypeFamilies {
		if strings.HasPrefix(contentType, family) {
			return true
		}
	}
	return false
}

func checkPhotometries(p *gldf.Product, fileIDs map[string]bool, r *Result) {
	if p.GeneralDefinitions.Photometries == nil {
		return
	}
	for i, ph := range p.GeneralDefinitions.Photometries.Photometry {
		path := fmt.Sprintf("generalDefinitions.photometries[%d]", i)
		if ph.ID == "" {
			r.add(Error, path+".id", "PHOT_001", "Photometry ID is required")
		}
		if ref := ph.PhotometryFileReference; ref != nil && !fileIDs[ref.FileID] {
			r.add(Error, path+".photometryFileReference.fileId", "PHOT_002",
				fmt.Sprintf("Referenced file %q not found in file definitions", ref.FileID))
		}
	}
}

func checkGeometries(p *gldf.Product, fileIDs map[string]bool, r *Result) {
	g := p.GeneralDefinitions.Geometries
	if g == nil {
		return
	}
	for i, sg := range g.SimpleGeometry {
		if sg.ID == "" {
			r.add(Error, fmt.Sprintf("generalDefinitions.geometries.simpleGeometry[%d].id", i),
				"GEOM_001", "Geometry ID is required")
		}
	}
	for i, mg := range g.ModelGeometry {
		path := fmt.Sprintf("generalDefinitions.geometries.modelGeometry[%d]", i)
		if mg.ID == "" {
			r.add(Error, path+".id", "GEOM_002", "Model geometry ID is required")
		}
		for j, ref := range mg.GeometryFileReference {
			if !fileIDs[ref.FileID] {
				r.add(Error, fmt.Sprintf("%s.geometryFileReference[%d].fileId", path, j),
					"GEOM_003", fmt.Sprintf("Referenced geometry file %q not found", ref.FileID))
			}
		}
	}
}

func checkLightSources(p *gldf.Product, r *Result) {
	ls := p.GeneralDefinitions.LightSources
	if ls == nil {
		return
	}
	for i, s := range ls.FixedLightSource {
		if s.ID == "" {
			r.add(Error, fmt.Sprintf("generalDefinitions.lightSources.fixedLightSource[%d].id", i),
				"LS_001", "Fixed light source ID is required")
		}
	}
	for i, s := range ls.ChangeableLightSource {
		if s.ID == "" {
			r.add(Error, fmt.Sprintf("generalDefinitions.lightSources.changeableLightSource[%d].id", i),
				"LS_002", "Changeable light source ID is required")
		}
	}
}

func checkEmitters(p *gldf.Product, r *Result) {
	if p.GeneralDefinitions.Emitters == nil {
		return
	}
	for i, e := range p.GeneralDefinitions.Emitters.Emitter {
		if e.ID == "" {
			r.add(Error, fmt.Sprintf("generalDefinitions.emitters[%d].id", i),
				"EMIT_001", "Emitter ID is required")
		}
	}
}

func checkVariants(p *gldf.Product, r *Result) {
	vs := p.ProductDefinitions.Variants
	if vs == nil {
		r.add(Warning, "productDefinitions.variants", "VAR_003",
			"No variants section - consider adding variants")
		return
	}
	if len(vs.Variant) == 0 {
		r.add(Warning, "productDefinitions.variants", "VAR_001",
			"No variants defined - consider adding at least one variant")
	}
	for i, v := range vs.Variant {
		if v.ID == "" {
			r.add(Error, fmt.Sprintf("productDefinitions.variants[%d].id", i),
				"VAR_002", "Variant ID is required")
		}
	}
}

func checkUniqueness(p *gldf.Product, r *Result) {
	seen := make(map[string]bool)
	for _, f := range p.GeneralDefinitions.Files.File {
		if f.ID != "" && seen[f.ID] {
			r.add(Error, "generalDefinitions.files."+f.ID, "UNIQUE_001",
				fmt.Sprintf("Duplicate file ID: %q", f.ID))
		}
		seen[f.ID] = true
	}

	if vs := p.ProductDefinitions.Variants; vs != nil {
		seen := make(map[string]bool)
		for _, v := range vs.Variant {
			if v.ID != "" && seen[v.ID] {
				r.add(Error, "productDefinitions.variants."+v.ID, "UNIQUE_002",
					fmt.Sprintf("Duplicate variant ID: %q", v.ID))
			}
			seen[v.ID] = true
		}
	}

	if phs := p.GeneralDefinitions.Photometries; phs != nil {
		seen := make(map[string]bool)
		for _, ph := range phs.Photometry {
			if ph.ID != "" && seen[ph.ID] {
				r.add(Error, "generalDefinitions.photometries."+ph.ID, "UNIQUE_003",
					fmt.Sprintf("Duplicate photometry ID: %q", ph.ID))
			}
			seen[ph.ID] = true
		}
	}

	if es := p.GeneralDefinitions.Emitters; es != nil {
		seen := make(map[string]bool)
		for _, e := range es.Emitter {
			if e.ID != "" && seen[e.ID] {
				r.add(Error, "generalDefinitions.emitters."+e.ID, "UNIQUE_004",
					fmt.Sprintf("Duplicate emitter ID: %q", e.ID))
			}
			seen[e.ID] = true
		}
	}
}
