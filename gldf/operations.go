package gldf

import "fmt"

// The editing operations below share a few rules. Adds reject an ID that
// already exists in the collection's namespace; simple and model
// geometries share one namespace, as do fixed and changeable light
// sources. Updates replace the element in place so document order is
// kept. Optional collections are materialized on first add and left
// absent otherwise.

// ---- files ----

// AddFile appends a file definition.
func (p *Product) AddFile(f File) error {
	for _, have := range p.GeneralDefinitions.Files.File {
		if have.ID == f.ID {
			return fmt.Errorf("%w: file %q", ErrDuplicateID, f.ID)
		}
	}
	p.GeneralDefinitions.Files.File = append(p.GeneralDefinitions.Files.File, f)
	return nil
}

// File returns the file definition with the given ID.
func (p *Product) File(id string) (*File, bool) {
	for i := range p.GeneralDefinitions.Files.File {
		if p.GeneralDefinitions.Files.File[i].ID == id {
			return &p.GeneralDefinitions.Files.File[i], true
		}
	}
	return nil, false
}

// UpdateFile replaces the file definition with the given ID.
func (p *Product) UpdateFile(id string, f File) error {
	for i := range p.GeneralDefinitions.Files.File {
		if p.GeneralDefinitions.Files.File[i].ID == id {
			p.GeneralDefinitions.Files.File[i] = f
			return nil
		}
	}
	return fmt.Errorf("%w: file %q", ErrNotFound, id)
}

// RemoveFile deletes and returns the file definition with the given ID.
func (p *Product) RemoveFile(id string) (File, error) {
	files := p.GeneralDefinitions.Files.File
	for i := range files {
		if files[i].ID == id {
			removed := files[i]
			p.GeneralDefinitions.Files.File = append(files[:i], files[i+1:]...)
			return removed, nil
		}
	}
	return File{}, fmt.Errorf("%w: file %q", ErrNotFound, id)
}

// ---- variants ----

// AddVariant appends a product variant, creating the Variants section
// when the document has none yet.
func (p *Product) AddVariant(v Variant) error {
	if p.ProductDefinitions.Variants == nil {
		p.ProductDefinitions.Variants = &Variants{}
	}
	for _, have := range p.ProductDefinitions.Variants.Variant {
		if have.ID == v.ID {
			return fmt.Errorf("%w: variant %q", ErrDuplicateID, v.ID)
		}
	}
	p.ProductDefinitions.Variants.Variant = append(p.ProductDefinitions.Variants.Variant, v)
	return nil
}

// Variant returns the variant with the given ID.
func (p *Product) Variant(id string) (*Variant, bool) {
	if p.ProductDefinitions.Variants == nil {
		return nil, false
	}
	for i := range p.ProductDefinitions.Variants.Variant {
		if p.ProductDefinitions.Variants.Variant[i].ID == id {
			return &p.ProductDefinitions.Variants.Variant[i], true
		}
	}
	return nil, false
}

// UpdateVariant replaces the variant with the given ID.
func (p *Product) UpdateVariant(id string, v Variant) error {
	if p.ProductDefinitions.Variants != nil {
		for i := range p.ProductDefinitions.Variants.Variant {
			if p.ProductDefinitions.Variants.Variant[i].ID == id {
				p.ProductDefinitions.Variants.Variant[i] = v
				return nil
			}
		}
	}
	return fmt.Errorf("%w: variant %q", ErrNotFound, id)
}

// RemoveVariant deletes and returns the variant with the given ID.
func (p *Product) RemoveVariant(id string) (Variant, error) {
	if p.ProductDefinitions.Variants != nil {
		vs := p.ProductDefinitions.Variants.Variant
		for i := range vs {
			if vs[i].ID == id {
				removed := vs[i]
				p.ProductDefinitions.Variants.Variant = append(vs[:i], vs[i+1:]...)
				return removed, nil
			}
		}
	}
	return Variant{}, fmt.Errorf("%w: variant %q", ErrNotFound, id)
}

// ---- photometries ----

// AddPhotometry appends a photometry, creating the Photometries section
// when absent.
func (p *Product) AddPhotometry(ph Photometry) error {
	if p.GeneralDefinitions.Photometries == nil {
		p.GeneralDefinitions.Photometries = &Photometries{}
	}
	for _, have := range p.GeneralDefinitions.Photometries.Photometry {
		if have.ID == ph.ID {
			return fmt.Errorf("%w: photometry %q", ErrDuplicateID, ph.ID)
		}
	}
	p.GeneralDefinitions.Photometries.Photometry = append(p.GeneralDefinitions.Photometries.Photometry, ph)
	return nil
}

// Photometry returns the photometry with the given ID.
func (p *Product) Photometry(id string) (*Photometry, bool) {
	if p.GeneralDefinitions.Photometries == nil {
		return nil, false
	}
	for i := range p.GeneralDefinitions.Photometries.Photometry {
		if p.GeneralDefinitions.Photometries.Photometry[i].ID == id {
			return &p.GeneralDefinitions.Photometries.Photometry[i], true
		}
	}
	return nil, false
}

// UpdatePhotometry replaces the photometry with the given ID.
func (p *Product) UpdatePhotometry(id string, ph Photometry) error {
	if p.GeneralDefinitions.Photometries != nil {
		for i := range p.GeneralDefinitions.Photometries.Photometry {
			if p.GeneralDefinitions.Photometries.Photometry[i].ID == id {
				p.GeneralDefinitions.Photometries.Photometry[i] = ph
				return nil
			}
		}
	}
	return fmt.Errorf("%w: photometry %q", ErrNotFound, id)
}

// RemovePhotometry deletes and returns the photometry with the given ID.
func (p *Product) RemovePhotometry(id string) (Photometry, error) {
	if p.GeneralDefinitions.Photometries != nil {
		phs := p.GeneralDefinitions.Photometries.Photometry
		for i := range phs {
			if phs[i].ID == id {
				removed := phs[i]
				p.GeneralDefinitions.Photometries.Photometry = append(phs[:i], phs[i+1:]...)
				return removed, nil
			}
		}
	}
	return Photometry{}, fmt.Errorf("%w: photometry %q", ErrNotFound, id)
}

// ---- emitters ----

// AddEmitter appends an emitter, creating the Emitters section when
// absent.
func (p *Product) AddEmitter(e Emitter) error {
	if p.GeneralDefinitions.Emitters == nil {
		p.GeneralDefinitions.Emitters = &Emitters{}
	}
	for _, have := range p.GeneralDefinitions.Emitters.Emitter {
		if have.ID == e.ID {
			return fmt.Errorf("%w: emitter %q", ErrDuplicateID, e.ID)
		}
	}
	p.GeneralDefinitions.Emitters.Emitter = append(p.GeneralDefinitions.Emitters.Emitter, e)
	return nil
}

// Emitter returns the emitter with the given ID.
func (p *Product) Emitter(id string) (*Emitter, bool) {
	if p.GeneralDefinitions.Emitters == nil {
		return nil, false
	}
	for i := range p.GeneralDefinitions.Emitters.Emitter {
		if p.GeneralDefinitions.Emitters.Emitter[i].ID == id {
			return &p.GeneralDefinitions.Emitters.Emitter[i], true
		}
	}
	return nil, false
}

// UpdateEmitter replaces the emitter with the given ID.
func (p *Product) UpdateEmitter(id string, e Emitter) error {
	if p.GeneralDefinitions.Emitters != nil {
		for i := range p.GeneralDefinitions.Emitters.Emitter {
			if p.GeneralDefinitions.Emitters.Emitter[i].ID == id {
				p.GeneralDefinitions.Emitters.Emitter[i] = e
				return nil
			}
		}
	}
	return fmt.Errorf("%w: emitter %q", ErrNotFound, id)
}

// RemoveEmitter deletes and returns the emitter with the given ID.
func (p *Product) RemoveEmitter(id string) (Emitter, error) {
	if p.GeneralDefinitions.Emitters != nil {
		es := p.GeneralDefinitions.Emitters.Emitter
		for i := range es {
			if es[i].ID == id {
				removed := es[i]
				p.GeneralDefinitions.Emitters.Emitter = append(es[:i], es[i+1:]...)
				return removed, nil
			}
		}
	}
	return Emitter{}, fmt.Errorf("%w: emitter %q", ErrNotFound, id)
}

// ---- geometries ----

func (p *Product) geometryIDExists(id string) bool {
	g := p.GeneralDefinitions.Geometries
	if g == nil {
		return false
	}
	for _, sg := range g.SimpleGeometry {
		if sg.ID == id {
			return true
		}
	}
	for _, mg := range g.ModelGeometry {
		if mg.ID == id {
			return true
		}
	}
	return false
}

// AddSimpleGeometry appends a simple geometry. The ID must be unique
// across simple and model geometries.
func (p *Product) AddSimpleGeometry(g SimpleGeometry) error {
	if p.geometryIDExists(g.ID) {
		return fmt.Errorf("%w: geometry %q", ErrDuplicateID, g.ID)
	}
	if p.GeneralDefinitions.Geometries == nil {
		p.GeneralDefinitions.Geometries = &Geometries{}
	}
	p.GeneralDefinitions.Geometries.SimpleGeometry = append(p.GeneralDefinitions.Geometries.SimpleGeometry, g)
	return nil
}

// AddModelGeometry appends a model geometry. The ID must be unique
// across simple and model geometries.
func (p *Product) AddModelGeometry(g ModelGeometry) error {
	if p.geometryIDExists(g.ID) {
		return fmt.Errorf("%w: geometry %q", ErrDuplicateID, g.ID)
	}
	if p.GeneralDefinitions.Geometries == nil {
		p.GeneralDefinitions.Geometries = &Geometries{}
	}
	p.GeneralDefinitions.Geometries.ModelGeometry = append(p.GeneralDefinitions.Geometries.ModelGeometry, g)
	return nil
}

// SimpleGeometry returns the simple geometry with the given ID.
func (p *Product) SimpleGeometry(id string) (*SimpleGeometry, bool) {
	if p.GeneralDefinitions.Geometries == nil {
		return nil, false
	}
	for i := range p.GeneralDefinitions.Geometries.SimpleGeometry {
		if p.GeneralDefinitions.Geometries.SimpleGeometry[i].ID == id {
			return &p.GeneralDefinitions.Geometries.SimpleGeometry[i], true
		}
	}
	return nil, false
}

// ModelGeometry returns the model geometry with the given ID.
func (p *Product) ModelGeometry(id string) (*ModelGeometry, bool) {
	if p.GeneralDefinitions.Geometries == nil {
		return nil, false
	}
	for i := range p.GeneralDefinitions.Geometries.ModelGeometry {
		if p.GeneralDefinitions.Geometries.ModelGeometry[i].ID == id {
			return &p.GeneralDefinitions.Geometries.ModelGeometry[i], true
		}
	}
	return nil, false
}

// UpdateSimpleGeometry replaces the simple geometry with the given ID.
func (p *Product) UpdateSimpleGeometry(id string, g SimpleGeometry) error {
	if p.GeneralDefinitions.Geometries != nil {
		for i := range p.GeneralDefinitions.Geometries.SimpleGeometry {
			if p.GeneralDefinitions.Geometries.SimpleGeometry[i].ID == id {
				p.GeneralDefinitions.Geometries.SimpleGeometry[i] = g
				return nil
			}
		}
	}
	return fmt.Errorf("%w: geometry %q", ErrNotFound, id)
}

// UpdateModelGeometry replaces the model geometry with the given ID.
func (p *Product) UpdateModelGeometry(id string, g ModelGeometry) error {
	if p.GeneralDefinitions.Geometries != nil {
		for i := range p.GeneralDefinitions.Geometries.ModelGeometry {
			if p.GeneralDefinitions.Geometries.ModelGeometry[i].ID == id {
				p.GeneralDefinitions.Geometries.ModelGeometry[i] = g
				return nil
			}
		}
	}
	return fmt.Errorf("%w: geometry %q", ErrNotFound, id)
}

// RemoveSimpleGeometry deletes and returns the simple geometry with the
// given ID.
func (p *Product) RemoveSimpleGeometry(id string) (SimpleGeometry, error) {
	if g := p.GeneralDefinitions.Geometries; g != nil {
		for i := range g.SimpleGeometry {
			if g.SimpleGeometry[i].ID == id {
				removed := g.SimpleGeometry[i]
				g.SimpleGeometry = append(g.SimpleGeometry[:i], g.SimpleGeometry[i+1:]...)
				return removed, nil
			}
		}
	}
	return SimpleGeometry{}, fmt.Errorf("%w: simple geometry %q", ErrNotFound, id)
}

// RemoveModelGeometry deletes and returns the model geometry with the
// given ID.
func (p *Product) RemoveModelGeometry(id string) (ModelGeometry, error) {
	if g := p.GeneralDefinitions.Geometries; g != nil {
		for i := range g.ModelGeometry {
			if g.ModelGeometry[i].ID == id {
				removed := g.ModelGeometry[i]
				g.ModelGeometry = append(g.ModelGeometry[:i], g.ModelGeometry[i+1:]...)
				return removed, nil
			}
		}
	}
	return ModelGeometry{}, fmt.Errorf("%w: model geometry %q", ErrNotFound, id)
}

// ---- light sources ----

func (p *Product) lightSourceIDExists(id string) bool {
	ls := p.GeneralDefinitions.LightSources
	if ls == nil {
		return false
	}
	for _, s := range ls.FixedLightSource {
		if s.ID == id {
			return true
		}
	}
	for _, s := range ls.ChangeableLightSource {
		if s.ID == id {
			return true
		}
	}
	return false
}

// AddFixedLightSource appends a fixed light source. The ID must be
// unique across fixed and changeable sources.
func (p *Product) AddFixedLightSource(s FixedLightSource) error {
	if p.lightSourceIDExists(s.ID) {
		return fmt.Errorf("%w: light source %q", ErrDuplicateID, s.ID)
	}
	if p.GeneralDefinitions.LightSources == nil {
		p.GeneralDefinitions.LightSources = &LightSources{}
	}
	p.GeneralDefinitions.LightSources.FixedLightSource = append(p.GeneralDefinitions.LightSources.FixedLightSource, s)
	return nil
}

// AddChangeableLightSource appends a changeable light source. The ID
// must be unique across fixed and changeable sources.
func (p *Product) AddChangeableLightSource(s ChangeableLightSource) error {
	if p.lightSourceIDExists(s.ID) {
		return fmt.Errorf("%w: light source %q", ErrDuplicateID, s.ID)
	}
	if p.GeneralDefinitions.LightSources == nil {
		p.GeneralDefinitions.LightSources = &LightSources{}
	}
	p.GeneralDefinitions.LightSources.ChangeableLightSource = append(p.GeneralDefinitions.LightSources.ChangeableLightSource, s)
	return nil
}

// FixedLightSource returns the fixed light source with the given ID.
func (p *Product) FixedLightSource(id string) (*FixedLightSource, bool) {
	if p.GeneralDefinitions.LightSources == nil {
		return nil, false
	}
	for i := range p.GeneralDefinitions.LightSources.FixedLightSource {
		if p.GeneralDefinitions.LightSources.FixedLightSource[i].ID == id {
			return &p.GeneralDefinitions.LightSources.FixedLightSource[i], true
		}
	}
	return nil, false
}

// ChangeableLightSource returns the changeable light source with the
// given ID.
func (p *Product) ChangeableLightSource(id string) (*ChangeableLightSource, bool) {
	if p.GeneralDefinitions.LightSources == nil {
		return nil, false
	}
	for i := range p.GeneralDefinitions.LightSources.ChangeableLightSource {
		if p.GeneralDefinitions.LightSources.ChangeableLightSource[i].ID == id {
			return &p.GeneralDefinitions.LightSources.ChangeableLightSource[i], true
		}
	}
	return nil, false
}

// UpdateFixedLightSource replaces the fixed light source with the given
// ID.
func (p *Product) UpdateFixedLightSource(id string, s FixedLightSource) error {
	if p.GeneralDefinitions.LightSources != nil {
		for i := range p.GeneralDefinitions.LightSources.FixedLightSource {
			if p.GeneralDefinitions.LightSources.FixedLightSource[i].ID == id {
				p.GeneralDefinitions.LightSources.FixedLightSource[i] = s
				return nil
			}
		}
	}
	return fmt.Errorf("%w: light source %q", ErrNotFound, id)
}

// UpdateChangeableLightSource replaces the changeable light source with
// the given ID.
func (p *Product) UpdateChangeableLightSource(id string, s ChangeableLightSource) error {
	if p.GeneralDefinitions.LightSources != nil {
		for i := range p.GeneralDefinitions.LightSources.ChangeableLightSource {
			if p.GeneralDefinitions.LightSources.ChangeableLightSource[i].ID == id {
				p.GeneralDefinitions.LightSources.ChangeableLightSource[i] = s
				return nil
			}
		}
	}
	return fmt.Errorf("%w: light source %q", ErrNotFound, id)
}

// RemoveFixedLightSource deletes and returns the fixed light source with
// the given ID.
func (p *Product) RemoveFixedLightSource(id string) (FixedLightSource, error) {
	if ls := p.GeneralDefinitions.LightSources; ls != nil {
		for i := range ls.FixedLightSource {
			if ls.FixedLightSource[i].ID == id {
				removed := ls.FixedLightSource[i]
				ls.FixedLightSource = append(ls.FixedLightSource[:i], ls.FixedLightSource[i+1:]...)
				return removed, nil
			}
		}
	}
	return FixedLightSource{}, fmt.Errorf("%w: fixed light source %q", ErrNotFound, id)
}

// RemoveChangeableLightSource deletes and returns the changeable light
// source with the given ID.
func (p *Product) RemoveChangeableLightSource(id string) (ChangeableLightSource, error) {
	if ls := p.GeneralDefinitions.LightSources; ls != nil {
		for i := range ls.ChangeableLightSource {
			if ls.ChangeableLightSource[i].ID == id {
				removed := ls.ChangeableLightSource[i]
				ls.ChangeableLightSource = append(ls.ChangeableLightSource[:i], ls.ChangeableLightSource[i+1:]...)
				return removed, nil
			}
		}
	}
	return ChangeableLightSource{}, fmt.Errorf("%w: changeable light source %q", ErrNotFound, id)
}

// ProductMetaData returns the product metadata section, or nil when the
// document has none.
func (p *Product) ProductMetaData() *ProductMetaData {
	return p.ProductDefinitions.ProductMetaData
}

// SetProductMetaData replaces the product metadata section.
func (p *Product) SetProductMetaData(md ProductMetaData) {
	p.ProductDefinitions.ProductMetaData = &md
}

// EnsureProductMetaData returns the product metadata section, creating an
// empty one first if the document has none.
func (p *Product) EnsureProductMetaData() *ProductMetaData {
	if p.ProductDefinitions.ProductMetaData == nil {
		p.ProductDefinitions.ProductMetaData = &ProductMetaData{}
	}
	return p.ProductDefinitions.ProductMetaData
}
