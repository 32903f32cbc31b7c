package gldf

import "fmt"

// AllIDs returns every ID in use across the addressable collections:
// files, variants, photometries, geometries, light sources and emitters.
func (p *Product) AllIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, f := range p.GeneralDefinitions.Files.File {
		ids[f.ID] = struct{}{}
	}
	if vs := p.ProductDefinitions.Variants; vs != nil {
		for _, v := range vs.Variant {
			ids[v.ID] = struct{}{}
		}
	}
	if phs := p.GeneralDefinitions.Photometries; phs != nil {
		for _, ph := range phs.Photometry {
			ids[ph.ID] = struct{}{}
		}
	}
	if g := p.GeneralDefinitions.Geometries; g != nil {
		for _, sg := range g.SimpleGeometry {
			ids[sg.ID] = struct{}{}
		}
		for _, mg := range g.ModelGeometry {
			ids[mg.ID] = struct{}{}
		}
	}
	if ls := p.GeneralDefinitions.LightSources; ls != nil {
		for _, s := range ls.FixedLightSource {
			ids[s.ID] = struct{}{}
		}
		for _, s := range ls.ChangeableLightSource {
			ids[s.ID] = struct{}{}
		}
	}
	if es := p.GeneralDefinitions.Emitters; es != nil {
		for _, e := range es.Emitter {
			ids[e.ID] = struct{}{}
		}
	}
	return ids
}

// GenerateUniqueID returns the lowest-numbered "prefix_n" (n starting at
// 1) that is unused across all addressable collections, so a generated
// ID never collides with any element regardless of its kind.
func (p *Product) GenerateUniqueID(prefix string) string {
	ids := p.AllIDs()
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d", prefix, n)
		if _, taken := ids[candidate]; !taken {
			return candidate
		}
	}
}

// ReferencedFileIDs returns the file IDs referenced from photometries
// and model geometries.
func (p *Product) ReferencedFileIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	if phs := p.GeneralDefinitions.Photometries; phs != nil {
		for _, ph := range phs.Photometry {
			if ph.PhotometryFileReference != nil {
				ids[ph.PhotometryFileReference.FileID] = struct{}{}
			}
		}
	}
	if g := p.GeneralDefinitions.Geometries; g != nil {
		for _, mg := range g.ModelGeometry {
			for _, ref := range mg.GeometryFileReference {
				ids[ref.FileID] = struct{}{}
			}
		}
	}
	return ids
}

// PhotometricFiles returns the file definitions whose content type is a
// photometric distribution (ldc family).
func (p *Product) PhotometricFiles() []File {
	var out []File
	for _, f := range p.GeneralDefinitions.Files.File {
		if hasContentTypePrefix(f.ContentType, "ldc") {
			out = append(out, f)
		}
	}
	return out
}

// ImageFiles returns the file definitions whose content type is an
// image.
func (p *Product) ImageFiles() []File {
	var out []File
	for _, f := range p.GeneralDefinitions.Files.File {
		if hasContentTypePrefix(f.ContentType, "image") {
			out = append(out, f)
		}
	}
	return out
}

// URLFiles returns the file definitions stored by URL rather than inside
// the container.
func (p *Product) URLFiles() []File {
	var out []File
	for _, f := range p.GeneralDefinitions.Files.File {
		if f.IsURL() {
			out = append(out, f)
		}
	}
	return out
}

func hasContentTypePrefix(contentType, family string) bool {
	return len(contentType) > len(family) && contentType[:len(family)] == family && contentType[len(family)] == '/'
}
