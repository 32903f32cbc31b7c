// Package resolve walks the reference chains of a GLDF document and
// answers "which files does this variant actually render with". Lookups
// never fail hard: a broken link simply leaves the corresponding field
// empty, since partially-authored documents are the normal case in an
// editor.
package resolve

import "github.com/luxkit/gldf/gldf"

// GeometryMapping links a variant's geometry to the photometry file its
// emitters light it with.
//
// For a model geometry, ModelFileID names the 3D model file (l3d) and
// the photometry is resolved through the first emitter reference whose
// chain reaches a file (first match wins). For a simple geometry there
// is no model file; ModelFileID carries the geometry ID and only the
// photometry side is filled.
type GeometryMapping struct {
	ModelFileID        string
	ModelFileName      string
	PhotometryFileID   string
	PhotometryFileName string
	VariantID          string
	EmitterID          string
}

// GeometryMappings extracts one mapping per variant geometry reference.
// Variants without a geometry produce nothing; a model geometry with no
// resolvable photometry still produces a mapping with the photometry
// side empty.
func GeometryMappings(p *gldf.Product) []GeometryMapping {
	var mappings []GeometryMapping
	vs := p.ProductDefinitions.Variants
	if vs == nil {
		return mappings
	}

	for _, v := range vs.Variant {
		if v.Geometry == nil {
			continue
		}

		if ref := v.Geometry.ModelGeometryReference; ref != nil {
			m := GeometryMapping{VariantID: v.ID}
			m.ModelFileID = modelFileID(p, ref.GeometryID)
			m.ModelFileName = fileName(p, m.ModelFileID)

			for _, er := range ref.EmitterReference {
				m.EmitterID = er.EmitterID
				if photID := emitterPhotometryID(p, er.EmitterID); photID != "" {
					if fileID := photometryFileID(p, photID); fileID != "" {
						m.PhotometryFileID = fileID
						m.PhotometryFileName = fileName(p, fileID)
						break
					}
				}
			}
			if m.ModelFileID != "" {
				mappings = append(mappings, m)
			}
		}

		if ref := v.Geometry.SimpleGeometryReference; ref != nil {
			photID := emitterPhotometryID(p, ref.EmitterID)
			if photID == "" {
				continue
			}
			fileID := photometryFileID(p, photID)
			if fileID == "" {
				continue
			}
			mappings = append(mappings, GeometryMapping{
				ModelFileID:        ref.GeometryID,
				PhotometryFileID:   fileID,
				PhotometryFileName: fileName(p, fileID),
				VariantID:          v.ID,
				EmitterID:          ref.EmitterID,
			})
		}
	}
	return mappings
}

// EmitterRenderData is what a renderer needs for one emitter of a
// variant: the object it lights in the 3D model, its flux and colour,
// and the photometry file behind it.
type EmitterRenderData struct {
	// LEOName is the light emitting object name inside the 3D model.
	LEOName            string
	EmitterID          string
	LuminousFlux       *int
	ColorTemperature   *int
	PhotometryFileID   string
	PhotometryFileName string
	EmergencyBehaviour string
}

// VariantEmitterData collects the render data of every emitter a
// variant's model geometry references.
type VariantEmitterData struct {
	VariantID     string
	ModelFileID   string
	ModelFileName string
	Emitters      []EmitterRenderData
}

// VariantEmitters resolves the full emitter chain for one variant. An
// unknown variant ID yields an empty result with just the ID set.
func VariantEmitters(p *gldf.Product, variantID string) VariantEmitterData {
	result := VariantEmitterData{VariantID: variantID}

	v, ok := p.Variant(variantID)
	if !ok || v.Geometry == nil || v.Geometry.ModelGeometryReference == nil {
		return result
	}
	ref := v.Geometry.ModelGeometryReference

	result.ModelFileID = modelFileID(p, ref.GeometryID)
	result.ModelFileName = fileName(p, result.ModelFileID)

	for _, er := range ref.EmitterReference {
		data := EmitterRenderData{
			LEOName:   er.EmitterObjectExternalName,
			EmitterID: er.EmitterID,
		}
		if photID := emitterPhotometryID(p, er.EmitterID); photID != "" {
			data.PhotometryFileID = photometryFileID(p, photID)
			data.PhotometryFileName = fileName(p, data.PhotometryFileID)
		}
		data.LuminousFlux, data.ColorTemperature, data.EmergencyBehaviour = emitterDetails(p, er.EmitterID)
		result.Emitters = append(result.Emitters, data)
	}
	return result
}

// fileName resolves a file ID to its file name, or "".
func fileName(p *gldf.Product, fileID string) string {
	if fileID == "" {
		return ""
	}
	if f, ok := p.File(fileID); ok {
		return f.FileName
	}
	return ""
}

// modelFileID returns the first model file of a model geometry, or "".
func modelFileID(p *gldf.Product, geometryID string) string {
	mg, ok := p.ModelGeometry(geometryID)
	if !ok || len(mg.GeometryFileReference) == 0 {
		return ""
	}
	return mg.GeometryFileReference[0].FileID
}

// emitterPhotometryID returns the photometry an emitter points at.
// Fixed light emitters take precedence over changeable ones.
func emitterPhotometryID(p *gldf.Product, emitterID string) string {
	e, ok := p.Emitter(emitterID)
	if !ok {
		return ""
	}
	if len(e.FixedLightEmitter) > 0 {
		if ref := e.FixedLightEmitter[0].PhotometryReference; ref != nil {
			return ref.PhotometryID
		}
		return ""
	}
	if len(e.ChangeableLightEmitter) > 0 {
		if ref := e.ChangeableLightEmitter[0].PhotometryReference; ref != nil {
			return ref.PhotometryID
		}
	}
	return ""
}

// photometryFileID returns the distribution file of a photometry, or "".
func photometryFileID(p *gldf.Product, photometryID string) string {
	ph, ok := p.Photometry(photometryID)
	if !ok || ph.PhotometryFileReference == nil {
		return ""
	}
	return ph.PhotometryFileReference.FileID
}

// emitterDetails pulls flux, colour temperature and emergency behaviour
// from an emitter. The colour temperature comes from the fixed light
// source the emitter references; changeable emitters carry neither flux
// nor colour directly.
func emitterDetails(p *gldf.Product, emitterID string) (flux, colorTemp *int, emergency string) {
	e, ok := p.Emitter(emitterID)
	if !ok {
		return nil, nil, ""
	}

	if len(e.FixedLightEmitter) > 0 {
		fle := e.FixedLightEmitter[0]
		flux = fle.RatedLuminousFlux
		emergency = fle.EmergencyBehaviour

		if fle.LightSourceReference != nil && fle.LightSourceReference.FixedLightSourceID != "" {
			if ls, ok := p.FixedLightSource(fle.LightSourceReference.FixedLightSourceID); ok {
				if ls.ColorInformation != nil {
					colorTemp = ls.ColorInformation.CorrelatedColorTemperature
				}
			}
		}
		return flux, colorTemp, emergency
	}

	if len(e.ChangeableLightEmitter) > 0 {
		return nil, nil, e.ChangeableLightEmitter[0].EmergencyBehaviour
	}
	return nil, nil, ""
}
