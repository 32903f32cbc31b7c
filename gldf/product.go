// Package gldf models the product document of a GLDF lighting container:
// the schema types, XML and JSON codecs, and an ID-scoped editing layer
// for the collections inside it.
package gldf

import (
	"encoding/xml"
	"time"

	"github.com/google/uuid"
)

// GeneralDefinitions holds the reusable building blocks a product is
// assembled from. All collections except Files are optional.
type GeneralDefinitions struct {
	Files        Files         `xml:"Files" json:"files" yaml:"files"`
	Sensors      *Sensors      `xml:"Sensors,omitempty" json:"sensors,omitempty" yaml:"sensors,omitempty"`
	Photometries *Photometries `xml:"Photometries,omitempty" json:"photometries,omitempty" yaml:"photometries,omitempty"`
	Spectrums    *Spectrums    `xml:"Spectrums,omitempty" json:"spectrums,omitempty" yaml:"spectrums,omitempty"`
	LightSources *LightSources `xml:"LightSources,omitempty" json:"lightSources,omitempty" yaml:"light_sources,omitempty"`
	ControlGears *ControlGears `xml:"ControlGears,omitempty" json:"controlGears,omitempty" yaml:"control_gears,omitempty"`
	Equipments   *Equipments   `xml:"Equipments,omitempty" json:"equipments,omitempty" yaml:"equipments,omitempty"`
	Emitters     *Emitters     `xml:"Emitters,omitempty" json:"emitters,omitempty" yaml:"emitters,omitempty"`
	Geometries   *Geometries   `xml:"Geometries,omitempty" json:"geometries,omitempty" yaml:"geometries,omitempty"`
}

// Product is the root of a GLDF product document. It serializes to and
// from the Root element of product.xml.
type Product struct {
	XMLName            xml.Name           `xml:"Root" json:"-" yaml:"-"`
	Header             Header             `xml:"Header" json:"header" yaml:"header"`
	GeneralDefinitions GeneralDefinitions `xml:"GeneralDefinitions" json:"generalDefinitions" yaml:"general_definitions"`
	ProductDefinitions ProductDefinitions `xml:"ProductDefinitions" json:"productDefinitions" yaml:"product_definitions"`

	// Path is the filesystem origin of the document, when it has one.
	// It is not part of the wire format.
	Path string `xml:"-" json:"-" yaml:"-"`
}

// NewProduct returns a minimal valid product with a fresh unique ID and
// the given manufacturer and application name in its header.
func NewProduct(manufacturer, application string) *Product {
	return &Product{
		Header: Header{
			Manufacturer:           manufacturer,
			FormatVersion:          FormatVersion{Major: 1, Minor: 0, PreRelease: intPtr(3)},
			CreatedWithApplication: application,
			CreationTimeCode:       time.Now().UTC().Format("2006-01-02T15:04:05"),
			UniqueGldfID:           uuid.NewString(),
		},
	}
}

func intPtr(v int) *int { return &v }
