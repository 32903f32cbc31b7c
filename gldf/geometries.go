package gldf

// Cuboid is a box primitive in millimetres.
type Cuboid struct {
	Width  int `xml:"Width" json:"width" yaml:"width"`
	Length int `xml:"Length" json:"length" yaml:"length"`
	Height int `xml:"Height" json:"height" yaml:"height"`
}

// Cylinder is a cylindrical primitive in millimetres.
type Cylinder struct {
	Plane    string `xml:"plane,attr,omitempty" json:"plane,omitempty" yaml:"plane,omitempty"`
	Diameter int    `xml:"Diameter" json:"diameter" yaml:"diameter"`
	Height   int    `xml:"Height" json:"height" yaml:"height"`
}

// RectangularEmitter is the luminous rectangle of a simple geometry.
type RectangularEmitter struct {
	Width  int `xml:"Width" json:"width" yaml:"width"`
	Length int `xml:"Length" json:"length" yaml:"length"`
}

// CircularEmitter is the luminous disc of a simple geometry.
type CircularEmitter struct {
	Diameter int `xml:"Diameter" json:"diameter" yaml:"diameter"`
}

// CHeights gives the luminous heights along the four cardinal C planes.
type CHeights struct {
	C0   int `xml:"C0" json:"c0" yaml:"c0"`
	C90  int `xml:"C90" json:"c90" yaml:"c90"`
	C180 int `xml:"C180" json:"c180" yaml:"c180"`
	C270 int `xml:"C270" json:"c270" yaml:"c270"`
}

// SimpleGeometry describes a luminaire body with primitive shapes.
type SimpleGeometry struct {
	ID                 string               `xml:"id,attr" json:"id" yaml:"id"`
	Cuboid             []Cuboid             `xml:"Cuboid,omitempty" json:"cuboid,omitempty" yaml:"cuboid,omitempty"`
	Cylinder           []Cylinder           `xml:"Cylinder,omitempty" json:"cylinder,omitempty" yaml:"cylinder,omitempty"`
	RectangularEmitter []RectangularEmitter `xml:"RectangularEmitter,omitempty" json:"rectangularEmitter,omitempty" yaml:"rectangular_emitter,omitempty"`
	CircularEmitter    []CircularEmitter    `xml:"CircularEmitter,omitempty" json:"circularEmitter,omitempty" yaml:"circular_emitter,omitempty"`
	CHeights           []CHeights           `xml:"C-Heights,omitempty" json:"cHeights,omitempty" yaml:"c_heights,omitempty"`
}

// GeometryFileReference points a model geometry at a 3D model file.
type GeometryFileReference struct {
	FileID        string `xml:"fileId,attr" json:"fileId" yaml:"file_id"`
	LevelOfDetail string `xml:"levelOfDetail,attr,omitempty" json:"levelOfDetail,omitempty" yaml:"level_of_detail,omitempty"`
}

// ModelGeometry references one or more 3D model files, usually at
// different levels of detail.
type ModelGeometry struct {
	ID                    string                  `xml:"id,attr" json:"id" yaml:"id"`
	GeometryFileReference []GeometryFileReference `xml:"GeometryFileReference" json:"geometryFileReference" yaml:"geometry_file_reference"`
}

// Geometries is the optional geometry collection. Simple and model
// geometries share one ID namespace.
type Geometries struct {
	SimpleGeometry []SimpleGeometry `xml:"SimpleGeometry,omitempty" json:"simpleGeometry,omitempty" yaml:"simple_geometry,omitempty"`
	ModelGeometry  []ModelGeometry  `xml:"ModelGeometry,omitempty" json:"modelGeometry,omitempty" yaml:"model_geometry,omitempty"`
}
