package gldf

// PhotometryFileReference points a photometry at its distribution file.
type PhotometryFileReference struct {
	FileID string `xml:"fileId,attr" json:"fileId" yaml:"file_id"`
}

// TenthPeakDivergence holds beam divergence at one tenth of peak intensity.
type TenthPeakDivergence struct {
	C0C180  *float64 `xml:"C0-C180,omitempty" json:"c0c180,omitempty" yaml:"c0_c180,omitempty"`
	C90C270 *float64 `xml:"C90-C270,omitempty" json:"c90c270,omitempty" yaml:"c90_c270,omitempty"`
}

// HalfPeakDivergence holds beam divergence at half of peak intensity.
type HalfPeakDivergence struct {
	C0C180  *float64 `xml:"C0-C180,omitempty" json:"c0c180,omitempty" yaml:"c0_c180,omitempty"`
	C90C270 *float64 `xml:"C90-C270,omitempty" json:"c90c270,omitempty" yaml:"c90_c270,omitempty"`
}

// DescriptivePhotometry carries summary photometric quantities that viewers
// can show without parsing the distribution file itself.
type DescriptivePhotometry struct {
	LuminaireLuminance       *int                 `xml:"LuminaireLuminance,omitempty" json:"luminaireLuminance,omitempty" yaml:"luminaire_luminance,omitempty"`
	LightOutputRatio         *float64             `xml:"LightOutputRatio,omitempty" json:"lightOutputRatio,omitempty" yaml:"light_output_ratio,omitempty"`
	LuminousEfficacy         *float64             `xml:"LuminousEfficacy,omitempty" json:"luminousEfficacy,omitempty" yaml:"luminous_efficacy,omitempty"`
	DownwardFluxFraction     *float64             `xml:"DownwardFluxFraction,omitempty" json:"downwardFluxFraction,omitempty" yaml:"downward_flux_fraction,omitempty"`
	DownwardLightOutputRatio *float64             `xml:"DownwardLightOutputRatio,omitempty" json:"downwardLightOutputRatio,omitempty" yaml:"downward_light_output_ratio,omitempty"`
	UpwardLightOutputRatio   *float64             `xml:"UpwardLightOutputRatio,omitempty" json:"upwardLightOutputRatio,omitempty" yaml:"upward_light_output_ratio,omitempty"`
	TenthPeakDivergence      *TenthPeakDivergence `xml:"TenthPeakDivergence,omitempty" json:"tenthPeakDivergence,omitempty" yaml:"tenth_peak_divergence,omitempty"`
	HalfPeakDivergence       *HalfPeakDivergence  `xml:"HalfPeakDivergence,omitempty" json:"halfPeakDivergence,omitempty" yaml:"half_peak_divergence,omitempty"`
	PhotometricCode          string               `xml:"PhotometricCode,omitempty" json:"photometricCode,omitempty" yaml:"photometric_code,omitempty"`
	CIEFluxCode              string               `xml:"CIE-FluxCode,omitempty" json:"cieFluxCode,omitempty" yaml:"cie_flux_code,omitempty"`
	CutOffAngle              *float64             `xml:"CutOffAngle,omitempty" json:"cutOffAngle,omitempty" yaml:"cut_off_angle,omitempty"`
}

// Photometry is one light-distribution definition.
type Photometry struct {
	ID                      string                   `xml:"id,attr" json:"id" yaml:"id"`
	PhotometryFileReference *PhotometryFileReference `xml:"PhotometryFileReference,omitempty" json:"photometryFileReference,omitempty" yaml:"photometry_file_reference,omitempty"`
	DescriptivePhotometry   *DescriptivePhotometry   `xml:"DescriptivePhotometry,omitempty" json:"descriptivePhotometry,omitempty" yaml:"descriptive_photometry,omitempty"`
}

// Photometries is the optional photometry collection.
type Photometries struct {
	Photometry []Photometry `xml:"Photometry" json:"photometry" yaml:"photometry"`
}

// SpectrumFileReference points a spectrum at its data file.
type SpectrumFileReference struct {
	FileID string `xml:"fileId,attr" json:"fileId" yaml:"file_id"`
}

// Spectrum is one spectral power distribution definition.
type Spectrum struct {
	ID                    string                 `xml:"id,attr" json:"id" yaml:"id"`
	SpectrumFileReference *SpectrumFileReference `xml:"SpectrumFileReference,omitempty" json:"spectrumFileReference,omitempty" yaml:"spectrum_file_reference,omitempty"`
}

// Spectrums is the optional spectrum collection.
type Spectrums struct {
	Spectrum []Spectrum `xml:"Spectrum" json:"spectrum" yaml:"spectrum"`
}

// SensorFileReference points a sensor at its characteristics file.
type SensorFileReference struct {
	FileID string `xml:"fileId,attr" json:"fileId" yaml:"file_id"`
}

// Sensor is one sensor definition.
type Sensor struct {
	ID                  string               `xml:"id,attr" json:"id" yaml:"id"`
	SensorFileReference *SensorFileReference `xml:"SensorFileReference,omitempty" json:"sensorFileReference,omitempty" yaml:"sensor_file_reference,omitempty"`
}

// Sensors is the optional sensor collection.
type Sensors struct {
	Sensor []Sensor `xml:"Sensor" json:"sensor" yaml:"sensor"`
}
