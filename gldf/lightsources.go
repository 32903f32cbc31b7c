package gldf

// PhotometryReference points at a photometry by ID.
type PhotometryReference struct {
	PhotometryID string `xml:"photometryId,attr" json:"photometryId" yaml:"photometry_id"`
}

// SpectrumReference points at a spectrum by ID.
type SpectrumReference struct {
	SpectrumID string `xml:"spectrumId,attr" json:"spectrumId" yaml:"spectrum_id"`
}

// ColorInformation holds colour quality data of a light source.
type ColorInformation struct {
	ColorRenderingIndex             *int                             `xml:"ColorRenderingIndex,omitempty" json:"colorRenderingIndex,omitempty" yaml:"color_rendering_index,omitempty"`
	CorrelatedColorTemperature      *int                             `xml:"CorrelatedColorTemperature,omitempty" json:"correlatedColorTemperature,omitempty" yaml:"correlated_color_temperature,omitempty"`
	ColorTemperatureAdjustingRange  *ColorTemperatureAdjustingRange  `xml:"ColorTemperatureAdjustingRange,omitempty" json:"colorTemperatureAdjustingRange,omitempty" yaml:"color_temperature_adjusting_range,omitempty"`
	Cie1931ColorAppearance          *Cie1931ColorAppearance          `xml:"Cie1931ColorAppearance,omitempty" json:"cie1931ColorAppearance,omitempty" yaml:"cie1931_color_appearance,omitempty"`
	InitialColorTolerance           string                           `xml:"InitialColorTolerance,omitempty" json:"initialColorTolerance,omitempty" yaml:"initial_color_tolerance,omitempty"`
	MaintainedColorTolerance        string                           `xml:"MaintainedColorTolerance,omitempty" json:"maintainedColorTolerance,omitempty" yaml:"maintained_color_tolerance,omitempty"`
	RatedChromacityCoordinateValues *RatedChromacityCoordinateValues `xml:"RatedChromacityCoordinateValues,omitempty" json:"ratedChromacityCoordinateValues,omitempty" yaml:"rated_chromacity_coordinate_values,omitempty"`
	TLCI                            *int                             `xml:"TLCI,omitempty" json:"tlci,omitempty" yaml:"tlci,omitempty"`
	IESTM3015                       *int                             `xml:"IES-TM-30-15,omitempty" json:"iesTm3015,omitempty" yaml:"ies_tm_30_15,omitempty"`
	MelanopicFactor                 *float64                         `xml:"MelanopicFactor,omitempty" json:"melanopicFactor,omitempty" yaml:"melanopic_factor,omitempty"`
}

// ColorTemperatureAdjustingRange bounds a tunable-white source.
type ColorTemperatureAdjustingRange struct {
	Lower int `xml:"Lower" json:"lower" yaml:"lower"`
	Upper int `xml:"Upper" json:"upper" yaml:"upper"`
}

// Cie1931ColorAppearance is a chromaticity point in the CIE 1931 space.
type Cie1931ColorAppearance struct {
	X *float64 `xml:"X,omitempty" json:"x,omitempty" yaml:"x,omitempty"`
	Y *float64 `xml:"Y,omitempty" json:"y,omitempty" yaml:"y,omitempty"`
}

// RatedChromacityCoordinateValues is the rated chromaticity point.
type RatedChromacityCoordinateValues struct {
	X *float64 `xml:"X,omitempty" json:"x,omitempty" yaml:"x,omitempty"`
	Y *float64 `xml:"Y,omitempty" json:"y,omitempty" yaml:"y,omitempty"`
}

// LightSourceImages carries product pictures of a light source.
type LightSourceImages struct {
	Image []Image `xml:"Image" json:"image" yaml:"image"`
}

// ChangeableLightSource is a replaceable lamp definition.
type ChangeableLightSource struct {
	ID                         string                  `xml:"id,attr" json:"id" yaml:"id"`
	Name                       LocaleText              `xml:"Name" json:"name" yaml:"name"`
	Description                LocaleText              `xml:"Description" json:"description" yaml:"description"`
	Manufacturer               string                  `xml:"Manufacturer,omitempty" json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	GTIN                       string                  `xml:"GTIN,omitempty" json:"gtin,omitempty" yaml:"gtin,omitempty"`
	RatedInputPower            *float64                `xml:"RatedInputPower,omitempty" json:"ratedInputPower,omitempty" yaml:"rated_input_power,omitempty"`
	RatedInputVoltage          *VoltageRange           `xml:"RatedInputVoltage,omitempty" json:"ratedInputVoltage,omitempty" yaml:"rated_input_voltage,omitempty"`
	PowerRange                 *PowerRange             `xml:"PowerRange,omitempty" json:"powerRange,omitempty" yaml:"power_range,omitempty"`
	LightSourcePositionOfUsage string                  `xml:"LightSourcePositionOfUsage,omitempty" json:"lightSourcePositionOfUsage,omitempty" yaml:"light_source_position_of_usage,omitempty"`
	EnergyLabels               *EnergyLabels           `xml:"EnergyLabels,omitempty" json:"energyLabels,omitempty" yaml:"energy_labels,omitempty"`
	SpectrumReference          *SpectrumReference      `xml:"SpectrumReference,omitempty" json:"spectrumReference,omitempty" yaml:"spectrum_reference,omitempty"`
	ColorInformation           *ColorInformation       `xml:"ColorInformation,omitempty" json:"colorInformation,omitempty" yaml:"color_information,omitempty"`
	LightSourceImages          *LightSourceImages      `xml:"LightSourceImages,omitempty" json:"lightSourceImages,omitempty" yaml:"light_source_images,omitempty"`
	ZVEI                       string                  `xml:"ZVEI,omitempty" json:"zvei,omitempty" yaml:"zvei,omitempty"`
	Socket                     string                  `xml:"Socket,omitempty" json:"socket,omitempty" yaml:"socket,omitempty"`
	ILCOS                      string                  `xml:"ILCOS,omitempty" json:"ilcos,omitempty" yaml:"ilcos,omitempty"`
	RatedLuminousFlux          *int                    `xml:"RatedLuminousFlux,omitempty" json:"ratedLuminousFlux,omitempty" yaml:"rated_luminous_flux,omitempty"`
	RatedLuminousFluxRGB       *int                    `xml:"RatedLuminousFluxRGB,omitempty" json:"ratedLuminousFluxRGB,omitempty" yaml:"rated_luminous_flux_rgb,omitempty"`
	PhotometryReference        *PhotometryReference    `xml:"PhotometryReference,omitempty" json:"photometryReference,omitempty" yaml:"photometry_reference,omitempty"`
	LightSourceMaintenance     *LightSourceMaintenance `xml:"LightSourceMaintenance,omitempty" json:"lightSourceMaintenance,omitempty" yaml:"light_source_maintenance,omitempty"`
}

// FixedLightSource is a built-in, non-replaceable light source.
type FixedLightSource struct {
	ID                         string                  `xml:"id,attr" json:"id" yaml:"id"`
	Name                       LocaleText              `xml:"Name" json:"name" yaml:"name"`
	Description                LocaleText              `xml:"Description" json:"description" yaml:"description"`
	Manufacturer               string                  `xml:"Manufacturer,omitempty" json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	GTIN                       string                  `xml:"GTIN,omitempty" json:"gtin,omitempty" yaml:"gtin,omitempty"`
	RatedInputPower            *float64                `xml:"RatedInputPower,omitempty" json:"ratedInputPower,omitempty" yaml:"rated_input_power,omitempty"`
	RatedInputVoltage          *VoltageRange           `xml:"RatedInputVoltage,omitempty" json:"ratedInputVoltage,omitempty" yaml:"rated_input_voltage,omitempty"`
	PowerRange                 *PowerRange             `xml:"PowerRange,omitempty" json:"powerRange,omitempty" yaml:"power_range,omitempty"`
	LightSourcePositionOfUsage string                  `xml:"LightSourcePositionOfUsage,omitempty" json:"lightSourcePositionOfUsage,omitempty" yaml:"light_source_position_of_usage,omitempty"`
	EnergyLabels               *EnergyLabels           `xml:"EnergyLabels,omitempty" json:"energyLabels,omitempty" yaml:"energy_labels,omitempty"`
	SpectrumReference          *SpectrumReference      `xml:"SpectrumReference,omitempty" json:"spectrumReference,omitempty" yaml:"spectrum_reference,omitempty"`
	ColorInformation           *ColorInformation       `xml:"ColorInformation,omitempty" json:"colorInformation,omitempty" yaml:"color_information,omitempty"`
	LightSourceImages          *LightSourceImages      `xml:"LightSourceImages,omitempty" json:"lightSourceImages,omitempty" yaml:"light_source_images,omitempty"`
	LightSourceMaintenance     *LightSourceMaintenance `xml:"LightSourceMaintenance,omitempty" json:"lightSourceMaintenance,omitempty" yaml:"light_source_maintenance,omitempty"`
	ZhagaStandard              *bool                   `xml:"ZhagaStandard,omitempty" json:"zhagaStandard,omitempty" yaml:"zhaga_standard,omitempty"`
}

// VoltageRange is a rated voltage span with its current type.
type VoltageRange struct {
	VoltageRange *VoltageRangeValues `xml:"VoltageRange,omitempty" json:"voltageRange,omitempty" yaml:"voltage_range,omitempty"`
	FixedVoltage *float64            `xml:"FixedVoltage,omitempty" json:"fixedVoltage,omitempty" yaml:"fixed_voltage,omitempty"`
	Type         string              `xml:"Type,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Frequency    string              `xml:"Frequency,omitempty" json:"frequency,omitempty" yaml:"frequency,omitempty"`
}

// VoltageRangeValues bounds a voltage range.
type VoltageRangeValues struct {
	Min float64 `xml:"Min" json:"min" yaml:"min"`
	Max float64 `xml:"Max" json:"max" yaml:"max"`
}

// PowerRange bounds a dimmable power span.
type PowerRange struct {
	Lower                   *float64 `xml:"Lower,omitempty" json:"lower,omitempty" yaml:"lower,omitempty"`
	Upper                   *float64 `xml:"Upper,omitempty" json:"upper,omitempty" yaml:"upper,omitempty"`
	DefaultLightSourcePower *float64 `xml:"DefaultLightSourcePower,omitempty" json:"defaultLightSourcePower,omitempty" yaml:"default_light_source_power,omitempty"`
}

// EnergyLabels lists regional efficiency labels.
type EnergyLabels struct {
	EnergyLabel []EnergyLabel `xml:"EnergyLabel" json:"energyLabel" yaml:"energy_label"`
}

// EnergyLabel is one regional efficiency class.
type EnergyLabel struct {
	Region string `xml:"region,attr" json:"region" yaml:"region"`
	Value  string `xml:",chardata" json:"value" yaml:"value"`
}

// LightSourceMaintenance captures lumen depreciation behaviour.
type LightSourceMaintenance struct {
	Lifetime                  *int                       `xml:"lifetime,attr,omitempty" json:"lifetime,omitempty" yaml:"lifetime,omitempty"`
	Cie97LampType             string                     `xml:"Cie97LampType,omitempty" json:"cie97LampType,omitempty" yaml:"cie97_lamp_type,omitempty"`
	CieLampMaintenanceFactors *CieLampMaintenanceFactors `xml:"CieLampMaintenanceFactors,omitempty" json:"cieLampMaintenanceFactors,omitempty" yaml:"cie_lamp_maintenance_factors,omitempty"`
	LedMaintenanceFactor      *LedMaintenanceFactor      `xml:"LedMaintenanceFactor,omitempty" json:"ledMaintenanceFactor,omitempty" yaml:"led_maintenance_factor,omitempty"`
}

// CieLampMaintenanceFactors lists CIE 97 maintenance factors over time.
type CieLampMaintenanceFactors struct {
	CieLampMaintenanceFactor []CieLampMaintenanceFactor `xml:"CieLampMaintenanceFactor" json:"cieLampMaintenanceFactor" yaml:"cie_lamp_maintenance_factor"`
}

// CieLampMaintenanceFactor is one point on the maintenance curve.
type CieLampMaintenanceFactor struct {
	BurningTime                int     `xml:"burningTime,attr" json:"burningTime" yaml:"burning_time"`
	LampLumenMaintenanceFactor float64 `xml:"LampLumenMaintenanceFactor" json:"lampLumenMaintenanceFactor" yaml:"lamp_lumen_maintenance_factor"`
	LampSurvivalFactor         float64 `xml:"LampSurvivalFactor" json:"lampSurvivalFactor" yaml:"lamp_survival_factor"`
}

// LedMaintenanceFactor is the LED lumen maintenance at a given hour mark.
type LedMaintenanceFactor struct {
	Hours int     `xml:"hours,attr" json:"hours" yaml:"hours"`
	Value float64 `xml:",chardata" json:"value" yaml:"value"`
}

// LightSources is the optional light source collection. Fixed and
// changeable sources share one ID namespace.
type LightSources struct {
	ChangeableLightSource []ChangeableLightSource `xml:"ChangeableLightSource,omitempty" json:"changeableLightSource,omitempty" yaml:"changeable_light_source,omitempty"`
	FixedLightSource      []FixedLightSource      `xml:"FixedLightSource,omitempty" json:"fixedLightSource,omitempty" yaml:"fixed_light_source,omitempty"`
}
