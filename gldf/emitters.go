package gldf

// LightSourceReference points an emitter at its light source. Exactly one
// of the two ID attributes is expected to be set.
type LightSourceReference struct {
	FixedLightSourceID      string `xml:"fixedLightSourceId,attr,omitempty" json:"fixedLightSourceId,omitempty" yaml:"fixed_light_source_id,omitempty"`
	ChangeableLightSourceID string `xml:"changeableLightSourceId,attr,omitempty" json:"changeableLightSourceId,omitempty" yaml:"changeable_light_source_id,omitempty"`
	LightSourceCount        *int   `xml:"lightSourceCount,attr,omitempty" json:"lightSourceCount,omitempty" yaml:"light_source_count,omitempty"`
}

// ControlGearReference points an emitter at its control gear.
type ControlGearReference struct {
	ControlGearID    string `xml:"controlGearId,attr" json:"controlGearId" yaml:"control_gear_id"`
	ControlGearCount *int   `xml:"controlGearCount,attr,omitempty" json:"controlGearCount,omitempty" yaml:"control_gear_count,omitempty"`
}

// Rotation orients an emitter within its geometry.
type Rotation struct {
	X  *float64 `xml:"X,omitempty" json:"x,omitempty" yaml:"x,omitempty"`
	Y  *float64 `xml:"Y,omitempty" json:"y,omitempty" yaml:"y,omitempty"`
	Z  *float64 `xml:"Z,omitempty" json:"z,omitempty" yaml:"z,omitempty"`
	G0 *float64 `xml:"G0,omitempty" json:"g0,omitempty" yaml:"g0,omitempty"`
}

// ChangeableLightEmitter emits with a replaceable light source.
type ChangeableLightEmitter struct {
	EmergencyBehaviour  string               `xml:"emergencyBehaviour,attr,omitempty" json:"emergencyBehaviour,omitempty" yaml:"emergency_behaviour,omitempty"`
	Name                *LocaleText          `xml:"Name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Rotation            *Rotation            `xml:"Rotation,omitempty" json:"rotation,omitempty" yaml:"rotation,omitempty"`
	PhotometryReference *PhotometryReference `xml:"PhotometryReference,omitempty" json:"photometryReference,omitempty" yaml:"photometry_reference,omitempty"`
}

// FixedLightEmitter emits with a built-in light source.
type FixedLightEmitter struct {
	EmergencyBehaviour          string                `xml:"emergencyBehaviour,attr,omitempty" json:"emergencyBehaviour,omitempty" yaml:"emergency_behaviour,omitempty"`
	Name                        *LocaleText           `xml:"Name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Rotation                    *Rotation             `xml:"Rotation,omitempty" json:"rotation,omitempty" yaml:"rotation,omitempty"`
	PhotometryReference         *PhotometryReference  `xml:"PhotometryReference,omitempty" json:"photometryReference,omitempty" yaml:"photometry_reference,omitempty"`
	LightSourceReference        *LightSourceReference `xml:"LightSourceReference,omitempty" json:"lightSourceReference,omitempty" yaml:"light_source_reference,omitempty"`
	ControlGearReference        *ControlGearReference `xml:"ControlGearReference,omitempty" json:"controlGearReference,omitempty" yaml:"control_gear_reference,omitempty"`
	RatedLuminousFlux           *int                  `xml:"RatedLuminousFlux,omitempty" json:"ratedLuminousFlux,omitempty" yaml:"rated_luminous_flux,omitempty"`
	RatedLuminousFluxRGB        *int                  `xml:"RatedLuminousFluxRGB,omitempty" json:"ratedLuminousFluxRGB,omitempty" yaml:"rated_luminous_flux_rgb,omitempty"`
	EmergencyBallastLumenFactor *float64              `xml:"EmergencyBallastLumenFactor,omitempty" json:"emergencyBallastLumenFactor,omitempty" yaml:"emergency_ballast_lumen_factor,omitempty"`
	EmergencyRatedLuminousFlux  *int                  `xml:"EmergencyRatedLuminousFlux,omitempty" json:"emergencyRatedLuminousFlux,omitempty" yaml:"emergency_rated_luminous_flux,omitempty"`
}

// SensorEmitter is a sensing-only emitter slot.
type SensorEmitter struct {
	Name            *LocaleText      `xml:"Name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Rotation        *Rotation        `xml:"Rotation,omitempty" json:"rotation,omitempty" yaml:"rotation,omitempty"`
	SensorReference *SensorReference `xml:"SensorReference,omitempty" json:"sensorReference,omitempty" yaml:"sensor_reference,omitempty"`
}

// SensorReference points a sensor emitter at its sensor definition.
type SensorReference struct {
	SensorID string `xml:"sensorId,attr" json:"sensorId" yaml:"sensor_id"`
}

// Emitter groups the light and sensor emitters addressable under one ID.
type Emitter struct {
	ID                     string                   `xml:"id,attr" json:"id" yaml:"id"`
	ChangeableLightEmitter []ChangeableLightEmitter `xml:"ChangeableLightEmitter,omitempty" json:"changeableLightEmitter,omitempty" yaml:"changeable_light_emitter,omitempty"`
	FixedLightEmitter      []FixedLightEmitter      `xml:"FixedLightEmitter,omitempty" json:"fixedLightEmitter,omitempty" yaml:"fixed_light_emitter,omitempty"`
	Sensor                 []SensorEmitter          `xml:"Sensor,omitempty" json:"sensor,omitempty" yaml:"sensor,omitempty"`
}

// Emitters is the optional emitter collection.
type Emitters struct {
	Emitter []Emitter `xml:"Emitter" json:"emitter" yaml:"emitter"`
}

// ControlGear is one driver or ballast definition.
type ControlGear struct {
	ID                            string        `xml:"id,attr" json:"id" yaml:"id"`
	Name                          LocaleText    `xml:"Name" json:"name" yaml:"name"`
	Description                   LocaleText    `xml:"Description" json:"description" yaml:"description"`
	NominalVoltage                *VoltageRange `xml:"NominalVoltage,omitempty" json:"nominalVoltage,omitempty" yaml:"nominal_voltage,omitempty"`
	StandbyPower                  *float64      `xml:"StandbyPower,omitempty" json:"standbyPower,omitempty" yaml:"standby_power,omitempty"`
	ConstantLightOutputStartPower *float64      `xml:"ConstantLightOutputStartPower,omitempty" json:"constantLightOutputStartPower,omitempty" yaml:"constant_light_output_start_power,omitempty"`
	ConstantLightOutputEndPower   *float64      `xml:"ConstantLightOutputEndPower,omitempty" json:"constantLightOutputEndPower,omitempty" yaml:"constant_light_output_end_power,omitempty"`
	PowerConsumptionControls      *float64      `xml:"PowerConsumptionControls,omitempty" json:"powerConsumptionControls,omitempty" yaml:"power_consumption_controls,omitempty"`
	Dimmable                      *bool         `xml:"Dimmable,omitempty" json:"dimmable,omitempty" yaml:"dimmable,omitempty"`
	ColorControllable             *bool         `xml:"ColorControllable,omitempty" json:"colorControllable,omitempty" yaml:"color_controllable,omitempty"`
	Interfaces                    *Interfaces   `xml:"Interfaces,omitempty" json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	EnergyLabels                  *EnergyLabels `xml:"EnergyLabels,omitempty" json:"energyLabels,omitempty" yaml:"energy_labels,omitempty"`
}

// Interfaces lists the control interfaces of a control gear.
type Interfaces struct {
	Interface []string `xml:"Interface" json:"interface" yaml:"interface"`
}

// ControlGears is the optional control gear collection.
type ControlGears struct {
	ControlGear []ControlGear `xml:"ControlGear" json:"controlGear" yaml:"control_gear"`
}

// Equipment couples a light source with a control gear for a variant.
type Equipment struct {
	ID                          string                `xml:"id,attr" json:"id" yaml:"id"`
	LightSourceReference        *LightSourceReference `xml:"LightSourceReference,omitempty" json:"lightSourceReference,omitempty" yaml:"light_source_reference,omitempty"`
	ControlGearReference        *ControlGearReference `xml:"ControlGearReference,omitempty" json:"controlGearReference,omitempty" yaml:"control_gear_reference,omitempty"`
	RatedInputPower             *float64              `xml:"RatedInputPower,omitempty" json:"ratedInputPower,omitempty" yaml:"rated_input_power,omitempty"`
	EmergencyBallastLumenFactor *float64              `xml:"EmergencyBallastLumenFactor,omitempty" json:"emergencyBallastLumenFactor,omitempty" yaml:"emergency_ballast_lumen_factor,omitempty"`
	RatedLuminousFlux           *int                  `xml:"RatedLuminousFlux,omitempty" json:"ratedLuminousFlux,omitempty" yaml:"rated_luminous_flux,omitempty"`
	EmergencyRatedLuminousFlux  *int                  `xml:"EmergencyRatedLuminousFlux,omitempty" json:"emergencyRatedLuminousFlux,omitempty" yaml:"emergency_rated_luminous_flux,omitempty"`
}

// Equipments is the optional equipment collection.
type Equipments struct {
	Equipment []Equipment `xml:"Equipment" json:"equipment" yaml:"equipment"`
}
