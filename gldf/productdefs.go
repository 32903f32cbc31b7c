package gldf

// ProductDefinitions is the product-facing half of the document: shared
// metadata plus the sellable variants.
type ProductDefinitions struct {
	ProductMetaData *ProductMetaData `xml:"ProductMetaData,omitempty" json:"productMetaData,omitempty" yaml:"product_meta_data,omitempty"`
	Variants        *Variants        `xml:"Variants,omitempty" json:"variants,omitempty" yaml:"variants,omitempty"`
}

// ProductMetaData carries the descriptive data shared by all variants.
type ProductMetaData struct {
	ProductNumber         *LocaleText            `xml:"ProductNumber,omitempty" json:"productNumber,omitempty" yaml:"product_number,omitempty"`
	Name                  *LocaleText            `xml:"Name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Description           *LocaleText            `xml:"Description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	TenderText            *LocaleText            `xml:"TenderText,omitempty" json:"tenderText,omitempty" yaml:"tender_text,omitempty"`
	ProductSeries         *ProductSeries         `xml:"ProductSeries,omitempty" json:"productSeries,omitempty" yaml:"product_series,omitempty"`
	Pictures              *Images                `xml:"Pictures,omitempty" json:"pictures,omitempty" yaml:"pictures,omitempty"`
	LuminaireMaintenance  *LuminaireMaintenance  `xml:"LuminaireMaintenance,omitempty" json:"luminaireMaintenance,omitempty" yaml:"luminaire_maintenance,omitempty"`
	DescriptiveAttributes *DescriptiveAttributes `xml:"DescriptiveAttributes,omitempty" json:"descriptiveAttributes,omitempty" yaml:"descriptive_attributes,omitempty"`
}

// ProductSerie is one product family entry.
type ProductSerie struct {
	ID          string      `xml:"id,attr,omitempty" json:"id,omitempty" yaml:"id,omitempty"`
	Name        *LocaleText `xml:"Name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Description *LocaleText `xml:"Description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Pictures    *Images     `xml:"Pictures,omitempty" json:"pictures,omitempty" yaml:"pictures,omitempty"`
	Hyperlinks  *Hyperlinks `xml:"Hyperlinks,omitempty" json:"hyperlinks,omitempty" yaml:"hyperlinks,omitempty"`
}

// ProductSeries lists the product families a product belongs to.
type ProductSeries struct {
	ProductSerie []ProductSerie `xml:"ProductSerie" json:"productSerie" yaml:"product_serie"`
}

// LuminaireMaintenanceFactor is one point on a maintenance curve.
type LuminaireMaintenanceFactor struct {
	Years         *int   `xml:"years,attr,omitempty" json:"years,omitempty" yaml:"years,omitempty"`
	RoomCondition string `xml:"roomCondition,attr,omitempty" json:"roomCondition,omitempty" yaml:"room_condition,omitempty"`
	Value         string `xml:",chardata" json:"value" yaml:"value"`
}

// CieLuminaireMaintenanceFactors groups CIE maintenance factors.
type CieLuminaireMaintenanceFactors struct {
	LuminaireMaintenanceFactor []LuminaireMaintenanceFactor `xml:"LuminaireMaintenanceFactor" json:"luminaireMaintenanceFactor" yaml:"luminaire_maintenance_factor"`
}

// LuminaireDirtDepreciation is one IES dirt depreciation factor.
type LuminaireDirtDepreciation struct {
	Years         int     `xml:"years,attr" json:"years" yaml:"years"`
	RoomCondition string  `xml:"roomCondition,attr,omitempty" json:"roomCondition,omitempty" yaml:"room_condition,omitempty"`
	Value         float64 `xml:",chardata" json:"value" yaml:"value"`
}

// IesLuminaireLightLossFactors groups IES light loss factors.
type IesLuminaireLightLossFactors struct {
	LuminaireDirtDepreciation []LuminaireDirtDepreciation `xml:"LuminaireDirtDepreciation" json:"luminaireDirtDepreciation" yaml:"luminaire_dirt_depreciation"`
}

// JiegMaintenanceFactors groups JIEG maintenance factors.
type JiegMaintenanceFactors struct {
	LuminaireMaintenanceFactor []LuminaireMaintenanceFactor `xml:"LuminaireMaintenanceFactor" json:"luminaireMaintenanceFactor" yaml:"luminaire_maintenance_factor"`
}

// LuminaireMaintenance captures whole-luminaire depreciation data.
type LuminaireMaintenance struct {
	Cie97LuminaireType             string                          `xml:"Cie97LuminaireType,omitempty" json:"cie97LuminaireType,omitempty" yaml:"cie97_luminaire_type,omitempty"`
	CieLuminaireMaintenanceFactors *CieLuminaireMaintenanceFactors `xml:"CieLuminaireMaintenanceFactors,omitempty" json:"cieLuminaireMaintenanceFactors,omitempty" yaml:"cie_luminaire_maintenance_factors,omitempty"`
	IesLuminaireLightLossFactors   *IesLuminaireLightLossFactors   `xml:"IesLuminaireLightLossFactors,omitempty" json:"iesLuminaireLightLossFactors,omitempty" yaml:"ies_luminaire_light_loss_factors,omitempty"`
	JiegMaintenanceFactors         *JiegMaintenanceFactors         `xml:"JiegMaintenanceFactors,omitempty" json:"jiegMaintenanceFactors,omitempty" yaml:"jieg_maintenance_factors,omitempty"`
}

// RectangularCutout is a rectangular recess cutout in millimetres.
type RectangularCutout struct {
	Width  int `xml:"Width" json:"width" yaml:"width"`
	Length int `xml:"Length" json:"length" yaml:"length"`
	Depth  int `xml:"Depth" json:"depth" yaml:"depth"`
}

// CircularCutout is a circular recess cutout in millimetres.
type CircularCutout struct {
	Diameter int `xml:"Diameter" json:"diameter" yaml:"diameter"`
	Depth    int `xml:"Depth" json:"depth" yaml:"depth"`
}

// Recessed describes a recessed mounting.
type Recessed struct {
	RecessedDepth     int                `xml:"recessedDepth,attr" json:"recessedDepth" yaml:"recessed_depth"`
	RectangularCutout *RectangularCutout `xml:"RectangularCutout,omitempty" json:"rectangularCutout,omitempty" yaml:"rectangular_cutout,omitempty"`
	CircularCutout    *CircularCutout    `xml:"CircularCutout,omitempty" json:"circularCutout,omitempty" yaml:"circular_cutout,omitempty"`
}

// SurfaceMounted marks a surface mounting without further parameters.
type SurfaceMounted struct{}

// Pendant describes a pendant mounting.
type Pendant struct {
	PendantLength float64 `xml:"pendantLength,omitempty" json:"pendantLength,omitempty" yaml:"pendant_length,omitempty"`
}

// Ceiling groups the ceiling mounting options.
type Ceiling struct {
	Recessed       *Recessed       `xml:"Recessed,omitempty" json:"recessed,omitempty" yaml:"recessed,omitempty"`
	SurfaceMounted *SurfaceMounted `xml:"SurfaceMounted,omitempty" json:"surfaceMounted,omitempty" yaml:"surface_mounted,omitempty"`
	Pendant        *Pendant        `xml:"Pendant,omitempty" json:"pendant,omitempty" yaml:"pendant,omitempty"`
}

// Wall groups the wall mounting options.
type Wall struct {
	MountingHeight int             `xml:"mountingHeight,attr,omitempty" json:"mountingHeight,omitempty" yaml:"mounting_height,omitempty"`
	Recessed       *Recessed       `xml:"Recessed,omitempty" json:"recessed,omitempty" yaml:"recessed,omitempty"`
	SurfaceMounted *SurfaceMounted `xml:"SurfaceMounted,omitempty" json:"surfaceMounted,omitempty" yaml:"surface_mounted,omitempty"`
}

// FreeStanding marks a free-standing mounting without parameters.
type FreeStanding struct{}

// WorkingPlane groups the working-plane mounting options.
type WorkingPlane struct {
	FreeStanding *FreeStanding `xml:"FreeStanding,omitempty" json:"freeStanding,omitempty" yaml:"free_standing,omitempty"`
}

// PoleTop is a pole-top mounting with its pole height in millimetres.
type PoleTop struct {
	PoleHeight int `xml:"poleHeight,attr,omitempty" json:"poleHeight,omitempty" yaml:"pole_height,omitempty"`
}

// PoleIntegrated is a pole-integrated mounting.
type PoleIntegrated struct {
	PoleHeight int `xml:"poleHeight,attr,omitempty" json:"poleHeight,omitempty" yaml:"pole_height,omitempty"`
}

// Ground groups the ground mounting options.
type Ground struct {
	PoleTop        *PoleTop        `xml:"PoleTop,omitempty" json:"poleTop,omitempty" yaml:"pole_top,omitempty"`
	PoleIntegrated *PoleIntegrated `xml:"PoleIntegrated,omitempty" json:"poleIntegrated,omitempty" yaml:"pole_integrated,omitempty"`
	FreeStanding   *FreeStanding   `xml:"FreeStanding,omitempty" json:"freeStanding,omitempty" yaml:"free_standing,omitempty"`
	SurfaceMounted *SurfaceMounted `xml:"SurfaceMounted,omitempty" json:"surfaceMounted,omitempty" yaml:"surface_mounted,omitempty"`
	Recessed       *Recessed       `xml:"Recessed,omitempty" json:"recessed,omitempty" yaml:"recessed,omitempty"`
}

// Mountings lists where a variant may be installed.
type Mountings struct {
	Ceiling      *Ceiling      `xml:"Ceiling,omitempty" json:"ceiling,omitempty" yaml:"ceiling,omitempty"`
	Wall         *Wall         `xml:"Wall,omitempty" json:"wall,omitempty" yaml:"wall,omitempty"`
	WorkingPlane *WorkingPlane `xml:"WorkingPlane,omitempty" json:"workingPlane,omitempty" yaml:"working_plane,omitempty"`
	Ground       *Ground       `xml:"Ground,omitempty" json:"ground,omitempty" yaml:"ground,omitempty"`
}

// EmitterReference binds an emitter to a named object inside a 3D model.
type EmitterReference struct {
	EmitterID                 string `xml:"emitterId,attr" json:"emitterId" yaml:"emitter_id"`
	EmitterObjectExternalName string `xml:"EmitterObjectExternalName" json:"emitterObjectExternalName" yaml:"emitter_object_external_name"`
}

// SimpleGeometryReference binds one emitter to a simple geometry.
type SimpleGeometryReference struct {
	GeometryID string `xml:"geometryId,attr" json:"geometryId" yaml:"geometry_id"`
	EmitterID  string `xml:"emitterId,attr" json:"emitterId" yaml:"emitter_id"`
}

// ModelGeometryReference binds emitters to objects of a model geometry.
type ModelGeometryReference struct {
	GeometryID       string             `xml:"geometryId,attr" json:"geometryId" yaml:"geometry_id"`
	EmitterReference []EmitterReference `xml:"EmitterReference" json:"emitterReference" yaml:"emitter_reference"`
}

// VariantGeometry selects the geometry of a variant. At most one of the
// two references is set.
type VariantGeometry struct {
	SimpleGeometryReference *SimpleGeometryReference `xml:"SimpleGeometryReference,omitempty" json:"simpleGeometryReference,omitempty" yaml:"simple_geometry_reference,omitempty"`
	ModelGeometryReference  *ModelGeometryReference  `xml:"ModelGeometryReference,omitempty" json:"modelGeometryReference,omitempty" yaml:"model_geometry_reference,omitempty"`
}

// Symbol points a variant at its planning symbol file.
type Symbol struct {
	FileID string `xml:"fileId,attr" json:"fileId" yaml:"file_id"`
}

// Variant is one orderable configuration of the product.
type Variant struct {
	ID                    string                 `xml:"id,attr" json:"id" yaml:"id"`
	SortOrder             *int                   `xml:"sortOrder,attr,omitempty" json:"sortOrder,omitempty" yaml:"sort_order,omitempty"`
	ProductNumber         *LocaleText            `xml:"ProductNumber,omitempty" json:"productNumber,omitempty" yaml:"product_number,omitempty"`
	Name                  *LocaleText            `xml:"Name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Description           *LocaleText            `xml:"Description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	TenderText            *LocaleText            `xml:"TenderText,omitempty" json:"tenderText,omitempty" yaml:"tender_text,omitempty"`
	GTIN                  string                 `xml:"GTIN,omitempty" json:"gtin,omitempty" yaml:"gtin,omitempty"`
	Mountings             *Mountings             `xml:"Mountings,omitempty" json:"mountings,omitempty" yaml:"mountings,omitempty"`
	Geometry              *VariantGeometry       `xml:"Geometry,omitempty" json:"geometry,omitempty" yaml:"geometry,omitempty"`
	ProductSeries         *ProductSeries         `xml:"ProductSeries,omitempty" json:"productSeries,omitempty" yaml:"product_series,omitempty"`
	Pictures              *Images                `xml:"Pictures,omitempty" json:"pictures,omitempty" yaml:"pictures,omitempty"`
	Symbol                *Symbol                `xml:"Symbol,omitempty" json:"symbol,omitempty" yaml:"symbol,omitempty"`
	DescriptiveAttributes *DescriptiveAttributes `xml:"DescriptiveAttributes,omitempty" json:"descriptiveAttributes,omitempty" yaml:"descriptive_attributes,omitempty"`
}

// Variants is the optional variant collection.
type Variants struct {
	Variant []Variant `xml:"Variant" json:"variant" yaml:"variant"`
}

// ProductSize is the overall bounding size in millimetres.
type ProductSize struct {
	Length int `xml:"Length" json:"length" yaml:"length"`
	Width  int `xml:"Width" json:"width" yaml:"width"`
	Height int `xml:"Height" json:"height" yaml:"height"`
}

// Adjustabilities lists the adjustable axes of the luminaire.
type Adjustabilities struct {
	Adjustability []string `xml:"Adjustability" json:"adjustability" yaml:"adjustability"`
}

// ProtectiveAreas lists safety areas the luminaire is approved for.
type ProtectiveAreas struct {
	Area []string `xml:"Area" json:"area" yaml:"area"`
}

// Mechanical attributes of the luminaire body.
type Mechanical struct {
	ProductSize     *ProductSize     `xml:"ProductSize,omitempty" json:"productSize,omitempty" yaml:"product_size,omitempty"`
	ProductForm     string           `xml:"ProductForm,omitempty" json:"productForm,omitempty" yaml:"product_form,omitempty"`
	SealingMaterial *LocaleText      `xml:"SealingMaterial,omitempty" json:"sealingMaterial,omitempty" yaml:"sealing_material,omitempty"`
	Adjustabilities *Adjustabilities `xml:"Adjustabilities,omitempty" json:"adjustabilities,omitempty" yaml:"adjustabilities,omitempty"`
	IKRating        string           `xml:"IKRating,omitempty" json:"ikRating,omitempty" yaml:"ik_rating,omitempty"`
	ProtectiveAreas *ProtectiveAreas `xml:"ProtectiveAreas,omitempty" json:"protectiveAreas,omitempty" yaml:"protective_areas,omitempty"`
	Weight          *float64         `xml:"Weight,omitempty" json:"weight,omitempty" yaml:"weight,omitempty"`
}

// ClampingRange bounds the terminal wire cross-section.
type ClampingRange struct {
	Lower float64 `xml:"Lower" json:"lower" yaml:"lower"`
	Upper float64 `xml:"Upper" json:"upper" yaml:"upper"`
}

// Electrical attributes of the luminaire.
type Electrical struct {
	ClampingRange           *ClampingRange `xml:"ClampingRange,omitempty" json:"clampingRange,omitempty" yaml:"clamping_range,omitempty"`
	SwitchingCapacity       string         `xml:"SwitchingCapacity,omitempty" json:"switchingCapacity,omitempty" yaml:"switching_capacity,omitempty"`
	ElectricalSafetyClass   string         `xml:"ElectricalSafetyClass,omitempty" json:"electricalSafetyClass,omitempty" yaml:"electrical_safety_class,omitempty"`
	IngressProtectionIPCode string         `xml:"IngressProtectionIPCode,omitempty" json:"ingressProtectionIPCode,omitempty" yaml:"ingress_protection_ip_code,omitempty"`
	PowerFactor             *float64       `xml:"PowerFactor,omitempty" json:"powerFactor,omitempty" yaml:"power_factor,omitempty"`
	ConstantLightOutput     *bool          `xml:"ConstantLightOutput,omitempty" json:"constantLightOutput,omitempty" yaml:"constant_light_output,omitempty"`
	LightDistribution       string         `xml:"LightDistribution,omitempty" json:"lightDistribution,omitempty" yaml:"light_distribution,omitempty"`
}

// Flux is an emergency luminous flux at a given burn duration.
type Flux struct {
	Hours int `xml:"hours,attr" json:"hours" yaml:"hours"`
	Value int `xml:",chardata" json:"value" yaml:"value"`
}

// DurationTimeAndFlux lists emergency flux values over time.
type DurationTimeAndFlux struct {
	Flux []Flux `xml:"Flux" json:"flux" yaml:"flux"`
}

// Emergency attributes of the luminaire.
type Emergency struct {
	DurationTimeAndFlux            *DurationTimeAndFlux `xml:"DurationTimeAndFlux,omitempty" json:"durationTimeAndFlux,omitempty" yaml:"duration_time_and_flux,omitempty"`
	DedicatedEmergencyLightingType string               `xml:"DedicatedEmergencyLightingType,omitempty" json:"dedicatedEmergencyLightingType,omitempty" yaml:"dedicated_emergency_lighting_type,omitempty"`
}

// ListPrice is one price with its currency.
type ListPrice struct {
	Currency string  `xml:"currency,attr,omitempty" json:"currency,omitempty" yaml:"currency,omitempty"`
	Value    float64 `xml:",chardata" json:"value" yaml:"value"`
}

// ListPrices lists prices per currency.
type ListPrices struct {
	ListPrice []ListPrice `xml:"ListPrice" json:"listPrice" yaml:"list_price"`
}

// HousingColor is a housing colour, optionally with its RAL number.
type HousingColor struct {
	RAL      *int   `xml:"ral,attr,omitempty" json:"ral,omitempty" yaml:"ral,omitempty"`
	Language string `xml:"language,attr,omitempty" json:"language,omitempty" yaml:"language,omitempty"`
	Value    string `xml:",chardata" json:"value" yaml:"value"`
}

// HousingColors lists available housing colours.
type HousingColors struct {
	HousingColor []HousingColor `xml:"HousingColor" json:"housingColor" yaml:"housing_color"`
}

// Markets lists the regions the product is sold in.
type Markets struct {
	Region []Locale `xml:"Region" json:"region" yaml:"region"`
}

// ApprovalMarks lists certification marks.
type ApprovalMarks struct {
	ApprovalMark []string `xml:"ApprovalMark" json:"approvalMark" yaml:"approval_mark"`
}

// DesignAwards lists design awards.
type DesignAwards struct {
	DesignAward []string `xml:"DesignAward" json:"designAward" yaml:"design_award"`
}

// Labels lists marketing labels.
type Labels struct {
	Label []string `xml:"Label" json:"label" yaml:"label"`
}

// Applications lists intended application areas.
type Applications struct {
	Application []string `xml:"Application" json:"application" yaml:"application"`
}

// Marketing attributes of the product.
type Marketing struct {
	ListPrices    *ListPrices    `xml:"ListPrices,omitempty" json:"listPrices,omitempty" yaml:"list_prices,omitempty"`
	HousingColors *HousingColors `xml:"HousingColors,omitempty" json:"housingColors,omitempty" yaml:"housing_colors,omitempty"`
	Markets       *Markets       `xml:"Markets,omitempty" json:"markets,omitempty" yaml:"markets,omitempty"`
	Hyperlinks    *Hyperlinks    `xml:"Hyperlinks,omitempty" json:"hyperlinks,omitempty" yaml:"hyperlinks,omitempty"`
	Designer      string         `xml:"Designer,omitempty" json:"designer,omitempty" yaml:"designer,omitempty"`
	ApprovalMarks *ApprovalMarks `xml:"ApprovalMarks,omitempty" json:"approvalMarks,omitempty" yaml:"approval_marks,omitempty"`
	DesignAwards  *DesignAwards  `xml:"DesignAwards,omitempty" json:"designAwards,omitempty" yaml:"design_awards,omitempty"`
	Labels        *Labels        `xml:"Labels,omitempty" json:"labels,omitempty" yaml:"labels,omitempty"`
	Applications  *Applications  `xml:"Applications,omitempty" json:"applications,omitempty" yaml:"applications,omitempty"`
}

// UsefulLifeTimes lists rated useful life codes.
type UsefulLifeTimes struct {
	UsefulLife []string `xml:"UsefulLife" json:"usefulLife" yaml:"useful_life"`
}

// MedianUsefulLifeTimes lists median useful life codes.
type MedianUsefulLifeTimes struct {
	MedianUsefulLife []string `xml:"MedianUsefulLife" json:"medianUsefulLife" yaml:"median_useful_life"`
}

// TemperatureRange bounds a temperature span in degrees Celsius.
type TemperatureRange struct {
	Lower int `xml:"Lower" json:"lower" yaml:"lower"`
	Upper int `xml:"Upper" json:"upper" yaml:"upper"`
}

// AbsorptionRate is an acoustic absorption value at one frequency.
type AbsorptionRate struct {
	Hertz int     `xml:"hertz,attr" json:"hertz" yaml:"hertz"`
	Value float64 `xml:",chardata" json:"value" yaml:"value"`
}

// AcousticAbsorptionRates lists acoustic absorption per frequency.
type AcousticAbsorptionRates struct {
	AbsorptionRate []AbsorptionRate `xml:"AbsorptionRate" json:"absorptionRate" yaml:"absorption_rate"`
}

// OperationsAndMaintenance attributes of the product.
type OperationsAndMaintenance struct {
	UsefulLifeTimes         *UsefulLifeTimes         `xml:"UsefulLifeTimes,omitempty" json:"usefulLifeTimes,omitempty" yaml:"useful_life_times,omitempty"`
	MedianUsefulLifeTimes   *MedianUsefulLifeTimes   `xml:"MedianUsefulLifeTimes,omitempty" json:"medianUsefulLifeTimes,omitempty" yaml:"median_useful_life_times,omitempty"`
	OperatingTemperature    *TemperatureRange        `xml:"OperatingTemperature,omitempty" json:"operatingTemperature,omitempty" yaml:"operating_temperature,omitempty"`
	AmbientTemperature      *TemperatureRange        `xml:"AmbientTemperature,omitempty" json:"ambientTemperature,omitempty" yaml:"ambient_temperature,omitempty"`
	RatedAmbientTemperature *int                     `xml:"RatedAmbientTemperature,omitempty" json:"ratedAmbientTemperature,omitempty" yaml:"rated_ambient_temperature,omitempty"`
	AcousticAbsorptionRates *AcousticAbsorptionRates `xml:"AcousticAbsorptionRates,omitempty" json:"acousticAbsorptionRates,omitempty" yaml:"acoustic_absorption_rates,omitempty"`
}

// FileReference points a custom property at a file.
type FileReference struct {
	FileID string `xml:"fileId,attr" json:"fileId" yaml:"file_id"`
}

// Property is one vendor-defined attribute.
type Property struct {
	ID             string         `xml:"id,attr,omitempty" json:"id,omitempty" yaml:"id,omitempty"`
	Name           *Locale        `xml:"Name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	PropertySource string         `xml:"PropertySource,omitempty" json:"propertySource,omitempty" yaml:"property_source,omitempty"`
	Value          string         `xml:"Value,omitempty" json:"value,omitempty" yaml:"value,omitempty"`
	FileReference  *FileReference `xml:"FileReference,omitempty" json:"fileReference,omitempty" yaml:"file_reference,omitempty"`
}

// CustomProperties lists vendor-defined attributes.
type CustomProperties struct {
	Property []Property `xml:"Property" json:"property" yaml:"property"`
}

// DescriptiveAttributes groups product attributes by concern.
type DescriptiveAttributes struct {
	Mechanical               *Mechanical               `xml:"Mechanical,omitempty" json:"mechanical,omitempty" yaml:"mechanical,omitempty"`
	Electrical               *Electrical               `xml:"Electrical,omitempty" json:"electrical,omitempty" yaml:"electrical,omitempty"`
	Emergency                *Emergency                `xml:"Emergency,omitempty" json:"emergency,omitempty" yaml:"emergency,omitempty"`
	Marketing                *Marketing                `xml:"Marketing,omitempty" json:"marketing,omitempty" yaml:"marketing,omitempty"`
	OperationsAndMaintenance *OperationsAndMaintenance `xml:"OperationsAndMaintenance,omitempty" json:"operationsAndMaintenance,omitempty" yaml:"operations_and_maintenance,omitempty"`
	CustomProperties         *CustomProperties         `xml:"CustomProperties,omitempty" json:"customProperties,omitempty" yaml:"custom_properties,omitempty"`
}
