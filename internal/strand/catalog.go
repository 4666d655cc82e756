package strand

import (
	"fmt"
	"slices"
)

// Prestressing wire and strand table (NBR 7482 / NBR 7483 classes)

// Spec describes one prestressing wire or strand in the catalog
type Spec struct {
	ID    string `json:"id"`
	Label string `json:"label"` // class designation, e.g. "Cord. CP 190 RB"

	// Geometry
	DiameterMm   float64 `json:"diameter_mm"`     // nominal diameter (mm)
	AreaCm2      float64 `json:"area_cm2"`        // steel area (cm²)
	WeightKgPerM float64 `json:"weight_kg_per_m"` // linear mass (kg/m)

	// Strength (kgf/mm²)
	Fptk    float64 `json:"fptk"`     // characteristic tensile strength
	Fptk077 float64 `json:"fptk_077"` // 0.77 × fptk

	// Limits and stiffness
	MaxForceKgf    float64 `json:"max_force_kgf"`   // maximum tensioning force (kgf)
	ElasticModulus float64 `json:"elastic_modulus"` // E (kgf/mm²)
}

// DisplayName returns the label followed by the nominal diameter,
// e.g. "Cord. CP 190 RB Ø12.7"
func (s Spec) DisplayName() string {
	return fmt.Sprintf("%s Ø%g", s.Label, s.DiameterMm)
}

// catalog is never modified after init. Order is display order.
var catalog = []Spec{
	{
		ID:             "Fio_7.0",
		Label:          "Fio CP 170 RB",
		DiameterMm:     7.0,
		AreaCm2:        0.385,
		WeightKgPerM:   0.302,
		Fptk:           1700,
		Fptk077:        1309,
		MaxForceKgf:    5039.65,
		ElasticModulus: 21000,
	},
	{
		ID:             "Fio_4.0",
		Label:          "Fio CP 175 RB",
		DiameterMm:     4.0,
		AreaCm2:        0.1260,
		WeightKgPerM:   0.099,
		Fptk:           1750,
		Fptk077:        1347.5,
		MaxForceKgf:    1697.85,
		ElasticModulus: 21000,
	},
	{
		ID:             "Fio_5.0",
		Label:          "Fio CP 175 RB",
		DiameterMm:     5.0,
		AreaCm2:        0.1960,
		WeightKgPerM:   0.154,
		Fptk:           1750,
		Fptk077:        1347.5,
		MaxForceKgf:    2641.1,
		ElasticModulus: 21000,
	},
	{
		ID:             "Fio_6.0",
		Label:          "Fio CP 175 RB",
		DiameterMm:     6.0,
		AreaCm2:        0.2830,
		WeightKgPerM:   0.222,
		Fptk:           1750,
		Fptk077:        1347.5,
		MaxForceKgf:    3813.425,
		ElasticModulus: 21000,
	},
	{
		ID:             "Cord_9.5",
		Label:          "Cord. CP 190 RB",
		DiameterMm:     9.5,
		AreaCm2:        0.56,
		WeightKgPerM:   0.441,
		Fptk:           1900,
		Fptk077:        1463,
		MaxForceKgf:    8192.8,
		ElasticModulus: 19600,
	},
	{
		ID:             "Cord_12.7",
		Label:          "Cord. CP 190 RB",
		DiameterMm:     12.7,
		AreaCm2:        1.00,
		WeightKgPerM:   0.792,
		Fptk:           1900,
		Fptk077:        1463,
		MaxForceKgf:    14630,
		ElasticModulus: 19600,
	},
	{
		ID:             "Cord_15.2",
		Label:          "Cord. CP 190 RB",
		DiameterMm:     15.2,
		AreaCm2:        1.43,
		WeightKgPerM:   1.126,
		Fptk:           1900,
		Fptk077:        1463,
		MaxForceKgf:    20920.9,
		ElasticModulus: 19600,
	},
}

// All returns every catalog entry in display order.
// The returned slice is a copy and may be modified by the caller.
func All() []Spec {
	return slices.Clone(catalog)
}

// IDs returns the catalog identifiers in display order
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, s := range catalog {
		ids[i] = s.ID
	}
	return ids
}

// Find looks up a catalog entry by its exact identifier.
// The boolean is false when no entry matches.
func Find(id string) (Spec, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Spec{}, false
}
