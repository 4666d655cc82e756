package elongation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gostrand/internal/strand"
)

// Result holds one successful calculation
type Result struct {
	Spec             strand.Spec `json:"spec"`
	AppliedForceKgf  float64     `json:"applied_force_kgf"`
	ElongationCmPerM float64     `json:"elongation_cm_per_m"`
}

// Compute returns the elongation (cm/m) of spec under forceKgf.
//
//	ΔL/m = Fp / (A × E)
//
// with A in cm² and E in kgf/mm²; the unit factors cancel to cm per meter.
func Compute(spec strand.Spec, forceKgf float64) float64 {
	return forceKgf / (spec.AreaCm2 * spec.ElasticModulus)
}

// Calculate validates a material id and a user-typed force, then computes
// the elongation. Checks run in order and the first failure is returned:
// missing material, missing force, unparseable force, non-positive force,
// unknown material, force above the strand's maximum. A force equal to the
// maximum is accepted.
func Calculate(materialID, rawForce string) (*Result, error) {
	if materialID == "" {
		return nil, ErrMissingMaterial
	}

	force, err := ParseForce(rawForce)
	if err != nil {
		return nil, err
	}

	spec, ok := strand.Find(materialID)
	if !ok {
		return nil, ErrUnknownMaterial
	}

	if force > spec.MaxForceKgf {
		return nil, &ValidationError{Reason: ForceExceedsMaximum, Limit: spec.MaxForceKgf}
	}

	return &Result{
		Spec:             spec,
		AppliedForceKgf:  force,
		ElongationCmPerM: Compute(spec, force),
	}, nil
}

// plain decimal, optional sign and exponent; no hex, no Inf/NaN
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseDecimal parses a finite plain decimal number, with '.' or ',' as the
// decimal separator. Hex, Inf, NaN and trailing text are rejected.
func ParseDecimal(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if !decimalPattern.MatchString(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseForce parses a user-typed force in kgf. Both '.' and ',' are accepted
// as the decimal separator. The returned force is strictly positive.
func ParseForce(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrMissingForce
	}

	v, ok := ParseDecimal(s)
	if !ok {
		return 0, ErrInvalidForceFormat
	}

	if v <= 0 {
		return 0, ErrNonPositiveForce
	}

	return v, nil
}

// Stiffness returns A × E, the denominator of the elongation formula
func (r *Result) Stiffness() float64 {
	return r.Spec.AreaCm2 * r.Spec.ElasticModulus
}

// MaxElongationCmPerM returns the elongation at the strand's maximum force
func (r *Result) MaxElongationCmPerM() float64 {
	return Compute(r.Spec, r.Spec.MaxForceKgf)
}

// Utilization returns the applied force as a fraction of the maximum force
func (r *Result) Utilization() float64 {
	return r.AppliedForceKgf / r.Spec.MaxForceKgf
}

// TotalElongationCm returns the elongation (cm) of a tendon lengthM meters long
func (r *Result) TotalElongationCm(lengthM float64) float64 {
	return r.ElongationCmPerM * lengthM
}
