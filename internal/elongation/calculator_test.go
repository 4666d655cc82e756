package elongation

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/alexiusacademia/gostrand/internal/strand"
)

func closeTo(got, want float64) bool {
	if want == 0 {
		return math.Abs(got) < 1e-12
	}
	return math.Abs(got-want)/math.Abs(want) <= 1e-9
}

func TestCalculateCord127(t *testing.T) {
	res, err := Calculate("Cord_12.7", "12500")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if res.Spec.ID != "Cord_12.7" {
		t.Fatalf("expected spec Cord_12.7, got %q", res.Spec.ID)
	}
	if res.AppliedForceKgf != 12500 {
		t.Fatalf("expected applied force 12500, got %g", res.AppliedForceKgf)
	}
	if !closeTo(res.ElongationCmPerM, 0.6377551020408163) {
		t.Fatalf("expected elongation ≈ 0.637755, got %.12f", res.ElongationCmPerM)
	}
}

func TestCalculateMatchesFormulaForEveryStrand(t *testing.T) {
	for _, spec := range strand.All() {
		for _, frac := range []float64{0.001, 0.25, 0.5, 0.77, 1} {
			f := spec.MaxForceKgf * frac
			t.Run(fmt.Sprintf("%s/%g", spec.ID, frac), func(t *testing.T) {
				res, err := Calculate(spec.ID, fmt.Sprintf("%.6f", f))
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				want := res.AppliedForceKgf / (spec.AreaCm2 * spec.ElasticModulus)
				if !closeTo(res.ElongationCmPerM, want) {
					t.Fatalf("expected %g, got %g", want, res.ElongationCmPerM)
				}
			})
		}
	}
}

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name     string
		material string
		force    string
		want     error
	}{
		{"missing material", "", "100", ErrMissingMaterial},
		{"missing material wins over bad force", "", "abc", ErrMissingMaterial},
		{"empty force", "Fio_4.0", "", ErrMissingForce},
		{"whitespace force", "Fio_4.0", "   \t", ErrMissingForce},
		{"text force", "Fio_4.0", "abc", ErrInvalidForceFormat},
		{"trailing text", "Fio_4.0", "12kgf", ErrInvalidForceFormat},
		{"two separators", "Fio_4.0", "1.234,5", ErrInvalidForceFormat},
		{"hex", "Fio_4.0", "0x10", ErrInvalidForceFormat},
		{"nan", "Fio_4.0", "NaN", ErrInvalidForceFormat},
		{"inf", "Fio_4.0", "Inf", ErrInvalidForceFormat},
		{"zero", "Fio_4.0", "0", ErrNonPositiveForce},
		{"negative", "Fio_4.0", "-5", ErrNonPositiveForce},
		{"negative comma", "Fio_4.0", "-0,5", ErrNonPositiveForce},
		{"format checked before lookup", "nonexistent", "abc", ErrInvalidForceFormat},
		{"positivity checked before lookup", "nonexistent", "-1", ErrNonPositiveForce},
		{"unknown material", "nonexistent", "100", ErrUnknownMaterial},
		{"over maximum", "Cord_12.7", "15000", ErrForceExceedsMaximum},
		{"unknown checked before maximum", "nonexistent", "999999", ErrUnknownMaterial},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Calculate(tc.material, tc.force)
			if err == nil {
				t.Fatalf("expected error %v, got result %+v", tc.want, res)
			}
			if res != nil {
				t.Fatalf("expected nil result, got %+v", res)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCalculateExceedsMaximumCarriesLimit(t *testing.T) {
	_, err := Calculate("Cord_12.7", "15000")

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Reason != ForceExceedsMaximum {
		t.Fatalf("expected reason %v, got %v", ForceExceedsMaximum, ve.Reason)
	}
	if ve.Limit != 14630 {
		t.Fatalf("expected limit 14630, got %g", ve.Limit)
	}
}

func TestCalculateMaximumIsInclusive(t *testing.T) {
	for _, spec := range strand.All() {
		t.Run(spec.ID, func(t *testing.T) {
			raw := fmt.Sprintf("%g", spec.MaxForceKgf)
			if _, err := Calculate(spec.ID, raw); err != nil {
				t.Fatalf("expected force %s to pass, got %v", raw, err)
			}

			above := fmt.Sprintf("%g", spec.MaxForceKgf+0.001)
			_, err := Calculate(spec.ID, above)
			if !errors.Is(err, ErrForceExceedsMaximum) {
				t.Fatalf("expected force %s to exceed maximum, got %v", above, err)
			}
		})
	}
}

func TestCalculateDecimalComma(t *testing.T) {
	comma, err := Calculate("Cord_15.2", "12500,5")
	if err != nil {
		t.Fatalf("comma input: %v", err)
	}
	point, err := Calculate("Cord_15.2", "12500.5")
	if err != nil {
		t.Fatalf("point input: %v", err)
	}

	if *comma != *point {
		t.Fatalf("expected identical results, got %+v and %+v", comma, point)
	}
	if comma.AppliedForceKgf != 12500.5 {
		t.Fatalf("expected 12500.5, got %g", comma.AppliedForceKgf)
	}
}

func TestCalculateTrimsForce(t *testing.T) {
	res, err := Calculate("Fio_5.0", "  1000 ")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if res.AppliedForceKgf != 1000 {
		t.Fatalf("expected 1000, got %g", res.AppliedForceKgf)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	first, err := Calculate("Fio_6.0", "3000,25")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Calculate("Fio_6.0", "3000,25")
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if *again != *first {
			t.Fatalf("run %d: expected %+v, got %+v", i, first, again)
		}
	}
}

func TestParseForce(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"12500", 12500},
		{"12500,5", 12500.5},
		{"12500.5", 12500.5},
		{",5", 0.5},
		{"5.", 5},
		{"+7", 7},
		{"1e3", 1000},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseForce(tc.raw)
			if err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %g, got %g", tc.want, got)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	valid := map[string]float64{
		"30":     30,
		" 12,5 ": 12.5,
		"1234.5": 1234.5,
		"1.5E+3": 1500,
		"-2":     -2,
	}
	for raw, want := range valid {
		got, ok := ParseDecimal(raw)
		if !ok || got != want {
			t.Fatalf("ParseDecimal(%q): expected %g, got %g (ok=%v)", raw, want, got, ok)
		}
	}

	for _, raw := range []string{"", "NaN", "Inf", "+Inf", "infinity", "0x10", "1e400", "1,000.5", "3 m"} {
		if v, ok := ParseDecimal(raw); ok {
			t.Fatalf("ParseDecimal(%q): expected rejection, got %g", raw, v)
		}
	}
}

func TestResultDerivedValues(t *testing.T) {
	res, err := Calculate("Cord_9.5", "4096,4")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if !closeTo(res.Stiffness(), 0.56*19600) {
		t.Fatalf("stiffness: expected %g, got %g", 0.56*19600, res.Stiffness())
	}
	if !closeTo(res.MaxElongationCmPerM(), 8192.8/(0.56*19600)) {
		t.Fatalf("max elongation: expected %g, got %g", 8192.8/(0.56*19600), res.MaxElongationCmPerM())
	}
	if !closeTo(res.Utilization(), 0.5) {
		t.Fatalf("utilization: expected 0.5, got %g", res.Utilization())
	}
	if !closeTo(res.TotalElongationCm(30), res.ElongationCmPerM*30) {
		t.Fatalf("total elongation: expected %g, got %g", res.ElongationCmPerM*30, res.TotalElongationCm(30))
	}
}
