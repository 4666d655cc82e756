package strand

import (
	"math"
	"testing"
)

func TestAllKeepsDisplayOrder(t *testing.T) {
	want := []string{"Fio_7.0", "Fio_4.0", "Fio_5.0", "Fio_6.0", "Cord_9.5", "Cord_12.7", "Cord_15.2"}

	got := All()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("entry %d: expected id %q, got %q", i, id, got[i].ID)
		}
	}

	ids := IDs()
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("IDs()[%d]: expected %q, got %q", i, id, ids[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	specs := All()
	specs[0].MaxForceKgf = 1
	specs[0].ID = "changed"

	s, ok := Find("Fio_7.0")
	if !ok {
		t.Fatal("expected Fio_7.0 to still be in the catalog")
	}
	if s.MaxForceKgf != 5039.65 {
		t.Fatalf("expected catalog to be unchanged, got max force %g", s.MaxForceKgf)
	}
}

func TestFindReturnsEveryEntry(t *testing.T) {
	for _, want := range All() {
		t.Run(want.ID, func(t *testing.T) {
			got, ok := Find(want.ID)
			if !ok {
				t.Fatalf("expected %q to be found", want.ID)
			}
			if got != want {
				t.Fatalf("expected %+v, got %+v", want, got)
			}
		})
	}
}

func TestFindMissing(t *testing.T) {
	for _, id := range []string{"nonexistent", "", "cord_12.7", "Cord_12.7 "} {
		if _, ok := Find(id); ok {
			t.Fatalf("expected %q not to be found", id)
		}
	}
}

func TestCatalogValues(t *testing.T) {
	tests := []struct {
		id       string
		area     float64
		maxForce float64
		modulus  float64
	}{
		{"Fio_7.0", 0.385, 5039.65, 21000},
		{"Fio_4.0", 0.1260, 1697.85, 21000},
		{"Fio_5.0", 0.1960, 2641.1, 21000},
		{"Fio_6.0", 0.2830, 3813.425, 21000},
		{"Cord_9.5", 0.56, 8192.8, 19600},
		{"Cord_12.7", 1.00, 14630, 19600},
		{"Cord_15.2", 1.43, 20920.9, 19600},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			s, ok := Find(tc.id)
			if !ok {
				t.Fatalf("expected %q to be found", tc.id)
			}
			if s.AreaCm2 != tc.area {
				t.Fatalf("area: expected %g, got %g", tc.area, s.AreaCm2)
			}
			if s.MaxForceKgf != tc.maxForce {
				t.Fatalf("max force: expected %g, got %g", tc.maxForce, s.MaxForceKgf)
			}
			if s.ElasticModulus != tc.modulus {
				t.Fatalf("modulus: expected %g, got %g", tc.modulus, s.ElasticModulus)
			}
		})
	}
}

func TestCatalogInvariants(t *testing.T) {
	seen := map[string]bool{}

	for _, s := range All() {
		if seen[s.ID] {
			t.Fatalf("duplicate id %q", s.ID)
		}
		seen[s.ID] = true

		fields := map[string]float64{
			"diameter": s.DiameterMm,
			"area":     s.AreaCm2,
			"weight":   s.WeightKgPerM,
			"fptk":     s.Fptk,
			"fptk077":  s.Fptk077,
			"maxForce": s.MaxForceKgf,
			"modulus":  s.ElasticModulus,
		}
		for name, v := range fields {
			if v <= 0 {
				t.Fatalf("%s: expected positive %s, got %g", s.ID, name, v)
			}
		}

		if math.Abs(s.Fptk077-0.77*s.Fptk) > 1e-6 {
			t.Fatalf("%s: expected fptk077 %g to equal 0.77 × %g", s.ID, s.Fptk077, s.Fptk)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"Cord_12.7": "Cord. CP 190 RB Ø12.7",
		"Fio_7.0":   "Fio CP 170 RB Ø7",
	}

	for id, want := range tests {
		s, _ := Find(id)
		if got := s.DisplayName(); got != want {
			t.Fatalf("%s: expected %q, got %q", id, want, got)
		}
	}
}
