package format

import "testing"

func TestBrazilianPortuguese(t *testing.T) {
	f := Default()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"force", f.Force(12500), "12.500,00"},
		{"force fraction", f.Force(12500.5), "12.500,50"},
		{"area", f.Area(1), "1,0000"},
		{"area small", f.Area(0.126), "0,1260"},
		{"modulus", f.Modulus(19600), "19.600"},
		{"elongation", f.Elongation(12500.0 / 19600.0), "0,6378"},
		{"weight", f.Weight(0.792), "0,792"},
		{"fptk", f.Fptk(1900), "1.900"},
		{"fptk077", f.Fptk077(1347.5), "1.347,5"},
		{"fptk077 whole", f.Fptk077(1463), "1.463,0"},
		{"stiffness", f.Stiffness(19600), "19.600,00"},
		{"diameter", f.Diameter(12.7), "12,7"},
		{"percent", f.Percent(0.5), "50,0 %"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, tc.got)
			}
		})
	}
}

func TestTiesRoundAwayFromZero(t *testing.T) {
	f := Default()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"force 0.125", f.Force(0.125), "0,13"},
		{"force 1.005", f.Force(1.005), "1,01"},
		{"typed force", f.Force(1000.125), "1.000,13"},
		{"negative force", f.Force(-0.125), "-0,13"},
		{"modulus 2.5", f.Modulus(2.5), "3"},
		{"modulus 0.5", f.Modulus(0.5), "1"},
		{"fptk077", f.Fptk077(5039.65), "5.039,7"},
		{"below tie", f.Force(0.1249), "0,12"},
		{"carry", f.Force(9.995), "10,00"},
		{"exact", f.Area(0.126), "0,1260"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, tc.got)
			}
		})
	}
}

func TestEnglishKeepsPlaces(t *testing.T) {
	f, err := New("en-US")
	if err != nil {
		t.Fatalf("creating formatter: %v", err)
	}

	if got := f.Force(12500); got != "12,500.00" {
		t.Fatalf("expected %q, got %q", "12,500.00", got)
	}
	if got := f.Elongation(0.637755); got != "0.6378" {
		t.Fatalf("expected %q, got %q", "0.6378", got)
	}
	if got := f.Locale(); got != "en-US" {
		t.Fatalf("expected locale en-US, got %q", got)
	}
}

func TestNewRejectsInvalidLocale(t *testing.T) {
	if _, err := New("not a locale!"); err == nil {
		t.Fatal("expected error for invalid locale")
	}
}
