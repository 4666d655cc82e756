package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/alexiusacademia/gostrand/internal/elongation"
	"github.com/alexiusacademia/gostrand/internal/format"
)

func TestWriteProducesPDF(t *testing.T) {
	res, err := elongation.Calculate("Cord_12.7", "12500")
	if err != nil {
		t.Fatalf("calculating: %v", err)
	}

	tests := []struct {
		name string
		opts Options
	}{
		{"minimal", Options{}},
		{"full", Options{
			Title:   "Tendon T1",
			Project: "Viaduto Norte",
			Author:  "J. Silva",
			Date:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			LengthM: 32.5,
			Chart:   true,
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, res, format.Default(), tc.opts); err != nil {
				t.Fatalf("writing report: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
				t.Fatal("expected output to start with %PDF-")
			}
		})
	}
}

func TestWriteWithChartIsLarger(t *testing.T) {
	res, err := elongation.Calculate("Fio_5.0", "2000")
	if err != nil {
		t.Fatalf("calculating: %v", err)
	}

	var plain, withChart bytes.Buffer
	if err := Write(&plain, res, format.Default(), Options{}); err != nil {
		t.Fatalf("writing plain report: %v", err)
	}
	if err := Write(&withChart, res, format.Default(), Options{Chart: true}); err != nil {
		t.Fatalf("writing report with chart: %v", err)
	}

	if withChart.Len() <= plain.Len() {
		t.Fatalf("expected embedded chart to grow the report, got %d <= %d bytes", withChart.Len(), plain.Len())
	}
}
