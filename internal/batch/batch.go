package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gostrand/internal/elongation"
	"github.com/alexiusacademia/gostrand/internal/format"
)

// ResultSheet is the sheet name written by Write
const ResultSheet = "Results"

var resultHeader = []interface{}{
	"Line", "Strand", "Force (kgf)", "Elongation (cm/m)", "Length (m)", "Total elongation (cm)", "Utilization", "Error",
}

// Input is one worksheet row: strand id, force as typed, optional tendon length
type Input struct {
	Line     int // 1-based worksheet row
	StrandID string
	RawForce string
	LengthM  float64
}

// Row is the outcome of one Input. Exactly one of Result and Err is set.
type Row struct {
	Input
	Result *elongation.Result
	Err    error
}

// Read loads inputs from an xlsx workbook. The first row is a header.
// Columns: A strand id, B force, C tendon length in meters (optional).
// An empty sheet name selects the first sheet.
func Read(r io.Reader, sheet string) ([]Input, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	// Raw values: a numeric 12500 formatted as "#,##0" must not read as "12,500"
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	var inputs []Input
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}

		in := Input{Line: i + 1, StrandID: cell(row, 0), RawForce: cell(row, 1)}
		if raw := cell(row, 2); raw != "" {
			length, err := parseLength(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", in.Line, err)
			}
			in.LengthM = length
		}
		inputs = append(inputs, in)
	}

	return inputs, nil
}

// Run calculates every input. A rejected row keeps its validation error and
// does not stop the batch.
func Run(inputs []Input) []Row {
	rows := make([]Row, 0, len(inputs))
	for _, in := range inputs {
		res, err := elongation.Calculate(in.StrandID, in.RawForce)
		rows = append(rows, Row{Input: in, Result: res, Err: err})
	}
	return rows
}

// Summary counts successful and rejected rows
func Summary(rows []Row) (ok, failed int) {
	for _, r := range rows {
		if r.Err != nil {
			failed++
		} else {
			ok++
		}
	}
	return ok, failed
}

// Write stores rows in a new workbook with a single Results sheet.
// Numbers are written as numeric cells; messages use f for the force limit.
func Write(w io.Writer, rows []Row, f *format.Formatter) error {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName(wb.GetSheetName(0), ResultSheet); err != nil {
		return err
	}
	if err := wb.SetSheetRow(ResultSheet, "A1", &resultHeader); err != nil {
		return err
	}

	for i, r := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		var values []interface{}
		if r.Err != nil {
			values = []interface{}{r.Line, r.StrandID, r.RawForce, nil, nil, nil, nil, elongation.Message(r.Err, f.Force)}
		} else {
			var length, total interface{}
			if r.LengthM > 0 {
				length = r.LengthM
				total = r.Result.TotalElongationCm(r.LengthM)
			}
			values = []interface{}{
				r.Line,
				r.Result.Spec.ID,
				r.Result.AppliedForceKgf,
				r.Result.ElongationCmPerM,
				length,
				total,
				r.Result.Utilization(),
				nil,
			}
		}
		if err := wb.SetSheetRow(ResultSheet, axis, &values); err != nil {
			return err
		}
	}

	_, err := wb.WriteTo(w)
	return err
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseLength accepts a positive, finite length in meters with '.' or ','
// decimals
func parseLength(raw string) (float64, error) {
	v, ok := elongation.ParseDecimal(raw)
	if !ok || v <= 0 {
		return 0, fmt.Errorf("invalid length %q", raw)
	}
	return v, nil
}
