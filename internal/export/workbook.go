package export

import (
	"fmt"

	"github.com/misterclayt0n/fitcalc/internal/onerm"
	"github.com/misterclayt0n/fitcalc/internal/units"
	"github.com/xuri/excelize/v2"
)

const (
	SheetEstimates   = "Estimates"
	SheetPercentages = "Percentages"
	SheetReps        = "Reps"
)

type styles struct {
	header int
	number int
	total  int
}

func newStyles(f *excelize.File) (*styles, error) {
	s := &styles{}
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	s.number, err = f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return nil, err
	}

	s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: 2,
		Border: []excelize.Border{{Type: "top", Color: "#1F4E79", Style: 1}},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// WriteOneRM writes the three 1RM tables to a new workbook at path. Loads are
// shown in the display unit and rounded to step, next to the unrounded kg.
func WriteOneRM(path string, r onerm.Result, sys units.System, step float64) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("creating styles: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetEstimates); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetPercentages); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetReps); err != nil {
		return err
	}

	unit := sys.MassUnit()

	// Estimates: one row per formula, then average and training max.
	est := [][]interface{}{}
	for _, e := range r.Estimates {
		est = append(est, []interface{}{e.Formula, e.Kg, onerm.DisplayLoad(e.Kg, sys, step)})
	}
	if err := writeTable(f, st, SheetEstimates,
		[]string{"Formula", "1RM (kg)", "1RM (" + unit + ")"}, est); err != nil {
		return err
	}
	totals := [][]interface{}{
		{"Average", r.AverageKg, onerm.DisplayLoad(r.AverageKg, sys, step)},
		{"Training max (90%)", r.TrainingMaxKg, onerm.DisplayLoad(r.TrainingMaxKg, sys, step)},
	}
	for i, row := range totals {
		cell, _ := excelize.CoordinatesToCellName(1, len(est)+2+i)
		if err := f.SetSheetRow(SheetEstimates, cell, &row); err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(3, len(est)+2+i)
		if err := f.SetCellStyle(SheetEstimates, cell, last, st.total); err != nil {
			return err
		}
	}

	pct := make([][]interface{}, 0, len(r.Percentages))
	for _, p := range r.Percentages {
		pct = append(pct, []interface{}{p.Percent, p.Kg, onerm.DisplayLoad(p.Kg, sys, step)})
	}
	if err := writeTable(f, st, SheetPercentages,
		[]string{"% of 1RM", "Load (kg)", "Load (" + unit + ")"}, pct); err != nil {
		return err
	}

	reps := make([][]interface{}, 0, len(r.RepsLoads))
	for _, rr := range r.RepsLoads {
		reps = append(reps, []interface{}{rr.Reps, rr.Kg, onerm.DisplayLoad(rr.Kg, sys, step)})
	}
	if err := writeTable(f, st, SheetReps,
		[]string{"Reps", "Load (kg)", "Load (" + unit + ")"}, reps); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeTable(f *excelize.File, st *styles, sheet string, header []string, rows [][]interface{}) error {
	if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "C", 14); err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	end, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", end, st.header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(header), len(rows)+1)
		if err := f.SetCellStyle(sheet, "B2", last, st.number); err != nil {
			return err
		}
	}
	return nil
}
