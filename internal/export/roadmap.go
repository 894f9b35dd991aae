package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// columns defines the roadmap sheet header row.
var columns = []string{"Stage", "Description", "Estimated Cost (INR)"}

const sheetName = "Cost Roadmap"

// WriteRoadmapXLSX renders the roadmap stages as a spreadsheet and writes it
// to w. Stage order is preserved.
func WriteRoadmapXLSX(w io.Writer, stages []domain.CaseStageCost) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for row, stage := range stages {
		values := []string{stage.StageName, stage.Description, stage.EstimatedCostINR}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing stage row %d: %w", row+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
