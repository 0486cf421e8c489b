// Package report exports cached farm data as an Excel workbook.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"dalu/entities"
	"dalu/pkg/schema"
)

const (
	SheetOverview = "Overview"
	SheetCrops    = "Crops"
	SheetAnimals  = "Animals"
	SheetFlowers  = "Flowers"
)

// Workbook is the data written by WriteXLSX. A nil Overview skips that
// sheet.
type Workbook struct {
	Overview *schema.OverviewStats
	Crops    []entities.Crop
	Animals  []entities.Animal
	Flowers  []entities.Flower
}

func WriteXLSX(w io.Writer, b Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	sheets := []struct {
		name string
		rows [][]any
		skip bool
	}{
		{SheetOverview, overviewRows(b.Overview), b.Overview == nil},
		{SheetCrops, cropRows(b.Crops), false},
		{SheetAnimals, animalRows(b.Animals), false},
		{SheetFlowers, flowerRows(b.Flowers), false},
	}

	first := true
	for _, s := range sheets {
		if s.skip {
			continue
		}
		if first {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
			first = false
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
		for i, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return fmt.Errorf("%s row %d: %w", s.name, i+1, err)
			}
		}
		if err := f.SetRowStyle(s.name, 1, 1, header); err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, "A", "L", 16); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func overviewRows(o *schema.OverviewStats) [][]any {
	if o == nil {
		return nil
	}
	return [][]any{
		{"Metric", "Value"},
		{"Total crops", o.TotalCrops},
		{"Growing crops", o.GrowingCrops},
		{"Harvested crops", o.HarvestedCrops},
		{"Total crop yield", o.TotalCropYield},
		{"Animal varieties", o.TotalAnimalVarieties},
		{"Total animals", o.TotalAnimals},
		{"Estimated daily yield", o.EstimatedDailyYield},
		{"Flower varieties", o.TotalFlowerVarieties},
		{"Total flowers", o.TotalFlowers},
	}
}

func cropRows(cs []entities.Crop) [][]any {
	rows := [][]any{{"ID", "Name", "Variety", "Area", "Plant date", "Expected harvest", "Actual harvest", "Total yield", "Unit", "Status", "Notes"}}
	for _, c := range cs {
		rows = append(rows, []any{
			c.ID, c.Name, c.Variety, c.Area, c.PlantDate.String(),
			datePtr(c.ExpectedHarvestDate), datePtr(c.ActualHarvestDate),
			c.TotalYield, string(c.Unit), string(c.Status), str(c.Notes),
		})
	}
	return rows
}

func animalRows(as []entities.Animal) [][]any {
	rows := [][]any{{"ID", "Name", "Variety", "Quantity", "Acquire date", "Product", "Daily yield", "Yield unit", "Notes"}}
	for _, a := range as {
		product := ""
		if a.ProductType != nil {
			product = string(*a.ProductType)
		}
		rows = append(rows, []any{
			a.ID, a.Name, a.Variety, a.Quantity, a.AcquireDate.String(),
			product, num(a.EstimatedDailyYield), str(a.YieldUnit), str(a.Notes),
		})
	}
	return rows
}

func flowerRows(fs []entities.Flower) [][]any {
	rows := [][]any{{"ID", "Name", "Variety", "Quantity", "Plant date", "Bloom season", "Colors", "Purpose", "Estimated yield", "Yield unit", "Notes"}}
	for _, f := range fs {
		season, purpose := "", ""
		if f.BloomSeason != nil {
			season = string(*f.BloomSeason)
		}
		if f.Purpose != nil {
			purpose = string(*f.Purpose)
		}
		rows = append(rows, []any{
			f.ID, f.Name, f.Variety, f.Quantity, f.PlantDate.String(),
			season, strings.Join(f.Colors, ", "), purpose,
			num(f.EstimatedYield), str(f.YieldUnit), str(f.Notes),
		})
	}
	return rows
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// num leaves the cell empty for nil.
func num(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}

func datePtr(d *entities.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
