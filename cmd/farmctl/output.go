package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"dalu/entities"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

// writeMap prints a key/value table sorted by key.
func writeMap[V int64 | float64](w io.Writer, title string, m map[string]V) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, fmtNum(float64(m[k]))})
	}
	return writeTable(w, []string{title, "VALUE"}, rows)
}

func fmtNum(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func fmtOpt(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func fmtOptNum(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmtNum(*f)
}

func fmtDate(d *entities.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func id(v uint) string { return strconv.FormatUint(uint64(v), 10) }

var cropHeader = []string{"ID", "NAME", "VARIETY", "AREA", "PLANTED", "EXPECTED", "HARVESTED", "YIELD", "STATUS"}

func cropRow(c entities.Crop) []string {
	return []string{
		id(c.ID), c.Name, c.Variety, fmtNum(c.Area), c.PlantDate.String(),
		fmtDate(c.ExpectedHarvestDate), fmtDate(c.ActualHarvestDate),
		fmtNum(c.TotalYield) + " " + string(c.Unit), string(c.Status),
	}
}

var animalHeader = []string{"ID", "NAME", "VARIETY", "QTY", "ACQUIRED", "PRODUCT", "DAILY YIELD"}

func animalRow(a entities.Animal) []string {
	product := "-"
	if a.ProductType != nil {
		product = string(*a.ProductType)
	}
	daily := fmtOptNum(a.EstimatedDailyYield)
	if a.YieldUnit != nil && a.EstimatedDailyYield != nil {
		daily += " " + *a.YieldUnit
	}
	return []string{id(a.ID), a.Name, a.Variety, strconv.Itoa(a.Quantity), a.AcquireDate.String(), product, daily}
}

var flowerHeader = []string{"ID", "NAME", "VARIETY", "QTY", "PLANTED", "SEASON", "COLORS", "PURPOSE"}

func flowerRow(f entities.Flower) []string {
	season, purpose := "-", "-"
	if f.BloomSeason != nil {
		season = string(*f.BloomSeason)
	}
	if f.Purpose != nil {
		purpose = string(*f.Purpose)
	}
	colors := strings.Join(f.Colors, ",")
	if colors == "" {
		colors = "-"
	}
	return []string{id(f.ID), f.Name, f.Variety, strconv.Itoa(f.Quantity), f.PlantDate.String(), season, colors, purpose}
}
