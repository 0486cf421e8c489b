package main

import (
	"errors"

	"github.com/spf13/cobra"

	"dalu/entities"
	"dalu/pkg/schema"
	"dalu/pkg/store"
)

func (a *app) cropListCmd() *cobra.Command {
	var (
		skip, limit               int
		status, sortBy, sortOrder string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List crops with growing/harvested counts and total yield",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := store.NewCropStore(a.api.Crops, a.msgs)
			var patch store.CropParamsPatch
			f := cmd.Flags()
			if f.Changed("skip") {
				patch.Skip = &skip
			}
			if f.Changed("limit") {
				patch.Limit = &limit
			}
			if f.Changed("status") {
				patch.Status = &status
			}
			if f.Changed("sort-by") {
				patch.SortBy = &sortBy
			}
			if f.Changed("sort-order") {
				patch.SortOrder = &sortOrder
			}
			s.SetParams(patch)

			if err := s.Fetch(cmd.Context()); err != nil {
				return a.storeError(s.Err(), err)
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, struct {
					Items          []entities.Crop `json:"items"`
					Total          int64           `json:"total"`
					GrowingCount   int             `json:"growing_count"`
					HarvestedCount int             `json:"harvested_count"`
					TotalYield     float64         `json:"total_yield"`
				}{s.Items(), s.Total(), len(s.GrowingCrops()), len(s.HarvestedCrops()), s.TotalYield()})
			}
			items := s.Items()
			rows := make([][]string, 0, len(items))
			for _, c := range items {
				rows = append(rows, cropRow(c))
			}
			if err := writeTable(w, cropHeader, rows); err != nil {
				return err
			}
			return a.footer(w, "%d of %d crops, %d growing, %d harvested, total yield %s\n",
				len(items), s.Total(), len(s.GrowingCrops()), len(s.HarvestedCrops()), fmtNum(s.TotalYield()))
		},
	}
	f := cmd.Flags()
	f.IntVar(&skip, "skip", 0, "rows to skip")
	f.IntVar(&limit, "limit", schema.DefaultLimit, "page size (1-100)")
	f.StringVar(&status, "status", "", "growing, harvested or failed")
	f.StringVar(&sortBy, "sort-by", "plant_date", "sort column")
	f.StringVar(&sortOrder, "sort-order", schema.SortDesc, "asc or desc")
	return cmd
}

func (a *app) cropHarvestCmd() *cobra.Command {
	var (
		date     string
		quantity float64
		unit     string
		notes    string
		file     string
	)
	cmd := &cobra.Command{
		Use:   "harvest <id>",
		Short: "Mark a crop harvested (--date and --quantity, or -f payload)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var in schema.CropHarvest
			switch {
			case file != "":
				if err := readPayload(file, cmd.InOrStdin(), &in); err != nil {
					return err
				}
			case date == "" || quantity <= 0:
				return errors.New("--date and a positive --quantity are required")
			default:
				d, err := entities.ParseDate(date)
				if err != nil {
					return err
				}
				in.ActualHarvestDate = d
				in.YieldQuantity = quantity
				if unit != "" {
					u := entities.CropUnit(unit)
					in.YieldUnit = &u
				}
				if notes != "" {
					in.Notes = &notes
				}
			}

			s := store.NewCropStore(a.api.Crops, a.msgs)
			c, err := s.Harvest(cmd.Context(), id, in)
			if err != nil {
				return a.storeError(s.Err(), err)
			}
			return printOne(a, cmd.OutOrStdout(), cropHeader, cropRow, c)
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "harvest date, YYYY-MM-DD")
	f.Float64Var(&quantity, "quantity", 0, "total yield")
	f.StringVar(&unit, "unit", "", "ton, kg or gram (default: keep the crop's unit)")
	f.StringVar(&notes, "notes", "", "harvest notes")
	f.StringVarP(&file, "file", "f", "", "payload file instead of flags")
	return cmd
}
