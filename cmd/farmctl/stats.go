package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dalu/pkg/schema"
	"dalu/pkg/store"
)

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "stats", Aliases: []string{"statistics"}, Short: "Farm statistics"}

	cmd.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "Headline totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := store.NewStatisticsStore(a.api.Statistics, a.msgs)
			if err := s.FetchOverview(cmd.Context()); err != nil {
				return a.storeError(s.Err(), err)
			}
			return a.printOverview(cmd.OutOrStdout(), s.Overview())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "crops",
		Short: "Crop yield by variety and count by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.api.Statistics.Crops(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, st)
			}
			if err := writeMap(w, "VARIETY", st.ByVariety); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return writeMap(w, "STATUS", st.ByStatus)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "animals",
		Short: "Animal counts by product type and variety",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.api.Statistics.Animals(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, st)
			}
			if err := writeMap(w, "PRODUCT", st.ByProductType); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return writeMap(w, "VARIETY", st.ByVariety)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "flowers",
		Short: "Flower counts by bloom season and purpose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.api.Statistics.Flowers(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, st)
			}
			if err := writeMap(w, "SEASON", st.BySeason); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return writeMap(w, "PURPOSE", st.ByPurpose)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "charts",
		Short: "Chart series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := store.NewStatisticsStore(a.api.Statistics, a.msgs)
			if err := s.FetchChartData(cmd.Context()); err != nil {
				return a.storeError(s.Err(), err)
			}
			ch := s.ChartData()
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, ch)
			}
			for i, c := range []schema.ChartData{ch.CropYieldByVariety, ch.CropStatusPie, ch.AnimalByProduct, ch.FlowerBySeason} {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := writeChart(w, c); err != nil {
					return err
				}
			}
			return nil
		},
	})

	var year int
	cal := &cobra.Command{
		Use:   "calendar",
		Short: "Plant and harvest events of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := store.NewStatisticsStore(a.api.Statistics, a.msgs)
			if err := s.FetchCalendar(cmd.Context(), year); err != nil {
				return a.storeError(s.Err(), err)
			}
			events := s.Calendar().Events
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, s.Calendar())
			}
			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, []string{e.Date, e.Type, e.Category, e.Title})
			}
			return writeTable(w, []string{"DATE", "TYPE", "CATEGORY", "EVENT"}, rows)
		},
	}
	cal.Flags().IntVar(&year, "year", 0, "calendar year (default: current year)")
	cmd.AddCommand(cal)
	return cmd
}

func (a *app) printOverview(w io.Writer, o *schema.OverviewStats) error {
	if a.asJSON {
		return writeJSON(w, o)
	}
	return writeTable(w, []string{"METRIC", "VALUE"}, [][]string{
		{"crops", fmt.Sprint(o.TotalCrops)},
		{"growing", fmt.Sprint(o.GrowingCrops)},
		{"harvested", fmt.Sprint(o.HarvestedCrops)},
		{"crop yield", fmtNum(o.TotalCropYield)},
		{"animal varieties", fmt.Sprint(o.TotalAnimalVarieties)},
		{"animals", fmt.Sprint(o.TotalAnimals)},
		{"daily yield", fmtNum(o.EstimatedDailyYield)},
		{"flower varieties", fmt.Sprint(o.TotalFlowerVarieties)},
		{"flowers", fmt.Sprint(o.TotalFlowers)},
	})
}

// writeChart prints the first dataset of c against its labels.
func writeChart(w io.Writer, c schema.ChartData) error {
	fmt.Fprintf(w, "%s (%s)\n", c.Title, c.Type)
	var data []any
	if len(c.Datasets) > 0 {
		data, _ = c.Datasets[0]["data"].([]any)
	}
	rows := make([][]string, 0, len(c.Labels))
	for i, l := range c.Labels {
		v := "-"
		if i < len(data) {
			v = fmt.Sprint(data[i])
		}
		rows = append(rows, []string{l, v})
	}
	return writeTable(w, []string{"LABEL", "VALUE"}, rows)
}
