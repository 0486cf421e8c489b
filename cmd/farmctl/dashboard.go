package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"dalu/pkg/store"
)

// farm is every store the dashboard and export read.
type farm struct {
	crops   *store.CropStore
	animals *store.AnimalStore
	flowers *store.FlowerStore
	stats   *store.StatisticsStore
}

func (a *app) newFarm() *farm {
	return &farm{
		crops:   store.NewCropStore(a.api.Crops, a.msgs),
		animals: store.NewAnimalStore(a.api.Animals, a.msgs),
		flowers: store.NewFlowerStore(a.api.Flowers, a.msgs),
		stats:   store.NewStatisticsStore(a.api.Statistics, a.msgs),
	}
}

// fetch loads every store concurrently. The stores do not depend on each
// other, so the first failure cancels the rest.
func (f *farm) fetch(ctx context.Context, limit int) error {
	if limit > 0 {
		f.crops.SetParams(store.CropParamsPatch{Limit: &limit})
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return f.crops.Fetch(ctx) })
	g.Go(func() error { return f.animals.Fetch(ctx) })
	g.Go(func() error { return f.flowers.Fetch(ctx) })
	g.Go(func() error { return f.stats.FetchOverview(ctx) })
	return g.Wait()
}

// firstErr returns the first store message set by a failed fetch.
func (f *farm) firstErr() string {
	for _, msg := range []string{f.crops.Err(), f.animals.Err(), f.flowers.Err(), f.stats.Err()} {
		if msg != "" {
			return msg
		}
	}
	return ""
}

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Overview of crops, animals and flowers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := a.newFarm()
			if err := f.fetch(cmd.Context(), 0); err != nil {
				return a.storeError(f.firstErr(), err)
			}
			w := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(w, map[string]any{
					"overview":        f.stats.Overview(),
					"growing_crops":   f.crops.GrowingCrops(),
					"harvested_crops": f.crops.HarvestedCrops(),
					"total_yield":     f.crops.TotalYield(),
					"animals":         f.animals.Items(),
					"flowers":         f.flowers.Items(),
				})
			}
			if err := a.printOverview(w, f.stats.Overview()); err != nil {
				return err
			}

			fmt.Fprintf(w, "\nGrowing crops (%d)\n", len(f.crops.GrowingCrops()))
			rows := [][]string{}
			for _, c := range f.crops.GrowingCrops() {
				rows = append(rows, cropRow(c))
			}
			if err := writeTable(w, cropHeader, rows); err != nil {
				return err
			}

			fmt.Fprintf(w, "\nRecent animals (%d of %d)\n", len(f.animals.Items()), f.animals.Total())
			rows = rows[:0]
			for _, v := range f.animals.Items() {
				rows = append(rows, animalRow(v))
			}
			if err := writeTable(w, animalHeader, rows); err != nil {
				return err
			}

			fmt.Fprintf(w, "\nRecent flowers (%d of %d)\n", len(f.flowers.Items()), f.flowers.Total())
			rows = rows[:0]
			for _, v := range f.flowers.Items() {
				rows = append(rows, flowerRow(v))
			}
			return writeTable(w, flowerHeader, rows)
		},
	}
}
