package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"dalu/pkg/report"
	"dalu/pkg/schema"
)

func (a *app) exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write crops, animals, flowers and the overview to an .xlsx file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			f := a.newFarm()
			if err := f.fetch(cmd.Context(), schema.MaxLimit); err != nil {
				return a.storeError(f.firstErr(), err)
			}
			var buf bytes.Buffer
			err := report.WriteXLSX(&buf, report.Workbook{
				Overview: f.stats.Overview(),
				Crops:    f.crops.Items(),
				Animals:  f.animals.Items(),
				Flowers:  f.flowers.Items(),
			})
			if err != nil {
				return err
			}
			if err := atomic.WriteFile(out, &buf); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d crops, %d animals, %d flowers)\n",
				out, len(f.crops.Items()), len(f.animals.Items()), len(f.flowers.Items()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "farm.xlsx", "output file")
	return cmd
}
