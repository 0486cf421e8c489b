package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dalu/entities"
	"dalu/pkg/schema"
	"dalu/pkg/store"
)

// getter is the read-one half of a resource client.
type getter[T any] interface {
	Get(ctx context.Context, id uint) (*T, error)
}

// resourceSpec describes one entity for the shared get/create/update/delete
// subcommands.
type resourceSpec[T store.Keyed, C, U any] struct {
	name   string
	header []string
	row    func(T) []string
	client func() getter[T]
	store  func() *store.Store[T, C, U]
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(n), nil
}

func (a *app) printItems(w io.Writer, header []string, rows [][]string, v any) error {
	if a.asJSON {
		return writeJSON(w, v)
	}
	return writeTable(w, header, rows)
}

func printOne[T any](a *app, w io.Writer, header []string, row func(T) []string, v *T) error {
	if a.asJSON {
		return writeJSON(w, v)
	}
	return writeTable(w, header, [][]string{row(*v)})
}

func crudCmds[T store.Keyed, C, U any](a *app, r resourceSpec[T, C, U]) []*cobra.Command {
	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one " + r.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			v, err := r.client().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printOne(a, cmd.OutOrStdout(), r.header, r.row, v)
		},
	}

	var createFile string
	create := &cobra.Command{
		Use:   "create -f <payload.jsonc>",
		Short: "Create a " + r.name + " from a JSON/JSONC file (- for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if createFile == "" {
				return errors.New("-f is required")
			}
			var in C
			if err := readPayload(createFile, cmd.InOrStdin(), &in); err != nil {
				return err
			}
			s := r.store()
			v, err := s.Create(cmd.Context(), in)
			if err != nil {
				return a.storeError(s.Err(), err)
			}
			return printOne(a, cmd.OutOrStdout(), r.header, r.row, v)
		},
	}
	create.Flags().StringVarP(&createFile, "file", "f", "", "payload file")

	var updateFile string
	update := &cobra.Command{
		Use:   "update <id> -f <payload.jsonc>",
		Short: "Update fields of a " + r.name + " from a JSON/JSONC file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if updateFile == "" {
				return errors.New("-f is required")
			}
			var in U
			if err := readPayload(updateFile, cmd.InOrStdin(), &in); err != nil {
				return err
			}
			s := r.store()
			v, err := s.Update(cmd.Context(), id, in)
			if err != nil {
				return a.storeError(s.Err(), err)
			}
			return printOne(a, cmd.OutOrStdout(), r.header, r.row, v)
		},
	}
	update.Flags().StringVarP(&updateFile, "file", "f", "", "payload file")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + r.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s := r.store()
			if err := s.Delete(cmd.Context(), id); err != nil {
				return a.storeError(s.Err(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %d\n", r.name, id)
			return nil
		},
	}
	return []*cobra.Command{get, create, update, del}
}

// storeError prefers the store's user-facing message; the underlying error
// is logged at debug.
func (a *app) storeError(msg string, err error) error {
	a.log.Debug("request failed", zap.Error(err))
	if msg == "" {
		return err
	}
	return errors.New(msg)
}

func (a *app) cropsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "crops", Short: "Grain crops"}
	cmd.AddCommand(a.cropListCmd(), a.cropHarvestCmd())
	cmd.AddCommand(crudCmds(a, resourceSpec[entities.Crop, schema.CropCreate, schema.CropUpdate]{
		name:   "crop",
		header: cropHeader,
		row:    cropRow,
		client: func() getter[entities.Crop] { return a.api.Crops },
		store: func() *store.Store[entities.Crop, schema.CropCreate, schema.CropUpdate] {
			return store.NewCropStore(a.api.Crops, a.msgs).Store
		},
	})...)
	return cmd
}

func (a *app) animalsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "animals", Short: "Livestock"}
	newStore := func() *store.AnimalStore { return store.NewAnimalStore(a.api.Animals, a.msgs) }
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List animals, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := newStore()
			if err := s.Fetch(cmd.Context()); err != nil {
				return a.storeError(s.Err(), err)
			}
			snap := s.Snapshot()
			rows := make([][]string, 0, len(snap.Items))
			for _, v := range snap.Items {
				rows = append(rows, animalRow(v))
			}
			if err := a.printItems(cmd.OutOrStdout(), animalHeader, rows, snap.Items); err != nil {
				return err
			}
			return a.footer(cmd.OutOrStdout(), "%d of %d animals\n", len(snap.Items), snap.Total)
		},
	})
	cmd.AddCommand(crudCmds(a, resourceSpec[entities.Animal, schema.AnimalCreate, schema.AnimalUpdate]{
		name:   "animal",
		header: animalHeader,
		row:    animalRow,
		client: func() getter[entities.Animal] { return a.api.Animals },
		store:  newStore,
	})...)
	return cmd
}

func (a *app) flowersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "flowers", Short: "Flower beds"}
	newStore := func() *store.FlowerStore { return store.NewFlowerStore(a.api.Flowers, a.msgs) }
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List flowers, newest plantings first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := newStore()
			if err := s.Fetch(cmd.Context()); err != nil {
				return a.storeError(s.Err(), err)
			}
			snap := s.Snapshot()
			rows := make([][]string, 0, len(snap.Items))
			for _, v := range snap.Items {
				rows = append(rows, flowerRow(v))
			}
			if err := a.printItems(cmd.OutOrStdout(), flowerHeader, rows, snap.Items); err != nil {
				return err
			}
			return a.footer(cmd.OutOrStdout(), "%d of %d flowers\n", len(snap.Items), snap.Total)
		},
	})
	cmd.AddCommand(crudCmds(a, resourceSpec[entities.Flower, schema.FlowerCreate, schema.FlowerUpdate]{
		name:   "flower",
		header: flowerHeader,
		row:    flowerRow,
		client: func() getter[entities.Flower] { return a.api.Flowers },
		store:  newStore,
	})...)
	return cmd
}

// footer writes a summary line in table mode only.
func (a *app) footer(w io.Writer, format string, args ...any) error {
	if a.asJSON {
		return nil
	}
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
