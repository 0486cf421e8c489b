package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dalu/database"
)

var flagYes bool

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance",
}

// dbTask describes one "db" subcommand. Destructive tasks ask for
// confirmation unless --yes is given.
type dbTask struct {
	use, short  string
	destructive bool
	run         func(db *gorm.DB, log *zap.Logger) error
}

var dbTasks = []dbTask{
	{"init", "Create missing tables", false, database.Migrate},
	{"drop", "Drop all tables", true, database.Drop},
	{"reset", "Drop and recreate all tables", true, database.Recreate},
	{"seed", "Load demo data into empty tables", false, func(db *gorm.DB, log *zap.Logger) error {
		if err := database.Migrate(db, log); err != nil {
			return err
		}
		return database.SeedAll(db, log)
	}},
	{"reseed", "Delete all rows and load demo data", true, func(db *gorm.DB, log *zap.Logger) error {
		if err := database.ClearSeedData(db, log); err != nil {
			return err
		}
		return database.SeedAll(db, log)
	}},
	{"init-all", "Recreate all tables and load demo data", true, func(db *gorm.DB, log *zap.Logger) error {
		if err := database.Recreate(db, log); err != nil {
			return err
		}
		return database.SeedAll(db, log)
	}},
}

func init() {
	dbCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "skip confirmation for destructive tasks")
	for _, t := range dbTasks {
		dbCmd.AddCommand(&cobra.Command{
			Use:   t.use,
			Short: t.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if t.destructive && !flagYes {
					ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), t.short)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
						return nil
					}
				}
				_, log, db, err := setup()
				if err != nil {
					return err
				}
				defer func() { _ = log.Sync() }()
				defer database.Close(db)
				return t.run(db, log)
			},
		})
	}
}

func confirm(in io.Reader, out io.Writer, what string) (bool, error) {
	fmt.Fprintf(out, "%s: this deletes data. Continue? [y/N] ", what)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
