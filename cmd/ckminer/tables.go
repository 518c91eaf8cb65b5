package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/candkey/internal/sqlschema"
)

func newTablesCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the tables of a SQLite database and their columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.sqlite == "" {
				return errors.New("no database given, use --sqlite")
			}
			db, err := sqlschema.Open(o.sqlite)
			if err != nil {
				return err
			}
			defer db.Close()

			names, err := sqlschema.Tables(cmd.Context(), db)
			if err != nil {
				return err
			}
			for _, name := range names {
				h, err := sqlschema.Heading(cmd.Context(), db, name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", name, h); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&o.sqlite, "sqlite", "", "SQLite database to list")
	return cmd
}
