// main.go sets up the command-line interface for ckminer using the Cobra
// library.  It defines the root command, the flags shared by every
// subcommand, and the main entry point.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/candkey/internal/config"
	"github.com/jonlawlor/candkey/internal/logging"
)

var version = "dev" // this will be set by the linker

// main is the entry point of the application.
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

// options holds the state shared by the commands of one root command.
type options struct {
	cfgFile string
	verbose bool
	cfg     config.Config

	// inputs
	relation string
	fds      string
	schema   string
	sqlite   string
	table    string
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "ckminer",
		Short: "ckminer finds the candidate keys of a relation.",
		Long: `ckminer finds every candidate key of a relation from its functional
dependencies (FDs).

A relation is written as a comma separated list of attributes, like
"A, B, C, D", and FDs as a comma separated list like "AB-C, CD-E", where
each letter is one attribute.  With --words the attributes on each side
of an FD are separated by spaces instead, like "emp dept -> mgr".`,
		Version:      version,
		SilenceUsage: true,
		// errors are logged by main
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cmd.Flags(), o.cfgFile)
			if err != nil {
				return err
			}
			o.cfg = c
			level := c.Log.Level
			if o.verbose {
				level = "debug"
			}
			if err := logging.Configure(cmd.ErrOrStderr(), level, c.Log.Format); err != nil {
				return err
			}
			logging.Debugf("config: %+v", c)
			return nil
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&o.cfgFile, "config", "", "config file (default is ckminer.yaml in the user config directory or the current directory)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug messages")
	fs.StringP("format", "o", "text", `Output format ("text", "table", "json", "yaml")`)
	fs.Bool("words", false, "Attributes in FDs are words separated by spaces")
	fs.Int("max-attributes", 20, "Refuse to search relations with more attributes than this, 0 for no limit")
	fs.Duration("timeout", 0, "Stop searching for keys after this long, 0 for no limit")
	fs.String("log.level", "warn", `Log level ("debug", "info", "warn", "error")`)
	fs.String("log.format", "text", `Log format ("text", "json", "logfmt")`)

	cmd.AddCommand(newKeysCmd(o))
	cmd.AddCommand(newClosureCmd(o))
	cmd.AddCommand(newTablesCmd(o))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// addInputFlags adds the flags that say where the relation and FDs come
// from.
func addInputFlags(cmd *cobra.Command, o *options) {
	cmd.Flags().StringVarP(&o.relation, "relation", "r", "", `Attributes of the relation, like "A, B, C, D"`)
	cmd.Flags().StringVarP(&o.fds, "fds", "f", "", `Functional dependencies, like "AB-C, CD-E"`)
	cmd.Flags().StringVarP(&o.schema, "schema", "s", "", "YAML file with the relation and FDs")
	cmd.Flags().StringVar(&o.sqlite, "sqlite", "", "SQLite database to read the relation from")
	cmd.Flags().StringVar(&o.table, "table", "", "Table of the --sqlite database to read the relation from")
	cmd.MarkFlagsMutuallyExclusive("schema", "relation")
	cmd.MarkFlagsMutuallyExclusive("schema", "fds")
	cmd.MarkFlagsMutuallyExclusive("schema", "sqlite")
	cmd.MarkFlagsMutuallyExclusive("relation", "sqlite")
	cmd.MarkFlagsRequiredTogether("sqlite", "table")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of ckminer",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ckminer "+version)
		},
	}
}
