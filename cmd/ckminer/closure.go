package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/candkey"
	"github.com/jonlawlor/candkey/att"
)

// closureResult is the json and yaml form of the output of closure.
type closureResult struct {
	Attributes []string `json:"attributes" yaml:"attributes"`
	Closure    []string `json:"closure" yaml:"closure"`
	Superkey   bool     `json:"superkey" yaml:"superkey"`
}

func newClosureCmd(o *options) *cobra.Command {
	var attrs string
	cmd := &cobra.Command{
		Use:   "closure",
		Short: "Find the closure of a set of attributes",
		Example: `  ckminer closure --relation "A, B, C, D" --fds "A-BC, AC-D" --attrs "A"`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("attrs") {
				return errors.New("no attributes given, use --attrs")
			}
			s, err := o.loadSchema(cmd.Context(), cmd.Flags())
			if err != nil {
				return err
			}
			start, err := candkey.ParseRelation(attrs)
			if err != nil {
				return fmt.Errorf("attrs: %w", err)
			}
			c, err := s.Closure(start)
			if err != nil {
				return err
			}
			return writeClosure(cmd.OutOrStdout(), o.cfg.Format, s, start, c)
		},
	}
	addInputFlags(cmd, o)
	cmd.Flags().StringVarP(&attrs, "attrs", "a", "", `Attributes to find the closure of, like "A, B"`)
	return cmd
}

func writeClosure(w io.Writer, format string, s *candkey.Schema, start, c att.Set) error {
	switch format {
	case "table":
		_, err := fmt.Fprintf(w, "%v+ = %v\n", start, c)
		return err
	case "json", "yaml":
		return encode(w, format, closureResult{
			Attributes: start.Strings(),
			Closure:    c.Strings(),
			Superkey:   s.Heading.IsSubset(c),
		})
	default:
		_, err := fmt.Fprintln(w, c.Concat())
		return err
	}
}
