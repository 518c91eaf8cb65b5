package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/candkey"
	"github.com/jonlawlor/candkey/att"
	"github.com/jonlawlor/candkey/internal/logging"
)

// largeHeading is the size of heading above which an unlimited search is
// warned about.
const largeHeading = 20

// keysResult is the json and yaml form of the output of keys.
type keysResult struct {
	Relation []string   `json:"relation" yaml:"relation"`
	FDs      []string   `json:"fds" yaml:"fds"`
	Keys     [][]string `json:"keys" yaml:"keys"`
	Prime    []string   `json:"prime" yaml:"prime"`
}

func newKeysCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Find the candidate keys of a relation",
		Example: `  ckminer keys --relation "A, B, C, D" --fds "A-BC, AC-D"
  ckminer keys --words -r "emp, dept, mgr" -f "emp -> dept, dept -> mgr"
  ckminer keys --schema schema.yaml --format table
  ckminer keys --sqlite shop.db --table orders --words --fds "PNO SNO -> Qty"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			s, err := o.loadSchema(ctx, cmd.Flags())
			if err != nil {
				return err
			}
			if err := s.CheckDegree(o.cfg.MaxAttributes); err != nil {
				return err
			}
			if o.cfg.MaxAttributes == 0 && s.Heading.Len() > largeHeading {
				logging.Warnf("searching %d attributes with no limit, this may take a long time", s.Heading.Len())
			}

			if o.cfg.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
				defer cancel()
			}
			logging.Debugf("searching %d attributes under %d fds", s.Heading.Len(), len(s.FDs))
			start := time.Now()
			cks, err := s.Keys(ctx)
			if err != nil {
				return fmt.Errorf("search stopped after finding %d keys: %w", len(cks), err)
			}
			logging.Infof("found %d candidate keys in %v", len(cks), time.Since(start))
			return writeKeys(cmd.OutOrStdout(), o.cfg.Format, s, cks)
		},
	}
	addInputFlags(cmd, o)
	return cmd
}

func writeKeys(w io.Writer, format string, s *candkey.Schema, cks att.CandKeys) error {
	switch format {
	case "table":
		_, err := fmt.Fprintln(w, candkey.KeyTable(cks))
		return err
	case "json", "yaml":
		res := keysResult{
			Relation: s.Heading.Strings(),
			FDs:      make([]string, len(s.FDs)),
			Keys:     cks.Strings(),
			Prime:    cks.Prime().Strings(),
		}
		for i, fd := range s.FDs {
			res.FDs[i] = fd.String()
		}
		return encode(w, format, res)
	default:
		return candkey.WriteKeys(w, cks)
	}
}
