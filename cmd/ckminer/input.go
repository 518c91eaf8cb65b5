package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jonlawlor/candkey"
	"github.com/jonlawlor/candkey/att"
	"github.com/jonlawlor/candkey/internal/logging"
	"github.com/jonlawlor/candkey/internal/sqlschema"
)

// loadSchema builds the schema from whichever of --schema, --relation or
// --sqlite was set in flags, along with --fds.
func (o *options) loadSchema(ctx context.Context, flags *pflag.FlagSet) (*candkey.Schema, error) {
	if o.schema != "" {
		f, err := os.Open(o.schema)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		logging.Debugf("reading schema from %s", o.schema)
		return candkey.LoadSchema(f)
	}

	heading, err := o.loadHeading(ctx, flags.Changed("relation"))
	if err != nil {
		return nil, err
	}
	parse := candkey.ParseFDs
	if o.cfg.Words {
		parse = candkey.ParseWordFDs
	}
	fds, err := parse(o.fds)
	if err != nil {
		return nil, fmt.Errorf("fds: %w", err)
	}
	logging.Debugf("relation %v with fds %s", heading, candkey.FDString(fds))
	return candkey.NewSchema(heading, fds)
}

// loadHeading reads the heading from --relation, or from --sqlite if the
// relation was not given.  An empty --relation is the empty heading.
func (o *options) loadHeading(ctx context.Context, haveRelation bool) (att.Set, error) {
	if o.sqlite == "" {
		if !haveRelation {
			return nil, errors.New("no relation given, use --relation, --schema or --sqlite")
		}
		heading, err := candkey.ParseRelation(o.relation)
		if err != nil {
			return nil, fmt.Errorf("relation: %w", err)
		}
		return heading, nil
	}

	db, err := sqlschema.Open(o.sqlite)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	logging.Debugf("reading columns of %s from %s", o.table, o.sqlite)
	return sqlschema.Heading(ctx, db, o.table)
}
