package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jonlawlor/candkey"
)

// run executes a fresh root command with args, from an empty directory so
// that no ckminer.yaml is picked up, and returns what it wrote to stdout and
// stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, n := range []string{"keys", "closure", "tables", "version"} {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == n {
				found = true
				break
			}
		}
		assert.True(t, found, "expected subcommand %s to be registered", n)
	}
}

func TestKeys_Text(t *testing.T) {
	t.Chdir(t.TempDir())
	var keyTests = []struct {
		args []string
		out  string
	}{
		{[]string{"keys", "-r", "A, B, C, D", "-f", "A-BC, AC-D"}, "A\n"},
		{[]string{"keys", "-r", "A, B"}, "AB\n"},
		{[]string{"keys", "-r", "A, B", "-f", "A-A"}, "AB\n"},
		{[]string{"keys", "-r", "A, B, C, D, E", "-f", "A->BC, CD->E, B->D, E->A"}, "A\nE\nBC\nCD\n"},
		{[]string{"keys", "--words", "-r", "emp, dept, mgr", "-f", "emp -> dept, dept -> mgr"}, "emp\n"},
	}
	for i, tt := range keyTests {
		out, _, err := run(t, tt.args...)
		require.NoError(t, err, "%d. %v", i, tt.args)
		assert.Equal(t, tt.out, out, "%d. %v", i, tt.args)
	}
}

func TestKeys_Table(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := run(t, "keys", "-r", "A, B, C, D", "-f", "AB-C, C-D, D-A", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, `+---+-----+-----+
| # | Key | Deg |
+---+-----+-----+
| 1 |  AB |   2 |
| 2 |  BC |   2 |
| 3 |  BD |   2 |
+---+-----+-----+
`, out)
}

func TestKeys_JSON(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := run(t, "keys", "-r", "A, B, C, D", "-f", "A-B, B-C", "--format", "json")
	require.NoError(t, err)

	var res keysResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, keysResult{
		Relation: []string{"A", "B", "C", "D"},
		FDs:      []string{"A-B", "B-C"},
		Keys:     [][]string{{"A", "D"}},
		Prime:    []string{"A", "D"},
	}, res)
}

func TestKeys_YAMLSchema(t *testing.T) {
	t.Chdir(t.TempDir())
	schema := writeFile(t, "schema.yaml", `
relation: []
`)
	out, _, err := run(t, "keys", "--schema", schema, "-o", "yaml")
	require.NoError(t, err)

	var res keysResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, [][]string{{}}, res.Keys, "the empty relation has the empty key")
}

func TestKeys_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := run(t, "keys", "-r", "A, B", "-f", "A-")
	var mie *candkey.MalformedInputError
	assert.True(t, errors.As(err, &mie), "got %v", err)

	_, _, err = run(t, "keys", "-r", "A, B,")
	assert.True(t, errors.As(err, &mie), "got %v", err)

	_, _, err = run(t, "keys", "-r", "A, B", "-f", "A-C")
	assert.ErrorContains(t, err, "unknown {C}")

	_, _, err = run(t, "keys", "-r", "A, B, C", "--max-attributes", "2")
	var tma *candkey.TooManyAttributesError
	assert.True(t, errors.As(err, &tma), "got %v", err)

	_, _, err = run(t, "keys")
	assert.ErrorContains(t, err, "no relation given")

	_, _, err = run(t, "keys", "-r", "A", "--schema", "schema.yaml")
	assert.Error(t, err, "--schema and --relation are exclusive")

	_, _, err = run(t, "keys", "-r", "A", "-o", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestKeys_Timeout(t *testing.T) {
	t.Chdir(t.TempDir())
	names := make([]string, 22)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	_, errOut, err := run(t, "keys", "-r", strings.Join(names, ","), "--max-attributes", "0", "--timeout", "1ns")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, errOut, "searching 22 attributes with no limit")
}

func TestKeys_EmptyRelation(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := run(t, "keys", "-r", "")
	require.NoError(t, err)
	assert.Equal(t, "\n", out, "the empty relation has the empty key")

	out, _, err = run(t, "keys", "-r", "", "-o", "json")
	require.NoError(t, err)
	var res keysResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, [][]string{{}}, res.Keys)

	out, _, err = run(t, "closure", "-r", "", "-a", "")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestKeys_Config(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := writeFile(t, "ckminer.yaml", "words: true\nformat: json\n")
	out, _, err := run(t, "keys", "--config", cfg, "-r", "emp, dept", "-f", "emp -> dept")
	require.NoError(t, err)

	var res keysResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, [][]string{{"emp"}}, res.Keys)
}

func TestKeys_Verbose(t *testing.T) {
	t.Chdir(t.TempDir())
	_, errOut, err := run(t, "keys", "-v", "-r", "A, B", "-f", "A-B")
	require.NoError(t, err)
	assert.Contains(t, errOut, "searching 2 attributes under 1 fds")
	assert.Contains(t, errOut, "found 1 candidate keys")
}

func TestClosure(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := run(t, "closure", "-r", "A, B, C, D", "-f", "A-BC, AC-D", "-a", "A")
	require.NoError(t, err)
	assert.Equal(t, "ABCD\n", out)

	out, _, err = run(t, "closure", "-r", "A, B, C, D", "-f", "A-B, BC-D", "-a", "A", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "{A}+ = {A, B}\n", out)

	out, _, err = run(t, "closure", "-r", "A, B, C, D", "-f", "A-B, BC-D", "-a", "A, C", "-o", "json")
	require.NoError(t, err)
	var res closureResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, closureResult{
		Attributes: []string{"A", "C"},
		Closure:    []string{"A", "B", "C", "D"},
		Superkey:   true,
	}, res)

	_, _, err = run(t, "closure", "-r", "A, B", "-a", "Z")
	assert.ErrorContains(t, err, "unknown {Z}")

	_, _, err = run(t, "closure", "-r", "A, B")
	assert.ErrorContains(t, err, "--attrs")
}

// newShopDB creates a database with the orders table.
func newShopDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shop.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`CREATE TABLE orders (PNO INTEGER, SNO INTEGER, Qty INTEGER)`)
	require.NoError(t, err)
	return path
}

func TestKeys_SQLite(t *testing.T) {
	t.Chdir(t.TempDir())
	path := newShopDB(t)
	out, _, err := run(t, "keys", "--sqlite", path, "--table", "orders", "--words", "-f", "PNO SNO -> Qty")
	require.NoError(t, err)
	assert.Equal(t, "PNO,SNO\n", out)

	_, _, err = run(t, "keys", "--sqlite", path, "-f", "PNO SNO -> Qty")
	assert.Error(t, err, "--sqlite needs --table")
}

func TestTables(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := run(t, "tables", "--sqlite", newShopDB(t))
	require.NoError(t, err)
	assert.Equal(t, "orders {PNO, Qty, SNO}\n", out)
}

func TestVersion(t *testing.T) {
	t.Chdir(t.TempDir())
	old := version
	version = "v1.2.3"
	defer func() { version = old }()

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ckminer v1.2.3\n", out)
}
