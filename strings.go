// strings deals with string representation of candidate keys

package candkey

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonlawlor/candkey/att"
)

// WriteKeys writes each candidate key on its own line, with the attributes
// of the key written one after another, like "AB".  Keys with longer
// attribute names are written with commas, like "PNO,SNO".
func WriteKeys(w io.Writer, cks att.CandKeys) error {
	bw := bufio.NewWriter(w)
	for _, ck := range cks {
		if _, err := fmt.Fprintln(bw, ck.Concat()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// KeyTable writes the candidate keys as a table, with the number of
// attributes in each key:
//
//	+---+-----+-----+
//	| # | Key | Deg |
//	+---+-----+-----+
//	| 1 |   A |   1 |
//	| 2 |  BC |   2 |
//	+---+-----+-----+
func KeyTable(cks att.CandKeys) string {
	rows := [][]string{{"#", "Key", "Deg"}}
	for i, ck := range cks {
		rows = append(rows, []string{strconv.Itoa(i + 1), ck.Concat(), strconv.Itoa(ck.Len())})
	}
	return stringTable(rows)
}

// stringTable writes rows as a table with a border, aligning all of the
// cells to the right.  The first row is the heading.
func stringTable(rows [][]string) string {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for j, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[j] {
				widths[j] = n
			}
		}
	}

	// make a spacer, like +---+-----+
	var sep strings.Builder
	for _, wid := range widths {
		sep.WriteString("+" + strings.Repeat("-", wid+2))
	}
	sep.WriteString("+\n")

	var s strings.Builder
	s.WriteString(sep.String())
	for i, row := range rows {
		for j, cell := range row {
			pad := widths[j] - utf8.RuneCountInString(cell)
			s.WriteString("| " + strings.Repeat(" ", pad) + cell + " ")
		}
		s.WriteString("|\n")
		if i == 0 {
			s.WriteString(sep.String())
		}
	}
	s.WriteString(sep.String())
	return strings.TrimSuffix(s.String(), "\n")
}
