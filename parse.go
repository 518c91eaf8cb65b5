// parse reads headings and functional dependencies from text

package candkey

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/jonlawlor/candkey/att"
)

// headingGrammar is a comma separated list of attribute names,
// like "A, B, C".
//
//nolint:govet // participle grammar tags are not standard struct tags
type headingGrammar struct {
	Attributes []string `( @Ident ( "," @Ident )* )?`
}

// fdListGrammar is a comma separated list of FDs, like "AB-C, CD-E".
//
//nolint:govet // participle grammar tags are not standard struct tags
type fdListGrammar struct {
	FDs []*fdGrammar `( @@ ( "," @@ )* )?`
}

// either side may be empty here, so that the error can say which one is
// missing instead of reporting an unexpected token.
//
//nolint:govet // participle grammar tags are not standard struct tags
type fdGrammar struct {
	Pos    lexer.Position
	EndPos lexer.Position

	LHS   []string `@Ident*`
	Arrow string   `@Arrow`
	RHS   []string `@Ident*`
}

// textLexer tokenizes headings and FDs.  Attribute names are runs of
// letters, digits and underscores.
var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[\p{L}\p{N}_]+`},
	{Name: "Arrow", Pattern: `->?`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	headingParser = participle.MustBuild[headingGrammar](
		participle.Lexer(textLexer),
		participle.Elide("Whitespace"),
	)
	fdParser = participle.MustBuild[fdListGrammar](
		participle.Lexer(textLexer),
		participle.Elide("Whitespace"),
	)
)

// ParseRelation parses a heading written as a comma separated list of
// attribute names, like "A, B, C, D".  Whitespace is ignored, duplicates are
// removed, and an empty string is the empty heading.
func ParseRelation(s string) (att.Set, error) {
	h, err := headingParser.ParseString("", s)
	if err != nil {
		return nil, malformed(s, err)
	}
	return att.FromStrings(h.Attributes...), nil
}

// ParseFDs parses a comma separated list of FDs, like "AB-C, CD-E".  Each
// letter on either side of the "-" is one attribute, so "AB-C" is the FD
// {A, B} -> {C}.  The arrow may also be written "->".  Both sides must name at
// least one attribute.  An empty string has no FDs.
func ParseFDs(s string) ([]FD, error) {
	return parseFDs(s, letters)
}

// ParseWordFDs is like ParseFDs, except that the attributes on each side are
// whole words separated by spaces, so "emp dept -> mgr" is the FD
// {dept, emp} -> {mgr}.
func ParseWordFDs(s string) ([]FD, error) {
	return parseFDs(s, func(words []string) []string { return words })
}

func parseFDs(s string, split func([]string) []string) ([]FD, error) {
	l, err := fdParser.ParseString("", s)
	if err != nil {
		return nil, malformed(s, err)
	}
	fds := make([]FD, len(l.FDs))
	for i, f := range l.FDs {
		if len(f.LHS) == 0 {
			return nil, &MalformedInputError{Input: s, Offset: f.Pos.Offset, Reason: "missing determinant before " + f.Arrow}
		}
		if len(f.RHS) == 0 {
			return nil, &MalformedInputError{Input: s, Offset: f.EndPos.Offset, Reason: "missing dependent after " + f.Arrow}
		}
		fds[i] = NewFD(split(f.LHS), split(f.RHS))
	}
	return fds, nil
}

// letters splits words into one attribute name per character.
func letters(words []string) []string {
	var names []string
	for _, w := range words {
		for _, c := range w {
			names = append(names, string(c))
		}
	}
	return names
}

// malformed converts an error from the parser into a *MalformedInputError
func malformed(s string, err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &MalformedInputError{Input: s, Offset: perr.Position().Offset, Reason: perr.Message()}
	}
	return &MalformedInputError{Input: s, Reason: err.Error()}
}
