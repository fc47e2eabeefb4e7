// Package syntax is a structural Rust front end: it understands items,
// attributes, visibility, impl blocks and fn signatures, and treats every
// body as a balanced token tree.
package syntax

import (
	stderrors "errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/roast/internal/errors"
)

// rustLexer tokenizes Rust source. Rules with lowercase names are dropped by
// the lexer. Block comments nest, and a raw string ends at a quote followed
// by as many hashes as it opened with.
var rustLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "lineComment", Pattern: `//[^\n]*`},
		{Name: "blockComment", Pattern: `/\*`, Action: lexer.Push("BlockComment")},
		{Name: "whitespace", Pattern: `\s+`},
		{Name: "RawString", Pattern: `b?r(#*)"`, Action: lexer.Push("RawString")},
		{Name: "String", Pattern: `b?"(?:\\(?s:.)|[^"\\])*"`},
		{Name: "Char", Pattern: `b?'(?:\\(?:x[0-9a-fA-F]{2}|u\{[0-9a-fA-F_]+\}|.)|[^'\\])'`},
		{Name: "Lifetime", Pattern: `'[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Number", Pattern: `[0-9][0-9a-zA-Z_]*(?:\.[0-9][0-9_]*(?:[eE][+-]?[0-9_]+)?[a-zA-Z0-9_]*)?`},
		{Name: "Ident", Pattern: `r#[a-zA-Z_][a-zA-Z0-9_]*|[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `::|->|=>|\.\.\.|\.\.=|\.\.|[-+*/%^!&|<>=@.,;:#$?~\\]`},
		{Name: "Open", Pattern: `[{(\[]`},
		{Name: "Close", Pattern: `[})\]]`},
	},
	"BlockComment": {
		{Name: "blockCommentOpen", Pattern: `/\*`, Action: lexer.Push("BlockComment")},
		{Name: "blockCommentClose", Pattern: `\*/`, Action: lexer.Pop()},
		{Name: "blockCommentText", Pattern: `[^*/]+|[*/]`},
	},
	"RawString": {
		{Name: "rawStringEnd", Pattern: `"\1`, Action: lexer.Pop()},
		{Name: "rawStringText", Pattern: `[^"]+|"`},
	},
})

// Parser parses Rust source into the item-level File structure
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds the Rust grammar
func NewParser() *Parser {
	parser := participle.MustBuild[File](
		participle.Lexer(rustLexer),
		participle.UseLookahead(6),
	)

	return &Parser{parser: parser}
}

// Parse parses one source file. Failures are returned as *errors.SyntaxError
// carrying the position participle reported.
func (p *Parser) Parse(filename string, src []byte) (*File, error) {
	file, err := p.parser.ParseBytes(filename, src)
	if err != nil {
		loc := errors.SourceLocation{File: filename}
		message := err.Error()

		var perr participle.Error
		if stderrors.As(err, &perr) {
			pos := perr.Position()
			loc.Line = pos.Line
			loc.Column = pos.Column
			message = perr.Message()
		}

		return nil, errors.NewSyntaxError(fmt.Sprintf("cannot parse Rust source: %s", message), loc, err)
	}
	return file, nil
}

// String dumps the grammar in EBNF, for debugging
func (p *Parser) String() string {
	return p.parser.String()
}

var defaultParser = NewParser()

// Parse parses one source file with the shared parser
func Parse(filename string, src []byte) (*File, error) {
	return defaultParser.Parse(filename, src)
}
