package syntax

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is the item-level structure of one Rust source file
type File struct {
	Inner []*Attribute `parser:"( '#' '!' @@ )*"`
	Items []*Item      `parser:"@@*"`
}

// Item is a top-level item. Only impl blocks are parsed structurally;
// everything else is kept as an opaque token sequence.
type Item struct {
	Pos        lexer.Position
	Attributes []*Attribute `parser:"( '#' @@ )*"`
	Visibility *Visibility  `parser:"@@?"`
	Impl       *Impl        `parser:"( @@"`
	Other      *Opaque      `parser:"| @@"`
	Semi       bool         `parser:"| @';' )"`
}

// Attribute is the bracketed body of #[...] or #![...]
type Attribute struct {
	Pos    lexer.Position
	Tokens []*TokenTree `parser:"'[' @@* ']'"`
}

// Visibility is a pub qualifier, optionally restricted as in pub(crate)
type Visibility struct {
	Pub        bool     `parser:"@'pub'"`
	Restricted []string `parser:"( '(' ( @~')' )+ ')' )?"`
}

// Impl is an impl block, inherent or trait
type Impl struct {
	Pos      lexer.Position
	Unsafe   bool          `parser:"@'unsafe'?"`
	Generics *AngleGroup   `parser:"'impl' @@?"`
	Header   []*HeadTree   `parser:"@@+"`
	Inner    []*Attribute  `parser:"'{' ( '#' '!' @@ )*"`
	Members  []*ImplMember `parser:"@@* '}'"`
}

// ImplMember is one associated item of an impl block
type ImplMember struct {
	Pos        lexer.Position
	Attributes []*Attribute `parser:"( '#' @@ )*"`
	Visibility *Visibility  `parser:"@@?"`
	Function   *Function    `parser:"( @@"`
	Other      *Opaque      `parser:"| @@"`
	Semi       bool         `parser:"| @';' )"`
}

// Function is a fn signature; the body is kept unparsed
type Function struct {
	Pos        lexer.Position
	Qualifiers []string    `parser:"@( 'const' | 'async' | 'unsafe' | 'default' )*"`
	Extern     []string    `parser:"( @'extern' @String? )?"`
	Name       string      `parser:"'fn' @Ident"`
	Generics   *AngleGroup `parser:"@@?"`
	Params     []*Param    `parser:"'(' ( @@ ( ',' @@ )* ','? )? ')'"`
	Return     []*TypeTree `parser:"( '->' @@+ )?"`
	Where      []*HeadTree `parser:"( 'where' @@* )?"`
	Body       *Group      `parser:"( @@"`
	Declared   bool        `parser:"| @';' )"`
}

// Param is one entry of a parameter list
type Param struct {
	Pos        lexer.Position
	Attributes []*Attribute `parser:"( '#' @@ )*"`
	Self       *SelfParam   `parser:"( @@"`
	Typed      *TypedParam  `parser:"| @@ )"`
}

// SelfParam is a receiver: self, mut self, &self, &'a mut self, self: Type
type SelfParam struct {
	Ref      bool        `parser:"( @'&'"`
	Lifetime string      `parser:"  @Lifetime? )?"`
	Mut      bool        `parser:"@'mut'?"`
	Self     bool        `parser:"@'self'"`
	Type     []*TypeTree `parser:"( ':' @@+ )?"`
}

// TypedParam is a pattern with a type ascription
type TypedParam struct {
	Pattern []*PatternTree `parser:"@@+ ':'"`
	Type    []*TypeTree    `parser:"@@+"`
}

// Opaque is any item the generator does not look inside. It ends at a
// top-level brace group or a semicolon.
type Opaque struct {
	Head []*HeadTree `parser:"@@+"`
	Body *Group      `parser:"( @@"`
	Semi bool        `parser:"| @';' )"`
}

// Group is a balanced {...}, (...) or [...] token tree
type Group struct {
	Open   string       `parser:"@Open"`
	Tokens []*TokenTree `parser:"@@*"`
	Close  string       `parser:"@Close"`
}

// ParenGroup is a balanced (...) or [...] token tree
type ParenGroup struct {
	Open   string       `parser:"@( '(' | '[' )"`
	Tokens []*TokenTree `parser:"@@*"`
	Close  string       `parser:"@( ')' | ']' )"`
}

// TokenTree is a single token or a nested group
type TokenTree struct {
	Group *Group `parser:"  @@"`
	Token string `parser:"| @~( Open | Close )"`
}

// HeadTree is a token tree that stops at a brace or a semicolon
type HeadTree struct {
	Group *ParenGroup `parser:"  @@"`
	Token string      `parser:"| @~( Open | Close | ';' )"`
}

// AngleGroup is a balanced <...> generic argument list
type AngleGroup struct {
	Items []*AngleTree `parser:"'<' @@* '>'"`
}

// AngleTree is one element inside an AngleGroup
type AngleTree struct {
	Angle *AngleGroup `parser:"  @@"`
	Group *Group      `parser:"| @@"`
	Token string      `parser:"| @~( Open | Close | '<' | '>' )"`
}

// TypeTree is one element of a type; it stops at ',' ';' '{' and 'where'
type TypeTree struct {
	Angle *AngleGroup `parser:"  @@"`
	Group *ParenGroup `parser:"| @@"`
	Token string      `parser:"| @~( Open | Close | ',' | ';' | '<' | '>' | 'where' )"`
}

// PatternTree is one element of a parameter pattern; it stops at ':' and ','
type PatternTree struct {
	Group *Group `parser:"  @@"`
	Token string `parser:"| @~( Open | Close | ':' | ',' )"`
}
