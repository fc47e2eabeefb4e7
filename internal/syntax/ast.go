package syntax

import (
	"strings"
)

// IsPublic reports whether the visibility is a bare pub
func (v *Visibility) IsPublic() bool {
	return v != nil && v.Pub && len(v.Restricted) == 0
}

// String renders the visibility as written
func (v *Visibility) String() string {
	if v == nil {
		return ""
	}
	if len(v.Restricted) == 0 {
		return "pub"
	}
	return "pub(" + joinTokens(v.Restricted) + ")"
}

// SelfTypeSegments returns the identifiers of the implemented type's path.
// For trait impls only the part after `for` counts.
func (i *Impl) SelfTypeSegments() []string {
	var segments []string
	depth := 0
	for _, tree := range i.Header {
		if tree.Group != nil {
			continue
		}
		switch tok := tree.Token; {
		case tok == "<":
			depth++
		case tok == ">":
			depth--
		case depth > 0:
		case tok == "for":
			segments = segments[:0]
		case tok == "where":
			return segments
		case isIdent(tok) && !isTypeKeyword(tok):
			segments = append(segments, tok)
		}
	}
	return segments
}

// Implements reports whether any self type segment equals name
func (i *Impl) Implements(name string) bool {
	for _, segment := range i.SelfTypeSegments() {
		if segment == name {
			return true
		}
	}
	return false
}

// HeaderText renders the impl header, e.g. "Display for Entity"
func (i *Impl) HeaderText() string {
	parts := make([]string, 0, len(i.Header))
	for _, tree := range i.Header {
		parts = append(parts, tree.String())
	}
	return joinTokens(parts)
}

// Derives lists the trait names in #[derive(...)] attributes, last path segment only
func (it *Item) Derives() []string {
	var derives []string
	for _, attr := range it.Attributes {
		if len(attr.Tokens) < 2 || attr.Tokens[0].Token != "derive" || attr.Tokens[1].Group == nil {
			continue
		}
		current := ""
		for _, tree := range attr.Tokens[1].Group.Tokens {
			switch {
			case tree.Token == ",":
				if current != "" {
					derives = append(derives, current)
				}
				current = ""
			case isIdent(tree.Token):
				current = tree.Token
			}
		}
		if current != "" {
			derives = append(derives, current)
		}
	}
	return derives
}

// HasDerive reports whether the item derives the named trait
func (it *Item) HasDerive(name string) bool {
	for _, derive := range it.Derives() {
		if derive == name {
			return true
		}
	}
	return false
}

// StructName returns the declared name of a struct or enum item, or ""
func (it *Item) StructName() string {
	if it.Other == nil || len(it.Other.Head) < 2 {
		return ""
	}
	switch it.Other.Head[0].Token {
	case "struct", "enum":
		if name := it.Other.Head[1].Token; isIdent(name) {
			return name
		}
	}
	return ""
}

// IsPublic reports whether the member has bare pub visibility
func (m *ImplMember) IsPublic() bool {
	return m.Visibility.IsPublic()
}

// ReturnText renders the return type, or "" when none is declared
func (f *Function) ReturnText() string {
	return TypeText(f.Return)
}

// Signature renders the fn signature without its body
func (f *Function) Signature() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	sig := "fn " + f.Name + "(" + strings.Join(params, ", ") + ")"
	if ret := f.ReturnText(); ret != "" {
		sig += " -> " + ret
	}
	return sig
}

// String renders the parameter as written, whitespace normalized
func (p *Param) String() string {
	if p.Self != nil {
		return p.Self.String()
	}
	return p.Typed.PatternText() + ": " + p.Typed.TypeText()
}

// IsBorrow reports whether the receiver is taken by reference
func (s *SelfParam) IsBorrow() bool {
	if s.Ref {
		return true
	}
	return len(s.Type) > 0 && s.Type[0].Token == "&"
}

// IsMutable reports whether the receiver is mutable, either the binding or the borrow
func (s *SelfParam) IsMutable() bool {
	if s.Mut {
		return true
	}
	return len(s.Type) > 1 && s.Type[0].Token == "&" && s.Type[1].Token == "mut"
}

// String renders the receiver as written
func (s *SelfParam) String() string {
	var parts []string
	if s.Ref {
		parts = append(parts, "&")
		if s.Lifetime != "" {
			parts = append(parts, s.Lifetime)
		}
	}
	if s.Mut {
		parts = append(parts, "mut")
	}
	text := joinTokens(append(parts, "self"))
	if len(s.Type) > 0 {
		text += ": " + TypeText(s.Type)
	}
	return text
}

// PatternText renders the binding pattern
func (t *TypedParam) PatternText() string {
	parts := make([]string, len(t.Pattern))
	for i, tree := range t.Pattern {
		parts[i] = tree.String()
	}
	return joinTokens(parts)
}

// TypeText renders the ascribed type
func (t *TypedParam) TypeText() string {
	return TypeText(t.Type)
}

// BindingName returns the identifier of a plain identifier pattern
// (x, mut x, ref x, ref mut x). ok is false for any other pattern.
func (t *TypedParam) BindingName() (string, bool) {
	tokens := make([]string, 0, len(t.Pattern))
	for _, tree := range t.Pattern {
		if tree.Group != nil {
			return "", false
		}
		tokens = append(tokens, tree.Token)
	}
	for len(tokens) > 1 && (tokens[0] == "ref" || tokens[0] == "mut") {
		tokens = tokens[1:]
	}
	if len(tokens) != 1 || tokens[0] == "_" || !isIdent(tokens[0]) || isTypeKeyword(tokens[0]) {
		return "", false
	}
	return tokens[0], true
}

// TypePath is a type written as a plain path, e.g. std::vec::Vec<u8>
type TypePath struct {
	Segments []string
	Generics []string // rendered generic arguments per segment, "" when absent
}

// Key is the last segment with its generic arguments, e.g. "Vec<u8>"
func (p TypePath) Key() string {
	if len(p.Segments) == 0 {
		return ""
	}
	last := len(p.Segments) - 1
	return p.Segments[last] + p.Generics[last]
}

// HasGenerics reports whether any segment carries generic arguments
func (p TypePath) HasGenerics() bool {
	for _, g := range p.Generics {
		if g != "" {
			return true
		}
	}
	return false
}

// ParsePath interprets a type as a path. ok is false for references,
// tuples, arrays, slices, trait objects and anything else.
func ParsePath(trees []*TypeTree) (TypePath, bool) {
	var path TypePath
	i := 0
	if i < len(trees) && trees[i].Token == "::" {
		i++
	}
	for i < len(trees) {
		tok := trees[i].Token
		if trees[i].Angle != nil || trees[i].Group != nil || !isIdent(tok) || isTypeKeyword(tok) {
			return TypePath{}, false
		}
		path.Segments = append(path.Segments, tok)
		path.Generics = append(path.Generics, "")
		i++

		// turbofish form Vec::<u8> is accepted as well
		if i+1 < len(trees) && trees[i].Token == "::" && trees[i+1].Angle != nil {
			i++
		}
		if i < len(trees) && trees[i].Angle != nil {
			path.Generics[len(path.Generics)-1] = trees[i].Angle.String()
			i++
		}
		if i == len(trees) {
			break
		}
		if trees[i].Token != "::" || i+1 == len(trees) {
			return TypePath{}, false
		}
		i++
	}
	return path, len(path.Segments) > 0
}

// TypeText renders a type with insignificant whitespace removed
func TypeText(trees []*TypeTree) string {
	parts := make([]string, len(trees))
	for i, tree := range trees {
		parts[i] = tree.String()
	}
	return joinTokens(parts)
}

func (t *TypeTree) String() string {
	switch {
	case t.Angle != nil:
		return t.Angle.String()
	case t.Group != nil:
		return t.Group.String()
	default:
		return t.Token
	}
}

func (a *AngleGroup) String() string {
	parts := make([]string, len(a.Items))
	for i, item := range a.Items {
		switch {
		case item.Angle != nil:
			parts[i] = item.Angle.String()
		case item.Group != nil:
			parts[i] = item.Group.String()
		default:
			parts[i] = item.Token
		}
	}
	return "<" + joinTokens(parts) + ">"
}

func (g *Group) String() string {
	return g.Open + renderTrees(g.Tokens) + g.Close
}

func (g *ParenGroup) String() string {
	return g.Open + renderTrees(g.Tokens) + g.Close
}

func (t *TokenTree) String() string {
	if t.Group != nil {
		return t.Group.String()
	}
	return t.Token
}

func (h *HeadTree) String() string {
	if h.Group != nil {
		return h.Group.String()
	}
	return h.Token
}

func (p *PatternTree) String() string {
	if p.Group != nil {
		return p.Group.String()
	}
	return p.Token
}

func renderTrees(trees []*TokenTree) string {
	parts := make([]string, len(trees))
	for i, tree := range trees {
		parts[i] = tree.String()
	}
	return joinTokens(parts)
}

// joinTokens concatenates tokens, keeping a single space only where two
// word-like tokens would otherwise fuse
func joinTokens(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		if i > 0 && b.Len() > 0 && isWordByte(lastByte(b.String())) && isWordByte(tok[0]) {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

func lastByte(s string) byte {
	return s[len(s)-1]
}

func isWordByte(c byte) bool {
	return c == '_' || c == '\'' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isIdent(tok string) bool {
	tok = strings.TrimPrefix(tok, "r#")
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (i > 0 && c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}

// isTypeKeyword reports keywords that can never be a path segment
func isTypeKeyword(tok string) bool {
	switch tok {
	case "dyn", "impl", "fn", "mut", "ref", "unsafe", "extern", "for", "where", "as", "const":
		return true
	}
	return false
}
