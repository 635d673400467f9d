package cssvars

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Position is a 1-based line and column.
type Position struct {
	Line   int
	Column int
}

// VarRef is a var(--name) use inside a declaration value.
type VarRef struct {
	Name string // "--sh-color-primary"
	Pos  Position
}

// ColorLiteral is a hardcoded color inside a declaration value.
type ColorLiteral struct {
	Text string // "#fff", "rgb(0, 0, 0)"
	Pos  Position
}

// Declaration is one property: value pair.
type Declaration struct {
	Property string
	Value    string
	Pos      Position
	Refs     []VarRef
	Colors   []ColorLiteral
}

// IsCustom reports whether the declaration defines a custom property.
func (d Declaration) IsCustom() bool {
	return strings.HasPrefix(d.Property, "--")
}

// Sheet is the declaration-level view of a stylesheet.
type Sheet struct {
	Filename     string
	Declarations []Declaration // source order
}

// CustomProperties maps each defined custom property to its last value.
func (s *Sheet) CustomProperties() map[string]string {
	props := make(map[string]string)
	for _, d := range s.Declarations {
		if d.IsCustom() {
			props[d.Property] = d.Value
		}
	}
	return props
}

// CustomPropertyNames lists defined custom properties in first-seen order.
func (s *Sheet) CustomPropertyNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, d := range s.Declarations {
		if d.IsCustom() && !seen[d.Property] {
			seen[d.Property] = true
			names = append(names, d.Property)
		}
	}
	return names
}

// lexToken is a token with its byte offset in the source.
type lexToken struct {
	tt     css.TokenType
	text   string
	offset int
}

// parserState maintains context while parsing CSS
type parserState struct {
	lines []int // byte offset of each line start
	depth int
	stmt  []lexToken
	sheet *Sheet
}

// ParseTokenCSS parses CSS content into declarations. Selectors and at-rule
// preludes are skipped; only declarations inside a block are kept.
func ParseTokenCSS(content string, filename string) (*Sheet, error) {
	state := &parserState{
		lines: lineOffsets(content),
		sheet: &Sheet{Filename: filename},
	}

	lexer := css.NewLexer(parse.NewInputString(content))
	offset := 0

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("lex %s: %w", filename, err)
			}
			break
		}
		tok := lexToken{tt: tt, text: string(data), offset: offset}
		offset += len(data)

		switch tt {
		case css.CommentToken:
			continue
		case css.LeftBraceToken:
			// whatever came before was a selector or prelude
			state.stmt = state.stmt[:0]
			state.depth++
		case css.SemicolonToken:
			state.flush()
		case css.RightBraceToken:
			state.flush()
			if state.depth > 0 {
				state.depth--
			}
		default:
			state.stmt = append(state.stmt, tok)
		}
	}
	state.flush()

	return state.sheet, nil
}

// ParseTokenFile reads and parses a single CSS file
func ParseTokenFile(path string) (*Sheet, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseTokenCSS(string(content), path)
}

// flush turns the pending statement into a declaration when it is one.
func (s *parserState) flush() {
	stmt := s.stmt
	s.stmt = s.stmt[:0]
	if s.depth == 0 {
		return
	}

	stmt = trimWhitespace(stmt)
	if len(stmt) < 2 || !isPropertyName(stmt[0]) {
		return
	}

	rest := trimWhitespace(stmt[1:])
	if len(rest) == 0 || rest[0].tt != css.ColonToken {
		return
	}
	value := trimWhitespace(rest[1:])

	decl := Declaration{
		Property: strings.ToLower(stmt[0].text),
		Value:    joinValue(value),
		Pos:      s.position(stmt[0].offset),
	}
	if decl.IsCustom() {
		// custom property names are case-sensitive
		decl.Property = stmt[0].text
	}
	decl.Refs, decl.Colors = s.scanValue(value)
	if decl.Value == "" {
		return
	}
	s.sheet.Declarations = append(s.sheet.Declarations, decl)
}

// scanValue finds var() references and color literals in value tokens.
func (s *parserState) scanValue(value []lexToken) ([]VarRef, []ColorLiteral) {
	var refs []VarRef
	var colors []ColorLiteral

	for i := 0; i < len(value); i++ {
		tok := value[i]
		switch tok.tt {
		case css.HashToken:
			if isHexColor(tok.text) {
				colors = append(colors, ColorLiteral{Text: tok.text, Pos: s.position(tok.offset)})
			}
		case css.FunctionToken:
			fn := strings.ToLower(tok.text)
			if fn == "var(" {
				for j := i + 1; j < len(value); j++ {
					if value[j].tt == css.WhitespaceToken {
						continue
					}
					if isPropertyName(value[j]) && strings.HasPrefix(value[j].text, "--") {
						refs = append(refs, VarRef{Name: value[j].text, Pos: s.position(tok.offset)})
					}
					break
				}
				continue
			}
			if colorFunctions[fn] {
				end := closingParen(value, i)
				colors = append(colors, ColorLiteral{
					Text: joinValue(value[i : end+1]),
					Pos:  s.position(tok.offset),
				})
				i = end
			}
		}
	}
	return refs, colors
}

var colorFunctions = map[string]bool{"rgb(": true, "rgba(": true, "hsl(": true, "hsla(": true}

// closingParen returns the index of the parenthesis closing the function at
// start, or the last index when it is unterminated.
func closingParen(tokens []lexToken, start int) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(tokens) - 1
}

func isPropertyName(tok lexToken) bool {
	return tok.tt == css.IdentToken || tok.tt == css.CustomPropertyNameToken
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

func trimWhitespace(tokens []lexToken) []lexToken {
	for len(tokens) > 0 && tokens[0].tt == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].tt == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// joinValue concatenates tokens, collapsing whitespace runs to one space.
func joinValue(tokens []lexToken) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.tt == css.WhitespaceToken {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(tok.text)
	}
	return strings.TrimSpace(b.String())
}

func lineOffsets(content string) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

func (s *parserState) position(offset int) Position {
	// index of the last line starting at or before offset
	line := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return Position{Line: line + 1, Column: offset - s.lines[line] + 1}
}
