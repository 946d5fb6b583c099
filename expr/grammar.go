package expr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Statement is the root of the grammar.
type Statement struct {
	Assign *Assign     `parser:"@@?"`
	Expr   *Comparison `parser:"@@"`
}

// Assign binds or updates a named graph.
type Assign struct {
	Target string `parser:"@Ident"`
	Op     string `parser:"@(\"=\" | \"+=\" | \"-=\" | \"*=\" | \"/=\")"`
}

type Comparison struct {
	Left *Additive `parser:"@@"`
	Tail *CmpTail  `parser:"@@?"`
}

type CmpTail struct {
	Op    string    `parser:"@(\"<=\" | \">=\" | \"==\" | \"!=\" | \"<\" | \">\")"`
	Right *Additive `parser:"@@"`
}

type Additive struct {
	Head *Multiplicative `parser:"@@"`
	Tail []*AddTerm      `parser:"@@*"`
}

type AddTerm struct {
	Op      string          `parser:"@(\"+\" | \"-\")"`
	Operand *Multiplicative `parser:"@@"`
}

type Multiplicative struct {
	Head *Unary     `parser:"@@"`
	Tail []*MulTerm `parser:"@@*"`
}

type MulTerm struct {
	Op      string `parser:"@(\"*\" | \"/\")"`
	Operand *Unary `parser:"@@"`
}

// Unary holds prefix operators; they apply right to left.
type Unary struct {
	Ops     []string `parser:"@(\"++\" | \"--\" | \"+\" | \"-\")*"`
	Postfix *Postfix `parser:"@@"`
}

// Postfix holds postfix operators; they apply left to right.
type Postfix struct {
	Primary *Primary `parser:"@@"`
	Ops     []string `parser:"@(\"++\" | \"--\")*"`
}

type Primary struct {
	Ident string      `parser:"@Ident"`
	Int   string      `parser:"| @Int"`
	Sub   *Comparison `parser:"| \"(\" @@ \")\""`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Op", Pattern: `\+\+|--|\+=|-=|\*=|/=|<=|>=|==|!=|[-+*/<>()=]`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var parseStatement = participle.MustBuild[Statement](
	participle.Lexer(exprLexer),
	participle.UseLookahead(2),
)

// Parse parses one statement.
func Parse(src string) (*Statement, error) {
	stmt, err := parseStatement.ParseString("", src)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%q: %v", src, err)
	}

	return stmt, nil
}

// identOnly returns the identifier when p is a bare name with no postfix.
func (p *Postfix) identOnly() (string, bool) {
	if len(p.Ops) != 0 || p.Primary.Ident == "" {
		return "", false
	}

	return p.Primary.Ident, true
}
