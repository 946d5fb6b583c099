package expr

import (
	"strconv"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/pkg/errors"
)

// Eval parses src and evaluates it against env.
func Eval(env Env, src string) (Value, error) {
	stmt, err := Parse(src)
	if err != nil {
		return Value{}, err
	}

	return stmt.Eval(env)
}

// Eval runs the statement. Assignment stores a copy of the result under the
// target name; compound assignment updates the bound graph in place with the
// algebra compound forms. Algebra errors are returned unwrapped.
func (s *Statement) Eval(env Env) (Value, error) {
	v, err := s.Expr.eval(env)
	if err != nil || s.Assign == nil {
		return v, err
	}
	target, op := s.Assign.Target, s.Assign.Op

	if op == "=" {
		if v.Kind != KindGraph {
			return Value{}, errors.Wrapf(ErrType, "cannot bind %s to %q", v.Kind, target)
		}
		g := v.Graph.Clone()
		env.SetGraph(target, g)

		return graphValue(g), nil
	}

	g, ok := env.Graph(target)
	if !ok {
		return Value{}, errors.Wrapf(ErrUnknownGraph, "%q", target)
	}
	switch {
	case op == "+=" && v.Kind == KindGraph:
		err = g.AddAssign(v.Graph)
	case op == "-=" && v.Kind == KindGraph:
		err = g.SubAssign(v.Graph)
	case op == "*=" && v.Kind == KindGraph:
		err = g.MulAssign(v.Graph)
	case op == "*=" && v.Kind == KindInt:
		g.ScaleAssign(v.Int)
	case op == "/=" && v.Kind == KindInt:
		err = g.DivAssign(v.Int)
	default:
		return Value{}, errors.Wrapf(ErrType, "graph %s %s", op, v.Kind)
	}
	if err != nil {
		return Value{}, err
	}

	return graphValue(g), nil
}

func (c *Comparison) eval(env Env) (Value, error) {
	left, err := c.Left.eval(env)
	if err != nil || c.Tail == nil {
		return left, err
	}
	right, err := c.Tail.Right.eval(env)
	if err != nil {
		return Value{}, err
	}

	return compare(c.Tail.Op, left, right)
}

func compare(op string, a, b Value) (Value, error) {
	switch {
	case a.Kind == KindGraph && b.Kind == KindGraph:
		x, y := a.Graph, b.Graph
		switch op {
		case "<":
			return boolValue(algebra.Less(x, y)), nil
		case "<=":
			return boolValue(algebra.LessOrEqual(x, y)), nil
		case ">":
			return boolValue(algebra.Greater(x, y)), nil
		case ">=":
			return boolValue(algebra.GreaterOrEqual(x, y)), nil
		case "==":
			return boolValue(algebra.Equal(x, y)), nil
		case "!=":
			return boolValue(algebra.NotEqual(x, y)), nil
		}
	case a.Kind == KindInt && b.Kind == KindInt:
		x, y := a.Int, b.Int
		switch op {
		case "<":
			return boolValue(x < y), nil
		case "<=":
			return boolValue(x <= y), nil
		case ">":
			return boolValue(x > y), nil
		case ">=":
			return boolValue(x >= y), nil
		case "==":
			return boolValue(x == y), nil
		case "!=":
			return boolValue(x != y), nil
		}
	case a.Kind == KindBool && b.Kind == KindBool:
		switch op {
		case "==":
			return boolValue(a.Bool == b.Bool), nil
		case "!=":
			return boolValue(a.Bool != b.Bool), nil
		}
	}

	return Value{}, typeError(a, op, b)
}

func (a *Additive) eval(env Env) (Value, error) {
	acc, err := a.Head.eval(env)
	if err != nil {
		return Value{}, err
	}
	for _, term := range a.Tail {
		rhs, err := term.Operand.eval(env)
		if err != nil {
			return Value{}, err
		}
		if acc, err = additive(term.Op, acc, rhs); err != nil {
			return Value{}, err
		}
	}

	return acc, nil
}

func additive(op string, a, b Value) (Value, error) {
	switch {
	case a.Kind == KindGraph && b.Kind == KindGraph:
		var g *algebra.Graph
		var err error
		if op == "+" {
			g, err = algebra.Add(a.Graph, b.Graph)
		} else {
			g, err = algebra.Sub(a.Graph, b.Graph)
		}
		if err != nil {
			return Value{}, err
		}

		return graphValue(g), nil
	case a.Kind == KindInt && b.Kind == KindInt:
		if op == "+" {
			return intValue(a.Int + b.Int), nil
		}

		return intValue(a.Int - b.Int), nil
	}

	return Value{}, typeError(a, op, b)
}

func (m *Multiplicative) eval(env Env) (Value, error) {
	acc, err := m.Head.eval(env)
	if err != nil {
		return Value{}, err
	}
	for _, term := range m.Tail {
		rhs, err := term.Operand.eval(env)
		if err != nil {
			return Value{}, err
		}
		if acc, err = multiplicative(term.Op, acc, rhs); err != nil {
			return Value{}, err
		}
	}

	return acc, nil
}

func multiplicative(op string, a, b Value) (Value, error) {
	ak, bk := a.Kind, b.Kind
	switch op {
	case "*":
		switch {
		case ak == KindGraph && bk == KindGraph:
			g, err := algebra.Mul(a.Graph, b.Graph)
			if err != nil {
				return Value{}, err
			}

			return graphValue(g), nil
		case ak == KindGraph && bk == KindInt:
			return graphValue(algebra.Scale(a.Graph, b.Int)), nil
		case ak == KindInt && bk == KindGraph:
			return graphValue(algebra.Scale(b.Graph, a.Int)), nil
		case ak == KindInt && bk == KindInt:
			return intValue(a.Int * b.Int), nil
		}
	case "/":
		switch {
		case ak == KindGraph && bk == KindInt:
			g, err := algebra.Div(a.Graph, b.Int)
			if err != nil {
				return Value{}, err
			}

			return graphValue(g), nil
		case ak == KindInt && bk == KindInt:
			if b.Int == 0 {
				return Value{}, algebra.ErrDivideByZero
			}

			return intValue(a.Int / b.Int), nil
		}
	}

	return Value{}, typeError(a, op, b)
}

func (u *Unary) eval(env Env) (Value, error) {
	v, err := u.Postfix.eval(env)
	if err != nil {
		return Value{}, err
	}
	name, bound := u.Postfix.identOnly()

	for i := len(u.Ops) - 1; i >= 0; i-- {
		op := u.Ops[i]
		// Only the innermost operator sees the identifier itself.
		inPlace := bound && i == len(u.Ops)-1
		if v, err = prefix(env, op, v, name, inPlace); err != nil {
			return Value{}, err
		}
	}

	return v, nil
}

func prefix(env Env, op string, v Value, name string, inPlace bool) (Value, error) {
	switch v.Kind {
	case KindInt:
		switch op {
		case "+":
			return v, nil
		case "-":
			return intValue(-v.Int), nil
		case "++":
			return intValue(v.Int + 1), nil
		case "--":
			return intValue(v.Int - 1), nil
		}
	case KindGraph:
		switch op {
		case "+":
			return graphValue(algebra.Identity(v.Graph)), nil
		case "-":
			return graphValue(algebra.Negate(v.Graph)), nil
		case "++", "--":
			g := v.Graph
			if !inPlace {
				g = g.Clone()
			}
			if op == "++" {
				g.Inc()
			} else {
				g.Dec()
			}
			if inPlace {
				env.SetGraph(name, g)
			}

			return graphValue(g), nil
		}
	}

	return Value{}, errors.Wrapf(ErrType, "%s%s", op, v.Kind)
}

func (p *Postfix) eval(env Env) (Value, error) {
	v, err := p.Primary.eval(env)
	if err != nil {
		return Value{}, err
	}
	for _, op := range p.Ops {
		switch v.Kind {
		case KindGraph:
			if op == "++" {
				v = graphValue(algebra.PostInc(v.Graph))
			} else {
				v = graphValue(algebra.PostDec(v.Graph))
			}
		case KindInt:
			if op == "++" {
				v = intValue(v.Int + 1)
			} else {
				v = intValue(v.Int - 1)
			}
		default:
			return Value{}, errors.Wrapf(ErrType, "%s%s", v.Kind, op)
		}
	}

	return v, nil
}

func (p *Primary) eval(env Env) (Value, error) {
	switch {
	case p.Ident != "":
		g, ok := env.Graph(p.Ident)
		if !ok {
			return Value{}, errors.Wrapf(ErrUnknownGraph, "%q", p.Ident)
		}

		return graphValue(g), nil
	case p.Int != "":
		i, err := strconv.Atoi(p.Int)
		if err != nil {
			return Value{}, errors.Wrapf(ErrSyntax, "integer %s", p.Int)
		}

		return intValue(i), nil
	default:
		return p.Sub.eval(env)
	}
}

func typeError(a Value, op string, b Value) error {
	return errors.Wrapf(ErrType, "%s %s %s", a.Kind, op, b.Kind)
}
