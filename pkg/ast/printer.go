package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a node as a parenthesised prefix expression, e.g.
// `(- (- 10 3) 1)`. Parser tests compare trees through this form.
func Format(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("<nil>")
	case *NumberLiteral:
		b.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
	case *StringLiteral:
		b.WriteString(strconv.Quote(n.Value))
	case *BooleanLiteral:
		b.WriteString(strconv.FormatBool(n.Value))
	case *NilLiteral:
		b.WriteString("nil")
	case *Identifier:
		b.WriteString(n.Name)
	case *UnaryExpression:
		parens(b, string(n.Operator), n.Operand)
	case *BinaryExpression:
		parens(b, string(n.Operator), n.Left, n.Right)
	case *LogicalExpression:
		parens(b, string(n.Operator), n.Left, n.Right)
	case *Grouping:
		parens(b, "group", n.Expression)
	case *AssignmentExpression:
		parens(b, "= "+n.Name, n.Value)
	case *CallExpression:
		args := make([]Node, 0, len(n.Arguments))
		for _, arg := range n.Arguments {
			args = append(args, arg)
		}
		parens(b, "call "+n.Callee, args...)
	case *ExpressionStatement:
		parens(b, "expr", n.Expression)
	case *PrintStatement:
		parens(b, "print", n.Expression)
	case *VarDeclaration:
		if n.Initializer == nil {
			parens(b, "var "+n.Name)
			return
		}
		parens(b, "var "+n.Name, n.Initializer)
	case *FunctionDeclaration:
		head := fmt.Sprintf("fun %s(%s)", n.Name, strings.Join(n.Params, " "))
		parens(b, head, n.Body)
	case *Block:
		parens(b, "block", statementsAsNodes(n.Body)...)
	case *IfStatement:
		if n.ElseBranch == nil {
			parens(b, "if", n.Condition, n.ThenBranch)
			return
		}
		parens(b, "if", n.Condition, n.ThenBranch, n.ElseBranch)
	case *WhileStatement:
		parens(b, "while", n.Condition, n.Body)
	case *ReturnStatement:
		if n.Argument == nil {
			parens(b, "return")
			return
		}
		parens(b, "return", n.Argument)
	case *Program:
		parens(b, "program", statementsAsNodes(n.Body)...)
	default:
		fmt.Fprintf(b, "<%s>", node.NodeType())
	}
}

func parens(b *strings.Builder, head string, children ...Node) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, child := range children {
		b.WriteByte(' ')
		writeNode(b, child)
	}
	b.WriteByte(')')
}

func statementsAsNodes(stmts []Statement) []Node {
	out := make([]Node, 0, len(stmts))
	for _, stmt := range stmts {
		out = append(out, stmt)
	}
	return out
}
