package ast

// Literal and reference helpers.

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Nil() *NilLiteral {
	return NewNilLiteral()
}

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

// Expression helpers.

func Not(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryNot, operand)
}

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryNegate, operand)
}

func Bin(op BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func And(left, right Expression) *LogicalExpression {
	return NewLogicalExpression(LogicalAnd, left, right)
}

func Or(left, right Expression) *LogicalExpression {
	return NewLogicalExpression(LogicalOr, left, right)
}

func Group(expr Expression) *Grouping {
	return NewGrouping(expr)
}

func Assign(name string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(name, value)
}

func Call(callee string, args ...Expression) *CallExpression {
	return NewCallExpression(callee, args)
}

// Statement helpers.

func Expr(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}

func Print(expr Expression) *PrintStatement {
	return NewPrintStatement(expr)
}

func Var(name string, initializer Expression) *VarDeclaration {
	return NewVarDeclaration(name, initializer)
}

func Fun(name string, params []string, body ...Statement) *FunctionDeclaration {
	return NewFunctionDeclaration(name, params, NewBlock(body))
}

func Blk(body ...Statement) *Block {
	return NewBlock(body)
}

func If(condition Expression, thenBranch, elseBranch Statement) *IfStatement {
	return NewIfStatement(condition, thenBranch, elseBranch)
}

func While(condition Expression, body Statement) *WhileStatement {
	return NewWhileStatement(condition, body)
}

func Ret(argument Expression) *ReturnStatement {
	return NewReturnStatement(argument)
}

func Prog(body ...Statement) *Program {
	return NewProgram(body)
}
