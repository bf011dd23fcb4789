package ast

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/orizon-lang/astkit/internal/token"
)

// TransformationError represents an error that occurred during AST transformation.
type TransformationError struct {
	Message string
	Node    Node
}

// NewTransformationError creates a new transformation error.
func NewTransformationError(message string, node Node) *TransformationError {
	return &TransformationError{Message: message, Node: node}
}

// Error implements the error interface.
func (te *TransformationError) Error() string {
	offset, length := SourceRange(te.Node)
	if offset < 0 {
		return fmt.Sprintf("transformation error at %s: %s", NodeName(te.Node), te.Message)
	}
	return fmt.Sprintf("transformation error at %s[%d:%d]: %s", NodeName(te.Node), offset, offset+length, te.Message)
}

// Transformer defines the interface for AST transformations.
// Transformers can modify, replace, or remove AST nodes while maintaining tree integrity.
type Transformer interface {
	// Transform applies the transformation to a tree and returns its new root.
	Transform(node Node) (Node, error)
}

// TransformationPipeline represents a sequence of transformations to apply to an AST.
type TransformationPipeline struct {
	transformers []Transformer
	stopOnError  bool
}

// NewTransformationPipeline creates a new transformation pipeline.
func NewTransformationPipeline(transformers ...Transformer) *TransformationPipeline {
	return &TransformationPipeline{
		transformers: transformers,
		stopOnError:  true,
	}
}

// AddTransformer adds a transformer to the pipeline.
func (tp *TransformationPipeline) AddTransformer(transformer Transformer) {
	tp.transformers = append(tp.transformers, transformer)
}

// SetStopOnError configures whether the pipeline should stop on first error.
func (tp *TransformationPipeline) SetStopOnError(stop bool) {
	tp.stopOnError = stop
}

// Transform applies all transformations in the pipeline to the given node.
// When the pipeline does not stop on errors, every error is joined into the
// returned one.
func (tp *TransformationPipeline) Transform(node Node) (Node, error) {
	current := node

	var errs []error

	for _, transformer := range tp.transformers {
		next, err := transformer.Transform(current)
		if err != nil {
			if tp.stopOnError {
				return current, fmt.Errorf("transformation failed: %w", err)
			}

			errs = append(errs, err)
		}

		if next != nil {
			current = next
		}
	}

	return current, errors.Join(errs...)
}

// Rewrite walks the tree rooted at n bottom-up and calls f on every node.
// When f returns a different node, the result takes the original's place in
// its parent; a nil result removes the node. Rewrite returns the new root.
func Rewrite(n Node, f func(Node) (Node, error)) (Node, error) {
	if isNil(n) {
		return n, nil
	}

	for _, child := range Children(n) {
		if _, err := Rewrite(child, f); err != nil {
			return n, err
		}
	}

	result, err := f(n)
	if err != nil {
		return n, err
	}

	if result != n && n.Parent() != nil {
		if err := Replace(n, result); err != nil {
			return n, err
		}
	}

	return result, nil
}

// ConstantFoldingTransformer folds integer and boolean arithmetic whose
// operands are literals.
type ConstantFoldingTransformer struct{}

// Transform implements the Transformer interface for constant folding.
func (cft *ConstantFoldingTransformer) Transform(node Node) (Node, error) {
	return Rewrite(node, func(n Node) (Node, error) {
		switch e := n.(type) {
		case *BinaryExpression:
			return cft.foldBinaryExpression(e), nil
		case *PrefixExpression:
			return cft.foldPrefixExpression(e), nil
		case *ParenthesizedExpression:
			if lit, ok := e.Expression.(Literal); ok && isFoldable(lit) {
				if err := SetChild[Expression](e, &e.Expression, nil); err != nil {
					return n, err
				}

				return lit, nil
			}
		}

		return n, nil
	})
}

func isFoldable(lit Literal) bool {
	switch lit.(type) {
	case *IntegerLiteral, *BooleanLiteral:
		return true
	}

	return false
}

// foldBinaryExpression evaluates expr when both operands are literals of the
// same kind. Expressions that cannot be evaluated, such as division by zero,
// are returned unchanged.
func (cft *ConstantFoldingTransformer) foldBinaryExpression(expr *BinaryExpression) Node {
	offset := expr.BeginToken().Offset()

	switch left := expr.LeftOperand.(type) {
	case *IntegerLiteral:
		right, ok := expr.RightOperand.(*IntegerLiteral)
		if !ok || left.Value == nil || right.Value == nil {
			return expr
		}

		if folded := evaluateIntegerOperation(left.Value, expr.Operator.Type(), right.Value, offset); folded != nil {
			return folded
		}
	case *BooleanLiteral:
		right, ok := expr.RightOperand.(*BooleanLiteral)
		if !ok {
			return expr
		}

		switch expr.Operator.Type() {
		case token.AmpersandAmpersand:
			return booleanLiteral(left.Value && right.Value, offset)
		case token.BarBar:
			return booleanLiteral(left.Value || right.Value, offset)
		case token.EqEq:
			return booleanLiteral(left.Value == right.Value, offset)
		case token.BangEq:
			return booleanLiteral(left.Value != right.Value, offset)
		}
	}

	return expr
}

func evaluateIntegerOperation(left *big.Int, op token.Type, right *big.Int, offset int) Node {
	cmp := left.Cmp(right)

	switch op {
	case token.Plus:
		return integerLiteral(new(big.Int).Add(left, right), offset)
	case token.Minus:
		return integerLiteral(new(big.Int).Sub(left, right), offset)
	case token.Star:
		return integerLiteral(new(big.Int).Mul(left, right), offset)
	case token.TildeSlash:
		if right.Sign() == 0 {
			return nil
		}

		return integerLiteral(new(big.Int).Quo(left, right), offset)
	case token.Percent:
		if right.Sign() == 0 {
			return nil
		}
		// Euclidean modulus: the result is never negative.
		return integerLiteral(new(big.Int).Mod(left, right), offset)
	case token.EqEq:
		return booleanLiteral(cmp == 0, offset)
	case token.BangEq:
		return booleanLiteral(cmp != 0, offset)
	case token.Lt:
		return booleanLiteral(cmp < 0, offset)
	case token.LtEq:
		return booleanLiteral(cmp <= 0, offset)
	case token.Gt:
		return booleanLiteral(cmp > 0, offset)
	case token.GtEq:
		return booleanLiteral(cmp >= 0, offset)
	}

	return nil
}

// foldPrefixExpression folds negation of an integer and logical not of a
// boolean.
func (cft *ConstantFoldingTransformer) foldPrefixExpression(expr *PrefixExpression) Node {
	offset := expr.BeginToken().Offset()

	switch operand := expr.Operand.(type) {
	case *IntegerLiteral:
		if expr.Operator.Type() == token.Minus && operand.Value != nil {
			return integerLiteral(new(big.Int).Neg(operand.Value), offset)
		}
	case *BooleanLiteral:
		if expr.Operator.Type() == token.Bang {
			return booleanLiteral(!operand.Value, offset)
		}
	}

	return expr
}

func integerLiteral(value *big.Int, offset int) *IntegerLiteral {
	return NewIntegerLiteral(token.New(token.Int, value.String(), offset), value)
}

func booleanLiteral(value bool, offset int) *BooleanLiteral {
	keyword := token.KwFalse
	if value {
		keyword = token.KwTrue
	}

	return NewBooleanLiteral(token.NewKeyword(keyword, offset), value)
}

// DeadCodeEliminationTransformer removes branches guarded by literal
// conditions and statements that follow an unconditional jump in a block.
type DeadCodeEliminationTransformer struct{}

// Transform implements the Transformer interface for dead code elimination.
func (dcet *DeadCodeEliminationTransformer) Transform(node Node) (Node, error) {
	return Rewrite(node, func(n Node) (Node, error) {
		switch s := n.(type) {
		case *IfStatement:
			return dcet.eliminateDeadIf(s)
		case *WhileStatement:
			return dcet.eliminateDeadWhile(s), nil
		case *Block:
			return dcet.eliminateDeadBlock(s)
		default:
			return n, nil
		}
	})
}

// eliminateDeadIf replaces an if statement with a literal condition by the
// branch that is taken, or by an empty statement when there is none.
func (dcet *DeadCodeEliminationTransformer) eliminateDeadIf(ifStmt *IfStatement) (Node, error) {
	cond, ok := ifStmt.Condition.(*BooleanLiteral)
	if !ok {
		return ifStmt, nil
	}

	slot := &ifStmt.ElseStatement
	if cond.Value {
		slot = &ifStmt.ThenStatement
	}

	taken := *slot
	if taken == nil {
		return emptyStatementAt(ifStmt), nil
	}

	if err := SetChild[Statement](ifStmt, slot, nil); err != nil {
		return ifStmt, err
	}

	return taken, nil
}

// eliminateDeadWhile drops a loop whose condition is the literal false.
func (dcet *DeadCodeEliminationTransformer) eliminateDeadWhile(whileStmt *WhileStatement) Node {
	if cond, ok := whileStmt.Condition.(*BooleanLiteral); ok && !cond.Value {
		return emptyStatementAt(whileStmt)
	}

	return whileStmt
}

// eliminateDeadBlock removes the statements after the first return, break,
// continue or throw in a block.
func (dcet *DeadCodeEliminationTransformer) eliminateDeadBlock(block *Block) (Node, error) {
	for i, stmt := range block.Statements.All() {
		if !isTerminating(stmt) {
			continue
		}

		for block.Statements.Len() > i+1 {
			if _, err := block.Statements.RemoveAt(i + 1); err != nil {
				return block, err
			}
		}

		break
	}

	return block, nil
}

func isTerminating(stmt Statement) bool {
	switch s := stmt.(type) {
	case *ReturnStatement, *BreakStatement, *ContinueStatement:
		return true
	case *ExpressionStatement:
		switch s.Expression.(type) {
		case *ThrowExpression, *RethrowExpression:
			return true
		}
	}

	return false
}

func emptyStatementAt(n Node) *EmptyStatement {
	offset, _ := SourceRange(n)
	if offset < 0 {
		offset = 0
	}

	return NewEmptyStatement(token.New(token.Semicolon, ";", offset))
}

// ValidatorTransformer checks structural invariants of a tree without
// changing it: every child points back at its parent, and optional tokens are
// present exactly when the part they introduce is.
type ValidatorTransformer struct{}

// Transform implements the Transformer interface for validation.
func (vt *ValidatorTransformer) Transform(node Node) (Node, error) {
	var errs []error

	Inspect(node, func(n Node) bool {
		for _, child := range Children(n) {
			if child.Parent() != n {
				errs = append(errs, NewTransformationError(
					fmt.Sprintf("%s is not linked to its parent %s", NodeName(child), NodeName(n)), child))
			}
		}

		if msg := vt.checkOptionalTokens(n); msg != "" {
			errs = append(errs, NewTransformationError(msg, n))
		}

		return true
	})

	return node, errors.Join(errs...)
}

func (vt *ValidatorTransformer) checkOptionalTokens(n Node) string {
	switch s := n.(type) {
	case *IfStatement:
		if (s.ElseKeyword == nil) != (s.ElseStatement == nil) {
			return "else keyword and else statement must appear together"
		}
	case *TryStatement:
		if (s.FinallyKeyword == nil) != (s.FinallyBlock == nil) {
			return "finally keyword and finally block must appear together"
		}

		if s.CatchClauses.IsEmpty() && s.FinallyBlock == nil {
			return "try statement needs a catch clause or a finally block"
		}
	case *CatchClause:
		if (s.OnKeyword == nil) != (s.ExceptionType == nil) {
			return "on keyword and exception type must appear together"
		}

		if (s.CatchKeyword == nil) != (s.ExceptionParameter == nil) {
			return "catch keyword and exception parameter must appear together"
		}

		if (s.Comma == nil) != (s.StackTraceParameter == nil) {
			return "comma and stack trace parameter must appear together"
		}
	case *VariableDeclaration:
		if (s.Equals == nil) != (s.Initializer == nil) {
			return "equals sign and initializer must appear together"
		}
	case *DefaultFormalParameter:
		if (s.Separator == nil) != (s.DefaultValue == nil) {
			return "separator and default value must appear together"
		}
	}

	return ""
}
