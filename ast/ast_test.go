package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlenvance/beliefprop/ast"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "VariableDeclaration", ast.KindVariableDeclaration.String())
	require.Equal(t, "ProbabilityTable", ast.KindProbabilityTable.String())
	require.Equal(t, "Unknown", ast.Kind(-1).String())
	require.Equal(t, "Unknown", ast.Kind(999).String())
}

func wordChain(words ...string) *ast.Node {
	var head, tail *ast.Node
	for _, w := range words {
		n := &ast.Node{Kind: ast.KindWord, Value: w}
		if head == nil {
			head = n
		} else {
			tail.Right = n
		}
		tail = n
	}
	return head
}

func floatChain(vals ...float64) *ast.Node {
	var head, tail *ast.Node
	for _, v := range vals {
		n := &ast.Node{Kind: ast.KindFloatList, DoubleValue: v}
		if head == nil {
			head = n
		} else {
			tail.Right = n
		}
		tail = n
	}
	return head
}

func TestWords(t *testing.T) {
	require.Equal(t, []string{"true", "false"}, ast.Words(wordChain("true", "false")))
	require.Empty(t, ast.Words(nil))
}

func TestFloats(t *testing.T) {
	require.Equal(t, []float64{0.7, 0.3}, ast.Floats(floatChain(0.7, 0.3)))
	require.Empty(t, ast.Floats(nil))
}
