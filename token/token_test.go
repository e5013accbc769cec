package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlenvance/beliefprop/token"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "L_CURLY", token.LCURLY.String())
	require.Equal(t, "FLOATING_POINT_LITERAL", token.FLOAT.String())
	require.Equal(t, "Kind(99)", token.Kind(99).String())
}

func TestLookup(t *testing.T) {
	for word, want := range map[string]token.Kind{
		"network":     token.NETWORK,
		"variable":    token.VARIABLE,
		"probability": token.PROBABILITY,
		"type":        token.VARIABLETYPE,
		"discrete":    token.DISCRETE,
		"default":     token.DEFAULTVALUE,
		"table":       token.TABLEVALUES,
	} {
		got, ok := token.Lookup(word)
		require.True(t, ok, word)
		require.Equal(t, want, got)
	}

	_, ok := token.Lookup("dog-out")
	require.False(t, ok)
}

func TestTokenString(t *testing.T) {
	require.Equal(t, `WORD("dog-out")`, token.Token{Kind: token.WORD, Str: "dog-out"}.String())
	require.Equal(t, `PROPERTY("weight = good")`, token.Token{Kind: token.PROPERTY, Str: "weight = good"}.String())
	require.Equal(t, "DECIMAL_LITERAL(2)", token.Token{Kind: token.DECIMAL, Int: 2}.String())
	require.Equal(t, "FLOATING_POINT_LITERAL(0.3)", token.Token{Kind: token.FLOAT, Float: 0.3}.String())
	require.Equal(t, "SEMICOLON", token.Token{Kind: token.SEMICOLON}.String())
}
