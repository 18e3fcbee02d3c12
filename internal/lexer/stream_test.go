package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamLookahead(t *testing.T) {
	s := NewTokenStream(New("int x = 1;"))

	// 前瞻不消耗
	require.Equal(t, TOKEN_INT, s.LT(1).Kind)
	require.Equal(t, TOKEN_IDENT, s.LT(2).Kind)
	require.Equal(t, TOKEN_ASSIGN, s.LT(3).Kind)
	require.Equal(t, TOKEN_INT, s.LT(1).Kind)

	require.NoError(t, s.Consume())
	require.Equal(t, TOKEN_IDENT, s.LT(1).Kind)
	require.Equal(t, "x", s.LT(1).Text)
}

func TestStreamLTZeroAndBeyondEOF(t *testing.T) {
	s := NewTokenStream(New("x"))

	assert.Equal(t, TOKEN_NONE, s.LT(0).Kind)
	assert.Equal(t, TOKEN_NONE, s.LT(-1).Kind)

	// 越过末尾一律返回 EOF
	assert.Equal(t, TOKEN_EOF, s.LT(2).Kind)
	assert.Equal(t, TOKEN_EOF, s.LT(100).Kind)
}

func TestStreamConsumePastEOF(t *testing.T) {
	s := NewTokenStream(New("x"))

	require.NoError(t, s.Consume())
	require.Equal(t, TOKEN_EOF, s.LT(1).Kind)

	err := s.Consume()
	require.ErrorIs(t, err, ErrConsumePastEOF)

	// 出错后流状态不变
	require.Equal(t, TOKEN_EOF, s.LT(1).Kind)
	require.ErrorIs(t, s.Consume(), ErrConsumePastEOF)
}

func TestStreamFiltersHiddenTokens(t *testing.T) {
	s := NewTokenStream(New("a // comment\n/* block */ b"))

	require.Equal(t, "a", s.LT(1).Text)
	require.Equal(t, "b", s.LT(2).Text)
	require.Equal(t, TOKEN_EOF, s.LT(3).Kind)
}

func TestStreamEmptyInput(t *testing.T) {
	s := NewTokenStream(New(""))

	require.Equal(t, TOKEN_EOF, s.LT(1).Kind)
	require.ErrorIs(t, s.Consume(), ErrConsumePastEOF)
}
