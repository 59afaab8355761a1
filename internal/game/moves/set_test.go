package moves_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fairplay/internal/game/moves"
)

func kindOf(t *testing.T, err error) moves.Kind {
	t.Helper()
	var ve *moves.ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	return ve.Kind
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  moves.Kind
	}{
		{"two moves", []string{"Rock", "Paper"}, moves.TooFewMoves},
		{"no moves", nil, moves.TooFewMoves},
		{"even count", []string{"Rock", "Paper", "Scissors", "Spock"}, moves.EvenMoveCount},
		{"duplicate", []string{"Rock", "Rock", "Paper"}, moves.DuplicateMove},
		{"too few wins over duplicate", []string{"Rock", "Rock"}, moves.TooFewMoves},
		{"even wins over duplicate", []string{"A", "A", "B", "C"}, moves.EvenMoveCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := moves.New(tt.input)
			assert.Nil(t, s)
			assert.Equal(t, tt.want, kindOf(t, err))
			assert.ErrorIs(t, err, &moves.ValidationError{Kind: tt.want})
		})
	}
}

func TestNew_Valid(t *testing.T) {
	s, err := moves.New([]string{"Rock", "Paper", "Scissors"})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []string{"Rock", "Paper", "Scissors"}, s.Names())
}

func TestNew_CaseSensitive(t *testing.T) {
	s, err := moves.New([]string{"rock", "Rock", "ROCK"})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count())
}

func TestNew_DuplicateNamesTheMove(t *testing.T) {
	_, err := moves.New([]string{"Rock", "Paper", "Rock"})
	var ve *moves.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Rock", ve.Move)
	assert.Contains(t, err.Error(), `"Rock"`)
}

func TestSet_IsImmutable(t *testing.T) {
	input := []string{"Rock", "Paper", "Scissors"}
	s, err := moves.New(input)
	require.NoError(t, err)

	input[0] = "Lizard"
	names := s.Names()
	names[1] = "Spock"

	name, err := s.NameAt(0)
	require.NoError(t, err)
	assert.Equal(t, "Rock", name)
	name, err = s.NameAt(1)
	require.NoError(t, err)
	assert.Equal(t, "Paper", name)
}

func TestNameAt_OutOfRange(t *testing.T) {
	s := moves.MustNew("Rock", "Paper", "Scissors")
	for _, i := range []int{-1, 3, 100} {
		_, err := s.NameAt(i)
		assert.ErrorIs(t, err, moves.ErrIndexOutOfRange, "index %d", i)
	}
}

func TestIndexOf(t *testing.T) {
	s := moves.MustNew("Rock", "Paper", "Scissors")
	i, ok := s.IndexOf("Scissors")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = s.IndexOf("Spock")
	assert.False(t, ok)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { moves.MustNew("Rock", "Paper") })
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "TooFewMoves", moves.TooFewMoves.String())
	assert.Equal(t, "EvenMoveCount", moves.EvenMoveCount.String())
	assert.Equal(t, "DuplicateMove", moves.DuplicateMove.String())
	assert.Equal(t, "Kind(0)", moves.Kind(0).String())
}

// TestNew_Property_UniqueOddAccepted checks that any odd-length list of
// distinct names of length >= 3 is accepted with order preserved.
func TestNew_Property_UniqueOddAccepted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		half := rapid.IntRange(1, 20).Draw(rt, "half")
		names := make([]string, 2*half+1)
		for i := range names {
			names[i] = fmt.Sprintf("move-%d", i)
		}
		s, err := moves.New(names)
		require.NoError(rt, err)
		assert.Equal(rt, len(names), s.Count())
		for i, n := range names {
			got, err := s.NameAt(i)
			require.NoError(rt, err)
			assert.Equal(rt, n, got)
		}
	})
}

func TestNew_Property_EvenRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		half := rapid.IntRange(2, 20).Draw(rt, "half")
		names := make([]string, 2*half)
		for i := range names {
			names[i] = fmt.Sprintf("move-%d", i)
		}
		_, err := moves.New(names)
		assert.ErrorIs(rt, err, &moves.ValidationError{Kind: moves.EvenMoveCount})
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moves.yaml")
	require.NoError(t, os.WriteFile(path, []byte("moves:\n  - Rock\n  - Paper\n  - Scissors\n  - Lizard\n  - Spock\n"), 0644))

	s, err := moves.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count())
	assert.Equal(t, []string{"Rock", "Paper", "Scissors", "Lizard", "Spock"}, s.Names())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := moves.LoadFile("/nonexistent/moves.yaml")
	assert.Error(t, err)
}

func TestLoadBytes_ValidatesMoves(t *testing.T) {
	_, err := moves.LoadBytes([]byte("moves: [Rock, Paper]\n"))
	assert.ErrorIs(t, err, &moves.ValidationError{Kind: moves.TooFewMoves})
}

func TestLoadBytes_InvalidYAML(t *testing.T) {
	_, err := moves.LoadBytes([]byte("moves: [Rock, Paper"))
	require.Error(t, err)
	var ve *moves.ValidationError
	assert.False(t, errors.As(err, &ve))
}
