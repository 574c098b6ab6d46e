package symbol

import (
	"testing"

	"github.com/DjordjeVuckovic/base-checker/internal/apperr"
	"github.com/DjordjeVuckovic/base-checker/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Declare(t *testing.T) {
	t.Run("new name", func(t *testing.T) {
		tbl := NewTable()

		require.NoError(t, tbl.Declare("x", Bin))

		base, ok := tbl.Lookup("x")
		assert.True(t, ok)
		assert.Equal(t, Bin, base)
		assert.True(t, tbl.IsDeclared("x"))
		assert.Equal(t, 1, tbl.Len())
	})

	t.Run("redeclaration keeps the first base", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.Declare("x", Bin))

		err := tbl.Declare("x", Oct)

		assert.ErrorIs(t, err, apperr.ErrDuplicate)
		base, _ := tbl.Lookup("x")
		assert.Equal(t, Bin, base)
		assert.Equal(t, 1, tbl.Len())
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.Declare("x", Bin))
		require.NoError(t, tbl.Declare("X", Hex))

		assert.Equal(t, 2, tbl.Len())
		assert.False(t, tbl.IsDeclared("y"))
	})
}

func TestTable_Entries(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Declare("zeta", Hex))
	require.NoError(t, tbl.Declare("alpha", Oct))
	require.NoError(t, tbl.Declare("mid", Bin))

	assert.Equal(t, []Entry{
		{Name: "alpha", Base: Oct},
		{Name: "mid", Base: Bin},
		{Name: "zeta", Base: Hex},
	}, tbl.Entries())
	assert.Empty(t, NewTable().Entries())
}

func TestBase_Valid(t *testing.T) {
	tests := []struct {
		base    Base
		literal string
		want    bool
	}{
		{Bin, "1010", true},
		{Bin, "102", false},
		{Oct, "17", true},
		{Oct, "101", true},
		{Oct, "18", false},
		{Hex, "1F", true},
		{Hex, "deadBEEF", true},
		{Hex, "1Z", false},
		{Hex, "", false},
		{Base(7), "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.base.String()+"/"+tt.literal, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.Valid(tt.literal))
		})
	}
}

func TestBaseFromToken(t *testing.T) {
	for typ, want := range map[token.Type]Base{token.BIN: Bin, token.OCT: Oct, token.HEX: Hex} {
		got, ok := BaseFromToken(typ)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := BaseFromToken(token.ID)
	assert.False(t, ok)
}

func TestParseBase(t *testing.T) {
	b, err := ParseBase("HeX")
	require.NoError(t, err)
	assert.Equal(t, Hex, b)

	var parsed Base
	require.NoError(t, parsed.UnmarshalText([]byte("oct")))
	assert.Equal(t, Oct, parsed)

	_, err = ParseBase("dec")
	assert.Error(t, err)
}
