package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/types"
)

func TestValue_Uint64(t *testing.T) {
	tests := []struct {
		name  string
		value types.Value
		want  uint64
		ok    bool
	}{
		{"dword", types.Value{Kind: types.Dword, Text: "0000002a"}, 42, true},
		{"dword with 0x", types.Value{Kind: types.Dword, Text: "0x10"}, 16, true},
		{"dword overflow", types.Value{Kind: types.Dword, Text: "100000000"}, 0, false},
		{"qword", types.QwordValue(1 << 40), 1 << 40, true},
		{"hex(4)", types.Value{Kind: types.Binary, Text: "2a,00,00,00", HexType: types.REG_DWORD}, 42, true},
		{"hex(b)", types.Value{Kind: types.Binary, Text: "01,00,00,00,00,00,00,00", HexType: types.REG_QWORD}, 1, true},
		{"plain hex", types.Value{Kind: types.Binary, Text: "2a,00,00,00", HexType: types.REG_BINARY}, 0, false},
		{"string", types.StringValue("42"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Uint64()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_Bytes(t *testing.T) {
	v := types.Value{Kind: types.Binary, Text: "01, 2,ff,\\\n  0a"}
	b, ok := v.Bytes()
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02, 0xff, 0x0a}, b)

	_, ok = types.Value{Kind: types.Binary, Text: "zz"}.Bytes()
	assert.False(t, ok)

	_, ok = types.StringValue("01").Bytes()
	assert.False(t, ok)
}

func TestValue_Strings(t *testing.T) {
	ss, ok := types.MultiStringValue([]string{"a", "b"}).Strings()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, ss)

	// "a\0b\0\0" in UTF-16LE
	hex7 := types.Value{Kind: types.Binary, Text: "61,00,00,00,62,00,00,00,00,00", HexType: types.REG_MULTI_SZ}
	ss, ok = hex7.Strings()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, ss)
}

func TestValue_Normalized(t *testing.T) {
	assert.Equal(t, "42", types.DwordValue(42).Normalized())
	assert.Equal(t, "01,ab", types.Value{Kind: types.Binary, Text: "01,AB"}.Normalized())
	assert.Equal(t, "%SystemRoot%",
		types.Value{Kind: types.Binary, Text: "25,00,53,00,79,00,73,00,74,00,65,00,6d,00,52,00,6f,00,6f,00,74,00,25,00,00,00", HexType: types.REG_EXPAND_SZ}.Normalized())
	assert.Equal(t, "plain", types.StringValue("plain").Normalized())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b types.Value
		want bool
	}{
		{"same string", types.StringValue("x"), types.StringValue("x"), true},
		{"different string", types.StringValue("x"), types.StringValue("y"), false},
		{"string is case sensitive", types.StringValue("X"), types.StringValue("x"), false},
		{"string vs expand string", types.StringValue("%PATH%"), types.ExpandStringValue("%PATH%"), true},
		{"dword vs dword", types.Value{Kind: types.Dword, Text: "0000002a"}, types.DwordValue(42), true},
		{"dword vs qword", types.DwordValue(7), types.QwordValue(7), true},
		{"dword mismatch", types.DwordValue(7), types.DwordValue(8), false},
		{"dword vs decimal string", types.DwordValue(42), types.StringValue("42"), true},
		{"dword vs same hex text", types.Value{Kind: types.Dword, Text: "0000002a"}, types.StringValue("0000002a"), true},
		{"dword vs other hex text", types.Value{Kind: types.Dword, Text: "0000002a"}, types.StringValue("0000002b"), false},
		{"binary case and spacing", types.Value{Kind: types.Binary, Text: "0A, 0b"}, types.BinaryValue(types.REG_BINARY, []byte{10, 11}), true},
		{"binary mismatch", types.Value{Kind: types.Binary, Text: "0a"}, types.BinaryValue(types.REG_BINARY, []byte{11}), false},
		{"hex(2) vs expand string", types.Value{Kind: types.Binary, Text: "41,00,00,00", HexType: types.REG_EXPAND_SZ}, types.ExpandStringValue("A"), true},
		{"multi string vs hex(7)", types.MultiStringValue([]string{"a", "b"}), types.Value{Kind: types.Binary, Text: "61,00,00,00,62,00,00,00,00,00", HexType: types.REG_MULTI_SZ}, true},
		{"hex(4) vs dword", types.Value{Kind: types.Binary, Text: "01,00,00,00", HexType: types.REG_DWORD}, types.DwordValue(1), true},
		{"string vs binary text", types.StringValue("01,02"), types.BinaryValue(types.REG_BINARY, []byte{1, 2}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, types.Equal(tt.b, tt.a), "Equal must be symmetric")
		})
	}
}

func TestErrorIs(t *testing.T) {
	cause := errors.New("access denied")
	err := fmt.Errorf("lookup HKLM\\X: %w", types.Wrap(types.ErrProvider, cause))

	assert.ErrorIs(t, err, types.ErrProvider)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, types.ErrNotFound)

	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, types.ErrKindProvider, typed.Kind)
	assert.Equal(t, "provider lookup failed: access denied", typed.Error())
}

func TestParseView(t *testing.T) {
	v, err := types.ParseView("32")
	require.NoError(t, err)
	assert.Equal(t, types.View32, v)

	v, err = types.ParseView("")
	require.NoError(t, err)
	assert.Equal(t, types.View64, v)

	_, err = types.ParseView("16")
	assert.Error(t, err)
}
