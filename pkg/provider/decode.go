package provider

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/regkit/pkg/types"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeRegistryValue converts raw registry data of type t into a Value.
func decodeRegistryValue(t types.RegType, data []byte) types.Value {
	switch t {
	case types.REG_SZ:
		return types.StringValue(decodeUTF16(data))
	case types.REG_EXPAND_SZ:
		return types.ExpandStringValue(decodeUTF16(data))
	case types.REG_LINK:
		return types.LinkValue(decodeUTF16(data))
	case types.REG_MULTI_SZ:
		s := decodeUTF16(data)
		if s == "" {
			return types.MultiStringValue(nil)
		}
		return types.MultiStringValue(strings.Split(s, "\x00"))
	case types.REG_DWORD:
		if len(data) >= 4 {
			return types.DwordValue(binary.LittleEndian.Uint32(data))
		}
	case types.REG_DWORD_BE:
		if len(data) >= 4 {
			return types.DwordValue(binary.BigEndian.Uint32(data))
		}
	case types.REG_QWORD:
		if len(data) >= 8 {
			return types.QwordValue(binary.LittleEndian.Uint64(data))
		}
	case types.REG_NONE:
		if len(data) == 0 {
			return types.Value{Kind: types.Unset}
		}
	}
	return types.BinaryValue(t, data)
}

// decodeUTF16 decodes UTF-16LE registry string data and drops the NUL
// terminators.
func decodeUTF16(data []byte) string {
	if len(data)%2 == 1 {
		data = data[:len(data)-1]
	}
	out, err := utf16le.NewDecoder().Bytes(data)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(out), "\x00")
}
