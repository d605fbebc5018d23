package ast

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/types"
)

func sampleDocument() *Document {
	return &Document{
		Sections: []*Section{
			{
				Path: `HKEY_LOCAL_MACHINE\Software\Vendor`,
				Entries: []*Entry{
					{Name: "", Value: types.StringValue("default")},
					{Name: "Version", Value: types.StringValue("1.0")},
				},
			},
			{
				Path: `HKEY_CURRENT_USER\Software\Vendor\Prefs`,
				Entries: []*Entry{
					{Name: "Enabled", Value: types.DwordValue(1)},
				},
			},
		},
	}
}

func TestDocument_Find(t *testing.T) {
	doc := sampleDocument()

	s := doc.Find(`hkey_local_machine\software\vendor`)
	require.NotNil(t, s)
	assert.Equal(t, `HKEY_LOCAL_MACHINE\Software\Vendor`, s.Path)

	assert.NotNil(t, doc.Find(`\HKEY_CURRENT_USER\Software\Vendor\Prefs\`))
	assert.Nil(t, doc.Find(`HKEY_LOCAL_MACHINE\Software`))

	e := s.Find("VERSION")
	require.NotNil(t, e)
	assert.Equal(t, "1.0", e.Value.Text)
	assert.Nil(t, s.Find("missing"))
}

func TestDocument_Len(t *testing.T) {
	assert.Equal(t, 3, sampleDocument().Len())
	assert.Equal(t, 0, (&Document{}).Len())
}

func TestEntry_DisplayName(t *testing.T) {
	assert.Equal(t, "@", (&Entry{}).DisplayName())
	assert.Equal(t, "Version", (&Entry{Name: "Version"}).DisplayName())
	assert.Equal(t, types.Dword, (&Entry{Value: types.DwordValue(3)}).Kind())
}

func TestDocument_Walk(t *testing.T) {
	doc := sampleDocument()

	var visited []string
	err := doc.Walk(func(s *Section, e *Entry) error {
		visited = append(visited, e.DisplayName())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"@", "Version", "Enabled"}, visited)

	visited = nil
	err = doc.Walk(func(s *Section, e *Entry) error {
		visited = append(visited, e.DisplayName())
		return ErrStopWalk
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"@"}, visited)

	boom := errors.New("boom")
	err = doc.Walk(func(s *Section, e *Entry) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestDocument_Validate(t *testing.T) {
	require.NoError(t, sampleDocument().Validate(DefaultLimits()))

	t.Run("key name too long", func(t *testing.T) {
		doc := &Document{Sections: []*Section{{Path: `HKLM\` + strings.Repeat("k", 256)}}}
		ve := LimitViolation(doc.Validate(DefaultLimits()))
		require.NotNil(t, ve)
		assert.Equal(t, "MaxKeyNameLen", ve.Limit)
		assert.EqualValues(t, 256, ve.Current)
	})

	t.Run("tree too deep", func(t *testing.T) {
		doc := &Document{Sections: []*Section{{Path: strings.Repeat(`a\`, 129)}}}
		ve := LimitViolation(doc.Validate(StrictLimits()))
		require.NotNil(t, ve)
		assert.Equal(t, "MaxTreeDepth", ve.Limit)
	})

	t.Run("value too large", func(t *testing.T) {
		big := types.BinaryValue(types.REG_BINARY, make([]byte, WindowsMaxValueSize64KB+1))
		doc := &Document{Sections: []*Section{{
			Path:    `HKLM\Software`,
			Entries: []*Entry{{Name: "Blob", Value: big}},
		}}}
		err := doc.Validate(StrictLimits())
		ve := LimitViolation(err)
		require.NotNil(t, ve)
		assert.Equal(t, "MaxValueSize", ve.Limit)
		assert.Equal(t, `HKLM\Software`, ve.Path)
		assert.Equal(t, "Blob", ve.Name)
		assert.Contains(t, err.Error(), "value 'Blob'")

		assert.NoError(t, doc.Validate(DefaultLimits()))
	})

	t.Run("value name too long", func(t *testing.T) {
		doc := &Document{Sections: []*Section{{
			Path:    `HKLM\Software`,
			Entries: []*Entry{{Name: strings.Repeat("n", 300), Value: types.StringValue("")}},
		}}}
		ve := LimitViolation(doc.Validate(StrictLimits()))
		require.NotNil(t, ve)
		assert.Equal(t, "MaxValueNameLen", ve.Limit)
		assert.Equal(t, strings.Repeat("n", 300), ve.Name)
	})

	t.Run("default value too large", func(t *testing.T) {
		doc := &Document{Sections: []*Section{{
			Path:    `HKLM\Software`,
			Entries: []*Entry{{Name: "", Value: types.StringValue(strings.Repeat("x", WindowsMaxValueSize64KB))}},
		}}}
		ve := LimitViolation(doc.Validate(StrictLimits()))
		require.NotNil(t, ve)
		assert.Equal(t, "MaxValueSize", ve.Limit)
		assert.Equal(t, "@", ve.Name)
		assert.Contains(t, ve.Error(), "value '@'")
	})

	t.Run("relaxed allows large values", func(t *testing.T) {
		big := types.BinaryValue(types.REG_BINARY, make([]byte, WindowsMaxValueSize1MB+1))
		doc := &Document{Sections: []*Section{{
			Path:    `HKLM\Software`,
			Entries: []*Entry{{Name: "Blob", Value: big}},
		}}}
		require.NotNil(t, LimitViolation(doc.Validate(DefaultLimits())))
		assert.NoError(t, doc.Validate(RelaxedLimits()))
	})
}
