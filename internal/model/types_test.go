package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSectionKind_String verifies that SectionKind values produce the
// expected string representations for CLI output and YAML serialization.
func TestSectionKind_String(t *testing.T) {
	tests := []struct {
		kind     SectionKind
		expected string
	}{
		{KindExperience, "experience"},
		{KindEducation, "education"},
		{KindProject, "project"},
		{KindSkills, "skills"},
		{KindCustom, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

// TestSectionKind_IsValid checks that only defined kinds pass validation.
func TestSectionKind_IsValid(t *testing.T) {
	assert.True(t, KindExperience.IsValid())
	assert.True(t, KindEducation.IsValid())
	assert.True(t, KindProject.IsValid())
	assert.True(t, KindSkills.IsValid())
	assert.True(t, KindCustom.IsValid())
	assert.False(t, SectionKind("invalid").IsValid())
	assert.False(t, SectionKind("").IsValid())
}

// TestParseSectionKind verifies string-to-kind conversion, including
// case normalization and error cases.
func TestParseSectionKind(t *testing.T) {
	tests := []struct {
		input    string
		expected SectionKind
		hasError bool
	}{
		{"experience", KindExperience, false},
		{"education", KindEducation, false},
		{"project", KindProject, false},
		{"skills", KindSkills, false},
		{"custom", KindCustom, false},
		{"Experience", KindExperience, false}, // case insensitive
		{"SKILLS", KindSkills, false},         // case insensitive
		{"invalid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseSectionKind(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestSectionKind_RequiredFields verifies the per-kind required field
// sets that gate AddItem.
func TestSectionKind_RequiredFields(t *testing.T) {
	assert.ElementsMatch(t, []string{"position", "company", "start"}, KindExperience.RequiredFields())
	assert.ElementsMatch(t, []string{"school", "degree"}, KindEducation.RequiredFields())
	assert.ElementsMatch(t, []string{"name", "skills"}, KindProject.RequiredFields())
	assert.ElementsMatch(t, []string{"category", "skills"}, KindSkills.RequiredFields())
	assert.Empty(t, KindCustom.RequiredFields())
}

// TestItem_Clone verifies that clones are independent copies.
func TestItem_Clone(t *testing.T) {
	original := Item{"position": "Engineer", "company": "Acme"}
	clone := original.Clone()

	require.True(t, original.Equal(clone))

	clone["position"] = "Manager"
	assert.Equal(t, "Engineer", original["position"], "mutating the clone must not affect the original")

	assert.Nil(t, Item(nil).Clone())
}

// TestItem_Equal exercises the field-by-field comparison.
func TestItem_Equal(t *testing.T) {
	a := Item{"school": "MIT", "year": "2020"}

	assert.True(t, a.Equal(Item{"school": "MIT", "year": "2020"}))
	assert.False(t, a.Equal(Item{"school": "MIT"}))
	assert.False(t, a.Equal(Item{"school": "MIT", "year": "2021"}))
	assert.False(t, a.Equal(Item{"school": "MIT", "degree": "2020"}))
	assert.True(t, Item{}.Equal(Item{}))
}

// TestItem_Keys verifies deterministic sorted key traversal.
func TestItem_Keys(t *testing.T) {
	item := Item{"year": "2020", "school": "MIT", "degree": "BSc"}
	assert.Equal(t, []string{"degree", "school", "year"}, item.Keys())
}

// TestResume_Equal covers the structural equality used by the
// round-trip property.
func TestResume_Equal(t *testing.T) {
	build := func() *Resume {
		r := NewResume()
		r.Contact = Contact{Name: "Ada Lovelace", Email: "ada@example.com"}
		sec, err := r.AddSection("Education", KindEducation)
		require.NoError(t, err)
		sec.Items = append(sec.Items, Item{"school": "X", "degree": "BSc"})
		return r
	}

	a, b := build(), build()
	assert.True(t, a.Equal(b))

	b.Contact.Email = "other@example.com"
	assert.False(t, a.Equal(b))

	c := build()
	c.Sections[0].Items[0]["degree"] = "MSc"
	assert.False(t, a.Equal(c))

	d := build()
	d.Sections = nil
	assert.False(t, a.Equal(d))

	assert.True(t, NewResume().Equal(NewResume()))
}

// TestResume_SectionIndex verifies title lookup.
func TestResume_SectionIndex(t *testing.T) {
	r := NewResume()
	_, err := r.AddSection("Education", KindEducation)
	require.NoError(t, err)
	_, err = r.AddSection("Experience", KindExperience)
	require.NoError(t, err)

	assert.Equal(t, 0, r.SectionIndex("Education"))
	assert.Equal(t, 1, r.SectionIndex("Experience"))
	assert.Equal(t, -1, r.SectionIndex("Projects"))
}
