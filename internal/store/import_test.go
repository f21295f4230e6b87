package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// legacyFixture is a representative document in the legacy desktop
// application's JSON schema, including a comment and a trailing comma to
// exercise JSONC tolerance.
const legacyFixture = `{
  // saved by the desktop app
  "header": {
    "name": "Ada Lovelace",
    "email": "ada@example.com",
    "number": "5551234567",
    "linkedin": "https://www.linkedin.com/in/ada",
    "portfolio": "https://ada.dev",
    "github": "https://github.com/ada"
  },
  "skills": {
    "skill_types": [
      {"name": "Languages", "skills": ["Go", "Python"]},
      {"name": "Tools", "skills": ["Docker"]}
    ]
  },
  "experience": {
    "experiences": [
      {
        "position": "Engineer",
        "company": "Acme",
        "description": [{"text": "Built the widget pipeline"}, {"text": "Cut build times in half"}],
        "start_date": "01-06-2020",
        "end_date": "present",
      }
    ]
  },
  "projects": {
    "projects": [
      {
        "name": "resumake",
        "skills": ["Go", "LaTeX"],
        "description": [{"text": "Resume composer"}],
        "link": "https://github.com/ada/resumake"
      }
    ]
  },
  "education": {
    "educations": [
      {
        "school": "Cambridge",
        "degree": "BSc Mathematics",
        "start_date": "01-09-2015",
        "awards": ["Dean's List"],
        "gpa": 3.9
      }
    ]
  }
}`

// TestImportJSON maps the whole legacy fixture onto the section/item
// model and checks each section's shape.
func TestImportJSON(t *testing.T) {
	r, err := ImportJSON([]byte(legacyFixture))
	require.NoError(t, err)

	assert.Equal(t, model.Contact{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "5551234567",
		LinkedIn: "https://www.linkedin.com/in/ada",
		GitHub:   "https://github.com/ada",
		Website:  "https://ada.dev",
	}, r.Contact)

	require.Len(t, r.Sections, 4)

	skills := r.Sections[0]
	assert.Equal(t, "Skills", skills.Title)
	assert.Equal(t, model.KindSkills, skills.Kind)
	require.Len(t, skills.Items, 2)
	assert.Equal(t, "Languages", skills.Items[0]["category"])
	assert.Equal(t, "Go, Python", skills.Items[0]["skills"])

	exp := r.Sections[1]
	assert.Equal(t, model.KindExperience, exp.Kind)
	require.Len(t, exp.Items, 1)
	assert.Equal(t, "Engineer", exp.Items[0]["position"])
	assert.Equal(t, "01-06-2020", exp.Items[0]["start"])
	assert.Equal(t, "present", exp.Items[0]["end"])
	assert.Equal(t, []string{"Built the widget pipeline", "Cut build times in half"},
		model.Bullets(exp.Items[0]["highlights"]))

	proj := r.Sections[2]
	assert.Equal(t, model.KindProject, proj.Kind)
	require.Len(t, proj.Items, 1)
	assert.Equal(t, "Go, LaTeX", proj.Items[0]["skills"])
	assert.Equal(t, "https://github.com/ada/resumake", proj.Items[0]["link"])

	edu := r.Sections[3]
	assert.Equal(t, model.KindEducation, edu.Kind)
	require.Len(t, edu.Items, 1)
	assert.Equal(t, "Cambridge", edu.Items[0]["school"])
	assert.Equal(t, "3.9", edu.Items[0]["gpa"], "numeric gpa is imported as its text form")
	assert.Equal(t, "Dean's List", edu.Items[0]["awards"])

	// The imported document must itself round-trip through the store.
	data, err := Encode(r)
	require.NoError(t, err)
	again, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, again.Equal(r))
}

// TestImportJSON_PartialDocument verifies that absent section blocks
// simply produce no sections.
func TestImportJSON_PartialDocument(t *testing.T) {
	r, err := ImportJSON([]byte(`{"header": {"name": "Ada"}}`))
	require.NoError(t, err)

	assert.Equal(t, "Ada", r.Contact.Name)
	assert.Empty(t, r.Sections)
}

// TestImportJSON_Malformed covers ParseError cases.
func TestImportJSON_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "{{{"},
		{"missing header", `{"skills": {"skill_types": []}}`},
		{"wrong type", `{"header": {"name": 42}}`},
		{"invalid imported email", `{"header": {"name": "Ada", "email": "not-an-email"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportJSON([]byte(tt.input))

			var parseErr *model.ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

// TestImportJSON_StringGpa verifies both legacy gpa encodings load.
func TestImportJSON_StringGpa(t *testing.T) {
	r, err := ImportJSON([]byte(`{
	  "header": {"name": "Ada"},
	  "education": {"educations": [
	    {"school": "X", "degree": "BSc", "gpa": "4.0 GPA"}
	  ]}
	}`))
	require.NoError(t, err)

	require.Len(t, r.Sections, 1)
	assert.Equal(t, "4.0 GPA", r.Sections[0].Items[0]["gpa"])
}
