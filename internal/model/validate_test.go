package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateField exercises the per-field-name format rules. Empty
// values always pass — presence is enforced separately by AddItem.
func TestValidateField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{"empty value passes", "email", "", false},
		{"unknown field passes", "nickname", "anything at all", false},

		{"valid email", "email", "ada@example.com", false},
		{"email missing at", "email", "ada.example.com", true},
		{"email missing domain dot", "email", "ada@example", true},

		{"valid phone", "phone", "5551234567", false},
		{"phone too short", "phone", "12345", true},
		{"phone with dashes", "phone", "555-123-4567", true},

		{"valid linkedin", "linkedin", "https://www.linkedin.com/in/ada", false},
		{"linkedin wrong host", "linkedin", "https://example.com/in/ada", true},

		{"valid github", "github", "https://github.com/ada", false},
		{"github wrong prefix", "github", "http://github.com/ada", true},

		{"valid link", "link", "https://example.com/project", false},
		{"valid bare link", "website", "example.com", false},
		{"invalid link", "company_link", "not a url", true},

		{"valid date", "start", "01-06-2020", false},
		{"present end date", "end", "present", false},
		{"present is case-insensitive", "end", "Present", false},
		{"bad date format", "start", "2020-06-01", true},
		{"not a date", "end", "someday", true},

		{"short bullets", "highlights", "Did a thing\nDid another thing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField(tt.field, tt.value)
			if tt.wantErr {
				var valErr *ValidationError
				assert.ErrorAs(t, err, &valErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateField_BulletCap verifies the per-bullet length cap and
// that blank lines are ignored.
func TestValidateField_BulletCap(t *testing.T) {
	long := strings.Repeat("x", maxBulletLen+1)
	err := ValidateField("highlights", "ok bullet\n"+long)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	exact := strings.Repeat("x", maxBulletLen)
	assert.NoError(t, ValidateField("highlights", exact))
	assert.NoError(t, ValidateField("highlights", "first\n\n\nsecond"))
}

// TestParseDate covers the dd-mm-yyyy layout and the present sentinel.
func TestParseDate(t *testing.T) {
	got, err := ParseDate("15-03-2021")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	now, err := ParseDate("present")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)

	_, err = ParseDate("03/15/2021")
	assert.Error(t, err)
}

// TestValidateFields_DateOrdering verifies the cross-field start/end rule.
func TestValidateFields_DateOrdering(t *testing.T) {
	assert.NoError(t, ValidateFields(Item{"start": "01-01-2020", "end": "01-01-2021"}))
	assert.NoError(t, ValidateFields(Item{"start": "01-01-2020", "end": "present"}))
	assert.NoError(t, ValidateFields(Item{"start": "01-01-2020"}))

	var valErr *ValidationError
	require.ErrorAs(t, ValidateFields(Item{"start": "01-01-2022", "end": "01-01-2020"}), &valErr)

	future := time.Now().AddDate(1, 0, 0).Format("02-01-2006")
	require.ErrorAs(t, ValidateFields(Item{"start": future}), &valErr)
}

// TestBullets verifies bullet splitting shared by display and export.
func TestBullets(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, Bullets("one\ntwo"))
	assert.Equal(t, []string{"one", "two"}, Bullets("  one  \n\n two \n"))
	assert.Nil(t, Bullets(""))
	assert.Nil(t, Bullets("\n\n"))
}

// TestValidateContact covers header validation.
func TestValidateContact(t *testing.T) {
	assert.NoError(t, ValidateContact(Contact{}))
	assert.NoError(t, ValidateContact(Contact{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "5551234567",
		LinkedIn: "https://www.linkedin.com/in/ada",
		GitHub:   "https://github.com/ada",
		Website:  "https://ada.dev",
	}))

	var valErr *ValidationError
	assert.ErrorAs(t, ValidateContact(Contact{Email: "bad"}), &valErr)
	assert.ErrorAs(t, ValidateContact(Contact{Phone: "123"}), &valErr)
	assert.ErrorAs(t, ValidateContact(Contact{LinkedIn: "https://linked.in/ada"}), &valErr)
}
