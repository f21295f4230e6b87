// validate.go implements field-format validation for item fields and
// contact attributes.
//
// Validators are selected by field name: an item field called "email" is
// checked against the email format regardless of which section it lives
// in. Empty values always pass — required-field enforcement only demands
// that the key be present, and format checks apply once a value is given.
package model

import (
	"regexp"
	"strings"
	"time"
)

// maxBulletLen caps a single highlight bullet. Longer bullets overflow
// the single-line \resumeItem layout of the built-in template.
const maxBulletLen = 100

// dateLayout is the accepted date format for start/end fields: dd-mm-yyyy.
const dateLayout = "02-01-2006"

// datePresent is the sentinel value meaning "ongoing" for end dates.
const datePresent = "present"

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	urlRegex   = regexp.MustCompile(`^(https?://)?(www\.)?[\w\-]+(\.[\w\-]+)+[/#?]?.*$`)
)

// linkFields are item field names whose values must look like URLs.
var linkFields = map[string]bool{
	"link":         true,
	"website":      true,
	"company_link": true,
	"school_link":  true,
}

// ValidateField checks a single field value against the format associated
// with its name. Unknown field names and empty values pass. Returns a
// ValidationError describing the first problem found.
func ValidateField(name, value string) error {
	if value == "" {
		return nil
	}

	switch {
	case name == "email":
		if !emailRegex.MatchString(value) {
			return NewValidationError(name, "%q is not a valid email address (expected name@domain.com)", value)
		}
	case name == "phone":
		if !phoneRegex.MatchString(value) {
			return NewValidationError(name, "%q is not a valid phone number (expected 10 digits)", value)
		}
	case name == "linkedin":
		if !strings.HasPrefix(value, "https://www.linkedin.com/") {
			return NewValidationError(name, "%q is not a LinkedIn URL (expected https://www.linkedin.com/... prefix)", value)
		}
	case name == "github":
		if !strings.HasPrefix(value, "https://github.com/") {
			return NewValidationError(name, "%q is not a GitHub URL (expected https://github.com/... prefix)", value)
		}
	case linkFields[name]:
		if !urlRegex.MatchString(value) {
			return NewValidationError(name, "%q is not a valid URL", value)
		}
	case name == "start" || name == "end":
		if _, err := ParseDate(value); err != nil {
			return NewValidationError(name, "%q is not a valid date (expected dd-mm-yyyy or %q)", value, datePresent)
		}
	case name == "highlights":
		return validateBullets(value)
	}
	return nil
}

// ParseDate parses a start/end field value. The literal "present"
// (case-insensitive) resolves to the current time.
func ParseDate(value string) (time.Time, error) {
	if strings.EqualFold(value, datePresent) {
		return time.Now(), nil
	}
	return time.Parse(dateLayout, value)
}

// validateBullets checks a newline-separated highlights field. Blank
// lines are ignored; every remaining bullet must fit the line cap.
func validateBullets(value string) error {
	for _, line := range strings.Split(value, "\n") {
		bullet := strings.TrimSpace(line)
		if bullet == "" {
			continue
		}
		if len(bullet) > maxBulletLen {
			return NewValidationError("highlights", "bullet exceeds %d characters: %q", maxBulletLen, bullet)
		}
	}
	return nil
}

// Bullets splits a highlights field value into its non-blank bullet lines.
// Export and display code share this so the two never disagree on what
// counts as a bullet.
func Bullets(value string) []string {
	var out []string
	for _, line := range strings.Split(value, "\n") {
		bullet := strings.TrimSpace(line)
		if bullet != "" {
			out = append(out, bullet)
		}
	}
	return out
}

// ValidateFields checks every field of an item in deterministic (sorted)
// order, then applies the cross-field date rule: start must not be after
// end, and must not lie in the future.
func ValidateFields(fields Item) error {
	for _, name := range fields.Keys() {
		if err := ValidateField(name, fields[name]); err != nil {
			return err
		}
	}

	start, hasStart := fields["start"]
	if !hasStart || start == "" {
		return nil
	}
	startT, err := ParseDate(start)
	if err != nil {
		return nil // already reported by the per-field pass
	}
	if startT.After(time.Now()) {
		return NewValidationError("start", "date %q is in the future", start)
	}
	if end, ok := fields["end"]; ok && end != "" {
		if endT, err := ParseDate(end); err == nil && startT.After(endT) {
			return NewValidationError("start", "date %q is after end date %q", start, end)
		}
	}
	return nil
}

// ValidateContact checks the contact header. All attributes are optional;
// non-empty values must match their formats.
func ValidateContact(c Contact) error {
	checks := []struct {
		name  string
		value string
	}{
		{"email", c.Email},
		{"phone", c.Phone},
		{"linkedin", c.LinkedIn},
		{"github", c.GitHub},
		{"website", c.Website},
	}
	for _, chk := range checks {
		if err := ValidateField(chk.name, chk.value); err != nil {
			return err
		}
	}
	return nil
}
