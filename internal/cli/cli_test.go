package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/resumake/internal/model"
	"github.com/mmr-tortoise/resumake/internal/store"
)

// runCommand executes the CLI in-process with the given arguments,
// returning the command error instead of exiting.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

// TestParseFields covers the key=value flag parsing.
func TestParseFields(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected model.Item
		hasError bool
	}{
		{"single field", []string{"school=MIT"}, model.Item{"school": "MIT"}, false},
		{"multiple fields", []string{"position=Engineer", "company=Acme"},
			model.Item{"position": "Engineer", "company": "Acme"}, false},
		{"empty value", []string{"degree="}, model.Item{"degree": ""}, false},
		{"value containing equals", []string{"link=https://example.com?a=b"},
			model.Item{"link": "https://example.com?a=b"}, false},
		{"newline escape", []string{`highlights=first\nsecond`},
			model.Item{"highlights": "first\nsecond"}, false},
		{"no fields", nil, model.Item{}, false},
		{"missing equals", []string{"school"}, nil, true},
		{"empty key", []string{"=value"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := parseFields(tt.input)
			if tt.hasError {
				var valErr *model.ValidationError
				assert.ErrorAs(t, err, &valErr)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expected.Equal(fields))
			}
		})
	}
}

// TestParseIndex verifies numeric argument handling.
func TestParseIndex(t *testing.T) {
	got, err := parseIndex("3", "section index")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = parseIndex("-1", "section index")
	require.NoError(t, err, "negative numbers parse; range checking is the model's job")
	assert.Equal(t, -1, got)

	_, err = parseIndex("two", "section index")
	var valErr *model.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

// TestContactSummary verifies the one-line header under the name.
func TestContactSummary(t *testing.T) {
	assert.Equal(t, "", contactSummary(model.Contact{Name: "Ada"}))
	assert.Equal(t, "ada@example.com | https://ada.dev",
		contactSummary(model.Contact{Email: "ada@example.com", Website: "https://ada.dev"}))
}

// TestWorkflow drives a full editing session through the real commands:
// create, set contact, build sections/items, reorder, validate, and
// export LaTeX — asserting on the persisted file after each step.
func TestWorkflow(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "resume.yaml")

	require.NoError(t, runCommand(t, "new", "-f", file, "--name", "Ada Lovelace"))

	// Creating again without --force must fail and keep the file.
	err := runCommand(t, "new", "-f", file)
	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)

	require.NoError(t, runCommand(t, "contact", "-f", file,
		"--email", "ada@example.com", "--github", "https://github.com/ada"))

	require.NoError(t, runCommand(t, "section", "add", "Education", "-f", file, "--kind", "education"))
	require.NoError(t, runCommand(t, "section", "add", "Experience", "-f", file, "--kind", "experience"))
	require.NoError(t, runCommand(t, "item", "add", "0", "-f", file,
		"--field", "school=Cambridge", "--field", "degree=BSc Mathematics"))
	require.NoError(t, runCommand(t, "item", "add", "1", "-f", file,
		"--field", "position=Engineer", "--field", "company=Acme", "--field", "start=01-06-2020"))

	// Rejected edit: empty section title.
	err = runCommand(t, "section", "add", "", "-f", file)
	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)

	// Rejected edit: out-of-range index.
	err = runCommand(t, "section", "remove", "9", "-f", file)
	var idxErr *model.IndexError
	require.ErrorAs(t, err, &idxErr)

	// The failures above must not have corrupted the file.
	r, err := store.Load(file)
	require.NoError(t, err)
	require.Len(t, r.Sections, 2)
	assert.Equal(t, "Education", r.Sections[0].Title)
	assert.Equal(t, "Engineer", r.Sections[1].Items[0]["position"])

	// Reorder and verify persistence.
	require.NoError(t, runCommand(t, "section", "move", "0", "1", "-f", file))
	r, err = store.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "Experience", r.Sections[0].Title)

	require.NoError(t, runCommand(t, "check", "-f", file))

	// LaTeX export via the built-in template.
	out := filepath.Join(dir, "resume.tex")
	require.NoError(t, runCommand(t, "export", "-f", file, "--format", "latex", "--output", out))
	tex, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(tex), `\textbf{\Huge \scshape Ada Lovelace}`)
	assert.Contains(t, string(tex), `\section{Education}`)
}

// TestWorkflow_CustomTemplate exports through a user template and
// verifies unknown-field failures surface as template errors.
func TestWorkflow_CustomTemplate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "resume.yaml")

	require.NoError(t, runCommand(t, "new", "-f", file, "--name", "Ada"))
	require.NoError(t, runCommand(t, "section", "add", "Notes", "-f", file, "--kind", "custom"))
	require.NoError(t, runCommand(t, "item", "add", "0", "-f", file, "--field", "title=Hello"))

	good := filepath.Join(dir, "good.tmpl")
	require.NoError(t, os.WriteFile(good,
		[]byte(`{{ range .Sections }}{{ range .Items }}{{ .title }}{{ end }}{{ end }}`), 0o644))

	out := filepath.Join(dir, "out.tex")
	require.NoError(t, runCommand(t, "export", "-f", file,
		"--format", "latex", "--template", good, "--output", out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(data))

	bad := filepath.Join(dir, "bad.tmpl")
	require.NoError(t, os.WriteFile(bad,
		[]byte(`{{ range .Sections }}{{ range .Items }}{{ .missing }}{{ end }}{{ end }}`), 0o644))

	err = runCommand(t, "export", "-f", file,
		"--format", "latex", "--template", bad, "--output", out)
	var tmplErr *model.TemplateError
	assert.ErrorAs(t, err, &tmplErr)
}

// TestImportCommand drives the legacy JSON import end to end.
func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "legacy.json")
	file := filepath.Join(dir, "resume.yaml")

	require.NoError(t, os.WriteFile(legacy, []byte(`{
	  "header": {"name": "Ada Lovelace"},
	  "education": {"educations": [
	    {"school": "Cambridge", "degree": "BSc", "start_date": "01-09-2015"}
	  ]}
	}`), 0o644))

	require.NoError(t, runCommand(t, "import", legacy, "-f", file))

	r, err := store.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", r.Contact.Name)
	require.Len(t, r.Sections, 1)
	assert.Equal(t, model.KindEducation, r.Sections[0].Kind)

	// A second import without --force must refuse to overwrite.
	err = runCommand(t, "import", legacy, "-f", file)
	var cliErr *model.CLIError
	assert.ErrorAs(t, err, &cliErr)
}
