package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// Encode serializes a resume to its persisted YAML form.
//
// The output is deterministic: sections and items appear in model order,
// and yaml.v3 sorts map keys, so encoding the same document twice yields
// identical bytes. Field order within an item is not significant in the
// model, so sorting keys does not lose information.
func Encode(r *model.Resume) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume: %w", err)
	}
	return data, nil
}

// Decode reconstructs a resume from its persisted YAML form.
//
// Returns a model.ParseError on malformed YAML, an unsupported schema
// version, or a document that violates the model invariants (empty or
// duplicate section titles, unknown kinds, missing required item fields).
func Decode(data []byte) (*model.Resume, error) {
	var r model.Resume

	// yaml.v3 with KnownFields would reject unknown keys, but forward
	// compatibility matters more here: a file written by a newer minor
	// release should still load, with unknown keys ignored. The version
	// field gates genuinely incompatible schemas.
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, &model.ParseError{Message: "malformed resume file", Err: err}
	}

	if r.Version == 0 {
		// Files written before the version field default to schema 1.
		r.Version = model.CurrentVersion
	}
	if r.Version > model.CurrentVersion {
		return nil, &model.ParseError{
			Message: fmt.Sprintf("unsupported resume schema version %d (this build supports up to %d)",
				r.Version, model.CurrentVersion),
		}
	}

	// A null item node decodes to a nil map. An empty item is valid in
	// kinds with no required fields, so normalize rather than reject.
	for _, sec := range r.Sections {
		if sec == nil {
			continue // rejected by Validate below
		}
		for i, item := range sec.Items {
			if item == nil {
				sec.Items[i] = model.Item{}
			}
		}
	}

	// A persisted document must satisfy the same invariants as an
	// in-memory one; a hand-edited file with a duplicate title or a
	// missing required field is malformed input, not a valid resume.
	if err := r.Validate(); err != nil {
		return nil, &model.ParseError{Message: "invalid resume file", Err: err}
	}

	return &r, nil
}

// Load reads and decodes the resume at path.
func Load(path string) (*model.Resume, error) {
	// os.ReadFile is preferred over os.Open+io.ReadAll because it handles
	// the open-read-close lifecycle in a single call.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitGeneralError,
				fmt.Sprintf("resume file not found: %s (run `resumake new` to create one)", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	return Decode(data)
}

// Save encodes the resume and writes it to path atomically: the document
// is written to a temporary file in the same directory and renamed into
// place, so a crash mid-write never leaves a truncated resume behind.
func Save(path string, r *model.Resume) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".resumake-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write resume: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write resume: %w", err)
	}

	// Rename is atomic on POSIX filesystems when source and destination
	// are in the same directory.
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace resume file %s: %w", path, err)
	}
	return nil
}
