// Package model defines the domain types for the resumake CLI.
//
// All entities in this package represent the resume document tree:
// a Resume owns an ordered list of Sections, each Section owns an
// ordered list of Items. Ownership is exclusive — no sharing, no cycles.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// SectionKind classifies a resume section and determines which item
// fields are required. The kind also selects the layout used by the
// built-in LaTeX template.
type SectionKind string

const (
	// KindExperience holds work-history entries (position, company, dates).
	KindExperience SectionKind = "experience"

	// KindEducation holds degrees and schools.
	KindEducation SectionKind = "education"

	// KindProject holds personal or professional projects.
	KindProject SectionKind = "project"

	// KindSkills holds skill categories, each with a comma-separated list.
	KindSkills SectionKind = "skills"

	// KindCustom is a free-form section with no required fields.
	// The built-in template renders custom items as plain bullet lists.
	KindCustom SectionKind = "custom"
)

// String returns the string representation of SectionKind.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and YAML serialization.
func (k SectionKind) String() string {
	return string(k)
}

// IsValid checks whether the SectionKind value is one of the
// predefined valid kinds.
func (k SectionKind) IsValid() bool {
	switch k {
	case KindExperience, KindEducation, KindProject, KindSkills, KindCustom:
		return true
	default:
		return false
	}
}

// ParseSectionKind converts a string to a SectionKind.
// Returns an error if the string does not match any valid kind.
func ParseSectionKind(s string) (SectionKind, error) {
	kind := SectionKind(strings.ToLower(s))
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid section kind: %q (valid: experience, education, project, skills, custom)", s)
	}
	return kind, nil
}

// requiredFields maps each section kind to the item field names that must
// be present when an item is added. Values may be empty strings; only the
// presence of the key is enforced. The sets mirror the "X and Y are
// required" rules of the original entry dialogs.
var requiredFields = map[SectionKind][]string{
	KindExperience: {"position", "company", "start"},
	KindEducation:  {"school", "degree"},
	KindProject:    {"name", "skills"},
	KindSkills:     {"category", "skills"},
	KindCustom:     nil,
}

// RequiredFields returns the field names an item in a section of this
// kind must carry. The returned slice must not be modified.
func (k SectionKind) RequiredFields() []string {
	return requiredFields[k]
}

// Item is a single entry within a section: a mapping from field name to
// string value (e.g., position, company, start). The field shape depends
// on the owning section's kind.
type Item map[string]string

// Clone returns a deep copy of the item. Mutation operations clone
// caller-supplied field maps so the tree never aliases external state.
func (it Item) Clone() Item {
	if it == nil {
		return nil
	}
	out := make(Item, len(it))
	for k, v := range it {
		out[k] = v
	}
	return out
}

// Equal reports whether two items carry exactly the same fields and values.
func (it Item) Equal(other Item) bool {
	if len(it) != len(other) {
		return false
	}
	for k, v := range it {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Keys returns the item's field names in sorted order. Used wherever a
// deterministic traversal of the field mapping is needed (validation
// error ordering, text output).
func (it Item) Keys() []string {
	keys := make([]string, 0, len(it))
	for k := range it {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Section is a named, ordered group of items (e.g., "Experience").
// The title doubles as the section's identifier within a resume and
// must be non-empty and unique.
type Section struct {
	Title string      `yaml:"title" json:"title"`
	Kind  SectionKind `yaml:"kind" json:"kind"`
	Items []Item      `yaml:"items,omitempty" json:"items,omitempty"`
}

// Equal reports structural equality: same title, kind, and items in the
// same order.
func (s *Section) Equal(other *Section) bool {
	if s.Title != other.Title || s.Kind != other.Kind || len(s.Items) != len(other.Items) {
		return false
	}
	for i := range s.Items {
		if !s.Items[i].Equal(other.Items[i]) {
			return false
		}
	}
	return true
}

// Contact holds the resume header: the person's name and optional
// contact channels. All non-empty values are format-validated
// (see ValidateContact).
type Contact struct {
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Email    string `yaml:"email,omitempty" json:"email,omitempty"`
	Phone    string `yaml:"phone,omitempty" json:"phone,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   string `yaml:"github,omitempty" json:"github,omitempty"`
	Website  string `yaml:"website,omitempty" json:"website,omitempty"`
}

// CurrentVersion is the persisted-form schema version written by this
// release. Load rejects documents with a greater version.
const CurrentVersion = 1

// Resume is the root document: a contact header plus an ordered sequence
// of sections. Section order is significant and user-controlled.
type Resume struct {
	Version  int        `yaml:"version" json:"version"`
	Contact  Contact    `yaml:"contact,omitempty" json:"contact"`
	Sections []*Section `yaml:"sections,omitempty" json:"sections,omitempty"`
}

// NewResume creates an empty resume at the current schema version.
func NewResume() *Resume {
	return &Resume{Version: CurrentVersion}
}

// Equal reports structural equality of two resumes: same version,
// contact, and sections (titles, kinds, items) in the same order.
// This is the equality used by the serialization round-trip property.
func (r *Resume) Equal(other *Resume) bool {
	if other == nil {
		return r == nil
	}
	if r.Version != other.Version || r.Contact != other.Contact || len(r.Sections) != len(other.Sections) {
		return false
	}
	for i := range r.Sections {
		if !r.Sections[i].Equal(other.Sections[i]) {
			return false
		}
	}
	return true
}

// SectionIndex returns the position of the section with the given title,
// or -1 if no such section exists. Titles are compared exactly.
func (r *Resume) SectionIndex(title string) int {
	for i, s := range r.Sections {
		if s.Title == title {
			return i
		}
	}
	return -1
}
