// document.go implements the mutation operations on the Resume tree:
// add/remove/move for sections and items, item field merging, and
// whole-document validation.
//
// Every operation validates its inputs completely before touching the
// tree, so a failed call leaves the document exactly as it was. Mutations
// clone caller-supplied field maps; the tree never aliases external state.
package model

// AddSection appends a new empty section with the given title and kind.
// The title must be non-empty and unique within the resume.
func (r *Resume) AddSection(title string, kind SectionKind) (*Section, error) {
	if title == "" {
		return nil, NewValidationError("title", "section title must not be empty")
	}
	if !kind.IsValid() {
		return nil, NewValidationError("kind", "%q is not a valid section kind", kind)
	}
	if r.SectionIndex(title) >= 0 {
		return nil, NewValidationError("title", "section %q already exists", title)
	}

	sec := &Section{Title: title, Kind: kind}
	r.Sections = append(r.Sections, sec)
	return sec, nil
}

// RemoveSection deletes the section at the given index.
func (r *Resume) RemoveSection(index int) error {
	if err := r.checkSectionIndex(index); err != nil {
		return err
	}
	r.Sections = append(r.Sections[:index], r.Sections[index+1:]...)
	return nil
}

// MoveSection reorders sections by removing the section at from and
// reinserting it at to. Equal indices are a no-op. The operation is a
// permutation: the set of sections is unchanged, only order changes.
func (r *Resume) MoveSection(from, to int) error {
	if err := r.checkSectionIndex(from); err != nil {
		return err
	}
	if err := r.checkSectionIndex(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	sec := r.Sections[from]
	rest := append(r.Sections[:from], r.Sections[from+1:]...)
	r.Sections = append(rest[:to], append([]*Section{sec}, rest[to:]...)...)
	return nil
}

// AddItem appends an item to the section at sectionIndex. The fields must
// include every required key for the section's kind (values may be empty)
// and pass the per-field format checks. The stored item is a clone of the
// supplied map.
func (r *Resume) AddItem(sectionIndex int, fields Item) (Item, error) {
	if err := r.checkSectionIndex(sectionIndex); err != nil {
		return nil, err
	}
	sec := r.Sections[sectionIndex]

	for _, req := range sec.Kind.RequiredFields() {
		if _, ok := fields[req]; !ok {
			return nil, NewValidationError(req, "field is required for %s sections", sec.Kind)
		}
	}
	if err := ValidateFields(fields); err != nil {
		return nil, err
	}

	item := fields.Clone()
	if item == nil {
		item = Item{}
	}
	sec.Items = append(sec.Items, item)
	return item, nil
}

// EditItem merges the given fields into the item at the given position.
// Existing fields not named in fields are kept. The merged result is
// validated before being committed, so a rejected edit leaves the item
// untouched.
func (r *Resume) EditItem(sectionIndex, itemIndex int, fields Item) error {
	if err := r.checkItemIndex(sectionIndex, itemIndex); err != nil {
		return err
	}
	sec := r.Sections[sectionIndex]

	merged := sec.Items[itemIndex].Clone()
	// Clone of a nil item (a null node in a loaded file) is nil.
	if merged == nil {
		merged = Item{}
	}
	for k, v := range fields {
		merged[k] = v
	}
	if err := ValidateFields(merged); err != nil {
		return err
	}

	sec.Items[itemIndex] = merged
	return nil
}

// RemoveItem deletes the item at the given position.
func (r *Resume) RemoveItem(sectionIndex, itemIndex int) error {
	if err := r.checkItemIndex(sectionIndex, itemIndex); err != nil {
		return err
	}
	sec := r.Sections[sectionIndex]
	sec.Items = append(sec.Items[:itemIndex], sec.Items[itemIndex+1:]...)
	return nil
}

// MoveItem reorders items within a section, analogous to MoveSection.
func (r *Resume) MoveItem(sectionIndex, from, to int) error {
	if err := r.checkItemIndex(sectionIndex, from); err != nil {
		return err
	}
	if err := r.checkItemIndex(sectionIndex, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	sec := r.Sections[sectionIndex]
	item := sec.Items[from]
	rest := append(sec.Items[:from], sec.Items[from+1:]...)
	sec.Items = append(rest[:to], append([]Item{item}, rest[to:]...)...)
	return nil
}

// SetContact replaces the contact header after validating it.
func (r *Resume) SetContact(c Contact) error {
	if err := ValidateContact(c); err != nil {
		return err
	}
	r.Contact = c
	return nil
}

// Validate checks the whole document against the model invariants:
// contact formats, non-empty unique section titles, valid kinds, and
// per-item required keys and field formats. Used by `resumake check`
// and by the store when loading a persisted file.
func (r *Resume) Validate() error {
	if err := ValidateContact(r.Contact); err != nil {
		return err
	}

	seen := make(map[string]bool, len(r.Sections))
	for si, sec := range r.Sections {
		// A null YAML node decodes to a nil *Section.
		if sec == nil {
			return NewValidationError("section", "section %d is null", si)
		}
		if sec.Title == "" {
			return NewValidationError("title", "section %d has an empty title", si)
		}
		if !sec.Kind.IsValid() {
			return NewValidationError("kind", "section %q has invalid kind %q", sec.Title, sec.Kind)
		}
		if seen[sec.Title] {
			return NewValidationError("title", "duplicate section title %q", sec.Title)
		}
		seen[sec.Title] = true

		for ii, item := range sec.Items {
			for _, req := range sec.Kind.RequiredFields() {
				if _, ok := item[req]; !ok {
					return NewValidationError(req,
						"item %d of section %q is missing required field", ii, sec.Title)
				}
			}
			if err := ValidateFields(item); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkSectionIndex verifies that index addresses an existing section.
func (r *Resume) checkSectionIndex(index int) error {
	if index < 0 || index >= len(r.Sections) {
		return &IndexError{What: "section", Index: index, Length: len(r.Sections)}
	}
	return nil
}

// checkItemIndex verifies the section index, then the item index within it.
func (r *Resume) checkItemIndex(sectionIndex, itemIndex int) error {
	if err := r.checkSectionIndex(sectionIndex); err != nil {
		return err
	}
	items := r.Sections[sectionIndex].Items
	if itemIndex < 0 || itemIndex >= len(items) {
		return &IndexError{What: "item", Index: itemIndex, Length: len(items)}
	}
	return nil
}
