// import.go reads the JSON files written by the legacy desktop
// application and maps them onto the section/item model.
//
// The legacy schema is fixed-shape: a header object plus one optional
// object per section type (skills/experience/projects/education), each
// wrapping a list of typed entries. Hand-maintained files in the wild
// often carry comments and trailing commas, so the bytes are run through
// github.com/tidwall/jsonc before parsing with encoding/json.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// legacyResume mirrors the legacy on-disk schema. Only the fields the
// original application wrote are included; encoding/json silently ignores
// anything else.
type legacyResume struct {
	Header     *legacyHeader     `json:"header"`
	Skills     *legacySkills     `json:"skills"`
	Experience *legacyExperience `json:"experience"`
	Projects   *legacyProjects   `json:"projects"`
	Education  *legacyEducation  `json:"education"`
}

type legacyHeader struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Number    string `json:"number"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	GitHub    string `json:"github"`
}

type legacySkills struct {
	SkillTypes []struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	} `json:"skill_types"`
}

type legacyExperience struct {
	Experiences []struct {
		Position    string         `json:"position"`
		Company     string         `json:"company"`
		Description []legacyBullet `json:"description"`
		StartDate   string         `json:"start_date"`
		EndDate     string         `json:"end_date"`
	} `json:"experiences"`
}

type legacyProjects struct {
	Projects []struct {
		Name        string         `json:"name"`
		Skills      []string       `json:"skills"`
		Description []legacyBullet `json:"description"`
		Link        string         `json:"link"`
	} `json:"projects"`
}

type legacyEducation struct {
	Educations []struct {
		School    string          `json:"school"`
		Degree    string          `json:"degree"`
		StartDate string          `json:"start_date"`
		Awards    []string        `json:"awards"`
		Gpa       json.RawMessage `json:"gpa"`
	} `json:"educations"`
}

// legacyBullet is a single description entry: {"text": "..."}.
type legacyBullet struct {
	Text string `json:"text"`
}

// ImportJSON converts a legacy JSON document into a Resume. The result
// satisfies the model invariants (ImportJSON validates before returning).
// Returns a model.ParseError on malformed input.
func ImportJSON(data []byte) (*model.Resume, error) {
	// Strip comments and trailing commas first. For plain JSON this is
	// a no-op.
	clean := jsonc.ToJSON(data)

	var legacy legacyResume
	if err := json.Unmarshal(clean, &legacy); err != nil {
		return nil, &model.ParseError{Message: "malformed legacy resume JSON", Err: err}
	}
	if legacy.Header == nil {
		return nil, &model.ParseError{Message: "legacy resume JSON is missing the header object"}
	}

	r := model.NewResume()
	r.Contact = model.Contact{
		Name:     legacy.Header.Name,
		Email:    legacy.Header.Email,
		Phone:    legacy.Header.Number,
		LinkedIn: legacy.Header.LinkedIn,
		GitHub:   legacy.Header.GitHub,
		Website:  legacy.Header.Portfolio,
	}

	if legacy.Skills != nil && len(legacy.Skills.SkillTypes) > 0 {
		sec := &model.Section{Title: "Skills", Kind: model.KindSkills}
		for _, st := range legacy.Skills.SkillTypes {
			sec.Items = append(sec.Items, model.Item{
				"category": st.Name,
				"skills":   strings.Join(st.Skills, ", "),
			})
		}
		r.Sections = append(r.Sections, sec)
	}

	if legacy.Experience != nil && len(legacy.Experience.Experiences) > 0 {
		sec := &model.Section{Title: "Experience", Kind: model.KindExperience}
		for _, e := range legacy.Experience.Experiences {
			item := model.Item{
				"position": e.Position,
				"company":  e.Company,
				"start":    e.StartDate,
			}
			setIfPresent(item, "end", e.EndDate)
			setIfPresent(item, "highlights", joinBullets(e.Description))
			sec.Items = append(sec.Items, item)
		}
		r.Sections = append(r.Sections, sec)
	}

	if legacy.Projects != nil && len(legacy.Projects.Projects) > 0 {
		sec := &model.Section{Title: "Projects", Kind: model.KindProject}
		for _, p := range legacy.Projects.Projects {
			item := model.Item{
				"name":   p.Name,
				"skills": strings.Join(p.Skills, ", "),
			}
			setIfPresent(item, "link", p.Link)
			setIfPresent(item, "highlights", joinBullets(p.Description))
			sec.Items = append(sec.Items, item)
		}
		r.Sections = append(r.Sections, sec)
	}

	if legacy.Education != nil && len(legacy.Education.Educations) > 0 {
		sec := &model.Section{Title: "Education", Kind: model.KindEducation}
		for _, ed := range legacy.Education.Educations {
			item := model.Item{
				"school": ed.School,
				"degree": ed.Degree,
			}
			setIfPresent(item, "start", ed.StartDate)
			setIfPresent(item, "awards", strings.Join(ed.Awards, ", "))
			setIfPresent(item, "gpa", rawToString(ed.Gpa))
			sec.Items = append(sec.Items, item)
		}
		r.Sections = append(r.Sections, sec)
	}

	if err := r.Validate(); err != nil {
		return nil, &model.ParseError{Message: "legacy resume JSON violates document invariants", Err: err}
	}
	return r, nil
}

// ImportJSONFile loads and converts a legacy JSON file.
func ImportJSONFile(path string) (*model.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy resume %s: %w", path, err)
	}
	return ImportJSON(data)
}

// setIfPresent adds a key only when the value is non-empty, keeping
// imported items free of noise fields. Required keys are always set by
// the callers before this is used for optionals.
func setIfPresent(item model.Item, key, value string) {
	if value != "" && value != "None" {
		item[key] = value
	}
}

// joinBullets flattens legacy description entries into the newline-joined
// highlights field used by the item model.
func joinBullets(bullets []legacyBullet) string {
	parts := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// rawToString renders a raw JSON scalar (the legacy gpa field may be a
// number or a string) as its plain text form.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
