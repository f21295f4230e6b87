package latex

import (
	"strings"
	"text/template"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// funcs is the helper set exposed to user templates. Items are plain
// string maps, so templates address fields as {{.position}}; the helpers
// cover escaping, links, icons and bullet splitting.
var funcs = template.FuncMap{
	"esc":     Escape,
	"href":    Href,
	"icon":    Icon,
	"bullets": model.Bullets,
	"join":    strings.Join,
}

// Render binds the resume into a user-supplied template, producing LaTeX
// source (or any text format the template describes).
//
// The template executes with missingkey=error: indexing an item field
// that is not present fails the render with a model.TemplateError. A
// template that references only fields present in every item it touches
// therefore never fails. Parse failures are reported as TemplateError too.
func Render(r *model.Resume, templateText string) (string, error) {
	tmpl, err := template.New("resume").
		Funcs(funcs).
		Option("missingkey=error").
		Parse(templateText)
	if err != nil {
		return "", &model.TemplateError{Message: "failed to parse template", Err: err}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, r); err != nil {
		return "", &model.TemplateError{Message: "failed to render template", Err: err}
	}
	return out.String(), nil
}
