// Package latex renders a resume document into LaTeX source.
//
// Two rendering paths are provided:
//   - Render binds the document into a user-supplied text/template with
//     missingkey=error, so a template referencing a field absent from any
//     item fails with a model.TemplateError.
//   - RenderBuiltin produces the bundled single-page layout (the Jake
//     Gutierrez resume template) directly from the section kinds.
//
// PDF compilation of the rendered source is handled by internal/pdf.
package latex
