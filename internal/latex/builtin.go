// builtin.go produces the bundled single-page resume layout. The preamble
// and the \resume* macros come from the Jake Gutierrez template
// (https://github.com/sb2nov/resume lineage, MIT licensed); section
// bodies are generated from the document tree, dispatching on each
// section's kind.
package latex

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// preamble is the document header: packages, colors, margins and the
// \resume* macros, kept verbatim from the upstream template.
const preamble = `%-------------------------
% Resume in Latex
% Author : Jake Gutierrez  (adapted for programmatic generation)
% Based off of: https://github.com/sb2nov/resume
% License : MIT
%------------------------

\documentclass[letterpaper,11pt]{article}

\usepackage{latexsym}
\usepackage[empty]{fullpage}
\usepackage{titlesec}
\usepackage{marvosym}
\usepackage[usenames,dvipsnames]{color}
\usepackage{verbatim}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\usepackage{fancyhdr}
\usepackage[english]{babel}
\usepackage{tabularx}
\usepackage{xcolor}
\usepackage{fontawesome5}

\input{glyphtounicode}

\definecolor{vibrantblue}{RGB}{0, 102, 204}

\pagestyle{fancy}
\fancyhf{}
\fancyfoot{}
\renewcommand{\headrulewidth}{0pt}
\renewcommand{\footrulewidth}{0pt}

\addtolength{\oddsidemargin}{-0.6in}
\addtolength{\evensidemargin}{-0.6in}
\addtolength{\textwidth}{1.2in}
\addtolength{\topmargin}{-.6in}
\addtolength{\textheight}{1.2in}

\urlstyle{same}

\raggedbottom
\raggedright
\setlength{\tabcolsep}{0in}

\titleformat{\section}{
 \vspace{-8pt}\scshape\raggedright\large
}{}{0em}{}[\color{black}\titlerule \vspace{-3pt}]

\pdfgentounicode=1

\newcommand{\resumeItem}[1]{
 \item\small{
 {#1 \vspace{-2pt}} }
}
\newcommand{\resumeSubheading}[4]{
 \vspace{-1pt}\item
 \begin{tabular*}{0.97\textwidth}[t]{l@{\extracolsep{\fill}}r}
 \textbf{#1} & #2 \\
 \textit{\small#3} & \textit{\small #4} \\
 \end{tabular*}\vspace{-4pt}
}
\newcommand{\resumeProjectHeading}[2]{
 \item
 \begin{tabular*}{0.97\textwidth}{l@{\extracolsep{\fill}}r}
 \small#1 & #2 \\
 \end{tabular*}\vspace{-4pt}
}
\newcommand{\resumeSubItem}[1]{\resumeItem{#1}\vspace{-4pt}}
\renewcommand\labelitemii{$\vcenter{\hbox{\tiny$\bullet$}}$}
\newcommand{\resumeSubHeadingListStart}{\begin{itemize}[leftmargin=0.15in, label={}, itemsep=-0.25pt, topsep=0pt]}
\newcommand{\resumeSubHeadingListEnd}{\end{itemize}}
\newcommand{\resumeItemListStart}{\begin{itemize}[itemsep=-0.25pt, topsep=0pt]}
\newcommand{\resumeItemListEnd}{\end{itemize}\vspace{-3pt}}

\begin{document}
`

const closing = `\end{document}`

// RenderBuiltin produces the bundled single-page layout for the given
// resume. Sections render in document order; the layout of each is chosen
// by its kind. The contact name must be set — the template centers the
// whole header on it.
func RenderBuiltin(r *model.Resume) (string, error) {
	if r.Contact.Name == "" {
		return "", model.NewValidationError("name", "contact name is required for the built-in template")
	}

	parts := []string{preamble, buildHeader(r.Contact)}
	for _, sec := range r.Sections {
		body := buildSection(sec)
		if body != "" {
			parts = append(parts, body)
		}
	}
	parts = append(parts, closing)
	return strings.Join(parts, "\n"), nil
}

// buildSection dispatches on the section kind. Empty sections produce no
// output rather than an empty \section block.
func buildSection(sec *model.Section) string {
	if len(sec.Items) == 0 {
		return ""
	}
	switch sec.Kind {
	case model.KindSkills:
		return buildSkills(sec)
	case model.KindExperience:
		return buildExperience(sec)
	case model.KindProject:
		return buildProjects(sec)
	case model.KindEducation:
		return buildEducation(sec)
	default:
		return buildCustom(sec)
	}
}

// buildHeader renders the centered contact block with colored icons.
// Only the channels the user filled in appear, separated by $|$.
func buildHeader(c model.Contact) string {
	var lines []string
	lines = append(lines, `\begin{center}`)
	lines = append(lines, fmt.Sprintf(`    \textbf{\Huge \scshape %s} \\ \vspace{4pt}`, Escape(c.Name)))
	lines = append(lines, `    \small `)

	var chunks []string
	if c.Email != "" {
		chunks = append(chunks, Icon("Envelope")+Href("mailto:"+c.Email, c.Email))
	}
	if c.Phone != "" {
		chunks = append(chunks, Icon("Phone")+Href("tel:"+digitsOf(c.Phone), c.Phone))
	}
	if c.LinkedIn != "" {
		chunks = append(chunks, Icon("Linkedin")+Href(c.LinkedIn, "LinkedIn"))
	}
	if c.Website != "" {
		chunks = append(chunks, Icon("Globe")+Href(c.Website, "Website"))
	}
	if c.GitHub != "" {
		chunks = append(chunks, Icon("Github")+Href(c.GitHub, "GitHub"))
	}

	lines = append(lines, strings.Join(chunks, ` $|$ `))
	lines = append(lines, `\end{center}`, "")
	return strings.Join(lines, "\n")
}

// digitsOf keeps only digits and a leading plus for tel: URLs.
func digitsOf(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// buildSkills renders the single-\item skills block: one bolded category
// per line with its comma-separated list.
func buildSkills(sec *model.Section) string {
	var lines []string
	lines = append(lines, fmt.Sprintf(`\section{%s}`, Escape(sec.Title)))
	lines = append(lines, ` \begin{itemize}[leftmargin=0.15in, label={}]`)
	lines = append(lines, `    \small{\item{`)
	for _, item := range sec.Items {
		lines = append(lines, fmt.Sprintf(`     \textbf{%s}{: %s} \\`,
			Escape(item["category"]), Escape(item["skills"])))
	}
	lines = append(lines, `    }}`, ` \end{itemize}`, "")
	return strings.Join(lines, "\n")
}

// buildExperience renders \resumeSubheading entries with bullet lists.
// Recognized optional fields: end, location, link, company_link, icon,
// highlights.
func buildExperience(sec *model.Section) string {
	var lines []string
	lines = append(lines, fmt.Sprintf(`\section{%s}`, Escape(sec.Title)), "")
	lines = append(lines, `\resumeSubHeadingListStart`)

	for _, item := range sec.Items {
		leftTop := Icon(item["icon"]) + `\textbf{` + Href(item["link"], item["position"]) + `}`
		rightTop := strings.TrimSpace(Escape(item["start"]) + ` -- ` + Escape(item["end"]))
		leftBottom := hrefPlain(item["company_link"], item["company"])
		rightBottom := Escape(item["location"])

		lines = append(lines, fmt.Sprintf(`\resumeSubheading{%s}{%s}{%s}{%s}`,
			leftTop, rightTop, leftBottom, rightBottom))
		lines = append(lines, buildBullets(item["highlights"], "      ")...)
	}

	lines = append(lines, `\resumeSubHeadingListEnd`, "")
	return strings.Join(lines, "\n")
}

// buildProjects renders \resumeProjectHeading entries: linked name,
// emphasized skills, bullet list. The icon defaults to ShareSquare.
func buildProjects(sec *model.Section) string {
	var lines []string
	lines = append(lines, fmt.Sprintf(`\section{%s}`, Escape(sec.Title)), "")

	for _, item := range sec.Items {
		icon := item["icon"]
		if icon == "" {
			icon = "ShareSquare"
		}
		lines = append(lines, `      \resumeSubHeadingListStart`)
		left := Icon(icon) + `\textbf{` + Href(item["link"], item["name"]) + `}` +
			` $|$ \emph{\textbf{` + Escape(item["skills"]) + `}}`
		lines = append(lines, fmt.Sprintf(`\resumeProjectHeading{%s}{}`, left))
		lines = append(lines, buildBullets(item["highlights"], "          ")...)
		lines = append(lines, `    \resumeSubHeadingListEnd`, "")
	}

	return strings.Join(lines, "\n")
}

// buildEducation renders \resumeSubheading entries. The degree, awards
// and GPA fields fold into the third (italic) column.
func buildEducation(sec *model.Section) string {
	var lines []string
	lines = append(lines, fmt.Sprintf(`\section{%s}`, Escape(sec.Title)))
	lines = append(lines, `  \resumeSubHeadingListStart`)

	for _, item := range sec.Items {
		when := item["start"]
		if end := item["end"]; end != "" {
			when = when + " -- " + end
		}

		var tail []string
		for _, f := range []string{"degree", "awards"} {
			if item[f] != "" {
				tail = append(tail, item[f])
			}
		}
		if gpa := item["gpa"]; gpa != "" {
			if strings.Contains(strings.ToUpper(gpa), "GPA") {
				tail = append(tail, gpa)
			} else {
				tail = append(tail, gpa+" GPA")
			}
		}

		icon := item["icon"]
		if icon == "" {
			icon = "GraduationCap"
		}
		leftTop := Icon(icon) + `\textbf{` + Href(item["school_link"], item["school"]) + `}`
		lines = append(lines, fmt.Sprintf(`\resumeSubheading{%s}{%s}{%s}{%s}`,
			leftTop, Escape(when), Escape(strings.Join(tail, ", ")), Escape(item["location"])))
	}

	lines = append(lines, `  \resumeSubHeadingListEnd`, "")
	return strings.Join(lines, "\n")
}

// buildCustom renders a free-form section: each item's title field (if
// any) as a subheading, its highlights as bullets.
func buildCustom(sec *model.Section) string {
	var lines []string
	lines = append(lines, fmt.Sprintf(`\section{%s}`, Escape(sec.Title)), "")
	lines = append(lines, `\resumeSubHeadingListStart`)

	for _, item := range sec.Items {
		if title := item["title"]; title != "" {
			lines = append(lines, fmt.Sprintf(`\resumeProjectHeading{\textbf{%s}}{}`, Escape(title)))
		}
		lines = append(lines, buildBullets(item["highlights"], "      ")...)
	}

	lines = append(lines, `\resumeSubHeadingListEnd`, "")
	return strings.Join(lines, "\n")
}

// buildBullets renders a highlights field as a \resumeItem list.
// Returns nil for an empty field so callers can splice unconditionally.
func buildBullets(highlights, indent string) []string {
	bullets := model.Bullets(highlights)
	if len(bullets) == 0 {
		return nil
	}
	lines := make([]string, 0, len(bullets)+2)
	lines = append(lines, indent+`\resumeItemListStart`)
	for _, b := range bullets {
		lines = append(lines, indent+`  \resumeItem{`+Escape(b)+`}`)
	}
	lines = append(lines, indent+`\resumeItemListEnd`)
	return lines
}
