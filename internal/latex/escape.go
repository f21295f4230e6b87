package latex

import "strings"

// specials maps LaTeX special characters to their escaped forms.
// The replacements apply to plain text only — never to raw LaTeX
// fragments or URLs, which must pass through untouched.
var specials = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
}

// Escape replaces LaTeX special characters in plain text.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if esc, ok := specials[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Href builds an \href{url}{label} with the template's accent color on
// the label. An empty url degrades to the escaped label alone. The label
// is escaped; the url is not.
func Href(url, label string) string {
	if url == "" {
		return Escape(label)
	}
	return `\href{` + url + `}{\textcolor{vibrantblue}{` + Escape(label) + `}}`
}

// hrefPlain is Href without the accent color, used for company names.
func hrefPlain(url, label string) string {
	if url == "" {
		return Escape(label)
	}
	return `\href{` + url + `}{` + Escape(label) + `}`
}

// faIcons maps human-friendly icon names (as stored in an item's optional
// "icon" field) to FontAwesome control sequences.
var faIcons = map[string]string{
	"Train":         `\faTrain`,
	"Heartbeat":     `\faHeartbeat`,
	"Trophy":        `\faTrophy`,
	"Dragon":        `\faDragon`,
	"Plus":          `\faPlus`,
	"GraduationCap": `\faGraduationCap`,
	"ShareSquare":   `\faShareSquare`,
	"Github":        `\faGithub`,
	"Linkedin":      `\faLinkedin`,
	"Globe":         `\faGlobe`,
	"Envelope":      `\faEnvelope`,
	"Phone":         `\faPhone`,
}

// Icon returns the colored icon wrapper for a recognized icon name, or
// an empty string for unknown/empty names.
func Icon(name string) string {
	cmd, ok := faIcons[name]
	if !ok {
		return ""
	}
	return `{\textcolor{vibrantblue}` + cmd + `\hspace{0.5mm}} `
}
