package render

import (
	"fmt"
	"regexp"
	"strings"
)

const identPattern = `[A-Za-z_][A-Za-z0-9_]*`

var (
	// Head identifier of a variable tag: "name" in {{ name|upper }}.
	varTagRe = regexp.MustCompile(`\{\{-?\s*(` + identPattern + `)`)

	forRe   = regexp.MustCompile(`\{%-?\s*for\s+(` + identPattern + `)(?:\s*,\s*(` + identPattern + `))?\s+in\b`)
	setRe   = regexp.MustCompile(`\{%-?\s*set\s+(` + identPattern + `)\s*=`)
	withRe  = regexp.MustCompile(`\{%-?\s*with\s+([^%]*)-?%\}`)
	macroRe = regexp.MustCompile(`\{%-?\s*macro\s+` + identPattern + `\s*\(([^)]*)\)`)

	withAssignRe = regexp.MustCompile(`(` + identPattern + `)\s*=`)
	withAsRe     = regexp.MustCompile(`\bas\s+(` + identPattern + `)`)

	commentRe  = regexp.MustCompile(`(?s)\{#.*?#\}`)
	verbatimRe = regexp.MustCompile(`(?s)\{%-?\s*verbatim\s*-?%\}.*?\{%-?\s*endverbatim\s*-?%\}`)
)

// Names the engine resolves without a context entry.
var builtinNames = map[string]bool{
	"true": true, "false": true, "True": true, "False": true,
	"nil": true, "none": true, "None": true,
	"not": true, "forloop": true,
}

// UndefinedVariableError reports a variable tag whose head identifier is
// neither in the render context nor bound inside the template.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable '%s' not found in context", e.Name)
}

// checkDefined returns an UndefinedVariableError for the first variable tag
// in text that references a name ctx does not define. Names bound by for,
// set, with and macro tags count as defined anywhere in the template.
func checkDefined(text string, ctx Context) error {
	text = verbatimRe.ReplaceAllString(text, "")
	text = commentRe.ReplaceAllString(text, "")

	bound := localNames(text)
	for _, m := range varTagRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if _, ok := ctx[name]; ok || bound[name] || builtinNames[name] {
			continue
		}
		return &UndefinedVariableError{Name: name}
	}
	return nil
}

func localNames(text string) map[string]bool {
	bound := map[string]bool{}
	for _, m := range forRe.FindAllStringSubmatch(text, -1) {
		bound[m[1]] = true
		if m[2] != "" {
			bound[m[2]] = true
		}
	}
	for _, m := range setRe.FindAllStringSubmatch(text, -1) {
		bound[m[1]] = true
	}
	for _, m := range withRe.FindAllStringSubmatch(text, -1) {
		for _, a := range withAssignRe.FindAllStringSubmatch(m[1], -1) {
			bound[a[1]] = true
		}
		for _, a := range withAsRe.FindAllStringSubmatch(m[1], -1) {
			bound[a[1]] = true
		}
	}
	for _, m := range macroRe.FindAllStringSubmatch(text, -1) {
		for _, param := range strings.Split(m[1], ",") {
			param, _, _ = strings.Cut(param, "=")
			if param = strings.TrimSpace(param); param != "" {
				bound[param] = true
			}
		}
	}
	return bound
}
