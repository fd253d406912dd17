package util

import (
	"bytes"
	"strings"
	"text/template"
)

// RenderTemplate renders text as a text/template against vars. Missing keys
// render as the empty string. This lives in internal to avoid committing to
// public API stability prematurely.
func RenderTemplate(text string, vars map[string]string) (string, error) {
	if !strings.Contains(text, "{{") { // fast path: no template markers
		return text, nil
	}

	tmpl, err := template.New("function").Option("missingkey=zero").Funcs(template.FuncMap{
		"default": func(defaultVal string, val string) string {
			if val == "" {
				return defaultVal
			}
			return val
		},
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"trim":  strings.TrimSpace,
	}).Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", err
	}

	return buf.String(), nil
}
