// Package templates provides embedded template files for project creation.
package templates

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed init/*
var FS embed.FS

// InitData contains the data for init template substitution.
type InitData struct {
	AppName string
}

// ReadFile reads a template file from the embedded filesystem.
func ReadFile(path string) ([]byte, error) {
	return FS.ReadFile(path)
}

// Render executes the template at path with data.
func Render(path string, data any) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(path).Parse(string(content))
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
