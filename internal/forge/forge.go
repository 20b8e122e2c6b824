// Package forge renders README skeletons for profiles and projects.
package forge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const (
	StyleClean = "clean"
	StyleCute  = "cute"
)

var (
	profileTemplates = map[string]*template.Template{
		StyleClean: template.Must(template.New("profile-clean").Parse(profileClean)),
		StyleCute:  template.Must(template.New("profile-cute").Parse(profileCute)),
	}
	projectTemplates = map[string]*template.Template{
		StyleClean: template.Must(template.New("project-clean").Parse(projectClean)),
		StyleCute:  template.Must(template.New("project-cute").Parse(projectCute)),
	}
)

// NormalizeStyle lowercases and validates a style name.
func NormalizeStyle(style string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(style))
	if v == "" {
		return StyleClean, nil
	}
	if v != StyleClean && v != StyleCute {
		return "", fmt.Errorf("style must be %q or %q, got %q", StyleClean, StyleCute, style)
	}
	return v, nil
}

type profileData struct {
	Name         string
	About        string
	GitHubHandle string
	Website      string
}

type projectData struct {
	Title       string
	Description string
}

// RenderProfile produces a profile README. Unknown styles fall back
// to the clean template.
func RenderProfile(name, style string) string {
	tmpl, ok := profileTemplates[style]
	if !ok {
		tmpl = profileTemplates[StyleClean]
	}
	var b strings.Builder
	tmpl.Execute(&b, profileData{
		Name:         name,
		About:        "Write a short bio: what you build, what you love, what you are exploring.",
		GitHubHandle: "https://github.com/your-handle",
		Website:      "https://your-site.example",
	})
	return b.String()
}

// RenderProject produces a project README skeleton.
func RenderProject(title, description, style string) string {
	tmpl, ok := projectTemplates[style]
	if !ok {
		tmpl = projectTemplates[StyleClean]
	}
	if description == "" {
		description = "Add a crisp summary of the project goal and audience."
	}
	var b strings.Builder
	tmpl.Execute(&b, projectData{Title: title, Description: description})
	return b.String()
}

// WriteOutput writes rendered content to path, creating parent
// directories as needed.
func WriteOutput(content, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write readme: %w", err)
	}
	return abs, nil
}
