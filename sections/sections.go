// Package sections loads the page's content catalog from an embedded
// YAML document. Content edits never touch Go code.
package sections

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Section is one full-height band of the page, in display order.
type Section struct {
	ID      string
	Title   string
	Heading string
	Body    []string
	Email   string
}

type sectionDoc struct {
	Sections []struct {
		ID      string   `yaml:"id"`
		Title   string   `yaml:"title"`
		Heading string   `yaml:"heading"`
		Body    []string `yaml:"body"`
		Email   string   `yaml:"email"`
	} `yaml:"sections"`
}

// Load parses the embedded catalog. The document is compiled in, so an
// error here means the content file itself is broken.
func Load() ([]Section, error) {
	var doc sectionDoc
	if err := yaml.Unmarshal(contentYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse section content: %w", err)
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("section content is empty")
	}

	seen := make(map[string]bool, len(doc.Sections))
	out := make([]Section, 0, len(doc.Sections))
	for i, s := range doc.Sections {
		if s.ID == "" {
			return nil, fmt.Errorf("section %d has no id", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Heading == "" {
			return nil, fmt.Errorf("section %q has no heading", s.ID)
		}
		out = append(out, Section{
			ID:      s.ID,
			Title:   s.Title,
			Heading: s.Heading,
			Body:    s.Body,
			Email:   s.Email,
		})
	}
	return out, nil
}

// IndexOf returns the position of a section ID, or -1 when absent.
func IndexOf(list []Section, id string) int {
	for i, s := range list {
		if s.ID == id {
			return i
		}
	}
	return -1
}
