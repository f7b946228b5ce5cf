// Package prompt holds the prompt templates for financial data extraction
// and narrative analysis. Templates are Go text/templates registered by ID;
// the extraction templates vary by industry and fall back to the general one.
package prompt

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"
)

// Template is a reusable prompt with a system part and a templated user part.
type Template struct {
	ID           string
	SystemPrompt string
	userTmpl     *template.Template
}

// Render executes the user template with the given variables.
func (t *Template) Render(vars map[string]interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.userTmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("rendering prompt %s: %w", t.ID, err)
	}
	return buf.String(), nil
}

var (
	mu       sync.RWMutex
	registry = make(map[string]*Template)
)

func register(id, systemPrompt, userTmpl string) {
	mu.Lock()
	defer mu.Unlock()
	registry[id] = &Template{
		ID:           id,
		SystemPrompt: systemPrompt,
		userTmpl:     template.Must(template.New(id).Parse(userTmpl)),
	}
}

// Get returns the template registered under id, or nil.
func Get(id string) *Template {
	mu.RLock()
	defer mu.RUnlock()
	return registry[id]
}

// GetExtractionPrompt returns the extraction template for an industry tag.
// Unknown tags fall back to the general template.
func GetExtractionPrompt(industry string) *Template {
	switch industry {
	case "saas", "software":
		return Get("extraction.saas")
	case "retail", "ecommerce":
		return Get("extraction.retail")
	default:
		return Get("extraction.general")
	}
}
