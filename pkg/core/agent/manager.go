// Package agent selects which LLM provider serves which task, driven by the
// models.yaml config file.
package agent

import (
	"context"
	"fmt"
	"sort"

	"findoc_processor/pkg/core/llm"
)

// Config is the shape of config/models.yaml.
type Config struct {
	ActiveProvider string                `yaml:"active_provider"`
	Tasks          map[string]TaskConfig `yaml:"tasks"`
}

// TaskConfig optionally overrides the provider for one task
// (e.g. "extraction", "analysis").
type TaskConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// Manager resolves providers by task name.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

// NewManager builds a manager over the known provider set.
func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":   &llm.GeminiProvider{},
			"deepseek": &llm.DeepSeekProvider{},
		},
	}
}

// ActiveProvider returns the globally active provider name.
func (m *Manager) ActiveProvider() string {
	return m.config.ActiveProvider
}

// SetActiveProvider switches the globally active provider at runtime.
func (m *Manager) SetActiveProvider(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("unknown provider: %s", name)
	}
	m.config.ActiveProvider = name
	return nil
}

// ProviderNames lists the registered provider names in sorted order.
func (m *Manager) ProviderNames() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterProvider adds or replaces a named provider.
func (m *Manager) RegisterProvider(name string, p llm.Provider) {
	m.providers[name] = p
}

// GetProvider returns the provider for a task: the per-task override if
// configured, otherwise the globally active provider, otherwise Gemini.
func (m *Manager) GetProvider(task string) llm.Provider {
	if tc, ok := m.config.Tasks[task]; ok && tc.Provider != "" {
		if p, ok := m.providers[tc.Provider]; ok {
			return p
		}
	}
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["gemini"]
}

// ExecutePrompt routes a prompt to the provider configured for the task,
// merging the task's model override into the options.
func (m *Manager) ExecutePrompt(ctx context.Context, task, prompt, systemPrompt string, options map[string]interface{}) (string, error) {
	provider := m.GetProvider(task)

	if tc, ok := m.config.Tasks[task]; ok && tc.Model != "" {
		if options == nil {
			options = make(map[string]interface{})
		}
		if _, set := options["model"]; !set {
			options["model"] = tc.Model
		}
	}

	return provider.GenerateResponse(ctx, prompt, systemPrompt, options)
}
