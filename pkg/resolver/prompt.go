package resolver

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/reportgen/pkg/report"
)

// AskFunc runs one terminal prompt and returns the entered value. It exists
// so render logic can be tested without a real terminal.
type AskFunc func(message string) (string, error)

// Prompt wraps another resolver and asks the terminal for any variable the
// inner resolver cannot supply. Answers are written through to the inner
// resolver so each name is asked at most once per record.
type Prompt struct {
	inner report.VariableResolver
	ask   AskFunc
	asked map[string]bool
}

// NewPrompt builds a prompting resolver over inner using a survey input
// prompt.
func NewPrompt(inner report.VariableResolver) *Prompt {
	return &Prompt{
		inner: inner,
		ask:   surveyAsk,
		asked: make(map[string]bool),
	}
}

// WithAsk swaps the prompt implementation; tests inject canned answers here.
func (p *Prompt) WithAsk(ask AskFunc) *Prompt {
	p.ask = ask
	return p
}

func surveyAsk(message string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", err
	}
	return out, nil
}

// Get returns the inner value, prompting once when it is empty. A declined
// or failed prompt resolves to the empty string, keeping the render-side
// missing-variable contract intact.
func (p *Prompt) Get(name string) string {
	if v := p.inner.Get(name); v != "" {
		return v
	}
	if p.asked[name] {
		return ""
	}
	p.asked[name] = true
	v, err := p.ask(fmt.Sprintf("Value for %s:", name))
	if err != nil {
		return ""
	}
	p.inner.Set(name, v)
	return v
}

// Set forwards chomp write-backs to the inner resolver.
func (p *Prompt) Set(name, value string) {
	p.inner.Set(name, value)
}
