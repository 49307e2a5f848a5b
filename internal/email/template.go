// Package email fills recruitment email templates from a context of named values.
package email

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MatchingSkillsKey is rendered as a bulleted list in the body when its value is a sequence.
const MatchingSkillsKey = "matching_skills"

// ErrTemplateNotFound is returned when a template id is not in the catalog.
var ErrTemplateNotFound = errors.New("email template not found")

var placeholder = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Template is a named subject and body that may contain {{name}} placeholders.
type Template struct {
	ID       string `json:"id" mapstructure:"id"`
	Subject  string `json:"subject" mapstructure:"subject"`
	Template string `json:"template" mapstructure:"template"`
}

// Context maps placeholder names to values. Values are strings, string
// sequences, or anything fmt can print.
type Context map[string]any

// Message is a rendered email.
type Message struct {
	Subject string `json:"subject" mapstructure:"subject"`
	Body    string `json:"body" mapstructure:"body"`
}

// Render fills the template with id from templates. Each {{name}} span is
// replaced once, so values that themselves contain placeholders are left as is.
// Names missing from ctx stay verbatim.
func Render(id string, ctx Context, templates map[string]Template) (Message, error) {
	tpl, ok := templates[id]
	if !ok {
		return Message{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}

	return Message{
		Subject: fill(tpl.Subject, ctx, false),
		Body:    fill(tpl.Template, ctx, true),
	}, nil
}

// Placeholders lists the distinct placeholder names used in text, sorted.
func Placeholders(text string) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, m := range placeholder.FindAllStringSubmatch(text, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	sort.Strings(names)
	return names
}

func fill(text string, ctx Context, body bool) string {
	if len(ctx) == 0 {
		return text
	}

	return placeholder.ReplaceAllStringFunc(text, func(token string) string {
		key := token[2 : len(token)-2]
		value, ok := ctx[key]
		if !ok {
			return token
		}

		if body && key == MatchingSkillsKey {
			if items, ok := sequence(value); ok {
				return bullets(items)
			}
		}
		return Stringify(value)
	})
}

// Stringify renders a context value as text. Sequences are joined with ", ".
func Stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	if items, ok := sequence(value); ok {
		return strings.Join(items, ", ")
	}
	return fmt.Sprint(value)
}

func sequence(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, Stringify(item))
		}
		return items, true
	default:
		return nil, false
	}
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
