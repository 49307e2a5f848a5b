package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = map[string]Template{
	"greeting": {ID: "greeting", Subject: "Hi {{name}}", Template: "Hello {{name}}"},
	"skills":   {ID: "skills", Subject: "Skills: {{matching_skills}}", Template: "{{matching_skills}}"},
	"nested":   {ID: "nested", Subject: "{{a}}", Template: "{{a}} and {{b}}"},
	"mixed":    {ID: "mixed", Subject: "{{ name }}", Template: "{{years}} years, remote: {{remote}}, tags: {{tags}}, note: {{note}}"},
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ctx  Context
		want Message
	}{
		{
			name: "simple substitution",
			id:   "greeting",
			ctx:  Context{"name": "Ann"},
			want: Message{Subject: "Hi Ann", Body: "Hello Ann"},
		},
		{
			name: "missing key survives",
			id:   "greeting",
			ctx:  Context{},
			want: Message{Subject: "Hi {{name}}", Body: "Hello {{name}}"},
		},
		{
			name: "matching skills as bullets in body only",
			id:   "skills",
			ctx:  Context{"matching_skills": []string{"Go", "Rust"}},
			want: Message{Subject: "Skills: Go, Rust", Body: "- Go\n- Rust"},
		},
		{
			name: "matching skills decoded from json",
			id:   "skills",
			ctx:  Context{"matching_skills": []any{"Go", "Rust"}},
			want: Message{Subject: "Skills: Go, Rust", Body: "- Go\n- Rust"},
		},
		{
			name: "matching skills as plain string",
			id:   "skills",
			ctx:  Context{"matching_skills": "Go"},
			want: Message{Subject: "Skills: Go", Body: "Go"},
		},
		{
			name: "values are not substituted again",
			id:   "nested",
			ctx:  Context{"a": "{{b}}", "b": "B"},
			want: Message{Subject: "{{b}}", Body: "{{b}} and B"},
		},
		{
			name: "non string values",
			id:   "mixed",
			ctx:  Context{"years": 5, "remote": true, "tags": []string{"a", "b"}, "note": nil, "name": "x"},
			want: Message{Subject: "{{ name }}", Body: "5 years, remote: true, tags: a, b, note: "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.id, tt.ctx, catalog)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("missing", Context{"name": "Ann"}, catalog)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRenderIdempotent(t *testing.T) {
	ctx := Context{"name": "Ann", "matching_skills": []string{"Go"}}

	first, err := Render("greeting", ctx, catalog)
	require.NoError(t, err)
	second, err := Render("greeting", ctx, catalog)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderConfluent(t *testing.T) {
	tpl := map[string]Template{"t": {Template: "{{a}}{{ab}}{{b}}"}}
	ctx := Context{"a": "1", "ab": "2", "b": "3"}

	got, err := Render("t", ctx, tpl)
	require.NoError(t, err)
	assert.Equal(t, "123", got.Body)
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("Dear {{candidate_name}}, {{job_title}} at {{company_name}}. {{candidate_name}}")
	assert.Equal(t, []string{"candidate_name", "company_name", "job_title"}, got)
	assert.Empty(t, Placeholders("no placeholders"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "a, b", Stringify([]any{"a", "b"}))
	assert.Equal(t, "3.5", Stringify(3.5))
}
