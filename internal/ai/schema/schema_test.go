package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		doc   string
		valid bool
	}{
		{name: "analysis full", kind: Analysis, doc: `{"skills":["Go"],"education":[{"degree":"BSc","institution":"MIT","years":2019}],"experience":[],"experienceYears":3,"summary":"ok"}`, valid: true},
		{name: "analysis empty object", kind: Analysis, doc: `{}`, valid: true},
		{name: "analysis skills not array", kind: Analysis, doc: `{"skills":"Go, Rust"}`, valid: false},
		{name: "analysis top level array", kind: Analysis, doc: `[]`, valid: false},
		{name: "matches array", kind: Matches, doc: `[{"job_id":1,"match_score":80,"matching_skills":["Go"]}]`, valid: true},
		{name: "matches score text", kind: Matches, doc: `[{"job_id":1,"match_score":"high"}]`, valid: true},
		{name: "matches item not object", kind: Matches, doc: `[1,2]`, valid: false},
		{name: "wrapper", kind: MatchesWrapper, doc: `{"matches":[]}`, valid: true},
		{name: "wrapper missing matches", kind: MatchesWrapper, doc: `{"results":[]}`, valid: false},
		{name: "email", kind: Email, doc: `{"subject":"Hi","body":"Hello"}`, valid: true},
		{name: "email body object", kind: Email, doc: `{"body":{"text":"Hello"}}`, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.kind, decode(t, tt.doc))
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.NotEmpty(t, verr.Errors)
		})
	}
}

func TestValidateUnknownKind(t *testing.T) {
	assert.Error(t, Validate(Kind("resume"), map[string]any{}))
}
