package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		skills     []string
		education  []Education
		experience []Experience
		want       string
	}{
		{
			name:       "more than five skills and a master degree",
			skills:     []string{"a", "b", "c", "d", "e", "f", "g"},
			education:  []Education{{Degree: "BSc"}, {Degree: "Master of Science"}},
			experience: []Experience{{Title: "Engineer", Company: "Acme"}, {Title: "Intern", Company: "Beta"}},
			want: "Candidate with approximately 2 years of experience, skilled in a, b, c, d, e, and 2 more. " +
				"Has a Master's level education and most recently worked as a Engineer at Acme.",
		},
		{
			name:   "empty education still reads bachelor",
			skills: []string{"Go"},
			want:   "Candidate with approximately 0 years of experience, skilled in Go. Has a Bachelor's level education.",
		},
		{
			name:      "master match is case sensitive",
			skills:    []string{"Go"},
			education: []Education{{Degree: "master of arts"}},
			want:      "Candidate with approximately 0 years of experience, skilled in Go. Has a Bachelor's level education.",
		},
		{
			name:   "exactly five skills",
			skills: []string{"a", "b", "c", "d", "e"},
			want:   "Candidate with approximately 0 years of experience, skilled in a, b, c, d, e. Has a Bachelor's level education.",
		},
		{
			name: "nothing at all",
			want: "Candidate with approximately 0 years of experience, skilled in . Has a Bachelor's level education.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.skills, tt.education, tt.experience))
		})
	}
}
