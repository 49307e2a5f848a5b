package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullCV = `John Doe
john@example.com

SKILLS
Python, Go
Docker

WORK EXPERIENCE
Engineer | Acme | 2020 - 2022
Developer | Beta | 2022 - Present
EDUCATION
MSc Computer Science | MIT | 2015 - 2017
BSc Math | Oxford
Invalid line
`

func TestExtractFullCV(t *testing.T) {
	e := NewExtractor(Options{})

	skills, education, experience, years := e.Extract(fullCV)

	assert.Equal(t, []string{"Python", "Go", "Docker"}, skills)
	assert.Equal(t, []Education{
		{Degree: "MSc Computer Science", Institution: "MIT", Years: "2015 - 2017"},
		{Degree: "BSc Math", Institution: "Oxford", Years: ""},
	}, education)
	assert.Equal(t, []Experience{
		{Title: "Engineer", Company: "Acme", Duration: "2020 - 2022"},
		{Title: "Developer", Company: "Beta", Duration: "2022 - Present"},
	}, experience)
	assert.Equal(t, (2022-2020)+(DefaultPresentYear-2022), years)
}

func TestExtractCRLF(t *testing.T) {
	e := NewExtractor(Options{})

	skills, _, _, _ := e.Extract("SKILLS\r\nGo, Rust\r\n\r\nOther")

	assert.Equal(t, []string{"Go", "Rust"}, skills)
}

func TestExtractSkillsFallback(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		reference []string
		want      []string
	}{
		{
			name: "reference order and word boundaries",
			text: "I have worked with DOCKER and python, plus some javascript. Also Java.",
			want: []string{"Python", "JavaScript", "Java", "Docker"},
		},
		{
			name: "accented letters are part of a word",
			text: "Barista at CaféJava, later SQL reporting.",
			want: []string{"SQL"},
		},
		{
			name:      "symbol-ending names need a word character after them",
			text:      "C#9 and F# scripts",
			reference: []string{"C#", "F#"},
			want:      []string{"C#"},
		},
		{
			name: "no matches",
			text: "Pastry chef with ten years in bakeries.",
			want: []string{},
		},
		{
			name:      "custom reference list",
			text:      "Built services in Go and Rust.",
			reference: []string{"Rust", "Go", "Haskell"},
			want:      []string{"Rust", "Go"},
		},
		{
			name: "lowercase header is still a section",
			text: "skills\nGo, Rust\n\nnothing else mentions python",
			want: []string{"Go", "Rust"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(Options{ReferenceSkills: tt.reference})
			skills, _, _, _ := e.Extract(tt.text)
			assert.Equal(t, tt.want, skills)
		})
	}
}

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		presentYear int
		wantEntries int
		wantYears   int
	}{
		{
			name:        "present uses configured year",
			text:        "WORK EXPERIENCE\nEngineer | Acme | 2018 - present",
			presentYear: 2030,
			wantEntries: 1,
			wantYears:   12,
		},
		{
			name:        "reversed range contributes nothing",
			text:        "WORK EXPERIENCE\nEngineer | Acme | 2022 - 2020",
			wantEntries: 1,
			wantYears:   0,
		},
		{
			name:        "duration without years",
			text:        "WORK EXPERIENCE\nEngineer | Acme | a long time",
			wantEntries: 1,
			wantYears:   0,
		},
		{
			name:        "entries with two fields are dropped",
			text:        "WORK EXPERIENCE\nEngineer | Acme\nDeveloper | Beta | 2010 - 2011",
			wantEntries: 1,
			wantYears:   1,
		},
		{
			name:        "continuation line stays with its entry",
			text:        "WORK EXPERIENCE\nEngineer | Acme | 2019 -\n2021\nDeveloper | Beta | 2021 - 2023",
			wantEntries: 2,
			wantYears:   4,
		},
		{
			name:        "accented title starts a new entry",
			text:        "WORK EXPERIENCE\nDev | Acme | 2018 - 2020\nDéveloppeur | Beta | 2020 - 2022",
			wantEntries: 2,
			wantYears:   4,
		},
		{
			name:        "no section",
			text:        "Just some prose.",
			wantEntries: 0,
			wantYears:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(Options{PresentYear: tt.presentYear})
			_, _, experience, years := e.Extract(tt.text)
			assert.Len(t, experience, tt.wantEntries)
			assert.Equal(t, tt.wantYears, years)
			assert.GreaterOrEqual(t, years, 0)
		})
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := NewExtractor(Options{})

	skills, education, experience, years := e.Extract("")

	assert.Empty(t, skills)
	assert.NotNil(t, education)
	assert.Empty(t, education)
	assert.NotNil(t, experience)
	assert.Empty(t, experience)
	assert.Zero(t, years)
}

func TestAnalyze(t *testing.T) {
	e := NewExtractor(Options{PresentYear: 2024})

	analysis := e.Analyze(fullCV)
	require.NotNil(t, analysis)

	assert.Equal(t, 4, analysis.TotalExperienceYears)
	assert.Equal(t,
		"Candidate with approximately 2 years of experience, skilled in Python, Go, Docker. "+
			"Has a Bachelor's level education and most recently worked as a Engineer at Acme.",
		analysis.Summary,
	)
}

func TestExtractAccentedEntry(t *testing.T) {
	e := NewExtractor(Options{})

	_, _, experience, _ := e.Extract("WORK EXPERIENCE\nDev | Acme | 2018 - 2020\nDéveloppeur | Beta | 2020 - 2022")

	assert.Equal(t, []Experience{
		{Title: "Dev", Company: "Acme", Duration: "2018 - 2020"},
		{Title: "Développeur", Company: "Beta", Duration: "2020 - 2022"},
	}, experience)
}
