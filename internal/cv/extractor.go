package cv

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPresentYear is the year an open-ended "Present" range ends in. It is a
// constant rather than a clock read so the experience total is reproducible.
const DefaultPresentYear = 2024

// DefaultReferenceSkills is scanned for when a CV has no SKILLS section.
var DefaultReferenceSkills = []string{
	"Python", "JavaScript", "Java", "C#", "React", "Angular",
	"Node.js", "SQL", "AWS", "Docker", "Kubernetes", "Digital Marketing",
	"SEO", "Content Strategy", "Social Media",
}

var (
	skillsSection     = regexp.MustCompile(`(?is)(?:\A|\n)SKILLS\n(.*?)(?:\n\n|\z)`)
	educationSection  = regexp.MustCompile(`(?is)(?:\A|\n)EDUCATION\n(.*?)(?:\n\n|\z)`)
	experienceSection = regexp.MustCompile(`(?is)(?:\A|\n)WORK EXPERIENCE\n(.*?)(?:\nEDUCATION[ \t]*(?:\n|\z)|\z)`)
	skillSeparator    = regexp.MustCompile(`,|\n`)
	entryStart        = regexp.MustCompile(`^[\p{L}\p{N}_]+\s+\|`)
	yearRange         = regexp.MustCompile(`(?i)(\d{4})\s*-\s*(present|\d{4})`)
)

// Options configures an Extractor.
type Options struct {
	// ReferenceSkills is the fallback skill vocabulary. Empty means DefaultReferenceSkills.
	ReferenceSkills []string
	// PresentYear closes "YYYY - Present" ranges. Zero means DefaultPresentYear.
	PresentYear int
}

type referenceSkill struct {
	name    string
	pattern *regexp.Regexp
}

// Extractor pulls skills, education and experience out of CV text.
// It holds only compiled patterns and is safe for concurrent use.
type Extractor struct {
	reference   []referenceSkill
	presentYear int
}

func NewExtractor(opts Options) *Extractor {
	names := opts.ReferenceSkills
	if len(names) == 0 {
		names = DefaultReferenceSkills
	}

	reference := make([]referenceSkill, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		reference = append(reference, referenceSkill{
			name:    name,
			pattern: wordPattern(name),
		})
	}

	presentYear := opts.PresentYear
	if presentYear <= 0 {
		presentYear = DefaultPresentYear
	}

	return &Extractor{reference: reference, presentYear: presentYear}
}

// PresentYear returns the year used for open-ended ranges.
func (e *Extractor) PresentYear() int {
	return e.presentYear
}

// Extract returns the skills, education, experience and total years of experience found in text.
// Missing sections produce empty slices and zero years.
func (e *Extractor) Extract(text string) ([]string, []Education, []Experience, int) {
	text = normalizeNewlines(text)

	skills := e.extractSkills(text)
	education := extractEducation(text)
	experience, years := e.extractExperience(text)

	return skills, education, experience, years
}

// Analyze runs Extract and Summarize and returns the assembled analysis.
func (e *Extractor) Analyze(text string) *Analysis {
	skills, education, experience, years := e.Extract(text)

	analysis := &Analysis{
		Skills:               skills,
		Education:            education,
		Experience:           experience,
		TotalExperienceYears: years,
		Summary:              Summarize(skills, education, experience),
	}
	analysis.Normalize()

	return analysis
}

func (e *Extractor) extractSkills(text string) []string {
	if m := skillsSection.FindStringSubmatch(text); m != nil {
		skills := make([]string, 0)
		for _, item := range skillSeparator.Split(m[1], -1) {
			if item = strings.TrimSpace(item); item != "" {
				skills = append(skills, item)
			}
		}
		return skills
	}

	found := make([]string, 0)
	for _, ref := range e.reference {
		if ref.pattern.MatchString(text) {
			found = append(found, ref.name)
		}
	}
	return found
}

func extractEducation(text string) []Education {
	education := make([]Education, 0)

	m := educationSection.FindStringSubmatch(text)
	if m == nil {
		return education
	}

	for _, line := range strings.Split(strings.TrimSpace(m[1]), "\n") {
		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}

		entry := Education{
			Degree:      strings.TrimSpace(parts[0]),
			Institution: strings.TrimSpace(parts[1]),
		}
		if len(parts) > 2 {
			entry.Years = strings.TrimSpace(parts[2])
		}
		education = append(education, entry)
	}

	return education
}

func (e *Extractor) extractExperience(text string) ([]Experience, int) {
	experience := make([]Experience, 0)

	m := experienceSection.FindStringSubmatch(text)
	if m == nil {
		return experience, 0
	}

	total := 0
	for _, entry := range splitEntries(strings.TrimSpace(m[1])) {
		parts := strings.Split(entry, "|")
		if len(parts) < 3 {
			continue
		}

		item := Experience{
			Title:    strings.TrimSpace(parts[0]),
			Company:  strings.TrimSpace(parts[1]),
			Duration: strings.TrimSpace(parts[2]),
		}
		total += e.spanYears(item.Duration)
		experience = append(experience, item)
	}

	return experience, total
}

// splitEntries cuts the experience body before every line that opens a new
// "Word | ..." entry, keeping continuation lines attached to their entry.
func splitEntries(body string) []string {
	if body == "" {
		return nil
	}

	var entries []string
	var current []string
	for i, line := range strings.Split(body, "\n") {
		if i > 0 && entryStart.MatchString(line) {
			entries = append(entries, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}

	return append(entries, strings.Join(current, "\n"))
}

func (e *Extractor) spanYears(duration string) int {
	m := yearRange.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}

	start, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}

	end := e.presentYear
	if !strings.EqualFold(m[2], "present") {
		if end, err = strconv.Atoi(m[2]); err != nil {
			return 0
		}
	}

	if end < start {
		return 0
	}
	return end - start
}

const wordClass = `[\p{L}\p{N}_]`

// wordPattern matches name as a whole word, case-insensitively. Word
// boundaries are Unicode-aware: "CaféJava" does not contain "Java".
func wordPattern(name string) *regexp.Regexp {
	first, _ := utf8.DecodeRuneInString(name)
	last, _ := utf8.DecodeLastRuneInString(name)

	before := `(?:\A|[^\p{L}\p{N}_])`
	if !isWordRune(first) {
		before = wordClass
	}
	after := `(?:[^\p{L}\p{N}_]|\z)`
	if !isWordRune(last) {
		after = wordClass
	}

	return regexp.MustCompile(`(?i)` + before + regexp.QuoteMeta(name) + after)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
