// Package cv turns free-form CV text into a structured profile without any
// external service: section-delimited extraction plus a templated summary.
package cv

// Education is one line of the EDUCATION section.
type Education struct {
	Degree      string `json:"degree" mapstructure:"degree"`
	Institution string `json:"institution" mapstructure:"institution"`
	Years       string `json:"years" mapstructure:"years"`
}

// Experience is one entry of the WORK EXPERIENCE section.
type Experience struct {
	Title    string `json:"title" mapstructure:"title"`
	Company  string `json:"company" mapstructure:"company"`
	Duration string `json:"duration" mapstructure:"duration"`
}

// Analysis is the structured result of analyzing a CV. It is built per call and
// never mutated after being returned.
type Analysis struct {
	Skills               []string     `json:"skills" validate:"dive,required"`
	Education            []Education  `json:"education"`
	Experience           []Experience `json:"experience"`
	TotalExperienceYears int          `json:"total_experience_years" validate:"gte=0"`
	Summary              string       `json:"summary"`
}

// Normalize replaces nil collections with empty ones so that both analysis
// paths serialize to the same JSON shape.
func (a *Analysis) Normalize() {
	if a.Skills == nil {
		a.Skills = []string{}
	}
	if a.Education == nil {
		a.Education = []Education{}
	}
	if a.Experience == nil {
		a.Experience = []Experience{}
	}
	if a.TotalExperienceYears < 0 {
		a.TotalExperienceYears = 0
	}
}
