package cv

import (
	"fmt"
	"strings"
)

const summarySkillLimit = 5

// Summarize renders a one-paragraph profile. The "years" figure is the number of
// experience entries, not the parsed total of date ranges.
func Summarize(skills []string, education []Education, experience []Experience) string {
	skillText := strings.Join(skills[:min(len(skills), summarySkillLimit)], ", ")
	if len(skills) > summarySkillLimit {
		skillText += fmt.Sprintf(", and %d more", len(skills)-summarySkillLimit)
	}

	level := "Bachelor's"
	for _, edu := range education {
		if strings.Contains(edu.Degree, "Master") {
			level = "Master's"
			break
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Candidate with approximately %d years of experience, ", len(experience))
	fmt.Fprintf(&b, "skilled in %s. ", skillText)
	fmt.Fprintf(&b, "Has a %s level education", level)

	if len(experience) > 0 {
		fmt.Fprintf(&b, " and most recently worked as a %s at %s.", experience[0].Title, experience[0].Company)
	} else {
		b.WriteString(".")
	}

	return b.String()
}
