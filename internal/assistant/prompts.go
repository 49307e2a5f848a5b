package assistant

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spigell/cv-assistant/internal/cv"
	"github.com/spigell/cv-assistant/internal/email"
	"github.com/spigell/cv-assistant/internal/matching"
)

const (
	analyzeSystem = "You are an expert recruitment assistant that analyzes CVs and extracts structured information."
	matchSystem   = "You are an expert recruitment matching system that evaluates candidate-job fit."
	emailSystem   = "You are an expert recruitment consultant who writes clear, professional, and personalized emails."

	analyzeTemperature = 0.2
	matchTemperature   = 0.3
	emailTemperature   = 0.7
)

var (
	//go:embed prompts/analyze_cv.md
	analyzePromptTemplate string
	//go:embed prompts/match_jobs.md
	matchPromptTemplate string
	//go:embed prompts/generate_email.md
	emailPromptTemplate string
)

func buildAnalyzePrompt(text string) string {
	return strings.NewReplacer("{{CV_TEXT}}", text).Replace(analyzePromptTemplate)
}

func buildMatchPrompt(analysis *cv.Analysis, jobs []matching.Job) string {
	return strings.NewReplacer(
		"{{CANDIDATE}}", describeCandidate(analysis),
		"{{JOBS}}", describeJobs(jobs),
	).Replace(matchPromptTemplate)
}

func buildEmailPrompt(templateID string, base email.Message, ctx email.Context) string {
	return strings.NewReplacer(
		"{{TEMPLATE_ID}}", templateID,
		"{{SUBJECT}}", base.Subject,
		"{{BODY}}", base.Body,
		"{{CANDIDATE_NAME}}", contextValue(ctx, "candidate_name", "Candidate"),
		"{{JOB_TITLE}}", contextValue(ctx, "job_title", "the position"),
		"{{COMPANY_NAME}}", contextValue(ctx, "company_name", "our client"),
		"{{CV_ANALYSIS}}", contextValue(ctx, "cv_analysis", ""),
		"{{MATCHING_SKILLS}}", contextValue(ctx, email.MatchingSkillsKey, ""),
	).Replace(emailPromptTemplate)
}

func describeCandidate(analysis *cv.Analysis) string {
	// Marshalling plain string structs cannot fail.
	education, _ := json.Marshal(analysis.Education)
	experience, _ := json.Marshal(analysis.Experience)

	var b strings.Builder
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(analysis.Skills, ", "))
	fmt.Fprintf(&b, "Education: %s\n", education)
	fmt.Fprintf(&b, "Experience: %s\n", experience)
	fmt.Fprintf(&b, "Experience Years: %d\n", analysis.TotalExperienceYears)
	fmt.Fprintf(&b, "Summary: %s", analysis.Summary)
	return b.String()
}

func describeJobs(jobs []matching.Job) string {
	descriptions := make([]string, 0, len(jobs))
	for _, job := range jobs {
		var b strings.Builder
		fmt.Fprintf(&b, "Job ID: %d\n", job.ID)
		fmt.Fprintf(&b, "Title: %s\n", job.Title)
		fmt.Fprintf(&b, "Description: %s\n", job.Description)
		fmt.Fprintf(&b, "Requirements: %s\n", strings.Join(job.Requirements, ", "))
		fmt.Fprintf(&b, "Skills: %s", strings.Join(job.SkillNames(), ", "))
		descriptions = append(descriptions, b.String())
	}
	return strings.Join(descriptions, "\n---\n")
}

func contextValue(ctx email.Context, key, fallback string) string {
	value, ok := ctx[key]
	if !ok {
		return fallback
	}
	return email.Stringify(value)
}
