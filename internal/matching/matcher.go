// Package matching scores a candidate's skills against job postings.
package matching

import (
	"fmt"
	"sort"
	"strings"
)

// ScoreThreshold is the exclusive lower bound a job's score must exceed to be reported.
const ScoreThreshold = 30.0

// Job is a posting as seen by the matcher. The catalog is never mutated.
type Job struct {
	ID           int      `json:"id" mapstructure:"id"`
	Title        string   `json:"title" mapstructure:"title"`
	Description  string   `json:"description" mapstructure:"description"`
	Requirements []string `json:"requirements" mapstructure:"requirements"`
	SkillIDs     []int    `json:"skill_ids" mapstructure:"skill_ids"`
	EmployerID   int      `json:"employer_id" mapstructure:"employer_id"`
}

// Match is a scored job for one candidate.
type Match struct {
	JobID            int      `json:"job_id" mapstructure:"job_id"`
	JobTitle         string   `json:"job_title" mapstructure:"job_title"`
	EmployerID       int      `json:"employer_id" mapstructure:"employer_id"`
	MatchScore       float64  `json:"match_score" mapstructure:"match_score"`
	MatchingSkills   []string `json:"matching_skills" mapstructure:"matching_skills"`
	MatchExplanation string   `json:"match_explanation,omitempty" mapstructure:"match_explanation"`
}

// SkillName is the placeholder name a job skill id is compared under.
func SkillName(id int) string {
	return fmt.Sprintf("Skill-%d", id)
}

// SkillNames maps a job's skill ids to their placeholder names.
func (j Job) SkillNames() []string {
	names := make([]string, 0, len(j.SkillIDs))
	for _, id := range j.SkillIDs {
		names = append(names, SkillName(id))
	}
	return names
}

// Rank scores skills against every job and returns the jobs scoring above
// ScoreThreshold, best first. Equal scores keep catalog order.
func Rank(skills []string, jobs []Job) []Match {
	matches := make([]Match, 0)

	for _, job := range jobs {
		jobSkills := job.SkillNames()
		matching := matchingSkills(skills, jobSkills)
		// Several candidate skills can hit the same job skill; the score stays a percentage.
		score := min(100*float64(len(matching))/float64(max(len(jobSkills), 1)), 100)

		if score <= ScoreThreshold {
			continue
		}

		matches = append(matches, Match{
			JobID:          job.ID,
			JobTitle:       job.Title,
			EmployerID:     job.EmployerID,
			MatchScore:     score,
			MatchingSkills: matching,
		})
	}

	SortByScore(matches)
	return matches
}

// MatchJob scores skills against the single job with the given id.
// An id absent from jobs yields an empty result.
func MatchJob(skills []string, jobs []Job, jobID int) []Match {
	return Rank(skills, Filter(jobs, jobID))
}

// Filter returns the jobs with the given id, in catalog order.
func Filter(jobs []Job, jobID int) []Job {
	filtered := make([]Job, 0, 1)
	for _, job := range jobs {
		if job.ID == jobID {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

// SortByScore orders matches by score, highest first, keeping the relative order of ties.
func SortByScore(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
}

// matchingSkills keeps candidate skills that contain, or are contained in, any job skill name.
func matchingSkills(skills, jobSkills []string) []string {
	matching := make([]string, 0)
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, js := range jobSkills {
			jsLower := strings.ToLower(js)
			if strings.Contains(jsLower, lower) || strings.Contains(lower, jsLower) {
				matching = append(matching, skill)
				break
			}
		}
	}
	return matching
}
