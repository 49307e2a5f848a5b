package recruitment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/spigell/cv-assistant/internal/email"
)

// MockPassword is the only password Login accepts.
const MockPassword = "password"

const (
	defaultCompanyName    = "Our Company"
	defaultConsultantName = "Recruitment Consultant"
	defaultJobTitle       = "the position"
)

// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// Login checks the mock password and issues an opaque token.
func (s *Store) Login(address, password string) (LoginResult, error) {
	u, err := s.UserByEmail(address)
	if err != nil || password != MockPassword {
		return LoginResult{}, ErrInvalidCredentials
	}

	return LoginResult{
		User:  userView(u),
		Token: fmt.Sprintf("mock-token-%d-%s", u.ID, uuid.NewString()),
	}, nil
}

// EmailContext builds the placeholder values for writing to a candidate.
func (s *Store) EmailContext(candidateID string) (email.Context, error) {
	n, err := parseID("candidate", candidateID)
	if err != nil {
		return nil, err
	}
	c, err := s.Candidate(n)
	if err != nil {
		return nil, err
	}
	u, err := s.User(c.UserID)
	if err != nil {
		return nil, err
	}

	skills := s.skillNames(c.SkillIDs)

	return email.Context{
		"candidate_id":          strconv.Itoa(c.ID),
		"candidate_name":        u.FullName(),
		"first_name":            u.FirstName,
		"last_name":             u.LastName,
		"email":                 u.Email,
		"job_title":             c.Position(defaultJobTitle),
		"company_name":          defaultCompanyName,
		"skills":                skills,
		email.MatchingSkillsKey: skills,
		"consultant_name":       defaultConsultantName,
		"cv_analysis":           "Professional with experience in " + strings.Join(skills, ", "),
	}, nil
}

type TemplateSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Subject      string   `json:"subject"`
	Description  string   `json:"description"`
	Placeholders []string `json:"placeholders"`
}

// TemplateSummaries describes the templates in file order.
func (s *Store) TemplateSummaries() []TemplateSummary {
	summaries := make([]TemplateSummary, 0, len(s.templates))
	for _, t := range s.templates {
		words := strings.ReplaceAll(t.ID, "_", " ")
		summaries = append(summaries, TemplateSummary{
			ID:           t.ID,
			Name:         titleCase(words),
			Subject:      t.Subject,
			Description:  "Template for " + words,
			Placeholders: email.Placeholders(t.Template),
		})
	}
	return summaries
}

func titleCase(s string) string {
	runes := []rune(s)
	upper := true
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if upper {
				runes[i] = unicode.ToUpper(r)
			} else {
				runes[i] = unicode.ToLower(r)
			}
			upper = false
			continue
		}
		upper = true
	}
	return string(runes)
}
