// Package recruitment holds the read-only fixture collections the API serves:
// users, candidate profiles, jobs, employers, skills and email templates.
package recruitment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/cv-assistant/internal/email"
	"github.com/spigell/cv-assistant/internal/matching"
)

const (
	usersFile      = "users.json"
	candidatesFile = "candidate_profiles.json"
	jobsFile       = "jobs.json"
	employersFile  = "employer_profiles.json"
	companiesFile  = "company_profiles.json"
	skillsFile     = "skills.json"
	templatesFile  = "email_templates.json"
)

// ErrNotFound is returned by lookups for ids that are not in the fixtures.
var ErrNotFound = errors.New("not found")

// Store is loaded once and never written afterwards, so it is safe to share
// between goroutines without locking.
type Store struct {
	users      []User
	candidates []Candidate
	jobs       []Job
	employers  []Employer
	skills     []Skill
	templates  []email.Template

	userByID      map[int]User
	candidateByID map[int]Candidate
	jobByID       map[int]Job
	employerByID  map[int]Employer
	skillByID     map[int]Skill
	templateByID  map[string]email.Template
}

// Load reads the fixture files from dir. The jobs and email template files are
// required; the others are treated as empty when absent.
func Load(dir string) (*Store, error) {
	s := &Store{}

	if err := loadCollection(dir, usersFile, false, &s.users); err != nil {
		return nil, err
	}
	if err := loadCollection(dir, candidatesFile, false, &s.candidates); err != nil {
		return nil, err
	}
	if err := loadCollection(dir, jobsFile, true, &s.jobs); err != nil {
		return nil, err
	}
	if err := loadEmployers(dir, &s.employers); err != nil {
		return nil, err
	}
	if err := loadCollection(dir, skillsFile, false, &s.skills); err != nil {
		return nil, err
	}
	if err := loadCollection(dir, templatesFile, true, &s.templates); err != nil {
		return nil, err
	}

	s.index()
	return s, nil
}

func (s *Store) index() {
	s.userByID = make(map[int]User, len(s.users))
	for _, u := range s.users {
		s.userByID[u.ID] = u
	}
	s.candidateByID = make(map[int]Candidate, len(s.candidates))
	for _, c := range s.candidates {
		s.candidateByID[c.ID] = c
	}
	s.jobByID = make(map[int]Job, len(s.jobs))
	for _, j := range s.jobs {
		s.jobByID[j.ID] = j
	}
	s.employerByID = make(map[int]Employer, len(s.employers))
	for _, e := range s.employers {
		s.employerByID[e.ID] = e
	}
	s.skillByID = make(map[int]Skill, len(s.skills))
	for _, sk := range s.skills {
		s.skillByID[sk.ID] = sk
	}
	s.templateByID = make(map[string]email.Template, len(s.templates))
	for _, t := range s.templates {
		s.templateByID[t.ID] = t
	}
}

func loadEmployers(dir string, out *[]Employer) error {
	if _, err := os.Stat(filepath.Join(dir, employersFile)); err == nil {
		return loadCollection(dir, employersFile, false, out)
	}
	return loadCollection(dir, companiesFile, false, out)
}

func loadCollection(dir, name string, required bool, out any) error {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}

	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("creating decoder for %s: %w", name, err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}

	return nil
}

func (s *Store) User(id int) (User, error) {
	u, ok := s.userByID[id]
	if !ok {
		return User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return u, nil
}

// UserByEmail matches the address exactly.
func (s *Store) UserByEmail(address string) (User, error) {
	for _, u := range s.users {
		if u.Email == address {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("user %q: %w", address, ErrNotFound)
}

func (s *Store) Candidate(id int) (Candidate, error) {
	c, ok := s.candidateByID[id]
	if !ok {
		return Candidate{}, fmt.Errorf("candidate %d: %w", id, ErrNotFound)
	}
	return c, nil
}

func (s *Store) Job(id int) (Job, error) {
	j, ok := s.jobByID[id]
	if !ok {
		return Job{}, fmt.Errorf("job %d: %w", id, ErrNotFound)
	}
	return j, nil
}

func (s *Store) Employer(id int) (Employer, error) {
	e, ok := s.employerByID[id]
	if !ok {
		return Employer{}, fmt.Errorf("employer %d: %w", id, ErrNotFound)
	}
	return e, nil
}

func (s *Store) Skill(id int) (Skill, error) {
	sk, ok := s.skillByID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill %d: %w", id, ErrNotFound)
	}
	return sk, nil
}

// SkillName resolves a skill id, falling back to the matcher's placeholder name.
func (s *Store) SkillName(id int) string {
	if sk, ok := s.skillByID[id]; ok {
		return sk.Name
	}
	return matching.SkillName(id)
}

// Postings returns the job catalog in file order as the matcher sees it.
func (s *Store) Postings() []matching.Job {
	postings := make([]matching.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		postings = append(postings, j.Posting())
	}
	return postings
}

// Templates returns the template catalog keyed by id. Callers must not modify it.
func (s *Store) Templates() map[string]email.Template {
	return s.templateByID
}
