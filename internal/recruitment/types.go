package recruitment

import "github.com/spigell/cv-assistant/internal/matching"

type User struct {
	ID        int    `mapstructure:"id"`
	Email     string `mapstructure:"email"`
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
	Role      string `mapstructure:"role"`
	CreatedAt string `mapstructure:"created_at"`
	UpdatedAt string `mapstructure:"updated_at"`
	LastLogin string `mapstructure:"last_login"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type CandidateExperience struct {
	Title    string `mapstructure:"title"`
	Company  string `mapstructure:"company"`
	Duration string `mapstructure:"duration"`
}

type Candidate struct {
	ID         int                   `mapstructure:"id"`
	UserID     int                   `mapstructure:"user_id"`
	Phone      string                `mapstructure:"phone"`
	SkillIDs   []int                 `mapstructure:"skill_ids"`
	Experience []CandidateExperience `mapstructure:"experience"`
	CVURLs     []string              `mapstructure:"cv_urls"`
}

type SalaryRange struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

type Job struct {
	ID                int          `mapstructure:"id"`
	Title             string       `mapstructure:"title"`
	Description       string       `mapstructure:"description"`
	Requirements      []string     `mapstructure:"requirements"`
	SkillIDs          []int        `mapstructure:"skills"`
	EmployerID        int          `mapstructure:"employer_id"`
	Location          string       `mapstructure:"location"`
	Status            string       `mapstructure:"status"`
	SalaryRange       *SalaryRange `mapstructure:"salary_range"`
	PostingDate       string       `mapstructure:"posting_date"`
	Deadline          string       `mapstructure:"deadline"`
	ApplicationsCount *int         `mapstructure:"applications_count"`
	Applications      []any        `mapstructure:"applications"`
}

// Posting returns the fields the matcher scores on.
func (j Job) Posting() matching.Job {
	return matching.Job{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		SkillIDs:     j.SkillIDs,
		EmployerID:   j.EmployerID,
	}
}

type ContactDetails struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
	Phone string `mapstructure:"phone"`
}

type Employer struct {
	ID             int            `mapstructure:"id"`
	UserID         int            `mapstructure:"user_id"`
	CompanyName    string         `mapstructure:"company_name"`
	Industry       string         `mapstructure:"industry"`
	Website        string         `mapstructure:"website"`
	Location       string         `mapstructure:"location"`
	Description    string         `mapstructure:"description"`
	ContactDetails ContactDetails `mapstructure:"contact_details"`
	JobIDs         []int          `mapstructure:"job_ids"`
}

type Skill struct {
	ID   int    `mapstructure:"id"`
	Name string `mapstructure:"name"`
}
