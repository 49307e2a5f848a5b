package recruitment

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Field names accepted by StringField, used by the listing filters.
const (
	FieldOffice  = "office"
	FieldCompany = "company"
	FieldRole    = "role"
)

const (
	unknownPosition = "Unknown Position"
	defaultLocation = "Remote"
	defaultStatus   = "open"
	defaultPosted   = "2024-01-01"
	companyPrefix   = "comp-"
)

var roles = map[string]string{
	"superadmin": "super_admin",
	"admin":      "admin",
	"consultant": "employee",
	"employer":   "employee",
}

// OfficeID assigns a record to one of three mock offices.
func OfficeID(id int) string {
	return strconv.Itoa(id%3 + 1)
}

// MapRole translates a stored role into the role names the client uses.
// Unknown roles become "employee".
func MapRole(role string) string {
	if mapped, ok := roles[role]; ok {
		return mapped
	}
	return "employee"
}

type UserView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	OfficeID  string `json:"officeId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	LastLogin string `json:"lastLogin,omitempty"`
}

func (v UserView) StringField(name string) string {
	switch name {
	case FieldOffice:
		return v.OfficeID
	case FieldRole:
		return v.Role
	default:
		return ""
	}
}

type CandidateView struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Position   string   `json:"position"`
	Status     string   `json:"status"`
	CVURL      *string  `json:"cvUrl"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
	Tags       []string `json:"tags"`
	Rating     int      `json:"rating"`
	AssignedTo string   `json:"assignedTo"`
	OfficeID   string   `json:"officeId"`
}

func (v CandidateView) StringField(name string) string {
	if name == FieldOffice {
		return v.OfficeID
	}
	return ""
}

type JobView struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	CompanyID    string   `json:"companyId"`
	CompanyName  string   `json:"companyName"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	SalaryRange  *string  `json:"salaryRange"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
	Deadline     *string  `json:"deadline"`
	OfficeID     string   `json:"officeId"`
	Candidates   int      `json:"candidates"`
}

func (v JobView) StringField(name string) string {
	switch name {
	case FieldOffice:
		return v.OfficeID
	case FieldCompany:
		return v.CompanyID
	default:
		return ""
	}
}

type CompanyView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	Website       string `json:"website"`
	ContactPerson string `json:"contactPerson"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	OpenPositions int    `json:"openPositions"`
	OfficeID      string `json:"officeId"`
}

func (v CompanyView) StringField(name string) string {
	if name == FieldOffice {
		return v.OfficeID
	}
	return ""
}

type SkillView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (v SkillView) StringField(string) string {
	return ""
}

func (s *Store) UserViews() []UserView {
	views := make([]UserView, 0, len(s.users))
	for _, u := range s.users {
		views = append(views, userView(u))
	}
	return views
}

func (s *Store) UserView(id string) (UserView, error) {
	n, err := parseID("user", id)
	if err != nil {
		return UserView{}, err
	}
	u, err := s.User(n)
	if err != nil {
		return UserView{}, err
	}
	return userView(u), nil
}

func userView(u User) UserView {
	return UserView{
		ID:        strconv.Itoa(u.ID),
		Name:      u.FullName(),
		Email:     u.Email,
		Role:      MapRole(u.Role),
		OfficeID:  OfficeID(u.ID),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		LastLogin: u.LastLogin,
	}
}

// CandidateViews lists candidates whose user record exists.
func (s *Store) CandidateViews() []CandidateView {
	views := make([]CandidateView, 0, len(s.candidates))
	for _, c := range s.candidates {
		if v, ok := s.candidateView(c); ok {
			views = append(views, v)
		}
	}
	return views
}

func (s *Store) CandidateView(id string) (CandidateView, error) {
	n, err := parseID("candidate", id)
	if err != nil {
		return CandidateView{}, err
	}
	c, err := s.Candidate(n)
	if err != nil {
		return CandidateView{}, err
	}
	v, ok := s.candidateView(c)
	if !ok {
		return CandidateView{}, fmt.Errorf("candidate %d: %w", n, ErrNotFound)
	}
	return v, nil
}

func (s *Store) candidateView(c Candidate) (CandidateView, bool) {
	u, ok := s.userByID[c.UserID]
	if !ok {
		return CandidateView{}, false
	}

	var cvURL *string
	if len(c.CVURLs) > 0 {
		first := c.CVURLs[0]
		cvURL = &first
	}

	return CandidateView{
		ID:         strconv.Itoa(c.ID),
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Phone:      c.Phone,
		Position:   c.Position(unknownPosition),
		Status:     "new",
		CVURL:      cvURL,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		Tags:       s.skillNames(c.SkillIDs),
		Rating:     c.Rating(),
		AssignedTo: "user-" + OfficeID(c.ID),
		OfficeID:   OfficeID(c.ID),
	}, true
}

// Position is the title of the first listed experience, or fallback.
func (c Candidate) Position(fallback string) string {
	if len(c.Experience) == 0 || c.Experience[0].Title == "" {
		return fallback
	}
	return c.Experience[0].Title
}

// Rating is a mock 1..5 score derived from the number of skills.
func (c Candidate) Rating() int {
	return len(c.SkillIDs)%5 + 1
}

func (s *Store) JobViews() []JobView {
	views := make([]JobView, 0, len(s.jobs))
	for _, j := range s.jobs {
		views = append(views, s.jobView(j))
	}
	return views
}

func (s *Store) JobView(id string) (JobView, error) {
	n, err := parseID("job", id)
	if err != nil {
		return JobView{}, err
	}
	j, err := s.Job(n)
	if err != nil {
		return JobView{}, err
	}
	return s.jobView(j), nil
}

func (s *Store) jobView(j Job) JobView {
	companyName := fmt.Sprintf("Company %d", j.EmployerID)
	if e, ok := s.employerByID[j.EmployerID]; ok && e.CompanyName != "" {
		companyName = e.CompanyName
	}

	location := j.Location
	if location == "" {
		location = defaultLocation
	}

	status := strings.ToLower(j.Status)
	if status == "" {
		status = defaultStatus
	}

	created := j.PostingDate
	if created == "" {
		created = defaultPosted
	}

	var salary *string
	if j.SalaryRange != nil {
		text := groupThousands(j.SalaryRange.Min) + " - " + groupThousands(j.SalaryRange.Max)
		salary = &text
	}

	var deadline *string
	if j.Deadline != "" {
		deadline = &j.Deadline
	}

	requirements := j.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	return JobView{
		ID:           strconv.Itoa(j.ID),
		Title:        j.Title,
		CompanyID:    strconv.Itoa(j.EmployerID),
		CompanyName:  companyName,
		Description:  j.Description,
		Requirements: requirements,
		Location:     location,
		SalaryRange:  salary,
		Status:       status,
		CreatedAt:    created,
		Deadline:     deadline,
		OfficeID:     OfficeID(j.ID),
		Candidates:   j.CandidateCount(),
	}
}

// CandidateCount prefers the explicit count, then the application list, then a mock value.
func (j Job) CandidateCount() int {
	switch {
	case j.ApplicationsCount != nil:
		return *j.ApplicationsCount
	case len(j.Applications) > 0:
		return len(j.Applications)
	default:
		return j.ID % 10
	}
}

// CompanyViews lists employers whose user record exists.
func (s *Store) CompanyViews() []CompanyView {
	views := make([]CompanyView, 0, len(s.employers))
	for _, e := range s.employers {
		if v, ok := s.companyView(e); ok {
			views = append(views, v)
		}
	}
	return views
}

// CompanyView accepts both "comp-3" and "3".
func (s *Store) CompanyView(id string) (CompanyView, error) {
	n, err := parseID("company", strings.TrimPrefix(id, companyPrefix))
	if err != nil {
		return CompanyView{}, err
	}
	e, err := s.Employer(n)
	if err != nil {
		return CompanyView{}, err
	}
	v, ok := s.companyView(e)
	if !ok {
		return CompanyView{}, fmt.Errorf("company %d: %w", n, ErrNotFound)
	}
	return v, nil
}

func (s *Store) companyView(e Employer) (CompanyView, bool) {
	u, ok := s.userByID[e.UserID]
	if !ok {
		return CompanyView{}, false
	}

	return CompanyView{
		ID:            companyPrefix + strconv.Itoa(e.ID),
		Name:          e.CompanyName,
		Industry:      e.Industry,
		Website:       e.Website,
		ContactPerson: e.ContactDetails.Name,
		ContactEmail:  e.ContactDetails.Email,
		ContactPhone:  e.ContactDetails.Phone,
		Address:       e.Location,
		Notes:         e.Description,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		OpenPositions: s.OpenPositions(e),
		OfficeID:      OfficeID(e.ID),
	}, true
}

// OpenPositions counts the employer's linked jobs whose status is exactly "open".
func (s *Store) OpenPositions(e Employer) int {
	open := 0
	for _, id := range e.JobIDs {
		if j, ok := s.jobByID[id]; ok && j.Status == defaultStatus {
			open++
		}
	}
	return open
}

func (s *Store) SkillViews() []SkillView {
	views := make([]SkillView, 0, len(s.skills))
	for _, sk := range s.skills {
		views = append(views, skillView(sk))
	}
	return views
}

func (s *Store) SkillView(id string) (SkillView, error) {
	n, err := parseID("skill", id)
	if err != nil {
		return SkillView{}, err
	}
	sk, err := s.Skill(n)
	if err != nil {
		return SkillView{}, err
	}
	return skillView(sk), nil
}

func skillView(sk Skill) SkillView {
	return SkillView{
		ID:    strconv.Itoa(sk.ID),
		Name:  sk.Name,
		Color: SkillColor(sk.Name),
	}
}

// SkillColor derives a stable hex color from a skill name.
func SkillColor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return fmt.Sprintf("#%06x", h.Sum32()%0xFFFFFF)
}

func (s *Store) skillNames(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, s.SkillName(id))
	}
	return names
}

func parseID(kind, id string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return n, nil
}

func groupThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String()
}
