package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ClassStanding is the student's current academic year.
type ClassStanding string

const (
	StandingFreshman  ClassStanding = "Freshman"
	StandingSophomore ClassStanding = "Sophomore"
	StandingJunior    ClassStanding = "Junior"
	StandingSenior    ClassStanding = "Senior"
)

func (s ClassStanding) Valid() bool {
	switch s {
	case StandingFreshman, StandingSophomore, StandingJunior, StandingSenior:
		return true
	}
	return false
}

// JourneyEntry is one academic year's record, used as a matching signal.
type JourneyEntry struct {
	Year        ClassStanding `json:"year"`
	Courses     []string      `json:"courses,omitempty"`
	GPA         *float64      `json:"gpa,omitempty"`
	Clubs       []string      `json:"clubs,omitempty"`
	Internships []string      `json:"internships,omitempty"`
	Research    *string       `json:"research,omitempty"`
}

// ProfessionalEntry is one position in an alumni's work history.
// EndDate nil means the position is current.
type ProfessionalEntry struct {
	Position     string     `json:"position"`
	Company      string     `json:"company"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Description  string     `json:"description,omitempty"`
	Achievements []string   `json:"achievements,omitempty"`
}

// ContactInfo holds an alumni's optional contact channels.
type ContactInfo struct {
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Website  *string `json:"website,omitempty"`
}

type StudentProfile struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	Name            string         `json:"name" db:"name"`
	Majors          []string       `json:"majors" db:"majors"`
	Minors          []string       `json:"minors" db:"minors"`
	CurrentStanding ClassStanding  `json:"current_standing" db:"current_standing"`
	ClubPositions   []string       `json:"club_positions" db:"club_positions"`
	JourneyEntries  JourneyEntries `json:"journey_entries" db:"journey_entries"`
	ResumeText      *string        `json:"resume_text,omitempty" db:"resume_text"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// RelevantJourneyEntries returns the journey entries up to and including the
// student's current standing. A Freshman has only a Freshman entry.
func (p *StudentProfile) RelevantJourneyEntries() []JourneyEntry {
	order := map[ClassStanding]int{
		StandingFreshman:  0,
		StandingSophomore: 1,
		StandingJunior:    2,
		StandingSenior:    3,
	}
	current, ok := order[p.CurrentStanding]
	if !ok {
		return p.JourneyEntries
	}
	var entries []JourneyEntry
	for _, e := range p.JourneyEntries {
		if rank, ok := order[e.Year]; ok && rank <= current {
			entries = append(entries, e)
		}
	}
	return entries
}

type AlumniProfile struct {
	ID                  uuid.UUID           `json:"id" db:"id"`
	Name                string              `json:"name" db:"name"`
	GraduationYear      int                 `json:"graduation_year" db:"graduation_year"`
	CurrentPosition     string              `json:"current_position" db:"current_position"`
	Company             string              `json:"company" db:"company"`
	Location            string              `json:"location" db:"location"`
	Majors              []string            `json:"majors" db:"majors"`
	Contact             Contact             `json:"contact" db:"contact"`
	JourneyEntries      JourneyEntries      `json:"journey_entries" db:"journey_entries"`
	ProfessionalEntries ProfessionalEntries `json:"professional_entries" db:"professional_entries"`
	CreatedAt           time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" db:"updated_at"`
}

// ClubAffiliations collects every club the alumni reported across their
// academic journey, for club-overlap scoring.
func (p *AlumniProfile) ClubAffiliations() []string {
	var clubs []string
	for _, e := range p.JourneyEntries {
		clubs = append(clubs, e.Clubs...)
	}
	return clubs
}

// SortProfessionalEntries orders the work history newest-first for display.
func (p *AlumniProfile) SortProfessionalEntries() {
	sort.SliceStable(p.ProfessionalEntries, func(i, j int) bool {
		return p.ProfessionalEntries[i].StartDate.After(p.ProfessionalEntries[j].StartDate)
	})
}

// JourneyEntries, ProfessionalEntries and Contact are stored as JSONB columns.

type JourneyEntries []JourneyEntry

func (j JourneyEntries) Value() (driver.Value, error) {
	if j == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(j)
}

func (j *JourneyEntries) Scan(src interface{}) error {
	return scanJSON(src, j)
}

type ProfessionalEntries []ProfessionalEntry

func (p ProfessionalEntries) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

func (p *ProfessionalEntries) Scan(src interface{}) error {
	return scanJSON(src, p)
}

type Contact ContactInfo

func (c Contact) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Contact) Scan(src interface{}) error {
	return scanJSON(src, c)
}

func scanJSON(src, dst interface{}) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
