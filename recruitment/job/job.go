package job

import (
	"strings"
	"time"

	"github.com/decisionhr/talentrank/pkg/kernel"
)

// Job is one opening as exported from the agency ATS. Categorical fields keep
// the ATS vocabulary verbatim (Portuguese level names, contract types, states).
type Job struct {
	Code              kernel.JobCode `db:"code" json:"code"`
	Title             string         `db:"title" json:"title"`
	Observations      string         `db:"observations" json:"observations"`
	Activities        string         `db:"activities" json:"activities"`
	RequiredSkills    string         `db:"required_skills" json:"required_skills"`
	ContractType      string         `db:"contract_type" json:"contract_type"`
	Deadline          string         `db:"deadline" json:"deadline"`
	Urgency           string         `db:"urgency" json:"urgency"`
	Origin            string         `db:"origin" json:"origin"`
	State             string         `db:"state" json:"state"`
	ProfessionalLevel string         `db:"professional_level" json:"professional_level"`
	AcademicLevel     string         `db:"academic_level" json:"academic_level"`
	EnglishLevel      string         `db:"english_level" json:"english_level"`
	SpanishLevel      string         `db:"spanish_level" json:"spanish_level"`
	TravelRequired    string         `db:"travel_required" json:"travel_required"`
	Areas             string         `db:"areas" json:"areas"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// DisplayTitle is the "CODE - Title" label the presentation layer lists.
func (j *Job) DisplayTitle() string {
	return j.Code.String() + " - " + j.Title
}

// DescriptionParts returns the textual fields in the order the lexical
// profile concatenates them. The order is part of the scoring contract.
func (j *Job) DescriptionParts() []string {
	return []string{j.Observations, j.Title, j.Activities, j.RequiredSkills}
}

// HasDescription reports whether any textual field carries content.
func (j *Job) HasDescription() bool {
	for _, part := range j.DescriptionParts() {
		if strings.TrimSpace(part) != "" {
			return true
		}
	}
	return false
}
