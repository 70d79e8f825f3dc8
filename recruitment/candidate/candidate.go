package candidate

import (
	"strings"
	"time"

	"github.com/decisionhr/talentrank/pkg/kernel"
)

// Candidate is one applicant record from the ATS export. Level fields keep
// the ATS vocabulary verbatim; CV is the free-text résumé in Portuguese.
type Candidate struct {
	Code          kernel.CandidateCode `db:"code" json:"code"`
	Name          string               `db:"name" json:"name"`
	CV            string               `db:"cv" json:"cv"`
	Area          string               `db:"area" json:"area"`
	AcademicLevel string               `db:"academic_level" json:"academic_level"`
	EnglishLevel  string               `db:"english_level" json:"english_level"`
	SpanishLevel  string               `db:"spanish_level" json:"spanish_level"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// DisplayName is the "CODE - Name" label the presentation layer lists.
func (c *Candidate) DisplayName() string {
	return c.Code.String() + " - " + c.Name
}

// HasCV reports whether the candidate carries résumé text.
func (c *Candidate) HasCV() bool {
	return strings.TrimSpace(c.CV) != ""
}
