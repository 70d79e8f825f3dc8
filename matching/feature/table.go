package feature

import (
	"github.com/decisionhr/talentrank/pkg/kernel"
)

// Base feature columns, in manifest order. The dynamically generated
// one-hot area columns are appended after these.
var baseColumns = []string{
	"compat_words",
	"compat_pct",
	"academic_match",
	"english_match",
	"spanish_match",
	"area_match_count",
	"area_match_pct",
	"contract_type_code",
	"contract_deadline_code",
	"urgency_code",
	"origin_code",
	"state_code",
	"professional_level_code",
	"job_academic_level_code",
	"job_english_level_code",
	"job_spanish_level_code",
	"travel_required_code",
	"cand_academic_level_code",
	"cand_english_level_code",
	"cand_spanish_level_code",
}

// One-hot column prefixes for the multi-valued area fields. Distinct
// prefixes keep job and candidate areas from colliding.
const (
	jobAreaPrefix  = "job_area_"
	candAreaPrefix = "cand_area_"
)

// BaseColumns returns the fixed part of the feature column set.
func BaseColumns() []string {
	return append([]string(nil), baseColumns...)
}

// Row is one numeric feature record derived from an application joined with
// its job and candidate. The identifying codes are retained for
// traceability; they are never model input.
type Row struct {
	JobCode       kernel.JobCode       `json:"job_code"`
	CandidateCode kernel.CandidateCode `json:"candidate_code"`
	Outcome       Outcome              `json:"outcome"`
	Label         int                  `json:"label"`
	Values        map[string]float64   `json:"values"`
}

// Value returns the row's value for a column, zero when absent. Absent
// columns are zero-filled, never treated as an error.
func (r Row) Value(column string) float64 {
	return r.Values[column]
}

// Table is the flat feature table: an ordered column set plus one row per
// retained application.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Labeled returns only the rows carrying a binary training label,
// preserving order. In-progress rows never reach training.
func (t *Table) Labeled() []Row {
	rows := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if r.Label == LabelSuccess || r.Label == LabelFailure {
			rows = append(rows, r)
		}
	}
	return rows
}
