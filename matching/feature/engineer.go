// Package feature turns the three record snapshots (jobs, candidates,
// applications) into the flat numeric feature table the classifier trains
// and scores on.
package feature

import (
	"regexp"
	"sort"
	"strings"

	"github.com/decisionhr/talentrank/matching/compat"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/pkg/logx"
	"github.com/decisionhr/talentrank/recruitment/application"
	"github.com/decisionhr/talentrank/recruitment/candidate"
	"github.com/decisionhr/talentrank/recruitment/job"
)

// Options configures feature engineering.
type Options struct {
	// ExcludeInProgress drops applications whose status folds to
	// in-progress instead of retaining them with label -1.
	ExcludeInProgress bool
}

// Engineer derives feature rows from joined record snapshots.
type Engineer struct {
	opts Options
}

// NewEngineer creates a feature engineer.
func NewEngineer(opts Options) *Engineer {
	return &Engineer{opts: opts}
}

// Result of a fitting build: the table plus the category dictionaries
// learned from this batch, ready to be frozen into a bundle manifest.
type Result struct {
	Table   *Table
	Encoder *Encoder
}

// Fit builds the feature table from the snapshots, learning fresh category
// dictionaries in first-seen order. Used by the training pipeline.
func (e *Engineer) Fit(jobs []job.Job, candidates []candidate.Candidate, apps []application.Application) *Result {
	enc := NewEncoder()
	table := e.build(jobs, candidates, apps, enc, true)
	enc.Freeze()
	return &Result{Table: table, Encoder: enc}
}

// Transform builds the feature table mapping categoricals through the
// frozen dictionaries of a trained bundle; unseen values become the
// unknown sentinel. Nothing is ever re-fitted here, and no rows are
// filtered by status: scoring targets exactly the applications that are
// still open.
func (e *Engineer) Transform(jobs []job.Job, candidates []candidate.Candidate, apps []application.Application, enc *Encoder) *Table {
	return e.build(jobs, candidates, apps, enc, false)
}

var (
	trailingDash = regexp.MustCompile(`-$`)
	boundDash    = regexp.MustCompile(`(\S)-(\S)`)
)

// CleanAreas tidies a multi-valued area field: trims, strips a trailing
// separator and rewrites glued "a-b" pairs as comma-separated values.
func CleanAreas(s string) string {
	cleaned := trailingDash.ReplaceAllString(strings.TrimSpace(s), "")
	return boundDash.ReplaceAllString(cleaned, "$1, $2")
}

// splitAreas returns the unique, trimmed, non-empty items of a
// comma-delimited set, preserving first-seen order.
func splitAreas(s string) []string {
	var items []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}
	return items
}

func tidyContractType(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ", ", ","))
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (e *Engineer) build(jobs []job.Job, candidates []candidate.Candidate, apps []application.Application, enc *Encoder, filterStatuses bool) *Table {
	jobsByCode := make(map[kernel.JobCode]*job.Job, len(jobs))
	for i := range jobs {
		jobsByCode[jobs[i].Code] = &jobs[i]
	}
	candidatesByCode := make(map[kernel.CandidateCode]*candidate.Candidate, len(candidates))
	for i := range candidates {
		candidatesByCode[candidates[i].Code] = &candidates[i]
	}

	// Lexical profiles are memoized per job code for this build only, so a
	// long-lived process never serves stale profiles across batches.
	profiles := make(map[kernel.JobCode]compat.Profile)
	profileFor := func(code kernel.JobCode) compat.Profile {
		if p, ok := profiles[code]; ok {
			return p
		}
		p := compat.Profile{}
		if j, ok := jobsByCode[code]; ok {
			p = compat.BuildProfile(j)
		}
		profiles[code] = p
		return p
	}

	areaColumns := make(map[string]struct{})
	missingJobs := 0
	missingCandidates := 0

	rows := make([]Row, 0, len(apps))
	for _, app := range apps {
		outcome, ok := MapStatus(app.Status)
		if filterStatuses {
			if !ok {
				continue
			}
			if outcome == OutcomeInProgress && e.opts.ExcludeInProgress {
				continue
			}
		} else if !ok {
			// Scoring keeps every application; an unrecognized status just
			// means the row carries no label.
			outcome = OutcomeInProgress
		}

		// Left-join semantics: a missing side keeps the row and defaults
		// its features to zero.
		j, okJob := jobsByCode[app.JobCode]
		if !okJob {
			j = &job.Job{}
			missingJobs++
		}
		c, okCand := candidatesByCode[app.CandidateCode]
		if !okCand {
			c = &candidate.Candidate{}
			missingCandidates++
		}

		values := make(map[string]float64, len(baseColumns)+8)

		score := profileFor(app.JobCode).Score(c.CV)
		values["compat_words"] = float64(score.CommonWords)
		values["compat_pct"] = score.Percentage

		values["academic_match"] = boolFeature(AcademicLevel(c.AcademicLevel) >= AcademicLevel(j.AcademicLevel))
		values["english_match"] = boolFeature(LanguageLevel(c.EnglishLevel) >= LanguageLevel(j.EnglishLevel))
		values["spanish_match"] = boolFeature(LanguageLevel(c.SpanishLevel) >= LanguageLevel(j.SpanishLevel))

		values["contract_type_code"] = float64(enc.Encode("contract_type", tidyContractType(j.ContractType)))
		values["contract_deadline_code"] = float64(enc.Encode("contract_deadline", j.Deadline))
		values["urgency_code"] = float64(enc.Encode("urgency", j.Urgency))
		values["origin_code"] = float64(enc.Encode("origin", j.Origin))
		values["state_code"] = float64(enc.Encode("state", j.State))
		values["professional_level_code"] = float64(enc.Encode("professional_level", j.ProfessionalLevel))
		values["job_academic_level_code"] = float64(enc.Encode("job_academic_level", j.AcademicLevel))
		values["job_english_level_code"] = float64(enc.Encode("job_english_level", j.EnglishLevel))
		values["job_spanish_level_code"] = float64(enc.Encode("job_spanish_level", j.SpanishLevel))
		values["travel_required_code"] = float64(enc.Encode("travel_required", j.TravelRequired))
		values["cand_academic_level_code"] = float64(enc.Encode("cand_academic_level", c.AcademicLevel))
		values["cand_english_level_code"] = float64(enc.Encode("cand_english_level", c.EnglishLevel))
		values["cand_spanish_level_code"] = float64(enc.Encode("cand_spanish_level", c.SpanishLevel))

		jobAreas := splitAreas(CleanAreas(j.Areas))
		candAreas := splitAreas(c.Area)

		for _, a := range jobAreas {
			col := jobAreaPrefix + a
			values[col] = 1
			areaColumns[col] = struct{}{}
		}
		candSet := make(map[string]struct{}, len(candAreas))
		for _, a := range candAreas {
			candSet[a] = struct{}{}
			col := candAreaPrefix + a
			values[col] = 1
			areaColumns[col] = struct{}{}
		}

		// A job without required areas matches every candidate perfectly
		// by convention.
		if len(jobAreas) == 0 {
			values["area_match_count"] = 0
			values["area_match_pct"] = 1.0
		} else {
			matched := 0
			for _, a := range jobAreas {
				if _, ok := candSet[a]; ok {
					matched++
				}
			}
			values["area_match_count"] = float64(matched)
			values["area_match_pct"] = float64(matched) / float64(len(jobAreas))
		}

		rows = append(rows, Row{
			JobCode:       app.JobCode,
			CandidateCode: app.CandidateCode,
			Outcome:       outcome,
			Label:         outcome.Label(),
			Values:        values,
		})
	}

	if missingJobs > 0 {
		logx.Warnf("feature build: %d applications reference unknown jobs, job features defaulted to zero", missingJobs)
	}
	if missingCandidates > 0 {
		logx.Warnf("feature build: %d applications reference unknown candidates, candidate features defaulted to zero", missingCandidates)
	}

	columns := BaseColumns()
	dynamic := make([]string, 0, len(areaColumns))
	for col := range areaColumns {
		dynamic = append(dynamic, col)
	}
	sort.Strings(dynamic)
	columns = append(columns, dynamic...)

	return &Table{Columns: columns, Rows: rows}
}
