package feature

import (
	"testing"
	"time"

	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/application"
	"github.com/decisionhr/talentrank/recruitment/candidate"
	"github.com/decisionhr/talentrank/recruitment/job"
)

func fixtureJobs() []job.Job {
	return []job.Job{
		{
			Code:          "J1",
			Title:         "Engenheiro de Dados",
			Activities:    "Construir pipelines de dados",
			ContractType:  "CLT Full, PJ",
			Deadline:      "Imediato",
			Urgency:       "Alta",
			Origin:        "Cliente",
			State:         "São Paulo",
			AcademicLevel: "Ensino Superior Completo",
			EnglishLevel:  "Avançado",
			SpanishLevel:  "Nenhum",
			Areas:         "TI - Sistemas e Ferramentas-TI - Desenvolvimento/Programação-",
		},
		{
			Code:         "J2",
			Title:        "Analista Comercial",
			ContractType: "PJ",
			Deadline:     "30 a 60 dias",
			Urgency:      "Baixa",
			State:        "Rio de Janeiro",
			EnglishLevel: "Básico",
		},
		{
			Code:  "J3",
			Title: "Vaga sem área",
		},
	}
}

func fixtureCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{Code: "C1", Name: "Ana", CV: "experiência com pipelines e dados", Area: "TI - Sistemas e Ferramentas", AcademicLevel: "Mestrado Completo", EnglishLevel: "Fluente"},
		{Code: "C2", Name: "Bruno", CV: "vendas e atendimento", Area: "Comercial", EnglishLevel: "Nenhum"},
		{Code: "C3", Name: "Clara"},
		{Code: "C4", Name: "Davi", CV: "programação em geral", Area: "TI - Desenvolvimento/Programação, TI - Sistemas e Ferramentas"},
		{Code: "C5", Name: "Eva"},
	}
}

func fixtureApps() []application.Application {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []application.Application{
		{JobCode: "J1", CandidateCode: "C1", Status: "Contratado pela Decision", AppliedOn: day},
		{JobCode: "J1", CandidateCode: "C4", Status: "Não Aprovado pelo Cliente", AppliedOn: day},
		{JobCode: "J2", CandidateCode: "C2", Status: "Aprovado", AppliedOn: day},
		{JobCode: "J2", CandidateCode: "C3", Status: "Desistiu", AppliedOn: day},
		{JobCode: "J3", CandidateCode: "C5", Status: "Em avaliação pelo RH", AppliedOn: day},
		{JobCode: "J1", CandidateCode: "C5", Status: "status inexistente", AppliedOn: day},
	}
}

func rowFor(t *testing.T, tbl *Table, j kernel.JobCode, c kernel.CandidateCode) Row {
	t.Helper()
	for _, r := range tbl.Rows {
		if r.JobCode == j && r.CandidateCode == c {
			return r
		}
	}
	t.Fatalf("no row for job %s candidate %s", j, c)
	return Row{}
}

func TestFitBuildsExpectedRows(t *testing.T) {
	eng := NewEngineer(Options{ExcludeInProgress: true})
	res := eng.Fit(fixtureJobs(), fixtureCandidates(), fixtureApps())
	tbl := res.Table

	// Six applications: one has an unmappable status, one is in progress
	// and excluded by the option.
	if got := len(tbl.Rows); got != 4 {
		t.Fatalf("rows = %d, want 4", got)
	}

	hired := rowFor(t, tbl, "J1", "C1")
	if hired.Label != LabelSuccess {
		t.Errorf("hired label = %d, want %d", hired.Label, LabelSuccess)
	}
	rejected := rowFor(t, tbl, "J1", "C4")
	if rejected.Label != LabelFailure {
		t.Errorf("rejected label = %d, want %d", rejected.Label, LabelFailure)
	}

	for _, r := range tbl.Rows {
		for _, col := range tbl.Columns {
			v := r.Value(col)
			if v != v { // NaN guard
				t.Errorf("row %s/%s column %s is NaN", r.JobCode, r.CandidateCode, col)
			}
		}
	}
}

func TestFitRetainsInProgressWithSentinelLabel(t *testing.T) {
	eng := NewEngineer(Options{ExcludeInProgress: false})
	res := eng.Fit(fixtureJobs(), fixtureCandidates(), fixtureApps())

	if got := len(res.Table.Rows); got != 5 {
		t.Fatalf("rows = %d, want 5", got)
	}
	inProg := rowFor(t, res.Table, "J2", "C3")
	if inProg.JobCode == "" {
		t.Fatal("expected in-progress row retained")
	}
	// Desistiu is a failure status; the retained in-progress one is J3/C5.
	pending := rowFor(t, res.Table, "J3", "C5")
	if pending.Label != LabelInProgress {
		t.Errorf("in-progress label = %d, want %d", pending.Label, LabelInProgress)
	}
	if got := len(res.Table.Labeled()); got != 4 {
		t.Errorf("labeled rows = %d, want 4", got)
	}
}

func TestLevelMatchFeatures(t *testing.T) {
	eng := NewEngineer(Options{ExcludeInProgress: true})
	res := eng.Fit(fixtureJobs(), fixtureCandidates(), fixtureApps())

	hired := rowFor(t, res.Table, "J1", "C1")
	if got := hired.Value("english_match"); got != 1 {
		t.Errorf("Fluente vs Avançado english_match = %v, want 1", got)
	}
	if got := hired.Value("academic_match"); got != 1 {
		t.Errorf("Mestrado vs Superior academic_match = %v, want 1", got)
	}
	if got := hired.Value("spanish_match"); got != 1 {
		t.Errorf("missing vs Nenhum spanish_match = %v, want 1", got)
	}

	// J2 asks Básico english, C2 has Nenhum.
	sales := rowFor(t, res.Table, "J2", "C2")
	if got := sales.Value("english_match"); got != 0 {
		t.Errorf("Nenhum vs Básico english_match = %v, want 0", got)
	}
}

func TestAreaFeatures(t *testing.T) {
	eng := NewEngineer(Options{ExcludeInProgress: true})
	res := eng.Fit(fixtureJobs(), fixtureCandidates(), fixtureApps())

	// J1's glued area string splits into two required areas; C4 lists both.
	full := rowFor(t, res.Table, "J1", "C4")
	if got := full.Value("area_match_count"); got != 2 {
		t.Errorf("area_match_count = %v, want 2", got)
	}
	if got := full.Value("area_match_pct"); got != 1.0 {
		t.Errorf("area_match_pct = %v, want 1.0", got)
	}

	partial := rowFor(t, res.Table, "J1", "C1")
	if got := partial.Value("area_match_count"); got != 1 {
		t.Errorf("area_match_count = %v, want 1", got)
	}
	if got := partial.Value("area_match_pct"); got != 0.5 {
		t.Errorf("area_match_pct = %v, want 0.5", got)
	}

	// A job without required areas matches everyone.
	open := rowFor(t, res.Table, "J2", "C2")
	if got := open.Value("area_match_pct"); got != 1.0 {
		t.Errorf("empty job area area_match_pct = %v, want 1.0", got)
	}
	if got := open.Value("area_match_count"); got != 0 {
		t.Errorf("empty job area area_match_count = %v, want 0", got)
	}

	if got := full.Value(jobAreaPrefix + "TI - Sistemas e Ferramentas"); got != 1 {
		t.Errorf("job area one-hot = %v, want 1", got)
	}
	if got := open.Value(jobAreaPrefix + "TI - Sistemas e Ferramentas"); got != 0 {
		t.Errorf("absent job area one-hot = %v, want 0", got)
	}
}

func TestTransformUsesFrozenDictionaries(t *testing.T) {
	eng := NewEngineer(Options{ExcludeInProgress: true})
	fitted := eng.Fit(fixtureJobs(), fixtureCandidates(), fixtureApps())

	enc := EncoderFromCategories(fitted.Encoder.Categories())

	newJob := []job.Job{{Code: "J9", State: "Acre", Urgency: "Alta"}}
	newCand := []candidate.Candidate{{Code: "C9", Name: "Zoe"}}
	newApps := []application.Application{{JobCode: "J9", CandidateCode: "C9", Status: "Prospect"}}

	tbl := eng.Transform(newJob, newCand, newApps, enc)
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.Rows))
	}
	r := tbl.Rows[0]
	if got := r.Value("state_code"); got != float64(UnknownCategory) {
		t.Errorf("unseen state code = %v, want %d", got, UnknownCategory)
	}
	wantUrgency := fitted.Encoder.Encode("urgency", "Alta")
	if got := r.Value("urgency_code"); got != float64(wantUrgency) {
		t.Errorf("known urgency code = %v, want %d", got, wantUrgency)
	}
}

func TestContractDeadlineEncoding(t *testing.T) {
	eng := NewEngineer(Options{ExcludeInProgress: true})
	fitted := eng.Fit(fixtureJobs(), fixtureCandidates(), fixtureApps())

	urgent := rowFor(t, fitted.Table, "J1", "C1")
	relaxed := rowFor(t, fitted.Table, "J2", "C2")
	if urgent.Value("contract_deadline_code") == relaxed.Value("contract_deadline_code") {
		t.Error("distinct deadlines share one code")
	}

	enc := EncoderFromCategories(fitted.Encoder.Categories())
	newJob := []job.Job{{Code: "J9", Deadline: "90 dias"}}
	newCand := []candidate.Candidate{{Code: "C9", Name: "Zoe"}}
	newApps := []application.Application{{JobCode: "J9", CandidateCode: "C9", Status: "Prospect"}}

	tbl := eng.Transform(newJob, newCand, newApps, enc)
	if got := tbl.Rows[0].Value("contract_deadline_code"); got != float64(UnknownCategory) {
		t.Errorf("unseen deadline code = %v, want %d", got, UnknownCategory)
	}
}

func TestMissingJoinPartnersDefaultToZero(t *testing.T) {
	eng := NewEngineer(Options{ExcludeInProgress: true})
	apps := []application.Application{
		{JobCode: "GHOST", CandidateCode: "C1", Status: "Aprovado"},
	}
	res := eng.Fit(fixtureJobs(), fixtureCandidates(), apps)
	if len(res.Table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(res.Table.Rows))
	}
	r := res.Table.Rows[0]
	if got := r.Value("compat_words"); got != 0 {
		t.Errorf("compat_words = %v, want 0", got)
	}
	if got := r.Value("compat_pct"); got != 0 {
		t.Errorf("compat_pct = %v, want 0", got)
	}
}

func TestCleanAreas(t *testing.T) {
	cases := []struct{ in, want string }{
		{"TI - Sistemas-TI - Projetos-", "TI - Sistemas, TI - Projetos"},
		{"  Comercial  ", "Comercial"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CleanAreas(c.in); got != c.want {
			t.Errorf("CleanAreas(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
