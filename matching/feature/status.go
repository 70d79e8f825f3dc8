package feature

// Outcome is the folded application status used for labeling.
type Outcome string

const (
	OutcomeSuccess    Outcome = "success"
	OutcomeFailure    Outcome = "failure"
	OutcomeInProgress Outcome = "in_progress"
)

// Training labels. Polarity is fixed: the classifier learns failure as the
// positive class, so the served match probability is 1 minus its output.
const (
	LabelSuccess    = 0
	LabelFailure    = 1
	LabelInProgress = -1
)

// statusOutcomes folds the raw ATS status strings into outcomes. Statuses
// not listed here are excluded from the feature table entirely.
var statusOutcomes = map[string]Outcome{
	"Aprovado":                 OutcomeSuccess,
	"Contratado como Hunting":  OutcomeSuccess,
	"Contratado pela Decision": OutcomeSuccess,
	"Documentação Cooperado":   OutcomeSuccess,
	"Documentação CLT":         OutcomeSuccess,
	"Documentação PJ":          OutcomeSuccess,
	"Proposta Aceita":          OutcomeSuccess,

	"Não Aprovado pelo RH":           OutcomeFailure,
	"Não Aprovado pelo Cliente":      OutcomeFailure,
	"Não Aprovado pelo Requisitante": OutcomeFailure,
	"Recusado":                       OutcomeFailure,
	"Desistiu da Contratação":        OutcomeFailure,
	"Desistiu":                       OutcomeFailure,
	"Sem interesse nesta vaga":       OutcomeFailure,

	"Encaminhado ao Requisitante": OutcomeInProgress,
	"Inscrito":                    OutcomeInProgress,
	"Prospect":                    OutcomeInProgress,
	"Entrevista Técnica":          OutcomeInProgress,
	"Em avaliação pelo RH":        OutcomeInProgress,
	"Entrevista com Cliente":      OutcomeInProgress,
	"Encaminhar Proposta":         OutcomeInProgress,
}

// MapStatus folds a raw application status. ok is false when the status is
// not in the table.
func MapStatus(status string) (Outcome, bool) {
	outcome, ok := statusOutcomes[status]
	return outcome, ok
}

// Label returns the training label for an outcome.
func (o Outcome) Label() int {
	switch o {
	case OutcomeSuccess:
		return LabelSuccess
	case OutcomeFailure:
		return LabelFailure
	default:
		return LabelInProgress
	}
}
