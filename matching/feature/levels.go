package feature

// Ordinal scales for the ATS level vocabulary. Values not in a map rank 0
// (lowest), which is also where missing values land.

var languageLevels = map[string]int{
	"Nenhum":        0,
	"Básico":        1,
	"Intermediário": 2,
	"Técnico":       2,
	"Avançado":      3,
	"Fluente":       4,
}

var academicLevels = map[string]int{
	"Ensino Fundamental Incompleto": 1,
	"Ensino Fundamental Cursando":   2,
	"Ensino Fundamental Completo":   3,

	"Ensino Médio Incompleto": 4,
	"Ensino Médio Cursando":   5,
	"Ensino Médio Completo":   6,

	"Ensino Técnico Incompleto": 7,
	"Ensino Técnico Cursando":   8,
	"Ensino Técnico Completo":   9,

	"Ensino Superior Incompleto": 10,
	"Ensino Superior Cursando":   11,
	"Ensino Superior Completo":   12,

	"Pós Graduação Incompleto": 13,
	"Pós Graduação Cursando":   14,
	"Pós Graduação Completo":   15,

	"Mestrado Incompleto": 16,
	"Mestrado Cursando":   17,
	"Mestrado Completo":   18,

	"Doutorado Incompleto": 19,
	"Doutorado Cursando":   20,
	"Doutorado Completo":   21,
}

// LanguageLevel maps a language proficiency name to its ordinal rank.
func LanguageLevel(name string) int {
	return languageLevels[name]
}

// AcademicLevel maps an academic level name to its ordinal rank.
func AcademicLevel(name string) int {
	return academicLevels[name]
}
