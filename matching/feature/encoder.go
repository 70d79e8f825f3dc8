package feature

// UnknownCategory is the sentinel code for values outside a fitted
// dictionary. It is never assigned during fitting.
const UnknownCategory = -1

// Encoder assigns dense integer codes to categorical values in first-seen
// order. A fitted encoder is frozen into the bundle manifest at training
// time; serve-time featurization maps through the fixed dictionaries and
// never re-fits, so codes stay stable between training and serving batches.
type Encoder struct {
	categories map[string][]string
	index      map[string]map[string]int
	frozen     bool
}

// NewEncoder creates an empty, fittable encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		categories: make(map[string][]string),
		index:      make(map[string]map[string]int),
	}
}

// EncoderFromCategories rebuilds a frozen encoder from persisted
// per-column dictionaries (as stored in the bundle manifest).
func EncoderFromCategories(categories map[string][]string) *Encoder {
	e := &Encoder{
		categories: make(map[string][]string, len(categories)),
		index:      make(map[string]map[string]int, len(categories)),
		frozen:     true,
	}
	for column, values := range categories {
		e.categories[column] = append([]string(nil), values...)
		idx := make(map[string]int, len(values))
		for i, v := range values {
			idx[v] = i
		}
		e.index[column] = idx
	}
	return e
}

// Encode returns the code of value in the column's dictionary. While
// fitting, unseen values are assigned the next code; once frozen, unseen
// values map to UnknownCategory.
func (e *Encoder) Encode(column, value string) int {
	idx, ok := e.index[column]
	if !ok {
		if e.frozen {
			return UnknownCategory
		}
		idx = make(map[string]int)
		e.index[column] = idx
	}

	if code, ok := idx[value]; ok {
		return code
	}
	if e.frozen {
		return UnknownCategory
	}

	code := len(e.categories[column])
	e.categories[column] = append(e.categories[column], value)
	idx[value] = code
	return code
}

// Freeze stops the encoder from learning new categories.
func (e *Encoder) Freeze() { e.frozen = true }

// Categories exposes the per-column dictionaries for persistence.
func (e *Encoder) Categories() map[string][]string {
	out := make(map[string][]string, len(e.categories))
	for column, values := range e.categories {
		out[column] = append([]string(nil), values...)
	}
	return out
}
