package model

// ClassMetrics holds per-class evaluation figures of the held-out split.
type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Report summarizes a training run.
type Report struct {
	Accuracy   float64              `json:"accuracy"`
	Classes    map[int]ClassMetrics `json:"classes"`
	TrainRows  int                  `json:"train_rows"`
	TestRows   int                  `json:"test_rows"`
	Resampled  int                  `json:"resampled_rows"`
	Epochs     int                  `json:"epochs"`
	FeatureDim int                  `json:"feature_dim"`
}

// evaluate computes accuracy and the per-class report at the 0.5
// threshold on raw network output.
func evaluate(n *Network, x [][]float64, y []float64) Report {
	type counts struct{ tp, fp, fn, support int }
	perClass := map[int]*counts{0: {}, 1: {}}
	correct := 0
	for i, row := range x {
		pred := 0
		if n.Predict(row) >= 0.5 {
			pred = 1
		}
		truth := int(y[i])
		perClass[truth].support++
		if pred == truth {
			correct++
			perClass[truth].tp++
		} else {
			perClass[pred].fp++
			perClass[truth].fn++
		}
	}

	report := Report{Classes: make(map[int]ClassMetrics, 2), TestRows: len(x)}
	if len(x) > 0 {
		report.Accuracy = float64(correct) / float64(len(x))
	}
	for class, c := range perClass {
		m := ClassMetrics{Support: c.support}
		if c.tp+c.fp > 0 {
			m.Precision = float64(c.tp) / float64(c.tp+c.fp)
		}
		if c.tp+c.fn > 0 {
			m.Recall = float64(c.tp) / float64(c.tp+c.fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		report.Classes[class] = m
	}
	return report
}
