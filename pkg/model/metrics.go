package model

// MisclassificationRate is the 0/1 error mean(score_i * y_i < 0). A zero score
// is not counted as an error.
func MisclassificationRate(scores, y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	c := 0
	for i := range y {
		if scores[i]*y[i] < 0 {
			c++
		}
	}
	return float64(c) / float64(len(y))
}

// Sign maps scores to ±1 labels; a zero score maps to +1.
func Sign(scores []float64) []float64 {
	out := make([]float64, len(scores))
	for i, s := range scores {
		if s < 0 {
			out[i] = -1
		} else {
			out[i] = 1
		}
	}
	return out
}

func Accuracy(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// PrecisionRecallF1 scores predictions against ±1 labels treating positive as
// the class of interest (-1 for spam in this repository).
func PrecisionRecallF1(yTrue, yPred []float64, positive float64) (prec, rec, f1 float64) {
	tp, fp, fn := 0, 0, 0
	for i := range yTrue {
		if yPred[i] == positive && yTrue[i] == positive {
			tp++
		}
		if yPred[i] == positive && yTrue[i] != positive {
			fp++
		}
		if yPred[i] != positive && yTrue[i] == positive {
			fn++
		}
	}
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}
