package loss

// Hinge returns the summed hinge loss max(1 - y*s, 0) over all examples and the
// active set used by the sub-gradient. An example is active when its margin
// y*s is <= 1, so the kink at exactly 1 counts as active.
func Hinge(yTrue, scores []float64) (float64, []float64) {
	s := 0.0
	active := make([]float64, len(yTrue))

	for i := range yTrue {
		margin := yTrue[i] * scores[i]
		if margin <= 1 {
			active[i] = 1
		}
		if d := 1 - margin; d > 0 {
			s += d
		}
	}
	return s, active
}

// L2 returns (lambda/2) * w·w and its gradient lambda*w.
func L2(w []float64, lambda float64) (float64, []float64) {
	s := 0.0
	grad := make([]float64, len(w))
	for j, v := range w {
		s += v * v
		grad[j] = lambda * v
	}
	return 0.5 * lambda * s, grad
}
