package forecast

import "math"

// zScores maps the supported confidence levels to their critical
// values. Only these two discrete levels exist; there is no continuous
// confidence-level mapping.
var zScores = map[float64]float64{
	0.95: 1.96,
	0.99: 2.576,
}

func supportedConfidence(level float64) bool {
	_, ok := zScores[level]
	return ok
}

func zScore(level float64) float64 {
	if z, ok := zScores[level]; ok {
		return z
	}
	return zScores[0.95]
}

// applyConfidence enriches each prediction in place with the symmetric
// interval value ± z*sqrt(mse). The lower bound is clamped to zero; the
// upper bound is left open.
func applyConfidence(predictions []Prediction, mse, level float64) {
	margin := zScore(level) * math.Sqrt(mse)
	for i := range predictions {
		predictions[i].Lower = clampNonNegative(predictions[i].Value - margin)
		predictions[i].Upper = predictions[i].Value + margin
	}
}
