package quality

import "math"

// Metrics holds the batch-level quality percentages reported after an
// import run. All values are rounded to two decimals and clamped to
// [0, 100].
type Metrics struct {
	Completeness float64 `json:"completeness"`
	Accuracy     float64 `json:"accuracy"`
	Consistency  float64 `json:"consistency"`
}

// Score computes batch quality from aggregate counts:
//   - completeness: successful records over total data rows
//   - accuracy: rows without error-severity issues over total data rows
//   - consistency: successful records whose phone is exactly 10 digits
//     over all successful records
//
// A batch with zero data rows scores zero on every metric. Consistency is
// always 100 for batches produced by the import pipeline, because the
// phone normalizer only ever emits 10-digit numbers; the metric is kept
// for the day other number formats are admitted.
func Score(totalRows, successfulRecords, errorRows, tenDigitRecords int) Metrics {
	if totalRows == 0 {
		return Metrics{}
	}

	completeness := float64(successfulRecords) / float64(totalRows) * 100
	accuracy := float64(totalRows-errorRows) / float64(totalRows) * 100

	consistency := 0.0
	if successfulRecords > 0 {
		consistency = float64(tenDigitRecords) / float64(successfulRecords) * 100
	}

	return Metrics{
		Completeness: round2(clamp(completeness, 0, 100)),
		Accuracy:     round2(clamp(accuracy, 0, 100)),
		Consistency:  round2(clamp(consistency, 0, 100)),
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clamp limits v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
