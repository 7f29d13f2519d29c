package quality

import (
	"fmt"
	"strings"
)

// maxRecommendations caps the advice list shown to the user after an
// import.
const maxRecommendations = 5

// Thresholds below which the metric-based rules start firing.
const (
	completenessThreshold = 80.0
	accuracyThreshold     = 90.0
)

// Summary is the aggregate view of one import that the recommendation
// rules evaluate.
type Summary struct {
	MissingRequiredColumns []string
	PhoneErrors            int
	EmailErrors            int
	DuplicateGroups        int
	Metrics                Metrics
}

// Recommend evaluates a fixed, ordered rule table against the summary and
// returns up to maxRecommendations human-readable suggestions. When no
// rule fires, a single positive confirmation is returned. The rule order
// is part of the contract: callers and tests rely on it.
func Recommend(s Summary) []string {
	recs := make([]string, 0, maxRecommendations)

	if len(s.MissingRequiredColumns) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Missing required columns: %s. Add headers for them and re-upload the file.",
			strings.Join(s.MissingRequiredColumns, ", ")))
	}

	if s.Metrics.Completeness < completenessThreshold {
		recs = append(recs, fmt.Sprintf(
			"Only %.2f%% of rows produced contacts. Review incomplete rows before importing.",
			s.Metrics.Completeness))
	}

	if s.Metrics.Accuracy < accuracyThreshold {
		recs = append(recs, fmt.Sprintf(
			"Data accuracy is %.2f%%. Review the validation errors listed in this report.",
			s.Metrics.Accuracy))
	}

	if s.PhoneErrors > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d row(s) had no usable phone number. Expected a 10-digit mobile number starting with 6-9.",
			s.PhoneErrors))
	}

	if s.EmailErrors > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d row(s) had an invalid email address.", s.EmailErrors))
	}

	if s.DuplicateGroups > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d duplicate phone number(s) found. Review the duplicate groups and merge contacts where needed.",
			s.DuplicateGroups))
	}

	if len(recs) == 0 {
		recs = append(recs, "All rows passed validation. Your contact data looks good.")
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
