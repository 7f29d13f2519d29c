package importer

import "strings"

// Header match scores. An exact header match is worth twice a substring
// containment match; both are multiplied by the pattern weight.
const (
	exactMatchScore    = 2
	containsMatchScore = 1
)

// FieldPattern is one candidate header text with its weight.
type FieldPattern struct {
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

// FieldPatterns maps each semantic field to its ordered pattern list.
// The table is data, not code: callers can swap it to support new
// locales or in-house column naming without touching the pipeline.
type FieldPatterns map[string][]FieldPattern

// DefaultFieldPatterns returns the built-in header dictionaries for
// English-language exports.
func DefaultFieldPatterns() FieldPatterns {
	return FieldPatterns{
		FieldName: {
			{Text: "name", Weight: 1},
			{Text: "full name", Weight: 1},
			{Text: "fullname", Weight: 1},
			{Text: "contact name", Weight: 1},
			{Text: "customer name", Weight: 1},
			{Text: "client", Weight: 1},
		},
		FieldPhone: {
			{Text: "phone", Weight: 1},
			{Text: "mobile", Weight: 1},
			{Text: "phone number", Weight: 1},
			{Text: "mobile number", Weight: 1},
			{Text: "contact number", Weight: 1},
			{Text: "whatsapp", Weight: 1},
			{Text: "cell", Weight: 1},
		},
		FieldEmail: {
			{Text: "email", Weight: 1},
			{Text: "e-mail", Weight: 1},
			{Text: "email address", Weight: 1},
			{Text: "mail", Weight: 1},
		},
		FieldTags: {
			{Text: "tags", Weight: 1},
			{Text: "tag", Weight: 1},
			{Text: "labels", Weight: 1},
			{Text: "label", Weight: 1},
			{Text: "category", Weight: 1},
			{Text: "segment", Weight: 1},
			{Text: "group", Weight: 1},
		},
	}
}

// ColumnMatch is one field's inference result. Index is -1 when no
// header scored; Suggestions then lists headers that looked close.
type ColumnMatch struct {
	Index       int      `json:"index"`
	Header      string   `json:"header,omitempty"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ColumnMapping is the result of header inference for all four semantic
// fields. Missing lists the fields without a matching header, in
// canonical field order.
type ColumnMapping struct {
	Columns map[string]ColumnMatch `json:"columns"`
	Missing []string               `json:"missing,omitempty"`
}

// Index returns the detected column index for a field, or -1.
func (m ColumnMapping) Index(field string) int {
	match, ok := m.Columns[field]
	if !ok {
		return -1
	}
	return match.Index
}

// MissingRequired returns the subset of Missing that the import cannot
// work without.
func (m ColumnMapping) MissingRequired() []string {
	var missing []string
	for _, field := range requiredFields {
		if m.Index(field) < 0 {
			missing = append(missing, field)
		}
	}
	return missing
}

// InferColumns scores every header against each field's pattern list and
// picks the best column per field. Each field chooses independently;
// ties resolve to the first header in file order. Headers are compared
// lower-cased and trimmed.
func InferColumns(headers []string, patterns FieldPatterns) ColumnMapping {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(header))
	}

	mapping := ColumnMapping{Columns: make(map[string]ColumnMatch, len(fieldOrder))}
	for _, field := range fieldOrder {
		match := ColumnMatch{Index: -1}
		for i, header := range normalized {
			if header == "" {
				continue
			}
			score := scoreHeader(header, patterns[field])
			if score > match.Score {
				match = ColumnMatch{
					Index:  i,
					Header: strings.TrimSpace(headers[i]),
					Score:  score,
				}
			}
		}

		if match.Index < 0 {
			match.Suggestions = suggestHeaders(normalized, headers, patterns[field])
			mapping.Missing = append(mapping.Missing, field)
		}
		mapping.Columns[field] = match
	}
	return mapping
}

// scoreHeader accumulates the match score of one header over every
// pattern of a field.
func scoreHeader(header string, patterns []FieldPattern) int {
	score := 0
	for _, p := range patterns {
		weight := p.Weight
		if weight == 0 {
			weight = 1
		}
		switch {
		case header == p.Text:
			score += exactMatchScore * weight
		case strings.Contains(header, p.Text):
			score += containsMatchScore * weight
		}
	}
	return score
}

// suggestHeaders lists headers whose first word shares a prefix with the
// first word of any pattern. Used only for fields that stayed unmapped,
// to hint at near-miss columns.
func suggestHeaders(normalized, original []string, patterns []FieldPattern) []string {
	var suggestions []string
	for i, header := range normalized {
		if header == "" {
			continue
		}
		headerWord := firstWord(header)
		if headerWord == "" {
			continue
		}
		for _, p := range patterns {
			patternWord := firstWord(p.Text)
			if patternWord == "" {
				continue
			}
			if strings.HasPrefix(headerWord, patternWord) || strings.HasPrefix(patternWord, headerWord) {
				suggestions = append(suggestions, strings.TrimSpace(original[i]))
				break
			}
		}
	}
	return suggestions
}

// firstWord returns the first word of s, splitting on spaces, hyphens
// and underscores.
func firstWord(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	if len(words) == 0 {
		return ""
	}
	return words[0]
}
