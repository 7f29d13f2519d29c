package contacts

// Limits applied to imported contact fields.
const (
	// MaxTags is the maximum number of tags kept per contact.
	MaxTags = 10

	// MaxTagLength is the maximum tag length in runes.
	MaxTagLength = 50

	// MinNameLength is the shortest name that passes without a warning.
	MinNameLength = 2
)

// Record is one validated, import-ready contact. Phone always holds a
// standardized Indian mobile number: exactly 10 digits, first digit 6-9.
type Record struct {
	ID    string   `json:"id,omitempty"`
	Name  string   `json:"name"`
	Phone string   `json:"phone"`
	Email string   `json:"email,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}
