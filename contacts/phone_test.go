package contacts

import (
	"reflect"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain 10 digit", "9876543210", "9876543210"},
		{"starts with 6", "6123456789", "6123456789"},
		{"starts with 7", "7123456789", "7123456789"},
		{"starts with 8", "8123456789", "8123456789"},
		{"country prefix with plus", "+919876543210", "9876543210"},
		{"country prefix with dash", "+91-9876543210", "9876543210"},
		{"bare country prefix", "919876543210", "9876543210"},
		{"trunk zero prefix", "09876543210", "9876543210"},
		{"formatting stripped", "(987) 654-3210", "9876543210"},
		{"too short", "123456789", ""},
		{"too long", "98765432101", ""},
		{"starts with 5", "5876543210", ""},
		{"starts with 0 after strip", "0123456789", ""},
		{"letters only", "not a phone", ""},
		{"empty", "", ""},
		{"91 prefix but 13 digits", "9198765432109", ""},
		{"zero prefix but 12 digits", "098765432109", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhoneRoundTrip(t *testing.T) {
	// Already standardized numbers must pass through unchanged, with or
	// without the common prefixes.
	standardized := []string{"9876543210", "6000000001", "7999999999", "8123456780"}

	for _, phone := range standardized {
		if got := NormalizePhone(phone); got != phone {
			t.Errorf("NormalizePhone(%q) = %q, want unchanged", phone, got)
		}
		if got := NormalizePhone("+91-" + phone); got != phone {
			t.Errorf("NormalizePhone(%q) = %q, want %q", "+91-"+phone, got, phone)
		}
		if got := NormalizePhone("0" + phone); got != phone {
			t.Errorf("NormalizePhone(%q) = %q, want %q", "0"+phone, got, phone)
		}
	}
}

func TestIsValidMobile(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"9876543210", true},
		{"6123456789", true},
		{"5876543210", false},
		{"987654321", false},
		{"98765432100", false},
		{"98765x3210", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidMobile(tt.input); got != tt.want {
			t.Errorf("IsValidMobile(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSplitPhoneCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "9876543210", []string{"9876543210"}},
		{"comma", "9876543210,9123456780", []string{"9876543210", "9123456780"}},
		{"semicolon", "9876543210;9123456780", []string{"9876543210", "9123456780"}},
		{"pipe", "9876543210|9123456780", []string{"9876543210", "9123456780"}},
		{"newline", "9876543210\n9123456780", []string{"9876543210", "9123456780"}},
		{"mixed separators with runs", "9876543210, ;9123456780", []string{"9876543210", "9123456780"}},
		{"whitespace splits too", "+91 9876543210", []string{"+91", "9876543210"}},
		{"empty", "", nil},
		{"separators only", " ,; |", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPhoneCell(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitPhoneCell(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractPhones(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantValid      []string
		wantCandidates int
	}{
		{"two valid", "9876543210,9876543211", []string{"9876543210", "9876543211"}, 2},
		{"one valid one junk", "9876543210,12345", []string{"9876543210"}, 2},
		{"prefix variants", "+91-9876543210;09123456780", []string{"9876543210", "9123456780"}, 2},
		{"all junk", "12345,abcde", nil, 2},
		{"empty cell", "", nil, 0},
		{"repeated number kept twice", "9876543210,9876543210", []string{"9876543210", "9876543210"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, candidates := ExtractPhones(tt.input)
			if candidates != tt.wantCandidates {
				t.Errorf("ExtractPhones(%q) candidates = %d, want %d", tt.input, candidates, tt.wantCandidates)
			}
			if len(valid) == 0 && len(tt.wantValid) == 0 {
				return
			}
			if !reflect.DeepEqual(valid, tt.wantValid) {
				t.Errorf("ExtractPhones(%q) valid = %v, want %v", tt.input, valid, tt.wantValid)
			}
		})
	}
}
