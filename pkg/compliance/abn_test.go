package compliance

import (
	"strings"
	"testing"
)

func TestValidateABN(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedValid bool
	}{
		{"Known valid ABN", "51 824 753 556", true},
		{"Valid without spaces", "51824753556", true},
		{"Valid with punctuation", "51-824-753-556", true},
		{"Checksum failure", "51824753557", false},
		{"Too short", "5182475355", false},
		{"Too long", "518247535561", false},
		{"Empty", "", false},
		{"Letters only", "not an abn", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateABN(tt.input)
			if result.IsValid != tt.expectedValid {
				t.Errorf("ValidateABN(%q).IsValid = %v, expected %v", tt.input, result.IsValid, tt.expectedValid)
			}
			if result.Message == "" {
				t.Errorf("ValidateABN(%q) returned an empty message", tt.input)
			}
		})
	}
}

func TestValidateABNMessages(t *testing.T) {
	// The length error and the checksum error must be textually distinct.
	lengthResult := ValidateABN("123")
	checksumResult := ValidateABN("51824753557")

	if !strings.Contains(lengthResult.Message, "11 digits") {
		t.Errorf("length message = %q, expected the digit-count wording", lengthResult.Message)
	}
	if lengthResult.Message == checksumResult.Message {
		t.Errorf("length and checksum failures share message %q", lengthResult.Message)
	}
}

// TestValidateABNChecksumSensitivity flips each digit of a known-valid ABN
// and expects every variant to fail.
func TestValidateABNChecksumSensitivity(t *testing.T) {
	const valid = "51824753556"

	for i := 0; i < len(valid); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if valid[i] == d {
				continue
			}
			flipped := valid[:i] + string(d) + valid[i+1:]
			if ValidateABN(flipped).IsValid {
				t.Errorf("ValidateABN(%q) = valid, expected single-digit flip at %d to fail", flipped, i)
			}
		}
	}
}
