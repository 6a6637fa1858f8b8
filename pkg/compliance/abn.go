// Package compliance provides Australian business number validation and a
// static asset depreciation reference table.
package compliance

// abnWeights is the position-wise weight vector for the ABN checksum.
var abnWeights = [11]int{10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

const abnModulus = 89

// ABNResult reports the outcome of an ABN validation. The message
// distinguishes a structural error (wrong length) from a checksum failure.
type ABNResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

// ValidateABN validates a business number using the weighted mod-89
// checksum. All non-digit characters are stripped before validation.
func ValidateABN(raw string) ABNResult {
	var digits []int
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) != len(abnWeights) {
		return ABNResult{Message: "ABN must be 11 digits"}
	}

	// The first digit has 1 subtracted before weighting.
	sum := (digits[0] - 1) * abnWeights[0]
	for i := 1; i < len(abnWeights); i++ {
		sum += digits[i] * abnWeights[i]
	}

	if sum%abnModulus != 0 {
		return ABNResult{Message: "Invalid ABN: checksum failed"}
	}
	return ABNResult{IsValid: true, Message: "Valid ABN"}
}
