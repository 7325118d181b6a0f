// Package lei validates ISO 17442 Legal Entity Identifiers and GLEIF
// registration-authority codes. All checks are pure in-memory computations.
package lei

import "errors"

// Validation failures for Parse/Validate.
var (
	ErrLength   = errors.New("LEI must be 20 characters long")
	ErrCharset  = errors.New("LEI must consist of uppercase alphanumeric characters")
	ErrChecksum = errors.New("LEI checksum verification failed")
)

// LEI is a validated 20-character ISO 17442 Legal Entity Identifier.
type LEI string

func (l LEI) String() string { return string(l) }

// Parse validates s and returns it as a typed LEI.
func Parse(s string) (LEI, error) {
	if err := Validate(s); err != nil {
		return "", err
	}
	return LEI(s), nil
}

// Validate checks the structural rules of ISO 17442: 20 uppercase
// alphanumeric characters whose ISO 7064 mod 97-10 remainder is 1.
func Validate(s string) error {
	if len(s) != 20 {
		return ErrLength
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		digit := c >= '0' && c <= '9'
		upper := c >= 'A' && c <= 'Z'
		if !digit && !upper {
			return ErrCharset
		}
		// The final two characters are the check digits.
		if i >= 18 && !digit {
			return ErrChecksum
		}
	}
	if mod97(s) != 1 {
		return ErrChecksum
	}
	return nil
}

// mod97 computes the ISO 7064 mod 97-10 remainder, mapping letters to the
// two-digit values 10..35.
func mod97(s string) int {
	r := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			r = (r*10 + int(c-'0')) % 97
		} else {
			r = (r*100 + int(c-'A') + 10) % 97
		}
	}
	return r
}

// maxAssignedAuthority is the highest sequentially assigned code on the
// GLEIF registration-authority list (version 1.7).
const maxAssignedAuthority = 844

// IsRegistrationAuthority reports whether code appears on the GLEIF
// registration-authority list, version 1.7. Codes are "RA" followed by six
// digits; RA888888 marks self-registered entities and RA999999 authorities
// outside the list. The assigned codes are modeled as the contiguous range
// RA000001 through RA000844; codes retired from within that range are not
// tracked and still pass.
func IsRegistrationAuthority(code string) bool {
	if len(code) != 8 || code[0] != 'R' || code[1] != 'A' {
		return false
	}
	n := 0
	for i := 2; i < 8; i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
		n = n*10 + int(code[i]-'0')
	}
	if n >= 1 && n <= maxAssignedAuthority {
		return true
	}
	return n == 888888 || n == 999999
}
