package ivms101

import (
	"strings"
	"sync"

	"github.com/biter777/countries"
)

// countryNames maps lowercase ISO 3166-1 alpha-2 codes to English short
// names. Built once, on first use, and never mutated afterwards, so
// concurrent readers need no locking.
var countryNames = sync.OnceValue(func() map[string]string {
	m := make(map[string]string, 256)
	for _, c := range countries.All() {
		a2 := c.Alpha2()
		if !c.IsValid() || len(a2) != 2 {
			continue
		}
		m[strings.ToLower(a2)] = c.String()
	}
	return m
})

// CountryName returns the English short name for an ISO 3166-1 alpha-2
// code, echoing the input when the code is not recognized. The lookup is
// case-insensitive and serves display only, never validation.
func CountryName(code string) string {
	if name, ok := countryNames()[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// IsKnownCountryCode reports whether code is a recognized ISO 3166-1
// alpha-2 code in its canonical uppercase form. The sentinel "XX" is not
// part of the table.
func IsKnownCountryCode(code string) bool {
	if len(code) != 2 || !isUpperAlpha(code[0]) || !isUpperAlpha(code[1]) {
		return false
	}
	_, ok := countryNames()[strings.ToLower(code)]
	return ok
}

func isUpperAlpha(b byte) bool { return b >= 'A' && b <= 'Z' }
