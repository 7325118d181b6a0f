package ivms101

import "github.com/goccy/go-json"

// NaturalPersonNameTypeCode classifies a natural person name identifier.
type NaturalPersonNameTypeCode string

const (
	NameTypeAlias       NaturalPersonNameTypeCode = "ALIA"
	NameTypeAtBirth     NaturalPersonNameTypeCode = "BIRT"
	NameTypeMaiden      NaturalPersonNameTypeCode = "MAID"
	NameTypeLegal       NaturalPersonNameTypeCode = "LEGL"
	NameTypeUnspecified NaturalPersonNameTypeCode = "MISC"
)

var naturalPersonNameTypeCodes = []NaturalPersonNameTypeCode{
	NameTypeAlias, NameTypeAtBirth, NameTypeMaiden, NameTypeLegal, NameTypeUnspecified,
}

func (c *NaturalPersonNameTypeCode) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, naturalPersonNameTypeCodes, c)
}

// LegalPersonNameTypeCode classifies a legal person name identifier.
type LegalPersonNameTypeCode string

const (
	LegalNameTypeLegal   LegalPersonNameTypeCode = "LEGL"
	LegalNameTypeShort   LegalPersonNameTypeCode = "SHRT"
	LegalNameTypeTrading LegalPersonNameTypeCode = "TRAD"
)

var legalPersonNameTypeCodes = []LegalPersonNameTypeCode{
	LegalNameTypeLegal, LegalNameTypeShort, LegalNameTypeTrading,
}

func (c *LegalPersonNameTypeCode) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, legalPersonNameTypeCodes, c)
}

// AddressTypeCode classifies a geographic address.
type AddressTypeCode string

const (
	AddressTypeResidential AddressTypeCode = "HOME"
	AddressTypeBusiness    AddressTypeCode = "BIZZ"
	AddressTypeGeographic  AddressTypeCode = "GEOG"
)

var addressTypeCodes = []AddressTypeCode{
	AddressTypeResidential, AddressTypeBusiness, AddressTypeGeographic,
}

func (c *AddressTypeCode) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, addressTypeCodes, c)
}

// NationalIdentifierTypeCode classifies a national identification.
type NationalIdentifierTypeCode string

const (
	IdentifierTypeAlienRegistration     NationalIdentifierTypeCode = "ARNU"
	IdentifierTypePassport              NationalIdentifierTypeCode = "CCPT"
	IdentifierTypeRegistrationAuthority NationalIdentifierTypeCode = "RAID"
	IdentifierTypeDriverLicense         NationalIdentifierTypeCode = "DRLC"
	IdentifierTypeForeignInvestment     NationalIdentifierTypeCode = "FIIN"
	IdentifierTypeTax                   NationalIdentifierTypeCode = "TXID"
	IdentifierTypeSocialSecurity        NationalIdentifierTypeCode = "SOCS"
	IdentifierTypeIdentityCard          NationalIdentifierTypeCode = "IDCD"
	IdentifierTypeLEI                   NationalIdentifierTypeCode = "LEIX"
	IdentifierTypeUnspecified           NationalIdentifierTypeCode = "MISC"
)

var nationalIdentifierTypeCodes = []NationalIdentifierTypeCode{
	IdentifierTypeAlienRegistration, IdentifierTypePassport,
	IdentifierTypeRegistrationAuthority, IdentifierTypeDriverLicense,
	IdentifierTypeForeignInvestment, IdentifierTypeTax,
	IdentifierTypeSocialSecurity, IdentifierTypeIdentityCard,
	IdentifierTypeLEI, IdentifierTypeUnspecified,
}

func (c *NationalIdentifierTypeCode) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, nationalIdentifierTypeCodes, c)
}

// decodeEnum decodes a 4-letter code, rejecting values outside the closed set.
func decodeEnum[T ~string](data []byte, valid []T, dst *T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, v := range valid {
		if string(v) == s {
			*dst = T(s)
			return nil
		}
	}
	return shapeErrorf(CodeInvalidEnum, "unknown code %q", s)
}

// UnknownCountry is the ISO 3166-1 user-assigned sentinel for an unknown
// state or entity; it always satisfies rule C3.
const UnknownCountry = "XX"

// CountryCode holds a 2-character ISO 3166-1 alpha-2 code. Only the length
// is checked at construction and decode; recognition against the country
// table is a validation concern (rule C3). The split keeps decode-time
// errors distinct from business-rule errors.
type CountryCode struct {
	inner string
}

// NewCountryCode wraps s, failing unless s is exactly 2 characters.
func NewCountryCode(s string) (CountryCode, error) {
	if len(s) != 2 {
		return CountryCode{}, shapeErrorf(CodeWrongLength,
			"cannot parse string of length %d into a country code", len(s))
	}
	return CountryCode{inner: s}, nil
}

func (c CountryCode) String() string { return c.inner }

func (c CountryCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.inner)
}

func (c *CountryCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := NewCountryCode(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// RegistrationAuthorityCode holds an 8-character GLEIF registration
// authority code. Membership on the GLEIF list is a validation concern
// (rule C10), not a construction concern.
type RegistrationAuthorityCode struct {
	inner string
}

// NewRegistrationAuthority wraps s, failing unless s is exactly 8 characters.
func NewRegistrationAuthority(s string) (RegistrationAuthorityCode, error) {
	if len(s) != 8 {
		return RegistrationAuthorityCode{}, shapeErrorf(CodeWrongLength,
			"cannot parse string of length %d into a registration authority code", len(s))
	}
	return RegistrationAuthorityCode{inner: s}, nil
}

func (r RegistrationAuthorityCode) String() string { return r.inner }

func (r RegistrationAuthorityCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.inner)
}

func (r *RegistrationAuthorityCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := NewRegistrationAuthority(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
