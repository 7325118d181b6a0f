package ivms101

import (
	"errors"

	"github.com/goccy/go-json"

	"github.com/21Analytics/ivms101/lei"
)

// ErrNoVariant is returned by Person.Validate for a value holding neither
// variant. Decoding enforces exactly one variant, so only hand-built values
// can produce it.
var ErrNoVariant = errors.New("person must hold exactly one of naturalPerson or legalPerson")

// Person is the tagged union over the two identity variants. Exactly one of
// the fields is set; decoding enforces this.
type Person struct {
	Natural *NaturalPerson `json:"naturalPerson,omitempty"`
	Legal   *LegalPerson   `json:"legalPerson,omitempty"`
}

// PersonFromNatural wraps a natural person.
func PersonFromNatural(p NaturalPerson) Person { return Person{Natural: &p} }

// PersonFromLegal wraps a legal person.
func PersonFromLegal(p LegalPerson) Person { return Person{Legal: &p} }

func (p *Person) UnmarshalJSON(data []byte) error {
	type alias Person
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if (w.Natural == nil) == (w.Legal == nil) {
		return shapeErrorf(CodeNoVariant, "person must hold exactly one of naturalPerson or legalPerson")
	}
	*p = Person(w)
	return nil
}

// FirstName returns the secondary identifier of the first natural person
// name. Legal persons have no first name.
func (p Person) FirstName() (string, bool) {
	if p.Natural == nil {
		return "", false
	}
	return p.Natural.FirstName()
}

// LastName returns the primary identifier of the first natural person name,
// or the legal name for a legal person.
func (p Person) LastName() string {
	switch {
	case p.Natural != nil:
		return p.Natural.LastName()
	case p.Legal != nil:
		return p.Legal.LegalName()
	}
	return ""
}

// Address returns the first geographic address of the active variant.
func (p Person) Address() (Address, bool) {
	switch {
	case p.Natural != nil:
		return p.Natural.GeographicAddress.First()
	case p.Legal != nil:
		return p.Legal.GeographicAddress.First()
	}
	return Address{}, false
}

// CustomerIdentification returns the customer identifier of the active
// variant when one is present.
func (p Person) CustomerIdentification() (string, bool) {
	var id *StringMax50
	switch {
	case p.Natural != nil:
		id = p.Natural.CustomerIdentification
	case p.Legal != nil:
		id = p.Legal.CustomerIdentification
	}
	if id == nil {
		return "", false
	}
	return id.String(), true
}

// LEI extracts the Legal Entity Identifier from a LEIX-typed national
// identification. The empty LEI means no identifier is present; a non-nil
// error means one is present but malformed.
func (p Person) LEI() (lei.LEI, error) {
	if p.Legal == nil {
		return "", nil
	}
	ni := p.Legal.NationalIdentification
	if ni == nil || ni.NationalIdentifierType != IdentifierTypeLEI {
		return "", nil
	}
	return lei.Parse(ni.NationalIdentifier.String())
}

// NaturalPerson identifies a human being.
type NaturalPerson struct {
	Name                   OneOrMany[NaturalPersonName] `json:"name"`
	GeographicAddress      ZeroOrMany[Address]          `json:"geographicAddress"`
	NationalIdentification *NationalIdentification      `json:"nationalIdentification,omitempty"`
	CustomerIdentification *StringMax50                 `json:"customerIdentification,omitempty"`
	DateAndPlaceOfBirth    *DateAndPlaceOfBirth         `json:"dateAndPlaceOfBirth,omitempty"`
	CountryOfResidence     *CountryCode                 `json:"countryOfResidence,omitempty"`
}

// NewNaturalPerson builds a natural person with a single legal name made of
// lastName (primary identifier) and firstName (secondary identifier).
// Empty strings mean "absent" for customerID; address may be nil.
func NewNaturalPerson(firstName, lastName, customerID string, address *Address) (NaturalPerson, error) {
	primary, err := NewText[Max100](lastName)
	if err != nil {
		return NaturalPerson{}, err
	}
	secondary, err := NewText[Max100](firstName)
	if err != nil {
		return NaturalPerson{}, err
	}
	p := NaturalPerson{
		Name: One(NaturalPersonName{
			NameIdentifier: One(NaturalPersonNameID{
				PrimaryIdentifier:   primary,
				SecondaryIdentifier: &secondary,
				NameIdentifierType:  NameTypeLegal,
			}),
		}),
	}
	if customerID != "" {
		c, err := NewText[Max50](customerID)
		if err != nil {
			return NaturalPerson{}, err
		}
		p.CustomerIdentification = &c
	}
	if address != nil {
		p.GeographicAddress = Single(*address)
	}
	return p, nil
}

// FirstName returns the secondary identifier of the first name, when set.
func (p NaturalPerson) FirstName() (string, bool) {
	if p.Name.IsZero() || p.Name.First().NameIdentifier.IsZero() {
		return "", false
	}
	id := p.Name.First().NameIdentifier.First()
	if id.SecondaryIdentifier == nil {
		return "", false
	}
	return id.SecondaryIdentifier.String(), true
}

// LastName returns the primary identifier of the first name.
func (p NaturalPerson) LastName() string {
	if p.Name.IsZero() || p.Name.First().NameIdentifier.IsZero() {
		return ""
	}
	return p.Name.First().NameIdentifier.First().PrimaryIdentifier.String()
}

func (p NaturalPerson) MarshalJSON() ([]byte, error) {
	type wire struct {
		Name                   OneOrMany[NaturalPersonName] `json:"name"`
		GeographicAddress      *ZeroOrMany[Address]         `json:"geographicAddress,omitempty"`
		NationalIdentification *NationalIdentification      `json:"nationalIdentification,omitempty"`
		CustomerIdentification *StringMax50                 `json:"customerIdentification,omitempty"`
		DateAndPlaceOfBirth    *DateAndPlaceOfBirth         `json:"dateAndPlaceOfBirth,omitempty"`
		CountryOfResidence     *CountryCode                 `json:"countryOfResidence,omitempty"`
	}
	return json.Marshal(wire{
		Name:                   p.Name,
		GeographicAddress:      omitEmpty(p.GeographicAddress),
		NationalIdentification: p.NationalIdentification,
		CustomerIdentification: p.CustomerIdentification,
		DateAndPlaceOfBirth:    p.DateAndPlaceOfBirth,
		CountryOfResidence:     p.CountryOfResidence,
	})
}

func (p *NaturalPerson) UnmarshalJSON(data []byte) error {
	type alias NaturalPerson
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.Name.IsZero() {
		return shapeErrorf(CodeRequired, "naturalPerson: missing required field name")
	}
	*p = NaturalPerson(w)
	return nil
}

// NaturalPersonName groups the name identifiers of a natural person. Rule
// C6 requires at least one LEGL entry among the primary identifiers.
type NaturalPersonName struct {
	NameIdentifier         OneOrMany[NaturalPersonNameID]  `json:"nameIdentifier"`
	LocalNameIdentifier    ZeroOrMany[NaturalPersonNameID] `json:"localNameIdentifier"`
	PhoneticNameIdentifier ZeroOrMany[NaturalPersonNameID] `json:"phoneticNameIdentifier"`
}

func (n NaturalPersonName) MarshalJSON() ([]byte, error) {
	type wire struct {
		NameIdentifier         OneOrMany[NaturalPersonNameID]   `json:"nameIdentifier"`
		LocalNameIdentifier    *ZeroOrMany[NaturalPersonNameID] `json:"localNameIdentifier,omitempty"`
		PhoneticNameIdentifier *ZeroOrMany[NaturalPersonNameID] `json:"phoneticNameIdentifier,omitempty"`
	}
	return json.Marshal(wire{
		NameIdentifier:         n.NameIdentifier,
		LocalNameIdentifier:    omitEmpty(n.LocalNameIdentifier),
		PhoneticNameIdentifier: omitEmpty(n.PhoneticNameIdentifier),
	})
}

func (n *NaturalPersonName) UnmarshalJSON(data []byte) error {
	type alias NaturalPersonName
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.NameIdentifier.IsZero() {
		return shapeErrorf(CodeRequired, "naturalPersonName: missing required field nameIdentifier")
	}
	*n = NaturalPersonName(w)
	return nil
}

// NaturalPersonNameID is a single natural person name identifier.
type NaturalPersonNameID struct {
	PrimaryIdentifier   StringMax100              `json:"primaryIdentifier"`
	SecondaryIdentifier *StringMax100             `json:"secondaryIdentifier,omitempty"`
	NameIdentifierType  NaturalPersonNameTypeCode `json:"nameIdentifierType"`
}

func (n *NaturalPersonNameID) UnmarshalJSON(data []byte) error {
	type wire struct {
		PrimaryIdentifier   *StringMax100              `json:"primaryIdentifier"`
		SecondaryIdentifier *StringMax100              `json:"secondaryIdentifier"`
		NameIdentifierType  *NaturalPersonNameTypeCode `json:"nameIdentifierType"`
	}
	var w wire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.PrimaryIdentifier == nil {
		return shapeErrorf(CodeRequired, "nameIdentifier: missing required field primaryIdentifier")
	}
	if w.NameIdentifierType == nil {
		return shapeErrorf(CodeRequired, "nameIdentifier: missing required field nameIdentifierType")
	}
	*n = NaturalPersonNameID{
		PrimaryIdentifier:   *w.PrimaryIdentifier,
		SecondaryIdentifier: w.SecondaryIdentifier,
		NameIdentifierType:  *w.NameIdentifierType,
	}
	return nil
}

// LegalPerson identifies an entity such as a company or a VASP.
type LegalPerson struct {
	Name                   LegalPersonName         `json:"name"`
	GeographicAddress      ZeroOrMany[Address]     `json:"geographicAddress"`
	CustomerIdentification *StringMax50            `json:"customerIdentification,omitempty"`
	NationalIdentification *NationalIdentification `json:"nationalIdentification,omitempty"`
	CountryOfRegistration  *CountryCode            `json:"countryOfRegistration,omitempty"`
}

// NewLegalPerson builds a legal person with a single LEGL name, a customer
// identifier, a geographic address and a LEIX national identification made
// from leiCode. Fails on a length violation or a malformed LEI.
func NewLegalPerson(name, customerID string, address Address, leiCode string) (LegalPerson, error) {
	l, err := lei.Parse(leiCode)
	if err != nil {
		return LegalPerson{}, err
	}
	legalName, err := NewText[Max100](name)
	if err != nil {
		return LegalPerson{}, err
	}
	customer, err := NewText[Max50](customerID)
	if err != nil {
		return LegalPerson{}, err
	}
	identifier, err := NewText[Max35](l.String())
	if err != nil {
		return LegalPerson{}, err
	}
	return LegalPerson{
		Name: LegalPersonName{
			NameIdentifier: One(LegalPersonNameID{
				LegalPersonName:               legalName,
				LegalPersonNameIdentifierType: LegalNameTypeLegal,
			}),
		},
		GeographicAddress:      Single(address),
		CustomerIdentification: &customer,
		NationalIdentification: &NationalIdentification{
			NationalIdentifier:     identifier,
			NationalIdentifierType: IdentifierTypeLEI,
		},
	}, nil
}

// LegalName returns the first registered name identifier.
func (p LegalPerson) LegalName() string {
	if p.Name.NameIdentifier.IsZero() {
		return ""
	}
	return p.Name.NameIdentifier.First().LegalPersonName.String()
}

func (p LegalPerson) MarshalJSON() ([]byte, error) {
	type wire struct {
		Name                   LegalPersonName         `json:"name"`
		GeographicAddress      *ZeroOrMany[Address]    `json:"geographicAddress,omitempty"`
		CustomerIdentification *StringMax50            `json:"customerIdentification,omitempty"`
		NationalIdentification *NationalIdentification `json:"nationalIdentification,omitempty"`
		CountryOfRegistration  *CountryCode            `json:"countryOfRegistration,omitempty"`
	}
	return json.Marshal(wire{
		Name:                   p.Name,
		GeographicAddress:      omitEmpty(p.GeographicAddress),
		CustomerIdentification: p.CustomerIdentification,
		NationalIdentification: p.NationalIdentification,
		CountryOfRegistration:  p.CountryOfRegistration,
	})
}

func (p *LegalPerson) UnmarshalJSON(data []byte) error {
	type alias LegalPerson
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.Name.NameIdentifier.IsZero() {
		return shapeErrorf(CodeRequired, "legalPerson: missing required field name")
	}
	*p = LegalPerson(w)
	return nil
}

// LegalPersonName groups the name identifiers of a legal person. Rule C5
// requires at least one LEGL entry among the primary identifiers.
type LegalPersonName struct {
	NameIdentifier         OneOrMany[LegalPersonNameID]  `json:"nameIdentifier"`
	LocalNameIdentifier    ZeroOrMany[LegalPersonNameID] `json:"localNameIdentifier"`
	PhoneticNameIdentifier ZeroOrMany[LegalPersonNameID] `json:"phoneticNameIdentifier"`
}

func (n LegalPersonName) MarshalJSON() ([]byte, error) {
	type wire struct {
		NameIdentifier         OneOrMany[LegalPersonNameID]   `json:"nameIdentifier"`
		LocalNameIdentifier    *ZeroOrMany[LegalPersonNameID] `json:"localNameIdentifier,omitempty"`
		PhoneticNameIdentifier *ZeroOrMany[LegalPersonNameID] `json:"phoneticNameIdentifier,omitempty"`
	}
	return json.Marshal(wire{
		NameIdentifier:         n.NameIdentifier,
		LocalNameIdentifier:    omitEmpty(n.LocalNameIdentifier),
		PhoneticNameIdentifier: omitEmpty(n.PhoneticNameIdentifier),
	})
}

func (n *LegalPersonName) UnmarshalJSON(data []byte) error {
	type alias LegalPersonName
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.NameIdentifier.IsZero() {
		return shapeErrorf(CodeRequired, "legalPersonName: missing required field nameIdentifier")
	}
	*n = LegalPersonName(w)
	return nil
}

// LegalPersonNameID is a single legal person name identifier.
type LegalPersonNameID struct {
	LegalPersonName               StringMax100            `json:"legalPersonName"`
	LegalPersonNameIdentifierType LegalPersonNameTypeCode `json:"legalPersonNameIdentifierType"`
}

func (n *LegalPersonNameID) UnmarshalJSON(data []byte) error {
	type wire struct {
		LegalPersonName               *StringMax100            `json:"legalPersonName"`
		LegalPersonNameIdentifierType *LegalPersonNameTypeCode `json:"legalPersonNameIdentifierType"`
	}
	var w wire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.LegalPersonName == nil {
		return shapeErrorf(CodeRequired, "nameIdentifier: missing required field legalPersonName")
	}
	if w.LegalPersonNameIdentifierType == nil {
		return shapeErrorf(CodeRequired, "nameIdentifier: missing required field legalPersonNameIdentifierType")
	}
	*n = LegalPersonNameID{
		LegalPersonName:               *w.LegalPersonName,
		LegalPersonNameIdentifierType: *w.LegalPersonNameIdentifierType,
	}
	return nil
}

// DateAndPlaceOfBirth records where and when a natural person was born.
// Rule C2 requires the date to lie strictly in the past.
type DateAndPlaceOfBirth struct {
	DateOfBirth  Date        `json:"dateOfBirth"`
	PlaceOfBirth StringMax70 `json:"placeOfBirth"`
}

func (d *DateAndPlaceOfBirth) UnmarshalJSON(data []byte) error {
	type wire struct {
		DateOfBirth  *Date        `json:"dateOfBirth"`
		PlaceOfBirth *StringMax70 `json:"placeOfBirth"`
	}
	var w wire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.DateOfBirth == nil {
		return shapeErrorf(CodeRequired, "dateAndPlaceOfBirth: missing required field dateOfBirth")
	}
	if w.PlaceOfBirth == nil {
		return shapeErrorf(CodeRequired, "dateAndPlaceOfBirth: missing required field placeOfBirth")
	}
	*d = DateAndPlaceOfBirth{DateOfBirth: *w.DateOfBirth, PlaceOfBirth: *w.PlaceOfBirth}
	return nil
}

// NationalIdentification is a government-issued identifier. For legal
// persons, rules C7, C9, C10 and C11 constrain its type, registration
// authority and identifier value.
type NationalIdentification struct {
	NationalIdentifier     StringMax35                `json:"nationalIdentifier"`
	NationalIdentifierType NationalIdentifierTypeCode `json:"nationalIdentifierType"`
	CountryOfIssue         *CountryCode               `json:"countryOfIssue,omitempty"`
	RegistrationAuthority  *RegistrationAuthorityCode `json:"registrationAuthority,omitempty"`
}

func (n *NationalIdentification) UnmarshalJSON(data []byte) error {
	type wire struct {
		NationalIdentifier     *StringMax35                `json:"nationalIdentifier"`
		NationalIdentifierType *NationalIdentifierTypeCode `json:"nationalIdentifierType"`
		CountryOfIssue         *CountryCode                `json:"countryOfIssue"`
		RegistrationAuthority  *RegistrationAuthorityCode  `json:"registrationAuthority"`
	}
	var w wire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.NationalIdentifier == nil {
		return shapeErrorf(CodeRequired, "nationalIdentification: missing required field nationalIdentifier")
	}
	if w.NationalIdentifierType == nil {
		return shapeErrorf(CodeRequired, "nationalIdentification: missing required field nationalIdentifierType")
	}
	*n = NationalIdentification{
		NationalIdentifier:     *w.NationalIdentifier,
		NationalIdentifierType: *w.NationalIdentifierType,
		CountryOfIssue:         w.CountryOfIssue,
		RegistrationAuthority:  w.RegistrationAuthority,
	}
	return nil
}
