package ivms101

import (
	"fmt"

	"github.com/21Analytics/ivms101/lei"
)

// Validate walks every present branch of the message.
func (m Message) Validate() error {
	if m.Originator != nil {
		if err := m.Originator.Validate(); err != nil {
			return err
		}
	}
	if m.Beneficiary != nil {
		if err := m.Beneficiary.Validate(); err != nil {
			return err
		}
	}
	if m.OriginatingVASP != nil {
		if err := m.OriginatingVASP.Validate(); err != nil {
			return err
		}
	}
	if m.BeneficiaryVASP != nil {
		if err := m.BeneficiaryVASP.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks rule C1 for each natural originator person, then descends
// into the persons in container order.
func (o Originator) Validate() error {
	for _, person := range o.OriginatorPersons.Values() {
		if np := person.Natural; np != nil {
			if np.GeographicAddress.IsEmpty() &&
				np.CustomerIdentification == nil &&
				np.NationalIdentification == nil &&
				np.DateAndPlaceOfBirth == nil {
				return violation(RuleC1, "Natural person: one of 1) geographic address 2) customer id 3) national id 4) date and place of birth is required")
			}
		}
		if err := person.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate descends into the beneficiary persons in container order.
func (b Beneficiary) Validate() error {
	for _, person := range b.BeneficiaryPersons.Values() {
		if err := person.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (v OriginatingVASP) Validate() error {
	return v.Person.Validate()
}

func (v BeneficiaryVASP) Validate() error {
	if v.Person == nil {
		return nil
	}
	return v.Person.Validate()
}

// Validate checks the embedded person. Rule C12 (sequential integrity
// across intermediary VASPs) needs the surrounding message chain and is not
// enforced here.
func (v IntermediaryVASP) Validate() error {
	return v.Person.Validate()
}

// Validate dispatches to the active variant.
func (p Person) Validate() error {
	switch {
	case p.Natural != nil:
		return p.Natural.Validate()
	case p.Legal != nil:
		return p.Legal.Validate()
	}
	return ErrNoVariant
}

func (p NaturalPerson) Validate() error {
	for _, name := range p.Name.Values() {
		if err := name.Validate(); err != nil {
			return err
		}
	}
	for _, addr := range p.GeographicAddress.Values() {
		if err := addr.Validate(); err != nil {
			return err
		}
	}
	if p.NationalIdentification != nil {
		if err := p.NationalIdentification.Validate(); err != nil {
			return err
		}
	}
	if p.DateAndPlaceOfBirth != nil {
		if err := p.DateAndPlaceOfBirth.Validate(); err != nil {
			return err
		}
	}
	if p.CountryOfResidence != nil {
		if err := p.CountryOfResidence.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks rule C6: at least one primary name identifier typed LEGL.
func (n NaturalPersonName) Validate() error {
	for _, id := range n.NameIdentifier.Values() {
		if id.NameIdentifierType == NameTypeLegal {
			return nil
		}
	}
	return violation(RuleC6, "Natural person must have a legal name id")
}

func (p LegalPerson) Validate() error {
	hasGeog := false
	for _, addr := range p.GeographicAddress.Values() {
		if addr.AddressType == AddressTypeGeographic {
			hasGeog = true
			break
		}
	}
	if !hasGeog && p.NationalIdentification == nil && p.CustomerIdentification == nil {
		return violation(RuleC4, "Legal person needs either geographic address, customer number or national identification")
	}
	if ni := p.NationalIdentification; ni != nil {
		switch ni.NationalIdentifierType {
		case IdentifierTypeRegistrationAuthority, IdentifierTypeUnspecified,
			IdentifierTypeLEI, IdentifierTypeTax:
		default:
			return violation(RuleC7, "Legal person must have a 'RAID', 'MISC', 'LEIX' or 'TXID' identification")
		}
		if ni.NationalIdentifierType == IdentifierTypeLEI {
			if err := lei.Validate(ni.NationalIdentifier.String()); err != nil {
				return violation(RuleC11, fmt.Sprintf("Invalid LEI: %v", err))
			}
		}
	}
	if err := p.Name.Validate(); err != nil {
		return err
	}
	for _, addr := range p.GeographicAddress.Values() {
		if err := addr.Validate(); err != nil {
			return err
		}
	}
	if ni := p.NationalIdentification; ni != nil {
		if ni.CountryOfIssue != nil {
			return violation(RuleC9, "Legal person must not have a country of issue")
		}
		if ni.NationalIdentifierType != IdentifierTypeLEI && ni.RegistrationAuthority == nil {
			return violation(RuleC9, "Legal person must specify registration authority for non-'LEIX' identification")
		}
		if ni.NationalIdentifierType == IdentifierTypeLEI && ni.RegistrationAuthority != nil {
			return violation(RuleC9, "Legal person must not specify registration authority for 'LEIX' identification")
		}
		if err := ni.Validate(); err != nil {
			return err
		}
	}
	if p.CountryOfRegistration != nil {
		if err := p.CountryOfRegistration.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks rule C5: at least one primary name identifier typed LEGL.
func (n LegalPersonName) Validate() error {
	for _, id := range n.NameIdentifier.Values() {
		if id.LegalPersonNameIdentifierType == LegalNameTypeLegal {
			return nil
		}
	}
	return violation(RuleC5, "Legal person must have a legal name id")
}

// Validate checks rule C8, then rule C3 on the country.
func (a Address) Validate() error {
	if a.AddressLine.IsEmpty() &&
		(a.StreetName == nil || (a.BuildingName == nil && a.BuildingNumber == nil)) {
		return violation(RuleC8, "Either 1) address line or 2) street name and either building name or building number are required")
	}
	return a.Country.Validate()
}

// Validate checks rule C2: the birth date lies strictly in the past.
func (d DateAndPlaceOfBirth) Validate() error {
	if !d.DateOfBirth.Before(today()) {
		return violation(RuleC2, "Date of birth must be in the past")
	}
	return nil
}

// Validate checks rule C3 on the country of issue and rule C10 on the
// registration authority, each when present. The type-specific rules C7,
// C9 and C11 apply within legal persons only.
func (n NationalIdentification) Validate() error {
	if n.CountryOfIssue != nil {
		if err := n.CountryOfIssue.Validate(); err != nil {
			return err
		}
	}
	if n.RegistrationAuthority != nil {
		if err := n.RegistrationAuthority.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks rule C3: the code is the "XX" sentinel or a recognized
// ISO 3166-1 alpha-2 code.
func (c CountryCode) Validate() error {
	if c.inner == UnknownCountry || IsKnownCountryCode(c.inner) {
		return nil
	}
	return violation(RuleC3, "Invalid country code")
}

// Validate checks rule C10: the code appears on the GLEIF list.
func (r RegistrationAuthorityCode) Validate() error {
	if !lei.IsRegistrationAuthority(r.inner) {
		return violation(RuleC10, "Provided registration authority is not on the GLEIF list")
	}
	return nil
}
