package ivms101_test

import (
	"strings"
	"testing"

	"github.com/21Analytics/ivms101"
)

func mockNaturalPersonNameID() ivms101.NaturalPersonNameID {
	secondary := mustText[ivms101.Max100]("Friedrich")
	return ivms101.NaturalPersonNameID{
		PrimaryIdentifier:   mustText[ivms101.Max100]("Engels"),
		SecondaryIdentifier: &secondary,
		NameIdentifierType:  ivms101.NameTypeLegal,
	}
}

func mockNaturalPersonName() ivms101.NaturalPersonName {
	return ivms101.NaturalPersonName{
		NameIdentifier: ivms101.One(mockNaturalPersonNameID()),
	}
}

func mockNaturalPerson() ivms101.NaturalPerson {
	return ivms101.NaturalPerson{
		Name: ivms101.One(mockNaturalPersonName()),
	}
}

func mockLegalPersonNameID() ivms101.LegalPersonNameID {
	return ivms101.LegalPersonNameID{
		LegalPersonName:               mustText[ivms101.Max100]("Company A"),
		LegalPersonNameIdentifierType: ivms101.LegalNameTypeLegal,
	}
}

func mockLegalPersonName() ivms101.LegalPersonName {
	return ivms101.LegalPersonName{
		NameIdentifier: ivms101.One(mockLegalPersonNameID()),
	}
}

func mockLegalPerson() ivms101.LegalPerson {
	return ivms101.LegalPerson{
		Name: mockLegalPersonName(),
	}
}

func mockNationalIdentification() ivms101.NationalIdentification {
	ra := mustRegistrationAuthority("RA000001")
	return ivms101.NationalIdentification{
		NationalIdentifier:     mustText[ivms101.Max35]("id"),
		NationalIdentifierType: ivms101.IdentifierTypeUnspecified,
		RegistrationAuthority:  &ra,
	}
}

func mockAddress() ivms101.Address {
	return ivms101.Address{
		AddressType: ivms101.AddressTypeResidential,
		TownName:    mustText[ivms101.Max35]("Zurich"),
		AddressLine: ivms101.Single(mustText[ivms101.Max70]("Main street")),
		Country:     mustCountry("CH"),
	}
}

func mockDateAndPlaceOfBirth() ivms101.DateAndPlaceOfBirth {
	return ivms101.DateAndPlaceOfBirth{
		DateOfBirth:  ivms101.NewDate(1946, 11, 5),
		PlaceOfBirth: mustText[ivms101.Max70]("London"),
	}
}

func mustText[L ivms101.Bound](s string) ivms101.Text[L] {
	t, err := ivms101.NewText[L](s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustCountry(s string) ivms101.CountryCode {
	c, err := ivms101.NewCountryCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

func mustRegistrationAuthority(s string) ivms101.RegistrationAuthorityCode {
	r, err := ivms101.NewRegistrationAuthority(s)
	if err != nil {
		panic(err)
	}
	return r
}

func textPtr[L ivms101.Bound](s string) *ivms101.Text[L] {
	t := mustText[L](s)
	return &t
}

func matchValidationError(t *testing.T, v ivms101.Validatable, rule ivms101.Rule) {
	t.Helper()
	err := v.Validate()
	if err == nil {
		t.Fatalf("expected a %s violation, got nil", rule)
	}
	suffix := "(IVMS101 " + string(rule) + ")"
	if !strings.HasSuffix(err.Error(), suffix) {
		t.Fatalf("expected error ending in %q, got %q", suffix, err)
	}
}
