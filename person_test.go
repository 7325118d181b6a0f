package ivms101_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/21Analytics/ivms101"
)

func TestPersonSerialization(t *testing.T) {
	person := ivms101.PersonFromNatural(mockNaturalPerson())
	out, err := json.Marshal(person)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	want := `{"naturalPerson":{"name":{"nameIdentifier":{"primaryIdentifier":"Engels","secondaryIdentifier":"Friedrich","nameIdentifierType":"LEGL"}}}}`
	if string(out) != want {
		t.Fatalf("unexpected wire form:\n got %s\nwant %s", out, want)
	}
	var back ivms101.Person
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if !reflect.DeepEqual(person, back) {
		t.Fatalf("roundtrip mismatch:\n got %+v\nwant %+v", back, person)
	}

	person = ivms101.PersonFromLegal(mockLegalPerson())
	out, err = json.Marshal(person)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	want = `{"legalPerson":{"name":{"nameIdentifier":{"legalPersonName":"Company A","legalPersonNameIdentifierType":"LEGL"}}}}`
	if string(out) != want {
		t.Fatalf("unexpected wire form:\n got %s\nwant %s", out, want)
	}
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if !reflect.DeepEqual(person, back) {
		t.Fatalf("roundtrip mismatch:\n got %+v\nwant %+v", back, person)
	}
}

func TestPersonExactlyOneVariant(t *testing.T) {
	var p ivms101.Person
	if err := json.Unmarshal([]byte(`{}`), &p); err == nil {
		t.Fatalf("a person without a variant must fail to decode")
	}

	np, _ := json.Marshal(mockNaturalPerson())
	lp, _ := json.Marshal(mockLegalPerson())
	both := []byte(`{"naturalPerson":` + string(np) + `,"legalPerson":` + string(lp) + `}`)
	if err := json.Unmarshal(both, &p); err == nil {
		t.Fatalf("a person with both variants must fail to decode")
	}
}

func TestPersonValidateWithoutVariant(t *testing.T) {
	if err := (ivms101.Person{}).Validate(); !errors.Is(err, ivms101.ErrNoVariant) {
		t.Fatalf("expected ErrNoVariant, got %v", err)
	}
}

func TestNameIdentifierDecodeRequiredFields(t *testing.T) {
	var nid ivms101.NaturalPersonNameID
	if err := json.Unmarshal([]byte(`{"nameIdentifierType":"LEGL"}`), &nid); err == nil {
		t.Fatalf("decode without primaryIdentifier must fail")
	}
	if err := json.Unmarshal([]byte(`{"primaryIdentifier":"Engels"}`), &nid); err == nil {
		t.Fatalf("decode without nameIdentifierType must fail")
	}
	// Present-but-empty is a valid bounded string, distinct from absent.
	if err := json.Unmarshal([]byte(`{"primaryIdentifier":"","nameIdentifierType":"LEGL"}`), &nid); err != nil {
		t.Fatalf("empty primaryIdentifier must decode: %v", err)
	}

	var lid ivms101.LegalPersonNameID
	if err := json.Unmarshal([]byte(`{"legalPersonNameIdentifierType":"LEGL"}`), &lid); err == nil {
		t.Fatalf("decode without legalPersonName must fail")
	}
	if err := json.Unmarshal([]byte(`{"legalPersonName":"Company A"}`), &lid); err == nil {
		t.Fatalf("decode without legalPersonNameIdentifierType must fail")
	}
}

func TestDateAndPlaceOfBirthDecodeRequiredFields(t *testing.T) {
	var d ivms101.DateAndPlaceOfBirth
	if err := json.Unmarshal([]byte(`{"placeOfBirth":"Bern"}`), &d); err == nil {
		t.Fatalf("decode without dateOfBirth must fail")
	}
	if err := json.Unmarshal([]byte(`{"dateOfBirth":"1946-11-05"}`), &d); err == nil {
		t.Fatalf("decode without placeOfBirth must fail")
	}
	if err := json.Unmarshal([]byte(`{"dateOfBirth":"1946-11-05","placeOfBirth":"Bern"}`), &d); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if d.DateOfBirth.String() != "1946-11-05" {
		t.Fatalf("unexpected date: %v", d.DateOfBirth)
	}
}

func TestNationalIdentificationDecodeRequiredFields(t *testing.T) {
	var n ivms101.NationalIdentification
	if err := json.Unmarshal([]byte(`{"nationalIdentifierType":"MISC"}`), &n); err == nil {
		t.Fatalf("decode without nationalIdentifier must fail")
	}
	if err := json.Unmarshal([]byte(`{"nationalIdentifier":"id"}`), &n); err == nil {
		t.Fatalf("decode without nationalIdentifierType must fail")
	}
	if err := json.Unmarshal([]byte(`{"nationalIdentifier":"id","nationalIdentifierType":"MISC"}`), &n); err != nil {
		t.Fatalf("decode err: %v", err)
	}
}

func TestPersonRejectsUnknownFields(t *testing.T) {
	var p ivms101.Person
	data := []byte(`{"naturalPerson":{"name":{"nameIdentifier":{"primaryIdentifier":"Engels","nameIdentifierType":"LEGL"}},"shoeSize":43}}`)
	if err := json.Unmarshal(data, &p); err == nil {
		t.Fatalf("unknown nested fields must be rejected")
	}
}

func TestNaturalPersonBuilder(t *testing.T) {
	addr := mockAddress()
	p, err := ivms101.NewNaturalPerson("Friedrich", "Engels", "customer-1", &addr)
	if err != nil {
		t.Fatalf("builder err: %v", err)
	}
	if first, ok := p.FirstName(); !ok || first != "Friedrich" {
		t.Fatalf("unexpected first name: %q %v", first, ok)
	}
	if p.LastName() != "Engels" {
		t.Fatalf("unexpected last name: %q", p.LastName())
	}
	id := p.Name.First().NameIdentifier.First()
	if id.NameIdentifierType != ivms101.NameTypeLegal {
		t.Fatalf("builder must produce a LEGL name, got %q", id.NameIdentifierType)
	}
	if p.GeographicAddress.IsEmpty() {
		t.Fatalf("address not attached")
	}

	person := ivms101.PersonFromNatural(p)
	if err := person.Validate(); err != nil {
		t.Fatalf("built person must validate: %v", err)
	}

	if _, err := ivms101.NewNaturalPerson("Friedrich", string(make([]byte, 101)), "", nil); err == nil {
		t.Fatalf("an overlong last name must fail the builder")
	}
}

func TestNaturalPersonWithoutSecondaryIdentifier(t *testing.T) {
	p := mockNaturalPerson()
	id := mockNaturalPersonNameID()
	id.SecondaryIdentifier = nil
	p.Name = ivms101.One(ivms101.NaturalPersonName{NameIdentifier: ivms101.One(id)})
	if _, ok := p.FirstName(); ok {
		t.Fatalf("first name must be absent without a secondary identifier")
	}
	if p.LastName() != "Engels" {
		t.Fatalf("unexpected last name: %q", p.LastName())
	}
}

func TestLegalPersonBuilder(t *testing.T) {
	p, err := ivms101.NewLegalPerson("Company A", "customer-1", mockAddress(), "2594007XIACKNMUAW223")
	if err != nil {
		t.Fatalf("builder err: %v", err)
	}
	if p.LegalName() != "Company A" {
		t.Fatalf("unexpected name: %q", p.LegalName())
	}
	ni := p.NationalIdentification
	if ni == nil || ni.NationalIdentifierType != ivms101.IdentifierTypeLEI {
		t.Fatalf("builder must produce a LEIX national identification: %+v", ni)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("built legal person must validate: %v", err)
	}

	if _, err := ivms101.NewLegalPerson("Company A", "customer-1", mockAddress(), "invalid-lei"); err == nil {
		t.Fatalf("a malformed LEI must fail the builder")
	}
}

func TestPersonAccessors(t *testing.T) {
	legal := ivms101.PersonFromLegal(mockLegalPerson())
	if _, ok := legal.FirstName(); ok {
		t.Fatalf("legal persons have no first name")
	}
	if legal.LastName() != "Company A" {
		t.Fatalf("legal last name must be the legal name, got %q", legal.LastName())
	}
	if _, ok := legal.Address(); ok {
		t.Fatalf("mock legal person has no address")
	}

	id := mustText[ivms101.Max50]("customer-7")
	lp := mockLegalPerson()
	lp.CustomerIdentification = &id
	legal = ivms101.PersonFromLegal(lp)
	if got, ok := legal.CustomerIdentification(); !ok || got != "customer-7" {
		t.Fatalf("unexpected customer identification: %q %v", got, ok)
	}
}

func TestPersonLEI(t *testing.T) {
	natural := ivms101.PersonFromNatural(mockNaturalPerson())
	if l, err := natural.LEI(); err != nil || l != "" {
		t.Fatalf("natural persons carry no LEI: %q %v", l, err)
	}

	lp, err := ivms101.NewLegalPerson("Company A", "id", mockAddress(), "2594007XIACKNMUAW223")
	if err != nil {
		t.Fatalf("builder err: %v", err)
	}
	l, err := ivms101.PersonFromLegal(lp).LEI()
	if err != nil {
		t.Fatalf("LEI err: %v", err)
	}
	if l.String() != "2594007XIACKNMUAW223" {
		t.Fatalf("unexpected LEI: %q", l)
	}
}
