package ivms101

import (
	"github.com/goccy/go-json"

	"github.com/21Analytics/ivms101/lei"
)

// Message is the root IVMS101 structure. All four fields are independently
// optional; validation only descends into the ones that are present.
type Message struct {
	Originator      *Originator      `json:"originator,omitempty"`
	Beneficiary     *Beneficiary     `json:"beneficiary,omitempty"`
	OriginatingVASP *OriginatingVASP `json:"originatingVASP,omitempty"`
	BeneficiaryVASP *BeneficiaryVASP `json:"beneficiaryVASP,omitempty"`
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type alias Message
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	*m = Message(w)
	return nil
}

// Originator identifies the account holder initiating the transfer.
type Originator struct {
	OriginatorPersons OneOrMany[Person]        `json:"originatorPersons"`
	AccountNumber     ZeroOrMany[StringMax100] `json:"accountNumber"`
}

// NewOriginator wraps a single originator person.
func NewOriginator(person Person) Originator {
	return Originator{OriginatorPersons: One(person)}
}

// FirstName projects the first originator person.
func (o Originator) FirstName() (string, bool) { return o.OriginatorPersons.First().FirstName() }

// LastName projects the first originator person.
func (o Originator) LastName() string { return o.OriginatorPersons.First().LastName() }

// Address projects the first originator person.
func (o Originator) Address() (Address, bool) { return o.OriginatorPersons.First().Address() }

// CustomerIdentification projects the first originator person.
func (o Originator) CustomerIdentification() (string, bool) {
	return o.OriginatorPersons.First().CustomerIdentification()
}

// Person returns the first originator person.
func (o Originator) Person() Person { return o.OriginatorPersons.First() }

func (o Originator) MarshalJSON() ([]byte, error) {
	type wire struct {
		OriginatorPersons OneOrMany[Person]         `json:"originatorPersons"`
		AccountNumber     *ZeroOrMany[StringMax100] `json:"accountNumber,omitempty"`
	}
	return json.Marshal(wire{
		OriginatorPersons: o.OriginatorPersons,
		AccountNumber:     omitEmpty(o.AccountNumber),
	})
}

func (o *Originator) UnmarshalJSON(data []byte) error {
	type alias Originator
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.OriginatorPersons.IsZero() {
		return shapeErrorf(CodeRequired, "originator: missing required field originatorPersons")
	}
	*o = Originator(w)
	return nil
}

// Beneficiary identifies the account holder receiving the transfer.
type Beneficiary struct {
	BeneficiaryPersons OneOrMany[Person]        `json:"beneficiaryPersons"`
	AccountNumber      ZeroOrMany[StringMax100] `json:"accountNumber"`
}

// NewBeneficiary wraps a single beneficiary person with an optional account
// number ("" means absent).
func NewBeneficiary(person Person, accountNumber string) (Beneficiary, error) {
	b := Beneficiary{BeneficiaryPersons: One(person)}
	if accountNumber != "" {
		n, err := NewText[Max100](accountNumber)
		if err != nil {
			return Beneficiary{}, err
		}
		b.AccountNumber = Single(n)
	}
	return b, nil
}

func (b Beneficiary) MarshalJSON() ([]byte, error) {
	type wire struct {
		BeneficiaryPersons OneOrMany[Person]         `json:"beneficiaryPersons"`
		AccountNumber      *ZeroOrMany[StringMax100] `json:"accountNumber,omitempty"`
	}
	return json.Marshal(wire{
		BeneficiaryPersons: b.BeneficiaryPersons,
		AccountNumber:      omitEmpty(b.AccountNumber),
	})
}

func (b *Beneficiary) UnmarshalJSON(data []byte) error {
	type alias Beneficiary
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.BeneficiaryPersons.IsZero() {
		return shapeErrorf(CodeRequired, "beneficiary: missing required field beneficiaryPersons")
	}
	*b = Beneficiary(w)
	return nil
}

// OriginatingVASP identifies the VASP initiating the transfer on behalf of
// the originator.
type OriginatingVASP struct {
	Person Person `json:"originatingVASP"`
}

// NewOriginatingVASP builds a legal-person VASP record from its name and
// LEI. VASP identification relies on the LEI, so no geographic address is
// attached.
func NewOriginatingVASP(name, leiCode string) (OriginatingVASP, error) {
	l, err := lei.Parse(leiCode)
	if err != nil {
		return OriginatingVASP{}, err
	}
	legalName, err := NewText[Max100](name)
	if err != nil {
		return OriginatingVASP{}, err
	}
	identifier, err := NewText[Max35](l.String())
	if err != nil {
		return OriginatingVASP{}, err
	}
	return OriginatingVASP{
		Person: PersonFromLegal(LegalPerson{
			Name: LegalPersonName{
				NameIdentifier: One(LegalPersonNameID{
					LegalPersonName:               legalName,
					LegalPersonNameIdentifierType: LegalNameTypeLegal,
				}),
			},
			NationalIdentification: &NationalIdentification{
				NationalIdentifier:     identifier,
				NationalIdentifierType: IdentifierTypeLEI,
			},
		}),
	}, nil
}

// LEI extracts the VASP's Legal Entity Identifier.
func (v OriginatingVASP) LEI() (lei.LEI, error) { return v.Person.LEI() }

func (v *OriginatingVASP) UnmarshalJSON(data []byte) error {
	type alias OriginatingVASP
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.Person == (Person{}) {
		return shapeErrorf(CodeRequired, "originatingVASP: missing required field originatingVASP")
	}
	*v = OriginatingVASP(w)
	return nil
}

// BeneficiaryVASP identifies the VASP receiving the transfer on behalf of
// the beneficiary. The inner person itself is optional.
type BeneficiaryVASP struct {
	Person *Person `json:"beneficiaryVASP,omitempty"`
}

// NewBeneficiaryVASP wraps a VASP person.
func NewBeneficiaryVASP(person Person) BeneficiaryVASP {
	return BeneficiaryVASP{Person: &person}
}

func (v *BeneficiaryVASP) UnmarshalJSON(data []byte) error {
	type alias BeneficiaryVASP
	var w alias
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	*v = BeneficiaryVASP(w)
	return nil
}

// IntermediaryVASP identifies a VASP relaying the transfer, with its
// position in the transmission chain. It is exchanged standalone, not as
// part of Message.
type IntermediaryVASP struct {
	Person   Person `json:"intermediaryVasp"`
	Sequence uint32 `json:"sequence"`
}

// NewIntermediaryVASP wraps a VASP person with its chain position.
func NewIntermediaryVASP(person Person, sequence uint32) IntermediaryVASP {
	return IntermediaryVASP{Person: person, Sequence: sequence}
}

func (v *IntermediaryVASP) UnmarshalJSON(data []byte) error {
	type wire struct {
		Person   *Person `json:"intermediaryVasp"`
		Sequence *uint32 `json:"sequence"`
	}
	var w wire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	if w.Person == nil {
		return shapeErrorf(CodeRequired, "intermediaryVasp: missing required field intermediaryVasp")
	}
	if w.Sequence == nil {
		return shapeErrorf(CodeRequired, "intermediaryVasp: missing required field sequence")
	}
	*v = IntermediaryVASP{Person: *w.Person, Sequence: *w.Sequence}
	return nil
}
