package ivms101

import (
	"strings"

	"github.com/goccy/go-json"
)

// Address is a geographic address. Rule C8 requires either an address line
// or a street name with a building name or number.
type Address struct {
	AddressType        AddressTypeCode         `json:"addressType"`
	Department         *StringMax50            `json:"department,omitempty"`
	SubDepartment      *StringMax70            `json:"subDepartment,omitempty"`
	StreetName         *StringMax70            `json:"streetName,omitempty"`
	BuildingNumber     *StringMax16            `json:"buildingNumber,omitempty"`
	BuildingName       *StringMax35            `json:"buildingName,omitempty"`
	Floor              *StringMax70            `json:"floor,omitempty"`
	PostBox            *StringMax16            `json:"postBox,omitempty"`
	Room               *StringMax70            `json:"room,omitempty"`
	PostCode           *StringMax16            `json:"postCode,omitempty"`
	TownName           StringMax35             `json:"townName"`
	TownLocationName   *StringMax35            `json:"townLocationName,omitempty"`
	DistrictName       *StringMax35            `json:"districtName,omitempty"`
	CountrySubDivision *StringMax35            `json:"countrySubDivision,omitempty"`
	AddressLine        ZeroOrMany[StringMax70] `json:"addressLine"`
	Country            CountryCode             `json:"country"`
}

// NewAddress builds a residential address. Empty strings mean "absent" for
// street, buildingNumber and addressLine.
func NewAddress(street, buildingNumber, addressLine, postCode, town, country string) (Address, error) {
	a := Address{AddressType: AddressTypeResidential}
	var err error
	if a.StreetName, err = optionalText[Max70](street); err != nil {
		return Address{}, err
	}
	if a.BuildingNumber, err = optionalText[Max16](buildingNumber); err != nil {
		return Address{}, err
	}
	if addressLine != "" {
		l, err := NewText[Max70](addressLine)
		if err != nil {
			return Address{}, err
		}
		a.AddressLine = Single(l)
	}
	pc, err := NewText[Max16](postCode)
	if err != nil {
		return Address{}, err
	}
	a.PostCode = &pc
	if a.TownName, err = NewText[Max35](town); err != nil {
		return Address{}, err
	}
	if a.Country, err = NewCountryCode(country); err != nil {
		return Address{}, err
	}
	return a, nil
}

// AddressLines joins the address lines with ", "; empty when none exist.
func (a Address) AddressLines() string {
	if a.AddressLine.IsEmpty() {
		return ""
	}
	parts := make([]string, 0, a.AddressLine.Len())
	for _, l := range a.AddressLine.Values() {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ", ")
}

// String renders the address for display. This is a formatting helper, not
// validation: it never fails on incomplete addresses.
func (a Address) String() string {
	return FormatAddress(
		textOrEmpty(a.StreetName),
		textOrEmpty(a.BuildingNumber),
		a.AddressLines(),
		textOrEmpty(a.PostCode),
		a.TownName.String(),
		a.Country.String(),
	)
}

// FormatAddress renders "street number, lines, postcode town, Country".
// Empty strings mean "absent"; the country code becomes its English short
// name when recognized and is echoed otherwise.
func FormatAddress(street, number, addressLine, postCode, town, countryCode string) string {
	var b strings.Builder
	if street != "" {
		b.WriteString(street)
		if number != "" {
			b.WriteString(" ")
			b.WriteString(number)
		}
		b.WriteString(", ")
	}
	if addressLine != "" {
		b.WriteString(addressLine)
		b.WriteString(", ")
	}
	if postCode != "" {
		b.WriteString(postCode)
		b.WriteString(" ")
	}
	b.WriteString(town)
	b.WriteString(", ")
	b.WriteString(CountryName(countryCode))
	return b.String()
}

func (a Address) MarshalJSON() ([]byte, error) {
	type wire struct {
		AddressType        AddressTypeCode          `json:"addressType"`
		Department         *StringMax50             `json:"department,omitempty"`
		SubDepartment      *StringMax70             `json:"subDepartment,omitempty"`
		StreetName         *StringMax70             `json:"streetName,omitempty"`
		BuildingNumber     *StringMax16             `json:"buildingNumber,omitempty"`
		BuildingName       *StringMax35             `json:"buildingName,omitempty"`
		Floor              *StringMax70             `json:"floor,omitempty"`
		PostBox            *StringMax16             `json:"postBox,omitempty"`
		Room               *StringMax70             `json:"room,omitempty"`
		PostCode           *StringMax16             `json:"postCode,omitempty"`
		TownName           StringMax35              `json:"townName"`
		TownLocationName   *StringMax35             `json:"townLocationName,omitempty"`
		DistrictName       *StringMax35             `json:"districtName,omitempty"`
		CountrySubDivision *StringMax35             `json:"countrySubDivision,omitempty"`
		AddressLine        *ZeroOrMany[StringMax70] `json:"addressLine,omitempty"`
		Country            CountryCode              `json:"country"`
	}
	return json.Marshal(wire{
		AddressType:        a.AddressType,
		Department:         a.Department,
		SubDepartment:      a.SubDepartment,
		StreetName:         a.StreetName,
		BuildingNumber:     a.BuildingNumber,
		BuildingName:       a.BuildingName,
		Floor:              a.Floor,
		PostBox:            a.PostBox,
		Room:               a.Room,
		PostCode:           a.PostCode,
		TownName:           a.TownName,
		TownLocationName:   a.TownLocationName,
		DistrictName:       a.DistrictName,
		CountrySubDivision: a.CountrySubDivision,
		AddressLine:        omitEmpty(a.AddressLine),
		Country:            a.Country,
	})
}

func (a *Address) UnmarshalJSON(data []byte) error {
	type wire struct {
		AddressType        *AddressTypeCode        `json:"addressType"`
		Department         *StringMax50            `json:"department"`
		SubDepartment      *StringMax70            `json:"subDepartment"`
		StreetName         *StringMax70            `json:"streetName"`
		BuildingNumber     *StringMax16            `json:"buildingNumber"`
		BuildingName       *StringMax35            `json:"buildingName"`
		Floor              *StringMax70            `json:"floor"`
		PostBox            *StringMax16            `json:"postBox"`
		Room               *StringMax70            `json:"room"`
		PostCode           *StringMax16            `json:"postCode"`
		TownName           *StringMax35            `json:"townName"`
		TownLocationName   *StringMax35            `json:"townLocationName"`
		DistrictName       *StringMax35            `json:"districtName"`
		CountrySubDivision *StringMax35            `json:"countrySubDivision"`
		AddressLine        ZeroOrMany[StringMax70] `json:"addressLine"`
		Country            *CountryCode            `json:"country"`
	}
	var w wire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	// Presence checks, not emptiness: "townName": "" is a present, valid
	// bounded string.
	if w.AddressType == nil {
		return shapeErrorf(CodeRequired, "address: missing required field addressType")
	}
	if w.TownName == nil {
		return shapeErrorf(CodeRequired, "address: missing required field townName")
	}
	if w.Country == nil {
		return shapeErrorf(CodeRequired, "address: missing required field country")
	}
	*a = Address{
		AddressType:        *w.AddressType,
		Department:         w.Department,
		SubDepartment:      w.SubDepartment,
		StreetName:         w.StreetName,
		BuildingNumber:     w.BuildingNumber,
		BuildingName:       w.BuildingName,
		Floor:              w.Floor,
		PostBox:            w.PostBox,
		Room:               w.Room,
		PostCode:           w.PostCode,
		TownName:           *w.TownName,
		TownLocationName:   w.TownLocationName,
		DistrictName:       w.DistrictName,
		CountrySubDivision: w.CountrySubDivision,
		AddressLine:        w.AddressLine,
		Country:            *w.Country,
	}
	return nil
}

func optionalText[L Bound](s string) (*Text[L], error) {
	if s == "" {
		return nil, nil
	}
	t, err := NewText[L](s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func textOrEmpty[L Bound](t *Text[L]) string {
	if t == nil {
		return ""
	}
	return t.String()
}
