package normalize

import (
	"strings"

	postal "github.com/openvenues/gopostal/parser"
)

// Components holds the address parts libpostal extracts that matter for
// a situs lookup.
type Components struct {
	HouseNumber string
	Road        string
	Unit        string
	City        string
	Postcode    string
}

// ParseAddress runs libpostal over a free-form address and keeps the
// components a parcel lookup can use.
func ParseAddress(address string) Components {
	var c Components
	for _, comp := range postal.ParseAddress(address) {
		switch comp.Label {
		case "house_number":
			c.HouseNumber = comp.Value
		case "road":
			c.Road = comp.Value
		case "unit":
			c.Unit = comp.Value
		case "city":
			c.City = comp.Value
		case "postcode":
			c.Postcode = comp.Value
		}
	}
	return c
}

// SitusQuery rebuilds the normalized situs form from parsed components.
// Falls back to normalizing the raw input when libpostal finds no
// house number or road.
func SitusQuery(address string) string {
	c := ParseAddress(address)
	if c.HouseNumber == "" || c.Road == "" {
		return Situs(address)
	}

	parts := []string{c.HouseNumber, c.Road}
	if c.Unit != "" {
		parts = append(parts, c.Unit)
	}
	return Situs(strings.Join(parts, " "))
}
