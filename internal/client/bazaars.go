package client

import (
	"fmt"
	"net/url"

	"bazaar/internal/client/state"
)

type officialBazaar struct {
	Council  string
	Location string
	Address  string
}

// Council-published bazaar sites shown before any search runs.
var officialBazaars = []officialBazaar{
	{Council: "MPKj", Location: "Bandar Seri Putra", Address: "Jalan Seri Putra 1/3"},
	{Council: "MPKj", Location: "Semenyih", Address: "Jalan TPS 1/1, Taman Pelangi Semenyih"},
	{Council: "DBKL", Location: "TTDI", Address: "Jalan Tun Mohd Fuad 2"},
	{Council: "DBKL", Location: "Kampong Bharu", Address: "Jalan Raja Alang"},
	{Council: "MBSA", Location: "Section 13", Address: "Stadium Shah Alam Parking"},
	{Council: "MBSJ", Location: "USJ 4", Address: "Jalan USJ 4/5 Subang Jaya"},
	{Council: "MBPJ", Location: "Kelana Jaya", Address: "Jalan SS 6/1 Petaling Jaya"},
	{Council: "PPj", Location: "Putrajaya Presint 3", Address: "Dataran Putrajaya"},
}

// OfficialBazaars returns the seeded bazaar list as places.
func OfficialBazaars() []state.Place {
	out := make([]state.Place, 0, len(officialBazaars))
	for i, b := range officialBazaars {
		out = append(out, state.Place{
			ID:      fmt.Sprintf("official-%d", i),
			Name:    "Bazaar Ramadhan " + b.Location,
			Address: b.Address,
			Council: b.Council,
			MapsURI: "https://www.google.com/maps/search/?api=1&query=" + url.PathEscape(b.Address+" "+b.Location),
			Type:    state.TypeBazaar,
		})
	}
	return out
}
