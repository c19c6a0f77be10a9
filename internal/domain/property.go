package domain

type Property struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	Categories []string `json:"category"`

	// display-only; never inspected by the filter
	Address  Address `json:"address"`
	Price    float64 `json:"price"`
	Offers   Offers  `json:"offers"`
	Image    string  `json:"image"`
	Discount string  `json:"discount,omitempty"`

	// Position is the record's index in the source listing; storage orders by it.
	Position int `json:"-"`
}

type Address struct {
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Offers struct {
	Bed       string `json:"bed"`
	Shower    string `json:"shower"`
	Occupants string `json:"occupants"`
}

// Clone returns a copy that shares no slices with p.
func (p Property) Clone() Property {
	if p.Categories != nil {
		p.Categories = append([]string(nil), p.Categories...)
	}
	return p
}

// Listing is the result of a filtered listing query.
type Listing struct {
	Items   []Property    `json:"items"`
	Total   int           `json:"total"`
	Active  []FilterLabel `json:"active_filters"`
	Presets []FilterLabel `json:"preset_filters"`
}
