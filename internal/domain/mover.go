package domain

// MoversPerCategory caps every top-movers list.
const MoversPerCategory = 5

// Mover is one entry in a category's top-movers list.
// Nil VolumeUSD/Price/ChangePct means "no live data for this instrument";
// the static xStock placeholder list relies on that to render without numbers.
type Mover struct {
	Pair      string   `json:"pair"`
	Symbol    string   `json:"symbol"`
	Company   string   `json:"company,omitempty"`
	VolumeUSD *float64 `json:"volume24h"`
	Price     *float64 `json:"price"`
	ChangePct *float64 `json:"change"`
	Trades    int      `json:"trades,omitempty"`
	High      float64  `json:"high,omitempty"`
	Low       float64  `json:"low,omitempty"`
}

// HasData reports whether the entry carries live market numbers.
func (m Mover) HasData() bool {
	return m.Price != nil && m.VolumeUSD != nil
}

// TopMovers holds the ranked movers per category, each at most
// MoversPerCategory long, sorted by descending 24h USD volume.
type TopMovers struct {
	Crypto     []Mover `json:"crypto"`
	XStock     []Mover `json:"xstock"`
	Stablecoin []Mover `json:"stablecoin"`
}

// Float returns a pointer to v. Convenience for building Mover entries.
func Float(v float64) *float64 { return &v }
