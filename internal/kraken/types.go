package kraken

// Asset is one entry of the /0/public/Assets directory. Only the asset class
// matters to the pipeline; anything that is not "currency" is ignored.
type Asset struct {
	Aclass   string `json:"aclass"`
	Altname  string `json:"altname"`
	Decimals int    `json:"decimals"`
}

// AssetClassCurrency is the only asset class eligible for classification.
const AssetClassCurrency = "currency"

// Ticker is one entry of the /0/public/Ticker snapshot. Kraken encodes
// numbers as strings inside positional arrays: index 0 is "today", index 1 is
// "last 24 hours" for v/t/h/l; c[0] is the last trade price.
type Ticker struct {
	V []string `json:"v"` // volume, base units
	C []string `json:"c"` // last trade closed [price, lot volume]
	O string   `json:"o"` // today's opening price
	T []int64  `json:"t"` // number of trades
	H []string `json:"h"` // high
	L []string `json:"l"` // low
}
