// Package classify maps Kraken asset symbols and pair names onto product
// categories. The rules are heuristic and allow-list driven, so they live in
// an injectable Policy rather than scattered conditionals: updating the known
// stablecoin or xStock sets never touches aggregation code.
package classify

import (
	"regexp"
	"strings"

	"github.com/johnhenrypower/kraken-dashboard/internal/domain"
)

// DefaultStablecoins is the known stablecoin set. The bare "USD" entry is
// intentional: any symbol starting with USD that the xStock rule did not
// already claim counts as a stablecoin.
var DefaultStablecoins = []string{
	"USDT", "USDC", "DAI", "PYUSD", "USDG", "TUSD", "BUSD",
	"FRAX", "LUSD", "USDD", "GUSD", "PAX", "USDP", "USDK",
	"ZUSD", "USD",
}

// DefaultXStockRoots is the known tokenized-equity set listed on Kraken.
var DefaultXStockRoots = []string{
	"AAPLx", "TSLAx", "NVDAx", "SPYx", "QQQx", "GOOGLx",
	"AMZNx", "MSTRx", "HOODx", "GMEx", "CRCLx", "GLDx",
	"MSFTx", "METAx", "AMDx", "COINx", "NFLXx", "INTCx",
}

// DefaultQuoteSuffixes are the quote-currency suffixes stripped when deriving
// a display symbol from a pair name. Longest/most specific first so "ZUSD"
// wins over "USD".
var DefaultQuoteSuffixes = []string{"ZUSD", "USD", "ZEUR", "EUR", "XXBT", "XBT", "ZXBT"}

// xstockShape matches symbols that look like a tokenized equity even when
// they are not on the allow-list: uppercase root plus a trailing lowercase x.
var xstockShape = regexp.MustCompile(`^[A-Z]+x$`)

// Policy classifies symbols against a fixed rule set. The zero value is not
// usable; construct with NewPolicy or DefaultPolicy.
type Policy struct {
	stablecoins   []string
	xstockRoots   []string
	quoteSuffixes []string
}

// NewPolicy builds a Policy over explicit allow-lists.
func NewPolicy(stablecoins, xstockRoots, quoteSuffixes []string) *Policy {
	return &Policy{
		stablecoins:   stablecoins,
		xstockRoots:   xstockRoots,
		quoteSuffixes: quoteSuffixes,
	}
}

// DefaultPolicy returns a Policy over the built-in Kraken allow-lists.
func DefaultPolicy() *Policy {
	return NewPolicy(DefaultStablecoins, DefaultXStockRoots, DefaultQuoteSuffixes)
}

// IsXStock reports whether symbol names a tokenized equity, either by
// containing a known root or by matching the structural pattern. The pattern
// can misfire on coincidental trailing-x symbols; that is an accepted risk of
// the heuristic, not something to special-case away.
func (p *Policy) IsXStock(symbol string) bool {
	if symbol == "" {
		return false
	}
	for _, root := range p.xstockRoots {
		if strings.Contains(symbol, root) {
			return true
		}
	}
	return len(symbol) > 2 && xstockShape.MatchString(symbol)
}

// IsStablecoin reports whether symbol names a known stablecoin. Kraken
// prefixes some legacy assets with X or Z (XXBT, ZUSD), so one leading X/Z is
// stripped before matching.
func (p *Policy) IsStablecoin(symbol string) bool {
	if symbol == "" {
		return false
	}
	upper := strings.ToUpper(symbol)
	normalized := upper
	if len(normalized) > 0 && (normalized[0] == 'X' || normalized[0] == 'Z') {
		normalized = normalized[1:]
	}
	for _, stable := range p.stablecoins {
		if normalized == stable ||
			strings.HasPrefix(normalized, stable) ||
			strings.HasPrefix(upper, stable) {
			return true
		}
	}
	return false
}

// ClassifyAsset maps an asset symbol to its category. xStock wins over
// stablecoin when both rules match; everything else is crypto.
func (p *Policy) ClassifyAsset(symbol string) domain.Category {
	if p.IsXStock(symbol) {
		return domain.CategoryXStock
	}
	if p.IsStablecoin(symbol) {
		return domain.CategoryStablecoin
	}
	return domain.CategoryCrypto
}

// ClassifyPair maps a trading pair name to its category. A pair is a
// stablecoin pair when its base leg starts with a known stablecoin
// (USDTZUSD, USDCUSD, ...). Same precedence as ClassifyAsset.
func (p *Policy) ClassifyPair(pairName string) domain.Category {
	if pairName == "" {
		return domain.CategoryCrypto
	}
	if p.IsXStock(pairName) {
		return domain.CategoryXStock
	}
	upper := strings.ToUpper(pairName)
	for _, stable := range p.stablecoins {
		if strings.HasPrefix(upper, stable) {
			return domain.CategoryStablecoin
		}
	}
	return domain.CategoryCrypto
}

// ExtractBaseAsset derives a display symbol from a pair name: strip the first
// matching quote suffix, then one leading X/Z when the remainder is longer
// than three characters. Falls back to the raw pair name if stripping leaves
// nothing. Display only; never used for classification.
func (p *Policy) ExtractBaseAsset(pairName string) string {
	if pairName == "" {
		return ""
	}
	base := pairName
	for _, quote := range p.quoteSuffixes {
		if strings.HasSuffix(pairName, quote) {
			base = pairName[:len(pairName)-len(quote)]
			break
		}
	}
	if len(base) > 3 && (base[0] == 'X' || base[0] == 'Z') {
		base = base[1:]
	}
	if base == "" {
		return pairName
	}
	return base
}

// IsUSDPair reports whether the pair is quoted in USD (plain or Kraken's
// ZUSD). Only USD-quoted pairs enter volume aggregation.
func (p *Policy) IsUSDPair(pairName string) bool {
	return pairName != "" && (strings.HasSuffix(pairName, "USD") || strings.HasSuffix(pairName, "ZUSD"))
}
