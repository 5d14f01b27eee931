package server

import "github.com/johnhenrypower/kraken-dashboard/internal/domain"

// StaticXStocks is the display-only fallback shown while the equity feed is
// unreachable. Entries carry nil metrics on purpose: this list is a
// presentation placeholder and must never flow into volume totals or be
// mistaken for aggregated data.
func StaticXStocks() []domain.Mover {
	return []domain.Mover{
		{Pair: "NVDAxUSD", Symbol: "NVDAx", Company: "NVIDIA Corp."},
		{Pair: "TSLAxUSD", Symbol: "TSLAx", Company: "Tesla Inc."},
		{Pair: "AAPLxUSD", Symbol: "AAPLx", Company: "Apple Inc."},
		{Pair: "MSFTxUSD", Symbol: "MSFTx", Company: "Microsoft Corp."},
		{Pair: "AMZNxUSD", Symbol: "AMZNx", Company: "Amazon.com"},
	}
}
