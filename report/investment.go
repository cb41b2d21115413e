package report

import (
	"github.com/shopspring/decimal"
)

// Holding is a quantity of one security
type Holding struct {
	Symbol        string
	Name          string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	CurrentPrice  decimal.Decimal
}

// HoldingValue is a holding's cost against its market value
type HoldingValue struct {
	Holding
	Cost        decimal.Decimal
	MarketValue decimal.Decimal
	Gain        decimal.Decimal
}

// Investments totals the value of every holding
type Investments struct {
	Holdings         []HoldingValue
	TotalCost        decimal.Decimal
	TotalMarketValue decimal.Decimal
	Gain             decimal.Decimal
}

// Value computes a holding's cost, market value, and gain or loss
func (h Holding) Value() HoldingValue {
	cost := h.Quantity.Mul(h.PurchasePrice)
	market := h.Quantity.Mul(h.CurrentPrice)
	return HoldingValue{
		Holding:     h,
		Cost:        cost,
		MarketValue: market,
		Gain:        market.Sub(cost),
	}
}

// InvestmentSummary values each holding and totals them
func InvestmentSummary(holdings []Holding) Investments {
	inv := Investments{
		Holdings:         make([]HoldingValue, 0, len(holdings)),
		TotalCost:        decimal.Zero,
		TotalMarketValue: decimal.Zero,
	}
	for _, h := range holdings {
		value := h.Value()
		inv.Holdings = append(inv.Holdings, value)
		inv.TotalCost = inv.TotalCost.Add(value.Cost)
		inv.TotalMarketValue = inv.TotalMarketValue.Add(value.MarketValue)
	}
	inv.Gain = inv.TotalMarketValue.Sub(inv.TotalCost)
	return inv
}
