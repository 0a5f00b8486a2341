package entities

import "github.com/shopspring/decimal"

func init() {
	// backend принимает и отдаёт суммы числами
	decimal.MarshalJSONWithoutQuotes = true
}

// SumMoney складывает суммы элементов.
func SumMoney[T any](items []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(amount(item))
	}
	return total
}
