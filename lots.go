package tradelog

// lot represents a single purchase of a stock, used for FIFO cost basis
// calculations.
type lot struct {
	Quantity int64
	Cost     Money // total cost of the lot (quantity * price)
}

type lots []lot

// sell consumes quantity shares from the oldest lots first and returns the
// remaining lots. Selling more than the lots hold consumes them all.
func (l lots) sell(quantityToSell int64) lots {
	var remaining lots

	for _, current := range l {
		if quantityToSell == 0 {
			remaining = append(remaining, current)
			continue
		}

		if current.Quantity > quantityToSell {
			// Partial sale from this lot.
			costOfSold := current.Cost.Mul(quantityToSell).Div(current.Quantity)
			remaining = append(remaining, lot{
				Quantity: current.Quantity - quantityToSell,
				Cost:     current.Cost.Sub(costOfSold),
			})
			quantityToSell = 0
		} else {
			// Full sale of this lot.
			quantityToSell -= current.Quantity
		}
	}
	return remaining
}

// cost returns the total cost of the remaining lots.
func (l lots) cost() Money {
	var total Money
	for _, current := range l {
		total = total.Add(current.Cost)
	}
	return total
}
