package planner

import (
	"github.com/shopspring/decimal"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

// RecomputeBudget restores the budget-tracking equalities on the state:
// selected_total is the sum of price x quantity over the cart, remaining is
// set_budget minus selected_total and is never clamped.
func RecomputeBudget(state *models.PlannerState) {
	if state == nil {
		return
	}

	total := decimal.Zero
	for _, item := range state.CartItems {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}

	setBudget := decimal.NewFromFloat(state.BudgetTracking.SetBudget)
	state.BudgetTracking.SelectedTotal = total.InexactFloat64()
	state.BudgetTracking.Remaining = setBudget.Sub(total).InexactFloat64()
}
