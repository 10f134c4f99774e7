package shopping

import (
	"fmt"
	"math"

	"shopperwise/internal/taxonomy"
)

// BudgetStatus classifies spending against the estimate.
type BudgetStatus string

const (
	BudgetOver  BudgetStatus = "over"
	BudgetUnder BudgetStatus = "under"
	BudgetExact BudgetStatus = "exact"
)

// BudgetReport compares estimated against actual spend.
type BudgetReport struct {
	Estimated       float64      `json:"estimated"`
	Actual          float64      `json:"actual"`
	Variance        float64      `json:"variance"`
	VariancePercent float64      `json:"variance_percent"`
	Status          BudgetStatus `json:"status"`
	Insights        []string     `json:"insights"`
}

// AnalyzeBudget reports how actual spending compares with the estimate.
// Stats is optional; when present and carrying a category breakdown, the
// report also names the most expensive category. Insights are advisory text,
// deterministic for the same input.
func (d *Deriver) AnalyzeBudget(estimated, actual float64, stats *Stats) BudgetReport {
	variance := roundMoney(actual - estimated)
	variancePercent := 0.0
	if estimated > 0 {
		variancePercent = roundMoney(variance / estimated * 100)
	}

	status := BudgetExact
	switch {
	case variance > 0:
		status = BudgetOver
	case variance < 0:
		status = BudgetUnder
	}

	return BudgetReport{
		Estimated:       roundMoney(estimated),
		Actual:          roundMoney(actual),
		Variance:        variance,
		VariancePercent: variancePercent,
		Status:          status,
		Insights:        budgetInsights(variance, variancePercent, stats),
	}
}

func budgetInsights(variance, variancePercent float64, stats *Stats) []string {
	var insights []string

	switch {
	case math.Abs(variancePercent) < 5:
		insights = append(insights,
			"Excellent budget accuracy! Your estimates are very close to actual spending.")
	case variance > 0:
		insights = append(insights, fmt.Sprintf(
			"You spent £%.2f more than estimated (%.1f%% over budget).",
			math.Abs(variance), math.Abs(variancePercent)))
		if variancePercent > 20 {
			insights = append(insights,
				"Consider reviewing your price estimates or looking for better deals.")
		}
	default:
		insights = append(insights, fmt.Sprintf(
			"You saved £%.2f (%.1f%% under budget). Well done!",
			math.Abs(variance), math.Abs(variancePercent)))
		insights = append(insights,
			"Your estimates might be conservative - consider updating them for better planning.")
	}

	if top, ok := topCategory(stats); ok {
		insights = append(insights, fmt.Sprintf(
			"Your biggest expense category was %s at £%.2f.",
			top.name, top.estimated))
	}

	return insights
}

type categorySpend struct {
	name      taxonomy.Category
	estimated float64
}

// topCategory finds the category with the highest estimated spend. Ties are
// broken by category name so the insight text is stable.
func topCategory(stats *Stats) (categorySpend, bool) {
	if stats == nil || len(stats.CategoryBreakdown) == 0 {
		return categorySpend{}, false
	}

	var top categorySpend
	found := false
	for cat, cs := range stats.CategoryBreakdown {
		if !found ||
			cs.Estimated > top.estimated ||
			(cs.Estimated == top.estimated && cat < top.name) {
			top = categorySpend{name: cat, estimated: cs.Estimated}
			found = true
		}
	}
	return top, found
}
