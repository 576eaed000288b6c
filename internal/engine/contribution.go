package engine

import (
	"math"
	"sort"
)

// DefaultRating is assumed for any holding without an explicit rating.
const DefaultRating = 5

// Suggestion is a proposed purchase for one asset out of a cash
// contribution. AssetID is zero for placeholder suggestions naming a
// class the portfolio does not hold yet.
type Suggestion struct {
	AssetID          uint    `json:"asset_id,omitempty"`
	Ticker           string  `json:"ticker,omitempty"`
	Name             string  `json:"name"`
	Class            Class   `json:"asset_class"`
	Amount           int64   `json:"amount"`
	Quantity         int64   `json:"quantity"`
	CurrentPercent   float64 `json:"current_percent"`
	ProjectedPercent float64 `json:"projected_percent"`
}

// SuggestContribution distributes a cash amount (cents) across the
// portfolio. Money goes to classes proportionally to how underweight
// they are; a class at or above target gets nothing even when its
// target is nonzero. When no class is underweight the contribution
// falls back to a plain target-percent split. Within a class the
// amount is split across held assets weighted by rating; a class with
// no holdings yields a single placeholder suggestion carrying the
// whole class amount.
func SuggestContribution(targets []Target, holdings []Holding, ratings map[uint]int, amount int64) []Suggestion {
	if amount <= 0 || len(targets) == 0 {
		return []Suggestion{}
	}

	total := TotalValue(holdings)
	current := PercentByClass(holdings)

	// Class-level split: proportional to positive diffs, or by target
	// percent when nothing is underweight.
	var totalPositiveDiff float64
	for _, t := range targets {
		if diff := t.Percent - current[t.Class]; diff > 0 {
			totalPositiveDiff += diff
		}
	}

	classWeights := make([]float64, len(targets))
	for i, t := range targets {
		if totalPositiveDiff > 0 {
			if diff := t.Percent - current[t.Class]; diff > 0 {
				classWeights[i] = diff
			}
		} else {
			classWeights[i] = t.Percent
		}
	}
	classShares := distribute(amount, classWeights)
	classAmounts := make(map[Class]int64, len(targets))
	for i, t := range targets {
		classAmounts[t.Class] = classShares[i]
	}

	byClass := make(map[Class][]Holding)
	for _, h := range holdings {
		byClass[h.Class] = append(byClass[h.Class], h)
	}

	suggestions := make([]Suggestion, 0, len(holdings))
	for _, t := range targets {
		classAmount := classAmounts[t.Class]
		if classAmount <= 0 {
			continue
		}

		classHoldings := byClass[t.Class]
		if len(classHoldings) == 0 {
			suggestions = append(suggestions, Suggestion{
				Name:   "Novo ativo de " + string(t.Class),
				Class:  t.Class,
				Amount: classAmount,
			})
			continue
		}

		ratingSum := 0
		assetWeights := make([]float64, len(classHoldings))
		for i, h := range classHoldings {
			r := ratingOf(ratings, h.ID)
			ratingSum += r
			assetWeights[i] = float64(r)
		}
		if ratingSum == 0 {
			// Every asset in the class rated zero: split evenly.
			for i := range assetWeights {
				assetWeights[i] = 1
			}
		}
		assetAmounts := distribute(classAmount, assetWeights)

		for i, h := range classHoldings {
			assetAmount := assetAmounts[i]
			if assetAmount <= 0 {
				continue
			}

			var quantity int64
			if h.Price > 0 {
				quantity = assetAmount / h.Price
			}

			var currentPct, projectedPct float64
			if total > 0 {
				currentPct = float64(h.Value()) / float64(total) * 100
			}
			if total+amount > 0 {
				projectedPct = currentPct + float64(assetAmount)/float64(total+amount)*100
			}

			suggestions = append(suggestions, Suggestion{
				AssetID:          h.ID,
				Ticker:           h.Ticker,
				Name:             h.Name,
				Class:            h.Class,
				Amount:           assetAmount,
				Quantity:         quantity,
				CurrentPercent:   currentPct,
				ProjectedPercent: projectedPct,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		if a.Class != b.Class {
			return a.Class < b.Class
		}
		return a.Ticker < b.Ticker
	})
	return suggestions
}

func ratingOf(ratings map[uint]int, assetID uint) int {
	if r, ok := ratings[assetID]; ok {
		return r
	}
	return DefaultRating
}

// distribute splits amount into integer parts proportional to
// weights, conserving the exact total. Whole cents go out first, then
// the leftover cents land on the largest fractional remainders, in
// input order on ties.
func distribute(amount int64, weights []float64) []int64 {
	out := make([]int64, len(weights))
	var totalWeight float64
	for _, w := range weights {
		if w > 0 {
			totalWeight += w
		}
	}
	if amount <= 0 || totalWeight <= 0 {
		return out
	}

	type remainder struct {
		index int
		frac  float64
	}
	var assigned int64
	remainders := make([]remainder, 0, len(weights))
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		exact := w / totalWeight * float64(amount)
		whole := int64(math.Floor(exact))
		out[i] = whole
		assigned += whole
		remainders = append(remainders, remainder{index: i, frac: exact - float64(whole)})
	}

	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].frac > remainders[j].frac
	})
	for k := 0; assigned < amount && k < len(remainders); k++ {
		out[remainders[k].index]++
		assigned++
	}
	// Float error can leave a cent unplaced; it goes to the largest share.
	if assigned < amount {
		out[remainders[0].index] += amount - assigned
	}
	return out
}
