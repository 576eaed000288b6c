package engine

import "math"

// ActionType is the recommended direction for a rebalancing action.
type ActionType string

const (
	ActionBuy  ActionType = "buy"
	ActionSell ActionType = "sell"
	ActionHold ActionType = "hold"
)

// Action is a class-level rebalancing recommendation comparing the
// class's current share of portfolio value against its target.
type Action struct {
	Class          Class      `json:"asset_class"`
	CurrentPercent float64    `json:"current_percent"`
	TargetPercent  float64    `json:"target_percent"`
	DiffPercent    float64    `json:"diff_percent"`
	Action         ActionType `json:"action"`
	Amount         int64      `json:"amount"`
}

// AssetAction is an asset-level rebalancing recommendation. The class
// target is split evenly across the assets currently held in that
// class, unlike contribution suggestions which weight by rating; the
// two splits are distinct strategies on purpose.
type AssetAction struct {
	AssetID        uint       `json:"asset_id"`
	Ticker         string     `json:"ticker"`
	Name           string     `json:"name"`
	Class          Class      `json:"asset_class"`
	CurrentPercent float64    `json:"current_percent"`
	TargetPercent  float64    `json:"target_percent"`
	DiffPercent    float64    `json:"diff_percent"`
	Action         ActionType `json:"action"`
	Amount         int64      `json:"amount"`
}

func actionFor(diff float64) ActionType {
	switch {
	case diff > 0:
		return ActionBuy
	case diff < 0:
		return ActionSell
	default:
		return ActionHold
	}
}

// amountFor converts a percentage gap into cents of the total value.
func amountFor(diff float64, totalValue int64) int64 {
	return int64(math.Round(math.Abs(diff) / 100 * float64(totalValue)))
}

// Plan produces one Action per allocation target. With a zero total
// value every diff equals the target percent itself and every amount
// is zero: the whole target is unmet but carries no monetary urgency
// until funds exist.
func Plan(targets []Target, holdings []Holding) []Action {
	total := TotalValue(holdings)
	current := PercentByClass(holdings)

	actions := make([]Action, 0, len(targets))
	for _, t := range targets {
		diff := t.Percent - current[t.Class]
		actions = append(actions, Action{
			Class:          t.Class,
			CurrentPercent: current[t.Class],
			TargetPercent:  t.Percent,
			DiffPercent:    diff,
			Action:         actionFor(diff),
			Amount:         amountFor(diff, total),
		})
	}
	return actions
}

// AssetPlan produces one AssetAction per held asset, splitting each
// class's target percentage evenly across the assets held in that
// class. Classes without holdings produce no rows here; the class
// level Plan still reports them.
func AssetPlan(targets []Target, holdings []Holding) []AssetAction {
	total := TotalValue(holdings)

	countByClass := make(map[Class]int)
	for _, h := range holdings {
		countByClass[h.Class]++
	}
	targetByClass := make(map[Class]float64, len(targets))
	for _, t := range targets {
		targetByClass[t.Class] = t.Percent
	}

	actions := make([]AssetAction, 0, len(holdings))
	for _, h := range holdings {
		var currentPct float64
		if total > 0 {
			currentPct = float64(h.Value()) / float64(total) * 100
		}
		targetPct := targetByClass[h.Class] / float64(countByClass[h.Class])
		diff := targetPct - currentPct
		actions = append(actions, AssetAction{
			AssetID:        h.ID,
			Ticker:         h.Ticker,
			Name:           h.Name,
			Class:          h.Class,
			CurrentPercent: currentPct,
			TargetPercent:  targetPct,
			DiffPercent:    diff,
			Action:         actionFor(diff),
			Amount:         amountFor(diff, total),
		})
	}
	return actions
}
