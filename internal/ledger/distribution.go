package ledger

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/betabeer/internal/models"
)

// Distribution is one requested hand-out of drinks to a recipient
type Distribution struct {
	UserID      string
	DrinkType   models.DrinkType
	MeasureType models.MeasureType
	Amount      int
}

// Unit returns the drink unit being distributed
func (d Distribution) Unit() models.DrinkUnit {
	return models.DrinkUnit{DrinkType: d.DrinkType, MeasureType: d.MeasureType}
}

// PlanDistributionInput holds everything needed to validate a distribution batch
type PlanDistributionInput struct {
	Group         *models.Group
	FromUserID    string
	Balance       *models.Balance
	Distributions []Distribution
	Now           time.Time

	// NewID generates transaction ids
	NewID func() string
}

// DistributionPlan is a validated batch ready to be committed as one write
type DistributionPlan struct {
	Transactions []*models.DrinkTransaction
	Deltas       []models.BalanceDelta
}

// PlanDistribution validates a whole batch before anything is written.
// The requested total per unit must not exceed the distributor's balance and
// every recipient must be a member; any failure rejects the entire batch.
func PlanDistribution(input *PlanDistributionInput) (*DistributionPlan, error) {
	if input == nil || input.Group == nil || input.Balance == nil || input.NewID == nil {
		return nil, validationError("distribution input is incomplete")
	}

	group := input.Group
	if input.FromUserID == "" {
		return nil, validationError("distributor is required")
	}
	if !group.IsMember(input.FromUserID) {
		return nil, fmt.Errorf("%w: distributor %s", ErrNotMember, input.FromUserID)
	}
	if len(input.Distributions) == 0 {
		return nil, validationError("at least one distribution is required")
	}

	requested := models.NewQuantityMap()
	for _, d := range input.Distributions {
		if d.UserID == "" {
			return nil, validationError("recipient is required")
		}
		if !d.Unit().Valid() {
			return nil, validationError("unknown drink unit %s/%s", d.DrinkType, d.MeasureType)
		}
		if d.Amount <= 0 {
			return nil, validationError("amount must be positive, got %d", d.Amount)
		}
		_ = requested.Add(d.DrinkType, d.MeasureType, d.Amount)
	}

	for _, unit := range requested.Units() {
		want := requested.Get(unit.DrinkType, unit.MeasureType)
		have := input.Balance.DrinksToDistribute.Get(unit.DrinkType, unit.MeasureType)
		if want > have {
			return nil, &InsufficientBalanceError{
				UserID:    input.FromUserID,
				Field:     models.BalanceFieldDistribute,
				Unit:      unit,
				Requested: want,
				Available: have,
			}
		}
	}

	for _, d := range input.Distributions {
		if !group.IsMember(d.UserID) {
			return nil, fmt.Errorf("%w: recipient %s", ErrNotMember, d.UserID)
		}
	}

	plan := &DistributionPlan{}
	var deltas []models.BalanceDelta
	for _, d := range input.Distributions {
		plan.Transactions = append(plan.Transactions, &models.DrinkTransaction{
			ID:           input.NewID(),
			GroupID:      group.ID,
			FromUserID:   input.FromUserID,
			FromUsername: group.Username(input.FromUserID),
			ToUserID:     d.UserID,
			ToUsername:   group.Username(d.UserID),
			DrinkType:    d.DrinkType,
			MeasureType:  d.MeasureType,
			Amount:       d.Amount,
			Source:       models.TransactionSourceDistribution,
			Timestamp:    input.Now,
		})

		deltas = append(deltas,
			models.BalanceDelta{
				UserID:      d.UserID,
				Field:       models.BalanceFieldConsume,
				DrinkType:   d.DrinkType,
				MeasureType: d.MeasureType,
				Amount:      d.Amount,
			},
			models.BalanceDelta{
				UserID:      input.FromUserID,
				Field:       models.BalanceFieldDistribute,
				DrinkType:   d.DrinkType,
				MeasureType: d.MeasureType,
				Amount:      -d.Amount,
			},
		)
	}
	plan.Deltas = MergeDeltas(deltas)

	return plan, nil
}
