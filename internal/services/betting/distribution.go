package betting

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/betabeer/internal/events"
	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	groupRepo "github.com/KirkDiggler/betabeer/internal/repositories/group"
	log "github.com/sirupsen/logrus"
)

// DistributeDrinks validates the whole batch against the distributor's
// persisted balance, then writes every transaction and balance change in one
// commit. Nothing is written if any entry fails.
func (s *service) DistributeDrinks(ctx context.Context, input *DistributeDrinksInput) (*DistributeDrinksOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.FromUserID == "" {
		return nil, invalid("distributor is required")
	}

	var plan *ledger.DistributionPlan
	var balance *models.Balance

	_, _, err := s.updateGroup(ctx, input.GroupID, input.FromUserID, func(group *models.Group) (*groupChange, error) {
		out, err := s.groupRepo.GetBalance(ctx, &groupRepo.GetBalanceInput{GroupID: group.ID, UserID: input.FromUserID})
		if err != nil {
			return nil, err
		}
		balance = out.Balance

		plan, err = ledger.PlanDistribution(&ledger.PlanDistributionInput{
			Group:         group,
			FromUserID:    input.FromUserID,
			Balance:       balance,
			Distributions: input.Distributions,
			Now:           s.clock.Now(),
			NewID:         s.uuidGenerator.NewUUID,
		})
		if err != nil {
			return nil, err
		}

		group.DistributionHistory = append(group.DistributionHistory, plan.Transactions...)

		event := s.newEvent(events.EventTypeDrinksDistributed, input.FromUserID, "")
		event.Attributes = map[string]string{"transactions": strconv.Itoa(len(plan.Transactions))}
		return &groupChange{
			Deltas:       plan.Deltas,
			Transactions: plan.Transactions,
			Event:        event,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	// The commit succeeded, so the planned deltas apply cleanly to the balance read inside it
	if err := ledger.ApplyDeltas(balance, plan.Deltas); err != nil {
		return nil, err
	}

	s.logger.WithFields(log.Fields{
		"groupID":      input.GroupID,
		"fromUserID":   input.FromUserID,
		"transactions": len(plan.Transactions),
	}).Info("Drinks distributed")

	return &DistributeDrinksOutput{
		Transactions: plan.Transactions,
		Balance:      balance,
	}, nil
}
