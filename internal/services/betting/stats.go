package betting

import (
	"context"

	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	groupRepo "github.com/KirkDiggler/betabeer/internal/repositories/group"
)

// GetGroupStats computes the leaderboard from the stored bets and distribution history
func (s *service) GetGroupStats(ctx context.Context, input *GetGroupStatsInput) (*GetGroupStatsOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}

	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	return &GetGroupStatsOutput{Stats: ledger.ComputeGroupStats(group)}, nil
}

// GetBalance returns a member's persisted balance
func (s *service) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, invalid("user is required")
	}

	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	out, err := s.groupRepo.GetBalance(ctx, &groupRepo.GetBalanceInput{GroupID: group.ID, UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	return &GetBalanceOutput{Balance: out.Balance}, nil
}

// GetTransactionHistory returns the group's distribution history
func (s *service) GetTransactionHistory(ctx context.Context, input *GetTransactionHistoryInput) (*GetTransactionHistoryOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}

	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	return &GetTransactionHistoryOutput{
		Transactions: append([]*models.DrinkTransaction{}, group.DistributionHistory...),
	}, nil
}

// GetUserTransactions returns the distributions a user sent or received in any group
func (s *service) GetUserTransactions(ctx context.Context, input *GetUserTransactionsInput) (*GetUserTransactionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, invalid("user is required")
	}

	out, err := s.groupRepo.GetUserTransactions(ctx, &groupRepo.GetUserTransactionsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	return &GetUserTransactionsOutput{Transactions: out.Transactions}, nil
}
