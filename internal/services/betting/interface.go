package betting

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/betabeer/internal/services/betting Service

import "context"

// Service defines the betting and drink ledger operations of a group.
// Every mutation is a read, modify and commit of the whole group record.
type Service interface {
	// CreateGroup creates a group with the owner as its only member
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error)

	// GetGroup returns a group by ID
	GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error)

	// DeleteGroup removes a group and everything it owns. Only the owner may delete it.
	DeleteGroup(ctx context.Context, input *DeleteGroupInput) (*DeleteGroupOutput, error)

	// AddMember adds a user to a group
	AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error)

	// RemoveMember removes a user from a group
	RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error)

	// IsMember reports whether a user belongs to a group
	IsMember(ctx context.Context, input *IsMemberInput) (*IsMemberOutput, error)

	// ListGroupsForUser returns the groups a user belongs to
	ListGroupsForUser(ctx context.Context, input *ListGroupsForUserInput) (*ListGroupsForUserOutput, error)

	// CreateBet adds an open bet to a group
	CreateBet(ctx context.Context, input *CreateBetInput) (*CreateBetOutput, error)

	// EditBet replaces a bet's title and options
	EditBet(ctx context.Context, input *EditBetInput) (*EditBetOutput, error)

	// PlaceWager places or replaces a user's wager on an open bet
	PlaceWager(ctx context.Context, input *PlaceWagerInput) (*PlaceWagerOutput, error)

	// ResolveBet marks the correct option of a bet and settles balances
	ResolveBet(ctx context.Context, input *ResolveBetInput) (*ResolveBetOutput, error)

	// ReopenBet clears a bet's resolution and reverses its settlement
	ReopenBet(ctx context.Context, input *ReopenBetInput) (*ReopenBetOutput, error)

	// DeleteBet removes a bet and reverses its settlement
	DeleteBet(ctx context.Context, input *DeleteBetInput) (*DeleteBetOutput, error)

	// GetGroupStats computes the leaderboard of a group
	GetGroupStats(ctx context.Context, input *GetGroupStatsInput) (*GetGroupStatsOutput, error)

	// DistributeDrinks hands out drinks a member won to other members
	DistributeDrinks(ctx context.Context, input *DistributeDrinksInput) (*DistributeDrinksOutput, error)

	// GetBalance returns a member's persisted ledger balance
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// GetTransactionHistory returns a group's distribution history
	GetTransactionHistory(ctx context.Context, input *GetTransactionHistoryInput) (*GetTransactionHistoryOutput, error)

	// GetUserTransactions returns the distributions a user sent or received in any group
	GetUserTransactions(ctx context.Context, input *GetUserTransactionsInput) (*GetUserTransactionsOutput, error)
}
