package betting

import (
	"github.com/KirkDiggler/betabeer/internal/common/clock"
	"github.com/KirkDiggler/betabeer/internal/common/uuid"
	"github.com/KirkDiggler/betabeer/internal/events"
	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	groupRepo "github.com/KirkDiggler/betabeer/internal/repositories/group"
	log "github.com/sirupsen/logrus"
)

// Config holds the dependencies of the betting service
type Config struct {
	// GroupRepo persists groups and balances
	GroupRepo groupRepo.Repository

	// Publisher receives an event after every committed change
	Publisher events.Publisher

	// Clock stamps bets, wagers and transactions
	Clock clock.Clock

	// UUIDGenerator creates group, bet, transaction and event IDs
	UUIDGenerator uuid.UUID

	// Logger is optional and defaults to the logrus standard logger
	Logger log.FieldLogger
}

// CreateGroupInput contains parameters for creating a group
type CreateGroupInput struct {
	// GroupID is optional; a UUID is generated when empty
	GroupID string

	Name      string
	OwnerID   string
	OwnerName string
}

// CreateGroupOutput contains the created group
type CreateGroupOutput struct {
	Group *models.Group
}

// GetGroupInput contains parameters for retrieving a group
type GetGroupInput struct {
	GroupID string
}

// GetGroupOutput contains the group
type GetGroupOutput struct {
	Group *models.Group
}

// DeleteGroupInput contains parameters for deleting a group
type DeleteGroupInput struct {
	GroupID string

	// UserID must be the group owner
	UserID string
}

// DeleteGroupOutput is empty
type DeleteGroupOutput struct{}

// AddMemberInput contains parameters for adding a member
type AddMemberInput struct {
	GroupID  string
	UserID   string
	Username string
}

// AddMemberOutput contains the updated group
type AddMemberOutput struct {
	Group *models.Group

	// Added is false when the user was already a member
	Added bool
}

// RemoveMemberInput contains parameters for removing a member
type RemoveMemberInput struct {
	GroupID string

	// ActorID is the user doing the removal: the owner or the member themselves
	ActorID string

	// UserID is the member being removed
	UserID string
}

// RemoveMemberOutput contains the updated group
type RemoveMemberOutput struct {
	Group *models.Group
}

// IsMemberInput contains parameters for a membership check
type IsMemberInput struct {
	GroupID string
	UserID  string
}

// IsMemberOutput contains the result of a membership check
type IsMemberOutput struct {
	IsMember bool
}

// ListGroupsForUserInput contains parameters for listing a user's groups
type ListGroupsForUserInput struct {
	UserID string
}

// ListGroupsForUserOutput contains the user's groups ordered by ID
type ListGroupsForUserOutput struct {
	Groups []*models.Group
}

// CreateBetInput contains parameters for creating a bet
type CreateBetInput struct {
	GroupID string
	UserID  string
	Title   string

	// Options are the option names in display order
	Options []string
}

// CreateBetOutput contains the new bet
type CreateBetOutput struct {
	Bet *models.Bet
}

// EditBetInput contains parameters for editing a bet
type EditBetInput struct {
	GroupID string
	BetID   string
	UserID  string
	Title   string
	Options []string
}

// EditBetOutput contains the edited bet
type EditBetOutput struct {
	Bet *models.Bet

	// OrphanedWagers reference options the edit removed
	OrphanedWagers []*models.BetWager
}

// PlaceWagerInput contains parameters for placing a wager
type PlaceWagerInput struct {
	GroupID     string
	BetID       string
	UserID      string
	Username    string
	OptionID    string
	DrinkType   models.DrinkType
	MeasureType models.MeasureType
	Amount      int
}

// PlaceWagerOutput contains the updated bet and the stored wager
type PlaceWagerOutput struct {
	Bet   *models.Bet
	Wager *models.BetWager

	// Replaced is true when the user's previous wager was overwritten
	Replaced bool
}

// ResolveBetInput contains parameters for resolving a bet
type ResolveBetInput struct {
	GroupID  string
	BetID    string
	UserID   string
	OptionID string
}

// ResolveBetOutput contains the resolved bet
type ResolveBetOutput struct {
	Bet *models.Bet

	// Changed is false when the bet was already resolved to the same option
	Changed bool

	// OrphanedWagers are left out of the settlement
	OrphanedWagers []*models.BetWager
}

// ReopenBetInput contains parameters for reopening a bet
type ReopenBetInput struct {
	GroupID string
	BetID   string

	// UserID must be the group owner or the bet's creator
	UserID string
}

// ReopenBetOutput contains the reopened bet
type ReopenBetOutput struct {
	Bet *models.Bet

	// Changed is false when the bet was already open
	Changed bool
}

// DeleteBetInput contains parameters for deleting a bet
type DeleteBetInput struct {
	GroupID string
	BetID   string

	// UserID must be the group owner or the bet's creator
	UserID string
}

// DeleteBetOutput is empty
type DeleteBetOutput struct{}

// GetGroupStatsInput contains parameters for computing stats
type GetGroupStatsInput struct {
	GroupID string
}

// GetGroupStatsOutput contains the leaderboard
type GetGroupStatsOutput struct {
	Stats *ledger.GroupStats
}

// DistributeDrinksInput contains parameters for a distribution batch
type DistributeDrinksInput struct {
	GroupID       string
	FromUserID    string
	Distributions []ledger.Distribution
}

// DistributeDrinksOutput contains the recorded transactions
type DistributeDrinksOutput struct {
	Transactions []*models.DrinkTransaction

	// Balance is the distributor's balance after the batch
	Balance *models.Balance
}

// GetBalanceInput contains parameters for retrieving a balance
type GetBalanceInput struct {
	GroupID string
	UserID  string
}

// GetBalanceOutput contains the balance
type GetBalanceOutput struct {
	Balance *models.Balance
}

// GetTransactionHistoryInput contains parameters for retrieving a group's history
type GetTransactionHistoryInput struct {
	GroupID string
}

// GetTransactionHistoryOutput contains the distribution history, oldest first
type GetTransactionHistoryOutput struct {
	Transactions []*models.DrinkTransaction
}

// GetUserTransactionsInput contains parameters for retrieving a user's transactions
type GetUserTransactionsInput struct {
	UserID string
}

// GetUserTransactionsOutput contains the transactions, oldest first
type GetUserTransactionsOutput struct {
	Transactions []*models.DrinkTransaction
}
