package group

import "github.com/KirkDiggler/betabeer/internal/models"

// CreateGroupInput contains parameters for creating a group
type CreateGroupInput struct {
	Group *models.Group
}

// CreateGroupOutput contains the stored group
type CreateGroupOutput struct {
	Group *models.Group
}

// GetGroupInput contains parameters for retrieving a group
type GetGroupInput struct {
	GroupID string
}

// GetGroupOutput contains the result of retrieving a group
type GetGroupOutput struct {
	Group *models.Group
}

// CommitGroupInput contains parameters for committing a group change
type CommitGroupInput struct {
	// Group is the new state. Its Version must equal the stored version.
	Group *models.Group

	// Deltas are applied to member balances in the same write
	Deltas []models.BalanceDelta

	// Transactions are new audit records to index by sender and recipient
	Transactions []*models.DrinkTransaction
}

// CommitGroupOutput contains the result of a commit
type CommitGroupOutput struct {
	// Version is the stored version after the commit
	Version int64
}

// DeleteGroupInput contains parameters for deleting a group
type DeleteGroupInput struct {
	GroupID string
}

// GetGroupIDsForUserInput contains parameters for listing a user's groups
type GetGroupIDsForUserInput struct {
	UserID string
}

// GetGroupIDsForUserOutput contains the group IDs, sorted
type GetGroupIDsForUserOutput struct {
	GroupIDs []string
}

// GetBalanceInput contains parameters for retrieving a balance
type GetBalanceInput struct {
	GroupID string
	UserID  string
}

// GetBalanceOutput contains the balance; members with no history get an empty one
type GetBalanceOutput struct {
	Balance *models.Balance
}

// GetUserTransactionsInput contains parameters for retrieving a user's audit records
type GetUserTransactionsInput struct {
	UserID string
}

// GetUserTransactionsOutput contains the records, oldest first
type GetUserTransactionsOutput struct {
	Transactions []*models.DrinkTransaction
}
