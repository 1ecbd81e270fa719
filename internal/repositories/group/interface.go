package group

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/betabeer/internal/repositories/group Repository

import (
	"context"
)

// Repository defines the interface for group and ledger balance persistence
type Repository interface {
	// CreateGroup stores a new group record and indexes its members
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error)

	// GetGroup retrieves a group by ID
	GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error)

	// CommitGroup writes a new group state, its balance deltas and audit records
	// as one atomic write. It fails with ErrVersionConflict if the stored group
	// changed since it was read.
	CommitGroup(ctx context.Context, input *CommitGroupInput) (*CommitGroupOutput, error)

	// DeleteGroup removes a group, its balances and its member indexes
	DeleteGroup(ctx context.Context, input *DeleteGroupInput) error

	// GetGroupIDsForUser lists the groups a user belongs to
	GetGroupIDsForUser(ctx context.Context, input *GetGroupIDsForUserInput) (*GetGroupIDsForUserOutput, error)

	// GetBalance retrieves the persisted ledger balance of one member
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// GetUserTransactions retrieves the audit records a user sent or received across groups
	GetUserTransactions(ctx context.Context, input *GetUserTransactionsInput) (*GetUserTransactionsOutput, error)
}
