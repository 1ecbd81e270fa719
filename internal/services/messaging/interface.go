package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetBetCreatedMessage returns an announcement for a new bet
	GetBetCreatedMessage(ctx context.Context, input *GetBetCreatedMessageInput) (*GetBetCreatedMessageOutput, error)

	// GetWagerPlacedMessage returns a message for a placed or replaced wager
	GetWagerPlacedMessage(ctx context.Context, input *GetWagerPlacedMessageInput) (*GetWagerPlacedMessageOutput, error)

	// GetBetResolvedMessage returns the announcement of a bet's outcome
	GetBetResolvedMessage(ctx context.Context, input *GetBetResolvedMessageInput) (*GetBetResolvedMessageOutput, error)

	// GetDistributionMessage returns a message for drinks handed out
	GetDistributionMessage(ctx context.Context, input *GetDistributionMessageInput) (*GetDistributionMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
