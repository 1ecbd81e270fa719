package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// GetBetCreatedMessageInput contains parameters for a new bet announcement
type GetBetCreatedMessageInput struct {
	// CreatorName is the display name of the member who opened the bet
	CreatorName string

	// Title is the bet's question
	Title string

	// OptionCount is how many options the bet has
	OptionCount int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetBetCreatedMessageOutput contains the announcement
type GetBetCreatedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetWagerPlacedMessageInput contains parameters for a wager message
type GetWagerPlacedMessageInput struct {
	PlayerName string
	OptionName string

	// Amount and Unit describe the stake, Unit is already display formatted
	Amount int
	Unit   string

	// Replaced indicates the player changed an earlier wager
	Replaced bool
}

// GetWagerPlacedMessageOutput contains the wager message
type GetWagerPlacedMessageOutput struct {
	Message string
}

// GetBetResolvedMessageInput contains parameters for a resolution announcement
type GetBetResolvedMessageInput struct {
	Title         string
	WinningOption string
	WinnerNames   []string
	LoserNames    []string

	// Changed is false when the bet was already resolved this way
	Changed bool
}

// GetBetResolvedMessageOutput contains the resolution announcement
type GetBetResolvedMessageOutput struct {
	Title   string
	Message string
}

// GetDistributionMessageInput contains parameters for a distribution message
type GetDistributionMessageInput struct {
	FromName string
	ToName   string
	Amount   int
	Unit     string
}

// GetDistributionMessageOutput contains the distribution message
type GetDistributionMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the betting service
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the message selection, zero seeds from the clock
	Seed int64
}
