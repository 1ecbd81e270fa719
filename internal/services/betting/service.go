package betting

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/betabeer/internal/common/clock"
	"github.com/KirkDiggler/betabeer/internal/common/uuid"
	"github.com/KirkDiggler/betabeer/internal/events"
	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	groupRepo "github.com/KirkDiggler/betabeer/internal/repositories/group"
	log "github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	groupRepo     groupRepo.Repository
	publisher     events.Publisher
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        log.FieldLogger
}

// New creates a new betting service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GroupRepo == nil {
		return nil, ErrNilGroupRepo
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &service{
		groupRepo:     cfg.GroupRepo,
		publisher:     cfg.Publisher,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}, nil
}

// groupChange is what a mutation adds to a commit besides the new group state
type groupChange struct {
	// Deltas are balance changes other than bet settlement
	Deltas []models.BalanceDelta

	// Transactions are new audit records
	Transactions []*models.DrinkTransaction

	// Event is published after the commit
	Event *events.Event
}

// mutation edits a copy of the group. Returning a nil change means nothing
// changed and nothing is written.
type mutation func(group *models.Group) (*groupChange, error)

// updateGroup runs one read, modify and commit cycle on behalf of a member.
// The actor is required and must belong to the group.
func (s *service) updateGroup(ctx context.Context, groupID, actorID string, mutate mutation) (*models.Group, bool, error) {
	if actorID == "" {
		return nil, false, invalid("user is required")
	}

	before, err := s.loadGroup(ctx, groupID)
	if err != nil {
		return nil, false, err
	}
	if !before.IsMember(actorID) {
		return nil, false, fmt.Errorf("%w: %s in group %s", ledger.ErrNotMember, actorID, groupID)
	}

	return s.commitChange(ctx, before, mutate)
}

// commitChange applies a mutation to a copy of the group and commits it.
// Settlement deltas are derived from the difference between the old and new
// bets, so persisted balances always equal the settlement of the current bets
// plus distributions. It returns the resulting group and whether anything was
// written.
func (s *service) commitChange(ctx context.Context, before *models.Group, mutate mutation) (*models.Group, bool, error) {
	groupID := before.ID

	after := before.Clone()
	change, err := mutate(after)
	if err != nil {
		return nil, false, err
	}
	if change == nil {
		return before, false, nil
	}

	deltas := ledger.MergeDeltas(append(ledger.Reconcile(before, after), change.Deltas...))

	out, err := s.groupRepo.CommitGroup(ctx, &groupRepo.CommitGroupInput{
		Group:        after,
		Deltas:       deltas,
		Transactions: change.Transactions,
	})
	if err != nil {
		return nil, false, mapRepoError(err, groupID)
	}
	after.Version = out.Version

	if change.Event != nil {
		change.Event.GroupID = groupID
		change.Event.Version = after.Version
		s.publish(ctx, change.Event)
	}

	return after, true, nil
}

func (s *service) loadGroup(ctx context.Context, groupID string) (*models.Group, error) {
	if groupID == "" {
		return nil, invalid("group ID is required")
	}

	out, err := s.groupRepo.GetGroup(ctx, &groupRepo.GetGroupInput{GroupID: groupID})
	if err != nil {
		return nil, mapRepoError(err, groupID)
	}
	return out.Group, nil
}

// newEvent stamps an event; GroupID and Version are filled in on commit
func (s *service) newEvent(eventType events.EventType, userID, betID string) *events.Event {
	return &events.Event{
		ID:        s.uuidGenerator.NewUUID(),
		Type:      eventType,
		BetID:     betID,
		UserID:    userID,
		Timestamp: s.clock.Now(),
	}
}

// publish sends an event after a commit. The change is already stored, so
// failures are only logged.
func (s *service) publish(ctx context.Context, event *events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithFields(log.Fields{
			"eventType": event.Type,
			"groupID":   event.GroupID,
			"betID":     event.BetID,
			"error":     err,
		}).Error("Failed to publish event")
	}
}

// mapRepoError translates store errors into the ledger error kinds
func mapRepoError(err error, groupID string) error {
	var negative *groupRepo.NegativeBalanceError
	switch {
	case errors.Is(err, groupRepo.ErrGroupNotFound):
		return fmt.Errorf("%w: group %s", ledger.ErrNotFound, groupID)
	case errors.Is(err, groupRepo.ErrVersionConflict):
		return fmt.Errorf("%w: group %s", ledger.ErrConflict, groupID)
	case errors.Is(err, groupRepo.ErrGroupExists):
		return fmt.Errorf("%w: group %s already exists", ledger.ErrInvalidState, groupID)
	case errors.As(err, &negative):
		return &ledger.InsufficientBalanceError{
			UserID:    negative.UserID,
			Field:     negative.Field,
			Unit:      negative.Unit,
			Requested: -negative.Delta,
			Available: negative.Current,
		}
	default:
		return err
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ledger.ErrValidation, fmt.Sprintf(format, args...))
}

func betNotFound(betID string) error {
	return fmt.Errorf("%w: bet %s", ledger.ErrNotFound, betID)
}
