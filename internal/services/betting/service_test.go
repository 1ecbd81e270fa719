package betting

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/betabeer/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/betabeer/internal/common/uuid/mocks"
	"github.com/KirkDiggler/betabeer/internal/events"
	eventMocks "github.com/KirkDiggler/betabeer/internal/events/mocks"
	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	groupRepo "github.com/KirkDiggler/betabeer/internal/repositories/group"
	groupMocks "github.com/KirkDiggler/betabeer/internal/repositories/group/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BettingServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGroupRepo *groupMocks.MockRepository
	mockPublisher *eventMocks.MockPublisher
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	service       Service
	ctx           context.Context

	// Test data
	testTime    time.Time
	testGroupID string
	testOwnerID string
	testBetID   string
	testGroup   *models.Group
}

func (s *BettingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGroupRepo = groupMocks.NewMockRepository(s.mockCtrl)
	s.mockPublisher = eventMocks.NewMockPublisher(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGroupID = "test-group-id"
	s.testOwnerID = "test-owner-id"
	s.testBetID = "test-bet-id"

	s.testGroup = &models.Group{
		ID:        s.testGroupID,
		Name:      "Friday drinks",
		CreatedBy: s.testOwnerID,
		CreatedAt: s.testTime,
		Version:   3,
		Bets: []*models.Bet{
			{
				ID:      s.testBetID,
				Title:   "Who skips the bar?",
				Options: models.BuildOptions(s.testBetID, []string{"A", "B"}),
				Wagers: []*models.BetWager{
					{UserID: s.testOwnerID, OptionID: models.OptionID(s.testBetID, 0), DrinkType: models.DrinkTypeBeer, MeasureType: models.MeasureTypeSip, Amount: 2},
					{UserID: "test-member-id", OptionID: models.OptionID(s.testBetID, 1), DrinkType: models.DrinkTypeWine, MeasureType: models.MeasureTypeShot, Amount: 3},
				},
				CreatedBy: s.testOwnerID,
			},
		},
	}
	s.testGroup.AddMember(s.testOwnerID, "Owner")
	s.testGroup.AddMember("test-member-id", "Member")

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-uuid").AnyTimes()

	service, err := New(&Config{
		GroupRepo:     s.mockGroupRepo,
		Publisher:     s.mockPublisher,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *BettingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBettingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BettingServiceTestSuite))
}

func (s *BettingServiceTestSuite) expectGetGroup() {
	s.mockGroupRepo.EXPECT().
		GetGroup(gomock.Any(), &groupRepo.GetGroupInput{GroupID: s.testGroupID}).
		Return(&groupRepo.GetGroupOutput{Group: s.testGroup.Clone()}, nil)
}

func (s *BettingServiceTestSuite) TestNew_Validation() {
	testCases := []struct {
		name string
		cfg  *Config
		err  error
	}{
		{name: "nil config", cfg: nil, err: ErrNilConfig},
		{name: "nil repo", cfg: &Config{Publisher: s.mockPublisher, Clock: s.mockClock, UUIDGenerator: s.mockUUID}, err: ErrNilGroupRepo},
		{name: "nil publisher", cfg: &Config{GroupRepo: s.mockGroupRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID}, err: ErrNilPublisher},
		{name: "nil clock", cfg: &Config{GroupRepo: s.mockGroupRepo, Publisher: s.mockPublisher, UUIDGenerator: s.mockUUID}, err: ErrNilClock},
		{name: "nil uuid", cfg: &Config{GroupRepo: s.mockGroupRepo, Publisher: s.mockPublisher, Clock: s.mockClock}, err: ErrNilUUIDGenerator},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := New(tc.cfg)
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *BettingServiceTestSuite) TestCreateGroup() {
	s.mockGroupRepo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *groupRepo.CreateGroupInput) (*groupRepo.CreateGroupOutput, error) {
			s.Equal("channel-1", input.Group.ID)
			s.Equal("Friday drinks", input.Group.Name)
			s.Equal([]string{s.testOwnerID}, input.Group.Members)
			s.Equal("Owner", input.Group.Username(s.testOwnerID))
			stored := input.Group.Clone()
			stored.Version = 1
			return &groupRepo.CreateGroupOutput{Group: stored}, nil
		})
	s.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *events.Event) error {
			s.Equal(events.EventTypeGroupCreated, event.Type)
			s.Equal("channel-1", event.GroupID)
			s.Equal(int64(1), event.Version)
			return nil
		})

	out, err := s.service.CreateGroup(s.ctx, &CreateGroupInput{
		GroupID:   "channel-1",
		Name:      "  Friday drinks ",
		OwnerID:   s.testOwnerID,
		OwnerName: "Owner",
	})
	s.Require().NoError(err)
	s.Equal(int64(1), out.Group.Version)
}

func (s *BettingServiceTestSuite) TestCreateGroup_Exists() {
	s.mockGroupRepo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		Return(nil, groupRepo.ErrGroupExists)

	_, err := s.service.CreateGroup(s.ctx, &CreateGroupInput{GroupID: "channel-1", Name: "x", OwnerID: s.testOwnerID})
	s.ErrorIs(err, ledger.ErrInvalidState)
}

func (s *BettingServiceTestSuite) TestCreateBet_Validation() {
	testCases := []struct {
		name  string
		input *CreateBetInput
	}{
		{name: "empty title", input: &CreateBetInput{GroupID: s.testGroupID, UserID: s.testOwnerID, Title: " ", Options: []string{"A"}}},
		{name: "no options", input: &CreateBetInput{GroupID: s.testGroupID, UserID: s.testOwnerID, Title: "Bet"}},
		{name: "empty option", input: &CreateBetInput{GroupID: s.testGroupID, UserID: s.testOwnerID, Title: "Bet", Options: []string{"A", ""}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.CreateBet(s.ctx, tc.input)
			s.ErrorIs(err, ledger.ErrValidation)
		})
	}
}

func (s *BettingServiceTestSuite) TestCreateBet_NotMember() {
	s.expectGetGroup()

	_, err := s.service.CreateBet(s.ctx, &CreateBetInput{
		GroupID: s.testGroupID,
		UserID:  "stranger",
		Title:   "Bet",
		Options: []string{"A"},
	})
	s.ErrorIs(err, ledger.ErrNotMember)
}

func (s *BettingServiceTestSuite) TestEmptyActorIsRejectedBeforeReading() {
	opt := models.OptionID(s.testBetID, 0)
	testCases := []struct {
		name string
		call func() error
	}{
		{name: "create bet", call: func() error {
			_, err := s.service.CreateBet(s.ctx, &CreateBetInput{GroupID: s.testGroupID, Title: "Bet", Options: []string{"A"}})
			return err
		}},
		{name: "edit bet", call: func() error {
			_, err := s.service.EditBet(s.ctx, &EditBetInput{GroupID: s.testGroupID, BetID: s.testBetID, Title: "Bet", Options: []string{"A"}})
			return err
		}},
		{name: "place wager", call: func() error {
			_, err := s.service.PlaceWager(s.ctx, &PlaceWagerInput{
				GroupID: s.testGroupID, BetID: s.testBetID, OptionID: opt,
				DrinkType: models.DrinkTypeBeer, MeasureType: models.MeasureTypeSip, Amount: 4,
			})
			return err
		}},
		{name: "resolve bet", call: func() error {
			_, err := s.service.ResolveBet(s.ctx, &ResolveBetInput{GroupID: s.testGroupID, BetID: s.testBetID, OptionID: opt})
			return err
		}},
		{name: "reopen bet", call: func() error {
			_, err := s.service.ReopenBet(s.ctx, &ReopenBetInput{GroupID: s.testGroupID, BetID: s.testBetID})
			return err
		}},
		{name: "delete bet", call: func() error {
			_, err := s.service.DeleteBet(s.ctx, &DeleteBetInput{GroupID: s.testGroupID, BetID: s.testBetID})
			return err
		}},
		{name: "distribute drinks", call: func() error {
			_, err := s.service.DistributeDrinks(s.ctx, &DistributeDrinksInput{GroupID: s.testGroupID})
			return err
		}},
		{name: "remove member", call: func() error {
			_, err := s.service.RemoveMember(s.ctx, &RemoveMemberInput{GroupID: s.testGroupID, UserID: "test-member-id"})
			return err
		}},
		{name: "delete group", call: func() error {
			_, err := s.service.DeleteGroup(s.ctx, &DeleteGroupInput{GroupID: s.testGroupID})
			return err
		}},
	}

	// No repository expectations: nothing may be read or written
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.ErrorIs(tc.call(), ledger.ErrValidation)
		})
	}
}

func (s *BettingServiceTestSuite) TestRequireBetAdmin_EmptyCallerNeverMatches() {
	group := &models.Group{ID: s.testGroupID, CreatedBy: s.testOwnerID}
	bet := &models.Bet{ID: s.testBetID}

	s.ErrorIs(requireBetAdmin(group, bet, ""), ledger.ErrNotPermitted)
	s.NoError(requireBetAdmin(group, bet, s.testOwnerID))
}

func (s *BettingServiceTestSuite) TestPlaceWager_Validation() {
	_, err := s.service.PlaceWager(s.ctx, &PlaceWagerInput{
		GroupID: s.testGroupID, BetID: s.testBetID, UserID: s.testOwnerID,
		OptionID: models.OptionID(s.testBetID, 0), DrinkType: models.DrinkTypeBeer, MeasureType: models.MeasureTypeSip,
	})
	s.ErrorIs(err, ledger.ErrValidation)

	_, err = s.service.PlaceWager(s.ctx, &PlaceWagerInput{
		GroupID: s.testGroupID, BetID: s.testBetID, UserID: s.testOwnerID,
		OptionID: models.OptionID(s.testBetID, 0), DrinkType: "mead", MeasureType: models.MeasureTypeSip, Amount: 1,
	})
	s.ErrorIs(err, ledger.ErrValidation)
}

func (s *BettingServiceTestSuite) TestResolveBet_CommitsSettlement() {
	s.expectGetGroup()
	s.mockGroupRepo.EXPECT().
		CommitGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *groupRepo.CommitGroupInput) (*groupRepo.CommitGroupOutput, error) {
			s.Equal(int64(3), input.Group.Version)
			s.Equal([]models.BalanceDelta{
				{UserID: "test-member-id", Field: models.BalanceFieldConsume, DrinkType: models.DrinkTypeWine, MeasureType: models.MeasureTypeShot, Amount: 3},
				{UserID: s.testOwnerID, Field: models.BalanceFieldDistribute, DrinkType: models.DrinkTypeBeer, MeasureType: models.MeasureTypeSip, Amount: 2},
			}, input.Deltas)
			s.Empty(input.Transactions)
			return &groupRepo.CommitGroupOutput{Version: 4}, nil
		})
	s.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *events.Event) error {
			s.Equal(events.EventTypeBetResolved, event.Type)
			s.Equal(s.testBetID, event.BetID)
			s.Equal(int64(4), event.Version)
			s.Equal(models.OptionID(s.testBetID, 0), event.Attributes["option_id"])
			return nil
		})

	out, err := s.service.ResolveBet(s.ctx, &ResolveBetInput{
		GroupID:  s.testGroupID,
		BetID:    s.testBetID,
		UserID:   s.testOwnerID,
		OptionID: models.OptionID(s.testBetID, 0),
	})
	s.Require().NoError(err)
	s.True(out.Changed)
	s.True(out.Bet.IsFinished)
	s.Equal(s.testTime, out.Bet.ResolvedAt)
}

func (s *BettingServiceTestSuite) TestResolveBet_SameOptionWritesNothing() {
	s.testGroup.Bets[0].Resolve(models.OptionID(s.testBetID, 0), s.testTime)
	s.expectGetGroup()

	out, err := s.service.ResolveBet(s.ctx, &ResolveBetInput{
		GroupID:  s.testGroupID,
		BetID:    s.testBetID,
		UserID:   s.testOwnerID,
		OptionID: models.OptionID(s.testBetID, 0),
	})
	s.Require().NoError(err)
	s.False(out.Changed)
	s.Equal(models.OptionID(s.testBetID, 0), out.Bet.CorrectOptionID)
}

func (s *BettingServiceTestSuite) TestResolveBet_UnknownOption() {
	s.expectGetGroup()

	_, err := s.service.ResolveBet(s.ctx, &ResolveBetInput{
		GroupID:  s.testGroupID,
		BetID:    s.testBetID,
		UserID:   s.testOwnerID,
		OptionID: "nope",
	})
	s.ErrorIs(err, ledger.ErrNotFound)
}

func (s *BettingServiceTestSuite) TestResolveBet_VersionConflict() {
	s.expectGetGroup()
	s.mockGroupRepo.EXPECT().
		CommitGroup(gomock.Any(), gomock.Any()).
		Return(nil, groupRepo.ErrVersionConflict)

	_, err := s.service.ResolveBet(s.ctx, &ResolveBetInput{
		GroupID:  s.testGroupID,
		BetID:    s.testBetID,
		UserID:   s.testOwnerID,
		OptionID: models.OptionID(s.testBetID, 1),
	})
	s.ErrorIs(err, ledger.ErrConflict)
}

func (s *BettingServiceTestSuite) TestReopenBet_NegativeBalanceMapsToInsufficient() {
	s.testGroup.Bets[0].Resolve(models.OptionID(s.testBetID, 0), s.testTime)
	s.expectGetGroup()
	s.mockGroupRepo.EXPECT().
		CommitGroup(gomock.Any(), gomock.Any()).
		Return(nil, &groupRepo.NegativeBalanceError{
			UserID:  s.testOwnerID,
			Field:   models.BalanceFieldDistribute,
			Unit:    models.DrinkUnit{DrinkType: models.DrinkTypeBeer, MeasureType: models.MeasureTypeSip},
			Current: 0,
			Delta:   -2,
		})

	_, err := s.service.ReopenBet(s.ctx, &ReopenBetInput{
		GroupID: s.testGroupID,
		BetID:   s.testBetID,
		UserID:  s.testOwnerID,
	})
	s.Require().Error(err)
	s.ErrorIs(err, ledger.ErrInsufficientBalance)

	var balanceErr *ledger.InsufficientBalanceError
	s.Require().True(errors.As(err, &balanceErr))
	s.Equal(2, balanceErr.Requested)
	s.Equal(0, balanceErr.Available)
}

func (s *BettingServiceTestSuite) TestReopenBet_NotPermitted() {
	s.testGroup.Bets[0].Resolve(models.OptionID(s.testBetID, 0), s.testTime)
	s.expectGetGroup()

	_, err := s.service.ReopenBet(s.ctx, &ReopenBetInput{
		GroupID: s.testGroupID,
		BetID:   s.testBetID,
		UserID:  "test-member-id",
	})
	s.ErrorIs(err, ledger.ErrNotPermitted)
}

func (s *BettingServiceTestSuite) TestPublishFailureIsNotReturned() {
	s.expectGetGroup()
	s.mockGroupRepo.EXPECT().
		CommitGroup(gomock.Any(), gomock.Any()).
		Return(&groupRepo.CommitGroupOutput{Version: 4}, nil)
	s.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(errors.New("nats: connection closed"))

	out, err := s.service.DeleteBet(s.ctx, &DeleteBetInput{
		GroupID: s.testGroupID,
		BetID:   s.testBetID,
		UserID:  s.testOwnerID,
	})
	s.Require().NoError(err)
	s.NotNil(out)
}

func (s *BettingServiceTestSuite) TestGetGroup_NotFound() {
	s.mockGroupRepo.EXPECT().
		GetGroup(gomock.Any(), gomock.Any()).
		Return(nil, groupRepo.ErrGroupNotFound)

	_, err := s.service.GetGroup(s.ctx, &GetGroupInput{GroupID: "missing"})
	s.ErrorIs(err, ledger.ErrNotFound)
}

func (s *BettingServiceTestSuite) TestDeleteGroup_OwnerOnly() {
	s.expectGetGroup()

	_, err := s.service.DeleteGroup(s.ctx, &DeleteGroupInput{GroupID: s.testGroupID, UserID: "test-member-id"})
	s.ErrorIs(err, ledger.ErrNotPermitted)
}

func (s *BettingServiceTestSuite) TestDistributeDrinks_RejectedBatchWritesNothing() {
	s.expectGetGroup()
	balance := models.NewBalance(s.testGroupID, s.testOwnerID)
	s.Require().NoError(balance.DrinksToDistribute.Add(models.DrinkTypeBeer, models.MeasureTypeSip, 1))
	s.mockGroupRepo.EXPECT().
		GetBalance(gomock.Any(), &groupRepo.GetBalanceInput{GroupID: s.testGroupID, UserID: s.testOwnerID}).
		Return(&groupRepo.GetBalanceOutput{Balance: balance}, nil)

	_, err := s.service.DistributeDrinks(s.ctx, &DistributeDrinksInput{
		GroupID:    s.testGroupID,
		FromUserID: s.testOwnerID,
		Distributions: []ledger.Distribution{
			{UserID: "test-member-id", DrinkType: models.DrinkTypeBeer, MeasureType: models.MeasureTypeSip, Amount: 2},
		},
	})
	s.ErrorIs(err, ledger.ErrInsufficientBalance)
}
