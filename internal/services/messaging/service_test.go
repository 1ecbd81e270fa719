package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service *service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetBetCreatedMessage() {
	out, err := s.service.GetBetCreatedMessage(s.ctx, &GetBetCreatedMessageInput{
		CreatorName: "Alice",
		Title:       "Who skips the bar?",
		OptionCount: 2,
	})
	s.Require().NoError(err)
	s.Equal(ToneFunny, out.Tone)
	s.Contains(out.Message, "Who skips the bar?")

	neutral, err := s.service.GetBetCreatedMessage(s.ctx, &GetBetCreatedMessageInput{
		CreatorName:   "Alice",
		Title:         "Who skips the bar?",
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("Alice opened a bet: Who skips the bar?", neutral.Message)

	_, err = s.service.GetBetCreatedMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestSameSeedSameMessages() {
	other, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)

	input := &GetWagerPlacedMessageInput{PlayerName: "Bob", OptionName: "A", Amount: 2, Unit: "Beer Sip"}
	for i := 0; i < 5; i++ {
		a, err := s.service.GetWagerPlacedMessage(s.ctx, input)
		s.Require().NoError(err)
		b, err := other.GetWagerPlacedMessage(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(a.Message, b.Message)
		s.Contains(a.Message, "2 Beer Sip")
	}
}

func (s *MessagingServiceTestSuite) TestGetBetResolvedMessage() {
	out, err := s.service.GetBetResolvedMessage(s.ctx, &GetBetResolvedMessageInput{
		Title:         "Who skips the bar?",
		WinningOption: "A",
		WinnerNames:   []string{"Alice"},
		LoserNames:    []string{"Bob", "Carol", "Dave"},
		Changed:       true,
	})
	s.Require().NoError(err)
	s.NotEmpty(out.Title)
	s.Contains(out.Message, "Bob, Carol and Dave")

	nobody, err := s.service.GetBetResolvedMessage(s.ctx, &GetBetResolvedMessageInput{
		Title: "Rain?", WinningOption: "Yes", Changed: true,
	})
	s.Require().NoError(err)
	s.Contains(nobody.Message, "nobody had the guts")

	same, err := s.service.GetBetResolvedMessage(s.ctx, &GetBetResolvedMessageInput{
		Title: "Rain?", WinningOption: "Yes",
	})
	s.Require().NoError(err)
	s.Equal("Already Settled", same.Title)
}

func (s *MessagingServiceTestSuite) TestGetDistributionMessage() {
	out, err := s.service.GetDistributionMessage(s.ctx, &GetDistributionMessageInput{
		FromName: "Alice", ToName: "Bob", Amount: 3, Unit: "Wine Shot",
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "3 Wine Shot")
	s.Contains(out.Message, "Bob")
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		name  string
		err   error
		title string
	}{
		{
			name: "insufficient balance",
			err: fmt.Errorf("distribute: %w", &ledger.InsufficientBalanceError{
				UserID:    "alice",
				Field:     models.BalanceFieldDistribute,
				Unit:      models.DrinkUnit{DrinkType: models.DrinkTypeBeer, MeasureType: models.MeasureTypeSip},
				Requested: 3,
				Available: 1,
			}),
			title: "Not So Fast",
		},
		{name: "not member", err: fmt.Errorf("%w: bob", ledger.ErrNotMember), title: "Who Are You?"},
		{name: "not permitted", err: ledger.ErrNotPermitted, title: "Nice Try"},
		{name: "not found", err: fmt.Errorf("%w: bet x", ledger.ErrNotFound), title: "Not Found"},
		{name: "conflict", err: ledger.ErrConflict, title: "Too Slow"},
		{name: "unknown", err: errors.New("redis down"), title: "Error"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tc.err})
			s.Require().NoError(err)
			s.Equal(tc.title, out.Title)
			s.NotEmpty(out.Message)
		})
	}

	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Err: fmt.Errorf("%w: bet title is required", ledger.ErrValidation),
	})
	s.Require().NoError(err)
	s.Equal("bet title is required", out.Message)
}

func (s *MessagingServiceTestSuite) TestJoinNames() {
	s.Equal("", joinNames(nil))
	s.Equal("a", joinNames([]string{"a"}))
	s.Equal("a and b", joinNames([]string{"a", "b"}))
	s.Equal("a, b and c", joinNames([]string{"a", "b", "c"}))
}
