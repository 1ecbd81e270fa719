package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ModelsTestSuite struct {
	suite.Suite
	testNow time.Time
}

func (s *ModelsTestSuite) SetupTest() {
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestModelsTestSuite(t *testing.T) {
	suite.Run(t, new(ModelsTestSuite))
}

func (s *ModelsTestSuite) TestQuantityMapAddAndGet() {
	q := NewQuantityMap()

	s.Require().NoError(q.Add(DrinkTypeBeer, MeasureTypeSip, 2))
	s.Require().NoError(q.Add(DrinkTypeBeer, MeasureTypeSip, 3))
	s.Require().NoError(q.Add(DrinkTypeWine, MeasureTypeShot, 1))

	s.Equal(5, q.Get(DrinkTypeBeer, MeasureTypeSip))
	s.Equal(1, q.Get(DrinkTypeWine, MeasureTypeShot))
	s.Equal(0, q.Get(DrinkTypeCider, MeasureTypeChug))
	s.Equal(6, q.Total())
}

func (s *ModelsTestSuite) TestQuantityMapRejectsNegative() {
	q := NewQuantityMap()
	s.Require().NoError(q.Add(DrinkTypeBeer, MeasureTypeSip, 2))

	err := q.Add(DrinkTypeBeer, MeasureTypeSip, -3)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrNegativeQuantity))

	// Untouched on failure
	s.Equal(2, q.Get(DrinkTypeBeer, MeasureTypeSip))
}

func (s *ModelsTestSuite) TestQuantityMapNilAdd() {
	var q QuantityMap

	s.Equal(0, q.Get(DrinkTypeBeer, MeasureTypeSip))
	s.NoError(q.Add(DrinkTypeBeer, MeasureTypeSip, 0))
	s.ErrorIs(q.Add(DrinkTypeBeer, MeasureTypeSip, 2), ErrNilQuantityMap)
	s.ErrorIs(q.Add(DrinkTypeBeer, MeasureTypeSip, -1), ErrNegativeQuantity)
}

func (s *ModelsTestSuite) TestQuantityMapDropsZeroEntries() {
	q := NewQuantityMap()
	s.Require().NoError(q.Add(DrinkTypeBeer, MeasureTypeSip, 2))
	s.Require().NoError(q.Add(DrinkTypeBeer, MeasureTypeSip, -2))

	s.True(q.IsZero())
	s.Empty(q)
}

func (s *ModelsTestSuite) TestQuantityMapUnitsAreOrdered() {
	q := NewQuantityMap()
	s.Require().NoError(q.Add(DrinkTypeSpirit, MeasureTypeShot, 1))
	s.Require().NoError(q.Add(DrinkTypeBeer, MeasureTypeChug, 1))
	s.Require().NoError(q.Add(DrinkTypeBeer, MeasureTypeSip, 1))

	s.Equal([]DrinkUnit{
		{DrinkType: DrinkTypeBeer, MeasureType: MeasureTypeSip},
		{DrinkType: DrinkTypeBeer, MeasureType: MeasureTypeChug},
		{DrinkType: DrinkTypeSpirit, MeasureType: MeasureTypeShot},
	}, q.Units())
}

func (s *ModelsTestSuite) TestQuantityMapClone() {
	q := NewQuantityMap()
	s.Require().NoError(q.Add(DrinkTypeBeer, MeasureTypeSip, 2))

	c := q.Clone()
	s.Require().NoError(c.Add(DrinkTypeBeer, MeasureTypeSip, 1))

	s.Equal(2, q.Get(DrinkTypeBeer, MeasureTypeSip))
	s.Equal(3, c.Get(DrinkTypeBeer, MeasureTypeSip))
}

func (s *ModelsTestSuite) TestParseUnits() {
	d, err := ParseDrinkType(" Hard_Seltzer ")
	s.Require().NoError(err)
	s.Equal(DrinkTypeHardSeltzer, d)

	m, err := ParseMeasureType("CHUG")
	s.Require().NoError(err)
	s.Equal(MeasureTypeChug, m)

	_, err = ParseDrinkType("lemonade")
	s.Error(err)

	_, err = ParseMeasureType("pint")
	s.Error(err)

	s.Equal("Hard Seltzer Chug", DrinkUnit{DrinkType: d, MeasureType: m}.String())
}

func (s *ModelsTestSuite) TestUpsertWagerReplacesInPlace() {
	bet := &Bet{ID: "bet-1", Options: BuildOptions("bet-1", []string{"A", "B"})}

	replaced := bet.UpsertWager(&BetWager{UserID: "alice", OptionID: "bet-1-opt-0", Amount: 1})
	s.False(replaced)
	replaced = bet.UpsertWager(&BetWager{UserID: "bob", OptionID: "bet-1-opt-1", Amount: 2})
	s.False(replaced)
	replaced = bet.UpsertWager(&BetWager{UserID: "alice", OptionID: "bet-1-opt-1", Amount: 4})
	s.True(replaced)

	s.Require().Len(bet.Wagers, 2)
	s.Equal("alice", bet.Wagers[0].UserID)
	s.Equal(4, bet.Wagers[0].Amount)
	s.Equal("bet-1-opt-1", bet.WagerFor("alice").OptionID)
}

func (s *ModelsTestSuite) TestOrphanedWagers() {
	bet := &Bet{ID: "bet-1", Options: BuildOptions("bet-1", []string{"A"})}
	bet.UpsertWager(&BetWager{UserID: "alice", OptionID: "bet-1-opt-0", Amount: 1})
	bet.UpsertWager(&BetWager{UserID: "bob", OptionID: "bet-1-opt-1", Amount: 1})

	orphaned := bet.OrphanedWagers()
	s.Require().Len(orphaned, 1)
	s.Equal("bob", orphaned[0].UserID)
}

func (s *ModelsTestSuite) TestResolveAndReopen() {
	bet := &Bet{ID: "bet-1", Options: BuildOptions("bet-1", []string{"A", "B"})}

	bet.Resolve("bet-1-opt-1", s.testNow)
	s.True(bet.IsResolved())
	s.Equal(s.testNow, bet.ResolvedAt)

	bet.Reopen(s.testNow.Add(time.Minute))
	s.False(bet.IsResolved())
	s.False(bet.IsFinished)
	s.Empty(bet.CorrectOptionID)
	s.True(bet.ResolvedAt.IsZero())
}

func (s *ModelsTestSuite) TestGroupCloneIsDeep() {
	group := &Group{ID: "group-1", CreatedBy: "alice"}
	group.AddMember("alice", "Alice")
	group.Bets = []*Bet{{ID: "bet-1", Options: BuildOptions("bet-1", []string{"A"})}}

	clone := group.Clone()
	clone.AddMember("bob", "Bob")
	clone.Bets[0].Title = "changed"
	clone.Bets[0].UpsertWager(&BetWager{UserID: "bob", OptionID: "bet-1-opt-0", Amount: 1})

	s.False(group.IsMember("bob"))
	s.Empty(group.Bets[0].Title)
	s.Empty(group.Bets[0].Wagers)
}

func (s *ModelsTestSuite) TestGroupMembership() {
	group := &Group{ID: "group-1"}

	s.True(group.AddMember("alice", "Alice"))
	s.False(group.AddMember("alice", "Ali"))
	s.Equal("Ali", group.Username("alice"))

	s.True(group.RemoveMember("alice"))
	s.False(group.RemoveMember("alice"))
	s.False(group.IsMember("alice"))

	// Name survives removal for history rendering
	s.Equal("Ali", group.Username("alice"))
	s.Equal(UnknownUsername, group.Username("ghost"))
}
