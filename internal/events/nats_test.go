package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type fakeConn struct {
	subjects []string
	payloads [][]byte
	err      error
	drained  bool
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.subjects = append(c.subjects, subject)
	c.payloads = append(c.payloads, data)
	return nil
}

func (c *fakeConn) Drain() error {
	c.drained = true
	return nil
}

type NATSPublisherTestSuite struct {
	suite.Suite
	conn      *fakeConn
	publisher *NATSPublisher
	testNow   time.Time
}

func (s *NATSPublisherTestSuite) SetupTest() {
	s.conn = &fakeConn{}
	s.publisher = newNATSPublisher(s.conn, "")
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestNATSPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(NATSPublisherTestSuite))
}

func (s *NATSPublisherTestSuite) TestPublish() {
	event := &Event{
		ID:         "event-1",
		Type:       EventTypeBetResolved,
		GroupID:    "channel-1",
		BetID:      "bet-1",
		UserID:     "alice",
		Version:    4,
		Attributes: map[string]string{"option_id": "bet-1-opt-0"},
		Timestamp:  s.testNow,
	}

	err := s.publisher.Publish(context.Background(), event)
	s.Require().NoError(err)

	s.Equal([]string{"betabeer.channel-1.bet_resolved"}, s.conn.subjects)

	var decoded Event
	s.Require().NoError(json.Unmarshal(s.conn.payloads[0], &decoded))
	s.Equal("bet-1", decoded.BetID)
	s.Equal(int64(4), decoded.Version)
	s.Equal("bet-1-opt-0", decoded.Attributes["option_id"])
	s.True(s.testNow.Equal(decoded.Timestamp))
}

func (s *NATSPublisherTestSuite) TestSubject_SanitisesGroupID() {
	publisher := newNATSPublisher(s.conn, "ledger")
	s.Equal("ledger.a_b_c.wager_placed", publisher.Subject(&Event{GroupID: "a.b c", Type: EventTypeWagerPlaced}))
	s.Equal("ledger._.group_created", publisher.Subject(&Event{Type: EventTypeGroupCreated}))
}

func (s *NATSPublisherTestSuite) TestPublish_Errors() {
	s.Error(s.publisher.Publish(context.Background(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(s.publisher.Publish(ctx, &Event{Type: EventTypeBetCreated}), context.Canceled)

	s.conn.err = errors.New("connection closed")
	s.Error(s.publisher.Publish(context.Background(), &Event{Type: EventTypeBetCreated}))
	s.Empty(s.conn.subjects)
}

func (s *NATSPublisherTestSuite) TestClose_Drains() {
	s.Require().NoError(s.publisher.Close())
	s.True(s.conn.drained)
}

func (s *NATSPublisherTestSuite) TestNewNATS_Validation() {
	_, err := NewNATS(nil)
	s.Error(err)

	_, err = NewNATS(&NATSConfig{})
	s.Error(err)
}

func (s *NATSPublisherTestSuite) TestNoopPublisher() {
	publisher := NewNoop()
	s.NoError(publisher.Publish(context.Background(), &Event{Type: EventTypeBetCreated}))
	s.NoError(publisher.Publish(context.Background(), nil))
	s.NoError(publisher.Close())
}
