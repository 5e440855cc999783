//go:build integration

package publisher_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	id "larder/pkg/domain"
	"larder/pkg/platform/audit"
	"larder/pkg/platform/audit/publisher"
	"larder/pkg/testutil/containers"
)

type KafkaSinkSuite struct {
	suite.Suite
	redpanda *containers.RedpandaContainer
}

func TestKafkaSinkSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaSinkSuite))
}

func (s *KafkaSinkSuite) SetupSuite() {
	s.redpanda = containers.GetManager().GetRedpanda(s.T())
}

// TestProduceAndConsume appends events through the sink and reads them back
// with a raw consumer: same kitchen key, original order, intact payload.
func (s *KafkaSinkSuite) TestProduceAndConsume() {
	ctx := context.Background()
	topic := "larder.audit.test." + uuid.NewString()

	sink, err := publisher.NewKafkaSink(s.redpanda.Brokers, topic)
	s.Require().NoError(err)
	defer sink.Close()

	kitchenID := id.KitchenID(uuid.New())
	actor := id.PrincipalID(uuid.New())
	events := []audit.Event{
		{Timestamp: time.Now().UTC(), KitchenID: kitchenID, PrincipalID: actor, Action: string(audit.EventKitchenCreated)},
		{Timestamp: time.Now().UTC(), KitchenID: kitchenID, PrincipalID: actor, Action: string(audit.EventMemberInvited), SubjectID: id.PrincipalID(uuid.New())},
	}
	for _, event := range events {
		s.Require().NoError(sink.Append(ctx, event))
	}

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	var records []*kgo.Record
	deadline := time.Now().Add(30 * time.Second)
	for len(records) < len(events) && time.Now().Before(deadline) {
		pollCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		fetches := consumer.PollFetches(pollCtx)
		cancel()
		fetches.EachRecord(func(record *kgo.Record) {
			records = append(records, record)
		})
	}
	s.Require().Len(records, len(events))

	for i, record := range records {
		s.Equal(kitchenID.String(), string(record.Key), "events are keyed by kitchen")
		var got audit.Event
		s.Require().NoError(json.Unmarshal(record.Value, &got))
		s.Equal(events[i].Action, got.Action)
		s.Equal(kitchenID, got.KitchenID)
	}
}

// TestTopicIsCreatedOnConnect verifies a second sink for the same topic does
// not fail on the already-exists response.
func (s *KafkaSinkSuite) TestTopicIsCreatedOnConnect() {
	topic := "larder.audit.test." + uuid.NewString()

	first, err := publisher.NewKafkaSink(s.redpanda.Brokers, topic)
	s.Require().NoError(err)
	first.Close()

	second, err := publisher.NewKafkaSink(s.redpanda.Brokers, topic)
	s.Require().NoError(err)
	second.Close()
}
