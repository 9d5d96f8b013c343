package eventbus_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trenddit/eventbus"
	"trenddit/events"
)

func TestJSONEventRoundTrip(t *testing.T) {
	in := events.IngestCompletedEvent{
		BaseEvent: events.BaseEvent{
			Type:      events.IngestCompleted,
			Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			Source:    "reddit",
		},
		Keyword:  "golang",
		Fetched:  10,
		Inserted: 7,
		Skipped:  3,
	}

	evt, err := eventbus.NewJSONEvent(in)
	assert.NoError(t, err)
	assert.NotEmpty(t, evt.ID)

	out, err := eventbus.DecodeJSON[events.IngestCompletedEvent](evt)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeJSONBadPayload(t *testing.T) {
	_, err := eventbus.DecodeJSON[events.IngestCompletedEvent](eventbus.Event{
		ID:      "x",
		Payload: []byte("not json"),
	})
	assert.Error(t, err)
}

func TestPublishCancelledContext(t *testing.T) {
	// No broker behind this address; the message just sits in the local
	// producer queue while the cancelled context unblocks Publish. The late
	// delivery report must land in the buffered channel without panicking.
	bus, err := eventbus.NewKafkaEventBus("localhost:1")
	assert.NoError(t, err)
	defer bus.Producer.Close()

	evt, err := eventbus.NewJSONEvent(events.IngestCompletedEvent{Keyword: "golang"})
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = bus.Publish(ctx, "trenddit.test.events", evt)
	assert.ErrorIs(t, err, context.Canceled)
}
