//go:build integration

package messaging

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/internal/usecase/engagement"
)

func TestIntegration_Publish(t *testing.T) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set, skipping integration test")
	}

	sub, err := nats.Connect(url)
	require.NoError(t, err)
	defer sub.Close()

	received := make(chan *nats.Msg, 1)
	s, err := sub.ChanSubscribe("engagement.test", received)
	require.NoError(t, err)
	defer s.Unsubscribe()
	require.NoError(t, sub.Flush())

	p, err := NewPublisher(NATSConfig{URL: url, Subject: "engagement.test"}, zap.NewNop())
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.PublishEngagementComputed(context.Background(), engagement.ComputedEvent{MeetingID: 42}))

	select {
	case msg := <-received:
		var event engagement.ComputedEvent
		require.NoError(t, json.Unmarshal(msg.Data, &event))
		require.Equal(t, int64(42), event.MeetingID)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for engagement event")
	}
}
