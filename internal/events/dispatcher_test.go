package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []string

	d.Subscribe(EventSnapshotRefreshed, func(_ context.Context, e Event) error {
		got = append(got, "first:"+string(e.Type))
		return errors.New("first failed")
	})
	d.Subscribe(EventSnapshotRefreshed, func(_ context.Context, e Event) error {
		got = append(got, "second:"+string(e.Type))
		return nil
	})
	d.Subscribe(EventSnapshotFailed, func(context.Context, Event) error {
		t.Fatal("wrong event type delivered")
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventSnapshotRefreshed, SnapshotRefreshedPayload{Tickets: 2}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "first failed")
	assert.Equal(t, []string{"first:snapshot_refreshed", "second:snapshot_refreshed"}, got)
}

func TestNewEventStampsIdentity(t *testing.T) {
	a := NewEvent(EventSnapshotFailed, SnapshotFailedPayload{Reason: "x"})
	b := NewEvent(EventSnapshotFailed, nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}

func TestPublishWithoutSubscribers(t *testing.T) {
	assert.NoError(t, NewInMemoryDispatcher().Publish(context.Background(), NewEvent(EventPreferencesSaved, nil)))
}
