package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAcceptsStringsAndNumbers(t *testing.T) {
	var snap Snapshot
	payload := `{
		"tickets": [
			{"id": "CAM-1", "title": "t1", "tag": ["Feature"], "status": "Todo", "priority": 4, "userId": "usr-1"},
			{"id": 2, "title": "t2", "tag": [], "status": "Done", "priority": 0, "userId": 7}
		],
		"users": [{"id": 7, "name": "Ann"}]
	}`

	require.NoError(t, json.Unmarshal([]byte(payload), &snap))
	require.Len(t, snap.Tickets, 2)

	assert.Equal(t, ID("CAM-1"), snap.Tickets[0].ID)
	assert.Equal(t, ID("2"), snap.Tickets[1].ID)
	assert.Equal(t, ID("7"), snap.Tickets[1].UserID)
	assert.Equal(t, snap.Users[0].ID, snap.Tickets[1].UserID)
	assert.Equal(t, "Feature", snap.Tickets[0].FirstTag())
	assert.Empty(t, snap.Tickets[1].FirstTag())
}

func TestIDRejectsObjects(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
}

func TestSnapshotNormalize(t *testing.T) {
	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{}`), &snap))
	snap.Normalize()
	assert.NotNil(t, snap.Tickets)
	assert.NotNil(t, snap.Users)
}
