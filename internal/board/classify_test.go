package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/kanban-board/internal/domain"
)

func sampleTickets() []domain.Ticket {
	return []domain.Ticket{
		{ID: "CAM-1", Title: "Update user profile page UI", Tag: []string{"Feature request"}, Status: "Todo", Priority: 4, UserID: "usr-1"},
		{ID: "CAM-2", Title: "Add multi-language support", Tag: []string{"Feature request"}, Status: "In progress", Priority: 3, UserID: "usr-2"},
		{ID: "CAM-3", Title: "Optimize database queries", Tag: []string{"Feature request"}, Status: "In progress", Priority: 1, UserID: "usr-2"},
		{ID: "CAM-4", Title: "Implement email notification", Tag: []string{"Feature request"}, Status: "Todo", Priority: 3, UserID: "usr-1"},
		{ID: "CAM-5", Title: "Enhance search functionality", Tag: []string{"Feature request"}, Status: "Backlog", Priority: 0, UserID: "usr-5"},
		{ID: "CAM-6", Title: "Third-party payment gateway", Status: "Done", Priority: 2, UserID: "usr-3"},
	}
}

func TestClassifyIsTotalPartition(t *testing.T) {
	tickets := sampleTickets()

	for _, g := range []Grouping{GroupByStatus, GroupByUser, GroupByPriority} {
		t.Run(string(g), func(t *testing.T) {
			groups := Classify(tickets, g)
			require.Len(t, groups.Buckets, groups.Len())

			seen := map[domain.ID]int{}
			for _, key := range groups.Keys {
				for _, ticket := range groups.Buckets[key] {
					seen[ticket.ID]++
					gotKey, ok := GroupKey(ticket, g)
					require.True(t, ok)
					assert.Equal(t, key, gotKey)
				}
			}
			require.Len(t, seen, len(tickets))
			for id, n := range seen {
				assert.Equal(t, 1, n, "ticket %s", id)
			}
		})
	}
}

func TestClassifyKeepsDiscoveryAndInputOrder(t *testing.T) {
	groups := Classify(sampleTickets(), GroupByStatus)

	if diff := cmp.Diff([]string{"Todo", "In progress", "Backlog", "Done"}, groups.Keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	var ids []domain.ID
	for _, ticket := range groups.Buckets["In progress"] {
		ids = append(ids, ticket.ID)
	}
	assert.Equal(t, []domain.ID{"CAM-2", "CAM-3"}, ids)
}

func TestClassifyByUserUsesRawID(t *testing.T) {
	groups := Classify(sampleTickets(), GroupByUser)
	assert.Equal(t, []string{"usr-1", "usr-2", "usr-5", "usr-3"}, groups.Keys)
}

func TestClassifyByPriorityUsesLabels(t *testing.T) {
	tickets := append(sampleTickets(), domain.Ticket{ID: "CAM-7", Title: "odd", Priority: 9})
	groups := Classify(tickets, GroupByPriority)

	assert.Equal(t, []string{LabelUrgent, LabelHigh, LabelLow, LabelNoPriority, LabelMedium, LabelUnknown}, groups.Keys)
	assert.Len(t, groups.Buckets[LabelHigh], 2)
	assert.Equal(t, domain.ID("CAM-7"), groups.Buckets[LabelUnknown][0].ID)
}

func TestClassifyUnknownGroupingIsEmpty(t *testing.T) {
	groups := Classify(sampleTickets(), Grouping("team"))
	assert.Zero(t, groups.Len())
	assert.Empty(t, groups.Buckets)
}

func TestClassifyEmptyInput(t *testing.T) {
	groups := Classify(nil, GroupByStatus)
	assert.Zero(t, groups.Len())
}

func TestClassifyDoesNotAlterTickets(t *testing.T) {
	tickets := sampleTickets()
	before := sampleTickets()

	_ = Classify(tickets, GroupByPriority)

	if diff := cmp.Diff(before, tickets); diff != "" {
		t.Fatalf("input changed (-before +after):\n%s", diff)
	}
}
