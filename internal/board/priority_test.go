package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/kanban-board/internal/domain"
)

func TestPriorityLabel(t *testing.T) {
	cases := map[domain.TicketPriority]string{
		0:  LabelNoPriority,
		1:  LabelLow,
		2:  LabelMedium,
		3:  LabelHigh,
		4:  LabelUrgent,
		5:  LabelUnknown,
		-1: LabelUnknown,
	}
	for p, want := range cases {
		assert.Equal(t, want, PriorityLabel(p), "priority %d", p)
	}
}

func TestPriorityFromLabel(t *testing.T) {
	for p := domain.TicketPriority(0); p <= 4; p++ {
		got, ok := PriorityFromLabel(PriorityLabel(p))
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}

	_, ok := PriorityFromLabel(LabelUnknown)
	assert.False(t, ok)
}

func TestDisplayRankIsIndependentOfScale(t *testing.T) {
	want := []string{LabelNoPriority, LabelUrgent, LabelHigh, LabelMedium, LabelLow}
	for i, label := range want {
		r, ok := DisplayRank(label)
		assert.True(t, ok)
		assert.Equal(t, i, r, label)
	}

	_, ok := DisplayRank(LabelUnknown)
	assert.False(t, ok)
	_, ok = DisplayRank("Todo")
	assert.False(t, ok)
}
