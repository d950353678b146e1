// Package render lays a computed board out as terminal columns. Glyph choice lives here
// only; the board engine never knows about icons.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/kanban-board/internal/board"
	"github.com/spec-kit/kanban-board/internal/domain"
)

var statusGlyphs = map[string]string{
	string(domain.TicketStatusBacklog):    "◌",
	string(domain.TicketStatusTodo):       "○",
	string(domain.TicketStatusInProgress): "◐",
	string(domain.TicketStatusDone):       "●",
	string(domain.TicketStatusCanceled):   "⊘",
}

var priorityGlyphs = map[string]string{
	board.LabelNoPriority: "···",
	board.LabelLow:        "▂",
	board.LabelMedium:     "▂▄",
	board.LabelHigh:       "▂▄▆",
	board.LabelUrgent:     "!",
}

const unknownGlyph = "?"

// StatusGlyph returns the glyph for a status label.
func StatusGlyph(status string) string {
	if g, ok := statusGlyphs[status]; ok {
		return g
	}
	return unknownGlyph
}

// PriorityGlyph returns the glyph for a priority label.
func PriorityGlyph(label string) string {
	if g, ok := priorityGlyphs[label]; ok {
		return g
	}
	return unknownGlyph
}

// Options controls layout.
type Options struct {
	ColumnWidth int
	Color       bool
}

const defaultColumnWidth = 32

var (
	urgentColor = lipgloss.Color("#F25C54")
	mutedColor  = lipgloss.Color("#8A8F98")
	borderColor = lipgloss.Color("#3A3F4B")
)

type renderer struct {
	width  int
	header lipgloss.Style
	card   lipgloss.Style
	muted  lipgloss.Style
	urgent lipgloss.Style
}

func newRenderer(opts Options) renderer {
	width := opts.ColumnWidth
	if width <= 0 {
		width = defaultColumnWidth
	}
	r := renderer{
		width:  width,
		header: lipgloss.NewStyle().Bold(true).Width(width).MaxWidth(width),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(width - 2).
			MaxWidth(width),
		muted:  lipgloss.NewStyle(),
		urgent: lipgloss.NewStyle(),
	}
	if opts.Color {
		r.card = r.card.BorderForeground(borderColor)
		r.muted = r.muted.Foreground(mutedColor)
		r.urgent = r.urgent.Foreground(urgentColor).Bold(true)
	}
	return r
}

// Board renders every column side by side.
func Board(b board.Board, opts Options) string {
	if len(b.Columns) == 0 {
		return "no tickets\n"
	}
	r := newRenderer(opts)
	columns := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		columns = append(columns, r.column(b.Grouping, col))
	}
	gap := strings.Repeat(" ", 2)
	parts := make([]string, 0, len(columns)*2)
	for i, c := range columns {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

func (r renderer) column(grouping board.Grouping, col board.Column) string {
	rows := []string{r.header.Render(r.headerText(grouping, col))}
	for _, t := range col.Tickets {
		rows = append(rows, r.cardFor(t))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r renderer) headerText(grouping board.Grouping, col board.Column) string {
	label := col.Label
	if label == "" {
		label = col.Key
	}
	var glyph string
	switch grouping {
	case board.GroupByStatus:
		glyph = StatusGlyph(col.Key)
	case board.GroupByPriority:
		glyph = PriorityGlyph(col.Key)
	case board.GroupByUser:
		glyph = unknownGlyph
		if col.User != nil {
			glyph = initials(col.User.Name)
		}
	}
	return fmt.Sprintf("%s %s %d", glyph, label, col.Count)
}

func (r renderer) cardFor(t domain.Ticket) string {
	label := board.PriorityLabel(t.Priority)
	glyph := PriorityGlyph(label)
	if label == board.LabelUrgent {
		glyph = r.urgent.Render(glyph)
	}
	lines := []string{
		r.muted.Render(string(t.ID)),
		truncate(t.Title, r.width-4),
	}
	footer := glyph
	if tag := t.FirstTag(); tag != "" {
		footer += " " + r.muted.Render("• "+tag)
	}
	lines = append(lines, footer)
	return r.card.Render(strings.Join(lines, "\n"))
}

func initials(name string) string {
	var out []rune
	for _, field := range strings.Fields(name) {
		for _, ch := range field {
			out = append(out, ch)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return unknownGlyph
	}
	return strings.ToUpper(string(out))
}

func truncate(s string, max int) string {
	if max <= 1 || lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
