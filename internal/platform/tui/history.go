package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
)

// maxRuns bounds the in-memory run history.
const maxRuns = 100

// RunRecord is one finished or abandoned run of this process.
type RunRecord struct {
	bomber.RunSummary
	EndedAt time.Time
}

// History keeps the runs played since the program started, newest first.
// Nothing is written to disk.
type History struct {
	title  string
	runs   []RunRecord
	table  table.Model
	width  int
	height int
}

// NewHistory creates an empty history for the named game, sized for the
// given terminal.
func NewHistory(title string, width, height int) History {
	h := History{title: title, width: width, height: height}
	h.table = h.createTable()
	return h
}

// Add records a run and refreshes the table.
func (h *History) Add(s bomber.RunSummary, ended time.Time) {
	h.runs = append([]RunRecord{{RunSummary: s, EndedAt: ended}}, h.runs...)
	if len(h.runs) > maxRuns {
		h.runs = h.runs[:maxRuns]
	}
	h.updateRows()
}

// Runs returns the recorded runs, newest first.
func (h History) Runs() []RunRecord {
	return h.runs
}

// Best returns the highest scoring run, if any.
func (h History) Best() (RunRecord, bool) {
	return BestRun(h.runs)
}

// BestRun returns the highest scoring run. Ties go to the earlier entry.
func BestRun(runs []RunRecord) (RunRecord, bool) {
	if len(runs) == 0 {
		return RunRecord{}, false
	}
	best := runs[0]
	for _, r := range runs[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best, true
}

// Resize rebuilds the table for a new terminal size.
func (h *History) Resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateRows()
}

// Update forwards scrolling keys to the table.
func (h History) Update(msg tea.Msg) (History, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

func (h *History) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Run", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 10},
	}

	height := max(h.height-8, 3) // Leave room for title, help, and margins

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (h *History) updateRows() {
	rows := make([]table.Row, len(h.runs))
	for i, r := range h.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(h.runs)-i),
			shortID(r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			formatPlayed(r.Played),
			r.EndedAt.Format("15:04:05"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

// View renders the history screen.
func (h History) View(helpView string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	heading := "RUNS THIS SESSION"
	if h.title != "" {
		heading = fmt.Sprintf("%s - %s", strings.ToUpper(h.title), heading)
	}
	b.WriteString(titleStyle.Render(centerText(heading, h.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(h.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No runs finished yet.\nPress tab to get back to the game.")
	} else {
		content = h.table.View()
		if best, ok := h.Best(); ok {
			content += fmt.Sprintf("\n\nBest: %d (level %d)", best.Score, best.Level)
		}
	}
	b.WriteString(centerText(tableStyle.Render(content), h.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(helpView))

	return b.String()
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// formatPlayed formats a play time as m:ss.
func formatPlayed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// centerText centers every line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
