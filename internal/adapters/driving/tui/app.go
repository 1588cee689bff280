package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// searchCompleted carries the search response back into the update loop.
type searchCompleted struct {
	resp *domain.SearchResponse
}

// searchFailed carries a search error back into the update loop.
type searchFailed struct {
	err error
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// workspaceID is the workspace being searched.
	workspaceID string

	// styles holds the TUI styles.
	styles *Styles

	// input is the query input field.
	input textinput.Model

	// results holds the current search results.
	results []domain.Artifact

	// sources maps each collaborator to its contribution count.
	sources map[string]int

	// selected is the index of the highlighted result.
	selected int

	// searching indicates a search is in flight.
	searching bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, workspaceID string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Search the workspace..."
	input.Focus()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		workspaceID: workspaceID,
		styles:      DefaultStyles(),
		input:       input,
		width:       80,
		height:      24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("worklens"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case searchCompleted:
		a.searching = false
		a.err = nil
		a.results = msg.resp.Results
		a.sources = msg.resp.Sources
		a.selected = 0
		return a, nil

	case searchFailed:
		a.searching = false
		a.err = msg.err
		a.results = nil
		a.sources = nil
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKey processes keyboard input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyEsc:
		a.input.SetValue("")
		a.results = nil
		a.sources = nil
		a.err = nil
		return a, nil

	case tea.KeyEnter:
		query := strings.TrimSpace(a.input.Value())
		if query == "" || a.searching {
			return a, nil
		}
		a.searching = true
		return a, a.performSearch(query)

	case tea.KeyUp:
		a.moveUp()
		return a, nil

	case tea.KeyDown:
		a.moveDown()
		return a, nil
	}

	switch msg.String() {
	case "k":
		if a.input.Value() == "" {
			a.moveUp()
			return a, nil
		}
	case "j":
		if a.input.Value() == "" {
			a.moveDown()
			return a, nil
		}
	case "q":
		if a.input.Value() == "" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// performSearch runs the search off the update loop.
func (a *App) performSearch(query string) tea.Cmd {
	req := domain.SearchRequest{
		WorkspaceID: a.workspaceID,
		Query:       query,
	}
	return func() tea.Msg {
		resp, err := a.ports.Search.Search(a.ctx, req)
		if err != nil {
			return searchFailed{err: err}
		}
		return searchCompleted{resp: resp}
	}
}

func (a *App) moveUp() {
	if a.selected > 0 {
		a.selected--
	}
}

func (a *App) moveDown() {
	if a.selected < len(a.results)-1 {
		a.selected++
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("worklens"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputBox.Render(a.input.View()))
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
	case a.searching:
		b.WriteString(a.styles.Muted.Render("Searching..."))
	case len(a.results) > 0:
		b.WriteString(a.renderResults())
	default:
		b.WriteString(a.styles.Muted.Render("Type a query and press Enter."))
	}

	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("↑/k up · ↓/j down · esc clear · q quit"))

	return b.String()
}

// renderResults renders the ranked result list.
func (a *App) renderResults() string {
	var b strings.Builder

	for i := range a.results {
		r := &a.results[i]

		if r.IsAnswer() {
			b.WriteString(a.styles.Answer.Render("★ " + r.Title))
			if r.Description != "" {
				b.WriteString("\n")
				b.WriteString(a.styles.Muted.Render("  " + r.Description))
			}
			b.WriteString("\n\n")
			continue
		}

		line := fmt.Sprintf("%s (%s, %.2f)", r.Title, r.Kind, r.Score)
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(a.sources) > 0 {
		b.WriteString("\n")
		b.WriteString(a.styles.Muted.Render(renderSources(a.sources)))
	}

	return b.String()
}

// renderSources summarises per-source contribution counts.
func renderSources(sources map[string]int) string {
	parts := make([]string, 0, len(sources))
	for _, name := range []string{"github", "notion", "drive", "members"} {
		if count, ok := sources[name]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", name, count))
		}
	}
	return strings.Join(parts, " · ")
}
