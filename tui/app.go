package tui

import (
	"fmt"
	"strings"
	"time"

	bubbleshelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/matchdrag/config"
	"github.com/dylan/matchdrag/matching"
	"github.com/dylan/matchdrag/tui/board"
	"github.com/dylan/matchdrag/tui/help"
	"github.com/dylan/matchdrag/tui/icons"
	"github.com/dylan/matchdrag/tui/shared"
	"go.uber.org/zap"
)

type App struct {
	cfg      config.Config
	showHelp bool

	board    board.Model
	helpView help.Model
	keyHelp  bubbleshelp.Model

	statusMsg string
	feedback  *shared.Feedback

	width  int
	height int

	now func() time.Time
}

func NewApp(cfg config.Config, store *matching.Store, logger *zap.Logger) App {
	shared.InitStyles(cfg.ResolvedTheme())
	icons.SetIcons(cfg.Display.Icons)
	icons.SetNerdFonts(cfg.Display.NerdFonts)

	kh := bubbleshelp.New()
	kh.Styles.ShortKey = shared.HelpKeyStyle
	kh.Styles.ShortDesc = shared.HelpDescStyle

	return App{
		cfg: cfg,
		board: board.New(store, board.Options{
			Prompt:    cfg.ResolvedPrompt(),
			PoolWidth: cfg.ResolvedPoolWidth(),
			WidgetID:  cfg.Exercise.WidgetID,
			Logger:    logger,
			Strict:    cfg.Log.Strict,
		}),
		helpView: help.New(),
		keyHelp:  kh,
		now:      time.Now,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutSizes()
		return a, nil

	case shared.FeedbackMsg:
		cmd := a.setFeedback(msg.Feedback)
		return a, cmd

	case shared.ClearFeedbackMsg:
		if a.feedback != nil && a.feedback.Timestamp.Equal(msg.Timestamp) {
			a.feedback = nil
		}
		return a, nil

	case shared.DragStartedMsg:
		a.statusMsg = "Dragging from " + msg.Origin.String()
		return a, nil

	case shared.StoreChangedMsg:
		a.statusMsg = ""
		if s := msg.Store; s.Capacity() > 0 && s.AnsweredCount() == s.Capacity() {
			cmd := a.setFeedback(shared.InfoFeedback("All slots answered", a.now()))
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		if a.showHelp {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.board, cmd = a.board.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help toggle is global
	if key.Matches(msg, shared.Keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// If help is shown, any key closes it
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, shared.Keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, shared.Keys.Reset):
		a.statusMsg = ""
		fbCmd := a.setFeedback(shared.InfoFeedback("Exercise reset", a.now()))
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(shared.ResetMsg{})
		return a, tea.Batch(cmd, fbCmd)
	}

	var cmd tea.Cmd
	a.board, cmd = a.board.Update(msg)
	return a, cmd
}

// setFeedback shows fb and schedules its removal.
func (a *App) setFeedback(fb shared.Feedback) tea.Cmd {
	a.feedback = &fb
	ts := fb.Timestamp
	return tea.Tick(shared.FeedbackTTL(fb.Level), func(time.Time) tea.Msg {
		return shared.ClearFeedbackMsg{Timestamp: ts}
	})
}

func (a App) View() string {
	if a.showHelp {
		return a.helpView.View()
	}
	return a.board.View() + a.renderStatusBar()
}

func (a *App) layoutSizes() {
	contentH := a.height - 2 // status bar and key help
	if contentH < 3 {
		contentH = 3
	}
	a.board.SetSize(a.width, contentH)
	a.helpView.SetSize(a.width, a.height)
	a.keyHelp.Width = a.width
}

func (a App) renderStatusBar() string {
	s := a.board.Store()
	parts := []string{
		"Matching",
		fmt.Sprintf("answered %d/%d", s.AnsweredCount(), s.Capacity()),
	}
	if a.statusMsg != "" {
		parts = append(parts, a.statusMsg)
	}
	status := shared.StatusBarStyle.Width(a.width).Render(strings.Join(parts, " │ ") + " │ ? for help")

	below := a.keyHelp.View(shared.Keys)
	if a.feedback != nil {
		status = shared.FeedbackStyle(a.feedback.Level).Width(a.width).Render(a.feedback.Message)
		if a.feedback.Detail != "" {
			detail := shared.HelpDescStyle
			if a.feedback.Level == shared.FeedbackError {
				detail = shared.ErrorStyle
			}
			below = detail.MaxWidth(a.width).Render(a.feedback.Detail)
		}
	}

	return "\n" + status + "\n" + below
}
