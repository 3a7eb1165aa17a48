package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/papersoccer/internal/entity"
)

const helpText = "[::d]click or keypad 1-9 to move · r reset · t change turn · q quit"

type gameManager interface {
	Game() *entity.Game
	MoveTo(x, y int) (bool, error)
	MoveBy(direction entity.Direction) (bool, error)
	ToggleTurn() error
	Reset() *entity.Game
}

type App struct {
	logger  *slog.Logger
	manager gameManager

	app    *tview.Application
	board  *BoardView
	status *tview.TextView

	err error
}

func New(logger *slog.Logger, manager gameManager) *App {
	ui := &App{
		logger:  logger.With("component", "tui"),
		manager: manager,
		app:     tview.NewApplication(),
		status:  tview.NewTextView().SetDynamicColors(true),
	}

	ui.board = NewBoardView(manager, ui.fail)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ui.board, 0, 1, true).
		AddItem(ui.status, 2, 0, false)

	ui.app.SetRoot(root, true).
		SetFocus(ui.board).
		EnableMouse(true).
		SetInputCapture(ui.handleKey).
		SetBeforeDrawFunc(func(tcell.Screen) bool {
			ui.refreshStatus()
			return false
		})

	ui.refreshStatus()

	return ui
}

// Start - runs the terminal UI until the user quits or ctx is cancelled.
// A broken game invariant stops the UI and is returned.
func (that *App) Start(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			that.app.Stop()
		case <-done:
		}
	}()

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return that.err
}

// handleKey handles the keys that work regardless of focus.
func (that *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	log := that.logger.With("method", "handleKey")

	switch {
	case event.Key() == tcell.KeyEscape, event.Key() == tcell.KeyCtrlC,
		event.Key() == tcell.KeyRune && event.Rune() == 'q':
		log.Info("quit requested")
		that.app.Stop()
	case event.Key() == tcell.KeyRune && event.Rune() == 'r':
		that.manager.Reset()
	case event.Key() == tcell.KeyRune && event.Rune() == 't':
		if err := that.manager.ToggleTurn(); err != nil {
			that.fail(err)
		}
	default:
		return event
	}

	return nil
}

func (that *App) refreshStatus() {
	game := that.manager.Game()
	if !game.IsActive() {
		that.status.SetText("waiting for a game\n" + helpText)
		return
	}

	text := fmt.Sprintf("turn: [%s::b]%s[-::-]  at %d,%d\n%s", game.Turn, game.Turn, game.Current.X, game.Current.Y, helpText)
	if that.status.GetText(false) != text {
		that.status.SetText(text)
	}
}

func (that *App) fail(err error) {
	that.logger.Error("game stopped", "error", err)

	if that.err == nil {
		that.err = err
	}
	that.app.Stop()
}
