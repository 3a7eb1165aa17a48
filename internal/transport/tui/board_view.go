package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/papersoccer/internal/entity"
)

var keypadDirections = map[rune]entity.Direction{
	'7': entity.DirectionUpLeft,
	'8': entity.DirectionUp,
	'9': entity.DirectionUpRight,
	'4': entity.DirectionLeft,
	'6': entity.DirectionRight,
	'1': entity.DirectionDownLeft,
	'2': entity.DirectionDown,
	'3': entity.DirectionDownRight,
}

// BoardView is a tview primitive drawing the game and turning clicks and keypad
// presses into moves.
type BoardView struct {
	*tview.Box

	manager gameManager
	fail    func(error)

	originX int
	originY int
}

func NewBoardView(manager gameManager, fail func(error)) *BoardView {
	view := &BoardView{
		Box:     tview.NewBox(),
		manager: manager,
		fail:    fail,
	}

	view.SetBorder(true).SetTitle(" paper soccer ")

	return view
}

func (that *BoardView) Draw(screen tcell.Screen) {
	that.Box.DrawForSubclass(screen, that)

	x, y, width, height := that.GetInnerRect()
	game := that.manager.Game()
	if !game.IsActive() {
		return
	}

	// centre the board inside the box
	cols, rows := boardSize(game.Board)
	that.originX = x + max(0, (width-cols)/2)
	that.originY = y + max(0, (height-rows)/2)

	draw(screen, that.originX, that.originY, game)
}

func (that *BoardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return that.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
		if action != tview.MouseLeftClick || !that.InRect(event.Position()) {
			return false, nil
		}

		setFocus(that)
		that.click(event.Position())

		return true, nil
	})
}

func (that *BoardView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return that.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		that.key(event)
	})
}

// click forwards a click at screen position (x, y). Clicks between points are ignored.
func (that *BoardView) click(x, y int) {
	game := that.manager.Game()
	if !game.IsActive() {
		return
	}

	target, ok := pointAtScreen(that.originX, that.originY, x, y, game.Board)
	if !ok {
		return
	}

	if _, err := that.manager.MoveTo(target.X, target.Y); err != nil {
		that.fail(err)
	}
}

func (that *BoardView) key(event *tcell.EventKey) {
	if event.Key() != tcell.KeyRune {
		return
	}

	direction, ok := keypadDirections[event.Rune()]
	if !ok {
		return
	}

	if _, err := that.manager.MoveBy(direction); err != nil {
		that.fail(err)
	}
}
