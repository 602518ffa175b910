// Package term drives a sand world inside a terminal. Each character cell
// shows two grid rows using the upper half block, foreground on top.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/log"
	"mad-sand/internal/sand"

	"github.com/gdamore/tcell/v2"
)

const (
	halfBlock   = '▀'
	statusLines = 1
)

// Pourer is notified after every placement that hit the grid.
type Pourer interface {
	Pour()
}

// GridSize returns the grid that fits a terminal of the given size.
func GridSize(width, height int) (cols, rows int) {
	return max(1, width), max(1, 2*(height-statusLines))
}

type mouseState struct {
	place, erase bool
	x, y         int
}

// Frontend owns the terminal screen and the frame loop.
type Frontend struct {
	screen tcell.Screen
	world  *sand.World
	clock  *core.FixedStep
	log    *log.Logger
	sound  Pourer

	mouse    mouseState
	paused   bool
	tickOnce bool
	quit     bool
	seed     int64
}

// New wires a frontend to an initialized screen.
func New(screen tcell.Screen, world *sand.World, tps int, seed int64, logger *log.Logger, sound Pourer) *Frontend {
	if logger == nil {
		logger = log.Discard()
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return &Frontend{
		screen: screen,
		world:  world,
		clock:  core.NewFixedStep(tps),
		log:    logger,
		sound:  sound,
		seed:   seed,
	}
}

// Run processes input and advances the world until the user quits, the
// context is cancelled or the screen stops delivering events.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(f.clock.Interval())
	defer ticker.Stop()

	f.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			f.handleEvent(ev)
			if f.quit {
				return nil
			}
		case <-ticker.C:
			for n := f.clock.Due(); n > 0; n-- {
				f.frame()
			}
			f.draw()
		}
	}
}

func (f *Frontend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		f.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		f.screen.Sync()
		w, h := f.screen.Size()
		cols, rows := GridSize(w, h)
		if size := f.world.Size(); size.W != cols || size.H != rows {
			f.log.Warnf("terminal resized to %dx%d; grid stays %dx%d", w, h, size.W, size.H)
		}
	}
}

func (f *Frontend) handleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		f.quit = true
		return
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		f.world.Clear()
		return
	case tcell.KeyEnter:
		f.paused = false
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch r {
	case 'q':
		f.quit = true
	case ' ':
		f.log.Debugf("dropping %s", f.world.CycleKind().Name())
	case 'f':
		f.world.Fill()
	case 'c':
		f.world.Clear()
	case 'p':
		f.paused = !f.paused
	case 'n':
		f.tickOnce = true
	case 'r':
		f.world.Reset(f.seed)
	case 's':
		f.seed = time.Now().UnixNano()
		f.world.Reset(f.seed)
	case '+', '=':
		f.world.SetRadius(f.world.Radius() + 1)
	case '-':
		f.world.SetRadius(f.world.Radius() - 1)
	}
}

func (f *Frontend) handleMouse(x, y int, buttons tcell.ButtonMask) {
	if buttons&tcell.WheelUp != 0 {
		f.world.SetRadius(f.world.Radius() + 1)
	}
	if buttons&tcell.WheelDown != 0 {
		f.world.SetRadius(f.world.Radius() - 1)
	}
	f.mouse = mouseState{
		place: buttons&tcell.Button1 != 0,
		erase: buttons&tcell.Button2 != 0,
		x:     x,
		y:     y,
	}
}

// input converts the held mouse state into a frame of sand input. The cursor
// addresses the upper grid row of the character under it.
func (f *Frontend) input() sand.Input {
	return sand.Input{
		Place:  f.mouse.place,
		Erase:  f.mouse.erase,
		Column: f.mouse.x,
		Row:    2 * f.mouse.y,
	}
}

func (f *Frontend) frame() {
	in := f.input()
	if in.Place || in.Erase {
		if f.world.Apply(in) && in.Place && f.sound != nil {
			f.sound.Pour()
		}
	}
	if !f.paused || f.tickOnce {
		f.world.Step()
		f.tickOnce = false
	}
}

func (f *Frontend) draw() {
	size := f.world.Size()
	w, h := f.screen.Size()
	bg := tcell.ColorBlack
	for y := 0; y < h-statusLines; y++ {
		for x := 0; x < w; x++ {
			top, topOK := f.world.Color(x, 2*y)
			bottom, bottomOK := f.world.Color(x, 2*y+1)
			style := tcell.StyleDefault.Background(bg).Foreground(bg)
			if x >= size.W || 2*y >= size.H {
				f.screen.SetContent(x, y, ' ', nil, style)
				continue
			}
			if topOK {
				style = style.Foreground(rgb(top))
			}
			if bottomOK {
				style = style.Background(rgb(bottom))
			}
			f.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	f.drawStatus(w, h)
	f.screen.Show()
}

func (f *Frontend) drawStatus(w, h int) {
	if h < statusLines {
		return
	}
	line := statusLine(f.world.Kind(), f.world.Radius(), f.world.Count(), f.paused)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		f.screen.SetContent(x, h-1, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		f.screen.SetContent(x, h-1, ' ', nil, style)
	}
}

// statusLine is the caption and key help shown on the bottom row. The mouse
// always addresses the upper of the two rows a character shows.
func statusLine(kind sand.Kind, radius, particles int, paused bool) string {
	state := ""
	if paused {
		state = " [paused]"
	}
	return fmt.Sprintf("Currently dropping: %s  radius %d  particles %d%s  |  mouse hits the top half of a char  space kind  f fill  c clear  p pause  q quit",
		kind.Name(), radius, particles, state)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
