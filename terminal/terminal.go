package terminal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/heartfield"
)

// Cell geometry in logical pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// halfBlock paints the upper half of a cell in the foreground color and the
// lower half in the background color.
const halfBlock = '▀'

// Options tunes the terminal backend. Zero values take defaults.
type Options struct {
	// FPS is the tick rate. Default 60.
	FPS int
	// Gain converts accumulated particle weight into brightness. Default 0.9.
	Gain float64
	// Smoothing is the angular frequency of the pointer spring. Default 14.
	Smoothing float64
	// OnPress is called whenever a press pulses the heart.
	OnPress func()
}

type palette struct {
	dot, glow, bg colorful.Color
}

// Backend binds a tcell screen to a simulation.
type Backend struct {
	screen tcell.Screen
	sim    *heartfield.Simulation
	opts   Options
	pal    palette
	bgCell tcell.Style

	cols, rows int
	grid       []float64 // brightness per half-cell, row-major, rows*2 by cols

	spring harmonica.Spring
	inside bool
	down   bool
	px, py float64 // smoothed pointer
	vx, vy float64
	tx, ty float64 // pointer target (cell center)
	lastX  float64
	lastY  float64
	render heartfield.RenderConfig
}

// New initializes screen for mouse input and binds it to sim. The screen
// must already be initialized. The field is built for the current terminal
// size before New returns.
func New(screen tcell.Screen, sim *heartfield.Simulation, opts Options) (*Backend, error) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.9
	}
	if opts.Smoothing <= 0 {
		opts.Smoothing = 14
	}

	rc := sim.Config().Render
	var pal palette
	for _, c := range []struct {
		hex string
		dst *colorful.Color
	}{
		{rc.DotColor, &pal.dot},
		{rc.GlowColor, &pal.glow},
		{rc.BackgroundOuter, &pal.bg},
	} {
		col, err := heartfield.ParseColor(c.hex)
		if err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		*c.dst = col.Colorful()
	}

	b := &Backend{
		screen: screen,
		sim:    sim,
		opts:   opts,
		pal:    pal,
		spring: harmonica.NewSpring(harmonica.FPS(opts.FPS), opts.Smoothing, 1.0),
		render: rc,
	}
	b.bgCell = tcell.StyleDefault.Foreground(toTcell(pal.bg)).Background(toTcell(pal.bg))

	screen.EnableMouse()
	screen.HideCursor()
	b.resize()
	return b, nil
}

// Simulation returns the driven simulation.
func (b *Backend) Simulation() *heartfield.Simulation { return b.sim }

// resize rebuilds the field for the current terminal size.
func (b *Backend) resize() {
	b.cols, b.rows = b.screen.Size()
	b.grid = make([]float64, b.cols*b.rows*2)
	b.sim.Resize(float64(b.cols*CellWidth), float64(b.rows*CellHeight), 1)
}

// HandleEvent applies one terminal event. Returns true when the user asked
// to quit.
func (b *Backend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		b.screen.Sync()
		b.resize()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			b.sim.Rebuild()
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			b.dispatch(heartfield.EventClick, b.px, b.py)
			b.pressed()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		b.mouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	}
	return false
}

// Leave reports that the pointer left the terminal.
func (b *Backend) Leave() {
	if !b.inside {
		return
	}
	b.inside = false
	b.down = false
	b.dispatch(heartfield.EventPointerLeave, b.px, b.py)
}

// mouse converts a cell-resolution mouse report into pointer events.
func (b *Backend) mouse(col, row int, pressed bool) {
	if col < 0 || row < 0 || col >= b.cols || row >= b.rows {
		b.Leave()
		return
	}
	b.tx = (float64(col) + 0.5) * CellWidth
	b.ty = (float64(row) + 0.5) * CellHeight
	if !b.inside {
		b.inside = true
		b.px, b.py = b.tx, b.ty
		b.vx, b.vy = 0, 0
		b.dispatch(heartfield.EventPointerEnter, b.px, b.py)
		b.dispatch(heartfield.EventPointerMove, b.px, b.py)
	}
	switch {
	case pressed && !b.down:
		b.down = true
		b.dispatch(heartfield.EventPointerDown, b.px, b.py)
	case !pressed && b.down:
		b.down = false
		b.dispatch(heartfield.EventPointerUp, b.px, b.py)
		b.dispatch(heartfield.EventClick, b.px, b.py)
	}
}

func (b *Backend) dispatch(typ heartfield.EventType, x, y float64) {
	b.lastX, b.lastY = x, y
	b.sim.HandleEvent(heartfield.PointerEvent{Type: typ, ClientX: x, ClientY: y})
	if typ == heartfield.EventPointerDown {
		b.pressed()
	}
}

// pressed reports one press to OnPress. A mouse click pulses on both down
// and click but counts once.
func (b *Backend) pressed() {
	if b.opts.OnPress != nil {
		b.opts.OnPress()
	}
}

// Step smooths the pointer, ticks the simulation once and draws a frame.
func (b *Backend) Step() {
	if b.inside {
		b.px, b.vx = b.spring.Update(b.px, b.vx, b.tx)
		b.py, b.vy = b.spring.Update(b.py, b.vy, b.ty)
		if math.Abs(b.px-b.lastX) > 0.01 || math.Abs(b.py-b.lastY) > 0.01 {
			b.dispatch(heartfield.EventPointerMove, b.px, b.py)
		}
	}
	b.sim.Tick()
	b.Draw()
}

// Draw rasterizes the field into half-block cells and shows the screen.
func (b *Backend) Draw() {
	clear(b.grid)
	k := b.render.PulseFactor(b.sim.Pulse())
	w, h := b.cols, b.rows*2
	for _, p := range b.sim.Particles() {
		x := int(math.Floor(p.X / CellWidth))
		y := int(math.Floor(p.Y / (CellHeight / 2)))
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		v := p.Size * k
		b.grid[y*w+x] += v
		// Halo into the four neighbors.
		halo := v * 0.25
		if x > 0 {
			b.grid[y*w+x-1] += halo
		}
		if x < w-1 {
			b.grid[y*w+x+1] += halo
		}
		if y > 0 {
			b.grid[(y-1)*w+x] += halo
		}
		if y < h-1 {
			b.grid[(y+1)*w+x] += halo
		}
	}

	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			top := b.grid[(2*row)*w+col]
			bottom := b.grid[(2*row+1)*w+col]
			if top == 0 && bottom == 0 {
				b.screen.SetContent(col, row, ' ', nil, b.bgCell)
				continue
			}
			style := tcell.StyleDefault.Foreground(b.shade(top)).Background(b.shade(bottom))
			b.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	b.screen.Show()
}

// Brightness returns the accumulated brightness of the half-cell pixel at
// (x, y) from the last Draw, in [0, 1).
func (b *Backend) Brightness(x, y int) float64 {
	w := b.cols
	if x < 0 || y < 0 || x >= w || y >= b.rows*2 {
		return 0
	}
	return 1 - math.Exp(-b.grid[y*w+x]*b.opts.Gain)
}

// shade maps accumulated weight to a color: background through glow to dot.
func (b *Backend) shade(v float64) tcell.Color {
	t := 1 - math.Exp(-v*b.opts.Gain)
	var c colorful.Color
	if t < 0.5 {
		c = b.pal.bg.BlendRgb(b.pal.glow, t*2)
	} else {
		c = b.pal.glow.BlendRgb(b.pal.dot, t*2-1)
	}
	return toTcell(c)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, bl := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// Run ticks at the configured rate and processes terminal events until the
// user quits or ctx is done. Events and ticks are handled on the calling
// goroutine; a helper goroutine only forwards events from the screen.
func (b *Backend) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(b.opts.FPS))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := b.screen.PollEvent()
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

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if b.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			b.Step()
		}
	}
}
