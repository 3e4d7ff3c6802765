package heartfield

import "github.com/hajimehoshi/ebiten/v2"

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerEnter EventType = iota // pointer moved over the surface
	EventPointerLeave                  // pointer left the surface
	EventPointerMove                   // pointer moved
	EventPointerDown                   // primary button pressed or touch began
	EventPointerUp                     // primary button released or touch ended
	EventClick                         // press then release over the surface
	EventTouchStart                    // touch began; consumed so the host does not scroll or zoom
)

var eventNames = [...]string{
	EventPointerEnter: "pointerenter",
	EventPointerLeave: "pointerleave",
	EventPointerMove:  "pointermove",
	EventPointerDown:  "pointerdown",
	EventPointerUp:    "pointerup",
	EventClick:        "click",
	EventTouchStart:   "touchstart",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// PointerEvent is one discrete input event. ClientX and ClientY are in host
// (client) coordinates; X and Y are filled in with surface-local coordinates
// when the event is dispatched.
type PointerEvent struct {
	Type             EventType
	ClientX, ClientY float64
	X, Y             float64
}

// Pointer is the shared pointer state read by the force integrator. X and Y
// are only meaningful while Inside is true or was recently true.
type Pointer struct {
	X, Y   float64
	Down   bool
	Inside bool
}

// EventSink receives every pointer event the simulation handles. Optional;
// see the ecs sub-package for a Donburi adapter.
type EventSink interface {
	EmitEvent(event PointerEvent)
}

// --- Device polling ---

// inputSample is one frame of raw device state in client coordinates.
type inputSample struct {
	X, Y     float64
	Hover    bool // cursor is over the surface and the window has focus
	Pressed  bool // primary mouse button held
	Touches  []touchSample
	HasMouse bool
}

type touchSample struct {
	ID   ebiten.TouchID
	X, Y float64
}

// pointerTracker turns successive input samples into discrete events,
// the way a browser derives pointer events from device state.
type pointerTracker struct {
	inside   bool
	down     bool
	lastX    float64
	lastY    float64
	touches  map[ebiten.TouchID]Vec2
	touchBuf []ebiten.TouchID
}

// events appends the events implied by the transition from the previous
// sample to in.
func (pt *pointerTracker) events(in inputSample, buf []PointerEvent) []PointerEvent {
	if pt.touches == nil {
		pt.touches = make(map[ebiten.TouchID]Vec2)
	}

	// Touches behave like a pointer that enters, presses, releases, clicks
	// and leaves.
	seen := pt.touchBuf[:0]
	for _, t := range in.Touches {
		seen = append(seen, t.ID)
		if _, ok := pt.touches[t.ID]; ok {
			pt.touches[t.ID] = Vec2{t.X, t.Y}
			buf = pt.move(t.X, t.Y, buf)
			continue
		}
		pt.touches[t.ID] = Vec2{t.X, t.Y}
		buf = append(buf, PointerEvent{Type: EventTouchStart, ClientX: t.X, ClientY: t.Y})
		if !pt.inside {
			pt.inside = true
			buf = append(buf, PointerEvent{Type: EventPointerEnter, ClientX: t.X, ClientY: t.Y})
		}
		pt.down = true
		pt.lastX, pt.lastY = t.X, t.Y
		buf = append(buf, PointerEvent{Type: EventPointerDown, ClientX: t.X, ClientY: t.Y})
	}
	pt.touchBuf = seen
	for id, pos := range pt.touches {
		if containsTouch(seen, id) {
			continue
		}
		delete(pt.touches, id)
		buf = append(buf,
			PointerEvent{Type: EventPointerUp, ClientX: pos.X, ClientY: pos.Y},
			PointerEvent{Type: EventClick, ClientX: pos.X, ClientY: pos.Y},
		)
		pt.down = false
		if len(pt.touches) == 0 && !in.Hover {
			pt.inside = false
			buf = append(buf, PointerEvent{Type: EventPointerLeave, ClientX: pos.X, ClientY: pos.Y})
		}
	}
	if len(pt.touches) > 0 || !in.HasMouse {
		return buf
	}

	// Mouse.
	if in.Hover && !pt.inside {
		pt.inside = true
		pt.lastX, pt.lastY = in.X, in.Y
		buf = append(buf, PointerEvent{Type: EventPointerEnter, ClientX: in.X, ClientY: in.Y})
	}
	if !in.Hover && pt.inside {
		pt.inside = false
		pt.down = false
		return append(buf, PointerEvent{Type: EventPointerLeave, ClientX: in.X, ClientY: in.Y})
	}
	if !pt.inside {
		return buf
	}
	buf = pt.move(in.X, in.Y, buf)
	switch {
	case in.Pressed && !pt.down:
		pt.down = true
		buf = append(buf, PointerEvent{Type: EventPointerDown, ClientX: in.X, ClientY: in.Y})
	case !in.Pressed && pt.down:
		pt.down = false
		buf = append(buf,
			PointerEvent{Type: EventPointerUp, ClientX: in.X, ClientY: in.Y},
			PointerEvent{Type: EventClick, ClientX: in.X, ClientY: in.Y},
		)
	}
	return buf
}

func (pt *pointerTracker) move(x, y float64, buf []PointerEvent) []PointerEvent {
	if x == pt.lastX && y == pt.lastY {
		return buf
	}
	pt.lastX, pt.lastY = x, y
	return append(buf, PointerEvent{Type: EventPointerMove, ClientX: x, ClientY: y})
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// sampleInput reads the current device state. Cursor and touch positions
// are reported by ebiten in device pixels and converted to logical client
// coordinates by dividing by the surface scale.
func sampleInput(surf *Surface, ids []ebiten.TouchID) (inputSample, []ebiten.TouchID) {
	scale := surf.Scale()
	mx, my := ebiten.CursorPosition()
	in := inputSample{
		X:        float64(mx) / scale,
		Y:        float64(my) / scale,
		Pressed:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		HasMouse: true,
	}
	in.Hover = ebiten.IsFocused() && surf.Bounds().Contains(in.X, in.Y)

	ids = ebiten.AppendTouchIDs(ids[:0])
	for _, id := range ids {
		tx, ty := ebiten.TouchPosition(id)
		in.Touches = append(in.Touches, touchSample{ID: id, X: float64(tx) / scale, Y: float64(ty) / scale})
	}
	return in, ids
}
