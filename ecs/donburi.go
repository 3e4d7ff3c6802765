package ecs

import (
	"github.com/phanxgames/heartfield"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PointerEventType is the Donburi event type for heartfield pointer events.
var PointerEventType = events.NewEventType[heartfield.PointerEvent]()

// PointerState mirrors the simulation pointer inside the world, along with
// the number of presses seen.
type PointerState struct {
	heartfield.Pointer
	Presses int
}

// PointerComponent is the component holding the mirrored pointer state.
var PointerComponent = donburi.NewComponentType[PointerState]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on PointerEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) heartfield.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event heartfield.PointerEvent) {
	PointerEventType.Publish(s.world, event)
}

// TrackPointer creates an entity with a PointerComponent and subscribes it
// to PointerEventType. The component follows the same rules as the
// simulation's own pointer once the queued events are processed.
func TrackPointer(world donburi.World) donburi.Entity {
	entity := world.Create(PointerComponent)
	PointerEventType.Subscribe(world, func(w donburi.World, e heartfield.PointerEvent) {
		entry := w.Entry(entity)
		if !entry.Valid() {
			return
		}
		apply(PointerComponent.Get(entry), e)
	})
	return entity
}

func apply(st *PointerState, e heartfield.PointerEvent) {
	switch e.Type {
	case heartfield.EventPointerEnter:
		st.Inside = true
	case heartfield.EventPointerLeave:
		st.Inside = false
		st.Down = false
	case heartfield.EventPointerDown:
		st.Down = true
	case heartfield.EventPointerUp:
		st.Down = false
	}
	switch e.Type {
	case heartfield.EventPointerMove, heartfield.EventPointerDown, heartfield.EventPointerUp:
		st.X, st.Y = e.X, e.Y
	}
	switch e.Type {
	case heartfield.EventPointerDown, heartfield.EventClick:
		st.Presses++
	}
}
