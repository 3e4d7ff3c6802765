package heartfield

// InjectEvent queues a synthetic event in client coordinates. Queued events
// are delivered one per tick, ahead of real device input, through the same
// path as device events.
func (s *Simulation) InjectEvent(typ EventType, x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerEvent{Type: typ, ClientX: x, ClientY: y})
}

// InjectClick queues a press, release and click at the same client
// coordinates. Consumes three ticks.
func (s *Simulation) InjectClick(x, y float64) {
	s.InjectEvent(EventPointerDown, x, y)
	s.InjectEvent(EventPointerUp, x, y)
	s.InjectEvent(EventClick, x, y)
}

// InjectSweep queues a hover pass: the pointer enters at (fromX, fromY),
// moves in a straight line over frames-2 intermediate ticks, and leaves at
// (toX, toY). The whole sequence consumes frames ticks; the minimum is 2.
func (s *Simulation) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectEvent(EventPointerEnter, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectEvent(EventPointerMove, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectEvent(EventPointerLeave, toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Simulation) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and handles it.
// Returns true if an event was consumed (real device input should be skipped).
func (s *Simulation) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.HandleEvent(evt)
	return true
}
