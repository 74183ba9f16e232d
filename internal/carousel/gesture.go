package carousel

// DragDirection decides the navigation for a finished drag. Dragging right
// past the threshold reveals the previous item (-1), dragging left past it
// the next one (+1). Anything within the threshold is 0.
func DragDirection(deltaX, threshold float64) int {
	switch {
	case deltaX > threshold:
		return -1
	case deltaX < -threshold:
		return 1
	default:
		return 0
	}
}

// DragStart begins a drag at pointer x. Active drags suspend autoplay.
// Drags are ignored in grid view.
func (c *Controller) DragStart(x float64) {
	c.update(CauseDrag, func() bool {
		if c.view != ViewStrip {
			return false
		}
		c.drag = DragState{Active: true, StartX: x}
		return true
	})
}

// DragMove records the distance from the drag start. Without a preceding
// DragStart it does nothing, leaving a zero-delta drag.
func (c *Controller) DragMove(x float64) {
	c.update(CauseDrag, func() bool {
		if !c.drag.Active {
			return false
		}
		c.drag.DeltaX = x - c.drag.StartX
		return true
	})
}

// DragEnd commits the drag. Navigation happens before the drag is cleared
// and the scheduler re-evaluated, all under one lock, so an autoplay tick
// cannot land between the two. An end without a start uses the recorded
// delta, which is zero.
func (c *Controller) DragEnd() {
	c.update(CauseDrag, func() bool {
		switch DragDirection(c.drag.DeltaX, c.cfg.DragThreshold) {
		case -1:
			c.goToLocked(c.index - 1)
		case 1:
			c.goToLocked(c.index + 1)
		}
		c.drag = DragState{}
		return true
	})
}

// DragCancel drops an in-flight drag without navigating.
func (c *Controller) DragCancel() {
	c.update(CauseDrag, func() bool {
		if !c.drag.Active {
			return false
		}
		c.drag = DragState{}
		return true
	})
}
