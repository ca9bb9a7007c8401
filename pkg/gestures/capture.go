package gestures

// PointerCapture is the exclusive association between one pointer and one
// element. An element holds at most one pointer; a pointer is held by at
// most one element. Claiming a pointer that another capture holds moves it.
type PointerCapture struct {
	router  *PointerRouter
	handler PointerHandler
	id      int64
	active  bool

	// OnLost is called when the capture ends for any reason other than an
	// explicit Release.
	OnLost func(pointerID int64)
}

// NewPointerCapture creates a capture slot that delivers captured events to
// handler.
func NewPointerCapture(router *PointerRouter, handler PointerHandler) *PointerCapture {
	return &PointerCapture{router: router, handler: handler}
}

// Set captures pointerID. Any pointer this capture already holds is released
// first, and pointerID is taken away from any other capture holding it.
func (c *PointerCapture) Set(pointerID int64) {
	if c.active {
		c.Release()
	}
	if prev := c.router.captures[pointerID]; prev != nil && prev != c {
		prev.lose()
	}
	c.router.captures[pointerID] = c
	c.id = pointerID
	c.active = true
}

// Release gives up the held pointer, if any.
func (c *PointerCapture) Release() {
	if !c.active {
		return
	}
	if c.router.captures[c.id] == c {
		delete(c.router.captures, c.id)
	}
	c.active = false
	c.id = 0
}

// Has reports whether this capture holds pointerID.
func (c *PointerCapture) Has(pointerID int64) bool {
	return c.active && c.id == pointerID
}

// Active reports whether any pointer is held.
func (c *PointerCapture) Active() bool {
	return c.active
}

// PointerID returns the held pointer, or 0 when inactive.
func (c *PointerCapture) PointerID() int64 {
	return c.id
}

func (c *PointerCapture) lose() {
	if !c.active {
		return
	}
	id := c.id
	c.Release()
	if c.OnLost != nil {
		c.OnLost(id)
	}
}
