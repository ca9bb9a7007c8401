package gestures

import "github.com/go-drift/interact/pkg/graphics"

// PointerHandler receives pointer events.
type PointerHandler func(event PointerEvent)

type route struct {
	id      int
	handler PointerHandler
}

// PointerRouter is the document-level pointer dispatcher.
//
// It is not safe for concurrent use; all dispatch happens on the UI thread.
type PointerRouter struct {
	// Scroll is the current page scroll offset.
	Scroll graphics.Offset

	routes   []route
	nextID   int
	captures map[int64]*PointerCapture
}

// NewPointerRouter creates an empty router with no scroll offset.
func NewPointerRouter() *PointerRouter {
	return &PointerRouter{captures: make(map[int64]*PointerCapture)}
}

// Listen registers a document-level handler and returns a function that
// removes it. Calling the returned function more than once is harmless.
func (r *PointerRouter) Listen(handler PointerHandler) (remove func()) {
	if handler == nil {
		return func() {}
	}
	r.nextID++
	id := r.nextID
	r.routes = append(r.routes, route{id: id, handler: handler})
	return func() { r.remove(id) }
}

func (r *PointerRouter) remove(id int) {
	for i, rt := range r.routes {
		if rt.id == id {
			r.routes = append(r.routes[:i], r.routes[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registered document-level handlers.
func (r *PointerRouter) ListenerCount() int {
	return len(r.routes)
}

// Dispatch delivers an event to the capture holding its pointer, then to
// every document-level handler in registration order. Handlers added or
// removed during dispatch take effect for the next event. A press-ending
// event releases any capture of its pointer after delivery.
func (r *PointerRouter) Dispatch(event PointerEvent) {
	if event.Phase == PointerPhaseNone {
		return
	}
	if c := r.captures[event.PointerID]; c != nil && c.handler != nil {
		c.handler(event)
	}

	snapshot := make([]route, len(r.routes))
	copy(snapshot, r.routes)
	for _, rt := range snapshot {
		if !r.live(rt.id) {
			continue
		}
		rt.handler(event)
	}

	if event.Phase.Ends() {
		if c := r.captures[event.PointerID]; c != nil {
			c.lose()
		}
	}
}

func (r *PointerRouter) live(id int) bool {
	for _, rt := range r.routes {
		if rt.id == id {
			return true
		}
	}
	return false
}

// CaptureOwner returns the capture currently holding the pointer, or nil.
func (r *PointerRouter) CaptureOwner(pointerID int64) *PointerCapture {
	return r.captures[pointerID]
}

// PagePosition converts a client position into page coordinates.
func (r *PointerRouter) PagePosition(client graphics.Offset) graphics.Offset {
	return client.Add(r.Scroll)
}
