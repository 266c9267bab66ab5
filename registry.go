package aspen

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type flickHandler struct {
	id uint32
	fn func(FlickContext)
}

type hoverHandler struct {
	id uint32
	fn func(HoverContext)
}

type handlerRegistry struct {
	click       []clickHandler
	doubleClick []clickHandler
	longPress   []clickHandler
	flick       []flickHandler
	hover       []hoverHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered container-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventClick:
		h.reg.click = removeClickHandler(h.reg.click, h.id)
	case EventDoubleClick:
		h.reg.doubleClick = removeClickHandler(h.reg.doubleClick, h.id)
	case EventLongPress:
		h.reg.longPress = removeClickHandler(h.reg.longPress, h.id)
	case EventFlick:
		h.reg.flick = removeFlickHandler(h.reg.flick, h.id)
	case EventHoverEnter:
		h.reg.hover = removeHoverHandler(h.reg.hover, h.id)
	}
}

func removeClickHandler(s []clickHandler, id uint32) []clickHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = clickHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeFlickHandler(s []flickHandler, id uint32) []flickHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = flickHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeHoverHandler(s []hoverHandler, id uint32) []hoverHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = hoverHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Container-level event registration ---

// OnClick registers a container-level callback fired for every click on any
// region. Container-level handlers run before the region's own callback.
func (f *Flickable) OnClick(fn func(ClickContext)) CallbackHandle {
	f.handlers.nextID++
	id := f.handlers.nextID
	f.handlers.click = append(f.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &f.handlers, event: EventClick}
}

// OnDoubleClick registers a container-level callback for double-clicks.
func (f *Flickable) OnDoubleClick(fn func(ClickContext)) CallbackHandle {
	f.handlers.nextID++
	id := f.handlers.nextID
	f.handlers.doubleClick = append(f.handlers.doubleClick, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &f.handlers, event: EventDoubleClick}
}

// OnLongPress registers a container-level callback for long presses.
func (f *Flickable) OnLongPress(fn func(ClickContext)) CallbackHandle {
	f.handlers.nextID++
	id := f.handlers.nextID
	f.handlers.longPress = append(f.handlers.longPress, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &f.handlers, event: EventLongPress}
}

// OnFlick registers a container-level callback fired on every step that
// changes the viewport offset: each drag move, each wheel event, each
// deceleration tick.
func (f *Flickable) OnFlick(fn func(FlickContext)) CallbackHandle {
	f.handlers.nextID++
	id := f.handlers.nextID
	f.handlers.flick = append(f.handlers.flick, flickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &f.handlers, event: EventFlick}
}

// OnHoverChange registers a container-level callback for hover enter and
// leave transitions on any region.
func (f *Flickable) OnHoverChange(fn func(HoverContext)) CallbackHandle {
	f.handlers.nextID++
	id := f.handlers.nextID
	f.handlers.hover = append(f.handlers.hover, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &f.handlers, event: EventHoverEnter}
}
