package sim

// ListenerID identifies an attached hit listener.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn func()
}

// HitChannel fans a payload-free "a hit occurred" signal out to listeners.
// Listeners run synchronously in attachment order. The listener list is
// snapshotted when a pass starts, so Attach and Detach called from inside a
// listener take effect on the next Notify.
type HitChannel struct {
	listeners []listener
	nextID    ListenerID
}

// NewHitChannel creates a channel with no listeners.
func NewHitChannel() *HitChannel {
	return &HitChannel{}
}

// Attach registers fn and returns the handle used to detach it.
func (c *HitChannel) Attach(fn func()) ListenerID {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	return id
}

// Detach removes a listener. Returns false if id is not attached.
func (c *HitChannel) Detach(id ListenerID) bool {
	for i, l := range c.listeners {
		if l.id != id {
			continue
		}
		// Fresh slice: a pass in progress keeps iterating its own snapshot.
		next := make([]listener, 0, len(c.listeners)-1)
		next = append(next, c.listeners[:i]...)
		next = append(next, c.listeners[i+1:]...)
		c.listeners = next
		return true
	}
	return false
}

// Len returns the number of attached listeners.
func (c *HitChannel) Len() int {
	return len(c.listeners)
}

// Notify invokes every listener once.
func (c *HitChannel) Notify() {
	snapshot := c.listeners
	for _, l := range snapshot {
		l.fn()
	}
}
