package state

// Counter is the state of the counter page.
type Counter struct {
	Count int
}

func (c *Counter) Increment() {
	c.Count++
}

func (c *Counter) Decrement() {
	c.Count--
}
