package observer

// Event is a single observation. Message is optional.
type Event struct {
	Op      string
	Message string
}

// Observer is a side channel: callers never inspect what it does with an event.
type Observer interface {
	Observe(e Event)
}

type Func func(e Event)

func (f Func) Observe(e Event) {
	f(e)
}

type nop struct{}

func (nop) Observe(Event) {}

var Nop Observer = nop{}

type multi []Observer

// Multi fans every event out to all non-nil observers in order.
func Multi(observers ...Observer) Observer {
	m := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	switch len(m) {
	case 0:
		return Nop
	case 1:
		return m[0]
	}
	return m
}

func (m multi) Observe(e Event) {
	for _, o := range m {
		o.Observe(e)
	}
}
