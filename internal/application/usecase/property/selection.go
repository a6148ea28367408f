package property

import (
	"sync"
)

// Selection holds the currently selected property and notifies subscribers
// when it changes. A nil value means "all properties".
//
// Each subscriber has a one-slot buffer. A subscriber that falls behind loses
// intermediate values but always receives the latest one.
type Selection struct {
	mu          sync.Mutex
	current     *int64
	nextID      int
	subscribers map[int]chan *int64
}

// NewSelection creates a Selection with no property selected.
func NewSelection() *Selection {
	return &Selection{
		subscribers: make(map[int]chan *int64),
	}
}

// Get returns a copy of the selected property ID, or nil.
func (s *Selection) Get() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyID(s.current)
}

// Set replaces the selected property and publishes it to every subscriber.
func (s *Selection) Set(propertyID *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = copyID(propertyID)
	for _, ch := range s.subscribers {
		publish(ch, copyID(s.current))
	}
}

// Subscribe returns a channel that first yields the current selection and
// then every later change. The returned cancel func closes the channel and
// may be called more than once.
func (s *Selection) Subscribe() (<-chan *int64, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan *int64, 1)
	ch <- copyID(s.current)
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			close(ch)
		})
	}
	return ch, cancel
}

// publish delivers v, replacing a pending value the subscriber has not read.
// Callers hold s.mu, so there is a single sender per channel.
func publish(ch chan *int64, v *int64) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
