package input

// Queue - events polled from the platform since the last drain.
type Queue struct {
	events []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

func (that *Queue) Push(event Event) {
	that.events = append(that.events, event)
}

// Drain - returns queued events and empties the queue.
func (that *Queue) Drain() []Event {
	events := that.events
	that.events = nil

	return events
}
