package input

// QueueCapacity is the fixed number of unread entries a queue holds.
const QueueCapacity = 32

// Queue is a fixed-capacity FIFO ring buffer. When full, pushing evicts the
// oldest unread entry; the newest entry is never rejected. The zero value is
// ready to use and never allocates.
type Queue[T any] struct {
	items [QueueCapacity + 1]T
	head  int
	tail  int
}

// Empty reports whether the queue holds no unread entries.
func (q *Queue[T]) Empty() bool {
	return q.head == q.tail
}

// Full reports whether the next Push will evict.
func (q *Queue[T]) Full() bool {
	return (q.tail+1)%(QueueCapacity+1) == q.head
}

// Len returns the number of unread entries.
func (q *Queue[T]) Len() int {
	if q.tail >= q.head {
		return q.tail - q.head
	}
	return q.tail + QueueCapacity + 1 - q.head
}

// Push appends an entry, evicting the oldest unread one if the queue is full.
func (q *Queue[T]) Push(item T) {
	if q.Full() {
		q.head = (q.head + 1) % (QueueCapacity + 1)
	}
	q.items[q.tail] = item
	q.tail = (q.tail + 1) % (QueueCapacity + 1)
}

// Pop removes and returns the oldest entry; ok is false when empty.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if q.Empty() {
		return item, false
	}
	item = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head = (q.head + 1) % (QueueCapacity + 1)
	return item, true
}
