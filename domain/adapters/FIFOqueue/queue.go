package FIFOqueue

import (
	"errors"
	"sync/atomic"

	"github.com/antigloss/go/concurrent/container/queue"
)

// ErrNilValue is returned when pushing nil, which the queue uses to signal emptiness.
var ErrNilValue = errors.New("fifo queue: nil value")

type FIFOQueue struct {
	queue *queue.LockfreeQueue
	size  int64
}

func New() *FIFOQueue {
	return &FIFOQueue{
		queue: queue.NewLockfreeQueue(),
		size:  0,
	}
}

func (q *FIFOQueue) Push(v interface{}) error {
	if v == nil {
		return ErrNilValue
	}
	q.queue.Push(v)
	atomic.AddInt64(&q.size, 1)
	return nil
}

// Pop returns the oldest value, or false when the queue is empty.
func (q *FIFOQueue) Pop() (interface{}, bool) {
	v := q.queue.Pop()
	if v == nil {
		return nil, false
	}
	atomic.AddInt64(&q.size, -1)
	return v, true
}

func (q *FIFOQueue) Len() int {
	return int(atomic.LoadInt64(&q.size))
}
