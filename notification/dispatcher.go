package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

const (
	EventPlaced        = "placed"
	EventStatusChanged = "status"
)

type Recipient struct {
	Name        string
	Email       string
	DeviceToken string
}

// Job describes one notification about one order mutation.
type Job struct {
	OrderID       string
	UserID        string
	Event         string
	Status        string
	PaymentStatus string
	TotalAmount   float64
	// UpdatedAt is the order's updatedAt after the mutation. It tells two
	// transitions to the same status apart.
	UpdatedAt     time.Time
	Recipient     Recipient
	Message       Message
}

// DedupKey identifies a job across replicas. Only a replay of the same
// mutation maps to the same key.
func (j Job) DedupKey() string {
	if j.Event == EventStatusChanged {
		return fmt.Sprintf("notify:%s:%s:%s:%d", j.OrderID, j.Event, j.Status, j.UpdatedAt.UnixMilli())
	}
	return fmt.Sprintf("notify:%s:%s", j.OrderID, j.Event)
}

// Channel delivers a job over one medium. Channels skip jobs whose recipient
// they cannot reach and return nil.
type Channel interface {
	Name() string
	Deliver(ctx context.Context, job Job) error
}

type Deduper interface {
	FirstDelivery(ctx context.Context, key string) (bool, error)
}

type Options struct {
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
	Dedup       Deduper
}

// Dispatcher fans jobs out to its channels from a bounded queue. Delivery is
// at-most-once: Enqueue drops jobs when the queue is full, each channel is
// tried once and failures are only logged.
type Dispatcher struct {
	channels []Channel
	dedup    Deduper
	timeout  time.Duration
	workers  int
	queue    chan Job
	wg       sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(opts Options, channels ...Channel) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 10 * time.Second
	}
	return &Dispatcher{
		channels: channels,
		dedup:    opts.Dedup,
		timeout:  opts.SendTimeout,
		workers:  opts.Workers,
		queue:    make(chan Job, opts.QueueSize),
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for job := range d.queue {
				d.process(job)
			}
		}()
	}
	log.Printf("notification dispatcher started with %d workers and %d channels", d.workers, len(d.channels))
}

// Enqueue hands job to the workers without blocking and reports whether it
// was accepted.
func (d *Dispatcher) Enqueue(job Job) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed || len(d.channels) == 0 {
		return false
	}
	select {
	case d.queue <- job:
		return true
	default:
		log.Printf("notification queue full, dropping %s for order %s", job.Event, job.OrderID)
		return false
	}
}

// Stop rejects new jobs and waits for queued ones until ctx expires.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) process(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if d.dedup != nil {
		first, err := d.dedup.FirstDelivery(ctx, job.DedupKey())
		if err != nil {
			log.Printf("notification dedup check failed for %s: %v", job.DedupKey(), err)
		} else if !first {
			return
		}
	}

	for _, ch := range d.channels {
		if err := ch.Deliver(ctx, job); err != nil {
			log.Printf("notification via %s failed for order %s: %v", ch.Name(), job.OrderID, err)
		}
	}
}
