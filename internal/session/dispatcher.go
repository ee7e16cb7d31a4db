package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/akobirdev/surveybot/internal/models"
)

// Handler processes one inbound event.
type Handler func(ctx context.Context, ev models.InboundEvent)

// Dispatcher serializes event handling per chat. Events from the same
// chat run in arrival order on a single goroutine; events from different
// chats run concurrently. This keeps a burst of taps from racing each
// other over one session record.
type Dispatcher struct {
	handler Handler

	mu      sync.Mutex
	queues  map[int64][]models.InboundEvent
	stopped bool
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// NewDispatcher creates a Dispatcher delivering events to handler.
func NewDispatcher(handler Handler) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		handler: handler,
		queues:  make(map[int64][]models.InboundEvent),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Dispatch enqueues an event for its chat. The first event for an idle
// chat starts a drainer goroutine; subsequent events join its queue.
func (d *Dispatcher) Dispatch(ev models.InboundEvent) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		slog.Debug("Dispatcher dropping event after stop", "chat", ev.ChatID)
		return
	}
	pending, active := d.queues[ev.ChatID]
	d.queues[ev.ChatID] = append(pending, ev)
	if !active {
		d.wg.Add(1)
		go d.drain(ev.ChatID)
	}
	d.mu.Unlock()
}

func (d *Dispatcher) drain(chatID int64) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		queue := d.queues[chatID]
		if len(queue) == 0 {
			delete(d.queues, chatID)
			d.mu.Unlock()
			return
		}
		ev := queue[0]
		d.queues[chatID] = queue[1:]
		d.mu.Unlock()

		d.handler(d.ctx, ev)
	}
}

// Stop rejects new events and waits for in-flight and queued handlers to
// finish. Their context stays live until the drain completes, so a
// handler started before Stop can still reach the gateway and registry.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	d.wg.Wait()
	d.cancel()
}
