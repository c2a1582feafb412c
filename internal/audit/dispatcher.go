package audit

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type Event struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Recorder is what services report mutations to.
type Recorder interface {
	Record(ctx context.Context, action, entity, entityID string, metadata any)
}

type Writer interface {
	Log(ev Event) error
}

type Dispatcher struct {
	writer Writer
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(writer Writer, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.writer.Log(ev); err != nil {
			slog.Error("audit write failed",
				"action", ev.Action,
				"entity", ev.Entity,
				"entity_id", ev.EntityID,
				"error", err,
			)
		}
	}
}

func (d *Dispatcher) Record(ctx context.Context, action, entity, entityID string, metadata any) {
	d.Dispatch(Event{
		ActorID:  ActorFrom(ctx),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	})
}

// Dispatch never blocks: a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		slog.Warn("audit queue full, dropping event", "action", ev.Action, "entity", ev.Entity)
	}
}

// Close stops accepting events and waits until the queue is drained.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

// Changed summarizes an update by column name, leaving values out.
func Changed(fields map[string]any) map[string]any {
	return map[string]any{"fields": slices.Sorted(maps.Keys(fields))}
}

type Nop struct{}

func (Nop) Record(context.Context, string, string, string, any) {}

type actorKey struct{}

func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

func ActorFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(actorKey{}).(string)
	return id
}
