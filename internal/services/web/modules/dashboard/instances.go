package dashboard

import (
	"container/list"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/renderdemo/internal/view"
)

const (
	defaultInstanceTTL  = 30 * time.Minute
	defaultMaxInstances = 1024
)

// instance is one mounted echo view. mu serialises updates and renders.
type instance struct {
	id    string
	mu    sync.Mutex
	echo  *view.Echo
	dirty bool
	out   view.EchoOutput

	lastUsed time.Time
	elem     *list.Element
}

// invalidate is the host re-render trigger handed to the echo view.
func (i *instance) invalidate() {
	i.dirty = true
}

// update commits text. A render pass runs only when the view invalidated
// itself; otherwise the last rendered output is returned.
func (i *instance) update(text string) view.EchoOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.echo.Update(text)
	if i.dirty {
		i.out = i.echo.Render()
		i.dirty = false
	}
	return i.out
}

// render runs a render pass unconditionally.
func (i *instance) render() view.EchoOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.out = i.echo.Render()
	i.dirty = false
	return i.out
}

// registry owns the mounted instances, most recently used at the front.
type registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	now     func() time.Time
	newEcho func(view.Invalidator) *view.Echo
	byID    map[string]*instance
	order   *list.List
}

func newRegistry(ttl time.Duration, max int, logger *log.Logger) *registry {
	if logger == nil {
		logger = log.Default()
	}
	if ttl <= 0 {
		ttl = defaultInstanceTTL
	}
	if max <= 0 {
		max = defaultMaxInstances
	}
	return &registry{
		ttl: ttl,
		max: max,
		now: time.Now,
		newEcho: func(inv view.Invalidator) *view.Echo {
			return view.NewEcho(view.WithLogger(logger), view.WithInvalidator(inv))
		},
		byID:  make(map[string]*instance),
		order: list.New(),
	}
}

// mount creates a fresh instance with empty state.
func (r *registry) mount() *instance {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.expireLocked(now)
	for r.order.Len() >= r.max {
		r.removeLocked(r.order.Back().Value.(*instance))
	}

	inst := &instance{id: uuid.NewString(), lastUsed: now}
	inst.echo = r.newEcho(view.InvalidatorFunc(inst.invalidate))
	inst.elem = r.order.PushFront(inst)
	r.byID[inst.id] = inst
	return inst
}

// lookup returns a live instance and marks it used.
func (r *registry) lookup(id string) (*instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	inst, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	if now.Sub(inst.lastUsed) > r.ttl {
		r.removeLocked(inst)
		return nil, false
	}
	inst.lastUsed = now
	r.order.MoveToFront(inst.elem)
	return inst, true
}

// rekey moves inst to a fresh id and returns it. A full-page response carries
// the new id, so teardown sent by the page being replaced misses it.
func (r *registry) rekey(inst *instance) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.byID[inst.id]; !ok || current != inst {
		return "", false
	}
	delete(r.byID, inst.id)
	inst.id = uuid.NewString()
	r.byID[inst.id] = inst
	return inst.id, true
}

// unmount discards an instance and its state.
func (r *registry) unmount(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.byID[id]
	if !ok {
		return false
	}
	r.removeLocked(inst)
	return true
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

func (r *registry) expireLocked(now time.Time) {
	for elem := r.order.Back(); elem != nil; {
		inst := elem.Value.(*instance)
		if now.Sub(inst.lastUsed) <= r.ttl {
			return
		}
		prev := elem.Prev()
		r.removeLocked(inst)
		elem = prev
	}
}

func (r *registry) removeLocked(inst *instance) {
	r.order.Remove(inst.elem)
	delete(r.byID, inst.id)
}
