package input

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// EventPoller is the blocking event side of a tcell screen
type EventPoller interface {
	PollEvent() tcell.Event
}

// Keyboard latches the most recent intent from terminal key events
// Pump runs on its own goroutine; Poll is called from the game loop and never blocks
type Keyboard struct {
	keys *KeyTable

	// Directional intents waiting for the loop, oldest at head
	mu    sync.Mutex
	queue []Intent
	head  int
	n     int
	last  Intent // most recently queued

	quit atomic.Bool

	// Loop-owned latch
	latest Intent
	seen   bool
}

// NewKeyboard creates a keyboard holding at most backlog pending directions
func NewKeyboard(keys *KeyTable, backlog int) *Keyboard {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if backlog < 1 {
		backlog = 1
	}
	return &Keyboard{
		keys:  keys,
		queue: make([]Intent, backlog),
	}
}

// Pump forwards events from p until p is finalized or ctx is done
func (k *Keyboard) Pump(ctx context.Context, p EventPoller) error {
	for {
		ev := p.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}
		k.Push(ev)
		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}

// Push decodes ev and queues its intent, false if nothing was queued
// Quit bypasses the queue. A direction equal to the last queued one is collapsed,
// so key auto-repeat cannot build a backlog. A full queue drops its oldest entry
func (k *Keyboard) Push(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	intent := k.keys.Lookup(key)
	switch intent {
	case IntentNone:
		return false
	case IntentQuit:
		k.quit.Store(true)
		return true
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if intent == k.last {
		return false
	}
	if k.n == len(k.queue) {
		k.head = (k.head + 1) % len(k.queue)
		k.n--
	}
	k.queue[(k.head+k.n)%len(k.queue)] = intent
	k.n++
	k.last = intent
	return true
}

// Pending returns the number of queued directions
func (k *Keyboard) Pending() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.n
}

// Poll applies at most one queued direction and returns the latched intent
// Quit is applied as soon as it is pushed and is never replaced
func (k *Keyboard) Poll() (Intent, bool) {
	if k.latest == IntentQuit {
		return k.latest, k.seen
	}
	if k.quit.Load() {
		k.latest, k.seen = IntentQuit, true
		return k.latest, k.seen
	}

	k.mu.Lock()
	if k.n > 0 {
		k.latest, k.seen = k.queue[k.head], true
		k.head = (k.head + 1) % len(k.queue)
		k.n--
	}
	k.mu.Unlock()

	return k.latest, k.seen
}
