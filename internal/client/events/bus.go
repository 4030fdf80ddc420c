// Package events is a small in-process publish/subscribe bus that
// carries storage change notifications between components.
package events

import (
	"encoding/json"
	"sync"
)

// Event describes a change of one storage key.
type Event struct {
	Topic   string
	Key     string
	Value   json.RawMessage // новое значение, nil для удаления
	Deleted bool
}

// Handler processes a published event.
type Handler func(ev Event)

// UpdatedTopic is published after key was written.
func UpdatedTopic(key string) string {
	return "storage:" + key + ":updated"
}

// DeletedTopic is published after key was removed.
func DeletedTopic(key string) string {
	return "storage:" + key + ":deleted"
}

// Bus dispatches events to topic subscribers synchronously, in the
// publisher's goroutine and outside the bus lock.
type Bus struct {
	handlers map[string]map[uint64]Handler
	next     uint64
	mu       sync.RWMutex
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[string]map[uint64]Handler)}
}

// Subscribe registers h for topic. The returned func removes it.
func (b *Bus) Subscribe(topic string, h Handler) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[uint64]Handler)
	}
	b.handlers[topic][id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers[topic], id)
			if len(b.handlers[topic]) == 0 {
				delete(b.handlers, topic)
			}
		})
	}
}

// Publish delivers ev to every subscriber of ev.Topic.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.handlers[ev.Topic]))
	for _, h := range b.handlers[ev.Topic] {
		hs = append(hs, h)
	}
	b.mu.RUnlock()

	for _, h := range hs {
		h(ev)
	}
}

// Subscribers returns the number of handlers registered for topic.
func (b *Bus) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[topic])
}
