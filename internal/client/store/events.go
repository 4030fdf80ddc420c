package store

// Action names a store operation. Sync coordinators are configured with
// the actions that trigger a push or a pull.
type Action string

const (
	ActionLoadItems         Action = "loadItems"
	ActionCreateItem        Action = "createItem"
	ActionUpdateItem        Action = "updateItem"
	ActionDeleteItem        Action = "deleteItem"
	ActionClearAll          Action = "clearAll"
	ActionListItems         Action = "listItems"
	ActionSwitchStorageMode Action = "switchStorageMode"
	ActionRealtimeUpdate    Action = "realtimeUpdate"
	ActionMerge             Action = "merge"
)

// Event is emitted after an action completed successfully.
type Event struct {
	Store  string // ключ коллекции
	Action Action
	ItemID string // пусто для действий над всей коллекцией
}

// Subscribe registers fn for store events and returns a cancel func.
// fn runs synchronously in the goroutine that performed the action.
func (s *Store[T]) Subscribe(fn func(ev Event)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store[T]) emit(ev Event) {
	ev.Store = s.cfg.Name

	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
