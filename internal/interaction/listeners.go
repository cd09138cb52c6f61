package interaction

// Listener — подписка, которую ListenerSet регистрирует на поверхности
type Listener struct {
	Event   EventType
	Layer   string
	Handler Handler
}

// Token — идентификатор группы подписок, выданный Attach
type Token uint64

// ListenerSet учитывает подписки на поверхности карты группами.
// Каждому Attach соответствует ровно один Detach; Dispose снимает всё, что осталось.
type ListenerSet struct {
	surface  MapSurface
	next     Token
	groups   map[Token][]ListenerID
	disposed bool
}

func NewListenerSet(surface MapSurface) *ListenerSet {
	return &ListenerSet{
		surface: surface,
		groups:  make(map[Token][]ListenerID),
	}
}

// Attach регистрирует группу подписок. После Dispose ничего не регистрирует и возвращает 0.
func (s *ListenerSet) Attach(listeners []Listener) Token {
	if s.disposed {
		return 0
	}

	s.next++
	ids := make([]ListenerID, 0, len(listeners))
	for _, l := range listeners {
		ids = append(ids, s.surface.On(l.Event, l.Layer, l.Handler))
	}
	s.groups[s.next] = ids
	return s.next
}

// Detach снимает группу. Возвращает false, если токен неизвестен или уже снят.
func (s *ListenerSet) Detach(token Token) bool {
	ids, ok := s.groups[token]
	if !ok {
		return false
	}
	for _, id := range ids {
		s.surface.Off(id)
	}
	delete(s.groups, token)
	return true
}

// Active возвращает число групп, которые ещё не сняты
func (s *ListenerSet) Active() int {
	return len(s.groups)
}

// Dispose снимает все группы; повторный вызов ничего не делает
func (s *ListenerSet) Dispose() {
	if s.disposed {
		return
	}
	for token := range s.groups {
		s.Detach(token)
	}
	s.disposed = true
}
