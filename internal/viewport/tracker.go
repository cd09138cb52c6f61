package viewport

import (
	"fmt"

	"github.com/asset-map-service/internal/domain"
)

// Mode — что считается видимым
type Mode string

const (
	// ModeBounds — все точки внутри окна, в том числе скрытые в кластерах
	ModeBounds Mode = "bounds"
	// ModeRendered — только точки, отрисованные по отдельности в текущем кадре
	ModeRendered Mode = "rendered"
)

// ParseMode разбирает режим видимости
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBounds, ModeRendered:
		return Mode(s), nil
	case "":
		return ModeBounds, nil
	default:
		return "", fmt.Errorf("unknown visibility mode %q", s)
	}
}

// Trigger — событие карты, которое может вызвать пересчёт
type Trigger string

const (
	TriggerLoad    Trigger = "load"
	TriggerIdle    Trigger = "idle"
	TriggerMoveEnd Trigger = "moveend"
	TriggerZoomEnd Trigger = "zoomend"
)

// View — снимок камеры карты
type View struct {
	Window Window
	Zoom   float64
}

// RenderedFunc возвращает отдельно отрисованные точки для вида
type RenderedFunc func(View) []domain.GeoPoint

// Tracker поддерживает множество видимых точек.
// Пересчёт выполняется только по moveend/zoomend, первый расчёт — после первого idle
// вслед за load. Повторные уведомления для той же камеры схлопываются.
// Не потокобезопасен: вызывается из одного обработчика событий.
type Tracker struct {
	mode     Mode
	rendered RenderedFunc
	points   []domain.GeoPoint

	loaded      bool
	initialized bool
	hasLast     bool
	last        View
}

// NewTracker создаёт трекер. Для ModeRendered нужен rendered.
func NewTracker(mode Mode, rendered RenderedFunc) *Tracker {
	if mode == ModeRendered && rendered == nil {
		mode = ModeBounds
	}
	return &Tracker{mode: mode, rendered: rendered}
}

// Mode возвращает режим видимости
func (t *Tracker) Mode() Mode {
	return t.mode
}

// SetPoints заменяет набор точек; следующий пересчёт не будет схлопнут
func (t *Tracker) SetPoints(points []domain.GeoPoint) {
	t.points = points
	t.hasLast = false
}

// Initialized проверяет, выполнен ли первый расчёт
func (t *Tracker) Initialized() bool {
	return t.initialized
}

// Handle обрабатывает событие карты. Возвращает новое множество и true,
// если событие привело к пересчёту.
func (t *Tracker) Handle(trigger Trigger, view View) (VisibleSet, bool) {
	switch trigger {
	case TriggerLoad:
		t.loaded = true
		return VisibleSet{}, false
	case TriggerIdle:
		if !t.loaded || t.initialized {
			return VisibleSet{}, false
		}
		t.initialized = true
		return t.compute(view), true
	case TriggerMoveEnd, TriggerZoomEnd:
		if !t.initialized {
			return VisibleSet{}, false
		}
		if t.hasLast && t.last == view {
			return VisibleSet{}, false
		}
		return t.compute(view), true
	default:
		return VisibleSet{}, false
	}
}

// Refresh пересчитывает множество после смены точек, если трекер уже инициализирован
func (t *Tracker) Refresh(view View) (VisibleSet, bool) {
	if !t.initialized {
		return VisibleSet{}, false
	}
	return t.compute(view), true
}

func (t *Tracker) compute(view View) VisibleSet {
	candidates := t.points
	if t.mode == ModeRendered {
		candidates = t.rendered(view)
	}

	visible := ComputeVisible(candidates, view.Window)
	t.last = view
	t.hasLast = true

	return VisibleSet{
		Window: view.Window,
		Points: visible,
		Empty:  len(visible) == 0,
	}
}
