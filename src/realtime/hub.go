// Package realtime implementa el feed de cambios del almacén: un plugin de
// GORM captura inserciones y actualizaciones sobre las tablas observadas y
// el Hub las entrega a los suscriptores activos. El feed es best-effort y
// nunca autoritativo: los consumidores deduplican por id y reconcilian con
// una relectura directa cuando hace falta.
package realtime

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Operation string

const (
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
)

// Event es el sobre de un cambio de fila. Row lleva los campos de la fila
// por nombre de columna; RecordID es 0 en actualizaciones masivas, donde el
// consumidor debe reconciliar releyendo.
type Event struct {
	Operation Operation              `json:"operation"`
	Table     string                 `json:"table"`
	RecordID  uint                   `json:"record_id,omitempty"`
	Row       map[string]interface{} `json:"row"`
	Timestamp time.Time              `json:"timestamp"`
}

// visibleTo limita la entrega a las filas en las que el usuario participa,
// el equivalente de la visibilidad por filas que el almacén original
// imponía en el cable. El filtrado por conversación sigue siendo
// responsabilidad del consumidor. Un evento sin participantes (una
// actualización masiva, p. ej. el volcado de banderas de lectura) es un
// aviso a nivel de tabla y se entrega a todos para que reconcilien
// releyendo.
func (e Event) visibleTo(userID string) bool {
	sender, hasSender := e.Row["sender_id"].(string)
	receiver, hasReceiver := e.Row["receiver_id"].(string)

	if !hasSender && !hasReceiver {
		return true
	}

	return (hasSender && sender == userID) || (hasReceiver && receiver == userID)
}

const subscriptionBuffer = 32

// Subscription es el handle de una suscripción activa. El consumidor debe
// llamar a Close al dejar de observar para no filtrar canales abiertos.
type Subscription struct {
	id     string
	userID string
	events chan Event
	hub    *Hub
	once   sync.Once
}

// Events es el canal de entrega; se cierra con Close.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Close da de baja la suscripción y cierra el canal de eventos.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s.id)
	})
}

// Hub reparte eventos de cambio a los suscriptores registrados.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscription
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]*Subscription),
	}
}

// Subscribe registra interés en los cambios visibles para userID y devuelve
// el handle con el ciclo de vida de la suscripción.
func (h *Hub) Subscribe(userID string) *Subscription {
	sub := &Subscription{
		id:     uuid.NewString(),
		userID: userID,
		events: make(chan Event, subscriptionBuffer),
		hub:    h,
	}

	h.mu.Lock()
	h.subscribers[sub.id] = sub
	h.mu.Unlock()

	return sub
}

// Publish entrega el evento a cada suscriptor que puede verlo. La entrega
// no bloquea: un suscriptor con el buffer lleno pierde el evento y debe
// reconciliar releyendo.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		if !event.visibleTo(sub.userID) {
			continue
		}
		select {
		case sub.events <- event:
		default:
		}
	}
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(sub.events)
	}
}

// SubscriberCount devuelve el número de suscripciones activas.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
