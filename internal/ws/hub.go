package ws

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ignatzorin/review-platform/internal/goroutine"
	"github.com/ignatzorin/review-platform/internal/logger"
	"github.com/ignatzorin/review-platform/internal/models"
)

// Hub управляет подключениями модераторов к ленте жалоб.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub создаёт новый хаб.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 32),
	}
}

// Run запускает главный цикл хаба.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case payload := <-h.broadcast:
			h.send(payload)
		}
	}
}

// Register добавляет клиента.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast отправляет событие всем подключённым модераторам.
// Поле "type" содержит имя события, "data" — полезную нагрузку.
func (h *Hub) Broadcast(event string, data any) error {
	payload := map[string]any{
		"type": event,
		"data": data,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ws: не удалось сериализовать сообщение: %w", err)
	}

	h.broadcast <- raw
	return nil
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

func (h *Hub) send(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Клиент не успевает читать — закрываем соединение асинхронно.
			c := client
			goroutine.SafeGo(logger.WithComponent("ws"), func() {
				c.Close()
			})
		}
	}
}

// ReportFeed адаптирует хаб под moderation.ReportPublisher.
type ReportFeed struct {
	hub *Hub
}

// NewReportFeed создаёт адаптер ленты жалоб.
func NewReportFeed(hub *Hub) *ReportFeed {
	return &ReportFeed{hub: hub}
}

// PublishReport рассылает новую жалобу подключённым модераторам.
func (f *ReportFeed) PublishReport(report models.Report) {
	if err := f.hub.Broadcast("report.filed", report); err != nil {
		logger.WithComponent("ws").Errorf("не удалось разослать жалобу: %v", err)
	}
}
