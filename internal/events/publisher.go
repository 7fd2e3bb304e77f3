package events

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"quotation-service/internal/models"
)

var (
	publisher     *Publisher
	publisherOnce sync.Once
	publisherMu   sync.RWMutex
)

// QuotationCreatedEvent is published after a quotation and its items
// are committed.
type QuotationCreatedEvent struct {
	EventType       string    `json:"event_type"`
	QuotationID     uint      `json:"quotation_id"`
	QuotationNumber string    `json:"quotation_number"`
	CustomerID      uint      `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	GrandTotal      float64   `json:"grand_total"`
	PlaceOfSupply   string    `json:"place_of_supply"`
	Timestamp       time.Time `json:"timestamp"`
}

// Publisher publishes quotation lifecycle events over NATS.
type Publisher struct {
	conn   *nats.Conn
	logger *logrus.Entry
}

// InitPublisher initializes the singleton NATS publisher. Event
// publishing is disabled when NATS_URL is not configured.
func InitPublisher(logger *logrus.Logger) error {
	var initErr error
	publisherOnce.Do(func() {
		natsURL := os.Getenv("NATS_URL")
		if natsURL == "" {
			logger.Warn("NATS_URL not set, event publishing disabled")
			return
		}

		conn, err := nats.Connect(natsURL,
			nats.Name("quotation-service"),
			nats.ReconnectWait(2*time.Second),
			nats.MaxReconnects(-1),
		)
		if err != nil {
			initErr = err
			return
		}

		publisherMu.Lock()
		publisher = &Publisher{
			conn:   conn,
			logger: logger.WithField("component", "events.publisher"),
		}
		publisherMu.Unlock()

		logger.Info("NATS events publisher initialized for quotation-service")
	})
	return initErr
}

// GetPublisher returns the singleton publisher instance, or nil when
// publishing is disabled.
func GetPublisher() *Publisher {
	publisherMu.RLock()
	defer publisherMu.RUnlock()
	return publisher
}

// PublishQuotationCreated publishes a quotation created event.
func (p *Publisher) PublishQuotationCreated(quotation *models.Quotation) error {
	event := QuotationCreatedEvent{
		EventType:       "quotation.created",
		QuotationID:     quotation.ID,
		QuotationNumber: quotation.QuotationNumber,
		CustomerID:      quotation.CustomerID,
		CustomerName:    quotation.Customer.Name,
		GrandTotal:      quotation.GrandTotal,
		PlaceOfSupply:   quotation.PlaceOfSupply,
		Timestamp:       time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.conn.Publish("quotation.created", data)
}

// PublishQuotationDeleted publishes a quotation deleted event.
func (p *Publisher) PublishQuotationDeleted(quotationID uint, quotationNumber string) error {
	data, err := json.Marshal(map[string]interface{}{
		"event_type":       "quotation.deleted",
		"quotation_id":     quotationID,
		"quotation_number": quotationNumber,
		"timestamp":        time.Now(),
	})
	if err != nil {
		return err
	}
	return p.conn.Publish("quotation.deleted", data)
}

// IsConnected returns true if connected to NATS
func (p *Publisher) IsConnected() bool {
	return p.conn != nil && p.conn.IsConnected()
}

// Close closes the publisher connection
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
