package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusUpdated = "order_status_updated"
	EventCatalogChanged     = "catalog_changed"
)

type CatalogChange struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	ID       string `json:"id,omitempty"`
}
