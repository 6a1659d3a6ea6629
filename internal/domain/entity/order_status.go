package entity

// Códigos del vocabulario de estados de pedido. El motor de transiciones no
// decide por código: recibe inyectado el ID del estado consumidor de stock.
const (
	StatusCodePending    = "PENDING"
	StatusCodeProcessing = "PROCESSING"
	StatusCodeDelivered  = "DELIVERED"
	StatusCodeCancelled  = "CANCELLED"
	StatusCodeReturned   = "RETURNED"
)

// OrderStatus estado de pedido (tabla de catálogo).
type OrderStatus struct {
	ID          string
	Code        string // único, estable; ver StatusCode*
	Name        string
	Description string
	IsActive    bool
}
