package models

import "time"

// MaterialStatus represents where a material request is in the store workflow
type MaterialStatus string

const (
	MaterialStatusPending   MaterialStatus = "pending"
	MaterialStatusAvailable MaterialStatus = "available"
	// MaterialStatusRequested means the item is out of stock and has been ordered
	MaterialStatusRequested MaterialStatus = "requested"
	MaterialStatusCollected MaterialStatus = "collected"
)

// MaterialRequest is a staff request for store items needed to finish a job
type MaterialRequest struct {
	ID           int            `json:"id"`
	ItemName     string         `json:"item_name"`
	Quantity     int            `json:"quantity"`
	RoomNo       string         `json:"room_no"`
	RequestedBy  string         `json:"requested_by"`
	Department   string         `json:"department"`
	Status       MaterialStatus `json:"status"`
	RequestDate  time.Time      `json:"request_date"`
	InStock      bool           `json:"in_stock"`
	Description  string         `json:"description,omitempty"`
	PermissionID string         `json:"permission_id,omitempty"`
	CollectedAt  *time.Time     `json:"collected_at,omitempty"`
}

// CanMarkAvailable reports whether the store can hand out the item
func (m MaterialRequest) CanMarkAvailable() bool {
	return m.Status == MaterialStatusPending && m.InStock
}

// MaterialInput holds the fields of the staff material request form
type MaterialInput struct {
	ItemName    string
	Quantity    int
	RoomNo      string
	RequestedBy string
	Department  string
	Description string
}

// MaterialStats are the counters at the top of the store dashboard
type MaterialStats struct {
	Pending    int `json:"pending"`
	Available  int `json:"available"`
	OutOfStock int `json:"out_of_stock"`
	Collected  int `json:"collected"`
}
