package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TxDelivery TransactionType = "delivery"
	TxReturn   TransactionType = "return"
)

// TransactionItem is one line of a delivery or return. IsDamaged only
// matters on returns, where it routes the cylinder to the repair bucket.
type TransactionItem struct {
	ProductID int  `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
	IsDamaged bool `json:"is_damaged,omitempty"`
}

// Transaction is the append-only proof-of-work record. Rows are created
// exactly once and never edited; reads are newest-first.
type Transaction struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Type       TransactionType   `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=delivery return"`
	CustomerID int               `gorm:"not null;column:customer_id" json:"customer_id" validate:"required"`
	Items      []TransactionItem `gorm:"serializer:json;not null" json:"items" validate:"required,min=1,dive"`

	// Evidence payloads: opaque data-URL strings, embedded with the record.
	PhotoData     string `gorm:"type:text;column:photo_data" json:"photo_data,omitempty"`
	SignatureData string `gorm:"type:text;column:signature_data" json:"signature_data,omitempty"`

	GPSLat *float64 `gorm:"column:gps_lat" json:"gps_lat,omitempty"`
	GPSLng *float64 `gorm:"column:gps_lng" json:"gps_lng,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Hook to generate the UUID on create.
func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// Ref is the short reference printed on receipts and notifications.
func (t *Transaction) Ref() string {
	return t.ID.String()[:8]
}
