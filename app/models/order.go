package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Order is an immutable snapshot of one cart line taken at checkout.
// ProductName, Price and Image are string/value copies, not foreign
// keys, so later catalog edits never alter past orders.
type Order struct {
	ID     string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID string `gorm:"size:36;not null;index"`
	User   *User  `gorm:"foreignKey:UserID"`

	ProductName string          `gorm:"size:200;not null"`
	Qty         int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Image       string          `gorm:"size:255"`

	Phone   string `gorm:"size:20;not null"`
	Address string `gorm:"type:text;not null"`

	PaymentStatus string `gorm:"size:20;default:'pending';index"`
	TransactionID string `gorm:"size:100"`

	OrderDate time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
