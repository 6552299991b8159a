package model

import "time"

// WarrantyStatus 保修状态
// expired 不做持久化流转：到期判断统一走 EffectiveStatus，读路径只认计算结果
type WarrantyStatus string

const (
	WarrantyActive  WarrantyStatus = "active"
	WarrantyExpired WarrantyStatus = "expired"
	WarrantyClaimed WarrantyStatus = "claimed"
	WarrantyVoided  WarrantyStatus = "voided"
)

func (s WarrantyStatus) Valid() bool {
	switch s {
	case WarrantyActive, WarrantyExpired, WarrantyClaimed, WarrantyVoided:
		return true
	}
	return false
}

// ExpiringSoonWindow 临期判定窗口
const ExpiringSoonWindow = 30 * 24 * time.Hour

// Warranty 保修单
type Warranty struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	ProductID         uint           `gorm:"index;not null" json:"productId"`
	CustomerID        uint           `gorm:"index;not null" json:"customerId"`
	OrderID           *uint          `gorm:"index" json:"orderId,omitempty"`
	SerialNumber      string         `gorm:"type:varchar(100)" json:"serialNumber,omitempty"`
	PurchaseDate      time.Time      `json:"purchaseDate"`
	WarrantyStartDate time.Time      `json:"warrantyStartDate"`
	WarrantyEndDate   time.Time      `json:"warrantyEndDate"`
	Status            WarrantyStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	ClaimDate         *time.Time     `json:"claimDate,omitempty"`
	ClaimReason       string         `gorm:"type:text" json:"claimReason,omitempty"`
	ResolutionNotes   string         `gorm:"type:text" json:"resolutionNotes,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// EffectiveStatus 对外呈现的状态：active 且已过保则报 expired
func (w *Warranty) EffectiveStatus(now time.Time) WarrantyStatus {
	if w.Status == WarrantyActive && now.After(w.WarrantyEndDate) {
		return WarrantyExpired
	}
	return w.Status
}

// ExpiringSoon 30 天内到期且仍为 active
func (w *Warranty) ExpiringSoon(now time.Time) bool {
	if w.EffectiveStatus(now) != WarrantyActive {
		return false
	}
	return w.WarrantyEndDate.Before(now.Add(ExpiringSoonWindow))
}

func (Warranty) TableName() string {
	return "warranties"
}
