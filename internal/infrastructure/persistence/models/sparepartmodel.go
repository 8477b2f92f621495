package models

type SparePartModel struct {
	ID            uint    `gorm:"primaryKey"`
	Code          string  `gorm:"uniqueIndex;size:50;not null"`
	Name          string  `gorm:"size:200;not null"`
	Specification string  `gorm:"type:text"`
	Category      string  `gorm:"size:100;index"`
	Unit          string  `gorm:"size:20"`
	Supplier      string  `gorm:"size:200"`
	Quantity      float64 `gorm:"not null;default:0"`
	SafetyStock   float64 `gorm:"not null;default:0"`
	MinQuantity   float64 `gorm:"not null;default:0"`
	MaxQuantity   float64 `gorm:"not null;default:0"`
	UnitPrice     float64 `gorm:"not null;default:0"`
	Location      string  `gorm:"size:100"`
	Version       int     `gorm:"not null;default:1"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (SparePartModel) TableName() string {
	return "spare_parts"
}

type StockMovementModel struct {
	ID            uint    `gorm:"primaryKey"`
	PartID        uint    `gorm:"not null;index"`
	Type          string  `gorm:"size:20;not null;index"`
	Quantity      float64 `gorm:"not null"`
	QuantityAfter float64 `gorm:"not null"`
	WorkOrderID   *uint   `gorm:"index"`
	Reason        string  `gorm:"size:500"`
	PerformedBy   uint    `gorm:"not null"`
	OccurredAt    int64   `gorm:"not null;index"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
}

func (StockMovementModel) TableName() string {
	return "stock_movements"
}
