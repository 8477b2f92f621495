package models

type WorkOrderModel struct {
	ID              uint    `gorm:"primaryKey"`
	Code            string  `gorm:"uniqueIndex;size:50;not null"`
	AssetID         uint    `gorm:"not null;index"`
	Type            string  `gorm:"size:20;not null;index"`
	Status          string  `gorm:"size:20;not null;index"`
	Summary         string  `gorm:"size:200;not null"`
	Description     string  `gorm:"type:text"`
	Priority        string  `gorm:"size:20;not null;index"`
	RequestedBy     uint    `gorm:"not null;index"`
	AssigneeID      *uint   `gorm:"index"`
	AssignedBy      *uint
	AssignedAt      *int64
	PlanID          *uint  `gorm:"index"`
	PlannedStart    *int64 `gorm:"index"`
	PlannedEnd      *int64 `gorm:"index"`
	ActualStart     *int64
	ActualEnd       *int64
	FailureCode     string  `gorm:"size:50"`
	RootCause       string  `gorm:"type:text"`
	ActionsTaken    string  `gorm:"type:text"`
	Checklist       string  `gorm:"type:json"`
	DowntimeMinutes uint    `gorm:"not null;default:0"`
	LaborHours      float64 `gorm:"not null;default:0"`
	PartsCost       float64 `gorm:"not null;default:0"`
	TotalCost       float64 `gorm:"not null;default:0"`
	CompletedBy     *uint
	CompletedAt     *int64
	ClosedBy        *uint
	ClosedAt        *int64
	Notes           string `gorm:"type:text"`
	Version         int    `gorm:"not null;default:1"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (WorkOrderModel) TableName() string {
	return "work_orders"
}
