package models

type PlanModel struct {
	ID                uint   `gorm:"primaryKey"`
	Code              string `gorm:"uniqueIndex;size:50;not null"`
	AssetID           uint   `gorm:"not null;index"`
	Title             string `gorm:"size:200;not null"`
	Description       string `gorm:"type:text"`
	TriggerType       string `gorm:"size:20;not null;index"`
	FrequencyValue    uint   `gorm:"not null;default:0"`
	FrequencyUnit     string `gorm:"size:20"`
	CounterName       string `gorm:"size:50"`
	CounterThreshold  *float64
	ChecklistTemplate string `gorm:"type:json"`
	EstimatedHours    *float64
	EstimatedCost     *float64
	RequiredSkills    string `gorm:"size:200"`
	Priority          string `gorm:"size:20;not null"`
	IsActive          bool   `gorm:"not null;default:true;index"`
	LastGeneratedDate *int64
	LastCounterValue  *float64
	CreatedBy         uint  `gorm:"not null"`
	Version           int   `gorm:"not null;default:1"`
	CreatedAt         int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (PlanModel) TableName() string {
	return "maintenance_plans"
}
