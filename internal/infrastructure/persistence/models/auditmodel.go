package models

type AuditEntryModel struct {
	ID         uint   `gorm:"primaryKey"`
	ActorID    uint   `gorm:"not null;index"`
	Action     string `gorm:"size:20;not null;index"`
	EntityType string `gorm:"size:50;not null;index"`
	EntityID   string `gorm:"size:50;index"`
	Snapshot   string `gorm:"type:json"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditEntryModel) TableName() string {
	return "audit_entries"
}
