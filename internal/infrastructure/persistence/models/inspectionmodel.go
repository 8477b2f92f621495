package models

type InspectionRecordModel struct {
	ID            uint   `gorm:"primaryKey"`
	AssetID       uint   `gorm:"not null;index"`
	InspectorID   uint   `gorm:"not null;index"`
	Item          string `gorm:"size:200;not null"`
	Result        string `gorm:"size:10;not null;index"`
	MeasuredValue *float64
	StandardRange string `gorm:"size:100"`
	Notes         string `gorm:"type:text"`
	InspectedAt   int64  `gorm:"not null;index"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
}

func (InspectionRecordModel) TableName() string {
	return "inspection_records"
}
