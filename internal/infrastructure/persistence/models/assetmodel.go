package models

type AssetModel struct {
	ID             uint   `gorm:"primaryKey"`
	Code           string `gorm:"uniqueIndex;size:50;not null"`
	Name           string `gorm:"size:200;not null"`
	Factory        string `gorm:"size:100;index"`
	Workshop       string `gorm:"size:100;index"`
	Line           string `gorm:"size:100"`
	Station        string `gorm:"size:100"`
	Vendor         string `gorm:"size:200"`
	Model          string `gorm:"size:200"`
	SerialNumber   string `gorm:"size:100"`
	Specification  string `gorm:"type:text"`
	Status         string `gorm:"size:20;not null;index"`
	Criticality    string `gorm:"size:10"`
	CommissionedOn *int64
	CreatedBy      uint  `gorm:"not null"`
	Version        int   `gorm:"not null;default:1"`
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (AssetModel) TableName() string {
	return "assets"
}
