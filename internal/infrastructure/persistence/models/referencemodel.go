package models

type OrganizationModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:200;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

type PlatformModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:200;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (PlatformModel) TableName() string {
	return "platforms"
}
