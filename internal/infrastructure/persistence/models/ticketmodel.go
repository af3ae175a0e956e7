package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID               uint   `gorm:"primaryKey"`
	Serial           string `gorm:"uniqueIndex;size:50;not null"`
	RequesterName    string `gorm:"size:100;not null"`
	RequesterEmail   string `gorm:"size:255;not null;index"`
	RequesterContact string `gorm:"size:50"`
	Title            string `gorm:"size:200;not null"`
	Description      string `gorm:"type:text;not null"`
	Category         string `gorm:"size:50;not null;index"`
	Priority         string `gorm:"size:20;not null;index"`
	Type             string `gorm:"size:20;not null"`
	Status           string `gorm:"size:20;not null;index"`
	OrganizationID   uint   `gorm:"not null;index"`
	PlatformID       uint   `gorm:"not null;index"`
	ResolvedRemarks  string `gorm:"type:text"`
	Attachments      datatypes.JSON
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type ActivityModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Actor     string `gorm:"size:255;not null"`
	Action    string `gorm:"size:100;not null"`
	FromValue string `gorm:"size:255"`
	ToValue   string `gorm:"size:255"`
	Detail    string `gorm:"size:1000"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ActivityModel) TableName() string {
	return "ticket_activities"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Author    string `gorm:"size:255;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
