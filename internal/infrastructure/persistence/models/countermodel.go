package models

// CounterModel backs the serial allocator. One row per named sequence; Value
// is the last handed-out number.
type CounterModel struct {
	Name      string `gorm:"primaryKey;size:50"`
	Value     int64  `gorm:"not null;default:0"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CounterModel) TableName() string {
	return "counters"
}
