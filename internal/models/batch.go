package models

// Batch represents a named group of QR records created together
type Batch struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	Name      string `json:"name" gorm:"size:100;not null"`
	CreatedAt int64  `json:"createdAt" gorm:"not null;autoCreateTime:false"` // epoch milliseconds
}

// TableName sets the table name for Batch
func (Batch) TableName() string {
	return "batches"
}
