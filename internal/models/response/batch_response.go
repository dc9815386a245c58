package response

// BatchResponse is a batch summary annotated with its current record count
type BatchResponse struct {
	ID        string `json:"id" gorm:"column:id"`
	Name      string `json:"name" gorm:"column:name"`
	CreatedAt int64  `json:"createdAt" gorm:"column:created_at"`
	QRCount   int64  `json:"qrCount" gorm:"column:qr_count"`
}
