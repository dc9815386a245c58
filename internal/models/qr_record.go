package models

// QRRecord represents one generated identifier entry, optionally carrying a
// report (title, note, uploaded file). The id is supplied by the caller at
// creation time; the batch reference is immutable afterwards.
type QRRecord struct {
	ID          string  `json:"id" gorm:"primaryKey;size:36"`
	BatchID     string  `json:"batchId" gorm:"column:batch_id;size:36;not null;index"`
	CreatedAt   int64   `json:"createdAt" gorm:"not null;autoCreateTime:false"` // epoch milliseconds
	ReportTitle *string `json:"reportTitle" gorm:"size:200"`
	ReportNote  *string `json:"reportNote" gorm:"type:text"`
	ReportFile  *string `json:"reportFile" gorm:"size:300"` // storage name inside the upload dir
	FileName    *string `json:"fileName" gorm:"size:200"`   // original name of the uploaded file
}

// TableName sets the table name for QRRecord
func (QRRecord) TableName() string {
	return "qr_records"
}

// HasAttachment reports whether the record currently owns a stored file
func (r *QRRecord) HasAttachment() bool {
	return r.ReportFile != nil && *r.ReportFile != ""
}
