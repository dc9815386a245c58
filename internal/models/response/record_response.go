package response

// RecordResponse is the caller-facing shape of a QR record. ReportFile is the
// resolved download URL of the stored attachment, not its storage name.
type RecordResponse struct {
	ID          string  `json:"id"`
	BatchID     string  `json:"batchId"`
	CreatedAt   int64   `json:"createdAt"`
	ReportTitle *string `json:"reportTitle"`
	ReportNote  *string `json:"reportNote"`
	ReportFile  *string `json:"reportFile"`
	FileName    *string `json:"fileName"`
}
