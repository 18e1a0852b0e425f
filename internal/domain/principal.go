package domain

// SubjectType differentiates resident vs admin tokens.
type SubjectType string

const (
	SubjectTypeResident SubjectType = "RESIDENT"
	SubjectTypeAdmin    SubjectType = "ADMIN"
)

// ResidentRef carries the display fields joined into resident-owned records.
type ResidentRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LoginID string `json:"loginId"`
}

// AdminRef identifies the admin who handled a record.
type AdminRef struct {
	ID      string `json:"id"`
	AdminID string `json:"adminId"`
}
