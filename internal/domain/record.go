package domain

// Record Model (one logged visit/case interaction, insert-only)
type Record struct {
	ID              uint   `gorm:"primaryKey" json:"id"`      // Primary key
	Day             string `json:"day"`                       // Weekday label as entered
	Date            string `json:"date"`                      // Visit date (YYYY-MM-DD)
	BeneficiaryName string `json:"beneficiary_name"`          // Beneficiary full name
	IDNumber        string `json:"id_number"`                 // National id number
	PhoneNumber     string `json:"phone_number"`              // Contact phone
	CaseNumber      string `json:"case_number"`               // Court case number
	Department      string `json:"department"`                // Snapshot of the department name
	Capacity        string `json:"capacity"`                  // Snapshot of the capacity name
	Description     string `json:"description"`               // Snapshot of the visit reason
	Employee        string `json:"employee"`                  // Snapshot of the recording employee name
	CreatedAt       string `gorm:"not null" json:"created_at"` // Server-set ISO-8601 creation time
}
