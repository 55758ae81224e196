package domain

// Reference lookup entities. Each is just an id and a unique name used to
// populate the entry form selections and as record filter dimensions.
// Records copy the name as text at entry time (snapshot string), so deleting
// or renaming a reference row never touches existing records.

// Department Model (court departments)
type Department struct {
	ID   uint   `gorm:"primaryKey" json:"id"`        // Primary key
	Name string `gorm:"unique;not null" json:"name"` // Unique department name
}

// Capacity Model (the capacity/status a beneficiary visits in)
type Capacity struct {
	ID   uint   `gorm:"primaryKey" json:"id"`        // Primary key
	Name string `gorm:"unique;not null" json:"name"` // Unique capacity name
}

// Description Model (visit reasons)
type Description struct {
	ID   uint   `gorm:"primaryKey" json:"id"`        // Primary key
	Name string `gorm:"unique;not null" json:"name"` // Unique description text
}
