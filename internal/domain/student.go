package domain

// Student Model
type Student struct {
	ID      uint   `gorm:"primaryKey" json:"-"`            // Internal primary key, never exposed
	Code    string `gorm:"uniqueIndex;not null" json:"id"` // Externally assigned student code, the lookup key
	Name    string `json:"name"`                           // Display name
	Balance int64  `gorm:"not null;default:0" json:"balance"` // Signed point balance, may go negative
}
