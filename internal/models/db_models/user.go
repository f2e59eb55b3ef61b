package db_models

type User struct {
	BaseModel
	Email    string `gorm:"unique;not null"`
	Username string `gorm:"unique;not null"`
	// Empty for accounts created through Google OAuth.
	PasswordHash   string
	GoogleID       string `gorm:"uniqueIndex;default:null"`
	ProfilePicture string

	Trips []SavedTrip `gorm:"constraint:OnDelete:CASCADE"`
}
