package models

// Settings is a single-row table of display preferences. None of these feed
// into any derivation; they only travel through backup export/import.
type Settings struct {
	ID              uint   `gorm:"primary_key" json:"-"`
	PrimaryColor    string `gorm:"default:'#4b5320'" json:"primaryColor"`
	SecondaryColor  string `gorm:"default:'#fffdd0'" json:"secondaryColor"`
	BackgroundImage string `json:"backgroundImage"`
}
