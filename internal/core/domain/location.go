package domain

// Location is an entry in the location catalog. Location names are compared
// by exact string equality everywhere (no case or whitespace normalization),
// so the catalog is the single place where naming discipline is enforced.
type Location struct {
	LocationID string `json:"locationID"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Region     string `json:"region"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
