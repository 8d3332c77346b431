package dto

// SettingsResponse paramètres du congélateur de l'utilisateur.
type SettingsResponse struct {
	DrawerCount int `json:"drawer_count"`
}

// UpdateSettingsRequest mise à jour directe des paramètres.
type UpdateSettingsRequest struct {
	DrawerCount int `json:"drawer_count"`
}
