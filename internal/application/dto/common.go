package dto

// ErrorResponse corps d'erreur HTTP. Fields liste les champs de formulaire
// manquants pour les erreurs de validation, nommés en clair.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}
