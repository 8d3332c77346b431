package dto

// VoiceAnalyzeRequest transcription issue de la reconnaissance vocale du
// navigateur (locale fr-FR, capture en un seul énoncé).
type VoiceAnalyzeRequest struct {
	Transcript string `json:"transcript"`
}

// VoiceDraftResponse brouillon de produit déduit de la transcription. Les
// champs absents n'ont pas été reconnus.
type VoiceDraftResponse struct {
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	Quantity *int   `json:"quantity,omitempty"`
	Weight   *int   `json:"weight,omitempty"`
	Drawer   *int   `json:"drawer,omitempty"`
}
