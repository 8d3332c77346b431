package auth

// Mailer port d'envoi des liens de connexion. L'implémentation SMTP envoie
// un vrai email ; l'implémentation de développement journalise l'URL.
type Mailer interface {
	SendVerificationEmail(email, verificationURL, typ string) error
}
