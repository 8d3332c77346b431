package mail

import (
	"github.com/hugolinos1/freezy-api/internal/application/auth"
	"github.com/hugolinos1/freezy-api/pkg/logger"
)

var _ auth.Mailer = (*LogMailer)(nil)

// LogMailer simule l'envoi d'email en journalisant l'URL de vérification.
// Utilisé quand aucun serveur SMTP n'est configuré : le lien se récupère
// dans les logs.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construit l'expéditeur de développement.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendVerificationEmail journalise le lien au lieu de l'envoyer.
func (m *LogMailer) SendVerificationEmail(email, verificationURL, typ string) error {
	m.log.Info().
		Str("email", email).
		Str("type", typ).
		Str("url", verificationURL).
		Msg("mode développement: simulation d'envoi d'email")
	return nil
}
