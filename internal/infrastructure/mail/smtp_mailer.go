// Package mail implémente le port Mailer : envoi SMTP réel, ou
// journalisation de l'URL de vérification quand aucun serveur n'est
// configuré (mode développement).
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/hugolinos1/freezy-api/internal/application/auth"
	"github.com/hugolinos1/freezy-api/pkg/config"
	pkgjwt "github.com/hugolinos1/freezy-api/pkg/jwt"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envoie les liens de connexion via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construit l'expéditeur SMTP depuis la configuration.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendVerificationEmail envoie le lien de connexion ou d'inscription.
func (m *SMTPMailer) SendVerificationEmail(email, verificationURL, typ string) error {
	subject := "Votre lien de connexion Freezy"
	intro := "Cliquez sur le lien pour vous connecter à Freezy :"
	if typ == pkgjwt.VerificationSignup {
		subject = "Bienvenue sur Freezy — confirmez votre email"
		intro = "Cliquez sur le lien pour confirmer votre inscription à Freezy :"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>%s</p><p><a href="%s">%s</a></p><p>Ce lien expire dans une heure.</p>`,
		intro, verificationURL, verificationURL,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("envoi email: %w", err)
	}
	return nil
}
