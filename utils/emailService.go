package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"belajaradmin/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
func SendEmail(to []string, subject, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword

	header := fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", subject)
	message := []byte(header + "\n" + htmlBody)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// SendParentWelcomeEmail notifies a newly registered parent account.
func SendParentWelcomeEmail(email, fullName string) {
	if !config.AppConfig.EmailNotification {
		return
	}

	subject := "Selamat Datang di Belajar Seru"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Selamat Datang!</h2>
					<p style="font-size: 16px; color: #555555;">Halo %s,</p>
					<p style="font-size: 14px; color: #555555;">Akun orang tua Anda sudah dibuat. Silakan tambahkan profil anak dan mulai belajar.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Tim Belajar Seru</p>
				</div>
			</body>
		</html>
	`, fullName)

	go func() {
		if err := SendEmail([]string{email}, subject, body); err == nil {
			log.Println("Welcome email sent to", email)
		}
	}()
}
