package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendVerificationEmail sends the 6-digit account verification code.
// When SMTP is not configured the mail is logged instead, so local
// development works without a mail server.
func SendVerificationEmail(recipientEmail, verificationCode string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Hotel Reservations")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s verification code:%s", recipientEmail, verificationCode)
		return nil
	}

	subject := "Account Verification"

	plainBody := fmt.Sprintf(
		"Welcome to Hotel Reservations!\n\n"+
			"Please enter the verification code below to continue:\n\n"+
			"Verification Code: %s\n\n"+
			"The code expires in 15 minutes.\n\n"+
			"Best regards,\n%s",
		verificationCode, fromName,
	)

	htmlBody := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
<div style="background-color: #f5f5f5; padding: 20px;">
<h2 style="color: #333;">Welcome to Hotel Reservations!</h2>
<p style="font-size: 16px;">Please enter the verification code below to continue:</p>
<div style="background-color: #fff; padding: 20px; border-radius: 5px; box-shadow: 0 0 10px rgba(0,0,0,0.1);">
<h3 style="color: #333;">Verification Code:</h3>
<p style="font-size: 18px; font-weight: bold; color: #007bff;">%s</p>
</div>
</div>
</body>
</html>`, verificationCode)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	boundary := "----=_HOTEL_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")
	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipientEmail}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %s: %v", recipientEmail, err)
		return err
	}
	log.Printf("Verification email sent to %s", recipientEmail)
	return nil
}
