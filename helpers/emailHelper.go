package helpers

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"github.com/google/uuid"
)

// SendEmail delivers one message over SMTP and returns a delivery id. The
// callers for booking confirmations run it in a goroutine and only log the
// error; a failed send never fails the operation that triggered it.
func SendEmail(toEmail string, subject string, body string) (string, error) {
	from := os.Getenv("SMTP_FROM")
	pass := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}
	if from == "" || smtpHost == "" {
		return "", fmt.Errorf("smtp is not configured")
	}

	deliveryId := uuid.NewString()
	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Message-ID: <" + deliveryId + ">\r\n" +
		"\r\n" + body + "\r\n")

	auth := smtp.PlainAuth("", from, pass, smtpHost)
	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{toEmail}, msg); err != nil {
		return "", err
	}
	return deliveryId, nil
}

// SendEmailAsync is the fire-and-forget path used for booking and contact
// notifications.
func SendEmailAsync(toEmail string, subject string, body string) {
	go func() {
		if _, err := SendEmail(toEmail, subject, body); err != nil {
			log.Printf("email to %s not sent: %v", toEmail, err)
		}
	}()
}

func BookingConfirmationBody(name string, tableNumber int, when string, guests int) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour reservation request for table %d on %s for %d guests was received.\nCurrent status: %s.\n\nWe will confirm it shortly.\n",
		name, tableNumber, when, guests, StatusLabel(StatusPending))
}
