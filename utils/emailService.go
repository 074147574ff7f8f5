package utils

import (
	"academy/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid.
func SendEmail(toEmail, subject, htmlBody string) error {
	from := mail.NewEmail("Academy", config.AppConfig.EmailSender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email to %s rejected with status %d", toEmail, resp.StatusCode)
		return fmt.Errorf("email rejected, code: %d", resp.StatusCode)
	}

	return nil
}

// SendOTPEmail sends the verification OTP mail.
func SendOTPEmail(otp, email string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333;">Your verification code</h2>
					<p style="font-size: 24px; letter-spacing: 4px; font-weight: bold;">%s</p>
					<p style="color: #666;">This code expires in %d minutes. If you did not request it, ignore this email.</p>
				</div>
			</body>
		</html>`, otp, config.AppConfig.OTPExpiryMinutes)

	return SendEmail(email, "Your Academy verification code", body)
}
