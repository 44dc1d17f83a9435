package utils

import (
	"coursehub/config"
	"coursehub/logger"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailContent is a rendered message ready to hand to the mail provider.
type EmailContent struct {
	Subject string
	Text    string
	HTML    string
}

// SendEmail delivers through SendGrid, or only logs when no API key is configured.
func SendEmail(to string, content EmailContent) error {
	cfg := config.AppConfig
	if cfg.SendgridAPIKey == "" || cfg.EmailSender == "" {
		logger.Info("email delivery disabled, skipping", "to", to, "subject", content.Subject)
		return nil
	}

	from := mail.NewEmail(cfg.EmailSenderName, cfg.EmailSender)
	message := mail.NewSingleEmail(from, content.Subject, mail.NewEmail("", to), content.Text, content.HTML)

	response, err := sendgrid.NewSendClient(cfg.SendgridAPIKey).Send(message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("send email: provider returned %d: %s", response.StatusCode, response.Body)
	}

	logger.Debug("email sent", "to", to, "subject", content.Subject)
	return nil
}

// EnrollmentEmail renders the enrollment confirmation.
func EnrollmentEmail(courseName string) EmailContent {
	if courseName == "" {
		courseName = "your new course"
	}
	return EmailContent{
		Subject: "Course Enrollment Confirmation",
		Text: fmt.Sprintf("You have successfully enrolled in %s. "+
			"Track your progress from the dashboard.", courseName),
		HTML: fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #2563eb; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Track your progress from the dashboard.</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Happy Learning!</p>
				</div>
			</body>
		</html>
	`, courseName),
	}
}

// SendEnrollmentEmail sends an email notification when user enrolls in a course
func SendEnrollmentEmail(email, courseName string) error {
	return SendEmail(email, EnrollmentEmail(courseName))
}
