package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"shehub/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SheHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #FFF0F5; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #FF1493; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.content h2 { color: #FF1493; margin-top: 0; }
			.footer { background-color: #FFF0F5; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #FFE4E9; padding: 15px; border-radius: 4px; border-left: 4px solid #FF69B4; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SheHub</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this email because of activity on your SheHub account.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendMentorshipAcceptedEmail notifies a mentee that a mentor accepted
// their request.
func SendMentorshipAcceptedEmail(email, menteeName, mentorName string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p><b>%s</b> has accepted your mentorship request. Keep an eye on your
		dashboard for the session schedule.</p>`, menteeName, mentorName)

	return SendEmail([]string{email}, "Your mentorship request was accepted", getEmailTemplate("Mentorship accepted", body))
}

// SendCertificateIssuedEmail notifies a learner that a course certificate
// is ready for download.
func SendCertificateIssuedEmail(email, name, courseTitle, number string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations on completing <b>%s</b>!</p>
		<div class="info-box">Your certificate number is <b>%s</b>. You can download
		it from the My Certificates page.</div>`, name, courseTitle, number)

	return SendEmail([]string{email}, "Your certificate is ready", getEmailTemplate("Course completed", body))
}

// SendSessionReminderEmail reminds a participant about an upcoming
// mentorship session.
func SendSessionReminderEmail(email, name, otherParty string, when time.Time) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>This is a reminder that your mentorship session with <b>%s</b> is
		scheduled for <b>%s</b>.</p>`, name, otherParty, when.Format("Monday, January 2 at 15:04"))

	return SendEmail([]string{email}, "Upcoming mentorship session", getEmailTemplate("Session reminder", body))
}
