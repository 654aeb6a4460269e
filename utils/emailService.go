package utils

import (
	"fmt"
	"iiacademy/config"
	"log"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: IIAcademy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// HTML Wrapper for outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B6D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B6D; line-height: 1.6; }
			.content h2 { color: #1A2B6D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.code-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; font-size: 20px; letter-spacing: 4px; text-align: center; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>IIACADEMY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 IIAcademy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Registration
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to IIAcademy! Your account has been created successfully.</p>
		<p>Browse our courses and start learning today.</p>
	`, name)
	go SendEmail([]string{email}, "Welcome to IIAcademy", getEmailTemplate("Welcome Aboard", body))
}

// 2. Password reset code
func SendPasswordResetEmail(email, name, code string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received a request to reset your password. Use the code below within 15 minutes:</p>
		<div class="code-box">%s</div>
		<p>If you did not request this, you can safely ignore this email.</p>
	`, name, code)
	go SendEmail([]string{email}, "Your IIAcademy password reset code", getEmailTemplate("Password Reset", body))
}

// 3. Payment receipt
func SendPaymentReceiptEmail(email, name, transactionID string, amount uint) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment of %d was received successfully.</p>
		<p>Transaction ID: <b>%s</b></p>
		<p>Your certificate is now unlocked.</p>
	`, name, amount, transactionID)
	go SendEmail([]string{email}, "IIAcademy payment received", getEmailTemplate("Payment Successful", body))
}

// 4. Inquiry acknowledgement
func SendInquiryReceivedEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thanks for reaching out. Our team will get back to you within one business day.</p>
	`, name)
	go SendEmail([]string{email}, "We received your inquiry", getEmailTemplate("Inquiry Received", body))
}
