package service

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	debug      bool
}

// NewEmailService creates a new email service
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string, debug bool) (*EmailService, error) {
	// If fromEmail is empty, create a disabled service
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{
			enabled: false,
			debug:   debug,
		}, nil
	}

	if debug {
		log.Printf("[DEBUG] Initializing email service: region=%s, from=%s", awsRegion, fromEmail)
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
		debug:      debug,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWelcomeEmail sends a welcome email to new users
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): welcome to %s", toEmail)
		return nil
	}

	subject := "Welcome to ReelStreak!"
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #1f2937; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.button { display: inline-block; padding: 12px 30px; background-color: #1f2937; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Welcome to ReelStreak!</h1>
		</div>
		<div class="content">
			<p>Hi %s,</p>
			<p>Thanks for creating your ReelStreak account! A new set of movie puzzles is waiting for you every day.</p>
			<p>Here's what you can do next:</p>
			<ul>
				<li>Play today's Roles, Degrees, and Thumbs puzzles</li>
				<li>Build up your daily streak</li>
				<li>Track your stats across every game</li>
			</ul>
			<p style="text-align: center;">
				<a href="%s" class="button">Play Today's Puzzles</a>
			</p>
		</div>
		<div class="footer">
			<p>This is an automated email from ReelStreak. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, html.EscapeString(toName), s.appBaseURL)

	textBody := fmt.Sprintf(`Hi %s,

Thanks for creating your ReelStreak account! A new set of movie puzzles is waiting for you every day.

Here's what you can do next:
- Play today's Roles, Degrees, and Thumbs puzzles
- Build up your daily streak
- Track your stats across every game

Play today's puzzles: %s

---
This is an automated email from ReelStreak. Please do not reply.
`, toName, s.appBaseURL)

	if s.debug {
		log.Printf("[DEBUG] Sending welcome email: to=%s", toEmail)
	}

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// SendFeedbackNotification forwards submitted player feedback to the site
// operator's inbox.
func (s *EmailService) SendFeedbackNotification(ctx context.Context, toEmail, fromUser, page, message string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): feedback notification to %s", toEmail)
		return nil
	}
	if toEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("ReelStreak feedback: %s", page)
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.meta { color: #666; font-size: 13px; }
		.message { background-color: #f9f9f9; padding: 20px; border-radius: 5px; white-space: pre-wrap; }
	</style>
</head>
<body>
	<div class="container">
		<h2>New feedback</h2>
		<p class="meta">From: %s<br>Page: %s</p>
		<div class="message">%s</div>
	</div>
</body>
</html>
`, html.EscapeString(fromUser), html.EscapeString(page), html.EscapeString(message))

	textBody := fmt.Sprintf(`New feedback

From: %s
Page: %s

%s
`, fromUser, page, message)

	if s.debug {
		log.Printf("[DEBUG] Sending feedback notification: to=%s, page=%s", toEmail, page)
	}

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] SES message ID: %s", *result.MessageId)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
