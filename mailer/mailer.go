package mailer

import (
	"context"
	"encoding/json"
	"fmt"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/haulflow/backoffice/secretmanager"
)

type SendGridConfig struct {
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url"`
	MailSendPath string `json:"mail_send_path"`

	// <noreply@haulflow.io>
	NoReplyEmail string `json:"no_reply_email"`
	NoReplyName  string `json:"no_reply_name"`
}

const (
	CategoryBusinessCaseReminders string = "business-case-reminders"
	CategoryTransportReminders    string = "transport-reminders"
)

// SimpleNotification : Simple notification template data
type SimpleNotification struct {
	Subject    string
	Preheader  string
	Body       string
	CCs        []string
	Categories []string
}

// Config : Sendgrid configuration
var Config SendGridConfig

// InitConfig loads the sendgrid configuration from Secret Manager.
// Must be called once during service startup, before any mail is sent.
func InitConfig(ctx context.Context) error {
	secretData, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretSendgrid)
	if err != nil {
		return err
	}

	return json.Unmarshal(secretData, &Config)
}

//go:generate mockery --name IMailer --output ./mocks
type IMailer interface {
	SendNotification(sn *SimpleNotification, to string) error
}

type Mailer struct {
}

func NewMailer() Mailer {
	return Mailer{}
}

// SendNotification sends a subject/body notification to a single recipient.
func (Mailer) SendNotification(sn *SimpleNotification, to string) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(Config.NoReplyName, Config.NoReplyEmail))

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})
	m.AddCategories(sn.Categories...)
	m.Subject = sn.Subject

	personalization := mail.NewPersonalization()
	tos := []*mail.Email{
		mail.NewEmail("", to),
	}
	personalization.AddTos(tos...)

	if len(sn.CCs) > 0 {
		ccs := make([]*mail.Email, 0)

		for _, cc := range sn.CCs {
			if cc != to {
				ccs = append(ccs, mail.NewEmail("", cc))
			}
		}

		if len(ccs) > 0 {
			personalization.AddCCs(ccs...)
		}
	}

	m.AddPersonalizations(personalization)
	m.AddContent(mail.NewContent("text/html", sn.Body))

	request := sendgrid.GetRequest(Config.APIKey, Config.MailSendPath, Config.BaseURL)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestRetry(request)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded with status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

// CowardMailer prints notifications instead of sending them. Used on localhost.
type CowardMailer struct{}

func (CowardMailer) SendNotification(sn *SimpleNotification, to string) error {
	marshaledNotification, err := json.Marshal(sn)
	if err != nil {
		return err
	}

	fmt.Printf("Coward mailer not sending to %s: %s\n", to, string(marshaledNotification))

	return nil
}
