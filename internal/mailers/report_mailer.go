package mailers

import (
	"context"
	"errors"
	"io"

	"flocking-report/internal/shared/configs"
	"flocking-report/internal/shared/loggers"
	"flocking-report/internal/shared/metrics"

	gomail "gopkg.in/gomail.v2"
)

// ErrNoRecipients is returned when a message has nobody to go to.
var ErrNoRecipients = errors.New("no recipients")

// ReportMessage is one rendered report ready for delivery.
type ReportMessage struct {
	To             []string
	Subject        string
	HTMLBody       string
	TextBody       string
	AttachmentName string
	Attachment     []byte
}

//go:generate mockgen -source=report_mailer.go -destination=./mocks/report_mailer_mock.go -package=mocks
type ReportMailer interface {
	SendReport(ctx context.Context, msg ReportMessage) error
	SendError(ctx context.Context, to []string, subject, body string) error
}

type reportMailer struct {
	from string
	send func(msgs ...*gomail.Message) error
}

// NewReportMailer sends through the configured SMTP server, dialing once per message.
func NewReportMailer(cfg configs.EmailConfig) ReportMailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password)
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &reportMailer{from: from, send: dialer.DialAndSend}
}

// NewReportMailerWithSender sends through sender, e.g. a gomail.SendFunc.
func NewReportMailerWithSender(from string, sender gomail.Sender) ReportMailer {
	return &reportMailer{
		from: from,
		send: func(msgs ...*gomail.Message) error {
			return gomail.Send(sender, msgs...)
		},
	}
}

func (m *reportMailer) SendReport(ctx context.Context, msg ReportMessage) error {
	if len(msg.To) == 0 {
		return errDeliveryFailed(ErrNoRecipients)
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To...)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		message.AddAlternative("text/html", msg.HTMLBody)
	}
	if len(msg.Attachment) > 0 {
		attachment := msg.Attachment
		message.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	return m.deliver(ctx, message, msg.To)
}

func (m *reportMailer) SendError(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return errDeliveryFailed(ErrNoRecipients)
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to...)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	return m.deliver(ctx, message, to)
}

func (m *reportMailer) deliver(ctx context.Context, message *gomail.Message, to []string) error {
	if err := ctx.Err(); err != nil {
		return errDeliveryFailed(err)
	}
	if err := m.send(message); err != nil {
		metricEmailSentTotal.WithLabelValues(codeDeliveryFailed).Inc()
		return errDeliveryFailed(err)
	}

	metricEmailSentTotal.WithLabelValues(metrics.ValueNoError).Inc()
	loggers.Ctx(ctx).Info().Strs("to", to).Msg("email sent")
	return nil
}
