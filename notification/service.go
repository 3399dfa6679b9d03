package notification

import (
	"fmt"
	"log/slog"

	"library/models"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSms   Channel = "sms"
)

// Message is addressed to an email address or a phone number depending on the channel.
// Subject is ignored for SMS.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Service dispatches messages to whichever channel senders it was built with.
// A nil sender means the channel is not supported by this gateway.
type Service struct {
	email   EmailSender
	sms     SmsSender
	journal *Journal
	logger  *slog.Logger
}

type Option func(*Service)

func WithJournal(journal *Journal) Option {
	return func(service *Service) {
		service.journal = journal
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(service *Service) {
		service.logger = logger
	}
}

func NewService(email EmailSender, sms SmsSender, opts ...Option) *Service {
	service := &Service{email: email, sms: sms, logger: slog.Default()}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (service *Service) SendEmail(to, subject, body string) error {
	return service.Send(ChannelEmail, Message{To: to, Subject: subject, Body: body})
}

func (service *Service) SendSms(number, message string) error {
	return service.Send(ChannelSms, Message{To: number, Body: message})
}

func (service *Service) Send(channel Channel, message Message) error {
	var err error

	switch channel {
	case ChannelEmail:
		if service.email == nil {
			return fmt.Errorf("%w: gateway cannot send email", models.ErrUnsupportedOperation)
		}
		err = service.email.SendEmail(message.To, message.Subject, message.Body)
	case ChannelSms:
		if service.sms == nil {
			return fmt.Errorf("%w: gateway cannot send sms", models.ErrUnsupportedOperation)
		}
		err = service.sms.SendSms(message.To, message.Body)
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownNotificationType, channel)
	}

	if err != nil {
		return fmt.Errorf("sending %s to %s: %w", channel, message.To, err)
	}

	// Not failing a notification if there's a problem journaling it
	if service.journal != nil {
		if journalErr := service.journal.Record(channel, message); journalErr != nil {
			service.logger.Warn("failed to journal notification",
				"channel", channel,
				"to", message.To,
				"error", journalErr)
		}
	}

	return nil
}
