package notification

import (
	"fmt"
	"io"
	"os"
)

type EmailSender interface {
	SendEmail(to, subject, body string) error
}

type SmsSender interface {
	SendSms(number, message string) error
}

// ConsoleEmailSender stands in for a mail gateway and prints every email to its writer.
type ConsoleEmailSender struct {
	out io.Writer
}

func NewConsoleEmailSender(out io.Writer) *ConsoleEmailSender {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleEmailSender{out: out}
}

func (sender *ConsoleEmailSender) SendEmail(to, subject, body string) error {
	_, err := fmt.Fprintf(sender.out, "Envoi e‑mail à %s : '%s' – %s\n", to, subject, body)
	return err
}

// ConsoleSmsSender stands in for an SMS gateway and prints every message to its writer.
type ConsoleSmsSender struct {
	out io.Writer
}

func NewConsoleSmsSender(out io.Writer) *ConsoleSmsSender {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSmsSender{out: out}
}

func (sender *ConsoleSmsSender) SendSms(number, message string) error {
	_, err := fmt.Fprintf(sender.out, "Envoi SMS à %s : %s\n", number, message)
	return err
}
