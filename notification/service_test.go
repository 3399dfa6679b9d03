package notification

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/cache"
	"library/models"
)

type failingCacher struct{}

func (failingCacher) Write(string, []byte) error   { return errors.New("cache down") }
func (failingCacher) Read(string) ([]string, error) { return nil, errors.New("cache down") }

func TestConsoleEmailSender_PrintsFormattedLine(t *testing.T) {
	var out bytes.Buffer

	err := NewConsoleEmailSender(&out).SendEmail("alice@example.com", "Emprunt confirmé", "Alice a emprunté 'Dune'")

	require.NoError(t, err)
	assert.Equal(t, "Envoi e‑mail à alice@example.com : 'Emprunt confirmé' – Alice a emprunté 'Dune'\n", out.String())
}

func TestConsoleSmsSender_PrintsFormattedLine(t *testing.T) {
	var out bytes.Buffer

	err := NewConsoleSmsSender(&out).SendSms("1234567890", "hello")

	require.NoError(t, err)
	assert.Equal(t, "Envoi SMS à 1234567890 : hello\n", out.String())
}

func TestService_Send_DispatchesByChannel(t *testing.T) {
	var emails, texts bytes.Buffer
	service := NewService(NewConsoleEmailSender(&emails), NewConsoleSmsSender(&texts))

	require.NoError(t, service.Send(ChannelEmail, Message{To: "a@b.c", Subject: "s", Body: "b"}))
	require.NoError(t, service.Send(ChannelSms, Message{To: "555", Body: "m"}))

	assert.Contains(t, emails.String(), "a@b.c")
	assert.NotContains(t, emails.String(), "555")
	assert.Equal(t, "Envoi SMS à 555 : m\n", texts.String())
}

func TestService_Send_UnknownChannel(t *testing.T) {
	var emails, texts bytes.Buffer
	service := NewService(NewConsoleEmailSender(&emails), NewConsoleSmsSender(&texts))

	err := service.Send(Channel("carrier-pigeon"), Message{To: "roof", Body: "coo"})

	assert.ErrorIs(t, err, models.ErrUnknownNotificationType)
	assert.Empty(t, emails.String())
	assert.Empty(t, texts.String())
}

func TestService_SendEmail_OnSmsOnlyGateway(t *testing.T) {
	var texts bytes.Buffer
	service := NewService(nil, NewConsoleSmsSender(&texts))

	err := service.SendEmail("a@b.c", "subject", "body")

	assert.ErrorIs(t, err, models.ErrUnsupportedOperation)
	assert.Empty(t, texts.String())
}

func TestService_SendSms_OnEmailOnlyGateway(t *testing.T) {
	service := NewService(NewConsoleEmailSender(&bytes.Buffer{}), nil)

	err := service.SendSms("555", "body")

	assert.ErrorIs(t, err, models.ErrUnsupportedOperation)
}

func TestService_Send_RecordsJournal(t *testing.T) {
	journal := NewJournal(cache.CreateMemoryCache(5))
	service := NewService(NewConsoleEmailSender(&bytes.Buffer{}), nil, WithJournal(journal))

	require.NoError(t, service.SendEmail("a@b.c", "first", "1"))
	require.NoError(t, service.SendEmail("a@b.c", "second", "2"))

	entries, err := journal.Recent("a@b.c")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Subject)
	assert.Equal(t, ChannelEmail, entries[0].Channel)
	assert.Equal(t, "first", entries[1].Subject)
	assert.NotEqual(t, entries[0].Id, entries[1].Id)
}

func TestService_Send_JournalFailureDoesNotFailSend(t *testing.T) {
	var emails bytes.Buffer
	service := NewService(NewConsoleEmailSender(&emails), nil, WithJournal(NewJournal(failingCacher{})))

	err := service.SendEmail("a@b.c", "subject", "body")

	assert.NoError(t, err)
	assert.NotEmpty(t, emails.String())
}

func TestService_Send_RejectedSendIsNotJournaled(t *testing.T) {
	journal := NewJournal(cache.CreateMemoryCache(5))
	service := NewService(nil, nil, WithJournal(journal))

	require.Error(t, service.SendEmail("a@b.c", "subject", "body"))

	entries, err := journal.Recent("a@b.c")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
