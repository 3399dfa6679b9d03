package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"library/cache"
)

type JournalEntry struct {
	Id      uuid.UUID `json:"id"`
	Channel Channel   `json:"channel"`
	To      string    `json:"to"`
	Subject string    `json:"subject,omitempty"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
}

// Journal keeps the most recent notifications sent to each recipient.
type Journal struct {
	cacher cache.RequestCacher
	now    func() time.Time
}

func NewJournal(cacher cache.RequestCacher) *Journal {
	return &Journal{cacher: cacher, now: time.Now}
}

func (journal *Journal) Record(channel Channel, message Message) error {
	entry := JournalEntry{
		Id:      uuid.New(),
		Channel: channel,
		To:      message.To,
		Subject: message.Subject,
		Body:    message.Body,
		SentAt:  journal.now().UTC(),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return journal.cacher.Write(message.To, raw)
}

// Recent returns the entries for recipient, newest first.
func (journal *Journal) Recent(recipient string) ([]JournalEntry, error) {
	raws, err := journal.cacher.Read(recipient)
	if err != nil {
		return nil, err
	}

	entries := make([]JournalEntry, 0, len(raws))
	for _, raw := range raws {
		var entry JournalEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
