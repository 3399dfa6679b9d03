// Package library holds the in-memory inventory and loan bookkeeping of a single library.
//
// Neither Library nor LoanManager checks stock levels, quantities or duplicate loans:
// callers may add negative quantities, borrow books that are not in stock and borrow
// the same book twice.
package library

import (
	"errors"
	"fmt"
	"sync"

	"library/models"
	"library/notification"
	"library/report"
)

const reportSubject = "Rapport inventaire"

type Dispatcher interface {
	Send(channel notification.Channel, message notification.Message) error
}

// Recipients are the administrator addresses inventory reports are sent to.
type Recipients struct {
	AdminEmail string
	AdminPhone string
}

type Library struct {
	mu         sync.Mutex
	inventory  *models.Inventory
	reports    *report.Generator
	dispatcher Dispatcher
	recipients Recipients
}

func New(dispatcher Dispatcher, recipients Recipients) *Library {
	return &Library{
		inventory:  models.NewInventory(),
		reports:    report.NewGenerator(),
		dispatcher: dispatcher,
		recipients: recipients,
	}
}

func (library *Library) AddBook(book *models.Book, quantity int) {
	library.mu.Lock()
	defer library.mu.Unlock()

	library.inventory.Add(book.Isbn, quantity)
}

func (library *Library) Quantity(isbn string) int {
	library.mu.Lock()
	defer library.mu.Unlock()

	return library.inventory.Quantity(isbn)
}

// Inventory returns a snapshot of the current stock.
func (library *Library) Inventory() *models.Inventory {
	library.mu.Lock()
	defer library.mu.Unlock()

	return library.inventory.Clone()
}

func (library *Library) AvailabilityReport() string {
	return library.reports.ToAvailability(library.Inventory())
}

// GenerateReportAndNotify renders the inventory and sends it to the administrator.
// Unknown report types fall back to a plain-text count, unknown notification types fail
// without sending anything. The report is returned even when sending fails.
func (library *Library) GenerateReportAndNotify(reportType, notificationType string) (string, error) {
	inventory := library.Inventory()

	rendered, err := library.reports.Generate(report.Type(reportType), inventory)
	if errors.Is(err, models.ErrUnknownReportType) {
		rendered = fmt.Sprintf("Rapport inventaire : %d titres", inventory.Len())
	} else if err != nil {
		return "", err
	}

	var message notification.Message
	channel := notification.Channel(notificationType)
	switch channel {
	case notification.ChannelEmail:
		message = notification.Message{To: library.recipients.AdminEmail, Subject: reportSubject, Body: rendered}
	case notification.ChannelSms:
		message = notification.Message{To: library.recipients.AdminPhone, Body: reportSubject + ": " + rendered}
	default:
		return rendered, fmt.Errorf("%w: %q", models.ErrUnknownNotificationType, notificationType)
	}

	if err := library.dispatcher.Send(channel, message); err != nil {
		return rendered, err
	}

	return rendered, nil
}
