package library

import (
	"fmt"
	"sync"

	"library/models"
)

const (
	borrowSubject = "Emprunt confirmé"
	returnSubject = "Retour confirmé"
)

type EmailNotifier interface {
	SendEmail(to, subject, body string) error
}

// LoanManager tracks active loans in the order they were made.
type LoanManager struct {
	mu       sync.Mutex
	loans    []models.Loan
	notifier EmailNotifier
}

func NewLoanManager(notifier EmailNotifier) *LoanManager {
	return &LoanManager{notifier: notifier}
}

// Borrow records the loan unconditionally and emails the user.
func (manager *LoanManager) Borrow(user models.User, book *models.Book) error {
	manager.mu.Lock()
	manager.loans = append(manager.loans, models.Loan{ContactAddress: user.ContactAddress, Isbn: book.Isbn})
	manager.mu.Unlock()

	message := fmt.Sprintf("%s a emprunté '%s'", user.Name, book.Title)
	return manager.notifier.SendEmail(user.ContactAddress, borrowSubject, message)
}

// Return removes the first loan matching user and book and emails the user.
func (manager *LoanManager) Return(user models.User, book *models.Book) error {
	if err := manager.remove(models.Loan{ContactAddress: user.ContactAddress, Isbn: book.Isbn}); err != nil {
		return err
	}

	message := fmt.Sprintf("%s a retourné '%s'", user.Name, book.Title)
	return manager.notifier.SendEmail(user.ContactAddress, returnSubject, message)
}

func (manager *LoanManager) Loans() []models.Loan {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	return append([]models.Loan{}, manager.loans...)
}

func (manager *LoanManager) remove(loan models.Loan) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	for i, active := range manager.loans {
		if active == loan {
			manager.loans = append(manager.loans[:i], manager.loans[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: no loan of %s for %s", models.ErrRecordNotFound, loan.Isbn, loan.ContactAddress)
}
