package library

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/models"
)

type email struct {
	to, subject, body string
}

type recordingNotifier struct {
	emails []email
	err    error
}

func (notifier *recordingNotifier) SendEmail(to, subject, body string) error {
	if notifier.err != nil {
		return notifier.err
	}
	notifier.emails = append(notifier.emails, email{to, subject, body})
	return nil
}

var (
	alice = models.NewUser("Alice", "alice@example.com")
	dune  = models.NewBook("978-0-441-17271-9", "Dune", "Frank Herbert", models.GenreSciFi)
)

func TestLoanManager_Borrow_RecordsLoanAndNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	manager := NewLoanManager(notifier)

	require.NoError(t, manager.Borrow(alice, dune))

	assert.Equal(t, []models.Loan{{ContactAddress: "alice@example.com", Isbn: dune.Isbn}}, manager.Loans())
	assert.Equal(t, []email{{"alice@example.com", "Emprunt confirmé", "Alice a emprunté 'Dune'"}}, notifier.emails)
}

func TestLoanManager_Borrow_AllowsDuplicates(t *testing.T) {
	manager := NewLoanManager(&recordingNotifier{})

	require.NoError(t, manager.Borrow(alice, dune))
	require.NoError(t, manager.Borrow(alice, dune))

	assert.Len(t, manager.Loans(), 2)
}

func TestLoanManager_BorrowThenReturn_LeavesNoLoans(t *testing.T) {
	notifier := &recordingNotifier{}
	manager := NewLoanManager(notifier)

	require.NoError(t, manager.Borrow(alice, dune))
	require.NoError(t, manager.Return(alice, dune))

	assert.Empty(t, manager.Loans())
	require.Len(t, notifier.emails, 2)
	assert.Equal(t, email{"alice@example.com", "Retour confirmé", "Alice a retourné 'Dune'"}, notifier.emails[1])
}

func TestLoanManager_Return_WithoutLoan(t *testing.T) {
	notifier := &recordingNotifier{}
	manager := NewLoanManager(notifier)

	require.NoError(t, manager.Borrow(alice, dune))
	require.NoError(t, manager.Return(alice, dune))
	err := manager.Return(alice, dune)

	assert.ErrorIs(t, err, models.ErrRecordNotFound)
	assert.Len(t, notifier.emails, 2)
}

func TestLoanManager_Return_RemovesOnlyFirstMatch(t *testing.T) {
	manager := NewLoanManager(&recordingNotifier{})
	bob := models.NewUser("Bob", "bob@example.com")

	require.NoError(t, manager.Borrow(alice, dune))
	require.NoError(t, manager.Borrow(bob, dune))
	require.NoError(t, manager.Borrow(alice, dune))
	require.NoError(t, manager.Return(alice, dune))

	assert.Equal(t, []models.Loan{
		{ContactAddress: "bob@example.com", Isbn: dune.Isbn},
		{ContactAddress: "alice@example.com", Isbn: dune.Isbn},
	}, manager.Loans())
}

func TestLoanManager_Return_MatchesOnContactAddress(t *testing.T) {
	manager := NewLoanManager(&recordingNotifier{})
	renamed := models.NewUser("Alice Smith", alice.ContactAddress)

	require.NoError(t, manager.Borrow(alice, dune))

	assert.NoError(t, manager.Return(renamed, dune))
}

func TestLoanManager_Borrow_NotificationFailureKeepsLoan(t *testing.T) {
	manager := NewLoanManager(&recordingNotifier{err: errors.New("smtp down")})

	err := manager.Borrow(alice, dune)

	assert.EqualError(t, err, "smtp down")
	assert.Len(t, manager.Loans(), 1)
}
