package models

// User is identified by its contact address, which is also where its emails go.
// Nothing enforces uniqueness.
type User struct {
	Name           string `json:"name" binding:"required"`
	ContactAddress string `json:"contact" binding:"required"`
}

func NewUser(name, contactAddress string) User {
	return User{Name: name, ContactAddress: contactAddress}
}
