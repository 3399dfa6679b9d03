package models

type Loan struct {
	ContactAddress string `json:"contact"`
	Isbn           string `json:"isbn"`
}
