package domain

import "github.com/shopspring/decimal"

type Client struct {
	ID           int32
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Applications []Application
}

type Application struct {
	ID       int32
	ClientID int32
	Term     int
	Amount   decimal.Decimal
	Currency string
}

// nil leaves the stored value untouched
type ClientPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
}

func (p ClientPatch) Apply(c Client) Client {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
	return c
}

type ApplicationPatch struct {
	ClientID *int32
	Term     *int
	Amount   *decimal.Decimal
	Currency *string
}

func (p ApplicationPatch) Apply(a Application) Application {
	if p.ClientID != nil {
		a.ClientID = *p.ClientID
	}
	if p.Term != nil {
		a.Term = *p.Term
	}
	if p.Amount != nil {
		a.Amount = *p.Amount
	}
	if p.Currency != nil {
		a.Currency = *p.Currency
	}
	return a
}
