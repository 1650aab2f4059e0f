package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
)

// Collection IRIs; an item IRI appends "/{id}".
const (
	ClientsPath      = "/api/clients"
	ApplicationsPath = "/api/applications"
)

type AttributeError struct {
	Attribute string
	Expected  string
	Given     string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("The type of the %q attribute must be %q, %q given.", e.Attribute, e.Expected, e.Given)
}

type IRIError struct {
	Value string
}

func (e *IRIError) Error() string {
	return fmt.Sprintf("Invalid IRI %q.", e.Value)
}

type ClientRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (r ClientRequest) Patch() domain.ClientPatch {
	return domain.ClientPatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}

type ApplicationRequest struct {
	ClientID *ClientRef `json:"clientId"`
	Term     *int       `json:"term"`
	Amount   *Amount    `json:"amount"`
	Currency *string    `json:"currency"`
}

func (r ApplicationRequest) Patch() domain.ApplicationPatch {
	p := domain.ApplicationPatch{Term: r.Term, Currency: r.Currency}
	if r.ClientID != nil {
		id := int32(*r.ClientID)
		p.ClientID = &id
	}
	if r.Amount != nil {
		d := r.Amount.Decimal
		p.Amount = &d
	}
	return p
}

// ClientRef accepts "/api/clients/7" or 7.
type ClientRef int32

func (r *ClientRef) UnmarshalJSON(b []byte) error {
	var n int32
	if err := json.Unmarshal(b, &n); err == nil {
		*r = ClientRef(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &AttributeError{Attribute: "clientId", Expected: "IRI", Given: kindOf(b)}
	}
	id, err := ParseClientIRI(s)
	if err != nil {
		return err
	}
	*r = ClientRef(id)
	return nil
}

type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if err := a.Decimal.UnmarshalJSON(b); err != nil {
		return &AttributeError{Attribute: "amount", Expected: "float", Given: kindOf(b)}
	}
	return nil
}

func ParseClientIRI(s string) (int32, error) {
	rest, ok := strings.CutPrefix(s, ClientsPath+"/")
	if !ok {
		return 0, &IRIError{Value: s}
	}
	id, err := strconv.ParseInt(rest, 10, 32)
	if err != nil || id <= 0 {
		return 0, &IRIError{Value: s}
	}
	return int32(id), nil
}

func ClientIRI(id int32) string { return ClientsPath + "/" + strconv.Itoa(int(id)) }

func ApplicationIRI(id int32) string { return ApplicationsPath + "/" + strconv.Itoa(int(id)) }

func kindOf(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return "NULL"
	}
	switch b[0] {
	case '"':
		return "string"
	case '{', '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "NULL"
	}
	if bytes.ContainsAny(b, ".eE") {
		return "float"
	}
	return "int"
}
