package dto

import (
	"encoding/json"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
)

const (
	ClassClient      = "Client"
	ClassApplication = "Application"
)

// Collection members carry no @context.
func NewClientResponse(c domain.Client, member bool) ClientResponse {
	out := ClientResponse{
		Context:     ContextIRI(ClassClient),
		IRI:         ClientIRI(c.ID),
		Type:        ClassClient,
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	}
	if member {
		out.Context = ""
	}
	return out
}

func NewApplicationResponse(a domain.Application, member bool) ApplicationResponse {
	out := ApplicationResponse{
		Context:  ContextIRI(ClassApplication),
		IRI:      ApplicationIRI(a.ID),
		Type:     ClassApplication,
		ID:       a.ID,
		ClientID: ClientIRI(a.ClientID),
		Term:     a.Term,
		Amount:   json.Number(a.Amount.StringFixed(2)),
		Currency: a.Currency,
	}
	if member {
		out.Context = ""
	}
	return out
}

func NewClientCollection(rows []domain.Client, total int32, page, size int) Collection[ClientResponse] {
	members := make([]ClientResponse, 0, len(rows))
	for _, c := range rows {
		members = append(members, NewClientResponse(c, true))
	}
	return Collection[ClientResponse]{
		Context:    ContextIRI(ClassClient),
		IRI:        ClientsPath,
		Type:       TypeCollection,
		Member:     members,
		TotalItems: total,
		View:       NewView(ClientsPath, page, size, total),
	}
}

func NewApplicationCollection(rows []domain.Application, total int32, page, size int) Collection[ApplicationResponse] {
	members := make([]ApplicationResponse, 0, len(rows))
	for _, a := range rows {
		members = append(members, NewApplicationResponse(a, true))
	}
	return Collection[ApplicationResponse]{
		Context:    ContextIRI(ClassApplication),
		IRI:        ApplicationsPath,
		Type:       TypeCollection,
		Member:     members,
		TotalItems: total,
		View:       NewView(ApplicationsPath, page, size, total),
	}
}

func NewViolationList(vs []domain.Violation) ViolationList {
	items := make([]ViolationItem, 0, len(vs))
	for _, v := range vs {
		items = append(items, ViolationItem{PropertyPath: v.Field, Message: v.Message})
	}
	return ViolationList{
		Context:     ContextIRI(TypeViolations),
		Type:        TypeViolations,
		Title:       ErrorTitle,
		Description: domain.NewValidationError(vs...).Error(),
		Violations:  items,
	}
}

func NewErrorResponse(description string) ErrorResponse {
	return ErrorResponse{
		Context:     ContextIRI("Error"),
		Type:        TypeError,
		Title:       ErrorTitle,
		Description: description,
	}
}
