package dto

import (
	"encoding/json"
	"strconv"
)

const (
	ContentType = "application/ld+json; charset=utf-8"

	TypeCollection  = "hydra:Collection"
	TypePartialView = "hydra:PartialCollectionView"
	TypeError       = "hydra:Error"
	TypeViolations  = "ConstraintViolationList"

	ErrorTitle = "An error occurred"
)

func ContextIRI(class string) string { return "/api/contexts/" + class }

type ClientResponse struct {
	Context     string `json:"@context,omitempty"`
	IRI         string `json:"@id"`
	Type        string `json:"@type"`
	ID          int32  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type ApplicationResponse struct {
	Context  string      `json:"@context,omitempty"`
	IRI      string      `json:"@id"`
	Type     string      `json:"@type"`
	ID       int32       `json:"id"`
	ClientID string      `json:"clientId"`
	Term     int         `json:"term"`
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
}

type Collection[T any] struct {
	Context    string       `json:"@context"`
	IRI        string       `json:"@id"`
	Type       string       `json:"@type"`
	Member     []T          `json:"hydra:member"`
	TotalItems int32        `json:"hydra:totalItems"`
	View       *PartialView `json:"hydra:view,omitempty"`
}

type PartialView struct {
	IRI      string `json:"@id"`
	Type     string `json:"@type"`
	First    string `json:"hydra:first,omitempty"`
	Last     string `json:"hydra:last,omitempty"`
	Previous string `json:"hydra:previous,omitempty"`
	Next     string `json:"hydra:next,omitempty"`
}

// hydra:last is never below page 1.
func NewView(path string, page, size int, total int32) *PartialView {
	last := 1
	if size > 0 && total > 0 {
		last = (int(total) + size - 1) / size
	}
	v := &PartialView{
		IRI:   pageIRI(path, page),
		Type:  TypePartialView,
		First: pageIRI(path, 1),
		Last:  pageIRI(path, last),
	}
	if page > 1 {
		v.Previous = pageIRI(path, page-1)
	}
	if page < last {
		v.Next = pageIRI(path, page+1)
	}
	return v
}

func pageIRI(path string, page int) string { return path + "?page=" + strconv.Itoa(page) }

type ViolationItem struct {
	PropertyPath string `json:"propertyPath"`
	Message      string `json:"message"`
}

type ViolationList struct {
	Context     string          `json:"@context"`
	Type        string          `json:"@type"`
	Title       string          `json:"hydra:title"`
	Description string          `json:"hydra:description"`
	Violations  []ViolationItem `json:"violations"`
}

type ErrorResponse struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Title       string `json:"hydra:title"`
	Description string `json:"hydra:description"`
}
