package validation

import "strings"

const (
	MsgEmailInUse     = "The email is already in use."
	MsgClientNotFound = "Client not found."
)

var messages = map[string]map[string]string{
	"firstName": {
		"latin_name": "Only latin characters from 2 to 32.",
	},
	"lastName": {
		"latin_name": "Only latin characters from 2 to 32.",
	},
	"email": {
		"email": "Email is not valid.",
		"max":   "This value is too long. It should have 255 characters or less.",
	},
	"phoneNumber": {
		"e164": "This value is not a valid phone number.",
		"max":  "This value is too long. It should have 255 characters or less.",
	},
	"clientId": {
		"gt": MsgClientNotFound,
	},
	"term": {
		"min": "This value should be between 10 and 30.",
		"max": "This value should be between 10 and 30.",
	},
	"amount": {
		"dec_gte":   "This value should be between 100 and 5000.",
		"dec_lte":   "This value should be between 100 and 5000.",
		"dec_scale": "This value should have at most 2 decimal places.",
	},
	"currency": {
		"currency_code": "Only latin characters of length three.",
	},
}

func Message(field, tag string) string {
	if tag == "required" {
		return blank(field)
	}
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return "This value is not valid."
}

func blank(field string) string {
	if field == "" {
		return "This value should not be blank."
	}
	return strings.ToUpper(field[:1]) + field[1:] + " cannot be blank!"
}
