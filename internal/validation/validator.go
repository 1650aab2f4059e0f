// Package validation declares the field rules of clients and applications and
// turns validator/v10 failures into ordered domain violations.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
)

const (
	maxDecimalExp = 4
	minDecimalExp = -64
	outOfRange    = "out of range"
)

var (
	latinName    = regexp.MustCompile(`^[a-zA-Z]{2,32}$`)
	currencyCode = regexp.MustCompile(`^[a-zA-Z]{3}$`)
)

type clientRules struct {
	FirstName   string `json:"firstName" validate:"required,latin_name"`
	LastName    string `json:"lastName" validate:"required,latin_name"`
	Email       string `json:"email" validate:"required,max=255,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=255,e164"`
}

type applicationRules struct {
	ClientID int32           `json:"clientId" validate:"required,gt=0"`
	Term     int             `json:"term" validate:"required,min=10,max=30"`
	Amount   decimal.Decimal `json:"amount" validate:"required,dec_gte=100,dec_lte=5000,dec_scale=2"`
	Currency string          `json:"currency" validate:"required,currency_code"`
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	mustRegister(v, "latin_name", matches(latinName))
	mustRegister(v, "currency_code", matches(currencyCode))
	mustRegister(v, "dec_gte", compareDecimal(func(d, p decimal.Decimal) bool { return d.GreaterThanOrEqual(p) }))
	mustRegister(v, "dec_lte", compareDecimal(func(d, p decimal.Decimal) bool { return d.LessThanOrEqual(p) }))
	mustRegister(v, "dec_scale", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		p, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return d.Equal(d.Round(int32(p.IntPart())))
	})
	return &Validator{v: v}
}

func (v *Validator) Client(c domain.Client) []domain.Violation {
	return v.check(clientRules{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	})
}

func (v *Validator) Application(a domain.Application) []domain.Violation {
	return v.check(applicationRules{
		ClientID: a.ClientID,
		Term:     a.Term,
		Amount:   a.Amount,
		Currency: a.Currency,
	})
}

func (v *Validator) check(s any) []domain.Violation {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []domain.Violation{{Field: "", Message: err.Error()}}
	}
	out := make([]domain.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.Violation{Field: fe.Field(), Message: Message(fe.Field(), fe.Tag())})
	}
	return out
}

// Zero is blank. Exponents outside the window are never expanded.
func decimalValue(f reflect.Value) interface{} {
	d, ok := f.Interface().(decimal.Decimal)
	if !ok || d.IsZero() {
		return ""
	}
	if exp := compactExponent(d); exp > maxDecimalExp || exp < minDecimalExp {
		return outOfRange
	}
	return d.String()
}

func compactExponent(d decimal.Decimal) int {
	digits := strings.TrimLeft(d.Coefficient().String(), "-")
	return int(d.Exponent()) + len(digits) - len(strings.TrimRight(digits, "0"))
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool { return re.MatchString(fl.Field().String()) }
}

func compareDecimal(ok func(d, param decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		p, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return ok(d, p)
	}
}
