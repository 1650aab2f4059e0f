package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
)

func TestNewView(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int32
		want  PartialView
	}{
		{
			name: "empty_collection", page: 1, total: 0,
			want: PartialView{IRI: "/api/clients?page=1", Type: TypePartialView, First: "/api/clients?page=1", Last: "/api/clients?page=1"},
		},
		{
			name: "first_of_three", page: 1, total: 61,
			want: PartialView{IRI: "/api/clients?page=1", Type: TypePartialView, First: "/api/clients?page=1", Last: "/api/clients?page=3", Next: "/api/clients?page=2"},
		},
		{
			name: "middle", page: 2, total: 61,
			want: PartialView{IRI: "/api/clients?page=2", Type: TypePartialView, First: "/api/clients?page=1", Last: "/api/clients?page=3", Previous: "/api/clients?page=1", Next: "/api/clients?page=3"},
		},
		{
			name: "exactly_divisible_last", page: 2, total: 60,
			want: PartialView{IRI: "/api/clients?page=2", Type: TypePartialView, First: "/api/clients?page=1", Last: "/api/clients?page=2", Previous: "/api/clients?page=1"},
		},
		{
			name: "beyond_last", page: 9, total: 60,
			want: PartialView{IRI: "/api/clients?page=9", Type: TypePartialView, First: "/api/clients?page=1", Last: "/api/clients?page=2", Previous: "/api/clients?page=8"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *NewView(ClientsPath, tt.page, 30, tt.total))
		})
	}
}

func TestApplicationRequest_Decode(t *testing.T) {
	t.Run("iri_reference", func(t *testing.T) {
		var req ApplicationRequest
		require.NoError(t, json.Unmarshal([]byte(`{"clientId":"/api/clients/320","term":10,"amount":100.00,"currency":"USD"}`), &req))
		p := req.Patch()
		require.NotNil(t, p.ClientID)
		assert.Equal(t, int32(320), *p.ClientID)
		assert.True(t, p.Amount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 10, *p.Term)
	})

	t.Run("bare_id_and_string_amount", func(t *testing.T) {
		var req ApplicationRequest
		require.NoError(t, json.Unmarshal([]byte(`{"clientId":7,"amount":"250.5"}`), &req))
		p := req.Patch()
		assert.Equal(t, int32(7), *p.ClientID)
		assert.Equal(t, "250.5", p.Amount.String())
		assert.Nil(t, p.Term)
		assert.Nil(t, p.Currency)
	})

	t.Run("bad_iri", func(t *testing.T) {
		var req ApplicationRequest
		err := json.Unmarshal([]byte(`{"clientId":"/api/applications/1"}`), &req)
		var iriErr *IRIError
		require.ErrorAs(t, err, &iriErr)
		assert.Equal(t, "/api/applications/1", iriErr.Value)
	})

	t.Run("extreme_exponents_kept_compact", func(t *testing.T) {
		for body, exp := range map[string]int32{
			`{"amount":1e200000000}`:    200000000,
			`{"amount":"1e-200000000"}`: -200000000,
		} {
			var req ApplicationRequest
			require.NoError(t, json.Unmarshal([]byte(body), &req), body)
			p := req.Patch()
			assert.Equal(t, exp, p.Amount.Exponent(), body)
			assert.Equal(t, "1", p.Amount.Coefficient().String(), body)
		}
	})

	t.Run("bad_amount", func(t *testing.T) {
		var req ApplicationRequest
		err := json.Unmarshal([]byte(`{"amount":true}`), &req)
		var attrErr *AttributeError
		require.ErrorAs(t, err, &attrErr)
		assert.Equal(t, "amount", attrErr.Attribute)
		assert.Equal(t, "bool", attrErr.Given)
	})
}

func TestParseClientIRI(t *testing.T) {
	id, err := ParseClientIRI("/api/clients/42")
	require.NoError(t, err)
	assert.Equal(t, int32(42), id)

	for _, s := range []string{"", "/api/clients/", "/api/clients/x", "/api/clients/-1", "clients/1"} {
		_, err := ParseClientIRI(s)
		assert.Error(t, err, s)
	}
}

func TestNewApplicationResponse_JSON(t *testing.T) {
	b, err := json.Marshal(NewApplicationResponse(domain.Application{
		ID: 3, ClientID: 320, Term: 10, Amount: decimal.RequireFromString("100"), Currency: "USD",
	}, false))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"@context":"/api/contexts/Application",
		"@id":"/api/applications/3",
		"@type":"Application",
		"id":3,
		"clientId":"/api/clients/320",
		"term":10,
		"amount":100.00,
		"currency":"USD"
	}`, string(b))
	assert.Contains(t, string(b), `"amount":100.00`)
}

func TestNewViolationList(t *testing.T) {
	got := NewViolationList([]domain.Violation{
		{Field: "firstName", Message: "FirstName cannot be blank!"},
		{Field: "email", Message: "Email is not valid."},
	})
	assert.Equal(t, "/api/contexts/ConstraintViolationList", got.Context)
	assert.Equal(t, "firstName: FirstName cannot be blank!\nemail: Email is not valid.", got.Description)
	require.Len(t, got.Violations, 2)
	assert.Equal(t, "email", got.Violations[1].PropertyPath)
}
