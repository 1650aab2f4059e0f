// Package fixtures fills the database with fake clients, each owning two
// applications, for local development and demos.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/log"
	"github.com/aleksandr-shch/sun-finance/internal/validation"
)

const (
	DefaultClients        = 1000
	ApplicationsPerClient = 2

	maxAttempts = 20
)

type Seeder struct {
	repo domain.ClientRepository
	val  *validation.Validator
	fake *gofakeit.Faker
	seen map[string]struct{}
}

// A zero seed picks a random one.
func NewSeeder(repo domain.ClientRepository, v *validation.Validator, seed int64) *Seeder {
	return &Seeder{
		repo: repo,
		val:  v,
		fake: gofakeit.New(seed),
		seen: map[string]struct{}{},
	}
}

func (s *Seeder) Run(ctx context.Context, n int) (int, error) {
	written := 0
	for written < n {
		c, err := s.Client()
		if err != nil {
			return written, err
		}
		if _, err := s.repo.CreateClient(ctx, c); err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				log.Warn.Printf("seed skip_duplicate email=%q", c.Email)
				continue
			}
			return written, fmt.Errorf("seed client %d: %w", written+1, err)
		}
		written++
		if written%100 == 0 {
			log.Info.Printf("seed progress clients=%d", written)
		}
	}
	return written, nil
}

func (s *Seeder) Client() (domain.Client, error) {
	for i := 0; i < maxAttempts; i++ {
		c := domain.Client{
			FirstName:   s.fake.FirstName(),
			LastName:    s.fake.LastName(),
			Email:       strings.ToLower(s.fake.Email()),
			PhoneNumber: "+1" + s.fake.Phone(),
		}
		if _, dup := s.seen[c.Email]; dup {
			continue
		}
		if vs := s.val.Client(c); len(vs) > 0 {
			continue
		}
		apps, err := s.applications()
		if err != nil {
			return domain.Client{}, err
		}
		c.Applications = apps
		s.seen[c.Email] = struct{}{}
		return c, nil
	}
	return domain.Client{}, fmt.Errorf("seed: no valid client after %d attempts", maxAttempts)
}

func (s *Seeder) applications() ([]domain.Application, error) {
	out := make([]domain.Application, 0, ApplicationsPerClient)
	for len(out) < ApplicationsPerClient {
		a, err := s.application()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Seeder) application() (domain.Application, error) {
	for i := 0; i < maxAttempts; i++ {
		a := domain.Application{
			Term:     s.fake.Number(10, 30),
			Amount:   decimal.NewFromFloat(s.fake.Price(100, 5000)).Round(2),
			Currency: s.fake.CurrencyShort(),
		}
		// the owner id is assigned on insert
		if ownViolations(s.val.Application(a)) {
			continue
		}
		return a, nil
	}
	return domain.Application{}, fmt.Errorf("seed: no valid application after %d attempts", maxAttempts)
}

func ownViolations(vs []domain.Violation) bool {
	for _, v := range vs {
		if v.Field != "clientId" {
			return true
		}
	}
	return false
}
