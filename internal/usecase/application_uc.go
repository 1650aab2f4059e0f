package usecase

import (
	"context"
	"errors"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
	"github.com/aleksandr-shch/sun-finance/internal/validation"
)

type applicationUC struct {
	repo domain.ApplicationRepository
	val  *validation.Validator
}

func NewApplicationUC(r domain.ApplicationRepository, v *validation.Validator) domain.ApplicationUsecase {
	return &applicationUC{repo: r, val: v}
}

func (u *applicationUC) List(ctx context.Context, page, size int) ([]domain.Application, int32, error) {
	limit, offset := window(page, size)
	return u.repo.ListApplications(ctx, limit, offset)
}

func (u *applicationUC) Get(ctx context.Context, id int32) (*domain.Application, error) {
	return u.repo.GetApplication(ctx, id)
}

func (u *applicationUC) Create(ctx context.Context, p domain.ApplicationPatch) (*domain.Application, error) {
	a := p.Apply(domain.Application{})
	if err := u.validate(ctx, a); err != nil {
		return nil, err
	}
	id, err := u.repo.CreateApplication(ctx, a)
	if err != nil {
		return nil, unknownClient(err)
	}
	a.ID = id
	return &a, nil
}

func (u *applicationUC) Update(ctx context.Context, id int32, p domain.ApplicationPatch) (*domain.Application, error) {
	cur, err := u.repo.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	a := p.Apply(*cur)
	if err := u.validate(ctx, a); err != nil {
		return nil, err
	}
	if err := u.repo.UpdateApplication(ctx, a); err != nil {
		return nil, unknownClient(err)
	}
	return &a, nil
}

func (u *applicationUC) Delete(ctx context.Context, id int32) error {
	return u.repo.DeleteApplication(ctx, id)
}

func (u *applicationUC) validate(ctx context.Context, a domain.Application) error {
	vs := u.val.Application(a)
	if !hasField(vs, "clientId") {
		ok, err := u.repo.ClientExists(ctx, a.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			vs = insertBefore(vs, domain.Violation{Field: "clientId", Message: validation.MsgClientNotFound}, "term", "amount", "currency")
		}
	}
	if len(vs) > 0 {
		return domain.NewValidationError(vs...)
	}
	return nil
}

func unknownClient(err error) error {
	if errors.Is(err, domain.ErrUnknownClient) {
		return domain.NewValidationError(domain.Violation{Field: "clientId", Message: validation.MsgClientNotFound})
	}
	return err
}
