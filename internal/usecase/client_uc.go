package usecase

import (
	"context"
	"errors"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
	"github.com/aleksandr-shch/sun-finance/internal/validation"
)

type clientUC struct {
	repo domain.ClientRepository
	val  *validation.Validator
}

func NewClientUC(r domain.ClientRepository, v *validation.Validator) domain.ClientUsecase {
	return &clientUC{repo: r, val: v}
}

func (u *clientUC) List(ctx context.Context, page, size int) ([]domain.Client, int32, error) {
	limit, offset := window(page, size)
	return u.repo.ListClients(ctx, limit, offset)
}

func (u *clientUC) Get(ctx context.Context, id int32) (*domain.Client, error) {
	return u.repo.GetClient(ctx, id)
}

func (u *clientUC) Create(ctx context.Context, p domain.ClientPatch) (*domain.Client, error) {
	c := p.Apply(domain.Client{})
	if err := u.validate(ctx, c); err != nil {
		return nil, err
	}
	id, err := u.repo.CreateClient(ctx, c)
	if err != nil {
		return nil, emailConflict(err)
	}
	c.ID = id
	return &c, nil
}

func (u *clientUC) Update(ctx context.Context, id int32, p domain.ClientPatch) (*domain.Client, error) {
	cur, err := u.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	c := p.Apply(*cur)
	if err := u.validate(ctx, c); err != nil {
		return nil, err
	}
	if err := u.repo.UpdateClient(ctx, c); err != nil {
		return nil, emailConflict(err)
	}
	return &c, nil
}

func (u *clientUC) Delete(ctx context.Context, id int32) error {
	return u.repo.DeleteClient(ctx, id)
}

func (u *clientUC) validate(ctx context.Context, c domain.Client) error {
	vs := u.val.Client(c)
	if !hasField(vs, "email") {
		taken, err := u.repo.EmailTaken(ctx, c.Email, c.ID)
		if err != nil {
			return err
		}
		if taken {
			vs = insertBefore(vs, domain.Violation{Field: "email", Message: validation.MsgEmailInUse}, "phoneNumber")
		}
	}
	if len(vs) > 0 {
		return domain.NewValidationError(vs...)
	}
	return nil
}

func emailConflict(err error) error {
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return domain.NewValidationError(domain.Violation{Field: "email", Message: validation.MsgEmailInUse})
	}
	return err
}
