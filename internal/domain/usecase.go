//go:generate mockery --name=ClientUsecase --output=../mocks --case=underscore
//go:generate mockery --name=ApplicationUsecase --output=../mocks --case=underscore
package domain

import "context"

type ClientUsecase interface {
	List(ctx context.Context, page, size int) ([]Client, int32, error)
	Get(ctx context.Context, id int32) (*Client, error)
	Create(ctx context.Context, p ClientPatch) (*Client, error)
	Update(ctx context.Context, id int32, p ClientPatch) (*Client, error)
	Delete(ctx context.Context, id int32) error
}

type ApplicationUsecase interface {
	List(ctx context.Context, page, size int) ([]Application, int32, error)
	Get(ctx context.Context, id int32) (*Application, error)
	Create(ctx context.Context, p ApplicationPatch) (*Application, error)
	Update(ctx context.Context, id int32, p ApplicationPatch) (*Application, error)
	Delete(ctx context.Context, id int32) error
}
