//go:generate mockery --name=ClientRepository --output=../mocks --case=underscore
//go:generate mockery --name=ApplicationRepository --output=../mocks --case=underscore
package domain

import "context"

type ClientRepository interface {
	ListClients(ctx context.Context, limit, offset int) ([]Client, int32, error)
	GetClient(ctx context.Context, id int32) (*Client, error)
	EmailTaken(ctx context.Context, email string, exceptID int32) (bool, error)
	// CreateClient inserts the client together with its Applications.
	CreateClient(ctx context.Context, c Client) (int32, error)
	UpdateClient(ctx context.Context, c Client) error
	// DeleteClient removes the client's applications, then the client.
	DeleteClient(ctx context.Context, id int32) error
}

type ApplicationRepository interface {
	ListApplications(ctx context.Context, limit, offset int) ([]Application, int32, error)
	GetApplication(ctx context.Context, id int32) (*Application, error)
	ClientExists(ctx context.Context, clientID int32) (bool, error)
	CreateApplication(ctx context.Context, a Application) (int32, error)
	UpdateApplication(ctx context.Context, a Application) error
	DeleteApplication(ctx context.Context, id int32) error
}
