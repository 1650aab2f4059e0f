package fixtures

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
	"github.com/aleksandr-shch/sun-finance/internal/mocks"
	"github.com/aleksandr-shch/sun-finance/internal/validation"
)

func TestSeeder_Client(t *testing.T) {
	v := validation.New()
	s := NewSeeder(mocks.NewClientRepository(t), v, 42)

	emails := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		c, err := s.Client()
		require.NoError(t, err)
		assert.Empty(t, v.Client(c))
		require.Len(t, c.Applications, ApplicationsPerClient)
		for _, a := range c.Applications {
			a.ClientID = 1
			assert.Empty(t, v.Application(a))
		}
		_, dup := emails[c.Email]
		assert.False(t, dup, c.Email)
		emails[c.Email] = struct{}{}
	}
}

func TestSeeder_Reproducible(t *testing.T) {
	a, err := NewSeeder(mocks.NewClientRepository(t), validation.New(), 7).Client()
	require.NoError(t, err)
	b, err := NewSeeder(mocks.NewClientRepository(t), validation.New(), 7).Client()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("skips_duplicates", func(t *testing.T) {
		repo := mocks.NewClientRepository(t)
		repo.On("CreateClient", ctx, mock.AnythingOfType("domain.Client")).Return(int32(0), domain.ErrDuplicateEmail).Once()
		repo.On("CreateClient", ctx, mock.AnythingOfType("domain.Client")).Return(int32(1), nil).Times(3)

		n, err := NewSeeder(repo, validation.New(), 1).Run(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("stops_on_error", func(t *testing.T) {
		repo := mocks.NewClientRepository(t)
		repo.On("CreateClient", ctx, mock.Anything).Return(int32(1), nil).Once()
		repo.On("CreateClient", ctx, mock.Anything).Return(int32(0), errors.New("db down")).Once()

		n, err := NewSeeder(repo, validation.New(), 1).Run(ctx, 5)
		require.Error(t, err)
		assert.Equal(t, 1, n)
	})
}
