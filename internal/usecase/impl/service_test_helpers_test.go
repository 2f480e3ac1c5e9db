package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	mockRepo "budget/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userSession(id int) *entity.Session {
	return &entity.Session{UserID: id, Roles: entity.Roles{entity.RoleUser}}
}

func adminSession(id int) *entity.Session {
	return &entity.Session{UserID: id, Roles: entity.Roles{entity.RoleAdmin, entity.RoleUser}}
}

// expectExecute makes txManager run the callback against a fresh factory
// prepared by setup and return whatever the callback returns.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
