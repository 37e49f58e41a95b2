//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	loginAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateUserLastLoginParams) bool {
				return arg.ID == testUserID && arg.LastLogin.Time.Equal(loginAt) && arg.LastLogin.Valid
			})).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, nil)

			err := repo.UpdateLastLogin(context.Background(), testUserID, loginAt)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
