package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityatriand/catering-app/internal/domain"
	"github.com/adityatriand/catering-app/pkg/database"
	apperrors "github.com/adityatriand/catering-app/pkg/errors"
)

func setupCategoryRepo(t *testing.T) (*CategoryRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	repo := NewCategoryRepository(mock)
	return repo, mock
}

var categoryRowColumns = []string{"id", "name", "created_at", "updated_at"}

func sampleCategory() domain.Category {
	return domain.Category{
		ID:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Name:      "spicy",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCategoryRepository_Create_Success(t *testing.T) {
	repo, mock := setupCategoryRepo(t)
	defer mock.Close()

	c := sampleCategory()
	mock.ExpectExec("INSERT INTO categories").
		WithArgs(c.ID, c.Name, c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &c)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create_DuplicateName(t *testing.T) {
	repo, mock := setupCategoryRepo(t)
	defer mock.Close()

	c := sampleCategory()
	mock.ExpectExec("INSERT INTO categories").
		WithArgs(c.ID, c.Name, c.CreatedAt, c.UpdatedAt).
		WillReturnError(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.Create(context.Background(), &c)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupCategoryRepo(t)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery("SELECT .+ FROM categories").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), id)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_List_Success(t *testing.T) {
	repo, mock := setupCategoryRepo(t)
	defer mock.Close()

	c := sampleCategory()
	mock.ExpectQuery("SELECT .+ FROM categories").
		WillReturnRows(
			pgxmock.NewRows(categoryRowColumns).
				AddRow(c.ID, c.Name, c.CreatedAt, c.UpdatedAt),
		)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "spicy", categories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Update_NotFound(t *testing.T) {
	repo, mock := setupCategoryRepo(t)
	defer mock.Close()

	c := sampleCategory()
	mock.ExpectExec("UPDATE categories").
		WithArgs(c.Name, pgxmock.AnyArg(), c.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &c)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Delete_Success(t *testing.T) {
	repo, mock := setupCategoryRepo(t)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
