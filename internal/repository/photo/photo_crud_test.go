package photo

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
)

func TestPhotoRepository_Insert(t *testing.T) {
	tests := []struct {
		name     string
		hash     string
		path     string
		alias    string
		setup    func(mock pgxmock.PgxPoolIface)
		wantID   model.PhotoID
		wantErr  bool
		wantCode string
	}{
		{
			name:  "successful insert",
			hash:  "d41d8cd98f00b204e9800998ecf8427e",
			path:  "photos/d41d8cd98f00b204e9800998ecf8427e.jpg",
			alias: "cat",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO photos").
					WithArgs("d41d8cd98f00b204e9800998ecf8427e", "photos/d41d8cd98f00b204e9800998ecf8427e.jpg", "cat").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
			wantID: 1,
		},
		{
			name:  "duplicate hash",
			hash:  "d41d8cd98f00b204e9800998ecf8427e",
			path:  "photos/d41d8cd98f00b204e9800998ecf8427e.jpg",
			alias: "cat2",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO photos").
					WithArgs("d41d8cd98f00b204e9800998ecf8427e", "photos/d41d8cd98f00b204e9800998ecf8427e.jpg", "cat2").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "photos_hash_key"})
			},
			wantErr:  true,
			wantCode: apperrors.CodeConflict,
		},
		{
			name:  "database error",
			hash:  "d41d8cd98f00b204e9800998ecf8427e",
			path:  "photos/d41d8cd98f00b204e9800998ecf8427e.jpg",
			alias: "cat",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO photos").
					WithArgs("d41d8cd98f00b204e9800998ecf8427e", "photos/d41d8cd98f00b204e9800998ecf8427e.jpg", "cat").
					WillReturnError(assert.AnError)
			},
			wantErr:  true,
			wantCode: apperrors.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewRepository(mock)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			id, err := repo.Insert(ctx, tt.path, tt.hash, tt.alias)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsCode(err, tt.wantCode))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPhotoRepository_Insert_DuplicateMessageCarriesHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO photos").
		WithArgs("abc123", "photos/abc123.jpg", "cat").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "photos_hash_key"})

	repo := NewRepository(mock)

	_, err = repo.Insert(context.Background(), "photos/abc123.jpg", "abc123", "cat")
	require.Error(t, err)

	_, message := apperrors.HTTPStatus(err)
	assert.Contains(t, message, "abc123")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPhotoRepository_ExistsByHash(t *testing.T) {
	tests := []struct {
		name    string
		hash    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantID  *model.PhotoID
		wantErr bool
	}{
		{
			name: "hash exists",
			hash: "abc123",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id FROM photos WHERE hash = \\$1").
					WithArgs("abc123").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID: func() *model.PhotoID { id := model.PhotoID(7); return &id }(),
		},
		{
			name: "hash absent",
			hash: "def456",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id FROM photos WHERE hash = \\$1").
					WithArgs("def456").
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			wantID: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewRepository(mock)

			id, err := repo.ExistsByHash(context.Background(), tt.hash)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPhotoRepository_GetIDByAlias_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id FROM photos WHERE alias = \\$1").
		WithArgs("nosuch").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	repo := NewRepository(mock)

	_, err = repo.GetIDByAlias(context.Background(), "nosuch")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPhotoRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "hash", "path", "alias", "created_at", "updated_at", "audio_length"}).
		AddRow(int64(3), "abc123", "photos/abc123.jpg", "cat", now, now, float64(4500))
	mock.ExpectQuery("SELECT p.id, p.hash, p.path, p.alias").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	repo := NewRepository(mock)

	photo, err := repo.GetByID(context.Background(), model.PhotoID(3))
	require.NoError(t, err)
	assert.Equal(t, model.PhotoID(3), photo.ID)
	assert.Equal(t, "cat", photo.Alias)
	assert.InDelta(t, 4.5, photo.AudioLengthSeconds, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}
