package audio

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
)

func TestAudioRepository_Insert(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock pgxmock.PgxPoolIface)
		wantID   model.AudioID
		wantErr  bool
		wantCode string
	}{
		{
			name: "successful insert",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO audio").
					WithArgs(int64(1), "abc123", "audio/abc123.mp3", int64(4500)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
			},
			wantID: 10,
		},
		{
			name: "duplicate hash",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO audio").
					WithArgs(int64(1), "abc123", "audio/abc123.mp3", int64(4500)).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "audio_hash_key"})
			},
			wantErr:  true,
			wantCode: apperrors.CodeConflict,
		},
		{
			name: "unknown photo id",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO audio").
					WithArgs(int64(1), "abc123", "audio/abc123.mp3", int64(4500)).
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "audio_photo_id_fkey"})
			},
			wantErr:  true,
			wantCode: apperrors.CodeDependency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewRepository(mock)

			id, err := repo.Insert(context.Background(), model.PhotoID(1), "audio/abc123.mp3", "abc123", 4500)

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

func TestAudioRepository_GetByPhotoID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "photo_id", "hash", "path", "length"}).
		AddRow(int64(1), int64(3), "aaa", "audio/aaa.mp3", int64(2000)).
		AddRow(int64(2), int64(3), "bbb", "audio/bbb.mp3", int64(3000))
	mock.ExpectQuery("SELECT id, photo_id, hash, path, length FROM audio WHERE photo_id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	repo := NewRepository(mock)

	items, err := repo.GetByPhotoID(context.Background(), model.PhotoID(3))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.AudioID(1), items[0].ID)
	assert.Equal(t, int64(3000), items[1].LengthMillis)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAudioRepository_TotalLength(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(length\\), 0\\) FROM audio").
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(float64(5000)))

	repo := NewRepository(mock)

	total, err := repo.TotalLength(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(5000), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
