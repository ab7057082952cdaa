package query

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
)

var queryRowColumns = []string{
	"id", "path", "created_at", "updated_at", "comment_path", "text_comment", "include",
	"translation_en", "translation_hi", "translation_mr", "sample_id",
}

func TestQueryRepository_Insert(t *testing.T) {
	id := model.QueryID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))

	tests := []struct {
		name     string
		setup    func(mock pgxmock.PgxPoolIface)
		wantErr  bool
		wantCode string
	}{
		{
			name: "successful insert",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO queries").
					WithArgs(id.UUID(), "queries/11111111-2222-3333-4444-555555555555.wav").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id.UUID()))
			},
		},
		{
			name: "duplicate id",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO queries").
					WithArgs(id.UUID(), "queries/11111111-2222-3333-4444-555555555555.wav").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "queries_pkey"})
			},
			wantErr:  true,
			wantCode: apperrors.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewRepository(mock)

			returned, err := repo.Insert(context.Background(), id, "queries/11111111-2222-3333-4444-555555555555.wav")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsCode(err, tt.wantCode))
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, returned)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQueryRepository_Exists(t *testing.T) {
	id := model.QueryID(uuid.New())

	tests := []struct {
		name  string
		setup func(mock pgxmock.PgxPoolIface)
		want  bool
	}{
		{
			name: "query exists",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT 1 FROM queries WHERE id = \\$1").
					WithArgs(id.UUID()).
					WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "query absent",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT 1 FROM queries WHERE id = \\$1").
					WithArgs(id.UUID()).
					WillReturnRows(pgxmock.NewRows([]string{"?column?"}))
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewRepository(mock)

			exists, err := repo.Exists(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQueryRepository_GetByID(t *testing.T) {
	id := model.QueryID(uuid.New())
	now := time.Now()
	commentPath := "comments/a.mp3,comments/b.mp3"
	textComment := "unclear recording"

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	rows := pgxmock.NewRows(queryRowColumns).
		AddRow(id.UUID(), "queries/x.wav", now, now, &commentPath, &textComment,
			"Include", nil, nil, nil, func() *int32 { v := int32(5); return &v }())
	mockPool.ExpectQuery("SELECT (.+) FROM queries WHERE id = \\$1").
		WithArgs(id.UUID()).
		WillReturnRows(rows)

	repo := NewRepository(mockPool)

	q, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, q.ID)
	assert.Equal(t, model.IncludeInclude, q.Include)
	assert.Equal(t, []string{"comments/a.mp3", "comments/b.mp3"}, q.CommentPaths)
	require.NotNil(t, q.SampleID)
	assert.Equal(t, model.SampleID(5), *q.SampleID)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestQueryRepository_GetBySampleID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM queries WHERE sample_id = \\$1").
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows(queryRowColumns))

	repo := NewRepository(mock)

	_, err = repo.GetBySampleID(context.Background(), model.SampleID(99))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
