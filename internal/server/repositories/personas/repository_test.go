package personas

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePersona() *models.Persona {
	at := time.Date(2025, 4, 8, 12, 0, 0, 0, time.UTC)
	return &models.Persona{
		OwnerID:   "1",
		Version:   "0.1",
		CreatedAt: at,
		UpdatedAt: at,
		KnowledgeDomains: map[string]models.KnowledgeDomain{
			"Technology": {ExpertiseLevel: 0.75, Frequency: 0.65, Keywords: []string{"innovation"}, Confidence: 0.7},
		},
		CommunicationStyle: models.CommunicationStyle{Formality: "neutral"},
		PersonalityTraits:  map[string]models.Trait{"positivity": {Value: "positive", Confidence: 0.82}},
		ValuesAndInterests: map[string]models.Affinity{
			"growth": {Type: models.AffinityValue, Level: 0.76, RelatedTerms: []string{"learn"}, Confidence: 0.76},
		},
		ContentSampleSize: 250,
		ConfidenceScore:   0.75,
	}
}

func TestMemory_SaveGetTouch(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(NewMemoryTable(), &sync.RWMutex{})

	_, err := r.Get(ctx, "1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, r.Touch(ctx, "1", time.Now()), common.ErrorNotFound)

	require.NoError(t, r.Save(ctx, samplePersona()))

	later := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Touch(ctx, "1", later))

	got, err := r.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, later, got.UpdatedAt)
	assert.Equal(t, samplePersona().CreatedAt, got.CreatedAt)
	assert.Equal(t, 250, got.ContentSampleSize)
}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgres_Get(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	p := samplePersona()
	profile := []byte(`{"knowledge_domains":{"Technology":{"expertise_level":0.75,"frequency":0.65,"keywords":["innovation"],"confidence":0.7}},` +
		`"communication_style":{"formality":"neutral"},"personality_traits":{"positivity":{"value":"positive","confidence":0.82}},` +
		`"values_and_interests":{"growth":{"type":"value","level":0.76,"related_terms":["learn"],"confidence":0.76}}}`)

	mock.ExpectQuery(`FROM personas\s+WHERE owner_id = \$1`).WithArgs("1").WillReturnRows(
		sqlmock.NewRows([]string{"owner_id", "version", "created_at", "updated_at", "profile", "content_sample_size", "confidence_score"}).
			AddRow("1", "0.1", p.CreatedAt, p.UpdatedAt, profile, 250, 0.75))

	got, err := repo.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPostgres_GetNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM personas`).WithArgs("2").WillReturnError(sql.ErrNoRows)
	_, err := repo.Get(context.Background(), "2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgres_Save(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	p := samplePersona()
	mock.ExpectExec(`(?s)^INSERT INTO personas .* ON CONFLICT \(owner_id\) DO UPDATE SET`).
		WithArgs("1", "0.1", p.CreatedAt, p.UpdatedAt, sqlmock.AnyArg(), 250, 0.75).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), p))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Touch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Now().UTC()
	q := `^UPDATE personas SET updated_at = \$2 WHERE owner_id = \$1$`

	mock.ExpectExec(q).WithArgs("1", at).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Touch(context.Background(), "1", at))

	mock.ExpectExec(q).WithArgs("2", at).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Touch(context.Background(), "2", at), common.ErrorNotFound)

	mock.ExpectExec(q).WithArgs("3", at).WillReturnError(errors.New("db down"))
	assert.ErrorContains(t, repo.Touch(context.Background(), "3", at), "db error")
}
