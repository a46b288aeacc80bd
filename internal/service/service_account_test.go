package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/account-vault/internal/config"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/mock"
	"github.com/MKhiriev/account-vault/internal/store"
	"github.com/MKhiriev/account-vault/internal/validators"
	"github.com/MKhiriev/account-vault/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validEnvelope() models.Envelope {
	return models.Envelope{
		Ciphertext: base64.StdEncoding.EncodeToString(make([]byte, 40)),
		Nonce:      base64.StdEncoding.EncodeToString(make([]byte, 12)),
		Salt:       base64.StdEncoding.EncodeToString(make([]byte, 16)),
	}
}

func newTestAccountService(repo store.AccountRepository, mirror MirrorQueue, now time.Time) *accountService {
	svc := NewAccountService(repo, mirror, logger.Nop()).(*accountService)
	svc.now = func() time.Time { return now }
	return svc
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestAccountService_Create_PersistsAndMirrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	mirror := mock.NewMockMirrorQueue(ctrl)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	in := models.NewRecord{
		Envelope: validEnvelope(),
		Title:    "github",
		Tags:     "work",
		Meta:     models.Meta{"platform": "GitHub", "password": "leak", "status": ""},
	}

	var stored models.Record
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Record) error {
			stored = rec
			return nil
		})
	mirror.EXPECT().Enqueue(gomock.Any(), models.Meta{"platform": "GitHub"}).Return(true)

	got, err := newTestAccountService(repo, mirror, now).Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	_, parseErr := uuid.Parse(got.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, in.Envelope, got.Envelope)
	assert.Equal(t, "github", got.Title)
	assert.Equal(t, "work", got.Tags)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, now, got.UpdatedAt)
}

func TestAccountService_Create_RepoErrorSkipsMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	mirror := mock.NewMockMirrorQueue(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(store.ErrRecordExists)

	_, err := newTestAccountService(repo, mirror, time.Now()).Create(context.Background(), models.NewRecord{Envelope: validEnvelope()})

	assert.ErrorIs(t, err, store.ErrRecordExists)
}

func TestAccountService_Create_FullMirrorQueueDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	mirror := mock.NewMockMirrorQueue(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mirror.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(false)

	_, err := newTestAccountService(repo, mirror, time.Now()).Create(context.Background(), models.NewRecord{Envelope: validEnvelope()})

	assert.NoError(t, err)
}

func TestAccountService_Create_NilMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := newTestAccountService(repo, nil, time.Now()).Create(context.Background(), models.NewRecord{Envelope: validEnvelope()})

	assert.NoError(t, err)
}

func TestAccountService_Create_UniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	svc := newTestAccountService(repo, nil, time.Now())
	a, err := svc.Create(context.Background(), models.NewRecord{Envelope: validEnvelope()})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), models.NewRecord{Envelope: validEnvelope()})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

// ─────────────────────────────────────────────
// List / Delete / Ping
// ─────────────────────────────────────────────

func TestAccountService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	records := []models.Record{{ID: "b"}, {ID: "a"}}
	repo.EXPECT().List(gomock.Any()).Return(records, nil)

	got, err := NewAccountService(repo, nil, logger.Nop()).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestAccountService_List_NilBecomesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	got, err := NewAccountService(repo, nil, logger.Nop()).List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAccountService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := NewAccountService(repo, nil, logger.Nop()).List(context.Background())

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestAccountService_DeleteAndPing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), "id-1").Return(store.ErrRecordNotFound)
	repo.EXPECT().Ping(gomock.Any()).Return(nil)

	svc := NewAccountService(repo, nil, logger.Nop())

	assert.ErrorIs(t, svc.Delete(context.Background(), "id-1"), store.ErrRecordNotFound)
	assert.NoError(t, svc.Ping(context.Background()))
}

// ─────────────────────────────────────────────
// Validation wrapper
// ─────────────────────────────────────────────

func TestAccountValidationService_Create_RejectsMalformedEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAccountService(ctrl)

	svc := NewAccountValidationService().Wrap(inner)
	_, err := svc.Create(context.Background(), models.NewRecord{
		Envelope: models.Envelope{Ciphertext: "%%%", Nonce: "", Salt: ""},
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEnvelope)
}

func TestAccountValidationService_Create_PassesValidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAccountService(ctrl)
	rec := models.NewRecord{Envelope: validEnvelope(), Title: "t"}
	inner.EXPECT().Create(gomock.Any(), rec).Return(models.Record{ID: "new"}, nil)

	got, err := NewAccountValidationService().Wrap(inner).Create(context.Background(), rec)

	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
}

func TestAccountValidationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAccountService(ctrl)
	const id = "0b6f3e0c-7d0a-4c55-9a51-3e5c1e1c2f10"
	inner.EXPECT().Delete(gomock.Any(), id).Return(nil)

	svc := NewAccountValidationService().Wrap(inner)

	assert.NoError(t, svc.Delete(context.Background(), id))
	assert.ErrorIs(t, svc.Delete(context.Background(), "../etc/passwd"), ErrInvalidRecordID)
}

func TestAccountValidationService_UsesInjectedValidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAccountService(ctrl)
	v := mock.NewMockValidator(ctrl)
	boom := errors.New("boom")
	v.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(boom)

	svc := newAccountValidationServiceWith(v).Wrap(inner)
	_, err := svc.Create(context.Background(), models.NewRecord{})

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAccountValidationService_ListAndPingPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAccountService(ctrl)
	inner.EXPECT().List(gomock.Any()).Return([]models.Record{}, nil)
	inner.EXPECT().Ping(gomock.Any()).Return(nil)

	svc := NewAccountValidationService().Wrap(inner)

	_, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, svc.Ping(context.Background()))
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)

	services, err := NewServices(repo, nil, &config.ServerConfig{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))

	// deletes are validated before reaching the repository
	err = services.AccountService.Delete(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidRecordID)
}

func TestNewServices_NoVersion(t *testing.T) {
	_, err := NewServices(nil, nil, &config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
