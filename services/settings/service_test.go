package settings

import (
	"context"
	"testing"

	"brilho/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockSettingsRepo struct {
	mock.Mock
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*models.PlatformSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlatformSettings), args.Error(1)
}

func (m *mockSettingsRepo) Replace(ctx context.Context, settings models.PlatformSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func newService(repo *mockSettingsRepo) *DefaultSettingsService {
	// Cache nil: the snapshot layer is bypassed in unit tests.
	return &DefaultSettingsService{Repo: repo, Logger: zap.NewNop()}
}

func TestGetLoadsFromRepo(t *testing.T) {
	repo := new(mockSettingsRepo)
	svc := newService(repo)
	expected := models.DefaultPlatformSettings()
	repo.On("Get", mock.Anything).Return(&expected, nil)

	loaded, err := svc.Get(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &expected, loaded)
	repo.AssertExpectations(t)
}

func TestUpdateReplacesWholeDocument(t *testing.T) {
	repo := new(mockSettingsRepo)
	svc := newService(repo)
	settings := models.DefaultPlatformSettings()
	settings.Payouts.Senior.Hours6 = 110
	repo.On("Replace", mock.Anything, settings).Return(nil)

	updated, err := svc.Update(context.Background(), settings)

	assert.NoError(t, err)
	assert.Equal(t, 110.0, updated.Payouts.Senior.Hours6)
	repo.AssertExpectations(t)
}

func TestUpdateRejectsNegativePayout(t *testing.T) {
	repo := new(mockSettingsRepo)
	svc := newService(repo)
	settings := models.DefaultPlatformSettings()
	settings.Payouts.Junior.Hours4 = -10

	_, err := svc.Update(context.Background(), settings)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Replace")
}

func TestUpdateRejectsNegativeReferenceRates(t *testing.T) {
	repo := new(mockSettingsRepo)
	svc := newService(repo)
	settings := models.DefaultPlatformSettings()
	settings.MinDisplacement = -1

	_, err := svc.Update(context.Background(), settings)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Replace")
}
