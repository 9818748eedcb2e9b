package provider

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"eventra/database/repository/memstore"
	"eventra/models"
	"eventra/services/storage"
	"eventra/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (f *fakeStorage) UploadFile(_ context.Context, file io.Reader, folder string) (*storage.UploadResult, error) {
	b, _ := io.ReadAll(file)
	f.uploaded = append(f.uploaded, string(b))
	return &storage.UploadResult{PublicID: folder + "/x1", URL: "https://cdn.example.com/x1.jpg", ResourceType: "image"}, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

func (f *fakeStorage) GetDownloadURL(_ context.Context, _, publicID string) (string, error) {
	return "https://cdn.example.com/" + publicID, nil
}

func setup(t *testing.T, store storage.StorageService) (*memstore.Store, *DefaultProviderService) {
	t.Helper()
	ms := memstore.New()
	ms.Users["p1"] = &models.User{ID: "p1", Name: "Lens Co", Email: "lens@example.com", Role: models.RoleProvider, PasswordHash: "hash"}
	svc, err := NewDefaultProviderService(ms.ProviderRepo(), ms.UserRepo(), store)
	require.NoError(t, err)
	return ms, svc
}

func TestNewDefaultProviderServiceRequiresRepos(t *testing.T) {
	_, err := NewDefaultProviderService(nil, nil, nil)
	assert.Error(t, err)
}

func TestUpsertProfile(t *testing.T) {
	ms, svc := setup(t, nil)
	ctx := context.Background()

	location, bio := "Nairobi", "Weddings and portraits"
	req := models.ProviderProfileRequest{
		Category:        "Photography",
		Location:        &location,
		PricingPackages: []models.PricingPackage{{Name: "Basic", Price: 500}},
	}
	created, err := svc.UpsertProfile(ctx, "p1", req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, ms.Users["p1"].ProfileRef)

	req.Bio = &bio
	updated, err := svc.UpsertProfile(ctx, "p1", req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Weddings and portraits", updated.Bio)
	assert.Len(t, ms.Profiles, 1)

	invalid := []models.ProviderProfileRequest{
		{Category: " "},
		{Category: "Catering", PricingPackages: []models.PricingPackage{{Name: "", Price: 10}}},
		{Category: "Catering", PricingPackages: []models.PricingPackage{{Name: "Gold", Price: -1}}},
		{Category: "Catering", Portfolio: []models.PortfolioItem{{Type: "image"}}},
	}
	for _, r := range invalid {
		_, err := svc.UpsertProfile(ctx, "p1", r)
		assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))
	}
}

func TestProfileLookups(t *testing.T) {
	_, svc := setup(t, nil)
	ctx := context.Background()

	_, err := svc.GetOwnProfile(ctx, "p1")
	assert.Equal(t, "Profile not found", err.Error())

	location := " Mombasa "
	saved, err := svc.UpsertProfile(ctx, "p1", models.ProviderProfileRequest{Category: "Catering", Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "Mombasa", saved.Location)

	own, err := svc.GetOwnProfile(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, own.UserInfo)
	assert.Equal(t, "Lens Co", own.UserInfo.Name)

	byID, err := svc.GetProviderByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "lens@example.com", byID.UserInfo.Email)

	_, err = svc.GetProviderByID(ctx, "nope")
	assert.Equal(t, http.StatusNotFound, utils.StatusOf(err))
	assert.Equal(t, "Provider not found", err.Error())

	list, err := svc.ListProviders(ctx, models.ProviderSearchCriteria{Location: "momb"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.ListProviders(ctx, models.ProviderSearchCriteria{Category: "Photography"})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.ListProviders(ctx, models.ProviderSearchCriteria{MinRating: 6})
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))
}

func TestAddPortfolioMedia(t *testing.T) {
	_, unconfigured := setup(t, nil)
	_, err := unconfigured.AddPortfolioMedia(context.Background(), "p1", strings.NewReader("img"), "image", "")
	assert.Equal(t, http.StatusServiceUnavailable, utils.StatusOf(err))

	fs := &fakeStorage{}
	_, svc := setup(t, fs)
	ctx := context.Background()

	_, err = svc.AddPortfolioMedia(ctx, "p1", strings.NewReader("img"), "image", "")
	assert.Equal(t, http.StatusNotFound, utils.StatusOf(err))

	_, err = svc.UpsertProfile(ctx, "p1", models.ProviderProfileRequest{Category: "Decoration"})
	require.NoError(t, err)

	saved, err := svc.AddPortfolioMedia(ctx, "p1", strings.NewReader("img-bytes"), "", "Reception hall")
	require.NoError(t, err)
	require.Len(t, saved.Portfolio, 1)
	assert.Equal(t, "image", saved.Portfolio[0].Type)
	assert.Equal(t, "https://cdn.example.com/eventra/portfolio/x1", saved.Portfolio[0].URL)
	assert.Equal(t, []string{"img-bytes"}, fs.uploaded)
	assert.Empty(t, fs.deleted)
}

func TestAddPortfolioMediaDeletesUploadOnSaveFailure(t *testing.T) {
	fs := &fakeStorage{}
	ms, svc := setup(t, fs)
	ctx := context.Background()

	_, err := svc.UpsertProfile(ctx, "p1", models.ProviderProfileRequest{Category: "Decoration"})
	require.NoError(t, err)

	ms.FailWrite = errors.New("write failed")
	_, err = svc.AddPortfolioMedia(ctx, "p1", strings.NewReader("img"), "image", "")
	require.Error(t, err)
	assert.Equal(t, []string{"eventra/portfolio/x1"}, fs.deleted)
}

func TestCategoryOnlyUpdateKeepsPortfolio(t *testing.T) {
	fs := &fakeStorage{}
	_, svc := setup(t, fs)
	ctx := context.Background()

	bio, location := "Weddings", "Nairobi"
	_, err := svc.UpsertProfile(ctx, "p1", models.ProviderProfileRequest{
		Category:        "Photography",
		Bio:             &bio,
		Location:        &location,
		PricingPackages: []models.PricingPackage{{Name: "Basic", Price: 500}},
	})
	require.NoError(t, err)

	_, err = svc.AddPortfolioMedia(ctx, "p1", strings.NewReader("img"), "", "First dance")
	require.NoError(t, err)

	updated, err := svc.UpsertProfile(ctx, "p1", models.ProviderProfileRequest{Category: "Videography"})
	require.NoError(t, err)
	assert.Equal(t, "Videography", updated.Category)
	require.Len(t, updated.Portfolio, 1)
	assert.Equal(t, "First dance", updated.Portfolio[0].Description)
	assert.Equal(t, "Weddings", updated.Bio)
	assert.Equal(t, "Nairobi", updated.Location)
	assert.Len(t, updated.PricingPackages, 1)

	cleared, err := svc.UpsertProfile(ctx, "p1", models.ProviderProfileRequest{Category: "Videography", Portfolio: []models.PortfolioItem{}})
	require.NoError(t, err)
	assert.Empty(t, cleared.Portfolio)
}
