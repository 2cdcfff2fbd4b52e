package integration_test

import (
	"context"
	"testing"

	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/client"
	"lounge_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLounge_PublicCatalog - каталог залов доступен без токена
func TestLounge_PublicCatalog(t *testing.T) {
	ts := GetTestServer(t)
	ctx := context.Background()

	admin, _ := helpers.SignupAdmin(t, ts)
	lounge := helpers.CreateLounge(t, admin, "Public Catalog Lounge")

	anon := client.New(ts.Server.URL)

	lounges, err := anon.Lounges.List(ctx, nil)
	require.NoError(t, err)

	var found bool
	for _, l := range lounges {
		if l.ID == lounge.ID {
			found = true
		}
	}
	assert.True(t, found, "созданный зал должен быть виден в каталоге")

	got, err := anon.Lounges.GetByID(ctx, lounge.ID)
	require.NoError(t, err)
	assert.Equal(t, "Public Catalog Lounge", got.Name)
	assert.Equal(t, "DSS", got.Airport)
}

// TestLounge_AnonymousCannotCreate - мутации каталога только для админа
func TestLounge_AnonymousCannotCreate(t *testing.T) {
	ts := GetTestServer(t)
	ctx := context.Background()

	anon := client.New(ts.Server.URL)
	_, err := anon.Lounges.Create(ctx, &dto.CreateLoungeRequest{
		Name:     "Rogue Lounge",
		Location: "Nowhere",
		Airport:  "XXX",
		Country:  "Nowhere",
		Price:    1,
	})
	assert.Error(t, err)

	api, _ := helpers.SignupUser(t, ts, "Mame", "Thiam")
	_, err = api.Lounges.Create(ctx, &dto.CreateLoungeRequest{
		Name:     "Rogue Lounge",
		Location: "Nowhere",
		Airport:  "XXX",
		Country:  "Nowhere",
		Price:    1,
	})
	assert.Error(t, err)
}

// TestLounge_UpdateAndDelete - правка и удаление зала админом
func TestLounge_UpdateAndDelete(t *testing.T) {
	ts := GetTestServer(t)
	ctx := context.Background()

	admin, _ := helpers.SignupAdmin(t, ts)
	lounge := helpers.CreateLounge(t, admin, "Update Lounge")

	newPrice := 150.0
	updated, err := admin.Lounges.Update(ctx, lounge.ID, &dto.UpdateLoungeRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, "Update Lounge", updated.Name, "незатронутые поля сохраняются")

	require.NoError(t, admin.Lounges.Delete(ctx, lounge.ID))

	_, err = admin.Lounges.GetByID(ctx, lounge.ID)
	assert.Error(t, err)
}

// TestLounge_Analytics - сводка каталога для дашборда
func TestLounge_Analytics(t *testing.T) {
	ts := GetTestServer(t)
	ctx := context.Background()

	admin, _ := helpers.SignupAdmin(t, ts)
	helpers.CreateLounge(t, admin, "Analytics Lounge")

	analytics, err := admin.Lounges.Analytics(ctx)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, analytics.TotalLounges, int64(1))
	assert.NotEmpty(t, analytics.LoungesByCountry)
}
