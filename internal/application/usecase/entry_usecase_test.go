package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/application/usecase"
	"github.com/jhoicas/cod-metrics-api/internal/domain"
)

type entryFixture struct {
	products   *fakeProductRepo
	entries    *fakeEntryRepo
	uc         *usecase.EntryUseCase
	productID  string
	campaignID string
}

func newEntryFixture(t *testing.T) *entryFixture {
	t.Helper()
	products := newFakeProductRepo()
	entries := newFakeEntryRepo()

	productUC := usecase.NewProductUseCase(products)
	created, err := productUC.Create(validCreateProduct())
	require.NoError(t, err)
	withCampaign, err := productUC.AddCampaign(created.ID, dto.AddCampaignRequest{Name: "META Q1"})
	require.NoError(t, err)

	return &entryFixture{
		products:   products,
		entries:    entries,
		uc:         usecase.NewEntryUseCase(entries, products),
		productID:  created.ID,
		campaignID: withCampaign.Campaigns[0].ID,
	}
}

func (f *entryFixture) validRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		ProductID:      f.productID,
		Date:           "2026-03-10",
		Time:           "14:30",
		EntryType:      "SUB",
		Source:         "WEBSITE",
		TotalUnitsSold: 12,
		TotalOrders:    10,
		Campaigns: []dto.CampaignEntryDTO{
			{CampaignID: f.campaignID, AdSpend: decimal.NewFromInt(50), Orders: 6},
		},
	}
}

func TestEntryUseCase_Create(t *testing.T) {
	f := newEntryFixture(t)

	created, err := f.uc.Create(f.validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "SUB", created.EntryType)
	require.Len(t, created.Campaigns, 1)
	assert.Equal(t, "META Q1", created.Campaigns[0].Name,
		"el nombre de campaña se desnormaliza desde el roster")
}

func TestEntryUseCase_CreateInvalido(t *testing.T) {
	f := newEntryFixture(t)

	cases := []struct {
		nombre string
		mutar  func(*dto.CreateEntryRequest)
	}{
		{"fecha mal formada", func(r *dto.CreateEntryRequest) { r.Date = "10/03/2026" }},
		{"hora sin cero inicial", func(r *dto.CreateEntryRequest) { r.Time = "9:05" }},
		{"tipo desconocido", func(r *dto.CreateEntryRequest) { r.EntryType = "PARTIAL" }},
		{"canal desconocido", func(r *dto.CreateEntryRequest) { r.Source = "TIKTOK" }},
		{"unidades negativas", func(r *dto.CreateEntryRequest) { r.TotalUnitsSold = -1 }},
		{"gasto negativo", func(r *dto.CreateEntryRequest) {
			r.Campaigns[0].AdSpend = decimal.NewFromInt(-5)
		}},
		{"campaña fuera del roster", func(r *dto.CreateEntryRequest) {
			r.Campaigns[0].CampaignID = "otra"
		}},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			req := f.validRequest()
			tc.mutar(&req)
			_, err := f.uc.Create(req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestEntryUseCase_CreateProductoInexistente(t *testing.T) {
	f := newEntryFixture(t)
	req := f.validRequest()
	req.ProductID = "no-existe"
	_, err := f.uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntryUseCase_CreateBatchAtomico(t *testing.T) {
	f := newEntryFixture(t)

	ok := f.validRequest()
	bad := f.validRequest()
	bad.Time = "mal"
	_, err := f.uc.CreateBatch(dto.BatchCreateEntriesRequest{
		Entries: []dto.CreateEntryRequest{ok, bad},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un registro inválido rechaza el lote completo")

	list, err := f.uc.List("")
	require.NoError(t, err)
	assert.Zero(t, list.Total, "nada debe persistirse si el lote falla")

	res, err := f.uc.CreateBatch(dto.BatchCreateEntriesRequest{
		Entries: []dto.CreateEntryRequest{f.validRequest(), f.validRequest()},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestEntryUseCase_ListPorProducto(t *testing.T) {
	f := newEntryFixture(t)
	_, err := f.uc.Create(f.validRequest())
	require.NoError(t, err)

	list, err := f.uc.List(f.productID)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	list, err = f.uc.List("otro-producto")
	require.NoError(t, err)
	assert.Zero(t, list.Total)

	// ALL equivale a no filtrar.
	list, err = f.uc.List("ALL")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestEntryUseCase_UpdateConservaIdentidad(t *testing.T) {
	f := newEntryFixture(t)
	created, err := f.uc.Create(f.validRequest())
	require.NoError(t, err)

	req := f.validRequest()
	req.EntryType = "FINAL"
	req.TotalOrders = 15
	updated, err := f.uc.Update(created.ID, req)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID, "el ID no cambia al actualizar")
	assert.Equal(t, "FINAL", updated.EntryType)
	assert.Equal(t, 15, updated.TotalOrders)
}

func TestEntryUseCase_Delete(t *testing.T) {
	f := newEntryFixture(t)
	created, err := f.uc.Create(f.validRequest())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(created.ID))
	assert.ErrorIs(t, f.uc.Delete(created.ID), domain.ErrNotFound)
}
