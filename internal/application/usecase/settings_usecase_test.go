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

func TestSettingsUseCase_GetDevuelveDefaults(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})

	got, err := uc.Get()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(got.GlobalDeliveryRate),
		"sin configuración guardada la tasa de entrega por defecto es 100%")
	assert.True(t, decimal.NewFromInt(1).Equal(got.ExchangeRate))
}

func TestSettingsUseCase_UpdateYGet(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})

	in := dto.SettingsDTO{
		GlobalDeliveryRate:              decimal.NewFromInt(85),
		ExchangeRate:                    decimal.NewFromInt(40),
		MonthlyTargetRevenue:            decimal.NewFromInt(50000),
		MonthlyTargetUnitsSold:          600,
		MonthlyTargetOrders:             500,
		OrderDistribution1Unit:          decimal.NewFromInt(70),
		OrderDistribution2Units:         decimal.NewFromInt(20),
		OrderDistribution3Units:         decimal.NewFromInt(7),
		OrderDistributionMoreThan3Units: decimal.NewFromInt(3),
	}
	_, err := uc.Update(in)
	require.NoError(t, err)

	got, err := uc.Get()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(85).Equal(got.GlobalDeliveryRate))
	assert.Equal(t, 600, got.MonthlyTargetUnitsSold)
}

func TestSettingsUseCase_UpdateInvalido(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})

	in := dto.SettingsDTO{
		GlobalDeliveryRate: decimal.NewFromInt(120),
		ExchangeRate:       decimal.NewFromInt(1),
	}
	_, err := uc.Update(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tasa de entrega > 100% debe rechazarse")

	in = dto.SettingsDTO{
		GlobalDeliveryRate: decimal.NewFromInt(90),
		ExchangeRate:       decimal.Zero,
	}
	_, err = uc.Update(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tasa de cambio cero debe rechazarse")
}
