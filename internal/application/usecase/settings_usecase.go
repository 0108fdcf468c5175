package usecase

import (
	"time"

	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/domain"
	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
	"github.com/jhoicas/cod-metrics-api/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de la configuración global.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración actual (valores por defecto si nunca se guardó).
func (uc *SettingsUseCase) Get() (*dto.SettingsDTO, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsDTO(settings), nil
}

// Update reemplaza la configuración completa. La tasa de entrega es un
// porcentaje en [0, 100] y la tasa de cambio debe ser positiva.
func (uc *SettingsUseCase) Update(in dto.SettingsDTO) (*dto.SettingsDTO, error) {
	hundred := entity.DefaultSettings().GlobalDeliveryRate
	if in.GlobalDeliveryRate.IsNegative() || in.GlobalDeliveryRate.GreaterThan(hundred) {
		return nil, domain.ErrInvalidInput
	}
	if !in.ExchangeRate.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.MonthlyTargetRevenue.IsNegative() || in.MonthlyTargetUnitsSold < 0 || in.MonthlyTargetOrders < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.OrderDistribution1Unit.IsNegative() || in.OrderDistribution2Units.IsNegative() ||
		in.OrderDistribution3Units.IsNegative() || in.OrderDistributionMoreThan3Units.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.Settings{
		GlobalDeliveryRate:              in.GlobalDeliveryRate,
		ExchangeRate:                    in.ExchangeRate,
		MonthlyTargetRevenue:            in.MonthlyTargetRevenue,
		MonthlyTargetUnitsSold:          in.MonthlyTargetUnitsSold,
		MonthlyTargetOrders:             in.MonthlyTargetOrders,
		OrderDistribution1Unit:          in.OrderDistribution1Unit,
		OrderDistribution2Units:         in.OrderDistribution2Units,
		OrderDistribution3Units:         in.OrderDistribution3Units,
		OrderDistributionMoreThan3Units: in.OrderDistributionMoreThan3Units,
		UpdatedAt:                       time.Now(),
	}
	if err := uc.repo.Save(settings); err != nil {
		return nil, err
	}
	return toSettingsDTO(settings), nil
}

func toSettingsDTO(s *entity.Settings) *dto.SettingsDTO {
	return &dto.SettingsDTO{
		GlobalDeliveryRate:              s.GlobalDeliveryRate,
		ExchangeRate:                    s.ExchangeRate,
		MonthlyTargetRevenue:            s.MonthlyTargetRevenue,
		MonthlyTargetUnitsSold:          s.MonthlyTargetUnitsSold,
		MonthlyTargetOrders:             s.MonthlyTargetOrders,
		OrderDistribution1Unit:          s.OrderDistribution1Unit,
		OrderDistribution2Units:         s.OrderDistribution2Units,
		OrderDistribution3Units:         s.OrderDistribution3Units,
		OrderDistributionMoreThan3Units: s.OrderDistributionMoreThan3Units,
	}
}
