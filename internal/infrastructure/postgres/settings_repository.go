package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
	"github.com/jhoicas/cod-metrics-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository. La configuración
// es una fila única con id fijo 1; Save hace upsert sobre ella.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la configuración guardada o los valores por defecto si la fila
// aún no existe.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT global_delivery_rate, exchange_rate, monthly_target_revenue,
			monthly_target_units_sold, monthly_target_orders,
			order_distribution_1_unit, order_distribution_2_units,
			order_distribution_3_units, order_distribution_more_than_3_units,
			updated_at
		FROM settings WHERE id = 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.GlobalDeliveryRate, &s.ExchangeRate, &s.MonthlyTargetRevenue,
		&s.MonthlyTargetUnitsSold, &s.MonthlyTargetOrders,
		&s.OrderDistribution1Unit, &s.OrderDistribution2Units,
		&s.OrderDistribution3Units, &s.OrderDistributionMoreThan3Units,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Save reemplaza la configuración completa.
func (r *SettingsRepo) Save(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, global_delivery_rate, exchange_rate,
			monthly_target_revenue, monthly_target_units_sold, monthly_target_orders,
			order_distribution_1_unit, order_distribution_2_units,
			order_distribution_3_units, order_distribution_more_than_3_units,
			updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			global_delivery_rate = EXCLUDED.global_delivery_rate,
			exchange_rate = EXCLUDED.exchange_rate,
			monthly_target_revenue = EXCLUDED.monthly_target_revenue,
			monthly_target_units_sold = EXCLUDED.monthly_target_units_sold,
			monthly_target_orders = EXCLUDED.monthly_target_orders,
			order_distribution_1_unit = EXCLUDED.order_distribution_1_unit,
			order_distribution_2_units = EXCLUDED.order_distribution_2_units,
			order_distribution_3_units = EXCLUDED.order_distribution_3_units,
			order_distribution_more_than_3_units = EXCLUDED.order_distribution_more_than_3_units,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.GlobalDeliveryRate, settings.ExchangeRate, settings.MonthlyTargetRevenue,
		settings.MonthlyTargetUnitsSold, settings.MonthlyTargetOrders,
		settings.OrderDistribution1Unit, settings.OrderDistribution2Units,
		settings.OrderDistribution3Units, settings.OrderDistributionMoreThan3Units,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
