package usecase

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/domain"
	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
	"github.com/jhoicas/cod-metrics-api/internal/domain/repository"
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// EntryUseCase casos de uso CRUD para registros diarios de ventas.
type EntryUseCase struct {
	entries  repository.EntryRepository
	products repository.ProductRepository
}

// NewEntryUseCase construye el caso de uso.
func NewEntryUseCase(entries repository.EntryRepository, products repository.ProductRepository) *EntryUseCase {
	return &EntryUseCase{entries: entries, products: products}
}

// Create crea un registro diario validando formato y producto.
func (uc *EntryUseCase) Create(in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	entry, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	if err := uc.entries.Create(entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// CreateBatch crea varios registros de una importación. Valida todo el lote
// antes de persistir; un registro inválido rechaza el lote completo.
func (uc *EntryUseCase) CreateBatch(in dto.BatchCreateEntriesRequest) (*dto.EntryListResponse, error) {
	if len(in.Entries) == 0 {
		return nil, domain.ErrInvalidInput
	}
	batch := make([]*entity.DailyEntry, 0, len(in.Entries))
	for _, req := range in.Entries {
		entry, err := uc.buildEntry(req)
		if err != nil {
			return nil, err
		}
		batch = append(batch, entry)
	}
	if err := uc.entries.CreateBatch(batch); err != nil {
		return nil, err
	}
	items := make([]dto.EntryResponse, 0, len(batch))
	for _, e := range batch {
		items = append(items, *toEntryResponse(e))
	}
	return &dto.EntryListResponse{Entries: items, Total: len(items)}, nil
}

// GetByID obtiene un registro por ID.
func (uc *EntryUseCase) GetByID(id string) (*dto.EntryResponse, error) {
	entry, err := uc.entries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return toEntryResponse(entry), nil
}

// List lista todos los registros ordenados por (fecha, hora).
func (uc *EntryUseCase) List(productID string) (*dto.EntryListResponse, error) {
	var (
		list []*entity.DailyEntry
		err  error
	)
	if productID == "" || productID == "ALL" {
		list, err = uc.entries.List()
	} else {
		list, err = uc.entries.ListByProduct(productID)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEntryResponse(e))
	}
	return &dto.EntryListResponse{Entries: items, Total: len(items)}, nil
}

// Update reemplaza el contenido de un registro existente.
func (uc *EntryUseCase) Update(id string, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	existing, err := uc.entries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	entry, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = time.Now()
	if err := uc.entries.Update(entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// Delete elimina un registro por ID.
func (uc *EntryUseCase) Delete(id string) error {
	entry, err := uc.entries.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.entries.Delete(id)
}

func (uc *EntryUseCase) buildEntry(in dto.CreateEntryRequest) (*entity.DailyEntry, error) {
	if _, err := time.ParseInLocation("2006-01-02", in.Date, time.Local); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !timePattern.MatchString(in.Time) {
		return nil, domain.ErrInvalidInput
	}
	entryType := entity.EntryType(in.EntryType)
	if entryType != entity.EntrySub && entryType != entity.EntryFinal {
		return nil, domain.ErrInvalidInput
	}
	source := entity.Source(in.Source)
	if source != entity.SourceWebsite && source != entity.SourcePage {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalUnitsSold < 0 || in.TotalOrders < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	campaigns := make([]entity.CampaignEntry, 0, len(in.Campaigns))
	for _, c := range in.Campaigns {
		if c.AdSpend.IsNegative() || c.Orders < 0 {
			return nil, domain.ErrInvalidInput
		}
		// Las líneas referencian campañas del roster; el nombre se
		// desnormaliza para que el histórico sobreviva a renombres.
		roster := product.CampaignByID(c.CampaignID)
		if roster == nil {
			return nil, domain.ErrInvalidInput
		}
		name := c.Name
		if name == "" {
			name = roster.Name
		}
		campaigns = append(campaigns, entity.CampaignEntry{
			CampaignID: c.CampaignID,
			Name:       name,
			AdSpend:    c.AdSpend,
			Orders:     c.Orders,
		})
	}
	now := time.Now()
	return &entity.DailyEntry{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		Date:           in.Date,
		Time:           in.Time,
		EntryType:      entryType,
		Source:         source,
		TotalUnitsSold: in.TotalUnitsSold,
		TotalOrders:    in.TotalOrders,
		Campaigns:      campaigns,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func toEntryResponse(e *entity.DailyEntry) *dto.EntryResponse {
	if e == nil {
		return nil
	}
	campaigns := e.Campaigns
	if campaigns == nil {
		campaigns = []entity.CampaignEntry{}
	}
	return &dto.EntryResponse{
		ID:             e.ID,
		ProductID:      e.ProductID,
		Date:           e.Date,
		Time:           e.Time,
		EntryType:      string(e.EntryType),
		Source:         string(e.Source),
		TotalUnitsSold: e.TotalUnitsSold,
		TotalOrders:    e.TotalOrders,
		Campaigns:      campaigns,
	}
}
