package usecase_test

import (
	"sort"

	"github.com/jhoicas/cod-metrics-api/internal/domain/entity"
)

// Repositorios en memoria para probar los casos de uso sin base de datos.

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeEntryRepo struct {
	items map[string]*entity.DailyEntry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{items: map[string]*entity.DailyEntry{}}
}

func (r *fakeEntryRepo) Create(e *entity.DailyEntry) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) CreateBatch(entries []*entity.DailyEntry) error {
	for _, e := range entries {
		cp := *e
		r.items[e.ID] = &cp
	}
	return nil
}

func (r *fakeEntryRepo) GetByID(id string) (*entity.DailyEntry, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntryRepo) List() ([]*entity.DailyEntry, error) {
	out := make([]*entity.DailyEntry, 0, len(r.items))
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *fakeEntryRepo) ListByProduct(productID string) ([]*entity.DailyEntry, error) {
	all, _ := r.List()
	out := make([]*entity.DailyEntry, 0, len(all))
	for _, e := range all {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) Update(e *entity.DailyEntry) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeSettingsRepo struct {
	saved *entity.Settings
}

func (r *fakeSettingsRepo) Get() (*entity.Settings, error) {
	if r.saved == nil {
		return entity.DefaultSettings(), nil
	}
	cp := *r.saved
	return &cp, nil
}

func (r *fakeSettingsRepo) Save(s *entity.Settings) error {
	cp := *s
	r.saved = &cp
	return nil
}

type fakeCategoryRepo struct {
	items map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}
