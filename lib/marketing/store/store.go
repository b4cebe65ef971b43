package marketingstore

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	ListTestimonials() ([]dbmodels.Testimonial, error)
	ListPricingPlans() ([]dbmodels.PricingPlan, error)
	ListFeatures() ([]dbmodels.Feature, error)
	ListIntegrations() ([]dbmodels.Integration, error)
	ListFaqs() ([]dbmodels.Faq, error)
	CreateDemoRequest(rec dbmodels.DemoRequest) (id string, err error)
	ListDemoRequests() ([]dbmodels.DemoRequest, error)
	Subscribe(rec dbmodels.NewsletterSubscription) (id string, err error)
	IsEmpty() (bool, error)
	SaveContent(content Content) error
}

// Content is the published site content, written in one go when seeding.
type Content struct {
	Testimonials []dbmodels.Testimonial
	PricingPlans []dbmodels.PricingPlan
	Features     []dbmodels.Feature
	Integrations []dbmodels.Integration
	Faqs         []dbmodels.Faq
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListTestimonials() ([]dbmodels.Testimonial, error) {
	list := []dbmodels.Testimonial{}
	err := i.db.
		Where("is_featured = ?", true).
		Order("display_order").
		Find(&list).
		Error
	return list, err
}

func (i impl) ListPricingPlans() ([]dbmodels.PricingPlan, error) {
	list := []dbmodels.PricingPlan{}
	err := i.db.
		Where("is_active = ?", true).
		Order("display_order").
		Find(&list).
		Error
	return list, err
}

func (i impl) ListFeatures() ([]dbmodels.Feature, error) {
	list := []dbmodels.Feature{}
	err := i.db.
		Where("is_featured = ?", true).
		Order("display_order").
		Find(&list).
		Error
	return list, err
}

func (i impl) ListIntegrations() ([]dbmodels.Integration, error) {
	list := []dbmodels.Integration{}
	err := i.db.
		Where("is_featured = ?", true).
		Order("display_order").
		Find(&list).
		Error
	return list, err
}

func (i impl) ListFaqs() ([]dbmodels.Faq, error) {
	list := []dbmodels.Faq{}
	err := i.db.
		Where("is_active = ?", true).
		Order("display_order").
		Find(&list).
		Error
	return list, err
}

func (i impl) CreateDemoRequest(rec dbmodels.DemoRequest) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "error saving demo request")
	}
	return rec.ID, nil
}

func (i impl) ListDemoRequests() ([]dbmodels.DemoRequest, error) {
	list := []dbmodels.DemoRequest{}
	err := i.db.
		Order("created_at desc").
		Find(&list).
		Error
	return list, err
}

func (i impl) Subscribe(rec dbmodels.NewsletterSubscription) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", &models.DuplicateError{Entity: "subscription", Key: rec.Email}
		}
		return "", errors.Wrap(err, "error saving newsletter subscription")
	}
	return rec.ID, nil
}

func (i impl) IsEmpty() (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.PricingPlan{}).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount == 0, nil
}

func (i impl) SaveContent(content Content) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		for idx := range content.Testimonials {
			if err := tx.Save(&content.Testimonials[idx]).Error; err != nil {
				return errors.Wrap(err, "error saving testimonial")
			}
		}
		for idx := range content.PricingPlans {
			if err := tx.Save(&content.PricingPlans[idx]).Error; err != nil {
				return errors.Wrap(err, "error saving pricing plan")
			}
		}
		for idx := range content.Features {
			if err := tx.Save(&content.Features[idx]).Error; err != nil {
				return errors.Wrap(err, "error saving feature")
			}
		}
		for idx := range content.Integrations {
			if err := tx.Save(&content.Integrations[idx]).Error; err != nil {
				return errors.Wrap(err, "error saving integration")
			}
		}
		for idx := range content.Faqs {
			if err := tx.Save(&content.Faqs[idx]).Error; err != nil {
				return errors.Wrap(err, "error saving faq")
			}
		}
		return nil
	})
}

// NewMemory keeps site content in process when the database is switched off.
func NewMemory() Provider {
	return &memory{
		subscriptions: map[string]struct{}{},
	}
}

type memory struct {
	mu            sync.RWMutex
	content       Content
	demoRequests  []dbmodels.DemoRequest
	subscriptions map[string]struct{}
}

func (m *memory) ListTestimonials() ([]dbmodels.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []dbmodels.Testimonial{}
	for _, rec := range m.content.Testimonials {
		if rec.IsFeatured {
			result = append(result, rec)
		}
	}
	sort.SliceStable(result, func(a, b int) bool { return result[a].DisplayOrder < result[b].DisplayOrder })
	return result, nil
}

func (m *memory) ListPricingPlans() ([]dbmodels.PricingPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []dbmodels.PricingPlan{}
	for _, rec := range m.content.PricingPlans {
		if rec.IsActive {
			result = append(result, rec)
		}
	}
	sort.SliceStable(result, func(a, b int) bool { return result[a].DisplayOrder < result[b].DisplayOrder })
	return result, nil
}

func (m *memory) ListFeatures() ([]dbmodels.Feature, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []dbmodels.Feature{}
	for _, rec := range m.content.Features {
		if rec.IsFeatured {
			result = append(result, rec)
		}
	}
	sort.SliceStable(result, func(a, b int) bool { return result[a].DisplayOrder < result[b].DisplayOrder })
	return result, nil
}

func (m *memory) ListIntegrations() ([]dbmodels.Integration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []dbmodels.Integration{}
	for _, rec := range m.content.Integrations {
		if rec.IsFeatured {
			result = append(result, rec)
		}
	}
	sort.SliceStable(result, func(a, b int) bool { return result[a].DisplayOrder < result[b].DisplayOrder })
	return result, nil
}

func (m *memory) ListFaqs() ([]dbmodels.Faq, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []dbmodels.Faq{}
	for _, rec := range m.content.Faqs {
		if rec.IsActive {
			result = append(result, rec)
		}
	}
	sort.SliceStable(result, func(a, b int) bool { return result[a].DisplayOrder < result[b].DisplayOrder })
	return result, nil
}

func (m *memory) CreateDemoRequest(rec dbmodels.DemoRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	m.demoRequests = append(m.demoRequests, rec)
	return rec.ID, nil
}

func (m *memory) ListDemoRequests() ([]dbmodels.DemoRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]dbmodels.DemoRequest, 0, len(m.demoRequests))
	for idx := len(m.demoRequests) - 1; idx >= 0; idx-- {
		result = append(result, m.demoRequests[idx])
	}
	return result, nil
}

func (m *memory) Subscribe(rec dbmodels.NewsletterSubscription) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(rec.Email)
	if _, ok := m.subscriptions[key]; ok {
		return "", &models.DuplicateError{Entity: "subscription", Key: rec.Email}
	}
	m.subscriptions[key] = struct{}{}
	return uuid.NewString(), nil
}

func (m *memory) IsEmpty() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.content.PricingPlans) == 0, nil
}

func (m *memory) SaveContent(content Content) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content.Testimonials = append(m.content.Testimonials, withIDs(content.Testimonials, func(rec *dbmodels.Testimonial) *dbmodels.BaseModel { return &rec.BaseModel })...)
	m.content.PricingPlans = append(m.content.PricingPlans, withIDs(content.PricingPlans, func(rec *dbmodels.PricingPlan) *dbmodels.BaseModel { return &rec.BaseModel })...)
	m.content.Features = append(m.content.Features, withIDs(content.Features, func(rec *dbmodels.Feature) *dbmodels.BaseModel { return &rec.BaseModel })...)
	m.content.Integrations = append(m.content.Integrations, withIDs(content.Integrations, func(rec *dbmodels.Integration) *dbmodels.BaseModel { return &rec.BaseModel })...)
	m.content.Faqs = append(m.content.Faqs, withIDs(content.Faqs, func(rec *dbmodels.Faq) *dbmodels.BaseModel { return &rec.BaseModel })...)
	return nil
}

func withIDs[T any](list []T, base func(*T) *dbmodels.BaseModel) []T {
	result := make([]T, len(list))
	copy(result, list)
	for idx := range result {
		b := base(&result[idx])
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
	}
	return result
}
