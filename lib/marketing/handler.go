package marketing

import (
	marketingstore "ats-backend/lib/marketing/store"
	marketingapimodels "ats-backend/models/api/marketing"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Testimonials() ([]marketingapimodels.TestimonialView, error)
	PricingPlans() ([]marketingapimodels.PricingPlanView, error)
	Features() ([]marketingapimodels.FeatureView, error)
	Integrations() ([]marketingapimodels.IntegrationView, error)
	Faqs() ([]marketingapimodels.FaqView, error)
	RequestDemo(data marketingapimodels.DemoRequestData) (id string, err error)
	DemoRequests() ([]marketingapimodels.DemoRequestView, error)
	Subscribe(data marketingapimodels.NewsletterData) error
	SeedDefaultContent() error
}

func NewHandler(store marketingstore.Provider) Provider {
	return &impl{
		store: store,
	}
}

type impl struct {
	store marketingstore.Provider
}

func (i impl) Testimonials() ([]marketingapimodels.TestimonialView, error) {
	list, err := i.store.ListTestimonials()
	if err != nil {
		return nil, i.loadError(err, "testimonials")
	}
	result := make([]marketingapimodels.TestimonialView, 0, len(list))
	for _, rec := range list {
		result = append(result, marketingapimodels.TestimonialConvert(rec))
	}
	return result, nil
}

func (i impl) PricingPlans() ([]marketingapimodels.PricingPlanView, error) {
	list, err := i.store.ListPricingPlans()
	if err != nil {
		return nil, i.loadError(err, "pricing plans")
	}
	result := make([]marketingapimodels.PricingPlanView, 0, len(list))
	for _, rec := range list {
		result = append(result, marketingapimodels.PricingPlanConvert(rec))
	}
	return result, nil
}

func (i impl) Features() ([]marketingapimodels.FeatureView, error) {
	list, err := i.store.ListFeatures()
	if err != nil {
		return nil, i.loadError(err, "features")
	}
	result := make([]marketingapimodels.FeatureView, 0, len(list))
	for _, rec := range list {
		result = append(result, marketingapimodels.FeatureConvert(rec))
	}
	return result, nil
}

func (i impl) Integrations() ([]marketingapimodels.IntegrationView, error) {
	list, err := i.store.ListIntegrations()
	if err != nil {
		return nil, i.loadError(err, "integrations")
	}
	result := make([]marketingapimodels.IntegrationView, 0, len(list))
	for _, rec := range list {
		result = append(result, marketingapimodels.IntegrationConvert(rec))
	}
	return result, nil
}

func (i impl) Faqs() ([]marketingapimodels.FaqView, error) {
	list, err := i.store.ListFaqs()
	if err != nil {
		return nil, i.loadError(err, "faqs")
	}
	result := make([]marketingapimodels.FaqView, 0, len(list))
	for _, rec := range list {
		result = append(result, marketingapimodels.FaqConvert(rec))
	}
	return result, nil
}

func (i impl) RequestDemo(data marketingapimodels.DemoRequestData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.CreateDemoRequest(data.ToModel())
	if err != nil {
		log.WithError(err).Error("error saving demo request")
		return "", errors.New("error saving demo request")
	}
	log.WithField("company", data.Company).Info("demo requested")
	return id, nil
}

func (i impl) DemoRequests() ([]marketingapimodels.DemoRequestView, error) {
	list, err := i.store.ListDemoRequests()
	if err != nil {
		return nil, i.loadError(err, "demo requests")
	}
	result := make([]marketingapimodels.DemoRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, marketingapimodels.DemoRequestConvert(rec))
	}
	return result, nil
}

func (i impl) Subscribe(data marketingapimodels.NewsletterData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	_, err := i.store.Subscribe(dbmodels.NewsletterSubscription{
		Email:  data.GetEmail(),
		Status: marketingapimodels.SubscriptionStatusActive,
	})
	return err
}

// SeedDefaultContent publishes the stock site content once, on an empty store.
func (i impl) SeedDefaultContent() error {
	empty, err := i.store.IsEmpty()
	if err != nil {
		return errors.Wrap(err, "error checking marketing content")
	}
	if !empty {
		return nil
	}
	if err = i.store.SaveContent(defaultContent()); err != nil {
		return errors.Wrap(err, "error seeding marketing content")
	}
	log.Info("marketing content seeded")
	return nil
}

func (i impl) loadError(err error, what string) error {
	log.WithError(err).Errorf("error loading %s", what)
	return errors.Errorf("error loading %s", what)
}
