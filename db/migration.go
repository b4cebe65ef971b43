package db

import (
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	tables := []struct {
		name  string
		model interface{}
	}{
		{"Candidate", &dbmodels.Candidate{}},
		{"CandidateNote", &dbmodels.CandidateNote{}},
		{"CandidateDocument", &dbmodels.CandidateDocument{}},
		{"Interview", &dbmodels.Interview{}},
		{"CandidateHistory", &dbmodels.CandidateHistory{}},
		{"DemoRequest", &dbmodels.DemoRequest{}},
		{"NewsletterSubscription", &dbmodels.NewsletterSubscription{}},
		{"Testimonial", &dbmodels.Testimonial{}},
		{"PricingPlan", &dbmodels.PricingPlan{}},
		{"Feature", &dbmodels.Feature{}},
		{"Faq", &dbmodels.Faq{}},
		{"Integration", &dbmodels.Integration{}},
	}
	for _, table := range tables {
		if err := DB.AutoMigrate(table.model); err != nil {
			return errors.Wrapf(err, "error creating %s table", table.name)
		}
	}
	log.Info("migrations applied")
	return nil
}
