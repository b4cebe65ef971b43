package initializers

import (
	"ats-backend/config"
	"ats-backend/db"
	"ats-backend/fiberlog"
	"ats-backend/lib/analytics"
	"ats-backend/lib/auth"
	"ats-backend/lib/cache"
	"ats-backend/lib/candidate"
	candidatehistoryhandler "ats-backend/lib/candidate-history"
	candidatehistorystore "ats-backend/lib/candidate-history/store"
	candidatequery "ats-backend/lib/candidate-query"
	candidatestore "ats-backend/lib/candidate/store"
	"ats-backend/lib/event"
	csvexport "ats-backend/lib/export/csv"
	xlsexport "ats-backend/lib/export/xls"
	filestorage "ats-backend/lib/file-storage"
	interviewreminder "ats-backend/lib/interview-reminder"
	"ats-backend/lib/marketing"
	marketingstore "ats-backend/lib/marketing/store"
	"ats-backend/lib/smtp"
	initchecker "ats-backend/lib/utils/init-checker"
	"ats-backend/models"
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

type Services struct {
	Candidates candidate.Provider
	Query      candidatequery.Provider
	History    candidatehistoryhandler.Provider
	Analytics  analytics.Provider
	Files      filestorage.Provider
	Marketing  marketing.Provider
	Auth       auth.Provider
	Csv        csvexport.Provider
	Xls        xlsexport.Provider
	Cache      cache.Provider
	Events     event.Publisher
	Mailer     smtp.Provider
}

// Close releases the outbound connections. The database is closed separately.
func (s *Services) Close() {
	if err := s.Cache.Close(); err != nil {
		log.WithError(err).Warn("error closing cache")
	}
	if err := s.Events.Close(); err != nil {
		log.WithError(err).Warn("error closing event publisher")
	}
}

func InitAllServices(ctx context.Context) *Services {
	config.InitConfig()
	LoggerConfig = InitLogger()
	dbEnabled := InitDBConnection()

	services := &Services{
		Files:  InitS3(ctx),
		Mailer: InitSmtp(),
		Cache:  InitCache(),
		Events: InitEvents(),
		Csv:    csvexport.NewHandler(),
		Xls:    xlsexport.NewHandler(),
	}

	candidateStore := candidatestore.NewNoop()
	historyStore := candidatehistorystore.NewMemory()
	marketingStore := marketingstore.NewMemory()
	if dbEnabled {
		candidateStore = candidatestore.NewInstance(db.DB)
		historyStore = candidatehistorystore.NewInstance(db.DB)
		marketingStore = marketingstore.NewInstance(db.DB)
	}

	clock := candidate.SystemClock{}
	services.History = candidatehistoryhandler.NewHandler(historyStore)
	services.Candidates = candidate.NewHandler(
		candidate.WithClock(clock),
		candidate.WithStore(candidateStore),
		candidate.WithHistory(services.History),
		candidate.WithEvents(services.Events),
	)
	if err := services.Candidates.Load(ctx); err != nil {
		panic(err.Error())
	}
	services.Query = candidatequery.NewHandler(services.Candidates, services.Cache, clock)
	services.Analytics = analytics.NewHandler(services.Candidates, services.Cache, services.Xls)
	services.Marketing = marketing.NewHandler(marketingStore)
	services.Auth = auth.NewHandler(config.Conf.Auth.JWTSecret, config.Conf.Auth.TokenTTL, auth.StubUser{
		ID:       config.Conf.Auth.UserID,
		Name:     config.Conf.Auth.UserName,
		Email:    config.Conf.Auth.UserEmail,
		Password: config.Conf.Auth.Password,
	})

	err := initchecker.CheckInit(
		"files", services.Files,
		"mailer", services.Mailer,
		"cache", services.Cache,
		"events", services.Events,
		"candidates", services.Candidates,
		"history", services.History,
	)
	if err != nil {
		panic(err.Error())
	}

	if *config.Conf.App.SeedDemoData {
		if err := candidate.SeedDemoData(ctx, services.Candidates, clock); err != nil {
			log.WithError(err).Error("error seeding demo candidates")
		}
		if err := services.Marketing.SeedDefaultContent(); err != nil {
			log.WithError(err).Error("error seeding marketing content")
		}
	}

	go initWorkers(ctx, services)
	return services
}

// DefaultActor is who acts when authentication is switched off.
func DefaultActor() models.Actor {
	return models.Actor{ID: config.Conf.Auth.UserID, Name: config.Conf.Auth.UserName}
}

func initWorkers(ctx context.Context, services *Services) {
	if !*config.Conf.Reminder.Enabled || !services.Mailer.IsConfigured() {
		return
	}
	loc, err := time.LoadLocation(config.Conf.Reminder.Location)
	if err != nil {
		log.WithError(err).Warnf("unknown reminder time zone %q, using UTC", config.Conf.Reminder.Location)
		loc = time.UTC
	}
	// interview reminder mails
	interviewreminder.StartWorker(ctx, services.Candidates, services.Mailer,
		config.Conf.Reminder.Interval, config.Conf.Reminder.LeadTime, loc)
}
