package initializers

import (
	"ats-backend/config"
	"ats-backend/db"

	log "github.com/sirupsen/logrus"
)

// InitDBConnection reports whether the stores should be backed by postgres.
func InitDBConnection() bool {
	if !*config.Conf.Database.Enabled {
		log.Warn("database disabled, data lives in memory only")
		return false
	}
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
	return true
}
