package initializers

import (
	"ats-backend/config"
	filestorage "ats-backend/lib/file-storage"
	s3client "ats-backend/s3"
	"context"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) filestorage.Provider {
	if !*config.Conf.S3.Enabled {
		log.Warn("S3 disabled, uploaded documents are kept in memory")
		return filestorage.NewMemory()
	}
	minioClient, err := s3client.NewClient(ctx, config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, config.Conf.S3.BucketName, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("error initializing S3 client, uploaded documents are kept in memory")
		return filestorage.NewMemory()
	}
	log.Info("S3 client initialized")
	return filestorage.NewHandler(minioClient, config.Conf.S3.BucketName)
}
