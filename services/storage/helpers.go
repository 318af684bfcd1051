package storage

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/mailtriage/mailtriage/interfaces"
	internal_config "github.com/mailtriage/mailtriage/internal/config"
	"github.com/mailtriage/mailtriage/services/storage/aws_client"
)

// NewS3StorageService creates a StorageService backed by AWS S3
func NewS3StorageService(awsRegion, accessKeyID, accessKeySecret, bucketName string) interfaces.StorageService {
	s3Client := aws_client.NewS3Client(&aws.Config{
		Region:      aws.String(awsRegion),
		Credentials: credentials.NewStaticCredentials(accessKeyID, accessKeySecret, ""),
	})

	return NewObjectStorageService(s3Client, bucketName)
}

// NewAttachmentStorage selects the attachment storage backend from config.
func NewAttachmentStorage(cfg *internal_config.StorageConfig) (interfaces.StorageService, error) {
	if cfg.Backend == "s3" {
		return NewS3StorageService(cfg.AWSRegion, cfg.AccessKeyID, cfg.AccessKeySecret, cfg.Bucket), nil
	}
	return NewLocalStorageService(cfg.LocalDir)
}
