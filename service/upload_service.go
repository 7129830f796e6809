package service

import (
	"context"
	"fmt"
	"go-cuts-api/logger"
	"go-cuts-api/model"
	"go-cuts-api/repository"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IS3Client is the slice of the S3 API the upload service uses; tests
// substitute a fake.
type IS3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// UploadService streams profile images to object storage and records the
// resulting public URL on the user row. Storage failures are logged in
// detail but surfaced to the caller only as a failed result.
type UploadService struct {
	s3Client IS3Client
	userRepo repository.IUserRepository
	bucket   string
	region   string
}

// UploadConfig carries the object-storage settings.
type UploadConfig struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// NewUploadService builds an S3-backed upload service from static
// credentials.
func NewUploadService(ctx context.Context, cfg UploadConfig, userRepo repository.IUserRepository) (*UploadService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &UploadService{
		s3Client: s3.NewFromConfig(awsCfg),
		userRepo: userRepo,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
	}, nil
}

// NewUploadServiceWithClient wires an explicit S3 client, used by tests.
func NewUploadServiceWithClient(client IS3Client, userRepo repository.IUserRepository, bucket, region string) *UploadService {
	return &UploadService{s3Client: client, userRepo: userRepo, bucket: bucket, region: region}
}

// UploadProfileImage stores the file under a unique key and updates the
// user's profile image URL. It reports success as a boolean; the underlying
// error never reaches the end user.
func (s *UploadService) UploadProfileImage(ctx context.Context, userID int, file *model.Upload) (bool, error) {
	key := "profile-images/" + uuid.NewString() + filepath.Ext(file.Filename)

	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"key":     key,
	})

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file.Content,
		ContentType: aws.String(file.ContentType),
	})
	if err != nil {
		log.WithError(err).Error("Failed to upload profile image to S3")
		return false, nil
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	if err := s.userRepo.UpdateProfileImage(userID, url); err != nil {
		log.WithError(err).Error("Failed to persist profile image URL")
		return false, nil
	}

	log.Info("Profile image uploaded")
	return true, nil
}
