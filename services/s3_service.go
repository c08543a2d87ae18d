package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client the service uses for object moves.
// Tests substitute an in-memory implementation.
type S3API interface {
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Service issues presigned upload/read URLs and moves objects between the
// raw and processed buckets. Clients upload directly to S3; video bytes never
// pass through this server.
type S3Service struct {
	Client          S3API
	Presigner       *s3.PresignClient
	RawBucket       string
	ProcessedBucket string
}

// InitializeS3Client initializes the S3 client
func InitializeS3Client() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg)
}

// NewS3Service wires the presigner around an S3 client.
func NewS3Service(client *s3.Client, rawBucket, processedBucket string) *S3Service {
	return &S3Service{
		Client:          client,
		Presigner:       s3.NewPresignClient(client),
		RawBucket:       rawBucket,
		ProcessedBucket: processedBucket,
	}
}

// GenerateUploadURL generates a presigned URL for uploading a file
func (s *S3Service) GenerateUploadURL(ctx context.Context, bucket, key, contentType string) (string, error) {
	params := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}
	presignedURL, err := s.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload for %s/%s: %w", bucket, key, err)
	}
	return presignedURL.URL, nil
}

// GenerateReadURL generates a presigned URL for reading a file
func (s *S3Service) GenerateReadURL(ctx context.Context, bucket, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	presignedURL, err := s.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to presign read for %s/%s: %w", bucket, key, err)
	}
	return presignedURL.URL, nil
}

// CopyObject copies an object between buckets.
func (s *S3Service) CopyObject(ctx context.Context, sourceBucket, sourceKey, destBucket, destKey string) error {
	_, err := s.Client.CopyObject(ctx, &s3.CopyObjectInput{
		CopySource: aws.String(sourceBucket + "/" + url.PathEscape(sourceKey)),
		Bucket:     aws.String(destBucket),
		Key:        aws.String(destKey),
	})
	if err != nil {
		return fmt.Errorf("failed to copy %s/%s to %s/%s: %w", sourceBucket, sourceKey, destBucket, destKey, err)
	}
	return nil
}

// DeleteObject removes an object.
func (s *S3Service) DeleteObject(ctx context.Context, bucket, key string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// PublicURL builds the public playback URL for a processed object.
func PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, url.PathEscape(key))
}
