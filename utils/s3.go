package utils

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

// InitS3 sets up the S3 client when a bucket is configured. Without
// S3_BUCKET the app stores uploads on local disk instead.
func InitS3() {
	if os.Getenv("S3_BUCKET") == "" {
		return
	}

	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

func S3Enabled() bool {
	return s3Client != nil && os.Getenv("S3_BUCKET") != ""
}

// UploadImageToS3 stores raw image bytes under the given key and returns
// the public object URL.
func UploadImageToS3(ctx context.Context, data []byte, key, contentType string) (string, error) {
	bucket := os.Getenv("S3_BUCKET")
	if s3Client == nil || bucket == "" {
		return "", fmt.Errorf("s3 not configured")
	}

	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to s3: %w", err)
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key), nil
}
