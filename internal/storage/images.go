package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	ErrInvalidImage = errors.New("invalid image payload")
	ErrUploadFailed = errors.New("image upload failed")
)

const mealImagePrefix = "meals"

type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	PublicURL string
}

// S3ImageStore uploads meal photos to an S3-compatible bucket.
type S3ImageStore struct {
	client    s3Client
	bucket    string
	publicURL string
}

func NewS3ImageStore(cfg S3Config) *S3ImageStore {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return newS3ImageStore(s3.New(opts), cfg)
}

func newS3ImageStore(client s3Client, cfg S3Config) *S3ImageStore {
	publicURL := strings.TrimRight(strings.TrimSpace(cfg.PublicURL), "/")
	if publicURL == "" {
		publicURL = strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/") + "/" + cfg.Bucket
	}
	return &S3ImageStore{client: client, bucket: cfg.Bucket, publicURL: publicURL}
}

func (store *S3ImageStore) SaveMealImage(ctx context.Context, userID string, mealID string, imageBase64 string) (string, error) {
	image, err := DecodeImage(imageBase64)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s/%s%s", mealImagePrefix, userID, mealID, image.Extension)
	_, err = store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(store.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image.Data),
		ContentType: aws.String(image.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return store.publicURL + "/" + key, nil
}

// InlineImageStore keeps the payload on the meal row.
type InlineImageStore struct{}

func (InlineImageStore) SaveMealImage(context.Context, string, string, string) (string, error) {
	return "", nil
}

type Image struct {
	Data        []byte
	ContentType string
	Extension   string
}

// DecodeImage accepts raw base64 or a data URI.
func DecodeImage(payload string) (Image, error) {
	payload = strings.TrimSpace(payload)
	declaredType := ""
	if strings.HasPrefix(payload, "data:") {
		header, body, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return Image{}, ErrInvalidImage
		}
		declaredType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		payload = body
	}
	if payload == "" {
		return Image{}, ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		contentType = declaredType
	}
	extension, ok := imageExtensions[contentType]
	if !ok {
		return Image{}, fmt.Errorf("%w: unsupported content type %q", ErrInvalidImage, contentType)
	}
	return Image{Data: data, ContentType: contentType, Extension: extension}, nil
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/heic": ".heic",
}
