package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/lockify/internal/common"
)

// S3Config points at an S3-compatible bucket (AWS or MinIO).
type S3Config struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
	Key          string
}

// s3API is the part of *s3.Client the snapshotter needs.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Snapshotter keeps the snapshot as a single JSON object. PutObject
// replaces the object whole, so readers never see a partial snapshot.
type S3Snapshotter struct {
	client s3API
	bucket string
	key    string
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

func NewS3Snapshotter(ctx context.Context, c S3Config) (*S3Snapshotter, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.RootUser, c.RootPassword, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Snapshotter{client: client, bucket: c.Bucket, key: c.Key}, nil
}

func (s *S3Snapshotter) Load(ctx context.Context) (*Snapshot, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("%w: get s3://%s/%s: %v", common.ErrorPersistence, s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read s3://%s/%s: %v", common.ErrorPersistence, s.bucket, s.key, err)
	}

	snap, err := UnmarshalSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse s3://%s/%s: %v", common.ErrorPersistence, s.bucket, s.key, err)
	}
	return snap, nil
}

func (s *S3Snapshotter) Save(ctx context.Context, snap *Snapshot) error {
	data, err := MarshalSnapshot(snap)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", common.ErrorPersistence, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: put s3://%s/%s: %v", common.ErrorPersistence, s.bucket, s.key, err)
	}
	return nil
}
