package corpus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"shuvoedward/Bible_lookup/internal/bible"
)

// S3API is the subset of *s3.Client used to fetch translations.
type S3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3Client builds a client from the default AWS credential chain.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// S3Source is a custom translation stored as an S3 object. Keys ending in
// .zst or .xz are decompressed after download.
type S3Source struct {
	Client S3API
	Bucket string
	Key    string
	Label  string
}

// ParseS3URI splits "s3://bucket/key" into its bucket and key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("%q is not an s3:// URI", uri)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%q must name a bucket and a key", uri)
	}
	return bucket, key, nil
}

func (s S3Source) String() string {
	return "Custom Translation: " + s.Label
}

func (s S3Source) Text(ctx context.Context) (string, error) {
	_, err := s.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		var notFound *types.NotFound
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
			return "", fmt.Errorf("%w: s3://%s/%s", bible.ErrInvalidCustomTranslationFile, s.Bucket, s.Key)
		}
		return "", bible.IOError(err)
	}

	buf := manager.NewWriteAtBuffer([]byte{})
	downloader := manager.NewDownloader(s.Client)
	_, err = downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return "", bible.IOError(fmt.Errorf("failed to download from S3: %w", err))
	}

	return decodeText(s.Key, buf.Bytes())
}
