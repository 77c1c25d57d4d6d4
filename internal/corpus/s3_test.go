package corpus

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"shuvoedward/Bible_lookup/internal/bible"
)

type mockS3 struct {
	objects map[string]string
	getErr  error
}

func (m *mockS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	body, ok := m.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(body)))}, nil
}

func (m *mockS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	body := m.objects[aws.ToString(in.Key)]
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: aws.Int64(int64(len(body))),
	}, nil
}

func TestS3Source(t *testing.T) {
	client := &mockS3{objects: map[string]string{"translations/mine.txt": sample}}
	src := S3Source{Client: client, Bucket: "bible", Key: "translations/mine.txt", Label: "Mine"}

	got, err := src.Text(context.Background())
	if err != nil {
		t.Fatalf("Text() returned an error: %v", err)
	}
	if got != sample {
		t.Errorf("unexpected text %q", got)
	}
	if src.String() != "Custom Translation: Mine" {
		t.Errorf("unexpected display name %q", src.String())
	}
}

func TestS3SourceMissingObject(t *testing.T) {
	src := S3Source{Client: &mockS3{}, Bucket: "bible", Key: "missing.txt", Label: "Mine"}

	_, err := src.Text(context.Background())
	if !errors.Is(err, bible.ErrInvalidCustomTranslationFile) {
		t.Errorf("expected ErrInvalidCustomTranslationFile, but got %v", err)
	}
}

func TestS3SourceDownloadFailure(t *testing.T) {
	client := &mockS3{
		objects: map[string]string{"mine.txt": sample},
		getErr:  errors.New("connection reset"),
	}
	src := S3Source{Client: client, Bucket: "bible", Key: "mine.txt", Label: "Mine"}

	_, err := src.Text(context.Background())
	if !errors.Is(err, bible.ErrIO) {
		t.Errorf("expected ErrIO, but got %v", err)
	}
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := ParseS3URI("s3://bible/translations/kjv.txt.zst")
	if err != nil {
		t.Fatalf("ParseS3URI() returned an error: %v", err)
	}
	if bucket != "bible" || key != "translations/kjv.txt.zst" {
		t.Errorf("got bucket %q key %q", bucket, key)
	}

	for _, uri := range []string{"bible/kjv.txt", "s3://bible", "s3:///kjv.txt", "s3://bible/"} {
		if _, _, err := ParseS3URI(uri); err == nil {
			t.Errorf("ParseS3URI(%q): expected an error", uri)
		}
	}
}
