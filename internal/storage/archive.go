package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Archive keeps a copy of every raw uploaded file, per company.
type Archive interface {
	Put(ctx context.Context, companyID, name string, content []byte) error
}

// NopArchive discards uploads.
type NopArchive struct{}

func (NopArchive) Put(context.Context, string, string, []byte) error { return nil }

// S3Config locates the bucket raw uploads are written to.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// bucketClient is the part of the minio client the archive uses.
type bucketClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// S3Archive stores raw uploads in an S3-compatible bucket under
// <company_id>/<file name>.
type S3Archive struct {
	client     bucketClient
	bucketName string
	region     string

	mu    sync.Mutex
	ready bool
}

// NewS3Archive validates cfg and creates the client. The bucket is created
// lazily on the first upload.
func NewS3Archive(cfg S3Config) (*S3Archive, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint S3 obrigatório")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("credenciais S3 obrigatórias")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("bucket S3 obrigatório")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao iniciar cliente S3: %w", err)
	}
	return &S3Archive{client: client, bucketName: bucket, region: region}, nil
}

// ensureBucket checks (and creates) the bucket until it succeeds once.
// Failed attempts are retried on the next upload.
func (a *S3Archive) ensureBucket(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ready {
		return nil
	}
	exists, err := a.client.BucketExists(ctx, a.bucketName)
	if err != nil {
		return err
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucketName, minio.MakeBucketOptions{Region: a.region}); err != nil {
			return err
		}
	}
	a.ready = true
	return nil
}

func (a *S3Archive) Put(ctx context.Context, companyID, name string, content []byte) error {
	key, err := ObjectKey(companyID, name)
	if err != nil {
		return err
	}
	if err := a.ensureBucket(ctx); err != nil {
		return fmt.Errorf("falha ao preparar bucket: %w", err)
	}
	_, err = a.client.PutObject(ctx, a.bucketName, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return fmt.Errorf("falha ao arquivar %s: %w", key, err)
	}
	return nil
}

// ObjectKey builds the archive key of an uploaded file. Directory parts of
// name are dropped.
func ObjectKey(companyID, name string) (string, error) {
	companyID = strings.Trim(strings.TrimSpace(companyID), "/")
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if companyID == "" {
		return "", fmt.Errorf("company_id obrigatório")
	}
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("nome de arquivo obrigatório")
	}
	return companyID + "/" + name, nil
}
