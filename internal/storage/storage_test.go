package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"ledger-service/internal/domain"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(company string) *domain.Document {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Document{
		ID:        NewDocumentID(),
		CompanyID: company,
		Sheets: domain.SheetCollection{{
			Name:  "0000",
			Rows:  1,
			Cells: []domain.Cell{domain.NewTextCell(0, 0, "REG")},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func exerciseStore(t *testing.T, s DocumentStore) {
	ctx := context.Background()

	_, err := s.Get(ctx, NewDocumentID())
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	_, err = s.GetByCompany(ctx, "acme")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	doc := newDoc("acme")
	require.NoError(t, s.Save(ctx, doc))

	got, err := s.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme", got.CompanyID)
	assert.Equal(t, []string{"0000"}, got.Sheets.Names())

	got.Sheets[0].Name = "mutated"
	again, err := s.GetByCompany(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, again.ID)
	assert.Equal(t, "0000", again.Sheets[0].Name)

	doc.Sheets = append(doc.Sheets, domain.Sheet{Name: "C100", Order: 1})
	require.NoError(t, s.Save(ctx, doc))
	got, err = s.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"0000", "C100"}, got.Sheets.Names())
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreOneDocumentPerCompany(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, newDoc("acme")))
	assert.Error(t, s.Save(ctx, newDoc("acme")))
	assert.Error(t, s.Save(ctx, &domain.Document{CompanyID: "x"}))
}

func TestCachedStore(t *testing.T) {
	mem := NewMemoryStore()
	s, err := NewCachedStore(mem, 8)
	require.NoError(t, err)
	exerciseStore(t, s)

	ctx := context.Background()
	doc := newDoc("cached")
	require.NoError(t, s.Save(ctx, doc))

	// reads are served from the cache even if the backing copy changes
	changed := *doc
	changed.Sheets = nil
	require.NoError(t, mem.Save(ctx, &changed))
	got, err := s.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Len(t, got.Sheets, 1)

	_, err = NewCachedStore(mem, 0)
	assert.Error(t, err)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("DOCUMENT_STORE_PG_DSN")
	if dsn == "" {
		t.Skip("DOCUMENT_STORE_PG_DSN não definido")
	}
	s, err := NewPostgres(context.Background(), dsn)
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestDocumentID(t *testing.T) {
	assert.True(t, ValidDocumentID(NewDocumentID()))
	assert.False(t, ValidDocumentID("not-an-id"))
}

func TestObjectKey(t *testing.T) {
	key, err := ObjectKey("acme", "../../etc/sped.txt")
	require.NoError(t, err)
	assert.Equal(t, "acme/sped.txt", key)

	key, err = ObjectKey("acme", `C:\dados\sped.txt`)
	require.NoError(t, err)
	assert.Equal(t, "acme/sped.txt", key)

	_, err = ObjectKey("", "a.txt")
	assert.Error(t, err)
	_, err = ObjectKey("acme", "")
	assert.Error(t, err)
}

func TestNewS3ArchiveValidatesConfig(t *testing.T) {
	_, err := NewS3Archive(S3Config{})
	assert.Error(t, err)
	_, err = NewS3Archive(S3Config{Endpoint: "localhost:9000", Bucket: "b"})
	assert.Error(t, err)

	a, err := NewS3Archive(S3Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "raw"})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", a.region)

	assert.NoError(t, NopArchive{}.Put(context.Background(), "acme", "a.txt", nil))
}

type flakyBucket struct {
	existsErrs []error
	exists     bool
	made       int
	puts       []string
}

func (b *flakyBucket) BucketExists(context.Context, string) (bool, error) {
	if len(b.existsErrs) > 0 {
		err := b.existsErrs[0]
		b.existsErrs = b.existsErrs[1:]
		return false, err
	}
	return b.exists, nil
}

func (b *flakyBucket) MakeBucket(context.Context, string, minio.MakeBucketOptions) error {
	b.made++
	b.exists = true
	return nil
}

func (b *flakyBucket) PutObject(_ context.Context, _, objectName string, _ io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	b.puts = append(b.puts, objectName)
	return minio.UploadInfo{Key: objectName}, nil
}

func TestS3ArchiveRetriesBucketCheck(t *testing.T) {
	client := &flakyBucket{existsErrs: []error{errors.New("connection reset")}}
	a := &S3Archive{client: client, bucketName: "raw", region: "us-east-1"}
	ctx := context.Background()

	err := a.Put(ctx, "acme", "a.txt", []byte("|0000|"))
	require.Error(t, err)
	assert.Empty(t, client.puts)

	require.NoError(t, a.Put(ctx, "acme", "a.txt", []byte("|0000|")))
	require.NoError(t, a.Put(ctx, "acme", "b.txt", []byte("|0000|")))
	assert.Equal(t, []string{"acme/a.txt", "acme/b.txt"}, client.puts)
	assert.Equal(t, 1, client.made)
}
