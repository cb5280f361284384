package document

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/document"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentRepository struct {
	nextID int64
	items  map[int64]document.Document
}

func newFakeDocumentRepository() *fakeDocumentRepository {
	return &fakeDocumentRepository{nextID: 1, items: map[int64]document.Document{}}
}

func (f *fakeDocumentRepository) Create(ctx context.Context, d document.Document) (document.Document, error) {
	d.ID = f.nextID
	f.nextID++
	d.SubmittedAt = time.Now()
	d.UpdatedAt = d.SubmittedAt
	f.items[d.ID] = d
	return d, nil
}

func (f *fakeDocumentRepository) GetByID(ctx context.Context, id int64) (document.Document, error) {
	if d, ok := f.items[id]; ok {
		return d, nil
	}
	return document.Document{}, document.ErrDocumentNotFound
}

func (f *fakeDocumentRepository) Update(ctx context.Context, d document.Document) error {
	if _, ok := f.items[d.ID]; !ok {
		return document.ErrDocumentNotFound
	}
	f.items[d.ID] = d
	return nil
}

func (f *fakeDocumentRepository) List(ctx context.Context, filter document.ListFilter) ([]document.Document, error) {
	documents := []document.Document{}
	for _, d := range f.items {
		if filter.ContractID != nil && d.ContractID != *filter.ContractID {
			continue
		}
		documents = append(documents, d)
	}
	return documents, nil
}

type fakeContractRepository struct{}

func (fakeContractRepository) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	return c, nil
}

func (fakeContractRepository) GetByID(ctx context.Context, id int64) (contract.Contract, error) {
	if id == 10 {
		return contract.Contract{ID: 10, StudentID: 1, ProfessorID: 2, Active: true}, nil
	}
	return contract.Contract{}, contract.ErrContractNotFound
}

func (fakeContractRepository) GetActiveByStudent(ctx context.Context, studentID int64) (contract.Contract, error) {
	return contract.Contract{}, contract.ErrNoActiveContract
}

func (fakeContractRepository) List(ctx context.Context, filter contract.ListFilter) ([]contract.Contract, error) {
	return nil, nil
}

func (fakeContractRepository) Update(ctx context.Context, c contract.Contract) error {
	return nil
}

type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

func uploadRequest(content string) document.UploadDocumentRequest {
	return document.UploadDocumentRequest{
		ContractID: 10,
		Name:       "Termo de Compromisso",
		File:       memoryFile{bytes.NewReader([]byte(content))},
		FileHeader: &multipart.FileHeader{
			Filename: "termo.pdf",
			Size:     int64(len(content)),
			Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
		},
	}
}

func newTestDocumentService(t *testing.T) document.DocumentService {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewDocumentService(newFakeDocumentRepository(), fakeContractRepository{}, files)
}

func TestUploadDocument(t *testing.T) {
	ctx := context.Background()
	svc := newTestDocumentService(t)

	resp, err := svc.Upload(ctx, uploadRequest("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, string(document.StatusPending), resp.Status)
	assert.Contains(t, resp.FileURL, "documentos/10/")
	assert.Contains(t, resp.FileURL, ".pdf")

	// The stored file round-trips.
	stored, reader, err := svc.Download(ctx, resp.ID)
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, resp.ID, stored.ID)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(reader)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", buf.String())
}

func TestUploadDocument_UnknownContract(t *testing.T) {
	svc := newTestDocumentService(t)

	req := uploadRequest("data")
	req.ContractID = 42
	_, err := svc.Upload(context.Background(), req)
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

func TestReviewDocument(t *testing.T) {
	ctx := context.Background()
	svc := newTestDocumentService(t)

	uploaded, err := svc.Upload(ctx, uploadRequest("data"))
	require.NoError(t, err)

	comment := "assinatura ilegivel"
	reviewed, err := svc.Review(ctx, 2, document.ReviewDocumentRequest{ID: uploaded.ID, Status: string(document.StatusRejected), Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, string(document.StatusRejected), reviewed.Status)

	_, err = svc.Review(ctx, 2, document.ReviewDocumentRequest{ID: uploaded.ID, Status: string(document.StatusApproved)})
	assert.ErrorIs(t, err, document.ErrAlreadyReviewed)
}
