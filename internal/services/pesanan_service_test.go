package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"testing"
	"time"

	"servis_backend/internal/models"
	"servis_backend/internal/repositories"
	"servis_backend/internal/services/dto"
	"servis_backend/internal/storage"
	"servis_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePesananRepo struct {
	seq   int
	base  time.Time
	items map[string]*models.PesananServis // keyed by kode_transaksi
}

func newFakePesananRepo() *fakePesananRepo {
	return &fakePesananRepo{
		base:  time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC),
		items: make(map[string]*models.PesananServis),
	}
}

func (f *fakePesananRepo) FindByKode(_ *gorm.DB, kode string) (*models.PesananServis, error) {
	p, ok := f.items[kode]
	if !ok {
		return nil, repositories.ErrPesananNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePesananRepo) FindAllLatest(_ *gorm.DB) ([]models.PesananServis, error) {
	all := make([]models.PesananServis, 0, len(f.items))
	for _, p := range f.items {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (f *fakePesananRepo) Upsert(_ *gorm.DB, p *models.PesananServis, _ []string) error {
	if _, ok := f.items[p.KodeTransaksi]; ok {
		// Conflict: the stored row wins, the caller re-reads it.
		return nil
	}
	f.seq++
	p.ID = fmt.Sprintf("pesanan-%d", f.seq)
	p.CreatedAt = f.base.Add(time.Duration(f.seq) * time.Second)
	p.UpdatedAt = p.CreatedAt
	cp := *p
	f.items[p.KodeTransaksi] = &cp
	return nil
}

func (f *fakePesananRepo) Save(_ *gorm.DB, p *models.PesananServis) error {
	cp := *p
	f.items[p.KodeTransaksi] = &cp
	return nil
}

type pesananFixture struct {
	svc   PesananService
	repo  *fakePesananRepo
	store *storage.LocalStorage
}

func newPesananFixture(t *testing.T) *pesananFixture {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/storage",
	})
	assert.NoError(t, err)

	repo := newFakePesananRepo()
	svc := NewPesananService(repo, store, UploadConfig{
		MaxSize:           2048 * 1024,
		AllowedExtensions: []string{"jpg", "jpeg", "png"},
		UploadDir:         "uploads",
	})

	return &pesananFixture{svc: svc, repo: repo, store: store}
}

// fotoHeader builds a real *multipart.FileHeader by round-tripping a form.
func fotoHeader(t *testing.T, field, filename string, size int) *multipart.FileHeader {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fw, err := w.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("x"), size))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File[field][0]
}

func posting(data string, foto map[string]*multipart.FileHeader) *dto.PostingRequest {
	if foto == nil {
		foto = map[string]*multipart.FileHeader{}
	}
	return &dto.PostingRequest{Data: data, Foto: foto}
}

func strptr(s string) *string { return &s }

func TestPostingCreatesOrder(t *testing.T) {
	fx := newPesananFixture(t)

	resp, err := fx.svc.Posting(context.Background(), nil,
		posting(`{"kode_transaksi":"TX1","tanggal":"2026-01-06","biaya":150000,"nama_teknisi":"Budi"}`, nil))
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "posting & photo upload succeeded", resp.Message)

	saved := fx.repo.items["TX1"]
	assert.NotNil(t, saved)
	assert.Equal(t, float64(150000), saved.Biaya)
	assert.Equal(t, "Budi", *saved.NamaTeknisi)
	assert.Equal(t, models.Date("2026-01-06"), *saved.Tanggal)
	assert.Nil(t, saved.NamaPelanggan)
	assert.Nil(t, saved.Foto1)
	assert.Nil(t, saved.Foto2)
	assert.Nil(t, saved.Foto3)
}

func TestPostingUpdatesExistingOrderAndKeepsOmittedFields(t *testing.T) {
	fx := newPesananFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Posting(ctx, nil,
		posting(`{"kode_transaksi":"TX1","biaya":150000,"nama_teknisi":"Budi"}`, nil))
	assert.NoError(t, err)

	_, err = fx.svc.Posting(ctx, nil,
		posting(`{"kode_transaksi":"TX1","biaya":200000}`, nil))
	assert.NoError(t, err)

	// Still exactly one row, updated in place.
	assert.Len(t, fx.repo.items, 1)
	saved := fx.repo.items["TX1"]
	assert.Equal(t, float64(200000), saved.Biaya)
	assert.Equal(t, "Budi", *saved.NamaTeknisi)
}

func TestPostingMalformedJSON(t *testing.T) {
	fx := newPesananFixture(t)

	resp, err := fx.svc.Posting(context.Background(), nil, posting(`{not json`, nil))
	assert.Nil(t, resp)
	assert.Same(t, apperrors.ErrInvalidDataFormat, err)
	assert.Empty(t, fx.repo.items)
}

func TestPostingMissingKodeTransaksi(t *testing.T) {
	fx := newPesananFixture(t)

	resp, err := fx.svc.Posting(context.Background(), nil,
		posting(`{"biaya":150000}`, nil))
	assert.Nil(t, resp)
	assert.Same(t, apperrors.ErrInvalidDataFormat, err)
	assert.Empty(t, fx.repo.items)
}

func TestPostingRejectsBadExtension(t *testing.T) {
	fx := newPesananFixture(t)

	foto := map[string]*multipart.FileHeader{
		"foto_1": fotoHeader(t, "foto_1", "sample.gif", 128),
	}
	resp, err := fx.svc.Posting(context.Background(), nil,
		posting(`{"kode_transaksi":"TX1"}`, foto))
	assert.Nil(t, resp)
	assert.Same(t, apperrors.ErrInvalidFileType, err)
	// Files are checked before the payload, so nothing was created.
	assert.Empty(t, fx.repo.items)
}

func TestPostingRejectsOversizedFile(t *testing.T) {
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/storage"})
	assert.NoError(t, err)
	repo := newFakePesananRepo()
	svc := NewPesananService(repo, store, UploadConfig{
		MaxSize:           1024,
		AllowedExtensions: []string{"jpg", "jpeg", "png"},
		UploadDir:         "uploads",
	})

	foto := map[string]*multipart.FileHeader{
		"foto_1": fotoHeader(t, "foto_1", "big.jpg", 2048),
	}
	resp, err := svc.Posting(context.Background(), nil,
		posting(`{"kode_transaksi":"TX1"}`, foto))
	assert.Nil(t, resp)
	assert.Same(t, apperrors.ErrFileTooLarge, err)
	assert.Empty(t, repo.items)
}

func TestPostingStoresFoto(t *testing.T) {
	fx := newPesananFixture(t)
	ctx := context.Background()

	foto := map[string]*multipart.FileHeader{
		"foto_1": fotoHeader(t, "foto_1", "sample.JPG", 128),
	}
	resp, err := fx.svc.Posting(ctx, nil, posting(`{"kode_transaksi":"TX1"}`, foto))
	assert.NoError(t, err)

	saved := fx.repo.items["TX1"]
	assert.NotNil(t, saved.Foto1)
	assert.True(t, strings.HasPrefix(*saved.Foto1, "uploads/TX1_foto_1_"), *saved.Foto1)
	assert.True(t, strings.HasSuffix(*saved.Foto1, ".jpg"), *saved.Foto1)
	assert.Nil(t, saved.Foto2)
	assert.Nil(t, saved.Foto3)

	exists, err := fx.store.Exists(ctx, *saved.Foto1)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, resp.Data.Foto1, saved.Foto1)
}

func TestPostingReplacesSlotAndDeletesOldFile(t *testing.T) {
	fx := newPesananFixture(t)
	ctx := context.Background()

	fx.repo.items["TX9"] = &models.PesananServis{
		BaseModel:     models.BaseModel{ID: "pesanan-9", CreatedAt: fx.repo.base},
		KodeTransaksi: "TX9",
		Foto1:         strptr("uploads/old.jpg"),
		Foto2:         strptr("uploads/keep.jpg"),
	}
	assert.NoError(t, fx.store.Save(ctx, "uploads/old.jpg", strings.NewReader("old"), "image/jpeg"))
	assert.NoError(t, fx.store.Save(ctx, "uploads/keep.jpg", strings.NewReader("keep"), "image/jpeg"))

	foto := map[string]*multipart.FileHeader{
		"foto_1": fotoHeader(t, "foto_1", "new.png", 128),
	}
	_, err := fx.svc.Posting(ctx, nil, posting(`{"kode_transaksi":"TX9"}`, foto))
	assert.NoError(t, err)

	saved := fx.repo.items["TX9"]
	assert.NotEqual(t, "uploads/old.jpg", *saved.Foto1)
	assert.True(t, strings.HasPrefix(*saved.Foto1, "uploads/TX9_foto_1_"), *saved.Foto1)

	// Old file is gone, the untouched slot and its file survive.
	oldExists, err := fx.store.Exists(ctx, "uploads/old.jpg")
	assert.NoError(t, err)
	assert.False(t, oldExists)
	assert.Equal(t, "uploads/keep.jpg", *saved.Foto2)
	keepExists, err := fx.store.Exists(ctx, "uploads/keep.jpg")
	assert.NoError(t, err)
	assert.True(t, keepExists)
}

func TestPostingMissingOldFileIsNotAnError(t *testing.T) {
	fx := newPesananFixture(t)
	ctx := context.Background()

	fx.repo.items["TX9"] = &models.PesananServis{
		BaseModel:     models.BaseModel{ID: "pesanan-9", CreatedAt: fx.repo.base},
		KodeTransaksi: "TX9",
		Foto1:         strptr("uploads/vanished.jpg"),
	}

	foto := map[string]*multipart.FileHeader{
		"foto_1": fotoHeader(t, "foto_1", "new.jpg", 128),
	}
	_, err := fx.svc.Posting(ctx, nil, posting(`{"kode_transaksi":"TX9"}`, foto))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(*fx.repo.items["TX9"].Foto1, "uploads/TX9_foto_1_"))
}

func TestListNewestFirstWithFotoURLs(t *testing.T) {
	fx := newPesananFixture(t)

	fx.repo.items["TX1"] = &models.PesananServis{
		BaseModel:     models.BaseModel{ID: "pesanan-1", CreatedAt: fx.repo.base},
		KodeTransaksi: "TX1",
	}
	fx.repo.items["TX2"] = &models.PesananServis{
		BaseModel:     models.BaseModel{ID: "pesanan-2", CreatedAt: fx.repo.base.Add(time.Minute)},
		KodeTransaksi: "TX2",
		Foto1:         strptr("uploads/TX2_foto_1_1.jpg"),
	}

	resp, err := fx.svc.List(context.Background(), nil)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Data, 2)

	// Newest first.
	assert.Equal(t, "TX2", resp.Data[0].KodeTransaksi)
	assert.Equal(t, "TX1", resp.Data[1].KodeTransaksi)

	assert.Equal(t, "/storage/uploads/TX2_foto_1_1.jpg", *resp.Data[0].Foto1URL)
	assert.Nil(t, resp.Data[0].Foto2URL)
	assert.Nil(t, resp.Data[0].Foto3URL)

	// No photos at all: every URL is null.
	assert.Nil(t, resp.Data[1].Foto1URL)
	assert.Nil(t, resp.Data[1].Foto2URL)
	assert.Nil(t, resp.Data[1].Foto3URL)
}
