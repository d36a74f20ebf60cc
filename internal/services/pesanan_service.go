package services

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"servis_backend/internal/models"
	"servis_backend/internal/repositories"
	"servis_backend/internal/services/dto"
	"servis_backend/internal/storage"
	"servis_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PesananService interface {
	// List returns every order newest-first, with derived photo URLs.
	List(ctx context.Context, db *gorm.DB) (*dto.PesananListResponse, error)
	// Posting upserts an order by kode_transaksi and stores any uploaded
	// photos into their slots.
	Posting(ctx context.Context, db *gorm.DB, req *dto.PostingRequest) (*dto.PostingResponse, error)
}

// UploadConfig constrains photo uploads.
type UploadConfig struct {
	MaxSize           int64    // bytes
	AllowedExtensions []string // without the leading dot
	UploadDir         string   // relative directory inside storage
}

type PesananServiceImpl struct {
	pesananRepo repositories.PesananRepository
	storage     storage.Storage
	upload      UploadConfig
}

func NewPesananService(pesananRepo repositories.PesananRepository, store storage.Storage, upload UploadConfig) PesananService {
	if upload.UploadDir == "" {
		upload.UploadDir = "uploads"
	}
	return &PesananServiceImpl{
		pesananRepo: pesananRepo,
		storage:     store,
		upload:      upload,
	}
}

func (s *PesananServiceImpl) List(ctx context.Context, db *gorm.DB) (*dto.PesananListResponse, error) {
	items, err := s.pesananRepo.FindAllLatest(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	data := make([]dto.PesananResponse, 0, len(items))
	for i := range items {
		data = append(data, dto.PesananResponse{
			PesananServis: items[i],
			Foto1URL:      s.fotoURL(ctx, items[i].Foto1),
			Foto2URL:      s.fotoURL(ctx, items[i].Foto2),
			Foto3URL:      s.fotoURL(ctx, items[i].Foto3),
		})
	}

	return &dto.PesananListResponse{
		Success: true,
		Total:   len(data),
		Data:    data,
	}, nil
}

func (s *PesananServiceImpl) Posting(ctx context.Context, db *gorm.DB, req *dto.PostingRequest) (*dto.PostingResponse, error) {
	// Files are validated before the payload is even decoded, so a bad
	// upload never mutates anything.
	for _, slot := range dto.FotoSlots {
		if fh := req.Foto[slot]; fh != nil {
			if err := s.validateFoto(fh); err != nil {
				return nil, err
			}
		}
	}

	var data dto.PostingData
	if err := json.Unmarshal([]byte(req.Data), &data); err != nil {
		return nil, apperrors.ErrInvalidDataFormat
	}
	if data.KodeTransaksi == "" {
		return nil, apperrors.ErrInvalidDataFormat
	}

	pesanan, err := s.findOrCreate(db, &data)
	if err != nil {
		return nil, err
	}

	for _, slot := range dto.FotoSlots {
		fh := req.Foto[slot]
		if fh == nil {
			continue
		}
		if err := s.replaceFoto(ctx, pesanan, slot, fh); err != nil {
			return nil, err
		}
	}

	// One save covers payload fields and every slot change.
	if err := s.pesananRepo.Save(db, pesanan); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PostingResponse{
		Success: true,
		Message: "posting & photo upload succeeded",
		Data:    pesanan,
	}, nil
}

// findOrCreate resolves the target order by kode_transaksi. Payload fields
// are applied when present; on create missing fields keep their defaults,
// on update they keep their prior values.
func (s *PesananServiceImpl) findOrCreate(db *gorm.DB, data *dto.PostingData) (*models.PesananServis, error) {
	pesanan, err := s.pesananRepo.FindByKode(db, data.KodeTransaksi)
	if err != nil && !apperrors.Is(err, repositories.ErrPesananNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if pesanan != nil {
		applyPostingData(pesanan, data)
		return pesanan, nil
	}

	pesanan = &models.PesananServis{KodeTransaksi: data.KodeTransaksi}
	cols := applyPostingData(pesanan, data)

	// ON CONFLICT on the unique kode: a concurrent first post for the same
	// kode degrades into an update instead of a duplicate row.
	if err := s.pesananRepo.Upsert(db, pesanan, cols); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Re-read: on conflict the stored row (its id, photo slots) is the
	// authoritative one.
	pesanan, err = s.pesananRepo.FindByKode(db, data.KodeTransaksi)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pesanan, nil
}

// applyPostingData copies the supplied payload fields onto the record and
// returns the affected column names.
func applyPostingData(p *models.PesananServis, d *dto.PostingData) []string {
	var cols []string
	if d.Tanggal != nil {
		tanggal := models.Date(*d.Tanggal)
		p.Tanggal = &tanggal
		cols = append(cols, "tanggal")
	}
	if d.Biaya != nil {
		p.Biaya = *d.Biaya
		cols = append(cols, "biaya")
	}
	if d.NamaTeknisi != nil {
		p.NamaTeknisi = d.NamaTeknisi
		cols = append(cols, "nama_teknisi")
	}
	if d.NamaPelanggan != nil {
		p.NamaPelanggan = d.NamaPelanggan
		cols = append(cols, "nama_pelanggan")
	}
	if d.NomorTelp != nil {
		p.NomorTelp = d.NomorTelp
		cols = append(cols, "nomor_telp")
	}
	return cols
}

// replaceFoto deletes the slot's previously stored file (a file already
// missing is skipped, not an error), stores the new one under a
// deterministic name and records the relative path in the slot.
func (s *PesananServiceImpl) replaceFoto(ctx context.Context, pesanan *models.PesananServis, slot string, fh *multipart.FileHeader) error {
	if old := slotValue(pesanan, slot); old != nil {
		exists, err := s.storage.Exists(ctx, *old)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if exists {
			if err := s.storage.Delete(ctx, *old); err != nil {
				return apperrors.InternalError(err)
			}
		}
	}

	ext := fileExtension(fh.Filename)
	filename := fmt.Sprintf("%s_%s_%d.%s", pesanan.KodeTransaksi, slot, time.Now().Unix(), ext)
	storagePath := path.Join(s.upload.UploadDir, filename)

	file, err := fh.Open()
	if err != nil {
		return apperrors.InternalError(err)
	}
	defer file.Close()

	if err := s.storage.Save(ctx, storagePath, file, fh.Header.Get("Content-Type")); err != nil {
		return apperrors.InternalError(err)
	}

	setSlotValue(pesanan, slot, storagePath)
	return nil
}

func (s *PesananServiceImpl) validateFoto(fh *multipart.FileHeader) error {
	if fh.Size > s.upload.MaxSize {
		return apperrors.ErrFileTooLarge
	}

	ext := fileExtension(fh.Filename)
	for _, allowed := range s.upload.AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}

func (s *PesananServiceImpl) fotoURL(ctx context.Context, storagePath *string) *string {
	if storagePath == nil {
		return nil
	}
	url, err := s.storage.GetURL(ctx, *storagePath)
	if err != nil {
		return nil
	}
	return &url
}

func fileExtension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

func slotValue(p *models.PesananServis, slot string) *string {
	switch slot {
	case "foto_1":
		return p.Foto1
	case "foto_2":
		return p.Foto2
	case "foto_3":
		return p.Foto3
	}
	return nil
}

func setSlotValue(p *models.PesananServis, slot, storagePath string) {
	switch slot {
	case "foto_1":
		p.Foto1 = &storagePath
	case "foto_2":
		p.Foto2 = &storagePath
	case "foto_3":
		p.Foto3 = &storagePath
	}
}
