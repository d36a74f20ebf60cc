package repositories

import (
	"errors"

	"servis_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPesananNotFound = errors.New("pesanan not found")

type PesananRepository interface {
	FindByKode(db *gorm.DB, kode string) (*models.PesananServis, error)
	// FindAllLatest returns every order, most recently created first.
	FindAllLatest(db *gorm.DB) ([]models.PesananServis, error)
	// Upsert inserts the order, or on a kode_transaksi conflict updates
	// only the given columns. The uniqueness constraint makes concurrent
	// first-time posts for one kode converge on a single row.
	Upsert(db *gorm.DB, pesanan *models.PesananServis, updateColumns []string) error
	Save(db *gorm.DB, pesanan *models.PesananServis) error
}

type PesananRepositoryImpl struct{}

func NewPesananRepository() PesananRepository {
	return &PesananRepositoryImpl{}
}

func (r *PesananRepositoryImpl) FindByKode(db *gorm.DB, kode string) (*models.PesananServis, error) {
	var pesanan models.PesananServis
	err := db.First(&pesanan, "kode_transaksi = ?", kode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPesananNotFound
		}
		return nil, err
	}
	return &pesanan, nil
}

func (r *PesananRepositoryImpl) FindAllLatest(db *gorm.DB) ([]models.PesananServis, error) {
	var pesanan []models.PesananServis
	err := db.Order("created_at DESC").Find(&pesanan).Error
	return pesanan, err
}

func (r *PesananRepositoryImpl) Upsert(db *gorm.DB, pesanan *models.PesananServis, updateColumns []string) error {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "kode_transaksi"}},
		DoNothing: true,
	}
	if len(updateColumns) > 0 {
		onConflict.DoNothing = false
		onConflict.DoUpdates = clause.AssignmentColumns(append(updateColumns, "updated_at"))
	}
	return db.Clauses(onConflict).Create(pesanan).Error
}

func (r *PesananRepositoryImpl) Save(db *gorm.DB, pesanan *models.PesananServis) error {
	return db.Save(pesanan).Error
}
