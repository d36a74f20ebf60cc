package models

// PesananServis is one service order, upserted by its transaction code.
// Foto1..Foto3 hold relative storage paths; a nil slot has no photo.
type PesananServis struct {
	BaseModel
	KodeTransaksi string  `gorm:"uniqueIndex;not null" json:"kode_transaksi"`
	Tanggal       *Date   `gorm:"type:date" json:"tanggal"`
	Biaya         float64 `gorm:"type:decimal(12,2);default:0" json:"biaya"`
	NamaTeknisi   *string `json:"nama_teknisi"`
	NamaPelanggan *string `json:"nama_pelanggan"`
	NomorTelp     *string `json:"nomor_telp"`
	Foto1         *string `gorm:"column:foto_1" json:"foto_1"`
	Foto2         *string `gorm:"column:foto_2" json:"foto_2"`
	Foto3         *string `gorm:"column:foto_3" json:"foto_3"`
}

func (PesananServis) TableName() string {
	return "pesanan_servis"
}
