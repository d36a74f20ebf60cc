package dto

import (
	"mime/multipart"

	"servis_backend/internal/models"
)

// FotoSlots are the three photo attachment positions on an order, in form
// field order.
var FotoSlots = []string{"foto_1", "foto_2", "foto_3"}

// PostingData is the decoded JSON carried in the "data" form field.
// Pointer fields distinguish "absent" from an explicit value, so an update
// leaves omitted fields untouched.
type PostingData struct {
	KodeTransaksi string   `json:"kode_transaksi"`
	Tanggal       *string  `json:"tanggal"`
	Biaya         *float64 `json:"biaya"`
	NamaTeknisi   *string  `json:"nama_teknisi"`
	NamaPelanggan *string  `json:"nama_pelanggan"`
	NomorTelp     *string  `json:"nomor_telp"`
}

// PostingRequest is the raw multipart input: the JSON payload string plus
// zero to three uploaded photos keyed by slot name.
type PostingRequest struct {
	Data string
	Foto map[string]*multipart.FileHeader
}

// PesananResponse is an order enriched with derived public photo URLs.
type PesananResponse struct {
	models.PesananServis
	Foto1URL *string `json:"foto_1_url"`
	Foto2URL *string `json:"foto_2_url"`
	Foto3URL *string `json:"foto_3_url"`
}

type PesananListResponse struct {
	Success bool              `json:"success"`
	Total   int               `json:"total"`
	Data    []PesananResponse `json:"data"`
}

type PostingResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    *models.PesananServis `json:"data"`
}
