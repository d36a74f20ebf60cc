package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateScanNormalizesDriverTime(t *testing.T) {
	var d Date
	err := d.Scan(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, Date("2026-01-06"), d)
}

func TestDateScanAcceptsStringAndBytes(t *testing.T) {
	var d Date
	assert.NoError(t, d.Scan("2026-01-06"))
	assert.Equal(t, Date("2026-01-06"), d)

	assert.NoError(t, d.Scan([]byte("2026-02-07")))
	assert.Equal(t, Date("2026-02-07"), d)
}

func TestDateScanNil(t *testing.T) {
	d := Date("2026-01-06")
	assert.NoError(t, d.Scan(nil))
	assert.Equal(t, Date(""), d)
}

func TestDateScanRejectsUnsupportedType(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := Date("2026-01-06").Value()
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-06", v)
}

func TestTanggalJSONRoundTrip(t *testing.T) {
	tanggal := Date("2026-01-06")
	// Driver already handed the column through Scan; the response must carry
	// the same format the posting payload used.
	assert.NoError(t, tanggal.Scan(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)))

	body, err := json.Marshal(PesananServis{
		KodeTransaksi: "TX1",
		Tanggal:       &tanggal,
	})
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"tanggal":"2026-01-06"`)
}
