package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date stored in a date column. The Postgres driver
// returns date columns as time.Time; Scan normalizes back to YYYY-MM-DD so
// reads emit the same format writes accept.
type Date string

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(dateLayout))
	case string:
		*d = Date(v)
	case []byte:
		*d = Date(v)
	default:
		return fmt.Errorf("unsupported type %T for date column", value)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}
