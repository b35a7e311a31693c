package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time component. It travels as
// YYYY-MM-DD in JSON and maps to a SQL DATE column.
type Date struct {
	time.Time `json:",inline"`
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(time.DateOnly), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	case []byte:
		t, err := time.Parse(time.DateOnly, string(v))
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

// Equal compares by calendar day, ignoring location.
func (d Date) Equal(other Date) bool {
	return d.Format(time.DateOnly) == other.Format(time.DateOnly)
}

type Reservation struct {
	ID          int64  `json:"id" db:"id"`
	TableNumber int64  `json:"tableNumber" db:"table_number"`
	HolderName  string `json:"holderName" db:"holder_name"`
	IsActive    bool   `json:"isActive" db:"is_active"`
	Date        Date   `json:"date" db:"reservation_date" validate:"required"`
	PartySize   int64  `json:"partySize" db:"party_size"`
	Services    string `json:"services" db:"services"`
}
