package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date - календарная дата в формате YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DatePtr возвращает nil для nil-времени, иначе дату без времени суток.
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("дата должна быть строкой в формате %s", DateLayout)
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return fmt.Errorf("неверный формат даты %q, ожидается %s", raw, DateLayout)
	}
	d.Time = t
	return nil
}

// Ptr возвращает nil для нулевой даты.
func (d Date) Ptr() *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// NullDate различает явный null и значение.
type NullDate struct {
	Date  Date
	Valid bool
}

func NullDateFrom(d Date) NullDate {
	return NullDate{Date: d, Valid: !d.IsZero()}
}

func (n NullDate) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Date.MarshalJSON()
}

func (n *NullDate) UnmarshalJSON(b []byte) error {
	if err := n.Date.UnmarshalJSON(b); err != nil {
		return err
	}
	n.Valid = !n.Date.IsZero()
	return nil
}

func (n NullDate) Ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	return n.Date.Ptr()
}

type ShortEmployeeDTO struct {
	ID           uint64 `json:"id"`
	EmployeeCode string `json:"employee_code"`
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
}

type ShortDepartmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
