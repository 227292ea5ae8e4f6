package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	shortFormat = "15:04"
	fullFormat  = "15:04:05"
)

// TimeString время суток в формате HH:MM:SS
// Используется для колонок PostgreSQL типа TIME
type TimeString string

// NewTimeStringFromString создает TimeString из строки HH:MM или HH:MM:SS
// Результат всегда нормализован к формату HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := parse(s)
	if err != nil {
		return "", err
	}
	return TimeString(t.Format(fullFormat)), nil
}

func parse(s string) (time.Time, error) {
	if t, err := time.Parse(fullFormat, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(shortFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time string %q: expected HH:MM or HH:MM:SS", s)
	}
	return t, nil
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным временем суток
func (t TimeString) Validate() error {
	_, err := parse(string(t))
	return err
}

// AddHours возвращает время, сдвинутое на указанное количество часов
func (t TimeString) AddHours(hours int) (TimeString, error) {
	parsed, err := parse(string(t))
	if err != nil {
		return "", err
	}
	shifted := parsed.Add(time.Duration(hours) * time.Hour)
	return TimeString(shifted.Format(fullFormat)), nil
}

// Scan реализует sql.Scanner для чтения колонок типа TIME
// Драйвер может вернуть time.Time, []byte или string в зависимости от типа колонки
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = TimeString(v.Format(fullFormat))
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	parsed, err := parse(s)
	if err != nil {
		return err
	}
	*t = TimeString(parsed.Format(fullFormat))
	return nil
}

// Value реализует driver.Valuer для записи в колонки типа TIME
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}
