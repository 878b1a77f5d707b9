package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// dateLayout формат календарной даты без времени и часового пояса
const dateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")
)

// DateString календарная дата в формате "YYYY-MM-DD" (ISO 8601, без времени)
// Лексикографическое сравнение строк эквивалентно хронологическому,
// поэтому тип безопасно использовать как ключ и сравнивать оператором <
type DateString string

// NewDateString создает DateString из календарной даты момента t
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateString(s), nil
}

// Validate проверяет корректность формата даты
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (d DateString) IsZero() bool {
	return d == ""
}

// Before возвращает true, если дата d раньше other
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After возвращает true, если дата d позже other
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

// AddDays возвращает дату, сдвинутую на days календарных дней
// Корректно переходит через границы месяца и года
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return DateString(t.AddDate(0, 0, days).Format(dateLayout)), nil
}

// ToTime возвращает полночь UTC соответствующего дня
func (d DateString) ToTime() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

func (d DateString) String() string {
	return string(d)
}

// Value реализует driver.Valuer для записи в колонку типа DATE
func (d DateString) Value() (driver.Value, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

// Scan реализует sql.Scanner: принимает DATE (time.Time), TEXT и []byte
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		parsed, err := NewDateStringFromString(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := NewDateStringFromString(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = ""
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into DateString", src)
	}
}
