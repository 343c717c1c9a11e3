package book

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/tartampluch/go-contacts/internal/config"
)

var phonePattern = regexp.MustCompile(config.PatternPhone)

var (
	nameRules = []validation.Rule{
		validation.Required,
	}
	phoneRules = []validation.Rule{
		validation.Required,
		validation.Length(config.PhoneDigits, config.PhoneDigits).Error(config.ErrPhoneDigits),
		validation.Match(phonePattern).Error(config.ErrPhoneDigits),
	}
	birthdayRules = []validation.Rule{
		validation.Required,
		validation.Date(config.DateFormatBirthday).Error(config.ErrBirthdayLayout),
	}
)

// validate runs rules against raw and wraps any failure as ErrValidation.
func validate(field, raw string, rules []validation.Rule) error {
	if err := validation.Validate(raw, rules...); err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrValidation, field, raw, err)
	}
	return nil
}

// Name identifies a contact and is the key of the address book.
type Name struct {
	value string
}

// NewName validates raw as a contact name.
func NewName(raw string) (Name, error) {
	if err := validate(config.ErrInvalidName, raw, nameRules); err != nil {
		return Name{}, err
	}
	return Name{value: raw}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a phone number of exactly ten decimal digits, kept verbatim.
type Phone struct {
	value string
}

// NewPhone validates raw as a phone number.
func NewPhone(raw string) (Phone, error) {
	if err := validate(config.ErrInvalidPhone, raw, phoneRules); err != nil {
		return Phone{}, err
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date entered as DD.MM.YYYY.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw, which must denote a real date in DD.MM.YYYY form.
func NewBirthday(raw string) (Birthday, error) {
	if err := validate(config.ErrInvalidBirthday, raw, birthdayRules); err != nil {
		return Birthday{}, err
	}
	date, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %s %q: %v", ErrValidation, config.ErrInvalidBirthday, raw, err)
	}
	return Birthday{date: date}, nil
}

// BirthdayFromDate builds a Birthday from the calendar date of t.
func BirthdayFromDate(t time.Time) Birthday {
	return Birthday{date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Date returns the birth date at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(config.DateFormatBirthday)
}
