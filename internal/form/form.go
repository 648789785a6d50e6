package form

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Errors maps a field name to its validation messages.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) First(field string) string {
	if len(e[field]) == 0 {
		return ""
	}
	return e[field][0]
}

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	timePattern     = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

const dateLayout = "2006-01-02"

// Form parses raw url.Values into typed fields, collecting field errors
// instead of failing fast. Rule methods return the zero value when the field
// is invalid; callers check Valid() before using the result.
type Form struct {
	values url.Values
	Errors Errors
}

func New(values url.Values) *Form {
	return &Form{values: values, Errors: Errors{}}
}

func (f *Form) Valid() bool {
	return len(f.Errors) == 0
}

func (f *Form) Get(field string) string {
	return strings.TrimSpace(f.values.Get(field))
}

// Required trims the value and enforces a minimum length.
func (f *Form) Required(field string, min int) string {
	v := f.Get(field)
	if len(v) < min {
		if v == "" {
			f.Errors.Add(field, "This field is required.")
		} else {
			f.Errors.Add(field, fmt.Sprintf("Must be at least %d characters.", min))
		}
	}
	return v
}

// Slug enforces the lowercase-alphanumeric-with-hyphens format.
func (f *Form) Slug(field string) string {
	v := f.Required(field, 3)
	if v != "" && !slugPattern.MatchString(v) {
		f.Errors.Add(field, "Invalid slug (lowercase letters, numbers and hyphens only).")
	}
	return v
}

func (f *Form) HexColor(field string) string {
	v := f.Required(field, 1)
	if v != "" && !hexColorPattern.MatchString(v) {
		f.Errors.Add(field, "Invalid color format (e.g. #FF0000 or #F00).")
	}
	return v
}

func (f *Form) TimeHHMM(field string) string {
	v := f.Required(field, 1)
	if v != "" && !timePattern.MatchString(v) {
		f.Errors.Add(field, "Invalid time format (HH:mm).")
	}
	return v
}

func (f *Form) URL(field string) string {
	v := f.Required(field, 1)
	if v == "" {
		return v
	}
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		f.Errors.Add(field, "Must be a valid URL.")
	}
	return v
}

// OptionalURL normalizes an empty value to nil, validating when present.
func (f *Form) OptionalURL(field string) *string {
	if f.Get(field) == "" {
		return nil
	}
	v := f.URL(field)
	return &v
}

// Optional normalizes an empty or whitespace-only value to nil.
func (f *Form) Optional(field string) *string {
	v := f.Get(field)
	if v == "" {
		return nil
	}
	return &v
}

func (f *Form) Date(field string) time.Time {
	v := f.Required(field, 1)
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		f.Errors.Add(field, "Invalid date format.")
		return time.Time{}
	}
	return t
}

func (f *Form) OptionalDate(field string) *time.Time {
	if f.Get(field) == "" {
		return nil
	}
	t := f.Date(field)
	if t.IsZero() {
		return nil
	}
	return &t
}

// Checkbox reports whether the box was ticked. Browsers omit unchecked
// checkboxes from the payload entirely.
func (f *Form) Checkbox(field string) bool {
	v := f.Get(field)
	return v == "on" || v == "true" || v == "1"
}

// PositiveInt coerces a required positive integer, typically a select value.
func (f *Form) PositiveInt(field string) int64 {
	v := f.Get(field)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		f.Errors.Add(field, "A selection is required.")
		return 0
	}
	return n
}

// OptionalPositiveInt treats "", "0" and the "-" placeholder as absent.
func (f *Form) OptionalPositiveInt(field string) *int64 {
	v := f.Get(field)
	if v == "" || v == "-" || v == "0" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		f.Errors.Add(field, "Invalid selection.")
		return nil
	}
	return &n
}

func (f *Form) Enum(field string, allowed ...string) string {
	v := f.Get(field)
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	f.Errors.Add(field, "Invalid value.")
	return ""
}

func (f *Form) OptionalUUID(field string) *uuid.UUID {
	v := f.Get(field)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		f.Errors.Add(field, "Invalid identifier.")
		return nil
	}
	return &id
}

// UUIDList parses a multi-valued field, skipping empty entries.
func (f *Form) UUIDList(field string) []uuid.UUID {
	var ids []uuid.UUID
	for _, v := range f.values[field] {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		id, err := uuid.Parse(v)
		if err != nil {
			f.Errors.Add(field, "Invalid identifier in selection.")
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
