package validation

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Fields is a decoded JSON object as received from a client.
type Fields map[string]any

// Reason identifies which rule rejected a payload.
type Reason string

const (
	MissingField    Reason = "MissingField"
	InvalidOpponent Reason = "InvalidOpponent"
	InvalidScorers  Reason = "InvalidScorers"
	InvalidDate     Reason = "InvalidDate"
	InvalidScore    Reason = "InvalidScore"
	InvalidTime     Reason = "InvalidTime"
	NonIntegerStat  Reason = "NonIntegerStat"
	NegativeStat    Reason = "NegativeStat"
	InvalidID       Reason = "InvalidID"
)

var reasonMessages = map[Reason]string{
	MissingField:    "Missing required fields",
	InvalidOpponent: "Invalid opponent name",
	InvalidScorers:  "Invalid scorers format",
	InvalidDate:     "Invalid date format. Use YYYY-MM-DD",
	InvalidScore:    "Invalid score format. Use X-Y (max 2 digits)",
	InvalidTime:     "Invalid time format. Use HH:MM",
	NonIntegerStat:  "All stats must be valid integers",
	NegativeStat:    "Stats cannot be negative",
	InvalidID:       "Invalid match ID",
}

// Violation is the first rule a payload broke.
type Violation struct {
	Reason Reason
}

func (v *Violation) Error() string {
	if msg, ok := reasonMessages[v.Reason]; ok {
		return msg
	}
	return string(v.Reason)
}

// AsViolation extracts a Violation from an error chain.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	scorePattern   = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)
	clockPattern   = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsISODate(fl.Field().String())
	})
	v.RegisterValidation("scoreline", func(fl validator.FieldLevel) bool {
		return scorePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	return v
}

// IsISODate reports whether s is a real calendar date written as YYYY-MM-DD.
func IsISODate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// ParseMatchID accepts only base-10 integers.
func ParseMatchID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &Violation{Reason: InvalidID}
	}
	return id, nil
}

type fieldState int

const (
	fieldAbsent fieldState = iota
	fieldString
	fieldOther
)

// text reads key as a string. Missing keys, null and "" count as absent.
func (f Fields) text(key string) (string, fieldState) {
	raw, ok := f[key]
	if !ok || raw == nil {
		return "", fieldAbsent
	}
	s, ok := raw.(string)
	if !ok {
		return "", fieldOther
	}
	if s == "" {
		return "", fieldAbsent
	}
	return s, fieldString
}

// integer accepts JSON numbers without a fractional part.
func (f Fields) integer(key string) (int64, bool) {
	switch v := f[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		fv, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(fv)
	case float64:
		return floatToInt(v)
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	default:
		return 0, false
	}
}

func floatToInt(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// collector keeps the highest-priority reason seen across all checks.
type collector struct {
	order  []Reason
	best   int
	typed  map[string]bool
	fields map[string]Reason
}

func newCollector(order []Reason, fields map[string]Reason) *collector {
	return &collector{order: order, best: len(order), typed: map[string]bool{}, fields: fields}
}

func (c *collector) add(reason Reason) {
	for i, r := range c.order {
		if r == reason && i < c.best {
			c.best = i
			return
		}
	}
}

// wrongType records a non-string value for a field so its struct rules are skipped.
func (c *collector) wrongType(field string) {
	c.typed[field] = true
	c.add(c.fields[field])
}

func (c *collector) check(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if c.typed[fe.StructField()] {
			continue
		}
		if fe.Tag() == "required" {
			c.add(MissingField)
			continue
		}
		c.add(c.fields[fe.StructField()])
	}
	return nil
}

func (c *collector) result() error {
	if c.best < len(c.order) {
		return &Violation{Reason: c.order[c.best]}
	}
	return nil
}
