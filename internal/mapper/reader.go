package mapper

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/antonholmquist/jason"
	"github.com/sirupsen/logrus"
)

// reader reads typed fields from one JSON object and keeps the first
// coercion error. Once err is set every accessor returns a zero value.
type reader struct {
	obj    *jason.Object
	entity string
	err    error
}

func newReader(obj *jason.Object, entity string) *reader {
	r := &reader{obj: obj, entity: entity}
	if obj == nil {
		r.err = &FieldError{Entity: entity, Err: ErrMissingField}
	}
	return r
}

// lookup returns nil for absent keys and for JSON null.
func (r *reader) lookup(key string) *jason.Value {
	if r.err != nil {
		return nil
	}
	v, ok := r.obj.Map()[key]
	if !ok || v == nil || v.Null() == nil {
		return nil
	}
	return v
}

func (r *reader) has(key string) bool {
	return r.lookup(key) != nil
}

func (r *reader) fail(key string, err error) {
	if r.err == nil {
		r.err = &FieldError{Entity: r.entity, Field: key, Err: err}
	}
}

// text accepts JSON strings and renders JSON numbers as their literal.
func text(v *jason.Value) (string, error) {
	if s, err := v.String(); err == nil {
		return s, nil
	}
	if n, err := v.Number(); err == nil {
		return n.String(), nil
	}
	return "", errNotText
}

func (r *reader) str(key string) string {
	v := r.lookup(key)
	if v == nil {
		return ""
	}
	s, err := text(v)
	if err != nil {
		r.fail(key, err)
		return ""
	}
	return s
}

func (r *reader) reqStr(key string) string {
	if r.err == nil && !r.has(key) {
		r.fail(key, ErrMissingField)
		return ""
	}
	return r.str(key)
}

func (r *reader) reqInt(key string) int64 {
	v := r.lookup(key)
	if v == nil {
		r.fail(key, ErrMissingField)
		return 0
	}
	n, err := v.Int64()
	if err != nil {
		r.fail(key, err)
		return 0
	}
	return n
}

func (r *reader) optInt(key string) *int64 {
	v := r.lookup(key)
	if v == nil {
		return nil
	}
	n, err := v.Int64()
	if err != nil {
		r.fail(key, err)
		return nil
	}
	return &n
}

// optFlag reads an integer flag: nil when absent, otherwise value == 1.
func (r *reader) optFlag(key string) *bool {
	n := r.optInt(key)
	if n == nil {
		return nil
	}
	b := *n == 1
	return &b
}

// encodedInt parses an integer that the feed sends as a string.
func (r *reader) encodedInt(key string) *int64 {
	v := r.lookup(key)
	if v == nil {
		return nil
	}
	if _, err := v.Object(); err == nil {
		r.fail(key, errObjectForm)
		return nil
	}
	s, err := text(v)
	if err != nil {
		r.fail(key, err)
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		r.fail(key, err)
		return nil
	}
	return &n
}

func (r *reader) reqURL(key string) *url.URL {
	raw := r.reqStr(key)
	if r.err != nil {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		r.fail(key, err)
		return nil
	}
	if !u.IsAbs() {
		r.fail(key, errNotAbsolute)
		return nil
	}
	return u
}

func (r *reader) object(key string) *jason.Object {
	v := r.lookup(key)
	if v == nil {
		return nil
	}
	obj, err := v.Object()
	if err != nil {
		r.fail(key, err)
		return nil
	}
	return obj
}

// softInt never fails: unparsable values become 0.
func (r *reader) softInt(key string) int64 {
	v := r.lookup(key)
	if v == nil {
		return 0
	}
	s, err := text(v)
	if err == nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return n
		}
	}
	r.softFallback(key)
	return 0
}

// softFloat never fails: unparsable, NaN and infinite values become 0.
func (r *reader) softFloat(key string) float64 {
	v := r.lookup(key)
	if v == nil {
		return 0
	}
	s, err := text(v)
	if err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	r.softFallback(key)
	return 0
}

func (r *reader) softFallback(key string) {
	logrus.WithFields(logrus.Fields{
		"entity": r.entity,
		"field":  key,
	}).Debug("Не удалось разобрать необязательное поле, используется значение по умолчанию")
}
