// Package bind decodes and validates an HTTP request into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/venuebook/config"
	"github.com/shashiranjanraj/venuebook/pkg/validate"
)

// maxBodyBytes returns the configured request body size limit (default 4 MB).
func maxBodyBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", "4194304"), 10, 64)
	if err != nil || n <= 0 {
		return 4 << 20
	}
	return n
}

// JSON decodes r.Body as JSON into dest and runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body is malformed JSON or too large.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	if err = json.NewDecoder(r.Body).Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if errs = validate.Struct(dest); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}

// Form fills the string, int and uint fields of dest from the query string
// and the url-encoded or multipart form, keyed by validate.FieldName, then
// runs validation. A value that does not parse into its field is reported
// as a validation error on that field.
func Form(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxBodyBytes())
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, fmt.Errorf("invalid form: %w", err)
	}

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind: dest must be a pointer to a struct, got %T", dest)
	}
	rv = rv.Elem()
	rt := rv.Type()

	errs = make(map[string]string)
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := validate.FieldName(field)
		raw := strings.TrimSpace(r.Form.Get(name))
		if raw == "" {
			continue
		}

		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(r.Form.Get(name))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, perr := strconv.ParseInt(raw, 10, 64)
			if perr != nil {
				errs[name] = fmt.Sprintf("The %s field must be an integer.", name)
				continue
			}
			fv.SetInt(n)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, perr := strconv.ParseUint(raw, 10, 64)
			if perr != nil {
				errs[name] = fmt.Sprintf("The %s field must be a positive integer.", name)
				continue
			}
			fv.SetUint(n)
		}
	}

	for k, v := range validate.Struct(dest) {
		if _, ok := errs[k]; !ok {
			errs[k] = v
		}
	}
	if validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}
