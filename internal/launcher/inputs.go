// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMissingInput is the sentinel error wrapped by MissingInputError.
var ErrMissingInput = errors.New("missing required input")

// validate is a package-level singleton; building a validator is expensive.
var validate = newValidator()

type (
	// Inputs are the values supplied by the pipeline for one run.
	Inputs struct {
		// Address is the orosu server endpoint.
		Address string `input:"address" validate:"required"`
		// Script identifies the script or job to run.
		Script string `input:"script" validate:"required"`
		// Key is the client credential. It must never be logged.
		Key string `input:"key" validate:"required"`
		// Args is the raw, space-delimited string of extra client arguments.
		Args string `input:"args"`
	}

	// MissingInputError names a required input that was empty.
	MissingInputError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input required and not supplied: %s", e.Name)
}

// Unwrap returns ErrMissingInput so callers can use errors.Is.
func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("input")
	})
	return v
}

// NewInputs trims surrounding whitespace from every value, the same way the
// pipeline host reads action inputs.
func NewInputs(address, script, key, args string) Inputs {
	return Inputs{
		Address: strings.TrimSpace(address),
		Script:  strings.TrimSpace(script),
		Key:     strings.TrimSpace(key),
		Args:    strings.TrimSpace(args),
	}
}

// Validate reports every missing required input, joined with errors.Join.
func (in Inputs) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, &MissingInputError{Name: fe.Field()})
	}
	return errors.Join(errs...)
}

// String renders the inputs with the key redacted.
func (in Inputs) String() string {
	return fmt.Sprintf("{address:%s script:%s key:%s args:%s}",
		Redact(in.Address, in.Key), Redact(in.Script, in.Key), in.redactedKey(), Redact(in.Args, in.Key))
}

// GoString keeps %#v from printing the key.
func (in Inputs) GoString() string {
	return fmt.Sprintf("launcher.Inputs{Address:%q, Script:%q, Key:%q, Args:%q}",
		Redact(in.Address, in.Key), Redact(in.Script, in.Key), in.redactedKey(), Redact(in.Args, in.Key))
}

// Format routes every verb through String or GoString so %+v and friends
// cannot reach the raw struct fields.
func (in Inputs) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = fmt.Fprint(f, in.GoString())
		return
	}
	_, _ = fmt.Fprint(f, in.String())
}

// LogValue implements slog.LogValuer.
func (in Inputs) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("address", Redact(in.Address, in.Key)),
		slog.String("script", Redact(in.Script, in.Key)),
		slog.String("key", in.redactedKey()),
		slog.String("args", Redact(in.Args, in.Key)),
	)
}

func (in Inputs) redactedKey() string {
	if in.Key == "" {
		return ""
	}
	return RedactedToken
}
