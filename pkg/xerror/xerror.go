package xerror

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

type ErrorCategory interface {
	Name() string
}

var (
	Normal  = newErrorCategory("normal")
	Market  = newErrorCategory("market")
	Stock   = newErrorCategory("stock")
	Console = newErrorCategory("console") // The error comes from the terminal or the notification output.
)

type xErrorCategory struct {
	name string
}

func (e xErrorCategory) Name() string {
	return e.name
}

func newErrorCategory(name string) ErrorCategory {
	return &xErrorCategory{
		name: name,
	}
}

type errType int

const (
	xrecoverable errType = iota
	xpanic
)

// a wrapped error with error category && type
type XError struct {
	category ErrorCategory
	errType  errType
	err      error
}

func (e *XError) Category() ErrorCategory {
	return e.category
}

// return the innerest xerror msg
func (e *XError) Error() string {
	var inner *XError
	if stderrors.As(e.err, &inner) {
		return inner.Error()
	}

	return fmt.Sprintf("[%s] %s", e.category.Name(), e.err.Error())
}

func (e *XError) Unwrap() error {
	return e.err
}

func (e *XError) IsRecoverable() bool {
	return e.errType == xrecoverable
}

func (e *XError) IsPanic() bool {
	return e.errType == xpanic
}

func NewWithoutStack(errCategory ErrorCategory, message string) *XError {
	return &XError{
		category: errCategory,
		errType:  xrecoverable,
		err:      stderrors.New(message),
	}
}

func New(errCategory ErrorCategory, message string) error {
	return errors.WithStack(NewWithoutStack(errCategory, message))
}

func errorf(errCategory ErrorCategory, errtype errType, format string, args ...interface{}) *XError {
	return &XError{
		category: errCategory,
		errType:  errtype,
		err:      fmt.Errorf(format, args...),
	}
}

func Errorf(errCategory ErrorCategory, format string, args ...interface{}) error {
	return errors.WithStack(errorf(errCategory, xrecoverable, format, args...))
}

func Panicf(errCategory ErrorCategory, format string, args ...interface{}) error {
	return errors.WithStack(errorf(errCategory, xpanic, format, args...))
}

func wrap(err error, errCategory ErrorCategory, message string) error {
	if err == nil {
		return nil
	}

	err = &XError{
		category: errCategory,
		errType:  xrecoverable,
		err:      err,
	}
	return errors.Wrap(err, message)
}

func Wrap(err error, errCategory ErrorCategory, message string) error {
	return wrap(err, errCategory, message)
}

func Wrapf(err error, errCategory ErrorCategory, format string, args ...interface{}) error {
	return wrap(err, errCategory, fmt.Sprintf(format, args...))
}
