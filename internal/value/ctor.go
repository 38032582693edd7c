package value

import (
	"github.com/pkg/errors"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

func errIndexOutOfRange(typeName string, index, length int) error {
	return errors.Errorf("%s index %d out of range (length %d)", typeName, index, length)
}

func constructorArityError(className string, got int) error {
	return zerrors.NewConstructorError(className, "exactly one argument", argCountDesc(got))
}

func constructorTypeError(className, expected, given string) error {
	return zerrors.NewConstructorError(className, expected, given)
}
