package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openhire/mobile-core/internal/apperrors"
)

func TestClassify_Nil(t *testing.T) {
	assert.Empty(t, Classify(nil))
}

func TestClassify_UnwrapsToInnermost(t *testing.T) {
	inner := goerrors.New("boom")
	err := fmt.Errorf("outer: %w", fmt.Errorf("middle: %w", inner))

	assert.Equal(t, "errors_errorstring", Classify(err))
}

func TestClassify_AppError(t *testing.T) {
	assert.Equal(t, "apperrors_apperror", Classify(apperrors.Transport("dial failed")))
}

func TestClassify_WrappedAppErrorReportsCause(t *testing.T) {
	cause := goerrors.New("connection reset")
	err := apperrors.Wrap(cause, apperrors.ErrCodeTransport, "network request failed")

	assert.Equal(t, "errors_errorstring", Classify(err))
}
