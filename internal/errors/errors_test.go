package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := LoadFailure("fetch inventory", fmt.Errorf("HTTP 503"))
	wrapped := Wrap(base, "load records")

	assert.Equal(t, CodeLoadFailure, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, base))
	assert.Equal(t, "load records: fetch inventory: HTTP 503", wrapped.Error())
}

func TestWrapPlainErrorIsInternal(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "render")
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("vehicle"))
	assert.True(t, HasCode(err, CodeNotFound))
	assert.True(t, IsAppError(err))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestMissingParameterIsNotFound(t *testing.T) {
	err := MissingParameter("id")
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Contains(t, err.Error(), `"id"`)
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, fmt.Errorf("bad"))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Nil(t, WithCode(CodeInvalidInput, nil))
}

func TestGetMessage(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("vehicle Z9"))
	assert.Equal(t, "vehicle Z9 not found", GetMessage(err))
	assert.Equal(t, "", GetMessage(fmt.Errorf("plain")))
}
