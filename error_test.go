package sitemd_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/sitemd"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sitemd.Errorf(sitemd.ENOTFOUND, "site %q not found", "test")

	assert.Equal(t, sitemd.ENOTFOUND, sitemd.ErrorCode(err))
	assert.Equal(t, "site \"test\" not found", sitemd.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitemd.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sitemd.EINTERNAL, sitemd.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitemd.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", sitemd.ErrorMessage(errors.New("boom")))
}
