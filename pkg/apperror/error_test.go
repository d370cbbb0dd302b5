package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorHidesCause(t *testing.T) {
	cause := errors.New("535 5.7.8 Username and Password not accepted")
	err := apperror.New(http.StatusInternalServerError, "Failed to send email. Please try again later.", cause)

	assert.Equal(t, "Failed to send email. Please try again later.", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestBadRequest(t *testing.T) {
	err := apperror.BadRequest("Invalid email address.")

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Nil(t, err.Err)
}
