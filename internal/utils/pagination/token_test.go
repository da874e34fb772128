package pagination_test

import (
	"testing"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	txnDate := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 9, 18, 4, 5, 123456789, time.UTC)

	token := pagination.EncodeToken(txnDate, createdAt)

	gotDate, gotCreated, err := pagination.DecodeToken(token)
	assert.NoError(t, err)
	assert.True(t, txnDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, _, err = pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

func TestEncodeDecodeDateBasedToken(t *testing.T) {
	date := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	token := pagination.EncodeDateBasedToken(date)
	got, err := pagination.DecodeDateBasedToken(token)
	assert.NoError(t, err)
	assert.True(t, date.Equal(got))

	_, err = pagination.DecodeDateBasedToken("%%%")
	assert.Error(t, err)
}
