package pagination_test

import (
	"testing"
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	token := pagination.EncodeToken(createdAt, "booking-42")

	gotTime, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, "booking-42", gotID)
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := "bm8tc2VwYXJhdG9yLWhlcmU=" // "no-separator-here"
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}
