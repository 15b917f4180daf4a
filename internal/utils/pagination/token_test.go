package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeIDToken(t *testing.T) {
	for _, id := range []int64{1, 42, 9_007_199_254_740_993} {
		token := EncodeIDToken(id)
		assert.NotEmpty(t, token, "Token should not be empty")

		decoded, err := DecodeIDToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeIDTokenError(t *testing.T) {
	_, err := DecodeIDToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	_, err = DecodeIDToken(EncodeMultiFieldToken("1", "2"))
	assert.ErrorContains(t, err, "field count")

	_, err = DecodeIDToken(EncodeMultiFieldToken("abc"))
	assert.ErrorContains(t, err, "id parse")
}

func TestEncodeDecodeDateIDToken(t *testing.T) {
	date := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeDateIDToken(date, 17)
	decodedDate, decodedID, err := DecodeDateIDToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(decodedDate), "Date should match after decode")
	assert.Equal(t, int64(17), decodedID)

	now := time.Now().UTC()
	decodedNow, _, err := DecodeDateIDToken(EncodeDateIDToken(now, 1))
	require.NoError(t, err)
	assert.True(t, now.Equal(decodedNow), "Current time should survive nanosecond precision")
}

func TestDecodeDateIDTokenError(t *testing.T) {
	_, _, err := DecodeDateIDToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	_, _, err = DecodeDateIDToken(EncodeMultiFieldToken("2023-05-15T00:00:00Z"))
	assert.ErrorContains(t, err, "split")

	_, _, err = DecodeDateIDToken(EncodeMultiFieldToken("notadate", "3"))
	assert.ErrorContains(t, err, "date parse")

	_, _, err = DecodeDateIDToken(EncodeMultiFieldToken("2023-05-15T00:00:00Z", "x"))
	assert.ErrorContains(t, err, "id parse")
}

func TestEncodeMultiFieldToken(t *testing.T) {
	// Test with simple fields
	fields := []string{"field1", "field2", "field3"}
	token := EncodeMultiFieldToken(fields...)

	decodedFields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, fields, decodedFields, "Fields should match after decode")

	// Test with empty fields
	emptyToken := EncodeMultiFieldToken()
	decodedEmpty, err := DecodeMultiFieldToken(emptyToken)
	assert.NoError(t, err, "Decoding should not return an error")
	// When splitting an empty string with strings.Split, we get a slice with one empty string
	assert.Equal(t, []string{""}, decodedEmpty, "Should decode to slice with one empty string")

	// Test with special characters
	specialFields := []string{"field|with|pipes", "field with spaces", "field\nwith\nnewlines"}
	specialToken := EncodeMultiFieldToken(specialFields...)

	decodedSpecial, err := DecodeMultiFieldToken(specialToken)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Len(t, decodedSpecial, 5, "Should split on all pipe characters")

	// Test fields with timestamps
	timestampStr := time.Now().UTC().Format(time.RFC3339Nano)
	timeToken := EncodeMultiFieldToken("account123", timestampStr)

	decodedTime, err := DecodeMultiFieldToken(timeToken)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, 2, len(decodedTime), "Should have decoded 2 fields")
	assert.Equal(t, "account123", decodedTime[0], "First field should match")
	assert.Equal(t, timestampStr, decodedTime[1], "Timestamp field should match")
}
