package docstore

import (
	"errors"
	"testing"
	"time"

	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	s := &Store{
		bucketName: "erights-test",
		namespace:  "test",
		sleepFunc:  func(time.Duration) {},
	}
	s.putFunc = func(key, contentType string, data []byte) error { return nil }
	s.getFunc = func(key string) ([]byte, error) { return nil, errors.New("no such key") }
	s.deleteFunc = func(key string) error { return nil }
	return s
}

func TestUploadRetriesTransientFailure(t *testing.T) {
	s := testStore()

	attempts := 0
	s.putFunc = func(key, contentType string, data []byte) error {
		attempts++
		if attempts < 3 {
			return awserr.New("RequestTimeout", "timed out", nil)
		}
		return nil
	}

	key, err := s.Upload([]byte("data"), "receipt.jpg", Receipts)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, key, Receipts+"/")
	assert.Contains(t, key, "receipt")
}

func TestUploadGivesUpAfterMaxAttempts(t *testing.T) {
	s := testStore()

	attempts := 0
	s.putFunc = func(key, contentType string, data []byte) error {
		attempts++
		return awserr.New("RequestTimeout", "timed out", nil)
	}

	_, err := s.Upload([]byte("data"), "receipt.jpg", Receipts)
	require.Error(t, err)
	assert.Equal(t, maxAttempts, attempts)

	exc, ok := err.(ererrors.IException)
	require.True(t, ok)
	assert.Equal(t, ererrors.Timeout.StatusCode, exc.ExceptionStatusCode())
}

func TestUploadRejectsEmptyAndOversized(t *testing.T) {
	s := testStore()

	_, err := s.Upload(nil, "receipt.jpg", Receipts)
	assert.Error(t, err)

	_, err = s.Upload(make([]byte, MaxUploadSize+1), "receipt.jpg", Receipts)
	assert.Error(t, err)
}

func TestUploadBatchRollsBackOnFailure(t *testing.T) {
	s := testStore()

	deleted := []string{}
	s.deleteFunc = func(key string) error {
		deleted = append(deleted, key)
		return nil
	}

	calls := 0
	s.putFunc = func(key, contentType string, data []byte) error {
		calls++
		if calls > maxAttempts {
			// first file stored, every attempt on the second fails
			return awserr.New("RequestError", "send failed", nil)
		}
		_ = calls
		return nil
	}

	// make the first file succeed on its first attempt only
	calls = maxAttempts

	files := []File{
		{Name: "sig_0.png", Data: []byte("a")},
		{Name: "sig_1.png", Data: []byte("b")},
	}

	_, err := s.UploadBatch(files, Signatures)
	require.Error(t, err)
	assert.Len(t, deleted, 1)
	assert.Contains(t, deleted[0], "sig_0")
}

func TestClassify(t *testing.T) {
	timeout := classify(awserr.New("RequestTimeout", "slow", nil))
	assert.Equal(t, ererrors.Timeout.StatusCode, timeout.(ererrors.IException).ExceptionStatusCode())

	network := classify(awserr.New("RequestError", "conn reset", nil))
	assert.Equal(t, ererrors.NetworkError.StatusCode, network.(ererrors.IException).ExceptionStatusCode())

	generic := classify(errors.New("access denied"))
	assert.Equal(t, ererrors.UploadFailed.StatusCode, generic.(ererrors.IException).ExceptionStatusCode())
}

func TestObjectKeyNamespaced(t *testing.T) {
	s := testStore()

	key := s.objectKey("my receipt.jpg", Receipts)
	assert.Contains(t, key, "test/"+Receipts+"/")
	assert.NotContains(t, key, " ")
}
