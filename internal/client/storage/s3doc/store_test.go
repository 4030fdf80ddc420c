package s3doc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
)

// newBucketMock эмулирует бакет на map
func newBucketMock() (*ObjectAPIMock, map[string][]byte) {
	objects := make(map[string][]byte)
	mock := &ObjectAPIMock{
		GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			data, ok := objects[aws.ToString(params.Key)]
			if !ok {
				return nil, &types.NoSuchKey{}
			}
			return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
		},
		PutObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			data, err := io.ReadAll(params.Body)
			if err != nil {
				return nil, err
			}
			objects[aws.ToString(params.Key)] = data
			return &s3.PutObjectOutput{}, nil
		},
		DeleteObjectFunc: func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
			delete(objects, aws.ToString(params.Key))
			return &s3.DeleteObjectOutput{}, nil
		},
	}
	return mock, objects
}

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	mock, objects := newBucketMock()
	s := New(mock, "gym", "prod")
	path := remote.DocumentPath("u1", "trainings")

	_, err := s.GetDocument(ctx, path)
	assert.ErrorIs(t, err, remote.ErrDocumentNotFound)

	require.NoError(t, s.PutDocument(ctx, path, json.RawMessage(`[{"id":"t1"}]`)))
	assert.Contains(t, objects, "prod/users/u1/storage/trainings.json")

	put := mock.PutObjectCalls()
	require.Len(t, put, 1)
	assert.Equal(t, "gym", aws.ToString(put[0].Params.Bucket))
	assert.Equal(t, contentTypeJSON, aws.ToString(put[0].Params.ContentType))
	assert.Equal(t, int64(len(`[{"id":"t1"}]`)), aws.ToInt64(put[0].Params.ContentLength))

	got, err := s.GetDocument(ctx, path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"t1"}]`, string(got))

	require.NoError(t, s.DeleteDocument(ctx, path))
	assert.Empty(t, objects)
}

func TestStore_ObjectKeyWithoutPrefix(t *testing.T) {
	s := New(nil, "gym", "")
	assert.Equal(t, "users/u1/storage/sessions.json", s.objectKey(remote.DocumentPath("u1", "sessions")))
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("access denied")
	mock := &ObjectAPIMock{
		GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			return nil, boom
		},
		PutObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			return nil, boom
		},
	}
	s := New(mock, "gym", "")

	_, err := s.GetDocument(ctx, "users/u1/storage/x")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, remote.ErrDocumentNotFound)

	err = s.PutDocument(ctx, "users/u1/storage/x", json.RawMessage(`1`))
	assert.ErrorIs(t, err, boom)
}

func TestStore_CorruptObject(t *testing.T) {
	mock, objects := newBucketMock()
	objects["users/u1/storage/x.json"] = []byte("{broken")
	s := New(mock, "gym", "")

	_, err := s.GetDocument(context.Background(), "users/u1/storage/x")
	assert.Error(t, err)
}
