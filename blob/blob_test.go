// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blob_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geonft/geonftd/blob"
	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/fixtures"
)

func TestIDOf(t *testing.T) {
	// SHA3-256 of the empty string
	assert.Equal(t, blob.ID("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"), blob.IDOf(nil), "wrong empty id")
	assert.NotEqual(t, blob.IDOf([]byte("a")), blob.IDOf([]byte("b")), "different content same id")
}

func TestNewBadBackend(t *testing.T) {
	_, err := blob.New(context.Background(), &blob.Configuration{Backend: "ipfs"})
	assert.Equal(t, fault.InvalidBlobBackend, err, "wrong error")
}

func TestDirectoryStore(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store, err := blob.New(context.Background(), &blob.Configuration{
		Backend:   blob.DirectoryBackend,
		Directory: t.TempDir(),
		Prefix:    "images-",
	})
	assert.Nil(t, err, "wrong new")

	data := []byte("some image bytes")
	id, err := store.Put(context.Background(), data)
	assert.Nil(t, err, "wrong put")
	assert.Equal(t, blob.IDOf(data), id, "wrong id")

	d := store.(*blob.DirectoryStore)
	stored, err := os.ReadFile(d.Path(id))
	assert.Nil(t, err, "wrong read")
	assert.Equal(t, data, stored, "wrong content")

	again, err := store.Put(context.Background(), data)
	assert.Nil(t, err, "wrong repeat put")
	assert.Equal(t, id, again, "wrong repeat id")
}

func TestDirectoryStoreCancelled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store, err := blob.NewDirectoryStore(t.TempDir(), "")
	assert.Nil(t, err, "wrong new")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Put(ctx, []byte("x"))
	assert.Equal(t, fault.BlobUploadFailed, err, "wrong error")
}

func TestDirectoryStoreMissingDirectory(t *testing.T) {
	_, err := blob.NewDirectoryStore("", "")
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

// minimal path style S3 endpoint
type fakeS3 struct {
	sync.Mutex
	objects map[string][]byte
	status  int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if http.MethodPut != r.Method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if 0 != f.status {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
		return
	}
	data, err := io.ReadAll(r.Body)
	if nil != err {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.Lock()
	f.objects[r.URL.Path] = data
	f.Unlock()
	w.Header().Set("ETag", `"etag"`)
	w.WriteHeader(http.StatusOK)
}

func s3Configuration(endpoint string) *blob.Configuration {
	return &blob.Configuration{
		Backend:          blob.S3Backend,
		Bucket:           "treasures",
		Region:           "us-east-1",
		Endpoint:         endpoint,
		Prefix:           "images/",
		AccessKey:        "test-access",
		SecretKey:        "test-secret",
		RetryMaxAttempts: 1,
	}
}

func TestS3Store(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	fake := &fakeS3{objects: make(map[string][]byte)}
	server := httptest.NewServer(fake)
	defer server.Close()

	store, err := blob.New(context.Background(), s3Configuration(server.URL))
	assert.Nil(t, err, "wrong new")

	data := []byte("treasure image")
	id, err := store.Put(context.Background(), data)
	assert.Nil(t, err, "wrong put")
	assert.Equal(t, blob.IDOf(data), id, "wrong id")

	fake.Lock()
	defer fake.Unlock()
	assert.Equal(t, data, fake.objects["/treasures/images/"+string(id)], "wrong stored object")
}

func TestS3StoreRejected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	fake := &fakeS3{objects: make(map[string][]byte), status: http.StatusForbidden}
	server := httptest.NewServer(fake)
	defer server.Close()

	store, err := blob.NewS3Store(context.Background(), s3Configuration(server.URL))
	assert.Nil(t, err, "wrong new")

	_, err = store.Put(context.Background(), []byte("treasure image"))
	assert.Equal(t, fault.BlobUploadFailed, err, "wrong error")
	assert.True(t, fault.IsErrRemote(err), "not a remote error")
}

func TestS3StoreMissingBucket(t *testing.T) {
	configuration := s3Configuration("")
	configuration.Bucket = ""
	_, err := blob.NewS3Store(context.Background(), configuration)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}
