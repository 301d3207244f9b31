package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"

	"TutorHub/common"
)

// B2Store holds uploaded assignment and solution PDFs in a Backblaze
// B2 bucket and hands back public download urls.
type B2Store struct {
	client  *b2.Client
	bucket  *b2.Bucket
	name    string
	baseURL string
}

var Store *B2Store

const uploadAttempts = 3

func Init(cfg common.H) error {
	bc, _ := cfg["b2"].(common.H)
	keyID := common.EnvOr("B2_KEY_ID", asStr(bc["key_id"]))
	appKey := common.EnvOr("B2_APP_KEY", asStr(bc["app_key"]))
	bucketName := common.EnvOr("B2_BUCKET", asStr(bc["bucket"]))
	baseURL := common.EnvOr("B2_BASE_URL", asStr(bc["base_url"]))
	if keyID == "" || appKey == "" || bucketName == "" || baseURL == "" {
		return errors.New("missing b2 storage config")
	}

	ctx := context.Background()
	client, err := b2.NewClient(ctx, keyID, appKey)
	if err != nil {
		return fmt.Errorf("failed to create b2 client: %w", err)
	}
	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to get bucket: %w", err)
	}
	Store = &B2Store{client: client, bucket: bucket, name: bucketName, baseURL: baseURL}
	return nil
}

func (s *B2Store) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}
	return s.URL(key), nil
}

func (s *B2Store) Delete(ctx context.Context, key string) error {
	return s.bucket.Object(key).Delete(ctx)
}

func (s *B2Store) URL(key string) string {
	return s.baseURL + "/file/" + s.name + "/" + key
}

// UploadPDF streams one uploaded file into folder under a fresh name.
// The reader is fully consumed on every path so no staged file is left
// behind; retries reupload under the same key.
func UploadPDF(ctx context.Context, folder, filename string, open func() (io.ReadCloser, error)) (string, error) {
	if Store == nil {
		return "", errors.New("blob store not configured")
	}
	key := folder + "/" + common.NewToken() + "_" + filename
	var url string
	err := common.WithRetry(uploadAttempts, func() error {
		r, err := open()
		if err != nil {
			return err
		}
		defer r.Close()
		url, err = Store.Upload(ctx, key, r)
		return err
	})
	return url, err
}

func asStr(v interface{}) string {
	s, _ := v.(string)
	return s
}
