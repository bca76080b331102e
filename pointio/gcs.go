package pointio

import (
	"context"
	"io"
	"os"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSSource reads an object from Google Cloud Storage.
// Reference: https://cloud.google.com/storage/docs/reference/libraries
type GCSSource struct {
	Bucket          string
	Object          string
	CredentialsPath string
}

// Closes the object reader, then the client that owns it
type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r gcsReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s GCSSource) Open(ctx context.Context) (io.ReadCloser, error) {
	const keyName = "gcp.json"

	// Without a key file the client falls back to application default credentials
	var opts []option.ClientOption
	if s.CredentialsPath != "" {
		keyFile := path.Join(s.CredentialsPath, keyName)
		if _, err := os.Stat(keyFile); err == nil {
			opts = append(opts, option.WithCredentialsFile(keyFile))
		}
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	r, err := client.Bucket(s.Bucket).Object(s.Object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, err
	}
	return gcsReader{r, client}, nil
}
