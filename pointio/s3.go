package pointio

import (
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Source reads an object from Amazon S3.
// Reference: https://docs.aws.amazon.com/sdk-for-go/api/service/s3/
type S3Source struct {
	Bucket          string
	Key             string
	CredentialsPath string
	Region          string
}

func (s S3Source) session() (*session.Session, error) {
	const (
		keyName    = "credentials"
		configName = "config"
	)
	opts := session.Options{SharedConfigState: session.SharedConfigEnable}
	if s.CredentialsPath != "" {
		opts.SharedConfigFiles = []string{
			path.Join(s.CredentialsPath, keyName),
			path.Join(s.CredentialsPath, configName),
		}
	}
	if s.Region != "" {
		opts.Config.Region = aws.String(s.Region)
	}
	opts.Config.MaxRetries = aws.Int(3)
	return session.NewSessionWithOptions(opts)
}

func (s S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	out, err := s3.New(sess).GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
