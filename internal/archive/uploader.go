// Package archive выгружает историю сессий в S3-совместимое хранилище
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ErrNotConfigured возвращается, если не задан бакет
var ErrNotConfigured = errors.New("хранилище не настроено")

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// objectUploader - часть s3manager.Uploader, которая нужна архиву
type objectUploader interface {
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// objectDeleter - часть s3.S3, которая нужна архиву
type objectDeleter interface {
	DeleteObjectWithContext(ctx context.Context, input *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error)
}

// Uploader обертка для S3 uploader
type Uploader struct {
	uploader objectUploader
	deleter  objectDeleter
	config   Config
}

// NewUploader создает новый S3 uploader
func NewUploader(config Config) (*Uploader, error) {
	if config.BucketName == "" {
		return nil, ErrNotConfigured
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Для S3-совместимых хранилищ используем path-style адреса
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return newUploader(config, s3manager.NewUploader(sess), s3.New(sess)), nil
}

func newUploader(config Config, uploader objectUploader, deleter objectDeleter) *Uploader {
	return &Uploader{
		uploader: uploader,
		deleter:  deleter,
		config:   config,
	}
}

// UploadFile загружает объект и возвращает его URL
func (u *Uploader) UploadFile(ctx context.Context, reader io.Reader, key string) (string, error) {
	_, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(u.config.BucketName),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String("application/yaml"),
	})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки: %w", err)
	}

	return u.objectURL(key), nil
}

// DeleteFile удаляет объект из S3
func (u *Uploader) DeleteFile(ctx context.Context, key string) error {
	_, err := u.deleter.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("ошибка удаления файла из S3: %w", err)
	}
	return nil
}

// objectURL формирует URL объекта вида endpoint/bucket/key
func (u *Uploader) objectURL(key string) string {
	endpoint := u.config.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", u.config.Region)
	}
	return fmt.Sprintf("%s/%s/%s", endpoint, u.config.BucketName, key)
}
