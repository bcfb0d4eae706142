package s3

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	"github.com/muhammadheryan/account-service/utils/errors"
)

var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"heic": "image/heic",
	"heif": "image/heif",
}

// Uploader is the part of manager.Uploader the store needs.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type Options struct {
	Region       string
	Bucket       string
	Prefix       string
	MaxBytes     int64
	MaxDimension int
	// MaxPixels bounds width*height read from the image header before decoding.
	MaxPixels int
}

type PhotoStore struct {
	uploader Uploader
	opts     Options
}

// New builds a PhotoStore from the default AWS credential chain.
func New(ctx context.Context, opts Options) (*PhotoStore, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(opts.Region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg)
	return NewWithUploader(manager.NewUploader(client), opts), nil
}

func NewWithUploader(uploader Uploader, opts Options) *PhotoStore {
	return &PhotoStore{uploader: uploader, opts: opts}
}

// Store validates the upload, downsizes decodable images and writes the result under
// <prefix><accountID>/<uuid>.<ext>. The object key is returned as the photo reference.
func (s *PhotoStore) Store(ctx context.Context, accountID string, upload *model.PhotoUpload) (string, error) {
	if upload == nil || len(upload.Data) == 0 {
		return "", errors.SetCustomError(constant.ErrInvalidPhoto)
	}
	if s.opts.MaxBytes > 0 && int64(len(upload.Data)) > s.opts.MaxBytes {
		return "", errors.SetCustomError(constant.ErrInvalidPhoto)
	}

	ext := strings.TrimPrefix(strings.ToLower(path.Ext(upload.Filename)), ".")
	contentType, ok := contentTypes[ext]
	if !ok {
		return "", errors.SetCustomError(constant.ErrInvalidPhoto)
	}

	data := upload.Data
	if ext != "heic" && ext != "heif" {
		normalized, err := s.normalize(data)
		if err != nil {
			return "", errors.SetCustomError(constant.ErrInvalidPhoto)
		}
		data, ext, contentType = normalized, "jpg", "image/jpeg"
	}

	key := fmt.Sprintf("%s%s/%s.%s", s.opts.Prefix, accountID, uuid.NewString(), ext)
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.opts.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

var errTooManyPixels = fmt.Errorf("image exceeds pixel limit")

func (s *PhotoStore) normalize(data []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if s.opts.MaxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(s.opts.MaxPixels) {
		return nil, errTooManyPixels
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if s.opts.MaxDimension > 0 {
		img = imaging.Fit(img, s.opts.MaxDimension, s.opts.MaxDimension, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
