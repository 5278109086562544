package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/threadfolio/threadfolio-api/internal/config"
)

// Storage pushes garment photos to an S3-compatible CDN bucket. Uploads are
// re-encoded to webp thumbnails before leaving the process, so the bucket
// only ever holds bounded-size derivatives.
type Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

const thumbnailMaxEdge = 1024

// ErrNotConfigured is returned when media credentials are absent; handlers
// map it to a "not configured" response instead of a hard failure.
var ErrNotConfigured = fmt.Errorf("media storage not configured")

func New(cfg *config.Config) *Storage {
	if !cfg.MediaConfigured() {
		return &Storage{}
	}

	opts := s3.Options{
		Region: cfg.MediaRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.MediaAccessKey,
			cfg.MediaSecretKey,
			"",
		),
	}
	if cfg.MediaEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.MediaEndpoint)
		opts.UsePathStyle = true
	}

	return &Storage{
		client:    s3.New(opts),
		bucket:    cfg.MediaBucket,
		publicURL: cfg.MediaPublicURL,
	}
}

func (s *Storage) Configured() bool {
	return s.client != nil
}

// UploadGarmentPhoto decodes the source image, scales it down to at most
// thumbnailMaxEdge on the long side, encodes it as webp and stores it under
// a fresh object key. Returns the key.
func (s *Storage) UploadGarmentPhoto(ctx context.Context, shopID uint, r io.Reader) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	thumb := scaleDown(src, thumbnailMaxEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("shops/%d/garments/%s.webp", shopID, uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return key, nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return ErrNotConfigured
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// PublicURL maps an object key to its CDN-served URL.
func (s *Storage) PublicURL(key string) string {
	if key == "" || s.publicURL == "" {
		return ""
	}
	return s.publicURL + "/" + key
}

func scaleDown(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
