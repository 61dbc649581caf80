package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	imagehost "github.com/khangviet/storefront/internal/infrastructure/image-host"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	maxImageDimension = 1920
	targetImageSize   = 1 << 20
	startQuality      = 90
	minQuality        = 40
	qualityStep       = 10
)

type UploadFile struct {
	Name string
	Data []byte
}

// UploadResult keeps successful URLs in input order alongside one reason per failure.
type UploadResult struct {
	URLs     []string
	Failed   int
	Failures []string
}

type UploadServiceImpl struct {
	uploader    imagehost.Uploader
	concurrency int
}

func CreateUploadService(uploader imagehost.Uploader, concurrency int) *UploadServiceImpl {
	if concurrency < 1 {
		concurrency = 1
	}
	return &UploadServiceImpl{uploader: uploader, concurrency: concurrency}
}

// CompressImage fits data within 1920x1920 and re-encodes it as JPEG, lowering
// quality until the result is at most 1 MB or the quality floor is reached.
func CompressImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrNotAnImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	var out []byte
	for quality := startQuality; quality >= minQuality; quality -= qualityStep {
		out, err = encodeJPEG(img, quality)
		if err != nil {
			return nil, err
		}
		if len(out) <= targetImageSize {
			break
		}
	}
	return out, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UploadImages compresses and uploads every file concurrently and returns once
// all of them have settled. One failure never discards the other uploads.
func (s *UploadServiceImpl) UploadImages(ctx context.Context, files []UploadFile) UploadResult {
	urls := make([]string, len(files))
	failures := make([]error, len(files))

	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.SetLimit(s.concurrency)
	for i, f := range files {
		g.Go(func() error {
			compressed, err := CompressImage(f.Data)
			if err != nil {
				failures[i] = err
				return nil
			}
			url, err := s.uploader.Upload(gctx, jpegName(f.Name), compressed)
			if err != nil {
				failures[i] = err
				return nil
			}
			urls[i] = url
			return nil
		})
	}
	g.Wait()

	result := UploadResult{URLs: []string{}}
	for i, f := range files {
		if failures[i] != nil {
			log.Ctx(ctx).Warn().Err(failures[i]).Str("component", "UploadImages").Str("file", f.Name).Msg("")
			result.Failed++
			result.Failures = append(result.Failures, fmt.Sprintf("%s: %v", f.Name, failures[i]))
			continue
		}
		result.URLs = append(result.URLs, urls[i])
	}
	return result
}

func jpegName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." || base == "/" {
		base = "image"
	}
	return base + ".jpg"
}
