package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/khangviet/storefront/config"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/httpclient"
	"github.com/rs/zerolog/log"
)

// Uploader stores one image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type CloudinaryUploader struct {
	conf config.ImageHostConfig
	http *http.Client
}

func CreateCloudinaryUploader(conf config.ImageHostConfig, httpClient *http.Client) *CloudinaryUploader {
	return &CloudinaryUploader{conf: conf, http: httpClient}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload posts an unsigned multipart upload. Files above the configured
// ceiling are rejected before any request is made.
func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if u.conf.MaxUploadSize > 0 && int64(len(data)) > u.conf.MaxUploadSize {
		return "", fmt.Errorf("%w: %s is %d bytes", errs.ErrFileTooLarge, filename, len(data))
	}
	if u.conf.CloudName == "" || u.conf.UploadPreset == "" {
		return "", errs.ErrImageHostUnconfigured
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.WriteField("upload_preset", u.conf.UploadPreset); err != nil {
		return "", err
	}
	if u.conf.Folder != "" {
		if err := writer.WriteField("folder", u.conf.Folder); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	resp, err := httpclient.SendRequest(ctx, u.http, httpclient.HttpRequest{
		URL:     fmt.Sprintf("%s/v1_1/%s/image/upload", u.conf.BaseURL, u.conf.CloudName),
		Method:  http.MethodPost,
		Body:    body.Bytes(),
		Headers: map[string]string{"Content-Type": writer.FormDataContentType()},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CloudinaryUpload").Msg("")
		return "", fmt.Errorf("%w: %v", errs.ErrBadGateway, err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil && resp.StatusCode == http.StatusOK {
		log.Ctx(ctx).Error().Err(err).Str("component", "CloudinaryUpload").Msg("undecodable upload response")
		return "", fmt.Errorf("%w: decoding upload response: %v", errs.ErrBadGateway, err)
	}

	if resp.StatusCode != http.StatusOK || parsed.SecureURL == "" {
		msg := parsed.Error.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		log.Ctx(ctx).Error().Int("status", resp.StatusCode).Str("component", "CloudinaryUpload").Msg(msg)
		return "", fmt.Errorf("%w: upload failed: %s", errs.ErrBadGateway, msg)
	}

	return parsed.SecureURL, nil
}
