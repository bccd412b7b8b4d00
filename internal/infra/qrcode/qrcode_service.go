package qrcode

import (
	"net/url"
	"path"
	"strings"

	"bloodlink/config"
	"bloodlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://bloodlink.example.com/requests"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a share-code service. Codes encode baseURL/{requestID}.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) (service.QRCodeService, error) {
	if size <= 0 {
		size = defaultSize
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}

	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid qrcode base url")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("qrcode base url must be absolute: %s", baseURL)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              parsed,
	}, nil
}

// NewQRCodeServiceFromConfig builds the service from the qrcode section, falling back to defaults.
func NewQRCodeServiceFromConfig(cfg *config.Config) (service.QRCodeService, error) {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", defaultBaseURL)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L", "LOW":
		return qrcode.Low
	case "Q", "HIGH":
		return qrcode.High
	case "H", "HIGHEST":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *qrcodeService) requestURL(requestID uuid.UUID) string {
	link := *s.baseURL
	link.Path = path.Join(link.Path, requestID.String())

	return link.String()
}

// GenerateRequestQR renders a PNG QR code linking to the blood request.
func (s *qrcodeService) GenerateRequestQR(requestID uuid.UUID) ([]byte, error) {
	pngBytes, err := qrcode.Encode(s.requestURL(requestID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// ParseRequestQR extracts the blood request ID from a scanned share link.
// Links issued under a different base URL are rejected.
func (s *qrcodeService) ParseRequestQR(qrData string) (uuid.UUID, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code data")
	}

	if link.Scheme != s.baseURL.Scheme || link.Host != s.baseURL.Host {
		return uuid.Nil, errors.Errorf("QR code does not belong to %s", s.baseURL.Host)
	}

	dir, last := path.Split(strings.TrimRight(link.Path, "/"))
	if strings.TrimRight(dir, "/") != strings.TrimRight(s.baseURL.Path, "/") {
		return uuid.Nil, errors.Errorf("unexpected QR code path: %s", link.Path)
	}

	requestID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse blood request ID")
	}

	return requestID, nil
}
