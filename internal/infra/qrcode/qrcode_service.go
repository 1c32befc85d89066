package qrcode

import (
	"fmt"
	"strings"

	"keygate/config"
	"keygate/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

// NewFromConfig builds the service from the optional qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// recoveryLevel maps the L/M/Q/H letters to go-qrcode levels; anything else is Medium.
func recoveryLevel(letter string) qrcode.RecoveryLevel {
	switch strings.ToUpper(letter) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateKeyQR encodes the raw license key as a PNG QR code.
func (s *qrcodeService) GenerateKeyQR(key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("license key is empty")
	}

	qrCode, err := qrcode.New(key, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
