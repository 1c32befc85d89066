package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateKeyQR renders a license key as a PNG QR code
	GenerateKeyQR(key string) ([]byte, error)
}
