package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for blood request share codes
type QRCodeService interface {
	// GenerateRequestQR renders a PNG QR code linking to the blood request
	GenerateRequestQR(requestID uuid.UUID) ([]byte, error)

	// ParseRequestQR extracts the blood request ID from decoded QR content
	ParseRequestQR(qrData string) (uuid.UUID, error)
}
