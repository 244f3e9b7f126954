package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

// QRService renders QR codes that point at plan links on the landing page.
type QRService struct {
	baseURL string
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PlanURL is the page link printed for plan.
func (s *QRService) PlanURL(plan string) string {
	return fmt.Sprintf("%s/?plan=%s#pricing", s.baseURL, plan)
}

// GeneratePlanQRCode returns a PNG for the plan link. size is clamped to
// [MinSize, MaxSize].
func (s *QRService) GeneratePlanQRCode(plan string, size int) ([]byte, error) {
	if size < MinSize {
		size = MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	png, err := qrcode.Encode(s.PlanURL(plan), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
