package qr

import (
	"encoding/base64"

	"toyauction/internal/usecase/interfaces"
	"toyauction/pkg/promptpay"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// PromptPayQRService renders a PromptPay EMV payload as a PNG data URL,
// ready to drop into an <img src>.

type PromptPayQRService struct{}

var _ interfaces.IQRService = (*PromptPayQRService)(nil)

func NewPromptPayQRService() *PromptPayQRService {
	return &PromptPayQRService{}
}

func (s *PromptPayQRService) PaymentQR(promptPayTarget string, amount float64) (string, error) {
	payload, err := promptpay.Payload(promptPayTarget, amount)
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
