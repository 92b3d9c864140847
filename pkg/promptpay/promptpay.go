// Package promptpay builds EMVCo merchant-presented QR payloads for Thai
// PromptPay transfers. A payload encodes the receiver (phone number, national
// ID, or e-wallet ID) and an optional fixed amount; the paying bank app reads
// everything else from the standard fields.
package promptpay

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	idPayloadFormat         = "00"
	idPOIMethod             = "01"
	idMerchantInfo          = "29"
	idCurrency              = "53"
	idAmount                = "54"
	idCountryCode           = "58"
	idCRC                   = "63"
	payloadFormatEMV        = "01"
	poiMethodStatic         = "11"
	poiMethodDynamic        = "12"
	merchantInfoAID         = "00"
	merchantInfoPhone       = "01"
	merchantInfoNationalID  = "02"
	merchantInfoEWalletID   = "03"
	promptPayAID            = "A000000677010111"
	currencyTHB             = "764"
	countryTH               = "TH"
)

var ErrInvalidTarget = errors.New("promptpay: invalid target")

var nonDigits = regexp.MustCompile(`\D`)

// Payload returns the full EMV payload for a transfer of amount baht to
// target. An amount of zero produces a static (payer-keyed-amount) payload.
func Payload(target string, amount float64) (string, error) {
	id := sanitizeTarget(target)
	if len(id) < 9 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	poiMethod := poiMethodStatic
	if amount > 0 {
		poiMethod = poiMethodDynamic
	}

	var b strings.Builder
	b.WriteString(field(idPayloadFormat, payloadFormatEMV))
	b.WriteString(field(idPOIMethod, poiMethod))
	b.WriteString(field(idMerchantInfo, merchantInfo(id)))
	b.WriteString(field(idCurrency, currencyTHB))
	if amount > 0 {
		b.WriteString(field(idAmount, decimal.NewFromFloat(amount).StringFixed(2)))
	}
	b.WriteString(field(idCountryCode, countryTH))

	payload := b.String() + idCRC + "04"
	return payload + checksum(payload), nil
}

func merchantInfo(id string) string {
	targetType := merchantInfoPhone
	switch {
	case len(id) >= 15:
		targetType = merchantInfoEWalletID
	case len(id) >= 13:
		targetType = merchantInfoNationalID
	}
	return field(merchantInfoAID, promptPayAID) + field(targetType, formatTarget(id))
}

func sanitizeTarget(target string) string {
	return nonDigits.ReplaceAllString(target, "")
}

// formatTarget converts a local phone number into the 13-digit 0066-prefixed
// form the PromptPay rail expects; 13/15-digit IDs pass through unchanged.
func formatTarget(id string) string {
	if len(id) >= 13 {
		return id
	}
	intl := id
	if strings.HasPrefix(intl, "0") {
		intl = "66" + intl[1:]
	}
	return fmt.Sprintf("%013s", intl)
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// checksum is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF), uppercase hex.
func checksum(data string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
