package kernel

import (
	"fmt"
	"strings"
	"time"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
)

// Token is a short human-facing code printed on barcodes and typed in by
// staff. Its internal structure carries no meaning for the domain; it is only
// ever compared for exact, case-sensitive equality.
type Token struct {
	value string
}

// ParseToken trims surrounding whitespace and rejects empty input.
func ParseToken(raw string) (Token, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Token{}, errs.NewValueIsRequiredError("token")
	}
	return Token{value: value}, nil
}

// NewLaundryID generates an order laundry id such as "LND20250123A1B2C3".
func NewLaundryID(now time.Time) Token {
	return Token{value: fmt.Sprintf("LND%s%s", now.Format("20060102"), randomHex(6))}
}

// NewBarcodeID generates a booking ticket code such as "LDY1737625000123".
func NewBarcodeID(now time.Time) Token {
	return Token{value: fmt.Sprintf("LDY%d", now.UnixMilli())}
}

// NewBatchNumber generates a wash batch number such as "BAT20250123F00D".
func NewBatchNumber(now time.Time) Token {
	return Token{value: fmt.Sprintf("BAT%s%s", now.Format("20060102"), randomHex(4))}
}

func (t Token) String() string {
	return t.value
}

func (t Token) IsEqual(other Token) bool {
	return t.value == other.value
}

func (t Token) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("token")
	}
	return nil
}

func randomHex(n int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:n])
}
