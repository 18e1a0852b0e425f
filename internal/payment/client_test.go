package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/spec-kit/society-service/internal/config"
)

func TestVerifySignature(t *testing.T) {
	client := NewClient(config.PaymentConfig{KeyID: "key", KeySecret: "s3cret", Currency: "INR"})

	mac := hmac.New(sha256.New, []byte("s3cret"))
	mac.Write([]byte("order_123|pay_456"))
	valid := hex.EncodeToString(mac.Sum(nil))

	if !client.VerifySignature("order_123", "pay_456", valid) {
		t.Errorf("valid signature rejected")
	}
	if client.VerifySignature("order_123", "pay_456", valid[:len(valid)-1]+"0") {
		t.Errorf("tampered signature accepted")
	}
	if client.VerifySignature("order_999", "pay_456", valid) {
		t.Errorf("signature accepted for different order")
	}
}

func TestConfigured(t *testing.T) {
	if NewClient(config.PaymentConfig{}).Configured() {
		t.Errorf("empty credentials reported as configured")
	}
	if !NewClient(config.PaymentConfig{KeyID: "k", KeySecret: "s"}).Configured() {
		t.Errorf("full credentials reported as unconfigured")
	}
}
