package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/pkg/config"
	"adslot-booking/internal/pkg/errs"

	"golang.org/x/crypto/chacha20poly1305"
)

// Encryptor encrypts applicant PII with XChaCha20-Poly1305. The nonce is
// derived from an HMAC of the plaintext, so equal plaintexts produce equal
// ciphertexts and the encrypted columns stay searchable by exact match.
type Encryptor struct {
	key []byte
}

func NewEncryptor(cfg config.CryptoConfig) (*Encryptor, error) {
	key, err := base64.StdEncoding.DecodeString(cfg.Key)
	if err != nil {
		return nil, errs.Wrap(err, "encryption key is not valid base64")
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, errs.New("encryption key must be 32 bytes")
	}
	return &Encryptor{key: key}, nil
}

func (e *Encryptor) EncryptValue(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	aead, err := chacha20poly1305.NewX(e.key)
	if err != nil {
		return "", errs.Wrap(err, "failed to initialize cipher")
	}

	nonce := e.deriveNonce(plaintext)
	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *Encryptor) DecryptValue(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errs.Wrap(err, "ciphertext is not valid base64")
	}

	aead, err := chacha20poly1305.NewX(e.key)
	if err != nil {
		return "", errs.Wrap(err, "failed to initialize cipher")
	}
	if len(raw) < aead.NonceSize() {
		return "", errs.New("ciphertext too short")
	}

	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to decrypt value")
	}
	return string(plaintext), nil
}

func (e *Encryptor) EncryptApplicant(a booking.Applicant) (booking.Applicant, error) {
	name, err := e.EncryptValue(a.Name())
	if err != nil {
		return booking.Applicant{}, err
	}
	mobile, err := e.EncryptValue(a.Mobile())
	if err != nil {
		return booking.Applicant{}, err
	}
	return booking.NewApplicant(name, mobile), nil
}

func (e *Encryptor) DecryptApplicant(a booking.Applicant) (booking.Applicant, error) {
	name, err := e.DecryptValue(a.Name())
	if err != nil {
		return booking.Applicant{}, err
	}
	mobile, err := e.DecryptValue(a.Mobile())
	if err != nil {
		return booking.Applicant{}, err
	}
	return booking.NewApplicant(name, mobile), nil
}

// deriveNonce keys the nonce off the plaintext. Deterministic encryption
// leaks equality of values, which is the property exact-match search needs.
func (e *Encryptor) deriveNonce(plaintext string) []byte {
	mac := hmac.New(sha256.New, e.key)
	mac.Write([]byte(plaintext))
	return mac.Sum(nil)[:chacha20poly1305.NonceSizeX]
}
