// Package fieldcrypt encrypts single free-text fields before they reach storage.
//
// Two implementations satisfy Cipher: AEAD, an XChaCha20-Poly1305 cipher with a
// fresh random nonce per call, and Nop, the identity transformation used where no
// key is configured. Both are stateless after construction and safe for
// concurrent use.
package fieldcrypt

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrEmptyKey            = errors.New("field encryption key is empty")
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	ErrDecryptionFailed    = errors.New("ciphertext authentication failed")
)

type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Nop leaves values untouched.
type Nop struct{}

func NewNop() Nop { return Nop{} }

func (Nop) Encrypt(plaintext string) (string, error)  { return plaintext, nil }
func (Nop) Decrypt(ciphertext string) (string, error) { return ciphertext, nil }

type AEAD struct {
	key  []byte
	info []byte
}

// NewAEAD derives a 256-bit key from secret with HKDF-SHA256; info binds the key to
// one field so that ciphertexts cannot be swapped between columns.
func NewAEAD(secret, info string) (*AEAD, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, err
	}
	return &AEAD{key: key, info: []byte(info)}, nil
}

func (a *AEAD) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(a.key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), a.info)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (a *AEAD) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrMalformedCiphertext
	}

	aead, err := chacha20poly1305.NewX(a.key)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return "", ErrMalformedCiphertext
	}

	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, sealed, a.info)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}

// New picks AEAD when a secret is set and Nop otherwise.
func New(secret, info string) (Cipher, error) {
	if secret == "" {
		return NewNop(), nil
	}
	return NewAEAD(secret, info)
}
