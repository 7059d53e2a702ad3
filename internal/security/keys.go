package security

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidKey is returned when key material is missing, malformed or of an
// unsupported type. Parse errors wrap it.
var ErrInvalidKey = errors.New("invalid key")

const pemPrefix = "-----BEGIN"

type blockParser func(der []byte) (any, error)

// Block types accepted for signing keys.
var privateKeyParsers = map[string]blockParser{
	"RSA PRIVATE KEY": func(der []byte) (any, error) { return x509.ParsePKCS1PrivateKey(der) },
	"EC PRIVATE KEY":  func(der []byte) (any, error) { return x509.ParseECPrivateKey(der) },
	"PRIVATE KEY":     x509.ParsePKCS8PrivateKey,
}

// Block types accepted for verification keys. A certificate yields its subject key.
var publicKeyParsers = map[string]blockParser{
	"RSA PUBLIC KEY": func(der []byte) (any, error) { return x509.ParsePKCS1PublicKey(der) },
	"PUBLIC KEY":     x509.ParsePKIXPublicKey,
	"CERTIFICATE": func(der []byte) (any, error) {
		cert, err := x509.ParseCertificate(der)
		if err != nil {
			return nil, err
		}
		return cert.PublicKey, nil
	},
}

// LoadPEM returns the key material named by s. Values starting with a PEM
// header are used inline, with literal "\n" sequences from single-line env
// vars expanded; anything else is read as a file path.
func LoadPEM(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if !strings.HasPrefix(s, pemPrefix) {
		b, err := os.ReadFile(s)
		if err != nil {
			return nil, fmt.Errorf("read key file: %w", err)
		}
		return b, nil
	}
	return []byte(strings.ReplaceAll(s, `\n`, "\n")), nil
}

// ParsePrivateKey parses an RSA or ECDSA signing key in PKCS#1, SEC 1 or
// PKCS#8 form. s may be inline PEM or a file path.
func ParsePrivateKey(s string) (crypto.Signer, error) {
	key, err := parseKey(s, privateKeyParsers)
	if err != nil {
		return nil, err
	}
	signer, ok := key.(crypto.Signer)
	if !ok || signingMethod(signer.Public()) == nil {
		return nil, fmt.Errorf("%w: unsupported private key %T", ErrInvalidKey, key)
	}
	return signer, nil
}

// ParsePublicKey parses an RSA or ECDSA verification key from a PKCS#1 or
// PKIX block, or from a certificate. s may be inline PEM or a file path.
func ParsePublicKey(s string) (crypto.PublicKey, error) {
	key, err := parseKey(s, publicKeyParsers)
	if err != nil {
		return nil, err
	}
	if signingMethod(key) == nil {
		return nil, fmt.Errorf("%w: unsupported public key %T", ErrInvalidKey, key)
	}
	return key, nil
}

// parseKey decodes the first block whose type has a parser. Other blocks,
// such as EC PARAMETERS emitted by openssl, are skipped.
func parseKey(s string, parsers map[string]blockParser) (any, error) {
	rest, err := LoadPEM(s)
	if err != nil {
		return nil, err
	}
	var seen []string
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		parse, ok := parsers[block.Type]
		if !ok {
			seen = append(seen, block.Type)
			continue
		}
		key, err := parse(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidKey, strings.ToLower(block.Type), err)
		}
		return key, nil
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("%w: no PEM block", ErrInvalidKey)
	}
	return nil, fmt.Errorf("%w: unexpected PEM block %s", ErrInvalidKey, strings.Join(seen, ", "))
}

// signingMethod maps a verification key to its JWT algorithm, or nil if the
// key type cannot sign tokens here.
func signingMethod(pub crypto.PublicKey) jwt.SigningMethod {
	switch k := pub.(type) {
	case *rsa.PublicKey:
		return jwt.SigningMethodRS256
	case *ecdsa.PublicKey:
		if k.Curve != nil && k.Curve.Params().BitSize == 256 {
			return jwt.SigningMethodES256
		}
	}
	return nil
}
