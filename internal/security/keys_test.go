package security

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestLoadPEM_InlinePEM(t *testing.T) {
	pemBytes, err := LoadPEM(testPrivateKeyPEM)
	if err != nil {
		t.Fatalf("LoadPEM: %v", err)
	}
	if !strings.Contains(string(pemBytes), "-----BEGIN") {
		t.Error("LoadPEM did not return PEM content")
	}
}

func TestLoadPEM_ExpandsLiteralNewlines(t *testing.T) {
	oneLine := strings.ReplaceAll(testPublicKeyPEM, "\n", `\n`)
	pemBytes, err := LoadPEM(oneLine)
	if err != nil {
		t.Fatalf("LoadPEM: %v", err)
	}
	if strings.Contains(string(pemBytes), `\n`) {
		t.Error("LoadPEM should expand literal \\n sequences")
	}
	if _, err := ParsePublicKey(oneLine); err != nil {
		t.Errorf("ParsePublicKey on single-line PEM: %v", err)
	}
}

func TestLoadPEM_FilePath(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.pem")
	if err := os.WriteFile(tmpFile, []byte(testPrivateKeyPEM), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	pemBytes, err := LoadPEM(tmpFile)
	if err != nil {
		t.Fatalf("LoadPEM: %v", err)
	}
	if !strings.Contains(string(pemBytes), "-----BEGIN") {
		t.Error("LoadPEM did not read file content")
	}
}

func TestLoadPEM_Errors(t *testing.T) {
	if _, err := LoadPEM(""); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("LoadPEM empty: want ErrInvalidKey, got %v", err)
	}
	if _, err := LoadPEM("   "); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("LoadPEM whitespace: want ErrInvalidKey, got %v", err)
	}
	if _, err := LoadPEM(filepath.Join(t.TempDir(), "missing.pem")); err == nil {
		t.Error("LoadPEM missing file: want error")
	}
}

func TestParseKeys_RSA(t *testing.T) {
	priv, err := ParsePrivateKey(testPrivateKeyPEM)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	if _, ok := priv.(*rsa.PrivateKey); !ok {
		t.Errorf("ParsePrivateKey type = %T, want *rsa.PrivateKey", priv)
	}
	pub, err := ParsePublicKey(testPublicKeyPEM)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if signingMethod(pub) != jwt.SigningMethodRS256 {
		t.Errorf("signingMethod = %v, want RS256", signingMethod(pub))
	}
}

func TestParseKeys_ECDSA(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("MarshalECPrivateKey: %v", err)
	}
	privPEM := string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}))
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("MarshalPKIXPublicKey: %v", err)
	}
	pubPEM := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))

	signer, err := ParsePrivateKey(privPEM)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	pub, err := ParsePublicKey(pubPEM)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if signingMethod(pub) != jwt.SigningMethodES256 {
		t.Errorf("signingMethod = %v, want ES256", signingMethod(pub))
	}
	p := NewTokenProvider(signer, pub, "iss", "aud", time.Minute)
	token, _, err := p.IssueAccess("s1", "u1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, uid, err := p.ValidateAccess(token); err != nil || uid != "u1" {
		t.Errorf("ValidateAccess = %q, %v; want u1, nil", uid, err)
	}
}

func TestParseKeys_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"not pem", "-----BEGIN garbage"},
		{"corrupt certificate", "-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----"},
		{"parameters only", pemString("EC PARAMETERS", []byte{0x06, 0x08})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePrivateKey(tc.in); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("ParsePrivateKey: want ErrInvalidKey, got %v", err)
			}
			if _, err := ParsePublicKey(tc.in); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("ParsePublicKey: want ErrInvalidKey, got %v", err)
			}
		})
	}
}

func TestParsePrivateKey_PKCS8(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey rsa: %v", err)
	}
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey ecdsa: %v", err)
	}
	testCases := []struct {
		name string
		key  any
		want jwt.SigningMethod
	}{
		{"rsa", rsaKey, jwt.SigningMethodRS256},
		{"ecdsa", ecKey, jwt.SigningMethodES256},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			der, err := x509.MarshalPKCS8PrivateKey(tc.key)
			if err != nil {
				t.Fatalf("MarshalPKCS8PrivateKey: %v", err)
			}
			signer, err := ParsePrivateKey(pemString("PRIVATE KEY", der))
			if err != nil {
				t.Fatalf("ParsePrivateKey: %v", err)
			}
			if m := signingMethod(signer.Public()); m != tc.want {
				t.Errorf("signingMethod = %v, want %v", m, tc.want)
			}
		})
	}
}

func TestParseKeys_SkipsLeadingParameters(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("MarshalECPrivateKey: %v", err)
	}
	// openssl ecparam -genkey writes the curve parameters ahead of the key.
	in := pemString("EC PARAMETERS", []byte{0x06, 0x08}) + pemString("EC PRIVATE KEY", der)
	signer, err := ParsePrivateKey(in)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	if !key.PublicKey.Equal(signer.Public()) {
		t.Error("ParsePrivateKey returned a different key")
	}
}

func TestParsePublicKey_Certificate(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	pub, err := ParsePublicKey(pemString("CERTIFICATE", der))
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if !key.PublicKey.Equal(pub) {
		t.Error("ParsePublicKey did not return the certificate key")
	}
}

func TestParseKeys_UnsupportedAlgorithms(t *testing.T) {
	p384, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey p384: %v", err)
	}
	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey ed25519: %v", err)
	}
	testCases := []struct {
		name string
		priv any
		pub  any
	}{
		{"ecdsa p384", p384, &p384.PublicKey},
		{"ed25519", edPriv, edPub},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			privDER, err := x509.MarshalPKCS8PrivateKey(tc.priv)
			if err != nil {
				t.Fatalf("MarshalPKCS8PrivateKey: %v", err)
			}
			if _, err := ParsePrivateKey(pemString("PRIVATE KEY", privDER)); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("ParsePrivateKey: want ErrInvalidKey, got %v", err)
			}
			pubDER, err := x509.MarshalPKIXPublicKey(tc.pub)
			if err != nil {
				t.Fatalf("MarshalPKIXPublicKey: %v", err)
			}
			if _, err := ParsePublicKey(pemString("PUBLIC KEY", pubDER)); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("ParsePublicKey: want ErrInvalidKey, got %v", err)
			}
		})
	}
}

func TestSigningMethod_Unsupported(t *testing.T) {
	if m := signingMethod(nil); m != nil {
		t.Errorf("signingMethod(nil) = %v, want nil", m)
	}
}

func pemString(typ string, der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: typ, Bytes: der}))
}
