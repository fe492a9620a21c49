package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired is returned when the token signature checks out but the
	// expiry has passed.
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers every other verification failure: malformed
	// input, wrong algorithm, signature mismatch, missing subject.
	ErrInvalid = errors.New("token invalid")
)

// Claims is the decoded payload of a verified bearer token.
type Claims struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec signs and verifies compact HS256 bearer tokens. It holds no
// state beyond the process-wide signing key, so a single instance is
// safe for unsynchronized use from any number of requests. Rotating the
// key invalidates every previously issued token; there is no grace
// period and no revocation list.
type Codec struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"HS256"})),
	}
}

// Issue builds and signs a token for the given subject. Expiry is a
// fixed offset from issuance.
func (c *Codec) Issue(subject string, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(c.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify recomputes the signature over the token's header and payload
// and checks expiry. Signature comparison inside golang-jwt's HMAC
// method is constant-time (hmac.Equal). An expired-but-authentic token
// reports ErrExpired, never ErrInvalid.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	parsed, err := c.parser.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalid
	}

	claims := &Claims{}
	claims.Subject, _ = claimsMap["sub"].(string)
	claims.Role, _ = claimsMap["role"].(string)
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalid)
	}

	if iat, err := claimsMap.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := claimsMap.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
