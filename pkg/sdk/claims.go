package sdk

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mitchellh/mapstructure"
)

// TokenClaims holds the claims read from a session token payload.
// They are never verified and only pre-fill session fields.
type TokenClaims struct {
	Subject string
	Email   string
	UserID  int64

	// Role is the raw role claim; a role array yields its first element.
	Role string

	Raw map[string]any
}

// EmailOrSubject returns the subject claim, falling back to the email claim.
func (c *TokenClaims) EmailOrSubject() string {
	if c == nil {
		return ""
	}
	if c.Subject != "" {
		return c.Subject
	}
	return c.Email
}

var claimsParser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeClaims decodes the payload segment of a three-segment token.
// Decoding is best effort: any failure returns (nil, false).
func DecodeClaims(token string) (*TokenClaims, bool) {
	if strings.Count(token, ".") != 2 {
		return nil, false
	}

	raw := jwt.MapClaims{}
	if _, _, err := claimsParser.ParseUnverified(token, raw); err != nil {
		// A malformed header still leaves a readable payload.
		payload, ok := decodePayloadSegment(strings.Split(token, ".")[1])
		if !ok {
			return nil, false
		}
		raw = payload
	}

	claims := TokenClaims{Raw: raw}
	decodeClaim(raw["sub"], &claims.Subject)
	decodeClaim(raw["email"], &claims.Email)
	decodeClaim(raw["userId"], &claims.UserID)

	claims.Role = roleClaim(raw["role"])
	return &claims, true
}

// decodeClaim weakly decodes one claim into dst. A claim of the wrong type
// leaves dst at its zero value without affecting the others.
func decodeClaim[T any](v any, dst *T) {
	if v == nil {
		return
	}
	var out T
	if err := mapstructure.WeakDecode(v, &out); err != nil {
		return
	}
	*dst = out
}

func decodePayloadSegment(seg string) (map[string]any, bool) {
	seg = strings.TrimRight(seg, "=")
	var data []byte
	var err error
	for _, enc := range []*base64.Encoding{base64.RawURLEncoding, base64.RawStdEncoding} {
		if data, err = enc.DecodeString(seg); err == nil {
			break
		}
	}
	if err != nil {
		return nil, false
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil || payload == nil {
		return nil, false
	}
	return payload, true
}

func roleClaim(v any) string {
	switch role := v.(type) {
	case string:
		return role
	case []any:
		if len(role) > 0 {
			if s, ok := role[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
