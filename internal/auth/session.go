package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Danskers/Finances-API/internal/models"
)

// CookieName is the cookie that carries the session token.
const CookieName = "access_token"

// TokenOrigin identifies where a session token was found in a request.
type TokenOrigin int

const (
	// TokenAbsent means the request carried no token at all.
	TokenAbsent TokenOrigin = iota
	// TokenFromHeader means the token came from the Authorization header.
	TokenFromHeader
	// TokenFromCookie means the token came from the access_token cookie.
	TokenFromCookie
)

// TokenSource is the resolved carrier of a session token: a bearer
// header, the session cookie, or nothing.
type TokenSource struct {
	Origin TokenOrigin
	Token  string
}

// ExtractToken locates the session token in a request. The bearer
// header wins over the cookie; absence of both yields TokenAbsent.
func ExtractToken(r *http.Request) TokenSource {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return TokenSource{Origin: TokenFromHeader, Token: strings.TrimSpace(parts[1])}
		}
	}
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return TokenSource{Origin: TokenFromCookie, Token: cookie.Value}
	}
	return TokenSource{Origin: TokenAbsent}
}

// UserFinder looks up users by primary key.
type UserFinder interface {
	GetUserByID(id uint) (*models.User, error)
}

// ResolveUser resolves the request to an authenticated user, or nil
// when no identity can be established: missing token, failed decode,
// non-numeric subject, or unknown user. No database lookup happens
// unless a token decodes successfully. This is the sole authorization
// gate; there is no permission model beyond resource ownership.
func ResolveUser(r *http.Request, users UserFinder) *models.User {
	source := ExtractToken(r)
	if source.Origin == TokenAbsent {
		return nil
	}

	claims := DecodeToken(source.Token)
	if claims == nil {
		return nil
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return nil
	}

	user, err := users.GetUserByID(uint(id))
	if err != nil {
		return nil
	}
	return user
}
