package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/account"
	"github.com/pawhub/pawhub/models/dto"
)

type options struct {
	issuer        string
	signingMethod jwt.SigningMethod
	signingKey    interface{}
	keyfunc       jwt.Keyfunc
	expired       int
	tokenType     string
}

type AuthService struct {
	opts  *options
	cache lib.Cache
}

func NewAuthService(cache lib.Cache, config lib.Config) AuthService {
	issuer := config.Name

	signingKey := config.Auth.SigningKey
	if signingKey == "" {
		signingKey = fmt.Sprintf("Jwt:%s", issuer)
	}

	opts := &options{
		issuer:        issuer,
		tokenType:     "Bearer",
		expired:       config.Auth.TokenExpired,
		signingMethod: jwt.SigningMethodHS512,
		signingKey:    []byte(signingKey),
		keyfunc: func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.AuthTokenInvalid
			}
			return []byte(signingKey), nil
		},
	}

	return AuthService{cache: cache, opts: opts}
}

func wrapperAuthKey(key string) string {
	return fmt.Sprintf("auth:%s", key)
}

// GenerateToken signs a JWT for the user and drops a session marker into
// the cache so logout can invalidate it
func (a AuthService) GenerateToken(user *account.User) (*dto.LoginResponse, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(a.opts.expired) * time.Second)
	claims := &dto.JwtClaims{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.Admin(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(a.opts.signingMethod, claims)

	if err := a.cache.Set(wrapperAuthKey(claims.Username), 1, expiresAt.Sub(now)); err != nil {
		return nil, err
	}

	accessToken, err := token.SignedString(a.opts.signingKey)
	if err != nil {
		return nil, apperrors.AuthTokenGenerateFail
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   a.opts.tokenType,
		ExpiresIn:   a.opts.expired,
	}, nil
}

func (a AuthService) ParseToken(tokenString string) (*dto.JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.JwtClaims{}, a.opts.keyfunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, apperrors.AuthTokenMalformed
		} else if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.AuthTokenExpired
		} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, apperrors.AuthTokenNotValidYet
		} else {
			return nil, apperrors.AuthTokenInvalid
		}
	}

	if token != nil {
		if claims, ok := token.Claims.(*dto.JwtClaims); ok && token.Valid {
			return claims, nil
		}
	}

	return nil, apperrors.AuthTokenInvalid
}

// DestroyToken removes the session marker on logout
func (a AuthService) DestroyToken(username string) error {
	_, err := a.cache.Delete(wrapperAuthKey(username))
	return err
}
