// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// Claims are the verified session token claims. The subject is the identity
// provider user id.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID gives the authenticated user id
func (c *Claims) UserID() string {
	return c.Subject
}

// Auth handles the request authentication for the adapter
type Auth struct {
	session *SessionAuth
	admin   *AdminAuth
}

// NewAuth creates new auth instance
func NewAuth(sessionSecret string, adminAPIKey string) *Auth {
	session := &SessionAuth{secret: []byte(sessionSecret)}
	admin := &AdminAuth{apiKey: adminAPIKey}
	return &Auth{session: session, admin: admin}
}

// SessionAuth verifies the identity provider session tokens sent by the
// member-facing frontend
type SessionAuth struct {
	secret []byte
}

func (auth *SessionAuth) check(req *http.Request) (*Claims, int, error) {
	rawToken, err := bearerToken(req)
	if err != nil {
		return nil, http.StatusUnauthorized, err
	}

	claims := Claims{}
	_, err = jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return auth.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, http.StatusUnauthorized, errors.WrapErrorAction(logutils.ActionValidate, logutils.TypeToken, nil, err)
	}
	if claims.Subject == "" {
		return nil, http.StatusUnauthorized, errors.ErrorData(logutils.StatusMissing, logutils.TypeClaim, logutils.StringArgs("sub"))
	}

	return &claims, http.StatusOK, nil
}

// AdminAuth verifies the static operator API key
type AdminAuth struct {
	apiKey string
}

func (auth *AdminAuth) check(req *http.Request) (*Claims, int, error) {
	key := req.Header.Get("Admin-Api-Key")
	if key == "" {
		return nil, http.StatusUnauthorized, errors.ErrorData(logutils.StatusMissing, "api key", nil)
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(auth.apiKey)) != 1 {
		return nil, http.StatusForbidden, errors.ErrorData(logutils.StatusInvalid, "api key", nil)
	}
	return nil, http.StatusOK, nil
}

func bearerToken(req *http.Request) (string, error) {
	authorizationHeader := req.Header.Get("Authorization")
	if authorizationHeader == "" {
		return "", errors.ErrorData(logutils.StatusMissing, "authorization header", nil)
	}

	parts := strings.SplitN(authorizationHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.ErrorData(logutils.StatusInvalid, "authorization header", nil)
	}
	return parts[1], nil
}
