//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"promocode-service/internal/handler/dto/request"
	"promocode-service/tests/common/dbtest"
	"promocode-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	UserSignInURL     = "/api/user/auth/sign-in"
	BusinessSignInURL = "/api/business/auth/sign-in"
)

func signIn(t *testing.T, router *gin.Engine, url, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, url,
		request.SignInRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token, "token missing from sign-in response")

	// the cookie carries the same token
	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.Equal(t, body.Token, accessCookie.Value)

	return body.Token
}

func SignInUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	return signIn(t, router, UserSignInURL, email, password)
}

func SignInBusiness(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	return signIn(t, router, BusinessSignInURL, email, password)
}

func CreateAndSignInUser(t *testing.T, db dbtest.DBLike, router *gin.Engine, f dbtest.UserFixture) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, f)
	return SignInUser(t, router, f.Email, dbtest.DefaultPassword)
}

func CreateAndSignInBusiness(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email string) string {
	t.Helper()
	dbtest.CreateTestBusiness(t, db, name, email)
	return SignInBusiness(t, router, email, dbtest.DefaultPassword)
}
