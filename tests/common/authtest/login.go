//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/handler/dto/request"
	"restaurant-reservation/tests/common/dbtest"
	"restaurant-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func signInPath(role principal.Role) string {
	if role == principal.RoleManager {
		return "/api/managers/signin"
	}
	return "/api/customers/signin"
}

// SignIn returns the access token delivered in the cookie.
func SignIn(t *testing.T, router *gin.Engine, role principal.Role, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, signInPath(role),
		request.SignInRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateCustomerAndSignIn(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, name, phone string) (int64, string) {
	t.Helper()
	id := dbtest.CreateCustomer(t, db, email, name, phone)
	return id, SignIn(t, router, principal.RoleCustomer, email, dbtest.DefaultPassword)
}

func CreateManagerAndSignIn(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) (int64, string) {
	t.Helper()
	id := dbtest.CreateManager(t, db, email, "Owner", "010-0000-0000")
	return id, SignIn(t, router, principal.RoleManager, email, dbtest.DefaultPassword)
}
