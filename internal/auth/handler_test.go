package auth_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"github.com/ryanpavini/sistema-na-backend/internal/testutils"
)

func TestActivationLifecycle(t *testing.T) {
	app, db := testutils.SetupTestApp(t)

	// Invite
	resp, err := testutils.MakeRequest(app, "POST", "/admins", map[string]interface{}{
		"name":  "Alice",
		"email": "alice@x.com",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)

	var alice models.Admin
	assert.NoError(t, db.Where("email = ?", "alice@x.com").First(&alice).Error)
	assert.Nil(t, alice.Password)
	assert.NotNil(t, alice.PasswordResetToken)
	token := *alice.PasswordResetToken

	// Redeem the activation token with a first password
	resp, err = testutils.MakeRequest(app, "POST", "/reset-password", map[string]interface{}{
		"token":        token,
		"new_password": "Weak1!ok",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	alice = models.Admin{}
	assert.NoError(t, db.Where("email = ?", "alice@x.com").First(&alice).Error)
	assert.NotNil(t, alice.Password)
	assert.Nil(t, alice.PasswordResetToken)
	assert.Nil(t, alice.PasswordResetExpires)

	// A redeemed token can never be redeemed again
	resp, err = testutils.MakeRequest(app, "POST", "/reset-password", map[string]interface{}{
		"token":        token,
		"new_password": "Other1!ok",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.Code)
	testutils.AssertError(t, resp, "INVALID_TOKEN")

	// Login with the new password
	resp, err = testutils.MakeRequest(app, "POST", "/login", map[string]interface{}{
		"email":    "alice@x.com",
		"password": "Weak1!ok",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var login testutils.StandardResponse
	testutils.ParseResponse(t, resp, &login)
	data := login.Data.(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])

	profile := data["admin"].(map[string]interface{})
	assert.Equal(t, "alice@x.com", profile["email"])
	assert.NotContains(t, profile, "password")

	// Refresh rotates the pair
	resp, err = testutils.MakeRequest(app, "POST", "/refresh-token", map[string]interface{}{
		"refresh_token": data["refresh_token"],
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var refreshed testutils.StandardResponse
	testutils.ParseResponse(t, resp, &refreshed)
	refreshData := refreshed.Data.(map[string]interface{})
	assert.NotEmpty(t, refreshData["access_token"])
	assert.NotEmpty(t, refreshData["refresh_token"])
}

func TestInviteDuplicateEmail(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	testutils.CreateTestAdmin(t, db, "Alice", "alice@x.com", "Weak1!ok")

	resp, err := testutils.MakeRequest(app, "POST", "/admins", map[string]interface{}{
		"name":  "Other Alice",
		"email": "alice@x.com",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 409, resp.Code)
	testutils.AssertError(t, resp, "CONFLICT")
}

func TestInviteValidation(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	t.Run("missing name", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/admins", map[string]interface{}{
			"email": "alice@x.com",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("malformed email", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/admins", map[string]interface{}{
			"name":  "Alice",
			"email": "not-an-email",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})
}

func TestLoginEnumerationResistance(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	testutils.CreateTestAdmin(t, db, "Alice", "alice@x.com", "Weak1!ok")

	wrongPassword, err := testutils.MakeRequest(app, "POST", "/login", map[string]interface{}{
		"email":    "alice@x.com",
		"password": "Wrong1!ok",
	}, "")
	assert.NoError(t, err)

	unknownEmail, err := testutils.MakeRequest(app, "POST", "/login", map[string]interface{}{
		"email":    "nobody@x.com",
		"password": "Weak1!ok",
	}, "")
	assert.NoError(t, err)

	assert.Equal(t, 401, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Code, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String())
}

func TestLoginPendingAccountRejected(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	testutils.CreatePendingAdmin(t, db, "Bob", "bob@x.com", "sometoken1234567890", time.Now().Add(time.Hour))

	resp, err := testutils.MakeRequest(app, "POST", "/login", map[string]interface{}{
		"email":    "bob@x.com",
		"password": "Weak1!ok",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.Code)
	testutils.AssertError(t, resp, "INVALID_CREDENTIALS")
}

func TestForgotPasswordEnumerationResistance(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	testutils.CreateTestAdmin(t, db, "Alice", "alice@x.com", "Weak1!ok")

	existing, err := testutils.MakeRequest(app, "POST", "/forgot-password", map[string]interface{}{
		"email": "alice@x.com",
	}, "")
	assert.NoError(t, err)

	missing, err := testutils.MakeRequest(app, "POST", "/forgot-password", map[string]interface{}{
		"email": "nobody@x.com",
	}, "")
	assert.NoError(t, err)

	assert.Equal(t, 200, existing.Code)
	assert.Equal(t, missing.Code, existing.Code)
	assert.Equal(t, missing.Body.String(), existing.Body.String())

	// The existing account got a token; the password is untouched.
	var alice models.Admin
	assert.NoError(t, db.Where("email = ?", "alice@x.com").First(&alice).Error)
	assert.NotNil(t, alice.PasswordResetToken)
	assert.NotNil(t, alice.Password)

	resp, err := testutils.MakeRequest(app, "POST", "/login", map[string]interface{}{
		"email":    "alice@x.com",
		"password": "Weak1!ok",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	testutils.CreatePendingAdmin(t, db, "Bob", "bob@x.com", "expiredtoken1234567890", time.Now().Add(-time.Minute))

	resp, err := testutils.MakeRequest(app, "POST", "/reset-password", map[string]interface{}{
		"token":        "expiredtoken1234567890",
		"new_password": "Weak1!ok",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.Code)
	testutils.AssertError(t, resp, "TOKEN_EXPIRED")
}

func TestResetPasswordInvalidToken(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "POST", "/reset-password", map[string]interface{}{
		"token":        "nosuchtoken",
		"new_password": "Weak1!ok",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.Code)
	testutils.AssertError(t, resp, "INVALID_TOKEN")
}

func TestResetPasswordPolicyViolation(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	testutils.CreatePendingAdmin(t, db, "Bob", "bob@x.com", "validtoken1234567890", time.Now().Add(time.Hour))

	resp, err := testutils.MakeRequest(app, "POST", "/reset-password", map[string]interface{}{
		"token":        "validtoken1234567890",
		"new_password": "weak",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 422, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	assert.Equal(t, "VALIDATION_ERROR", result.Error.Code)

	details := result.Error.Details.(map[string]interface{})
	assert.Contains(t, details, "length")
	assert.Contains(t, details, "uppercase")

	// Token remains redeemable after a policy failure.
	var bob models.Admin
	assert.NoError(t, db.Where("email = ?", "bob@x.com").First(&bob).Error)
	assert.NotNil(t, bob.PasswordResetToken)
}

func TestChangePassword(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	alice := testutils.CreateTestAdmin(t, db, "Alice", "alice@x.com", "Weak1!ok")
	token := testutils.GetAuthToken(t, alice.ID)

	t.Run("requires authentication", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/change-password", map[string]interface{}{
			"current_password": "Weak1!ok",
			"new_password":     "Changed1!ok",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})

	t.Run("wrong current password", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/change-password", map[string]interface{}{
			"current_password": "Wrong1!ok",
			"new_password":     "Changed1!ok",
		}, token)
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "INVALID_CREDENTIALS")
	})

	t.Run("same password", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/change-password", map[string]interface{}{
			"current_password": "Weak1!ok",
			"new_password":     "Weak1!ok",
		}, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)
		testutils.AssertError(t, resp, "SAME_PASSWORD")
	})

	t.Run("policy violation", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/change-password", map[string]interface{}{
			"current_password": "Weak1!ok",
			"new_password":     "weak",
		}, token)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("success", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/change-password", map[string]interface{}{
			"current_password": "Weak1!ok",
			"new_password":     "Changed1!ok",
		}, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		resp, err = testutils.MakeRequest(app, "POST", "/login", map[string]interface{}{
			"email":    "alice@x.com",
			"password": "Changed1!ok",
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
	})
}

func TestRefreshWithDeletedSubject(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	alice := testutils.CreateTestAdmin(t, db, "Alice", "alice@x.com", "Weak1!ok")

	resp, err := testutils.MakeRequest(app, "POST", "/login", map[string]interface{}{
		"email":    "alice@x.com",
		"password": "Weak1!ok",
	}, "")
	assert.NoError(t, err)

	var login testutils.StandardResponse
	testutils.ParseResponse(t, resp, &login)
	refreshToken := login.Data.(map[string]interface{})["refresh_token"].(string)

	assert.NoError(t, db.Delete(&models.Admin{}, "id = ?", alice.ID).Error)

	resp, err = testutils.MakeRequest(app, "POST", "/refresh-token", map[string]interface{}{
		"refresh_token": refreshToken,
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.Code)
	testutils.AssertError(t, resp, "NOT_FOUND")
}

func TestRefreshInvalidToken(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "POST", "/refresh-token", map[string]interface{}{
		"refresh_token": "garbage",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.Code)
	testutils.AssertError(t, resp, "INVALID_REFRESH_TOKEN")
}

func TestProtectedRouteRejectsBadTokens(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	t.Run("missing token", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/admins", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/admins", nil, "garbage")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})
}

func TestAPIKeyGate(t *testing.T) {
	app, _ := testutils.SetupTestApp(t)

	t.Run("missing key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("X-API-Key", "wrong-key")
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("valid key", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/health", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
	})
}
