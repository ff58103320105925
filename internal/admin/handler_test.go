package admin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"github.com/ryanpavini/sistema-na-backend/internal/testutils"
)

func TestListExcludesSuperAdmin(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	super := testutils.CreateTestAdmin(t, db, "Root Admin", "admin@admin.com", "Admin1!ok")
	testutils.CreateTestAdmin(t, db, "Alice", "alice@x.com", "Weak1!ok")
	testutils.CreateTestAdmin(t, db, "Bob", "bob@x.com", "Weak1!ok")

	token := testutils.GetAuthToken(t, super.ID)

	resp, err := testutils.MakeRequest(app, "GET", "/admins", nil, token)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)

	admins := result.Data.([]interface{})
	assert.Len(t, admins, 2)
	for _, a := range admins {
		entry := a.(map[string]interface{})
		assert.NotEqual(t, "admin@admin.com", entry["email"])
		assert.NotContains(t, entry, "password")
	}
}

func TestUpdateAdmin(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	super := testutils.CreateTestAdmin(t, db, "Root Admin", "admin@admin.com", "Admin1!ok")
	alice := testutils.CreateTestAdmin(t, db, "Alice", "alice@x.com", "Weak1!ok")
	bob := testutils.CreateTestAdmin(t, db, "Bob", "bob@x.com", "Weak1!ok")

	aliceToken := testutils.GetAuthToken(t, alice.ID)

	t.Run("rename", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PUT", "/admins/"+bob.ID, map[string]interface{}{
			"name": "Robert",
		}, aliceToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var updated models.Admin
		assert.NoError(t, db.First(&updated, "id = ?", bob.ID).Error)
		assert.Equal(t, "Robert", updated.Name)
	})

	t.Run("email conflict", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PUT", "/admins/"+bob.ID, map[string]interface{}{
			"email": "alice@x.com",
		}, aliceToken)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)
		testutils.AssertError(t, resp, "CONFLICT")
	})

	t.Run("super admin is off limits to others", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PUT", "/admins/"+super.ID, map[string]interface{}{
			"name": "Hijacked",
		}, aliceToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})

	t.Run("super admin may edit itself", func(t *testing.T) {
		superToken := testutils.GetAuthToken(t, super.ID)
		resp, err := testutils.MakeRequest(app, "PUT", "/admins/"+super.ID, map[string]interface{}{
			"name": "Primary Admin",
		}, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
	})

	t.Run("not found", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PUT", "/admins/00000000-0000-0000-0000-000000000000", map[string]interface{}{
			"name": "Ghost",
		}, aliceToken)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
		testutils.AssertError(t, resp, "NOT_FOUND")
	})
}

func TestDeleteAdmin(t *testing.T) {
	app, db := testutils.SetupTestApp(t)
	super := testutils.CreateTestAdmin(t, db, "Root Admin", "admin@admin.com", "Admin1!ok")
	alice := testutils.CreateTestAdmin(t, db, "Alice", "alice@x.com", "Weak1!ok")
	bob := testutils.CreateTestAdmin(t, db, "Bob", "bob@x.com", "Weak1!ok")

	aliceToken := testutils.GetAuthToken(t, alice.ID)

	t.Run("self-delete is forbidden", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", "/admins/"+alice.ID, nil, aliceToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})

	t.Run("super admin is protected from everyone", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", "/admins/"+super.ID, nil, aliceToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})

	t.Run("not found", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", "/admins/00000000-0000-0000-0000-000000000000", nil, aliceToken)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
		testutils.AssertError(t, resp, "NOT_FOUND")
	})

	t.Run("success", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", "/admins/"+bob.ID, nil, aliceToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var count int64
		db.Model(&models.Admin{}).Where("id = ?", bob.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}
