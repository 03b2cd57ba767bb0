package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginCorrectSecret(t *testing.T) {
	r, _ := newTestRouter(t)

	code, resp := doJSON(t, r, http.MethodPost, "/api/login", map[string]any{
		"code": testAdminSecret, "type": "admin",
	})

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "admin", resp["role"])
}

func TestAdminLoginWrongSecret(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, wrong := range []string{"nope", "", "teacher-secret "} {
		code, resp := doJSON(t, r, http.MethodPost, "/api/login", map[string]any{
			"code": wrong, "type": "admin",
		})

		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, false, resp["success"], "code %q must not authenticate", wrong)
		assert.Equal(t, "wrong password", resp["message"])
	}
}

func TestStudentLoginKnownCode(t *testing.T) {
	r, db := newTestRouter(t)
	seedStudent(t, db, "204", "Maya Peretz", 40)

	code, resp := doJSON(t, r, http.MethodPost, "/api/login", map[string]any{
		"code": "204", "type": "student",
	})

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "student", resp["role"])
	assert.Equal(t, "Maya Peretz", resp["name"])
	assert.EqualValues(t, 40, resp["balance"])
}

func TestStudentLoginUnknownCode(t *testing.T) {
	r, _ := newTestRouter(t)

	code, resp := doJSON(t, r, http.MethodPost, "/api/login", map[string]any{
		"code": "999", "type": "student",
	})

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "code not found", resp["message"])
}

// A freshly created student must be able to log in with the same
// name and balance that the creation reported.
func TestCreateThenLoginRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	code, resp := doJSON(t, r, http.MethodPost, "/api/create-student", map[string]any{
		"id": "310", "name": "Noa Barak", "balance": 25,
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, resp["success"])

	code, resp = doJSON(t, r, http.MethodPost, "/api/login", map[string]any{
		"code": "310", "type": "student",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Noa Barak", resp["name"])
	assert.EqualValues(t, 25, resp["balance"])
}

func TestMatchesAdminSecret(t *testing.T) {
	assert.True(t, matchesAdminSecret("s3cret", "s3cret"))
	assert.False(t, matchesAdminSecret("s3cret", "S3cret"))
	// Empty secret plus empty code matches: the misconfiguration the
	// startup warning exists for.
	assert.True(t, matchesAdminSecret("", ""))
}
