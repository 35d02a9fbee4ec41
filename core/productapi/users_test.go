package productapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitamiini-0/matrix-rmapi/core/productapi"
)

func TestUserNotifications_FromAuthority(t *testing.T) {

	ta := newTestAPI(t)
	c := ta.authorityClient()

	for _, event := range []string{"created", "revoked", "promoted", "demoted", "updated"} {
		var result productapi.OperationResult
		status, err := c.RawPost("/api/v1/users/"+event, norppa11(), &result)
		assert.Nil(t, err, event)
		assert.Equal(t, http.StatusOK, status, event)
		assert.True(t, result.Success, event)
	}

	// updated is also available as PUT
	var result productapi.OperationResult
	status, err := c.RawPut("/api/v1/users/updated", norppa11(), &result)
	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, result.Success)
}

func TestUserNotifications_WrongCaller(t *testing.T) {

	ta := newTestAPI(t)

	// a device cert is valid mTLS but it is not RASENMAEHER
	for _, event := range []string{"created", "revoked", "promoted", "demoted", "updated"} {
		status, err := ta.deviceClient().RawPost("/api/v1/users/"+event, norppa11(), nil)
		assert.NotNil(t, err, event)
		assert.Equal(t, http.StatusForbidden, status, event)
	}

	status, _ := ta.anonymousClient().RawPost("/api/v1/users/created", norppa11(), nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestUserNotifications_MalformedBody(t *testing.T) {

	ta := newTestAPI(t)
	c := ta.authorityClient()

	status, _ := c.RawPost("/api/v1/users/created", map[string]string{
		"uuid": "6faf734d", "callsign": "NORPPA11a",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status, "missing x509cert must be rejected")

	status, _ = c.RawPost("/api/v1/users/created", productapi.UserCRUDRequest{
		UUID: "6faf734d", Callsign: "", Cert: "cert",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status, "empty callsign must be rejected")

	status, _ = c.RawPost("/api/v1/users/created", []byte("this is not json"), nil)
	assert.Equal(t, http.StatusBadRequest, status, "non-json body must be rejected")
}
