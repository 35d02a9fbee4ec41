package productapi_test

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitamiini-0/matrix-rmapi/core/productapi"
)

func TestClientFragment(t *testing.T) {

	ta := newTestAPI(t)
	user := norppa11()

	var fragments []productapi.InstructionFragment
	_, err := ta.deviceClient().RawPost("/api/v1/clients/fragment", user, &fragments)
	assert.Nil(t, err)
	assert.Len(t, fragments, 2)

	for i, fragment := range fragments {
		assert.NotEmpty(t, fragment.Title)
		assert.NotEmpty(t, fragment.Filename)
		assert.True(t, strings.HasPrefix(fragment.Data, "data:application/zip;base64,"))

		// the data URI must decode into a zip that carries the pem under
		// a filename derived from the callsign
		b64 := strings.SplitN(fragment.Data, ",", 2)[1]
		raw, err := base64.StdEncoding.DecodeString(b64)
		assert.Nil(t, err)
		assert.NotEmpty(t, raw)

		zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
		assert.Nil(t, err)
		assert.Len(t, zr.File, 1)
		if i == 0 {
			assert.Equal(t, "NORPPA11a_1.pem", zr.File[0].Name)
			assert.Equal(t, "NORPPA11a_1.zip", fragment.Filename)
		}

		rc, err := zr.File[0].Open()
		assert.Nil(t, err)
		var pem bytes.Buffer
		_, err = pem.ReadFrom(rc)
		assert.Nil(t, err)
		rc.Close()
		assert.Equal(t, user.Cert, pem.String())
	}
}

func TestClientFragment_NoIdentity(t *testing.T) {

	ta := newTestAPI(t)

	status, _ := ta.anonymousClient().RawPost("/api/v1/clients/fragment", norppa11(), nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestClientInfo(t *testing.T) {

	ta := newTestAPI(t)
	c := ta.authorityClient()

	for _, lang := range []string{"en", "fi", "sv"} {
		var body []byte
		status, err := c.RawPost("/api/v2/clients/"+lang+"/info.md", norppa11(), &body)
		assert.Nil(t, err, lang)
		assert.Equal(t, http.StatusOK, status, lang)

		// the deployment label and the callsign are interpolated verbatim
		assert.Contains(t, string(body), ta.manifest.Deployment, lang)
		assert.Contains(t, string(body), "NORPPA11a", lang)
	}
}

func TestClientInfo_LanguageFallback(t *testing.T) {

	ta := newTestAPI(t)

	var fi []byte
	_, err := ta.authorityClient().RawPost("/api/v2/clients/fi/info.md", norppa11(), &fi)
	assert.Nil(t, err)
	assert.Contains(t, string(fi), "Terve")

	// swedish has no template yet, it falls back to english
	var sv []byte
	_, err = ta.authorityClient().RawPost("/api/v2/clients/sv/info.md", norppa11(), &sv)
	assert.Nil(t, err)
	assert.Contains(t, string(sv), "Hello")
}

func TestClientInfo_WrongCaller(t *testing.T) {

	ta := newTestAPI(t)

	for _, lang := range []string{"en", "fi", "sv"} {
		status, _ := ta.deviceClient().RawPost("/api/v2/clients/"+lang+"/info.md", norppa11(), nil)
		assert.Equal(t, http.StatusForbidden, status, lang)
	}
}
