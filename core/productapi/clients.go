package productapi

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/flate"

	"github.com/vitamiini-0/matrix-rmapi/core/logger"
)

// zipPEM wraps the pem into an in-memory zip archive under filename.
func zipPEM(pem string, filename string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})
	f, err := zw.Create(filename)
	if err != nil {
		return nil, err
	}
	if _, err := f.Write([]byte(pem)); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// clientFragment returns the deprecated downloadable client instruction
// fragments, one zipped copy of the caller's certificate material per
// configured title. Deprecated in favour of the v2 info markdown. We use
// POST because the integration layer might not keep track of callsigns and
// certs by UUID and will probably need both for the instructions.
func (a *API) clientFragment(w http.ResponseWriter, r *http.Request) {
	user, ok := a.readUser(w, r)
	if !ok {
		return
	}

	fragments := make([]InstructionFragment, 0, len(a.product.FragmentTitles))
	for i, title := range a.product.FragmentTitles {
		basename := fmt.Sprintf("%s_%d", user.Callsign, i+1)
		zipped, err := zipPEM(user.Cert, basename+".pem")
		if err != nil {
			logger.FromContext(r.Context()).Errorln("cannot zip pem:", err)
			http.Error(w, "cannot build fragment", http.StatusInternalServerError)
			return
		}
		fragments = append(fragments, InstructionFragment{
			Title:    title,
			Filename: basename + ".zip",
			Data:     "data:application/zip;base64," + base64.StdEncoding.EncodeToString(zipped),
		})
	}
	writeJSON(w, r, fragments)
}

// clientInfo returns the per-user markdown for the requested language,
// with the caller's callsign and the deployment label interpolated.
// Languages without a template fall back to the default language.
func (a *API) clientInfo(w http.ResponseWriter, r *http.Request) {
	language := mux.Vars(r)["language"]
	user, ok := a.readUser(w, r)
	if !ok {
		return
	}

	tmpl, ok := a.product.InfoMarkdown[language]
	if !ok {
		tmpl = a.product.InfoMarkdown[a.product.DefaultLanguage]
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, InfoData{
		Callsign:   user.Callsign,
		Deployment: a.manifest.Deployment,
	})
	if err != nil {
		logger.FromContext(r.Context()).Errorln("cannot render info markdown:", err)
		http.Error(w, "cannot render info", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write(buf.Bytes())
}
