package prometheus

import (
	"fmt"
	"io"
	"net/http"

	"github.com/golang/gddo/httputil"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/runtime"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	contentTypePlainText = "text/plain"
	contentTypeJSON      = "application/json"
)

type serviceStatus struct {
	Name   string `json:"service"`
	Status bool   `json:"status"`
	Err    string `json:"error"`
}

// healthReport is the /healthz payload, rendered as text or JSON depending on the Accept header.
type healthReport struct {
	Services []serviceStatus `json:"data"`
}

func newHealthReport(statuses []runtime.ServiceStatus) healthReport {
	report := healthReport{Services: make([]serviceStatus, 0, len(statuses))}
	for _, st := range statuses {
		s := serviceStatus{Name: st.Name, Status: st.Err == nil}
		if st.Err != nil {
			s.Err = st.Err.Error()
		}
		report.Services = append(report.Services, s)
	}
	return report
}

func (r healthReport) healthy() bool {
	for _, s := range r.Services {
		if !s.Status {
			return false
		}
	}
	return true
}

func (r healthReport) writeText(w io.Writer) error {
	for _, s := range r.Services {
		status := "OK"
		if !s.Status {
			status = "ERROR, " + s.Err
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", s.Name, status); err != nil {
			return errors.Wrap(err, "could not write response body")
		}
	}
	return nil
}

// negotiateContentType parses the Accept header and returns the preferred content type.
func negotiateContentType(r *http.Request) string {
	return httputil.NegotiateContentType(r, []string{contentTypePlainText, contentTypeJSON}, contentTypePlainText)
}

// writeReport writes the report with the status code in the negotiated encoding.
func writeReport(w http.ResponseWriter, r *http.Request, code int, report healthReport) error {
	contentType := negotiateContentType(r)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	if contentType == contentTypeJSON {
		return json.NewEncoder(w).Encode(report)
	}
	return report.writeText(w)
}
