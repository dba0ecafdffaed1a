// Package backup exposes an HTTP webhook that snapshots the block rewards database.
package backup

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prysmaticlabs/blockrewards/network/httputil"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("prefix", "backup")

	backupRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blockrewards_db_backups_total",
		Help: "Database backups requested over HTTP, by result.",
	}, []string{"result"})
)

// Exporter writes a copy of the database into outputDir.
type Exporter interface {
	Backup(ctx context.Context, outputDir string, permissionOverride bool) error
}

// Response is returned after a successful backup.
type Response struct {
	OutputDir string `json:"output_dir"`
}

// Handler serves POST requests that snapshot the database into outputDir. The permissionOverride
// query parameter accepts an output directory readable by other users.
func Handler(bk Exporter, outputDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			httputil.HandleError(w, "backup must be requested with POST", http.StatusMethodNotAllowed)
			return
		}
		_, permissionOverride := r.URL.Query()["permissionOverride"]
		log.WithField("outputDir", outputDir).Debug("Creating database backup from HTTP webhook")

		if err := bk.Backup(r.Context(), outputDir, permissionOverride); err != nil {
			backupRequests.WithLabelValues("failed").Inc()
			log.WithError(err).Error("Failed to create backup")
			httputil.HandleError(w, "could not create backup: "+err.Error(), http.StatusInternalServerError)
			return
		}
		backupRequests.WithLabelValues("ok").Inc()
		httputil.WriteJson(w, &Response{OutputDir: outputDir})
	}
}
