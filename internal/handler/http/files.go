package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/utils"
)

// serveUpload streams a stored attachment inline. The filename is resolved
// strictly inside the upload directory; anything else is a 404.
func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, false)
}

// downloadUpload streams a stored attachment as a forced download. A file
// that is not on disk redirects to the listing with a warning.
func (h *Handler) downloadUpload(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, true)
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, asAttachment bool) {
	log := logger.FromRequest(r)

	filename := chi.URLParam(r, "filename")

	f, err := h.files.Open(filename)
	if err != nil {
		log.Debug().Err(err).Str("filename", filename).Msg("attachment not served")
		if asAttachment {
			// A missing download sends the user back to the listing
			// with a warning.
			h.failRequest(w, r, err, "/")
			return
		}
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	defer f.Close()

	if asAttachment {
		w.Header().Set("Content-Disposition", `attachment; filename="`+utils.SanitizeFilename(filename)+`"`)
	}

	// ServeContent picks the Content-Type from the file extension and
	// handles range requests.
	http.ServeContent(w, r, filename, time.Time{}, f)
}
