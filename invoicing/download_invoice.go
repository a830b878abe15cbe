package invoicing

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// DownloadInvoice streams the stored invoice PDF directly. This is the
// fallback retrieval path used when signed URLs cannot be issued.
//
//encore:api auth raw path=/v1/submissions/:id/invoice/document method=GET
func (s *Service) DownloadInvoice(w http.ResponseWriter, req *http.Request) {
	id, idErr := submissionIDFromPath(req.URL.Path)
	if idErr != nil {
		errs.HTTPError(w, idErr)
		return
	}

	uid, ok := auth.UserID()
	if !ok {
		errs.HTTPError(w, &errs.Error{Code: errs.Unauthenticated, Message: "authentication required"})
		return
	}
	caller, parseErr := uuid.Parse(string(uid))
	if parseErr != nil {
		errs.HTTPError(w, &errs.Error{Code: errs.Unauthenticated, Message: "invalid caller identity"})
		return
	}

	pdf, invoiceNumber, err := s.generation.DownloadArtifact(req.Context(), id, caller)
	if err != nil {
		rlog.Error("failed to stream invoice", "error", err, "submission_id", id)
		errs.HTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", invoiceNumber+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	if _, err := w.Write(pdf); err != nil {
		rlog.Error("failed to write invoice response", "error", err, "submission_id", id)
	}
}

// submissionIDFromPath extracts the :id segment from
// /v1/submissions/:id/invoice/document.
func submissionIDFromPath(path string) (int64, *errs.Error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == "submissions" && i+1 < len(parts) {
			id, err := strconv.ParseInt(parts[i+1], 10, 64)
			if err != nil || id <= 0 {
				return 0, &errs.Error{Code: errs.InvalidArgument, Message: "invalid submission ID"}
			}
			return id, nil
		}
	}
	return 0, &errs.Error{Code: errs.InvalidArgument, Message: "invalid submission ID"}
}
