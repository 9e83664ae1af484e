package pkgrouter

import (
	"mime"
	"net/http"
	"strconv"
)

// File is a handler response written as a download instead of a JSON envelope.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func writeFile(w http.ResponseWriter, f File) {
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	if f.Name != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}
