package telegraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
)

// DefaultMediaType is used when a file extension has no known MIME type
const DefaultMediaType = "image/jpeg"

var errEmptyUpload = errors.New("no files to upload")

// uploadError is the failure shape of the upload endpoint
type uploadError struct {
	Error string `json:"error"`
}

// Upload sends local files to the media endpoint and returns their paths in
// the same order. Each multipart part is named after its index.
func (c *Client) Upload(ctx context.Context, paths ...string) ([]Media, error) {
	if len(paths) == 0 {
		return nil, ioError(opUpload, errEmptyUpload)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i, path := range paths {
		if err := addFilePart(w, i, path); err != nil {
			return nil, ioError(opUpload, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, ioError(opUpload, err)
	}

	c.logger.Debug().Int("files", len(paths)).Int("bytes", buf.Len()).Msg("Uploading media")

	body, status, err := c.post(ctx, opUpload, c.uploadURL, w.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	return decodeUpload(body, status)
}

func addFilePart(w *multipart.Writer, index int, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%d"; filename="%d"`, index, index))
	h.Set("Content-Type", MediaType(path))

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// MediaType infers the MIME type of a file from its extension
func MediaType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return DefaultMediaType
}

// decodeUpload parses either a list of media or an {"error": ...} object
func decodeUpload(body []byte, status int) ([]Media, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var media []Media
		if err := json.Unmarshal(trimmed, &media); err != nil {
			return nil, decodeError(opUpload, err)
		}
		return media, nil
	}

	var ue uploadError
	if err := json.Unmarshal(trimmed, &ue); err != nil {
		if status >= 300 {
			return nil, &Error{Kind: KindTransport, Op: opUpload, StatusCode: status,
				Err: fmt.Errorf("unexpected response: %s", truncate(body, 200))}
		}
		return nil, decodeError(opUpload, err)
	}
	if ue.Error == "" {
		return nil, decodeError(opUpload, errMissingError)
	}
	return nil, apiError(opUpload, ue.Error)
}
