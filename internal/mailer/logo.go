// internal/mailer/logo.go
package mailer

import (
	"mime"
	"os"
	"path/filepath"
)

// LoadLogo reads the shared logo asset and wraps it as an inline
// attachment referenced by LogoContentID.
func LoadLogo(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "image/png"
	}
	return &Attachment{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		ContentID:   LogoContentID,
		Content:     data,
	}, nil
}
