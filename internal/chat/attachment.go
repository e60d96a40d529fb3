package chat

import (
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/teacherbob/teacherbob/internal/errors"
)

// PDFMime is the only attachment type accepted.
const PDFMime = "application/pdf"

// InspectPDF returns attachment metadata for path if its content is a PDF.
// ok is false for any other kind of file. err is set only when the file could
// not be read at all.
func InspectPDF(path string) (att Attachment, ok bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return Attachment{}, false, errors.AttachmentUnreadable(path, err)
	}
	if info.IsDir() {
		return Attachment{}, false, nil
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return Attachment{}, false, errors.AttachmentUnreadable(path, err)
	}
	if !mtype.Is(PDFMime) {
		return Attachment{}, false, nil
	}

	return Attachment{
		Name: filepath.Base(path),
		Path: path,
		Size: info.Size(),
	}, true, nil
}
