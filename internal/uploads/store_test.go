package uploads

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
)

func fileHeader(t *testing.T, filename, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(body); err != nil {
		t.Fatalf("write part: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(16 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestSaveAndRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	fh := fileHeader(t, "before.png", "image/png", []byte("not-really-a-png"))
	publicPath, err := store.Save(fh, "metamorphoses")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(publicPath, "/uploads/metamorphoses/") {
		t.Errorf("unexpected public path %q", publicPath)
	}

	onDisk := filepath.Join(store.Root(), strings.TrimPrefix(publicPath, "/uploads/"))
	if _, err := os.Stat(onDisk); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	store.Remove(publicPath)
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Errorf("file still present after Remove")
	}

	// Removing again is a no-op.
	store.Remove(publicPath)
}

func TestSaveRejectsNonImage(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	fh := fileHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	if _, err := store.Save(fh, "metamorphoses"); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("non-image upload must be invalid_input, got %v", err)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	fh := fileHeader(t, "huge.jpg", "image/jpeg", make([]byte, maxImageSize+1))
	if _, err := store.Save(fh, "metamorphoses"); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("oversized upload must be invalid_input, got %v", err)
	}
}
