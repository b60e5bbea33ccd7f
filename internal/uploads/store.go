// Package uploads is the disk-backed image store for metamorphosis photos.
package uploads

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
)

const maxImageSize = 5 << 20 // 5MB

type Store struct {
	root string // filesystem root, served at /uploads
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, "metamorphoses"), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{root: root}, nil
}

// Save writes the uploaded image under subdir with a random filename and
// returns its public /uploads path. Only image content types within the size
// limit are accepted; a rejected file is the client's fault and reports as
// invalid input, not a server error.
func (s *Store) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > maxImageSize {
		return "", httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Plik jest za duży (maksymalnie 5MB)")
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Tylko pliki obrazów są dozwolone!")
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(s.root, subdir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}

	return "/uploads/" + subdir + "/" + name, nil
}

// Remove deletes the file behind a public /uploads path. Missing files are
// ignored; the row is the source of truth, the file is derived state.
func (s *Store) Remove(publicPath string) {
	rel := strings.TrimPrefix(publicPath, "/uploads/")
	if rel == publicPath || rel == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove upload %s: %v", publicPath, err)
	}
}

func (s *Store) Root() string {
	return s.root
}
