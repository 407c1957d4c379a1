package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	ProductsDir = "products"
	AvatarsDir  = "avatars"
)

// Store keeps uploaded files under a fixed root, one subdirectory per kind.
// File names are random so client-supplied names never touch the disk.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: root}
}

// Save writes the uploaded file under dir with a generated name, keeping the
// original extension, and returns the name.
func (s *Store) Save(dir string, file *multipart.FileHeader) (string, error) {
	root := filepath.Join(s.Root, dir)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(root, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *Store) Remove(dir, name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.Root, dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the on-disk location of a stored file.
func (s *Store) Path(dir, name string) string {
	return filepath.Join(s.Root, dir, name)
}
