package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/petpalhq/petpal/internal/services"
)

var (
	documentExtensions = []string{".pdf", ".doc", ".docx", ".txt", ".jpg", ".jpeg", ".png"}
	imageExtensions    = []string{".jpg", ".jpeg", ".png", ".gif"}
)

// LocalStore keeps uploaded files on disk, one directory per container.
// Containers with "documents" in the name accept document types, every
// other container takes images only.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func allowedExtensions(container string) []string {
	if strings.Contains(container, "documents") {
		return documentExtensions
	}
	return imageExtensions
}

// Save stores the content under a fresh random name, keeping only the
// original extension. It returns the stored file name.
func (store *LocalStore) Save(container, originalName string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: uploaded file is empty", services.ErrInvalidInput)
	}

	extension := strings.ToLower(filepath.Ext(originalName))
	allowed := allowedExtensions(container)
	matched := false
	for _, candidate := range allowed {
		if extension == candidate {
			matched = true
			break
		}
	}
	if !matched {
		return "", fmt.Errorf("%w: file type %q is not allowed (allowed: %s)",
			services.ErrInvalidInput, extension, strings.Join(allowed, ", "))
	}

	directory := filepath.Join(store.root, container)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	fileName := uuid.NewString() + extension
	if err := os.WriteFile(filepath.Join(directory, fileName), content, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return fileName, nil
}

// Delete removes a stored file. Missing files are not an error.
func (store *LocalStore) Delete(container, fileName string) error {
	if fileName == "" {
		return nil
	}
	err := os.Remove(filepath.Join(store.root, container, fileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}

func (store *LocalStore) URLFor(container, fileName string) string {
	if fileName == "" {
		return ""
	}
	return store.baseURL + "/" + container + "/" + fileName
}
