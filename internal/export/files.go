package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/petpalhq/petpal/internal/services"
)

const timestampLayout = "20060102150405"

// Result describes a written export file.
type Result struct {
	Success  bool   `json:"success"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	Format   string `json:"format"`
}

// Store writes rendered exports under <root>/exports and reports them with
// URLs below baseURL.
type Store struct {
	root    string
	baseURL string
}

func NewStore(root, baseURL string) *Store {
	return &Store{root: root, baseURL: baseURL}
}

// Write renders the export in its requested format and persists it under a
// timestamped per-pet filename.
func (store *Store) Write(data services.PetExport) (Result, error) {
	var (
		content   []byte
		extension string
	)
	switch data.Format {
	case services.ExportFormatPDF:
		content = RenderPDFPlaceholder(data)
		extension = "pdf"
	default:
		content = RenderCSV(data)
		extension = "csv"
	}

	directory := filepath.Join(store.root, "exports")
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return Result{}, fmt.Errorf("create exports directory: %w", err)
	}

	fileName := fmt.Sprintf("pet_%d_%s.%s", data.Pet.ID, data.GeneratedAt.Format(timestampLayout), extension)
	if err := os.WriteFile(filepath.Join(directory, fileName), content, 0o644); err != nil {
		return Result{}, fmt.Errorf("write export file: %w", err)
	}

	return Result{
		Success:  true,
		FileURL:  store.baseURL + "/exports/" + fileName,
		FileName: fileName,
		Format:   string(data.Format),
	}, nil
}
