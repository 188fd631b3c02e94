package export

import (
	"fmt"

	"github.com/petpalhq/petpal/internal/services"
)

// RenderPDFPlaceholder stands in for real PDF generation. The file is a
// plain-text stub until a PDF renderer is wired up.
// TODO: render a real document once a PDF library is chosen.
func RenderPDFPlaceholder(data services.PetExport) []byte {
	return []byte(fmt.Sprintf("PDF Export for %s generated on %s\n",
		data.Pet.Name, data.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))
}
