// Package render defines the contract between the sheet model and the
// output surfaces, plus the registry surfaces are resolved through.
package render

import (
	"context"

	"github.com/didactidigital/showadvance/pkg/sheet"
)

// Renderer converts a sheet model plus a form snapshot into one output
// surface (HTML markup, PDF bytes).
type Renderer interface {
	Name() string
	ContentType() string
	// FileExtension is the suffix, without the dot, used when the output is
	// offered as a download.
	FileExtension() string
	Render(ctx context.Context, model *sheet.Model, options Options) ([]byte, error)
}
