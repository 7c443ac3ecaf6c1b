package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/blissart/internal/paint"
)

type ExportData struct {
	RenderMetadata
	Bands []string `json:"bands"`
	Rows  []string `json:"rows"`
}

// ExportJSON writes the render metadata together with the painted rows.
func ExportJSON(w io.Writer, meta *RenderMetadata, canvas *paint.Canvas) error {
	data := ExportData{
		RenderMetadata: *meta,
		Bands:          make([]string, len(canvas.Bands)),
		Rows:           canvas.Lines(),
	}
	for i, b := range canvas.Bands {
		data.Bands[i] = b.String()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
