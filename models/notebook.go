package models

// NotebookConfig captures one spiral notebook configuration from the
// product configurator. Enumerated fields are validated by the catalog
// service before pricing.
type NotebookConfig struct {
	Orientation     string  `json:"orientation"`
	Format          string  `json:"format"`
	CustomWidth     float64 `json:"custom_width,omitempty"`
	CustomHeight    float64 `json:"custom_height,omitempty"`
	BindingColor    string  `json:"binding_color"`
	BindingPosition string  `json:"binding_position"`
	Sheets          string  `json:"sheets"`
	InteriorPaper   string  `json:"interior_paper"`
	CoverEnabled    bool    `json:"cover_enabled"`
	CoverPaper      string  `json:"cover_paper"`
	CoverFinish     string  `json:"cover_finish"`
	Quantity        int     `json:"quantity"`
}
