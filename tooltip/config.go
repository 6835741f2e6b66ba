// Package tooltip coordinates hover-triggered overlay visibility and
// placement for Fyne. A Manager owns a fixed overlay layer; Area widgets
// wrap trigger elements and feed it their hover state. Overlay content is
// mounted off-screen first so its real size is known before the placement
// engine picks the final position.
package tooltip

import "github.com/andrewthehan/hovertip/geometry"

// Config controls how a Manager reacts to hover changes.
type Config struct {
	Margin        float32 `json:"margin"`
	ShowOnHover   bool    `json:"show_on_hover"`
	HideOnNoHover bool    `json:"hide_on_no_hover"`
}

// DefaultConfig enables both hover reactions with the default margin.
func DefaultConfig() Config {
	return Config{
		Margin:        geometry.DefaultMargin,
		ShowOnHover:   true,
		HideOnNoHover: true,
	}
}

func (c *Config) FillMissingDefaults() {
	if c.Margin <= 0 {
		c.Margin = geometry.DefaultMargin
	}
}
