package screen

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"serialui/terminal"
)

// Layout file structure (TOML):
//
//	[[screen]]
//	name = "dashboard"
//
//	  [[screen.element]]
//	  type = "box"
//	  name = "frame"
//	  color = "WHITE"
//	  x = 0
//	  y = 0
//	  w = 80
//	  h = 24
type fileConfig struct {
	Screens []screenConfig `mapstructure:"screen"`
}

type screenConfig struct {
	Name     string          `mapstructure:"name"`
	Elements []elementConfig `mapstructure:"element"`
}

type elementConfig struct {
	Type    string   `mapstructure:"type"`
	Name    string   `mapstructure:"name"`
	Color   string   `mapstructure:"color"`
	Layer   int      `mapstructure:"layer"`
	X       int      `mapstructure:"x"`
	Y       int      `mapstructure:"y"`
	W       int      `mapstructure:"w"`
	H       int      `mapstructure:"h"`
	X1      int      `mapstructure:"x1"`
	Y1      int      `mapstructure:"y1"`
	X2      int      `mapstructure:"x2"`
	Y2      int      `mapstructure:"y2"`
	Content string   `mapstructure:"content"`
	Lines   []string `mapstructure:"lines"`
}

// Load reads screen definitions from a TOML layout file. Unknown color
// names fall back to white and unknown element types are skipped, so a
// layout authored against a newer element set still renders what it
// can. Structural problems (unreadable file, malformed TOML) are
// errors.
func Load(path string) ([]Screen, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("unmarshaling layout: %w", err)
	}

	screens := make([]Screen, 0, len(fc.Screens))
	for _, sc := range fc.Screens {
		s := Screen{Name: sc.Name}
		for _, ec := range sc.Elements {
			shape, ok := ec.shape()
			if !ok {
				continue
			}
			s.Elements = append(s.Elements, Element{
				Name:  ec.Name,
				Layer: ec.Layer,
				Shape: shape,
			})
		}
		screens = append(screens, s)
	}
	return screens, nil
}

func (ec elementConfig) shape() (terminal.Shape, bool) {
	color, ok := terminal.ColorNamed(ec.Color)
	if !ok {
		color = terminal.White
	}
	switch strings.ToUpper(ec.Type) {
	case "BOX":
		return terminal.Box{X: ec.X, Y: ec.Y, W: ec.W, H: ec.H, Color: color}, true
	case "TEXT":
		return terminal.Text{X: ec.X, Y: ec.Y, Content: ec.Content, Color: color}, true
	case "LINE":
		return terminal.Line{X1: ec.X1, Y1: ec.Y1, X2: ec.X2, Y2: ec.Y2, Color: color}, true
	case "FREEHAND":
		return terminal.Freehand{X: ec.X, Y: ec.Y, Rows: ec.Lines, Color: color}, true
	}
	return nil, false
}
