package config

// File is the root of an overlay configuration file.
type File struct {
	Placement *Placement `yaml:"placement,omitempty"`
	Keys      []Binding  `yaml:"keys,omitempty" validate:"omitempty,dive"`
}

// Rect is a box in terminal cells.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width" validate:"gte=0"`
	Height int `yaml:"height" validate:"gte=0"`
}

// Size is a width and height in terminal cells.
type Size struct {
	Width  int `yaml:"width" validate:"gte=0"`
	Height int `yaml:"height" validate:"gte=0"`
}

// Point is a position in terminal cells.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Placement describes a placement request.
type Placement struct {
	Anchor  Rect   `yaml:"anchor"`
	Origin  *Point `yaml:"origin,omitempty"`
	Content Size   `yaml:"content"`
	// Container is optional; when absent the panel is never repositioned.
	Container *Rect `yaml:"container,omitempty" validate:"omitempty"`

	Preferred string `yaml:"preferred,omitempty" validate:"omitempty,placement"`
	// Fallbacks keeps the YAML distinction between an absent list, which
	// selects the default fallbacks, and an explicit empty list.
	Fallbacks        []string `yaml:"fallbacks" validate:"omitempty,dive,placement"`
	DisableFallbacks bool     `yaml:"disable_fallbacks,omitempty"`

	Gap   int `yaml:"gap,omitempty" validate:"gte=0,lte=1000"`
	Shift int `yaml:"shift,omitempty" validate:"gte=-1000,lte=1000"`

	// Direction forces a reading direction. When empty, Locale decides.
	Direction        string `yaml:"direction,omitempty" validate:"omitempty,oneof=ltr rtl"`
	Locale           string `yaml:"locale,omitempty" validate:"omitempty,locale"`
	AllowOutOfBounds bool   `yaml:"allow_out_of_bounds,omitempty"`
}

// Binding assigns keys to a navigation action in one trap mode. The keys
// replace the action's default keys in that mode.
type Binding struct {
	Mode   string   `yaml:"mode" validate:"required,trapmode"`
	Action string   `yaml:"action" validate:"required,action"`
	Keys   []string `yaml:"keys" validate:"required,min=1,dive,keyspec"`
}
