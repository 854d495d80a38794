package font

var (
	// The list of available fonts.
	availableFonts []*Font
)

// DefaultName is the name of the built-in font returned by Default.
const DefaultName = "8x8"

// Register adds f to the list of available fonts. Fonts without a name
// cannot be registered.
func Register(f *Font) {
	if f == nil || f.Name == "" {
		return
	}
	availableFonts = append(availableFonts, f)
}

// FindByName looks up a font instance by name. If the font is not found then
// the function returns nil.
func FindByName(name string) *Font {
	for _, f := range availableFonts {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// Default returns the built-in font or, if it has been removed, the first
// registered font.
func Default() *Font {
	if f := FindByName(DefaultName); f != nil {
		return f
	}
	if len(availableFonts) != 0 {
		return availableFonts[0]
	}
	return nil
}
