package scaffold

// Plan holds the paths derived from a Request.
type Plan struct {
	Base        string
	App         string
	CSS         string
	Fonts       string
	Images      string
	JS          string
	Sass        string
	EntryFile   string
	Dist        string
	Manifest    string
	BuildConfig string
}

type entryKind int

const (
	dirEntry entryKind = iota
	fileEntry
)

type planEntry struct {
	step string
	path string
	kind entryKind
}

// entries lists the tree in creation order. The manifest and build config
// are written separately.
func (p Plan) entries() []planEntry {
	return []planEntry{
		{StepAppFolder, p.App, dirEntry},
		{StepCSSFolder, p.CSS, dirEntry},
		{StepFontsFolder, p.Fonts, dirEntry},
		{StepImagesFolder, p.Images, dirEntry},
		{StepJSFolder, p.JS, dirEntry},
		{StepSassFolder, p.Sass, dirEntry},
		{StepEntryFile, p.EntryFile, fileEntry},
		{StepDistFolder, p.Dist, dirEntry},
	}
}

// Paths returns every path a successful scaffold leaves behind, in creation
// order, excluding the optional build config.
func (p Plan) Paths() []string {
	var paths []string
	for _, e := range p.entries() {
		paths = append(paths, e.path)
	}
	return append(paths, p.Manifest)
}
