package assets

import "golang.org/x/image/font/gofont/gobold"

// FontName identifies the built-in label font in logs and errors.
const FontName = "embedded:gobold"

// FontTTF is the label font used when no font file is configured.
var FontTTF = gobold.TTF
