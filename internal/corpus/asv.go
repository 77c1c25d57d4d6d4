//go:build !noasv

package corpus

import _ "embed"

//go:embed translations/asv.txt.zst
var asvText []byte

func init() {
	register("asv", "American Standard Version (sample)", asvText)
}
