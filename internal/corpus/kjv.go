//go:build !nokjv

package corpus

import _ "embed"

//go:embed translations/kjv.txt.zst
var kjvText []byte

func init() {
	register("kjv", "King James Version (sample)", kjvText)
}
