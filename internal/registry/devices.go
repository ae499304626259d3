package registry

import (
	_ "github.com/prepad/prepad/device/ally"    // Register ASUS Ally normalizer
	_ "github.com/prepad/prepad/device/xbox360" // Register Xbox 360 normalizer
)
