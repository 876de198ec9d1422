package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes the example config to path. Without overwrite,
// an existing file is an error.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

const configTemplate = `# rollctl configuration

# Default aggregate function: sum | avg | max | min.
# Leave unset to print every roll.
# aggregate = "sum"

# Fix the random seed for reproducible runs. 0 means time-seeded.
seed = 0

log_level = "info"

# Named token groups. A preset name on the command line expands to its
# tokens: rollctl attack  ==  rollctl 2d6 d8
[presets]
attack = ["2d6", "d8"]
save = ["d20"]
`
