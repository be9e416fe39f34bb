package clipboard

import (
	"fmt"

	"github.com/andareed/memoria/logging"
	"github.com/atotto/clipboard"
)

// system is swapped out in tests.
var system = clipboard.WriteAll

// Copy puts text on the system clipboard, falling back to an OSC52 escape sequence
// when no clipboard utility is available (ssh sessions, bare consoles).
func Copy(text string) error {
	err := system(text)
	if err == nil {
		logging.Infof("Clipboard: copied %d bytes", len(text))
		return nil
	}
	logging.Warnf("Clipboard: system clipboard failed: %v", err)
	if oscErr := copyOSC52(text); oscErr != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
