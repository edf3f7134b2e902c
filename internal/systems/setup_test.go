package systems

import (
	"os"
	"testing"

	"github.com/rian010194/shadows-of-the-dungeon/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}
