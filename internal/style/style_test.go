package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressLinesKeepText(t *testing.T) {
	assert.Contains(t, Created("README.md"), "Created")
	assert.Contains(t, Created("README.md"), "README.md")
	assert.Contains(t, Appended("README.md"), "Appended")
	assert.Contains(t, Step("vscode"), "Running strategy:")
	assert.Contains(t, Step("vscode"), "vscode")
}
