package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMainEnv makes the re-executed test binary call main instead of testing.
const runMainEnv = "RUN_CPF_VALIDATOR_MAIN"

func TestConfigErrorIsFatal(t *testing.T) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestConfigErrorIsFatal$")
	cmd.Env = append(os.Environ(),
		runMainEnv+"=1",
		"CPF_VALIDATOR_OBSERVABILITY__LOGGING__LEVEL=loud",
	)

	out, err := cmd.Output()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), `"level":"fatal"`)
	assert.Contains(t, string(out), `"message":"failed to load config"`)
	assert.Contains(t, string(out), "invalid logging level: loud")
}
