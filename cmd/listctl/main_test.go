package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amartos/sccroll/internal/core"
	"github.com/amartos/sccroll/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = `# build, pad and inspect
APPEND l a b c
INSERT l 5 x
PRINT l
POP l -1
FROB l
PALINDROME l
`

func TestRunLines(t *testing.T) {
	handler := core.NewCommandHandler(core.NewSession())
	var out bytes.Buffer
	err := runLines(handler, utils.GetLogger(), strings.NewReader(script), &out, "")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"OK 3",
		"OK 6",
		"OK (a, b, c, _, _, x)",
		"OK x",
		"ERROR unknown command: FROB",
		"OK false",
	}, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("PUSH l a\nPUSH l b\nPRINT l ;\n"), 0644))
	configFile := filepath.Join(dir, "listctl.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("separator: \" ; \"\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "--config", configFile, path})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "OK 1\nOK 2\nOK (b;a)\n", out.String())

	t.Run("repl prompts", func(t *testing.T) {
		out.Reset()
		rootCmd.SetIn(strings.NewReader("APPEND r a\n"))
		rootCmd.SetArgs([]string{"repl", "--config", configFile})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), ">> OK 1\n>> ")
	})
}
