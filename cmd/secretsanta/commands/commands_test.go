package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const employeesCSV = "Employee_Name,Employee_EmailID\n" +
	"Alice,a@test.com\n" +
	"Bob,b@test.com\n" +
	"Cara,c@test.com\n"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeEmployees(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "employees.csv")
	require.NoError(t, os.WriteFile(path, []byte(employeesCSV), 0o600))
	return dir, path
}

func TestDrawThenVerify(t *testing.T) {
	dir, employees := writeEmployees(t)
	outPath := filepath.Join(dir, "out.csv")

	out, err := run(t, "draw", "--participants", employees, "--out", outPath, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "Fingerprint: ")
	require.Contains(t, out, "Wrote 3 pairings to "+outPath)

	out, err = run(t, "verify", "--participants", employees, "--in", outPath, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "OK")
}

func TestDraw_SeedIsReproducible(t *testing.T) {
	dir, employees := writeEmployees(t)
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	_, err := run(t, "draw", "--participants", employees, "--out", first, "--seed", "office-2026", "--log-level", "error")
	require.NoError(t, err)
	_, err = run(t, "draw", "--participants", employees, "--out", second, "--seed", "office-2026", "--log-level", "error")
	require.NoError(t, err)

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestDraw_SealedThenReveal(t *testing.T) {
	dir, employees := writeEmployees(t)
	outPath := filepath.Join(dir, "out.csv.enc")

	out, err := run(t, "draw", "--participants", employees, "--out", outPath, "--seal", "-p", "Correct-Horse-1!", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "sealed pairings")

	out, err = run(t, "reveal", "--in", outPath, "--email", "a@test.com", "-p", "Correct-Horse-1!", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "Alice <a@test.com> gives to ")

	_, err = run(t, "reveal", "--in", outPath, "--email", "a@test.com", "--log-level", "error")
	require.Error(t, err)
}

func TestDraw_PassphraseFromEnv(t *testing.T) {
	dir, employees := writeEmployees(t)
	outPath := filepath.Join(dir, "out.csv.enc")
	t.Setenv("SECRETSANTA_PASSPHRASE", "Correct-Horse-1!")

	_, err := run(t, "draw", "--participants", employees, "--out", outPath, "--seal", "--log-level", "error")
	require.NoError(t, err)

	out, err := run(t, "reveal", "--in", outPath, "--email", "b@test.com", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "Bob <b@test.com> gives to ")
}

func TestDraw_NotifyNeedsURL(t *testing.T) {
	dir, employees := writeEmployees(t)

	_, err := run(t, "draw", "--participants", employees, "--out", filepath.Join(dir, "o.csv"), "--notify", "--log-level", "error")
	require.ErrorContains(t, err, "--notify-url")
}

func TestDraw_RequiresFlags(t *testing.T) {
	_, err := run(t, "draw")
	require.Error(t, err)
}
