package tests

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildFastvaultBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "fastvault")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build fastvault binary: %v\n%s", err, string(out))
	}
	return binPath
}

func runFastvault(t *testing.T, binPath, vaultPath string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--vault", vaultPath}, args...)
	cmd := exec.Command(binPath, allArgs...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run fastvault command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func initVault(t *testing.T, binPath, vaultPath string) {
	t.Helper()
	_, stderr, exit := runFastvault(t, binPath, vaultPath, "init")
	if exit != 0 {
		t.Fatalf("init vault failed: exit=%d stderr=%s", exit, stderr)
	}
}

func TestCLIFastingFlow(t *testing.T) {
	binPath := buildFastvaultBinary(t)
	vaultPath := filepath.Join(t.TempDir(), "vault")
	initVault(t, binPath, vaultPath)

	_, stderr, exit := runFastvault(t, binPath, vaultPath,
		"profile", "set",
		"--name", "Sam",
		"--weight", "80",
		"--height", "180",
		"--age", "30",
		"--gender", "male",
		"--activity", "moderate",
	)
	if exit != 0 {
		t.Fatalf("profile set failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit := runFastvault(t, binPath, vaultPath, "fast", "start", "--type", "16-8")
	if exit != 0 {
		t.Fatalf("fast start failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Started") {
		t.Fatalf("expected start confirmation, got: %s", stdout)
	}

	stdout, _, exit = runFastvault(t, binPath, vaultPath, "fast", "status")
	if exit != 0 {
		t.Fatalf("fast status failed: exit=%d", exit)
	}
	if !strings.Contains(stdout, "Fasting for") || !strings.Contains(stdout, "Phase:") {
		t.Fatalf("expected live status output, got: %s", stdout)
	}

	stdout, stderr, exit = runFastvault(t, binPath, vaultPath, "fast", "end")
	if exit != 0 {
		t.Fatalf("fast end failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Fasted") {
		t.Fatalf("expected end summary, got: %s", stdout)
	}

	stdout, _, exit = runFastvault(t, binPath, vaultPath, "fast", "list")
	if exit != 0 {
		t.Fatalf("fast list failed: exit=%d", exit)
	}
	if len(strings.Split(strings.TrimSpace(stdout), "\n")) != 2 {
		t.Fatalf("expected header plus one fast, got: %s", stdout)
	}
}

func TestCLIDoubleStartRejected(t *testing.T) {
	binPath := buildFastvaultBinary(t)
	vaultPath := filepath.Join(t.TempDir(), "vault")
	initVault(t, binPath, vaultPath)

	_, stderr, exit := runFastvault(t, binPath, vaultPath, "fast", "start")
	if exit != 0 {
		t.Fatalf("fast start failed: exit=%d stderr=%s", exit, stderr)
	}
	_, stderr, exit = runFastvault(t, binPath, vaultPath, "fast", "start", "--hours", "24")
	if exit == 0 {
		t.Fatalf("expected non-zero exit for double start")
	}
	if !strings.Contains(stderr, "already") {
		t.Fatalf("expected already-active error, got: %s", stderr)
	}
}

func TestCLIEndWithoutStartRejected(t *testing.T) {
	binPath := buildFastvaultBinary(t)
	vaultPath := filepath.Join(t.TempDir(), "vault")
	initVault(t, binPath, vaultPath)

	_, stderr, exit := runFastvault(t, binPath, vaultPath, "fast", "end")
	if exit == 0 {
		t.Fatalf("expected non-zero exit when ending an idle fast")
	}
	if !strings.Contains(stderr, "no active fast") {
		t.Fatalf("expected not-active error, got: %s", stderr)
	}
}

func TestCLIProgressLifecycle(t *testing.T) {
	binPath := buildFastvaultBinary(t)
	vaultPath := filepath.Join(t.TempDir(), "vault")
	initVault(t, binPath, vaultPath)

	stdout, stderr, exit := runFastvault(t, binPath, vaultPath,
		"progress", "add", "--weight", "80.5", "--note", "day one")
	if exit != 0 {
		t.Fatalf("progress add failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Added progress entry") {
		t.Fatalf("expected add confirmation, got: %s", stdout)
	}
	id := strings.Fields(stdout)[3]

	stdout, _, exit = runFastvault(t, binPath, vaultPath, "progress", "list")
	if exit != 0 {
		t.Fatalf("progress list failed: exit=%d", exit)
	}
	if !strings.Contains(stdout, "80.5") || !strings.Contains(stdout, "day one") {
		t.Fatalf("expected entry in listing, got: %s", stdout)
	}

	_, stderr, exit = runFastvault(t, binPath, vaultPath, "progress", "delete", id)
	if exit != 0 {
		t.Fatalf("progress delete failed: exit=%d stderr=%s", exit, stderr)
	}
	stdout, _, _ = runFastvault(t, binPath, vaultPath, "progress", "list")
	if strings.Contains(stdout, "day one") {
		t.Fatalf("expected entry removed, got: %s", stdout)
	}
}

func TestCLIProgressRejectsFutureDate(t *testing.T) {
	binPath := buildFastvaultBinary(t)
	vaultPath := filepath.Join(t.TempDir(), "vault")
	initVault(t, binPath, vaultPath)

	_, stderr, exit := runFastvault(t, binPath, vaultPath,
		"progress", "add", "--weight", "80", "--date", "2999-01-01")
	if exit == 0 {
		t.Fatalf("expected non-zero exit for future date")
	}
	if !strings.Contains(stderr, "in the future") {
		t.Fatalf("expected future-date error, got: %s", stderr)
	}
}

func TestCLIConfigRoundTrip(t *testing.T) {
	binPath := buildFastvaultBinary(t)
	vaultPath := filepath.Join(t.TempDir(), "vault")
	initVault(t, binPath, vaultPath)

	_, stderr, exit := runFastvault(t, binPath, vaultPath, "config", "set", "weight-unit", "lbs")
	if exit != 0 {
		t.Fatalf("config set failed: exit=%d stderr=%s", exit, stderr)
	}
	stdout, _, exit := runFastvault(t, binPath, vaultPath, "config", "show")
	if exit != 0 {
		t.Fatalf("config show failed: exit=%d", exit)
	}
	if !strings.Contains(stdout, "weight-unit\tlbs") {
		t.Fatalf("expected lbs unit in config, got: %s", stdout)
	}

	_, _, exit = runFastvault(t, binPath, vaultPath, "config", "set", "theme", "neon")
	if exit == 0 {
		t.Fatalf("expected invalid theme to be rejected")
	}
}

func TestCLISQLiteBackend(t *testing.T) {
	binPath := buildFastvaultBinary(t)
	vaultPath := filepath.Join(t.TempDir(), "vault")

	run := func(args ...string) (string, string, int) {
		all := append([]string{"--store", "sqlite"}, args...)
		return runFastvault(t, binPath, vaultPath, all...)
	}

	_, stderr, exit := run("init")
	if exit != 0 {
		t.Fatalf("sqlite init failed: exit=%d stderr=%s", exit, stderr)
	}
	_, stderr, exit = run("fast", "start", "--hours", "20")
	if exit != 0 {
		t.Fatalf("sqlite fast start failed: exit=%d stderr=%s", exit, stderr)
	}
	stdout, _, exit := run("fast", "status")
	if exit != 0 {
		t.Fatalf("sqlite fast status failed: exit=%d", exit)
	}
	if !strings.Contains(stdout, "goal 20 h") {
		t.Fatalf("expected 20h goal in status, got: %s", stdout)
	}
}
