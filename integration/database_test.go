//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const fixtureSource = `// Optimized for low memory
uint8_t counter = 0;
const char* label = "node";
Serial.println(F("boot"));
StaticJsonDocument<200> doc;
`

// TestMemscopeWithMySQL tests the memscope CLI with a MySQL history backend.
func TestMemscopeWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "memscope",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/memscope?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("MEMSCOPE_HISTORY_BACKEND", "mysql")
	_ = os.Setenv("MEMSCOPE_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("MEMSCOPE_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("MEMSCOPE_HISTORY_DB_CONNECT") }()

	runBackendScenario(t)
}

// TestMemscopeWithPostgres tests the memscope CLI with a PostgreSQL history backend.
func TestMemscopeWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("MEMSCOPE_HISTORY_BACKEND", "postgresql")
	_ = os.Setenv("MEMSCOPE_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("MEMSCOPE_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("MEMSCOPE_HISTORY_DB_CONNECT") }()

	runBackendScenario(t)
}

// runBackendScenario drives a full clear-score-compare-status cycle against
// whichever backend the environment selects.
func runBackendScenario(t *testing.T) {
	original := writeFixture(t, "original.ino", "int counter = 0;\nString label = \"node\";\nStaticJsonDocument<512> doc;\n")
	optimized := writeFixture(t, "optimized.ino", fixtureSource)
	reportDir := t.TempDir()

	// Run memscope history clear
	err := runMemscopeCommand(t, "history", "clear")
	require.NoError(t, err)

	// Run memscope score on the fixture
	err = runMemscopeCommand(t, "score", optimized, "--report-dir", reportDir)
	require.NoError(t, err)

	// Run memscope compare on both fixtures
	err = runMemscopeCommand(t, "compare", original, optimized, "--report-dir", reportDir)
	require.NoError(t, err)

	// Run memscope history status
	err = runMemscopeCommand(t, "history", "status")
	require.NoError(t, err)
}

func runMemscopeCommand(t *testing.T, args ...string) error {
	memscopePath := getMemscopeBinary()
	cmd := exec.Command(memscopePath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
