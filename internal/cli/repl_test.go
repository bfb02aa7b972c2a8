package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, a *App, script ...string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(strings.Join(script, "\n") + "\n"))
	require.NoError(t, a.Run(context.Background(), scanner))
}

func TestRun_QuitAndUnknown(t *testing.T) {
	a, out := newTestApp(newMemStore())

	runScript(t, a,
		"frobnicate",
		"",
		"quit",
	)
	require.Contains(t, out.String(), "Invalid operation name!")
	require.Contains(t, out.String(), "Bye!")
}

func TestRun_EOFEndsLoop(t *testing.T) {
	a, _ := newTestApp(newMemStore())
	scanner := bufio.NewScanner(strings.NewReader("logout\n"))
	require.NoError(t, a.Run(context.Background(), scanner))
}

func TestRun_EndToEndScenario(t *testing.T) {
	a, out := newTestApp(newMemStore())

	runScript(t, a,
		"create_caregiver carol Str0ng!pass",
		"login_caregiver carol Str0ng!pass",
		"add_doses Pfizer 1",
		"upload_availability 03-05-2024",
		"logout",
		"create_patient dan Str0ng!pass",
		"login_patient dan Str0ng!pass",
		"reserve 03-05-2024 Pfizer",
		"show_appointments",
		"logout",
		"create_patient eve Str0ng!pass",
		"login_patient eve Str0ng!pass",
		"reserve 03-05-2024 Pfizer",
		"quit",
	)

	output := out.String()
	require.Contains(t, output, "Created user carol")
	require.Contains(t, output, "Logged in as: carol")
	require.Contains(t, output, "Doses updated!")
	require.Contains(t, output, "Availability uploaded!")
	require.Contains(t, output, "Appointment ID 1, Caregiver username carol")
	require.Contains(t, output, "1 Pfizer 03-05-2024 carol")
	// Second reservation for the same day finds no caregiver left.
	require.Contains(t, output, "No caregiver is available")
	require.Contains(t, output, "Bye!")
}

func TestRun_StorageFaultStopsLoop(t *testing.T) {
	m := newMemStore()
	a, _ := newTestApp(m)

	m.err = context.DeadlineExceeded
	scanner := bufio.NewScanner(strings.NewReader("create_patient dan Str0ng!pass\nquit\n"))
	err := a.Run(context.Background(), scanner)
	require.Error(t, err)
}
