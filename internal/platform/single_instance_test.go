package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueAppName(t *testing.T) string {
	return fmt.Sprintf("pomotick-test-%s-%d", t.Name(), time.Now().UnixNano())
}

func TestPortFromName_StaysInRange(t *testing.T) {
	for _, name := range []string{"", "pomotick", "Pomotick", "another app"} {
		port := portFromName(name)
		assert.GreaterOrEqual(t, port, 20000, name)
		assert.LessOrEqual(t, port, 39999, name)
	}
	assert.Equal(t, portFromName("Pomotick"), portFromName("pomotick"))
}

func TestAcquireSingleInstance_SecondAcquireFails(t *testing.T) {
	name := uniqueAppName(t)
	guard, err := AcquireSingleInstance(name, nil)
	if err != nil {
		t.Skipf("port for %q unavailable: %v", name, err)
	}
	defer guard.Release()

	_, err = AcquireSingleInstance(name, nil)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Equal(t, instanceAddress(name), guard.Address())
}

func TestSignalRunningInstance_ActivatesGuard(t *testing.T) {
	name := uniqueAppName(t)
	activated := make(chan struct{}, 1)
	guard, err := AcquireSingleInstance(name, func() { activated <- struct{}{} })
	if err != nil {
		t.Skipf("port for %q unavailable: %v", name, err)
	}
	defer guard.Release()

	require.NoError(t, SignalRunningInstance(name))

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestRelease_FreesPort(t *testing.T) {
	name := uniqueAppName(t)
	guard, err := AcquireSingleInstance(name, nil)
	if err != nil {
		t.Skipf("port for %q unavailable: %v", name, err)
	}
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name, nil)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}
