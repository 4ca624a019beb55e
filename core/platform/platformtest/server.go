// Package platformtest serves a fiber app on a loopback port so clients can
// be exercised against a fake platform.
package platformtest

import (
	"net"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// NewApp returns a fiber app without the startup banner.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{DisableStartupMessage: true})
}

// Serve starts app on 127.0.0.1 and returns its base URL.
// The app is shut down when the test ends.
func Serve(t *testing.T, app *fiber.App) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}
