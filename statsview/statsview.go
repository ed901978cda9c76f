//go:build statsview

package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/meadori/nescore/logger"
)

// DefaultAddress is used when Launch is given an empty address.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// Viewer is a running statistics server.
type Viewer struct {
	addr string
	mgr  *statsview.ViewManager
}

// Launch starts serving statistics on addr and prints the page address to
// output. The server runs until Stop is called.
func Launch(output io.Writer, addr string) *Viewer {
	if addr == "" {
		addr = DefaultAddress
	}
	viewer.SetConfiguration(viewer.WithAddr(addr))

	v := &Viewer{addr: addr, mgr: statsview.New()}
	go func() {
		if err := v.mgr.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logf("statsview", "%v", err)
		}
	}()

	fmt.Fprintf(output, "runtime statistics at http://%s%s\n", addr, path)
	logger.Logf("statsview", "serving on %s", addr)
	return v
}

// Stop shuts the server down. It is safe to call on a nil Viewer.
func (v *Viewer) Stop() {
	if v == nil {
		return
	}
	v.mgr.Stop()
	logger.Logf("statsview", "stopped %s", v.addr)
}

// Available reports whether this build can serve statistics.
func Available() bool {
	return true
}
