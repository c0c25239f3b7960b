//go:build windows

package winobj

import (
	"bufio"
	"context"
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"

	"github.com/lanternops/gcapture/internal/logging"
)

var log = logging.L("winobj")

// ipcPipeBufferSize matches the hook DLL's own named-pipe buffer size.
const ipcPipeBufferSize = 1024

// nullDACLSecurity grants Generic All to Everyone (WD) and no other ACEs,
// so a hook running inside the target process — commonly a different user
// or integrity level than this process — can still open the pipe.
const nullDACLSecurity = "D:(A;;GA;;;WD)"

// PipeServer listens on a named pipe for the hook's line-delimited
// diagnostic messages and forwards each line to a callback on a single
// background goroutine. It accepts a single connection, matching a single
// attached hook instance, and stops reading once that connection closes.
type PipeServer struct {
	listener net.Listener
	name     string
	onLine   func(string)
	done     chan struct{}
}

// Listen creates a named pipe server. onLine is invoked from a background
// goroutine for every newline-delimited message the hook writes.
func Listen(name string, onLine func(string)) (*PipeServer, error) {
	cfg := &winio.PipeConfig{
		SecurityDescriptor: nullDACLSecurity,
		InputBufferSize:    ipcPipeBufferSize,
		OutputBufferSize:   ipcPipeBufferSize,
		MessageMode:        true,
	}

	l, err := winio.ListenPipe(`\\.\pipe\`+name, cfg)
	if err != nil {
		return nil, fmt.Errorf("winobj: listen pipe %q: %w", name, err)
	}

	p := &PipeServer{listener: l, name: name, onLine: onLine, done: make(chan struct{})}
	go p.acceptLoop()
	return p, nil
}

func (p *PipeServer) acceptLoop() {
	defer close(p.done)

	conn, err := p.listener.Accept()
	if err != nil {
		log.Debug("pipe accept ended", "pipe", p.name, "error", err)
		return
	}
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		if p.onLine != nil {
			p.onLine(line)
		}
	}
}

// Close stops accepting connections and waits (bounded by ctx) for the
// background goroutine to finish.
func (p *PipeServer) Close(ctx context.Context) error {
	err := p.listener.Close()
	select {
	case <-p.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return err
}
