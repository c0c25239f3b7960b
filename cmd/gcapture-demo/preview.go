//go:build windows

package main

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// frameMeta is broadcast to connected preview clients after every captured
// frame. It carries only dimensions, byte counts, and timing — never the
// pixel payload itself, since rendering/encoding frames is out of scope.
type frameMeta struct {
	Seq       uint64  `json:"seq"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Bytes     int     `json:"bytes"`
	LatencyMs float64 `json:"latencyMs"`
	FPS       float64 `json:"fps"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// previewServer fans frameMeta updates out to every connected websocket
// client. It never touches frame pixel data.
type previewServer struct {
	httpServer *http.Server
	listener   net.Listener

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func startPreviewServer(addr string) (*previewServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	p := &previewServer{clients: make(map[*websocket.Conn]struct{})}

	mux := http.NewServeMux()
	mux.HandleFunc("/frames", p.handleWS)
	p.httpServer = &http.Server{Handler: mux}
	p.listener = ln

	go p.httpServer.Serve(ln)
	return p, nil
}

func (p *previewServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	p.mu.Lock()
	p.clients[conn] = struct{}{}
	p.mu.Unlock()

	// Drain and discard any client messages so the connection doesn't stall;
	// exit (and deregister) once the client disconnects.
	go func() {
		defer p.removeClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (p *previewServer) removeClient(conn *websocket.Conn) {
	p.mu.Lock()
	delete(p.clients, conn)
	p.mu.Unlock()
	conn.Close()
}

// Broadcast sends meta to every connected client, dropping any client that
// fails to receive it within its own write.
func (p *previewServer) Broadcast(meta frameMeta) {
	data, err := json.Marshal(meta)
	if err != nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for conn := range p.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			go p.removeClient(conn)
		}
	}
}

const writeTimeout = 2 * time.Second

// Close stops accepting new connections and closes every open one.
func (p *previewServer) Close() error {
	p.mu.Lock()
	for conn := range p.clients {
		conn.Close()
	}
	p.clients = nil
	p.mu.Unlock()

	return p.httpServer.Close()
}
