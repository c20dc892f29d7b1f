package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/pointmap/model"
)

type MapServer struct {
	Store    *Store
	Upgrader *websocket.Upgrader
	Timeout  time.Duration

	mu       sync.Mutex
	sessions map[string]*WalkSession
}

type WalkSessionState int

const (
	WS_NEW WalkSessionState = iota + 1
	WS_WALK
	WS_OVER
	WS_ERR
)

// WalkSession moves a cursor over its own copy of a map. Map and Cursor
// belong to the goroutine running LoopChannelRead.
type WalkSession struct {
	State   WalkSessionState
	Id      string
	MapName string
	Map     *model.Map
	Cursor  *model.Point
	Conn    *websocket.Conn
	Timeout time.Duration

	MessagesToSend chan model.ServerMessage
	writerDone     chan struct{}

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
