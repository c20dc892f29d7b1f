package server

import (
	"encoding/gob"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pointmap/model"
)

const maxParseBody = 64 << 10

func NewMapServer(store *Store, timeout time.Duration) *MapServer {
	return &MapServer{
		Store:    store,
		Upgrader: &websocket.Upgrader{},
		Timeout:  timeout,
		sessions: make(map[string]*WalkSession),
	}
}

// Routes registers the map endpoints on router.
func (s *MapServer) Routes(router *way.Router) {
	router.HandleFunc("GET", "/maps", s.HandleList())
	router.HandleFunc("POST", "/maps/parse", s.HandleParse())
	router.HandleFunc("GET", "/maps/:name", s.HandleGet())
	router.HandleFunc("GET", "/maps/:name/walk", s.HandleWalk())
}

func (s *MapServer) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MapServer) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, HTTP_SUCCESS, s.Store.Names())
	}
}

func (s *MapServer) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := way.Param(r.Context(), "name")
		m, err := s.Store.Map(name)
		if code := codeOf(err); code != MAP_READY {
			log.Warnf("HandleGet %s: %s %v", name, code.Name(), err)
			http.Error(w, err.Error(), code.ToHttp())
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := m.Print(w); err != nil {
			log.Errorf("HandleGet %s print: %v", name, err)
		}
	}
}

func (s *MapServer) HandleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := model.ReadMap(http.MaxBytesReader(w, r.Body, maxParseBody))
		if err != nil {
			log.Infof("HandleParse rejected: %v", err)
			mapsParsed.WithLabelValues("error").Inc()
			writeJSON(w, HTTP_UNPROCESSABLE, MapSummary{Rows: -1, Cols: -1, Error: err.Error()})
			return
		}
		mapsParsed.WithLabelValues("ok").Inc()
		writeJSON(w, HTTP_SUCCESS, summarize(m))
	}
}

func (s *MapServer) HandleWalk() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := way.Param(r.Context(), "name")
		log.Printf("HandleWalk - connection received for %s", name)

		m, err := s.Store.Map(name)
		code := codeOf(err)
		if code == MAP_READY && m.Input() == nil {
			code = MAP_NO_INPUT
		}
		if code != MAP_READY {
			log.Warnf("HandleWalk %s: %s", name, code.Name())
			w.WriteHeader(code.ToHttp())
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// the upgrader has already replied
			log.Printf("HandleWalk websocket upgrade err %v", err)
			return
		}

		ws := s.newSession(name, m, con)
		defer s.endSession(ws)
		ws.LoopChannelRead()
	}
}

func (s *MapServer) newSession(name string, m *model.Map, conn *websocket.Conn) *WalkSession {
	ws := &WalkSession{
		State:          WS_NEW,
		Id:             uuid.NewString(),
		MapName:        name,
		Map:            m,
		Cursor:         m.Input(),
		Conn:           conn,
		Timeout:        s.Timeout,
		MessagesToSend: make(chan model.ServerMessage, 10),
		writerDone:     make(chan struct{}),
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			ws.DebugLastPing = time.Now()
			ws.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	_ = ws.Cursor.SetVisited(true)

	s.mu.Lock()
	s.sessions[ws.Id] = ws
	s.mu.Unlock()
	walkSessions.Inc()

	go ws.LoopChannelWrite()
	ws.MessagesToSend <- ws.MakeSetupMessage()
	ws.State = WS_WALK
	log.WithField("session", ws.Id).Infof("walk on %s started at %v", name, ws.Cursor)
	return ws
}

func (s *MapServer) endSession(ws *WalkSession) {
	close(ws.MessagesToSend)
	<-ws.writerDone
	if ws.State == WS_OVER {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "output reached")
		_ = ws.Conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(ws.Timeout))
	}
	ws.Conn.Close()

	s.mu.Lock()
	delete(s.sessions, ws.Id)
	s.mu.Unlock()
	walkSessions.Dec()
	log.WithField("session", ws.Id).Infof("walk on %s ended %s in:%d out:%d",
		ws.MapName, ws.State.Name(), ws.DebugInMessages, ws.DebugOutMessages)
}

func (ws *WalkSession) MakeSetupMessage() model.ServerMessage {
	setup := model.Setup{
		Session: ws.Id,
		Rows:    ws.Map.Rows(),
		Cols:    ws.Map.Cols(),
		Col:     ws.Cursor.X(),
		Row:     ws.Cursor.Y(),
	}
	if out := ws.Map.Output(); out != nil {
		setup.HasOutput = true
		setup.OutCol, setup.OutRow = out.X(), out.Y()
	}
	return model.ServerMessage{Setup: []model.Setup{setup}}
}

// Move steps the cursor one cell in d. The cursor never enters a barrier
// and marks every cell it enters as visited. Reaching the output cell ends
// the walk.
func (ws *WalkSession) Move(d model.Direction) model.MoveResult {
	res := model.MoveResult{Direction: int(d), Symbol: model.ErrorSymbol}
	next, err := ws.Map.Neighbor(ws.Cursor, d)
	switch {
	case err != nil:
		log.Debugf("WalkSession.Move %v from %v: %v", d, ws.Cursor, err)
	case next.Symbol() == model.Barrier:
		res.Symbol = next.Symbol()
	default:
		ws.Cursor = next
		_ = next.SetVisited(true)
		res.Symbol = next.Symbol()
		res.Success = true
	}
	res.Col, res.Row = ws.Cursor.X(), ws.Cursor.Y()
	res.AtOutput = ws.Cursor == ws.Map.Output()
	if res.AtOutput {
		ws.State = WS_OVER
	}

	dir, result := "invalid", "blocked"
	if d.Valid() {
		dir = d.String()
	}
	if res.Success {
		result = "ok"
	}
	walkMoves.WithLabelValues(dir, result).Inc()
	return res
}

func (ws *WalkSession) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED %s", ws.Id)
	for ws.State == WS_WALK {
		messageType, r, err := ws.Conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("LoopChannelRead client left")
				ws.State = WS_OVER
			} else {
				log.Printf("LoopChannelRead err reading message from Conn %v", err)
				ws.State = WS_ERR
			}
			break
		}
		log.Debugf("LoopChannelRead received message type: %d", messageType)
		cm := &model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			ws.State = WS_ERR
			break
		}
		ws.DebugLastMessage = time.Now()
		ws.DebugInMessages++

		res := ws.Move(model.Direction(cm.Move))
		ws.MessagesToSend <- model.ServerMessage{Moves: []model.MoveResult{res}}
	}
	log.Printf("LoopChannelRead ENDED %s", ws.Id)
}

// this function only consumes. no worries about full buffer stuck
func (ws *WalkSession) LoopChannelWrite() {
	defer close(ws.writerDone)
	failed := false
	for mes := range ws.MessagesToSend {
		if failed {
			continue
		}
		if err := ws.write(mes); err != nil {
			log.Warnf("WalkSession.LoopChannelWrite %v", err)
			failed = true
			ws.Conn.Close()
			continue
		}
		ws.DebugOutMessages++
	}
}

func (ws *WalkSession) write(mes model.ServerMessage) error {
	w, err := ws.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		return err
	}
	return w.Close()
}

func summarize(m *model.Map) MapSummary {
	return MapSummary{
		Rows:   m.Rows(),
		Cols:   m.Cols(),
		Input:  cellRef(m.Input()),
		Output: cellRef(m.Output()),
	}
}

func cellRef(p *model.Point) *CellRef {
	if p == nil {
		return nil
	}
	return &CellRef{Col: p.X(), Row: p.Y(), Symbol: string(p.Symbol())}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("writeJSON %v", err)
	}
}
