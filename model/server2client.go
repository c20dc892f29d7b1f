package model

// ServerMessage is one gob frame sent to a walking client.
type ServerMessage struct {
	Setup []Setup
	Moves []MoveResult
}

type Setup struct {
	Session        string
	Rows, Cols     int
	Col, Row       int
	HasOutput      bool
	OutCol, OutRow int
}

type MoveResult struct {
	Direction int
	Col, Row  int
	Symbol    byte
	Success   bool
	AtOutput  bool
}

// ClientMessage is one gob frame received from a walking client.
type ClientMessage struct {
	Move int
}
