package server

import (
	"errors"
	"fmt"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_UNPROCESSABLE = 422
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	MAP_READY ResponseCode = iota
	MAP_NOT_FOUND
	MAP_INVALID
	MAP_NO_INPUT
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case MAP_READY:
		return HTTP_SUCCESS
	case MAP_NOT_FOUND:
		return HTTP_NOT_FOUND
	case MAP_INVALID:
		return HTTP_UNPROCESSABLE
	case MAP_NO_INPUT:
		return HTTP_BAD_REQUEST
	default:
		panic(h)
	}
}

func (h ResponseCode) Name() string {
	switch h {
	case MAP_READY:
		return "MAP_READY"
	case MAP_NOT_FOUND:
		return "MAP_NOT_FOUND"
	case MAP_INVALID:
		return "MAP_INVALID"
	case MAP_NO_INPUT:
		return "MAP_NO_INPUT"
	default:
		return fmt.Sprintf("n/a:%d", h)
	}
}

// codeOf maps a store lookup error to a response code.
func codeOf(err error) ResponseCode {
	switch {
	case err == nil:
		return MAP_READY
	case errors.Is(err, ErrUnknownMap):
		return MAP_NOT_FOUND
	default:
		return MAP_INVALID
	}
}

func (ws WalkSessionState) Name() string {
	switch ws {
	case WS_NEW:
		return "NEW"
	case WS_WALK:
		return "WALK"
	case WS_OVER:
		return "OVER"
	case WS_ERR:
		return "ERR"
	default:
		return "N/A"
	}
}

// MapSummary is the JSON answer of the parse endpoint.
type MapSummary struct {
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Input  *CellRef `json:"input,omitempty"`
	Output *CellRef `json:"output,omitempty"`
	Error  string   `json:"error,omitempty"`
}

type CellRef struct {
	Col    int    `json:"col"`
	Row    int    `json:"row"`
	Symbol string `json:"symbol"`
}
