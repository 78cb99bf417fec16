// Package client is a thin HTTP client for the game server.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"catan/archive"
	"catan/communication"
	"catan/game"
)

type Client struct {
	serverURL string
	http      *http.Client
}

func New(serverURL string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		http:      http.DefaultClient,
	}
}

// CreateGame starts a new game on the server and returns its key with
// the opening snapshot.
func (c *Client) CreateGame(seed uint64) (communication.CreateGameResponse, error) {
	var out communication.CreateGameResponse
	err := c.post("/games", communication.CreateGameRequest{Seed: seed}, http.StatusCreated, &out)
	return out, err
}

// SubmitAction plays one action for a player.
func (c *Client) SubmitAction(key string, player game.PlayerID, action game.Action) (communication.ActionResponse, error) {
	var out communication.ActionResponse
	req := communication.ActionRequest{Player: player, Action: action}
	err := c.post("/games/"+key+"/actions", req, http.StatusOK, &out)
	return out, err
}

// State fetches the current snapshot, computed for the player whose
// turn it is.
func (c *Client) State(key string) (game.Snapshot, error) {
	var out game.Snapshot
	err := c.get("/games/"+key+"/state", &out)
	return out, err
}

// Board fetches the static board layout plus current occupants.
func (c *Client) Board(key string) (game.BoardView, error) {
	var out game.BoardView
	err := c.get("/games/"+key+"/board", &out)
	return out, err
}

// Results lists archived games.
func (c *Client) Results() ([]archive.Result, error) {
	var out []archive.Result
	err := c.get("/results", &out)
	return out, err
}

// Watch opens a websocket that receives a snapshot after every
// accepted action. The caller owns the connection.
func (c *Client) Watch(key string) (*websocket.Conn, error) {
	url := c.serverURL + "/games/" + key + "/ws"
	url = strings.Replace(url, "http://", "ws://", 1)
	url = strings.Replace(url, "https://", "wss://", 1)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open watch socket: %w", err)
	}
	return conn, nil
}

func (c *Client) post(path string, body any, wantStatus int, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.serverURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) get(path string, out any) error {
	resp, err := c.http.Get(c.serverURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var er communication.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, er.Error)
	}
	return fmt.Errorf("server returned status %d", resp.StatusCode)
}
