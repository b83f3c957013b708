package lab

import "github.com/viant/labsh/session"

// OpenInput opens a new lab session.
type OpenInput struct {
	ID  string            `json:"id,omitempty" description:"optional session id, generated when empty"`
	Env map[string]string `json:"env,omitempty" description:"variables merged over the default environment"`
}

type OpenOutput struct {
	SessionID string `json:"sessionId"`
	Prompt    string `json:"prompt"`
}

// ExecuteInput runs one command line.
type ExecuteInput struct {
	SessionID string `json:"sessionId"`
	Line      string `json:"line"`
}

type ExecuteOutput struct {
	Output           string `json:"output"`
	Prompt           string `json:"prompt"`
	CurrentDirectory string `json:"currentDirectory"`
}

// SessionInput addresses an existing session.
type SessionInput struct {
	SessionID string `json:"sessionId"`
}

type PromptOutput struct {
	Prompt string `json:"prompt"`
}

type HistoryOutput struct {
	Lines []string `json:"lines"`
}

type SaveOutput struct {
	SessionID string `json:"sessionId"`
}

type RestoreOutput struct {
	SessionID string   `json:"sessionId"`
	Prompt    string   `json:"prompt"`
	History   []string `json:"history,omitempty"`
}

type ChangesOutput struct {
	Changes []session.Change `json:"changes,omitempty"`
}

type StatsOutput struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Denied    int `json:"denied"`
}

type CloseOutput struct{}
