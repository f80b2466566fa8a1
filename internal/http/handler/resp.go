package handler

import (
	"encoding/json"
	"net/http"
)

// apiResp is the response envelope every endpoint wraps its payload in.
// Business failures keep HTTP 200 and signal through ok/msg.
type apiResp struct {
	OK   bool   `json:"ok"`
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data,omitempty"`
}

const (
	msgIncompleteInput = "请输入完整信息"
	msgUsernameTaken   = "用户名已存在"
	msgBadCredentials  = "用户名或密码错误"
	msgUnknownAuthor   = "authorId 不存在"
	msgUnknownNote     = "noteId 不存在"
)

func writeOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(apiResp{OK: true, Data: data})
}

func writeFail(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(apiResp{OK: false, Msg: msg})
}

// Health is the liveness probe.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}
