// Package dto defines the request and response payloads for the chat feature.
package dto

// ChatReq is the payload for a chat message.
type ChatReq struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// ChatResp carries the assistant reply.
type ChatResp struct {
	Response string `json:"response"`
}
