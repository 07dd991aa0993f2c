// Package handler dispatches decoded JSON-RPC envelopes onto the
// cache, history, context collector, provider registry, and voice
// engine, per spec.md §4.7.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"murmur/internal/cache"
	"murmur/internal/contextcollector"
	"murmur/internal/history"
	"murmur/internal/protocol"
	"murmur/internal/provider"
	"murmur/internal/voice"
)

// Handler owns every shared component and answers one JSON-RPC method
// call at a time. It holds no per-connection state, so a single
// instance is cloned by reference into every connection task, per
// spec.md §9's "reference counted handler" note.
type Handler struct {
	Cache      *cache.Cache
	History    *history.Store
	Collector  *contextcollector.Collector
	Registry   *provider.Registry
	Voice      *voice.VoiceEngine
	ProviderTO time.Duration
}

// Handle dispatches req and returns the response to write back. The
// connection-level framing (reading/writing lines) lives in
// internal/server; Handle only ever returns a well-formed Response,
// never an error.
func (h *Handler) Handle(ctx context.Context, req protocol.Request) protocol.Response {
	switch req.Method {
	case protocol.MethodComplete:
		return h.handleComplete(ctx, req)
	case protocol.MethodStatus:
		return h.handleStatus(req)
	case protocol.MethodShutdown:
		return protocol.NewResult(req.ID, "shutting down")
	case protocol.MethodVoiceStart:
		return protocol.NewError(req.ID, protocol.CodeInternalError, "voice/start is not supported; use voice/process")
	case protocol.MethodVoiceProcess:
		return h.handleVoiceProcess(ctx, req)
	case protocol.MethodVoiceStatus:
		return h.handleVoiceStatus(req)
	case protocol.MethodContextUpdate:
		return h.handleContextUpdate(req)
	case protocol.MethodHistoryList:
		return h.handleHistoryList(req)
	default:
		return protocol.NewError(req.ID, protocol.CodeMethodNotFound, fmt.Sprintf("unknown method %q", req.Method))
	}
}

// IsShutdown reports whether method named the shutdown call, so the
// server knows to exit after flushing the reply.
func IsShutdown(method string) bool {
	return method == protocol.MethodShutdown
}

func decodeParams[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(raw, &v)
	return v, err
}

func (h *Handler) handleComplete(ctx context.Context, req protocol.Request) protocol.Response {
	params, err := decodeParams[protocol.CompletionRequest](req.Params)
	if err != nil {
		return protocol.NewError(req.ID, protocol.CodeInvalidParams, "invalid complete params: "+err.Error())
	}

	start := time.Now()
	key := cache.Fingerprint(params.Input, params.Cwd, params.Shell)

	if cached, ok := h.Cache.Get(key); ok {
		cached.Cached = true
		cached.LatencyMs = uint64(time.Since(start).Milliseconds())
		return protocol.NewResult(req.ID, cached)
	}

	shellCtx := h.shellContext(params)
	class := provider.Route(params.Input, shellCtx)

	callCtx, cancel := context.WithTimeout(ctx, h.providerTimeout())
	defer cancel()
	items, chosen := h.Registry.Complete(callCtx, class, params, shellCtx)
	if items == nil {
		items = make([]protocol.CompletionItem, 0)
	}

	resp := protocol.CompletionResponse{
		Items:     items,
		Provider:  chosen,
		LatencyMs: uint64(time.Since(start).Milliseconds()),
		Cached:    false,
	}
	h.Cache.Put(key, resp)

	return protocol.NewResult(req.ID, resp)
}

func (h *Handler) shellContext(req protocol.CompletionRequest) provider.Context {
	var gitInfo *protocol.GitInfo
	var project string
	var envVars []protocol.EnvVar
	recentCommands := req.History

	if h.Collector != nil {
		snap := h.Collector.Collect(req.Cwd, req.Shell)
		gitInfo = snap.Git
		project = snap.Project
		envVars = snap.EnvVars
		if len(snap.History) > 0 {
			recentCommands = snap.History
		}
	}

	return provider.Context{
		Git:     gitInfo,
		Project: project,
		EnvVars: envVars,
		Shell:   req.Shell,
		Cwd:     req.Cwd,
		History: recentCommands,
	}
}

func (h *Handler) providerTimeout() time.Duration {
	if h.ProviderTO <= 0 {
		return 5 * time.Second
	}
	return h.ProviderTO
}

func (h *Handler) handleStatus(req protocol.Request) protocol.Response {
	result := protocol.StatusResult{
		Status:         "running",
		CacheEntries:   h.Cache.Len(),
		HistoryEntries: h.History.Len(),
	}
	if h.Voice != nil {
		result.VoiceEnabled = h.Voice.Enabled()
		result.VoiceEngines = h.Voice.EngineNames()
		result.VoiceActiveEngine = h.Voice.ActiveEngineName()
	}
	if h.Registry != nil {
		result.ProvidersConfigured = h.Registry.Names()
		result.ProvidersActive = h.Registry.Names()
	}
	return protocol.NewResult(req.ID, result)
}

func (h *Handler) handleVoiceProcess(ctx context.Context, req protocol.Request) protocol.Response {
	if h.Voice == nil || !h.Voice.Enabled() {
		return protocol.NewError(req.ID, protocol.CodeInternalError, "voice is disabled")
	}

	params, err := decodeParams[protocol.VoiceProcessRequest](req.Params)
	if err != nil {
		return protocol.NewError(req.ID, protocol.CodeInvalidParams, "invalid voice/process params: "+err.Error())
	}

	audio, err := base64.StdEncoding.DecodeString(params.AudioData)
	if err != nil {
		return protocol.NewError(req.ID, protocol.CodeInvalidParams, "invalid base64 audio data")
	}

	mode := voice.Mode(params.Mode)
	result, err := h.Voice.ProcessAudio(ctx, audio, mode, params.Cwd, params.Shell)
	if err != nil {
		log.Printf("[voice] process_audio: %v", err)
		return protocol.NewError(req.ID, protocol.CodeInternalError, err.Error())
	}

	return protocol.NewResult(req.ID, protocol.VoiceResult{
		Transcript: result.Transcript,
		Output:     result.Output,
		Mode:       protocol.VoiceMode(result.Mode),
		Confidence: result.Confidence,
		Engine:     result.Engine,
		LatencyMs:  uint64(result.LatencyMs),
	})
}

func (h *Handler) handleVoiceStatus(req protocol.Request) protocol.Response {
	result := protocol.VoiceStatusResult{Capturing: false}
	if h.Voice != nil {
		result.AvailableEngines = h.Voice.EngineNames()
		result.ActiveEngine = h.Voice.ActiveEngineName()
	}
	return protocol.NewResult(req.ID, result)
}

func (h *Handler) handleContextUpdate(req protocol.Request) protocol.Response {
	params, err := decodeParams[protocol.ContextUpdateRequest](req.Params)
	if err != nil {
		return protocol.NewError(req.ID, protocol.CodeInvalidParams, "invalid context/update params: "+err.Error())
	}

	h.History.Record(params.Command, params.Cwd, params.Source, params.ExitCode)
	return protocol.NewResult(req.ID, protocol.ContextUpdateResult{Recorded: true})
}

func (h *Handler) handleHistoryList(req protocol.Request) protocol.Response {
	// A wholly missing params object yields the default payload rather
	// than -32602, per spec.md §9 Open Question (iv).
	params, err := decodeParams[protocol.HistoryListRequest](req.Params)
	if err != nil {
		return protocol.NewError(req.ID, protocol.CodeInvalidParams, "invalid history/list params: "+err.Error())
	}
	if params.Limit == 0 {
		params.Limit = protocol.DefaultHistoryListLimit
	}

	entries := h.History.List(params.Cwd, params.Limit)
	return protocol.NewResult(req.ID, entries)
}
