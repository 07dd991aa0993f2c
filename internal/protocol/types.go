package protocol

// CompletionKind enumerates the kinds of a CompletionItem.
type CompletionKind string

const (
	KindCommand     CompletionKind = "command"
	KindArgument    CompletionKind = "argument"
	KindPath        CompletionKind = "path"
	KindFullCommand CompletionKind = "full_command"
	KindCode        CompletionKind = "code"
)

// CompletionRequest is the decoded params of a "complete" call.
type CompletionRequest struct {
	Input     string   `json:"input"`
	CursorPos uint     `json:"cursor_pos"`
	Cwd       string   `json:"cwd"`
	History   []string `json:"history,omitempty"`
	Shell     string   `json:"shell,omitempty"`
}

// CompletionItem is a single suggestion returned by a provider.
type CompletionItem struct {
	Text        string         `json:"text"`
	Description string         `json:"description,omitempty"`
	Kind        CompletionKind `json:"kind"`
	Score       float64        `json:"score"`
}

// CompletionResponse is the result of a "complete" call.
type CompletionResponse struct {
	Items     []CompletionItem `json:"items"`
	Provider  string           `json:"provider"`
	LatencyMs uint64           `json:"latency_ms"`
	Cached    bool             `json:"cached"`
}

// HistoryEntry is a single cross-tool command record.
type HistoryEntry struct {
	Command  string `json:"command"`
	Cwd      string `json:"cwd"`
	Source   string `json:"source"`
	ExitCode int    `json:"exit_code"`
	// Timestamp is seconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
}

// GitInfo mirrors git.Info for wire purposes.
type GitInfo struct {
	Branch        string   `json:"branch"`
	Dirty         bool     `json:"dirty"`
	RecentCommits []string `json:"recent_commits,omitempty"`
	RepoRoot      string   `json:"repo_root"`
}

// EnvVar is a single allow-listed environment variable.
type EnvVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ShellContext is the snapshot returned by the context collector.
type ShellContext struct {
	History []string `json:"history"`
	Cwd     string   `json:"cwd"`
	Shell   string   `json:"shell"`
	Git     *GitInfo `json:"git,omitempty"`
	Project string   `json:"project,omitempty"`
	EnvVars []EnvVar `json:"env_vars"`
}

// VoiceMode enumerates the restructuring target for a voice request.
type VoiceMode string

const (
	VoiceModeCommand VoiceMode = "command"
	VoiceModeNatural VoiceMode = "natural"
)

// VoiceProcessRequest is the decoded params of a "voice/process" call.
type VoiceProcessRequest struct {
	AudioData string    `json:"audio_data"`
	Mode      VoiceMode `json:"mode"`
	Cwd       string    `json:"cwd"`
	Shell     string    `json:"shell,omitempty"`
}

// VoiceResult is the result of a "voice/process" call.
type VoiceResult struct {
	Transcript string    `json:"transcript"`
	Output     string    `json:"output"`
	Mode       VoiceMode `json:"mode"`
	Confidence float64   `json:"confidence"`
	Engine     string    `json:"engine"`
	LatencyMs  uint64    `json:"latency_ms"`
}

// StatusResult is the result of a "status" call.
type StatusResult struct {
	Status              string   `json:"status"`
	CacheEntries        int      `json:"cache_entries"`
	HistoryEntries      int      `json:"history_entries"`
	VoiceEnabled        bool     `json:"voice_enabled"`
	VoiceEngines        []string `json:"voice_engines"`
	VoiceActiveEngine   string   `json:"voice_active_engine,omitempty"`
	ProvidersConfigured []string `json:"providers_configured"`
	ProvidersActive     []string `json:"providers_active"`
}

// VoiceStatusResult is the result of a "voice/status" call.
type VoiceStatusResult struct {
	Capturing        bool     `json:"capturing"`
	AvailableEngines []string `json:"available_engines"`
	ActiveEngine     string   `json:"active_engine,omitempty"`
}

// ContextUpdateRequest is the decoded params of a "context/update" call.
type ContextUpdateRequest struct {
	Command  string `json:"command"`
	Cwd      string `json:"cwd"`
	Source   string `json:"source"`
	ExitCode int    `json:"exit_code"`
}

// ContextUpdateResult is the result of a "context/update" call.
type ContextUpdateResult struct {
	Recorded bool `json:"recorded"`
}

// HistoryListRequest is the decoded params of a "history/list" call.
type HistoryListRequest struct {
	Cwd   string `json:"cwd,omitempty"`
	Limit uint   `json:"limit"`
}

// DefaultHistoryListLimit is used when a history/list call's limit is
// omitted or zero, including when no params object is supplied at all
// (spec.md §9 Open Question iv).
const DefaultHistoryListLimit = 50
