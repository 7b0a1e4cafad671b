package domain

// Identity represents one player account, keyed by the stable platform
// identifier (XUID), independent of live connection state. Created on first
// observed join, never deleted automatically; the display name is refreshed
// on every join because names may change.
type Identity struct {
	XUID      string `json:"xuid"`
	Name      string `json:"name"`
	LastJoin  int64  `json:"last_join"`
	LastLeave int64  `json:"last_leave"`
	Online    bool   `json:"online"`
}

// LastSeen returns the most recent session boundary timestamp.
func (i Identity) LastSeen() int64 {
	if i.LastJoin > i.LastLeave {
		return i.LastJoin
	}
	return i.LastLeave
}
