package resource

// Caller is the identity of the authenticated caller returned by GET /user.
type Caller struct {
	ID          string   `json:"id"`
	SessionID   string   `json:"session_id,omitempty"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}
