package mcp

// GetWindowRolesInput is the input for the get_window_roles tool.
type GetWindowRolesInput struct{}

// RoleInfo describes one assigned role.
type RoleInfo struct {
	Role     string `json:"role"`
	WindowID uint32 `json:"window_id"`
	Title    string `json:"title,omitempty"`
}

// GetWindowRolesOutput is the output for the get_window_roles tool.
type GetWindowRolesOutput struct {
	Roles                []RoleInfo `json:"roles"`
	SplitScreenMode      bool       `json:"split_screen_mode"`
	SplitScreenAvailable bool       `json:"split_screen_available"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes one window in the current snapshot.
type WindowInfo struct {
	ID               uint32 `json:"id"`
	Kind             string `json:"kind"`
	Title            string `json:"title,omitempty"`
	ClassName        string `json:"class_name,omitempty"`
	Active           bool   `json:"active,omitempty"`
	PictureInPicture bool   `json:"picture_in_picture,omitempty"`
	X                int    `json:"x"`
	Y                int    `json:"y"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// GetWindowTitleInput is the input for the get_window_title tool.
type GetWindowTitleInput struct {
	WindowID uint32 `json:"window_id" jsonschema:"required,The window id to look up"`
}

// GetWindowTitleOutput is the output for the get_window_title tool.
type GetWindowTitleOutput struct {
	WindowID uint32 `json:"window_id"`
	Title    string `json:"title"`
	Known    bool   `json:"known"`
}
