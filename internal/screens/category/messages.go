package category

// suggestReadyMsg carries AI hints for the current section.
type suggestReadyMsg struct {
	Items []string
}

// suggestFailedMsg signals that hint generation failed.
type suggestFailedMsg struct {
	Err error
}
