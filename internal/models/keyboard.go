package models

// MaxButtonLabelLength is the longest label the chat platform renders on a
// button; longer labels are truncated with an ellipsis at build time.
const MaxButtonLabelLength = 64

// InlineButton is one cell of an inline button grid. Data is the opaque
// callback payload delivered back when the button is tapped.
type InlineButton struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// InlineKeyboard describes an inline button grid attached to a message.
type InlineKeyboard struct {
	Rows [][]InlineButton `json:"rows"`
}

// ReplyButton is one cell of a persistent reply keyboard. Action is the
// language-independent code the gateway resolves the button's literal text
// back to; RequestContact marks the platform's contact-share affordance.
type ReplyButton struct {
	Label          string     `json:"label"`
	Action         ActionCode `json:"action,omitempty"`
	RequestContact bool       `json:"request_contact,omitempty"`
}

// ReplyKeyboard describes a persistent reply keyboard of button rows.
type ReplyKeyboard struct {
	Rows [][]ReplyButton `json:"rows"`
}

// OutboundMessage carries body text and an optional keyboard description.
// At most one of Inline and Reply is set; RemoveReply clears a previously
// shown reply keyboard.
type OutboundMessage struct {
	Body        string          `json:"body"`
	Inline      *InlineKeyboard `json:"inline,omitempty"`
	Reply       *ReplyKeyboard  `json:"reply,omitempty"`
	RemoveReply bool            `json:"remove_reply,omitempty"`
}

// TruncateLabel shortens a button label to the platform limit. Counted in
// runes so Cyrillic labels are not split mid-character.
func TruncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= MaxButtonLabelLength {
		return label
	}
	return string(runes[:MaxButtonLabelLength-3]) + "..."
}
