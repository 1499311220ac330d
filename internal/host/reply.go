package host

// Delivery verbs a Reply can carry back to the host-side binding, which
// performs the actual paste/copy.
const (
	DirectivePaste = "paste"
	DirectiveCopy  = "copy"
	DirectiveShow  = "show"
	DirectiveNone  = "none"
)

// Reply collects the delivery directive for one invocation so the invocation
// endpoint can return it as the HTTP response.
type Reply struct {
	canPaste bool

	Directive string `json:"directive"`
	Text      string `json:"text"`
	Preview   bool   `json:"preview"`
	OK        bool   `json:"ok"`
}

// NewReply creates a Reply for a host that reported the given paste
// capability.
func NewReply(canPaste bool) *Reply {
	return &Reply{canPaste: canPaste, Directive: DirectiveNone}
}

func (r *Reply) CanPaste() bool { return r.canPaste }

func (r *Reply) Paste(text string) error {
	r.Directive = DirectivePaste
	r.Text = text
	return nil
}

func (r *Reply) Copy(text string) error {
	r.Directive = DirectiveCopy
	r.Text = text
	return nil
}

func (r *Reply) ShowText(text string, preview bool) {
	// Copy+preview keeps the copy directive and attaches the preview text.
	if r.Directive == DirectiveNone {
		r.Directive = DirectiveShow
	}
	r.Text = text
	r.Preview = preview
}

func (r *Reply) ShowStatus(ok bool) {
	r.OK = ok
}
