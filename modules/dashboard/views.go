package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/userdash/handler"
	"github.com/dmitrymomot/userdash/pkg/notifications"
)

// ToastFragment renders one toast. The client removes it after
// data-duration milliseconds.
func ToastFragment(t notifications.Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div id="toast-%s" class="toast toast-%s" role="status" data-position="%s" data-duration="%d">%s</div>`,
			templ.EscapeString(t.ID),
			templ.EscapeString(string(t.Type)),
			templ.EscapeString(string(t.Position)),
			t.Duration.Milliseconds(),
			templ.EscapeString(t.Message),
		)
		return err
	})
}

// ErrorToast adapts ToastFragment for handler.NewErrorHandler.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return ToastFragment(notifications.Toast{
		ID:       p.RequestID,
		Type:     notifications.Type(p.Type),
		Message:  p.Message,
		Duration: notifications.DefaultDuration,
		Position: notifications.DefaultPosition,
	})
}
