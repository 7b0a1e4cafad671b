package menu

import (
	"context"
	"fmt"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/engine"
	"github.com/tolvmar/chestwarden/internal/logger"
	"github.com/tolvmar/chestwarden/internal/lookup"
	"github.com/tolvmar/chestwarden/internal/repository"
)

// Target identifies the player a menu session is operating on.
type Target struct {
	XUID   string
	Name   string
	Online bool
	// FromLegacy marks a target resolved through the legacy record
	// directory; only its ender chest is viewable and only Copy works.
	FromLegacy bool
}

// LegacyRecords is the slice of the fallback reader the menu needs.
type LegacyRecords interface {
	FindByIdentityKey(ctx context.Context, key string) ([]domain.ItemRecord, error)
}

// state is one level of the navigation stack. render produces the page for
// the form collaborator; pick interprets a row selection and returns the
// state to push, or nil to pop.
type state interface {
	render(ctx context.Context, n *Navigator) (Page, error)
	pick(ctx context.Context, n *Navigator, index int) (state, error)
}

// submitter is implemented by states whose page carries a free-text prompt.
type submitter interface {
	submit(ctx context.Context, n *Navigator, text string) (state, error)
}

// Navigator is one operator's menu session: a stack of typed states over the
// lookup service, the action engine and the durable store. It is the single
// entry point the command dispatcher binds to. Not safe for concurrent use;
// the host delivers one operator's form interactions sequentially.
type Navigator struct {
	viewerXUID string
	store      repository.Store
	finder     lookup.Service
	eng        *engine.Engine
	fallback   LegacyRecords

	stack []state
}

// NewNavigator creates a menu session for one operator. store and fallback
// may be nil; the affected branches degrade to a message page.
func NewNavigator(viewerXUID string, store repository.Store, finder lookup.Service, eng *engine.Engine, fallback LegacyRecords) *Navigator {
	return &Navigator{
		viewerXUID: viewerXUID,
		store:      store,
		finder:     finder,
		eng:        eng,
		fallback:   fallback,
	}
}

// Open resets the session to the root page.
func (n *Navigator) Open(ctx context.Context) Page {
	n.stack = n.stack[:0]
	return n.push(ctx, &rootState{})
}

// Select handles a row selection on the current page.
func (n *Navigator) Select(ctx context.Context, index int) Page {
	top := n.top()
	if top == nil {
		return n.Open(ctx)
	}
	next, err := top.pick(ctx, n, index)
	if err != nil {
		return n.fail(ctx, err)
	}
	if next == nil {
		return n.Back(ctx)
	}
	return n.push(ctx, next)
}

// Submit handles free text entered on a prompt page.
func (n *Navigator) Submit(ctx context.Context, text string) Page {
	top, ok := n.top().(submitter)
	if !ok {
		return n.fail(ctx, fmt.Errorf("%w: page has no prompt", domain.ErrInvalidInput))
	}
	next, err := top.submit(ctx, n, text)
	if err != nil {
		return n.fail(ctx, err)
	}
	if next == nil {
		return n.Back(ctx)
	}
	return n.push(ctx, next)
}

// Back pops one level; from the root it re-renders the root.
func (n *Navigator) Back(ctx context.Context) Page {
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	}
	if len(n.stack) == 0 {
		return n.Open(ctx)
	}
	page, err := n.top().render(ctx, n)
	if err != nil {
		n.stack = n.stack[:len(n.stack)-1]
		return n.fail(ctx, err)
	}
	return page
}

// Depth returns the current stack depth.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

func (n *Navigator) top() state {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// push renders a new state on top of the stack. A state that cannot render
// is dropped again and replaced by a message page.
func (n *Navigator) push(ctx context.Context, s state) Page {
	n.stack = append(n.stack, s)
	page, err := s.render(ctx, n)
	if err != nil {
		n.stack = n.stack[:len(n.stack)-1]
		return n.fail(ctx, err)
	}
	return page
}

// fail surfaces an error as a displayable message page on top of the stack,
// never as a crash of the session.
func (n *Navigator) fail(ctx context.Context, err error) Page {
	logger.FromContext(ctx).Warn("menu interaction failed", "viewer", n.viewerXUID, "error", err)

	msg := &messageState{text: displayMessage(err), isError: true}
	n.stack = append(n.stack, msg)
	page, _ := msg.render(ctx, n)
	return page
}
