package menu

import (
	"context"
	"fmt"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/engine"
)

type rootState struct{}

func (s *rootState) render(ctx context.Context, n *Navigator) (Page, error) {
	return Page{
		Title: TitleRoot,
		Rows: []Row{
			{Label: LabelOnlinePlayers, ColorTag: ColorGreen},
			{Label: LabelSearchOffline, ColorTag: ColorAqua},
		},
	}, nil
}

func (s *rootState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	switch index {
	case 0:
		return &onlineListState{}, nil
	case 1:
		return &searchPromptState{}, nil
	default:
		return nil, badIndex(index)
	}
}

// onlineListState lists the identities currently flagged online in the store.
type onlineListState struct {
	ids []domain.Identity
}

func (s *onlineListState) render(ctx context.Context, n *Navigator) (Page, error) {
	if n.store == nil {
		return Page{}, domain.ErrStoreUnavailable
	}
	ids, err := n.store.ListOnline(ctx)
	if err != nil {
		return Page{}, err
	}
	s.ids = ids

	page := Page{Title: TitleOnlinePlayers}
	if len(ids) == 0 {
		page.Body = BodyNoOnlinePlayers
		return page, nil
	}
	for _, id := range ids {
		page.Rows = append(page.Rows, Row{Label: id.Name, ColorTag: ColorGreen})
	}
	return page, nil
}

func (s *onlineListState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	if index < 0 || index >= len(s.ids) {
		return nil, badIndex(index)
	}
	id := s.ids[index]
	return &kindState{target: Target{XUID: id.XUID, Name: id.Name, Online: true}}, nil
}

type searchPromptState struct{}

func (s *searchPromptState) render(ctx context.Context, n *Navigator) (Page, error) {
	return Page{
		Title:  TitleSearch,
		Prompt: &Prompt{Title: TitleSearch, Placeholder: PromptPlaceholder},
	}, nil
}

func (s *searchPromptState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	return nil, badIndex(index)
}

func (s *searchPromptState) submit(ctx context.Context, n *Navigator, text string) (state, error) {
	result, err := n.finder.Find(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(result.Candidates) == 0 {
		return &messageState{text: MsgNoMatches}, nil
	}
	if result.Unambiguous {
		return &kindState{target: candidateTarget(result.Candidates[0], result.FromFallback)}, nil
	}
	return &searchResultsState{
		candidates:   result.Candidates,
		fromFallback: result.FromFallback,
	}, nil
}

type searchResultsState struct {
	candidates   []domain.Identity
	fromFallback bool
}

func (s *searchResultsState) render(ctx context.Context, n *Navigator) (Page, error) {
	page := Page{Title: TitleSearchResults}
	for _, id := range s.candidates {
		page.Rows = append(page.Rows, candidateRow(id, s.fromFallback))
	}
	return page, nil
}

func (s *searchResultsState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	if index < 0 || index >= len(s.candidates) {
		return nil, badIndex(index)
	}
	return &kindState{target: candidateTarget(s.candidates[index], s.fromFallback)}, nil
}

// candidateRow labels a search candidate with its connection state so two
// players sharing a name are distinguishable.
func candidateRow(id domain.Identity, fromFallback bool) Row {
	switch {
	case fromFallback:
		return Row{Label: fmt.Sprintf("%s (%s)", id.Name, MarkerLegacy), ColorTag: ColorGray}
	case id.Online:
		return Row{Label: fmt.Sprintf("%s (%s)", id.Name, MarkerOnline), ColorTag: ColorGreen}
	default:
		return Row{Label: fmt.Sprintf("%s (%s)", id.Name, MarkerOffline), ColorTag: ColorYellow}
	}
}

func candidateTarget(id domain.Identity, fromFallback bool) Target {
	return Target{XUID: id.XUID, Name: id.Name, Online: id.Online, FromLegacy: fromFallback}
}

// kindState picks which of the target's containers to open. Only an online
// target exposes its inventory; disconnected identities are served ender
// chest only, whether they resolve through the store or a legacy record.
type kindState struct {
	target Target
}

func (s *kindState) render(ctx context.Context, n *Navigator) (Page, error) {
	page := Page{Title: s.target.Name}
	if s.target.Online {
		page.Rows = append(page.Rows, Row{Label: LabelInventory, ColorTag: ColorYellow})
	}
	page.Rows = append(page.Rows, Row{Label: LabelEnderChest, ColorTag: ColorAqua})
	return page, nil
}

func (s *kindState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	kinds := []domain.ContainerKind{domain.KindInventory, domain.KindEnderChest}
	if !s.target.Online {
		kinds = kinds[1:]
	}
	if index < 0 || index >= len(kinds) {
		return nil, badIndex(index)
	}
	return &modeState{target: s.target, kind: kinds[index]}, nil
}

// modeState picks between per-slot actions and the read-only visual view.
type modeState struct {
	target Target
	kind   domain.ContainerKind
}

func (s *modeState) render(ctx context.Context, n *Navigator) (Page, error) {
	return Page{
		Title: fmt.Sprintf("%s: %s", s.target.Name, kindLabel(s.kind)),
		Rows: []Row{
			{Label: LabelSlotActions, ColorTag: ColorYellow},
			{Label: LabelVisualView, ColorTag: ColorAqua},
		},
	}, nil
}

func (s *modeState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	switch index {
	case 0:
		return &slotsState{target: s.target, kind: s.kind}, nil
	case 1:
		return &visualState{target: s.target, kind: s.kind}, nil
	default:
		return nil, badIndex(index)
	}
}

// slotsState lists the occupied slots of the chosen container.
type slotsState struct {
	target Target
	kind   domain.ContainerKind

	slots []engine.SlotView
}

func (s *slotsState) render(ctx context.Context, n *Navigator) (Page, error) {
	views, err := containerViews(ctx, n, s.target, s.kind)
	if err != nil {
		return Page{}, err
	}
	s.slots = s.slots[:0]
	for _, v := range views {
		if !v.Empty {
			s.slots = append(s.slots, v)
		}
	}

	page := Page{Title: fmt.Sprintf("%s: %s", s.target.Name, kindLabel(s.kind))}
	if len(s.slots) == 0 {
		page.Body = BodyNoItems
		return page, nil
	}
	for _, v := range s.slots {
		page.Rows = append(page.Rows, Row{Label: v.Label, ColorTag: ColorYellow})
	}
	return page, nil
}

func (s *slotsState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	if index < 0 || index >= len(s.slots) {
		return nil, badIndex(index)
	}
	v := s.slots[index]
	return &slotActionsState{target: s.target, kind: s.kind, slot: v.Slot, label: v.Label}, nil
}

// slotActionsState offers the actions valid for one slot: Take, Copy and
// Remove for an online target, Copy only for an offline or legacy one.
type slotActionsState struct {
	target Target
	kind   domain.ContainerKind
	slot   int
	label  string
}

func (s *slotActionsState) render(ctx context.Context, n *Navigator) (Page, error) {
	page := Page{Title: TitleSlotActions, Body: s.label}
	if s.target.Online {
		page.Rows = []Row{
			{Label: LabelTake, ColorTag: ColorGreen},
			{Label: LabelCopy, ColorTag: ColorAqua},
			{Label: LabelRemove, ColorTag: ColorRed},
		}
		return page, nil
	}
	page.Rows = []Row{{Label: LabelCopy, ColorTag: ColorAqua}}
	return page, nil
}

func (s *slotActionsState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	if s.target.Online {
		switch index {
		case 0:
			if err := n.eng.Take(ctx, n.viewerXUID, s.target.XUID, s.kind, s.slot); err != nil {
				return nil, err
			}
			return &messageState{text: MsgTaken}, nil
		case 1:
			if err := n.eng.Copy(ctx, n.viewerXUID, s.target.XUID, s.kind, s.slot); err != nil {
				return nil, err
			}
			return &messageState{text: MsgCopied}, nil
		case 2:
			if err := n.eng.Remove(ctx, n.viewerXUID, s.target.XUID, s.kind, s.slot); err != nil {
				return nil, err
			}
			return &messageState{text: MsgRemoved}, nil
		default:
			return nil, badIndex(index)
		}
	}

	if index != 0 {
		return nil, badIndex(index)
	}
	if err := s.copyOffline(ctx, n); err != nil {
		return nil, err
	}
	return &messageState{text: MsgCopied}, nil
}

func (s *slotActionsState) copyOffline(ctx context.Context, n *Navigator) error {
	if !s.target.FromLegacy {
		return n.eng.CopyOffline(ctx, n.viewerXUID, s.target.XUID, s.kind, s.slot)
	}

	if n.fallback == nil {
		return domain.ErrStoreUnavailable
	}
	records, err := n.fallback.FindByIdentityKey(ctx, s.target.XUID)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.Slot == s.slot {
			return n.eng.CopyRecord(ctx, n.viewerXUID, rec)
		}
	}
	return domain.ErrSlotEmpty
}

// visualState renders the whole container read-only, empty slots included,
// in chest layout order.
type visualState struct {
	target Target
	kind   domain.ContainerKind
}

func (s *visualState) render(ctx context.Context, n *Navigator) (Page, error) {
	views, err := containerViews(ctx, n, s.target, s.kind)
	if err != nil {
		return Page{}, err
	}
	page := Page{
		Title: fmt.Sprintf("%s: %s", TitleVisualView, s.target.Name),
		Body:  BodyVisualReadOnly,
	}
	for _, v := range views {
		row := Row{Label: fmt.Sprintf("%2d %s", v.ChestIndex, LabelEmptySlot), ColorTag: ColorGray}
		if !v.Empty {
			row = Row{Label: fmt.Sprintf("%2d %s", v.ChestIndex, v.Label), ColorTag: ColorYellow}
		}
		page.Rows = append(page.Rows, row)
	}
	return page, nil
}

func (s *visualState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	return nil, nil
}

// messageState shows one line of result text with a single way back.
type messageState struct {
	text    string
	isError bool
}

func (s *messageState) render(ctx context.Context, n *Navigator) (Page, error) {
	title := TitleNotice
	color := ColorGreen
	if s.isError {
		title = TitleError
		color = ColorRed
	}
	return Page{
		Title: title,
		Body:  s.text,
		Rows:  []Row{{Label: LabelOK, ColorTag: color}},
	}, nil
}

func (s *messageState) pick(ctx context.Context, n *Navigator, index int) (state, error) {
	return nil, nil
}

// containerViews resolves the slot views for a target from the right source:
// the live container when online, the legacy record when the target came from
// the fallback directory, the stored snapshot otherwise.
func containerViews(ctx context.Context, n *Navigator, target Target, kind domain.ContainerKind) ([]engine.SlotView, error) {
	switch {
	case target.Online:
		return n.eng.ViewLive(ctx, target.XUID, kind)
	case target.FromLegacy:
		if n.fallback == nil {
			return nil, domain.ErrStoreUnavailable
		}
		records, err := n.fallback.FindByIdentityKey(ctx, target.XUID)
		if err != nil {
			return nil, err
		}
		return engine.ViewRecords(kind, records), nil
	default:
		return n.eng.ViewSnapshot(ctx, target.XUID, kind)
	}
}

func kindLabel(kind domain.ContainerKind) string {
	if kind == domain.KindEnderChest {
		return LabelEnderChest
	}
	return LabelInventory
}

func badIndex(index int) error {
	return fmt.Errorf("%w: selection %d", domain.ErrInvalidInput, index)
}
