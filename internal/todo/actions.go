package todo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/samtui/internal/dispatch"
)

// Intent identifiers for the to-do apps.
const (
	IntentAdd            = "todo.add"
	IntentToggle         = "todo.toggle"
	IntentRemove         = "todo.remove"
	IntentRename         = "todo.rename"
	IntentSetEditing     = "todo.edit"
	IntentSetTab         = "todo.tab"
	IntentSetDraft       = "todo.draft"
	IntentClearCompleted = "todo.clear_completed"
)

// RenameArgs is the payload for IntentRename.
type RenameArgs struct {
	ID    uuid.UUID
	Label string
}

// EditArgs is the payload for IntentSetEditing.
type EditArgs struct {
	ID      uuid.UUID
	Editing bool
}

// RegisterActions binds the to-do intents to s on d.
func RegisterActions(d *dispatch.Dispatcher, s *Store) {
	d.Register(IntentAdd, func(_ context.Context, payload any) error {
		label, ok := payload.(string)
		if !ok {
			return badPayload(IntentAdd, payload)
		}
		Add(s, label)
		return nil
	})
	d.Register(IntentToggle, func(_ context.Context, payload any) error {
		id, ok := payload.(uuid.UUID)
		if !ok {
			return badPayload(IntentToggle, payload)
		}
		Toggle(s, id)
		return nil
	})
	d.Register(IntentRemove, func(_ context.Context, payload any) error {
		id, ok := payload.(uuid.UUID)
		if !ok {
			return badPayload(IntentRemove, payload)
		}
		Remove(s, id)
		return nil
	})
	d.Register(IntentRename, func(_ context.Context, payload any) error {
		args, ok := payload.(RenameArgs)
		if !ok {
			return badPayload(IntentRename, payload)
		}
		Rename(s, args.ID, args.Label)
		return nil
	})
	d.Register(IntentSetEditing, func(_ context.Context, payload any) error {
		args, ok := payload.(EditArgs)
		if !ok {
			return badPayload(IntentSetEditing, payload)
		}
		SetEditing(s, args.ID, args.Editing)
		return nil
	})
	d.Register(IntentSetTab, func(_ context.Context, payload any) error {
		tab, ok := payload.(Tab)
		if !ok {
			return badPayload(IntentSetTab, payload)
		}
		return SetTab(s, tab)
	})
	d.Register(IntentSetDraft, func(_ context.Context, payload any) error {
		text, ok := payload.(string)
		if !ok {
			return badPayload(IntentSetDraft, payload)
		}
		SetDraft(s, text)
		return nil
	})
	d.Register(IntentClearCompleted, func(context.Context, any) error {
		ClearCompleted(s)
		return nil
	})
}

func badPayload(op string, payload any) error {
	return fmt.Errorf("%s: unexpected payload %T", op, payload)
}
