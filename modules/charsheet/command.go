package charsheet

import (
	"context"
	"fmt"
)

// Command operations understood by Apply.
const (
	OpChange   = "change"
	OpBlur     = "blur"
	OpAppend   = "append"
	OpRemove   = "remove"
	OpDropRule = "drop-rule"
	OpSubmit   = "submit"
)

// Command is a serialized sheet command. Path names the field for change,
// blur and drop-rule and the collection for append and remove.
type Command struct {
	Op    string `json:"op"`
	Path  string `json:"path,omitempty"`
	Value any    `json:"value,omitempty"`
	Index int    `json:"index,omitempty"`
	Rule  string `json:"rule,omitempty"`
}

// Apply runs cmd against sheet id.
func (s *Service) Apply(ctx context.Context, id string, cmd Command) (View, error) {
	switch cmd.Op {
	case OpChange:
		return s.ChangeField(ctx, id, cmd.Path, cmd.Value)
	case OpBlur:
		return s.Blur(ctx, id, cmd.Path)
	case OpAppend:
		return s.Append(ctx, id, cmd.Path)
	case OpRemove:
		return s.Remove(ctx, id, cmd.Path, cmd.Index)
	case OpDropRule:
		return s.DropRule(ctx, id, cmd.Path, cmd.Rule)
	case OpSubmit:
		return s.Submit(ctx, id)
	default:
		return View{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
	}
}

// Replay applies cmds to a fresh sheet, submits it and closes it.
func (s *Service) Replay(ctx context.Context, cmds []Command) (View, error) {
	v, err := s.Create(ctx)
	if err != nil {
		return View{}, err
	}
	id := v.ID
	defer func() { _ = s.Dispose(ctx, id) }()

	for i, cmd := range cmds {
		if _, err := s.Apply(ctx, id, cmd); err != nil {
			return View{}, fmt.Errorf("command %d (%s): %w", i, cmd.Op, err)
		}
	}
	return s.Submit(ctx, id)
}
